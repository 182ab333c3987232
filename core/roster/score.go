package roster

import (
	"fmt"
	"strings"
	"time"

	"github.com/logiflow/teambalance/core/model"
)

// Cohort names by birth-year bucket.
const (
	Cohort2007Earlier = "Group_2007_Earlier"
	Cohort2008To2009  = "Group_2008_2009"
	Cohort2010Plus    = "Group_2010_Plus"
)

// dobLayouts are the date formats accepted for the date-of-birth column.
var dobLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	time.RFC3339,
	"January 2, 2006",
}

// historyBucket awards a flat score when any of its keywords appears in the
// free-text playing history.
type historyBucket struct {
	Keywords []string
	Score    int
}

// historyBuckets is the explicit scoring table for the history text. When
// several buckets match, the highest score wins; table order carries no
// meaning.
var historyBuckets = []historyBucket{
	{Keywords: []string{"premier", "academy", "club"}, Score: 50},
	{Keywords: []string{"varsity", "high school"}, Score: 30},
	{Keywords: []string{"ayso", "aysa"}, Score: 20},
	{Keywords: []string{"jv", "rec"}, Score: 10},
}

// defaultHistoryScore applies when no bucket keyword matches.
const defaultHistoryScore = 15

// HistoryScore scores the free-text playing history against the bucket
// table. All buckets are evaluated and the best match is returned, so a
// text mentioning both "rec" and "premier" scores as premier.
func HistoryScore(text string) int {
	lower := strings.ToLower(text)
	best := 0
	matched := false
	for _, b := range historyBuckets {
		for _, kw := range b.Keywords {
			if strings.Contains(lower, kw) {
				matched = true
				if b.Score > best {
					best = b.Score
				}
				break
			}
		}
	}
	if !matched {
		return defaultHistoryScore
	}
	return best
}

// SkillScore derives the partitioning skill score from experience and
// playing history.
func SkillScore(rec Record) int {
	return int(rec.YearsExp*2) + HistoryScore(rec.HistoryText)
}

// AssignCohort buckets a birth year into its named group.
func AssignCohort(birthYear int) string {
	switch {
	case birthYear <= 2007:
		return Cohort2007Earlier
	case birthYear <= 2009:
		return Cohort2008To2009
	default:
		return Cohort2010Plus
	}
}

// parseDOB tries the accepted layouts in order.
func parseDOB(s string) (time.Time, error) {
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ageAt computes completed years between birth and now.
func ageAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// Score converts raw records into validated players. The input slice is
// never modified; malformed records are reported individually and skipped
// so a bad row cannot sink the whole roster. now anchors age computation
// so results are reproducible.
func Score(records []Record, now time.Time) ([]model.Player, []error) {
	players := make([]model.Player, 0, len(records))
	var errs []error
	for i, rec := range records {
		birth, err := parseDOB(rec.DOB)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: row %d (%s): %v", model.ErrMalformedPlayer, i+1, rec.Name, err))
			continue
		}
		p := model.Player{
			Name:       rec.Name,
			Position:   model.NormalizePosition(rec.Position),
			SkillScore: SkillScore(rec),
			BirthYear:  birth.Year(),
			Age:        ageAt(birth, now),
			Cohort:     AssignCohort(birth.Year()),
		}
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		players = append(players, p)
	}
	return players, errs
}
