package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
	"strconv"

	"github.com/logiflow/teambalance/core/model"
)

// Options controls roster rendering.
type Options struct {
	// IncludePlaceholders keeps injected placeholder players in the
	// output. Placeholders are flagged in every format regardless.
	IncludePlaceholders bool
}

// Row is one exported roster line.
type Row struct {
	Cohort      string `json:"cohort"`
	TeamLabel   string `json:"team_label"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	SkillScore  int    `json:"skill_score"`
	Placeholder bool   `json:"placeholder"`
}

// Rows flattens per-cohort results into export rows sorted by cohort,
// team, position and name.
func Rows(results []model.CohortResult, opts Options) []Row {
	var rows []Row
	for _, cr := range results {
		for _, a := range cr.Assignments {
			if a.Player.Placeholder && !opts.IncludePlaceholders {
				continue
			}
			rows = append(rows, Row{
				Cohort:      cr.Cohort,
				TeamLabel:   a.TeamLabel,
				Name:        a.Player.Name,
				Position:    a.Player.Position,
				SkillScore:  a.Player.SkillScore,
				Placeholder: a.Player.Placeholder,
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Cohort != b.Cohort {
			return a.Cohort < b.Cohort
		}
		if a.TeamLabel != b.TeamLabel {
			return a.TeamLabel < b.TeamLabel
		}
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		return a.Name < b.Name
	})
	return rows
}

// WriteCSV writes the aggregated rosters to w with a header row.
func WriteCSV(w io.Writer, results []model.CohortResult, opts Options) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"cohort", "team", "name", "position", "skill_score", "placeholder"}); err != nil {
		return err
	}
	for _, r := range Rows(results, opts) {
		rec := []string{
			r.Cohort,
			r.TeamLabel,
			r.Name,
			r.Position,
			strconv.Itoa(r.SkillScore),
			strconv.FormatBool(r.Placeholder),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// cohortDoc is the JSON shape for one cohort.
type cohortDoc struct {
	Cohort    string `json:"cohort"`
	Status    string `json:"status"`
	SkillDiff int    `json:"skill_diff"`
	Players   []Row  `json:"players"`
}

// WriteJSON writes the aggregated rosters to w as a JSON document keyed
// per cohort, carrying the achieved skill differential.
func WriteJSON(w io.Writer, results []model.CohortResult, opts Options) error {
	docs := make([]cohortDoc, 0, len(results))
	for _, cr := range results {
		doc := cohortDoc{
			Cohort:    cr.Cohort,
			Status:    cr.Status.String(),
			SkillDiff: cr.SkillDiff,
			Players:   Rows([]model.CohortResult{cr}, opts),
		}
		if doc.Players == nil {
			doc.Players = []Row{}
		}
		docs = append(docs, doc)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}
