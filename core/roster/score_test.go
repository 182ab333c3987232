package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryScoreBuckets(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"U17 Premier", 50},
		{"local academy side", 50},
		{"Town Club 2019-2021", 50},
		{"High School Varsity", 30},
		{"AYSO spring league", 20},
		{"JV squad", 10},
		{"rec league", 10},
		{"", 15},
		{"two seasons with friends", 15},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HistoryScore(c.text), "text %q", c.text)
	}
}

func TestHistoryScoreHighestBucketWins(t *testing.T) {
	// Texts matching several buckets score the best one, whatever the
	// order the keywords appear in.
	assert.Equal(t, 50, HistoryScore("rec league, then U16 Premier"))
	assert.Equal(t, 50, HistoryScore("premier before dropping to rec"))
	assert.Equal(t, 30, HistoryScore("jv then high school varsity"))
}

func TestSkillScore(t *testing.T) {
	rec := Record{YearsExp: 4, HistoryText: "high school varsity"}
	assert.Equal(t, 38, SkillScore(rec))
}

func TestAssignCohort(t *testing.T) {
	assert.Equal(t, Cohort2007Earlier, AssignCohort(2001))
	assert.Equal(t, Cohort2007Earlier, AssignCohort(2007))
	assert.Equal(t, Cohort2008To2009, AssignCohort(2008))
	assert.Equal(t, Cohort2008To2009, AssignCohort(2009))
	assert.Equal(t, Cohort2010Plus, AssignCohort(2010))
	assert.Equal(t, Cohort2010Plus, AssignCohort(2013))
}

func TestScore(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	records := []Record{
		{Name: "Aiko", DOB: "2010-07-15", Position: "Goalkeeper (GK)", YearsExp: 3, HistoryText: "club"},
		{Name: "Ben", DOB: "2008-02-01", Position: "Forward (Striker/Center Forward)", YearsExp: 1},
		{Name: "Broken", DOB: "not a date", Position: "GK"},
	}

	players, errs := Score(records, now)
	require.Len(t, players, 2)
	require.Len(t, errs, 1)

	aiko := players[0]
	assert.Equal(t, "GK", aiko.Position)
	assert.Equal(t, 56, aiko.SkillScore) // 3*2 + club bucket
	assert.Equal(t, 2010, aiko.BirthYear)
	assert.Equal(t, 13, aiko.Age) // birthday not reached by June 1st
	assert.Equal(t, Cohort2010Plus, aiko.Cohort)
	assert.False(t, aiko.Placeholder)

	ben := players[1]
	assert.Equal(t, "FWD", ben.Position)
	assert.Equal(t, 17, ben.SkillScore) // 1*2 + default bucket
	assert.Equal(t, Cohort2008To2009, ben.Cohort)
}

func TestScoreDoesNotMutateInput(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	records := []Record{{Name: "Aiko", DOB: "2010-07-15", Position: "GK"}}
	snapshot := records[0]
	_, _ = Score(records, now)
	assert.Equal(t, snapshot, records[0])
}
