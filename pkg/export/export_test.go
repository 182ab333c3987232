package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logiflow/teambalance/core/model"
)

func sampleResults() []model.CohortResult {
	return []model.CohortResult{
		{
			Cohort:    "Group_2010_Plus",
			Status:    model.StatusOptimal,
			SkillDiff: 4,
			Assignments: []model.TeamAssignment{
				{Player: model.Player{Name: "Aiko", Position: "GK", SkillScore: 44, Cohort: "Group_2010_Plus"}, Team: 0, TeamLabel: "Group_2010_Plus_Team_1"},
				{Player: model.Player{Name: "PLACEHOLDER_GK", Position: "GK", SkillScore: 44, Cohort: "Group_2010_Plus", Placeholder: true}, Team: 1, TeamLabel: "Group_2010_Plus_Team_2"},
				{Player: model.Player{Name: "Ben", Position: "DEF", SkillScore: 20, Cohort: "Group_2010_Plus"}, Team: 1, TeamLabel: "Group_2010_Plus_Team_2"},
			},
		},
	}
}

func TestWriteCSVExcludesPlaceholders(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResults(), Options{}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "cohort,team,name,position,skill_score,placeholder\n"))
	assert.NotContains(t, out, "PLACEHOLDER_GK")
	assert.Contains(t, out, "Aiko")
	assert.Contains(t, out, "Ben")
}

func TestWriteCSVIncludesFlaggedPlaceholders(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResults(), Options{IncludePlaceholders: true}))
	assert.Contains(t, buf.String(), "PLACEHOLDER_GK,GK,44,true")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResults(), Options{IncludePlaceholders: true}))

	var docs []struct {
		Cohort    string `json:"cohort"`
		Status    string `json:"status"`
		SkillDiff int    `json:"skill_diff"`
		Players   []Row  `json:"players"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "optimal", docs[0].Status)
	assert.Equal(t, 4, docs[0].SkillDiff)
	require.Len(t, docs[0].Players, 3)

	var flagged int
	for _, p := range docs[0].Players {
		if p.Placeholder {
			flagged++
		}
	}
	assert.Equal(t, 1, flagged)
}

func TestRowsSorted(t *testing.T) {
	rows := Rows(sampleResults(), Options{IncludePlaceholders: true})
	require.Len(t, rows, 3)
	// Sorted by team label, then position, then name.
	assert.Equal(t, "Aiko", rows[0].Name)
	assert.Equal(t, "Ben", rows[1].Name)
	assert.Equal(t, "PLACEHOLDER_GK", rows[2].Name)
}
