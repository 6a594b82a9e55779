package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarbot/scholarbot-api/internal/model"
)

func TestRankRefusesUnnamedProfile(t *testing.T) {
	_, err := Rank(model.Profile{GPA: "3.8"}, []model.Scholarship{{ID: "a", Criteria: "3.5+ GPA"}})
	assert.ErrorIs(t, err, ErrProfileIncomplete)
}

func TestRankDropsZeroScores(t *testing.T) {
	p := model.Profile{Name: "Jordan", Citizenship: "U.S. Citizen"}
	records := []model.Scholarship{
		{ID: "hit", Criteria: "Must be a U.S. citizen"},
		{ID: "miss", Criteria: "For culinary students in Alaska"},
	}

	results, err := Rank(p, records)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "hit", results[0].Scholarship.ID)
	assert.Equal(t, 20, results[0].MatchScore)
	assert.Equal(t, []string{"Citizenship eligible"}, results[0].MatchReasons)
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	p := model.Profile{
		Name:          "Jordan",
		Citizenship:   "U.S. Citizen",
		GPA:           "3.8",
		FinancialNeed: "Yes",
	}
	records := []model.Scholarship{
		{ID: "low", Criteria: "Graduating class spirit award"},                       // strong GPA only, 10
		{ID: "high", Criteria: "U.S. citizen with 3.5+ GPA", NeedBased: "Y"},         // 20+15+15
		{ID: "mid", Criteria: "U.S. citizen scholarship for community college prep"}, // 20+10
	}

	results, err := Rank(p, records)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, []string{"high", "mid", "low"}, []string{
		results[0].Scholarship.ID, results[1].Scholarship.ID, results[2].Scholarship.ID,
	})
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].MatchScore, results[i].MatchScore)
	}
}

func TestRankStableOnTies(t *testing.T) {
	p := model.Profile{Name: "Jordan", GPA: "3.8"}
	records := []model.Scholarship{
		{ID: "first", Criteria: "A merit award"},
		{ID: "second", Criteria: "Another merit award"},
		{ID: "third", Criteria: "Yet another merit award"},
	}

	results, err := Rank(p, records)
	require.NoError(t, err)
	require.Len(t, results, 3)
	// All score 10 via the strong-GPA rule, so catalog order survives.
	assert.Equal(t, "first", results[0].Scholarship.ID)
	assert.Equal(t, "second", results[1].Scholarship.ID)
	assert.Equal(t, "third", results[2].Scholarship.ID)
}

func TestRankEmptyCatalog(t *testing.T) {
	results, err := Rank(model.Profile{Name: "Jordan"}, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
