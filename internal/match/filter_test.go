package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarbot/scholarbot-api/internal/catalog"
	"github.com/scholarbot/scholarbot-api/internal/model"
)

var filterFixtures = []model.Scholarship{
	{ID: "a", Name: "Gates Scholarship", Criteria: "Pell-eligible minority students", Amount: "Full ride", NeedBased: "Y"},
	{ID: "b", Name: "Coca-Cola Scholars", Criteria: "Leadership and service", Amount: "$20,000", NeedBased: "N"},
	{ID: "c", Name: "Dell Scholars", Criteria: "Demonstrated financial need", Amount: "$20,000", NeedBased: "Y"},
}

func TestFilterEmptyQueryMatchesAll(t *testing.T) {
	out := Filter(filterFixtures, "", NeedFilterAll)
	assert.Len(t, out, 3)
}

func TestFilterQueryIsCaseInsensitive(t *testing.T) {
	out := Filter(filterFixtures, "GATES", NeedFilterAll)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

func TestFilterSearchesCriteriaAndAmount(t *testing.T) {
	out := Filter(filterFixtures, "leadership", NeedFilterAll)
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)

	out = Filter(filterFixtures, "$20,000", NeedFilterAll)
	assert.Len(t, out, 2)
}

func TestFilterNeedToggle(t *testing.T) {
	out := Filter(filterFixtures, "", NeedFilterNeed)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "c", out[1].ID)

	out = Filter(filterFixtures, "", NeedFilterMerit)
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)
}

func TestFilterBothPredicatesMustPass(t *testing.T) {
	out := Filter(filterFixtures, "$20,000", NeedFilterNeed)
	require.Len(t, out, 1)
	assert.Equal(t, "c", out[0].ID)
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	out := Filter(filterFixtures, "20,000", NeedFilterAll)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].ID)
	assert.Equal(t, "c", out[1].ID)
}

func TestFilterNeedOverFullCatalog(t *testing.T) {
	records := catalog.FallbackScholarships()

	needOnly := Filter(records, "", NeedFilterNeed)
	require.NotEmpty(t, needOnly)
	for _, s := range needOnly {
		assert.True(t, s.IsNeedBased(), s.ID)
	}

	merit := Filter(records, "", NeedFilterMerit)
	assert.Equal(t, len(records), len(needOnly)+len(merit))

	// Relative catalog order survives the split.
	idx := make(map[string]int, len(records))
	for i, s := range records {
		idx[s.ID] = i
	}
	for i := 1; i < len(needOnly); i++ {
		assert.Less(t, idx[needOnly[i-1].ID], idx[needOnly[i].ID])
	}
}

func TestFilterNoMatches(t *testing.T) {
	out := Filter(filterFixtures, "underwater basket weaving", NeedFilterAll)
	assert.Empty(t, out)
}
