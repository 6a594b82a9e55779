package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarbot/scholarbot-api/internal/model"
)

func TestNewStoreSeedsFallback(t *testing.T) {
	s := NewStore()
	assert.Equal(t, len(FallbackScholarships()), s.Len())

	source, lastSynced := s.Source()
	assert.Equal(t, SourceBuiltIn, source)
	assert.True(t, lastSynced.IsZero())
}

func TestFallbackScholarshipsAreWellFormed(t *testing.T) {
	records := FallbackScholarships()
	require.NotEmpty(t, records)

	seen := make(map[string]bool)
	for _, r := range records {
		assert.NotEmpty(t, r.ID)
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Criteria)
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
}

func TestStoreAllReturnsCopy(t *testing.T) {
	s := NewStore()
	a := s.All()
	a[0].Name = "mutated"
	b := s.All()
	assert.NotEqual(t, "mutated", b[0].Name)
}

func TestStoreGet(t *testing.T) {
	s := NewStore()
	want := FallbackScholarships()[0]

	got, ok := s.Get(want.ID)
	require.True(t, ok)
	assert.Equal(t, want.Name, got.Name)

	_, ok = s.Get("no-such-id")
	assert.False(t, ok)
}

func TestStoreReplace(t *testing.T) {
	s := NewStore()
	fresh := []model.Scholarship{
		{ID: "x1", Name: "One", Criteria: "c"},
		{ID: "x2", Name: "Two", Criteria: "c"},
	}

	require.NoError(t, s.Replace(fresh))
	assert.Equal(t, 2, s.Len())

	source, lastSynced := s.Source()
	assert.Equal(t, SourceSynced, source)
	assert.False(t, lastSynced.IsZero())
}

func TestStoreReplaceRejectsBadSets(t *testing.T) {
	s := NewStore()
	before := s.Len()

	assert.Error(t, s.Replace(nil))
	assert.Error(t, s.Replace([]model.Scholarship{}))
	assert.Error(t, s.Replace([]model.Scholarship{
		{ID: "dup", Name: "A"},
		{ID: "dup", Name: "B"},
	}))

	// Snapshot is untouched after every rejection.
	assert.Equal(t, before, s.Len())
	source, _ := s.Source()
	assert.Equal(t, SourceBuiltIn, source)
}
