// Package catalog owns the in-memory scholarship record store. The store
// starts from a built-in fallback table and can be replaced wholesale by a
// successful remote sync; a failed sync leaves the current snapshot alone.
package catalog

import (
	"fmt"
	"sync"
	"time"

	"github.com/scholarbot/scholarbot-api/internal/model"
)

const (
	SourceBuiltIn = "built-in"
	SourceSynced  = "synced"
)

// Store holds the current catalog snapshot. Replace swaps the whole slice
// under the write lock, so readers never observe a half-updated catalog.
type Store struct {
	mu         sync.RWMutex
	records    []model.Scholarship
	source     string
	lastSynced time.Time
}

// NewStore creates a store seeded with the built-in fallback catalog.
func NewStore() *Store {
	return &Store{
		records: FallbackScholarships(),
		source:  SourceBuiltIn,
	}
}

// All returns a copy of the current snapshot. Callers may filter, rank, and
// reorder the returned slice freely.
func (s *Store) All() []model.Scholarship {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Scholarship, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records in the current snapshot.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Get looks up a record by id in the current snapshot.
func (s *Store) Get(id string) (model.Scholarship, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return model.Scholarship{}, false
}

// Replace swaps in a freshly synced catalog. An empty record set or a
// duplicate id is rejected and the current snapshot kept, since a partial or
// malformed sync must never degrade the catalog.
func (s *Store) Replace(records []model.Scholarship) error {
	if len(records) == 0 {
		return fmt.Errorf("refusing to replace catalog with empty record set")
	}
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if seen[r.ID] {
			return fmt.Errorf("duplicate scholarship id %q in synced records", r.ID)
		}
		seen[r.ID] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.source = SourceSynced
	s.lastSynced = time.Now()
	return nil
}

// Source reports where the current snapshot came from and when it was last
// synced (zero time while still on the built-in table).
func (s *Store) Source() (string, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source, s.lastSynced
}
