package match

import (
	"errors"
	"sort"

	"github.com/scholarbot/scholarbot-api/internal/model"
)

// ErrProfileIncomplete is returned by Rank when the profile has no name yet.
// It is a user-correctable refusal ("complete your profile first"), not a
// fault.
var ErrProfileIncomplete = errors.New("profile is incomplete: name is required before matching")

// Result pairs a scholarship with its computed score and the reasons behind
// it. Results are recomputed on every run and never merged with prior runs.
type Result struct {
	Scholarship  model.Scholarship `json:"scholarship"`
	MatchScore   int               `json:"match_score"`
	MatchReasons []string          `json:"match_reasons"`
}

// Rank scores every record against the profile, drops the zero scores, and
// sorts the rest by score descending. The sort is stable so equal scores keep
// catalog order, which keeps test output deterministic.
func Rank(profile model.Profile, records []model.Scholarship) ([]Result, error) {
	if profile.Name == "" {
		return nil, ErrProfileIncomplete
	}

	results := make([]Result, 0, len(records))
	for _, s := range records {
		score, reasons := Score(profile, s)
		if score <= 0 {
			continue
		}
		results = append(results, Result{Scholarship: s, MatchScore: score, MatchReasons: reasons})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results, nil
}
