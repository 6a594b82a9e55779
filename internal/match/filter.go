package match

import (
	"strings"

	"github.com/scholarbot/scholarbot-api/internal/model"
)

// NeedFilter selects records by their need-based marker.
type NeedFilter string

const (
	NeedFilterAll   NeedFilter = "all"
	NeedFilterNeed  NeedFilter = "need"
	NeedFilterMerit NeedFilter = "merit"
)

// Filter returns the records matching a free-text query and a need/merit
// toggle. The output is a subsequence of the input: original catalog order is
// preserved, never re-sorted. An empty query matches everything; the query is
// a case-insensitive substring check over name, criteria, and amount. Both
// predicates must pass.
func Filter(records []model.Scholarship, query string, need NeedFilter) []model.Scholarship {
	q := strings.ToLower(query)

	out := make([]model.Scholarship, 0, len(records))
	for _, s := range records {
		matchesSearch := q == "" ||
			strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Criteria), q) ||
			strings.Contains(strings.ToLower(s.Amount), q)

		matchesNeed := need == NeedFilterAll ||
			(need == NeedFilterNeed && s.IsNeedBased()) ||
			(need == NeedFilterMerit && !s.IsNeedBased())

		if matchesSearch && matchesNeed {
			out = append(out, s)
		}
	}
	return out
}
