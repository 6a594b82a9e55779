// Package match implements the rule-based eligibility scoring engine and the
// ranking/filtering pipelines built on top of it. Everything in this package
// is pure: plain data in, plain data out, no storage, transport, or AI.
package match

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/scholarbot/scholarbot-api/internal/model"
)

// gpaReqPattern extracts an explicit GPA requirement from free-text criteria,
// e.g. "3.5+ GPA" or "GPA of 3.0". Only single-decimal-digit values match;
// "3.25 GPA" or "GPA 3" fall through to the generic strong-GPA check.
var gpaReqPattern = regexp.MustCompile(`(\d\.\d)\+?\s*gpa|gpa\s*(?:of\s*)?(\d\.\d)`)

// Score compares a profile against one scholarship and returns a score in
// [0,100] plus one reason string per rule that fired, in rule order.
//
// Criteria are free natural-language text, so every rule is a substring
// heuristic against the lower-cased criteria (and sometimes name). That is
// deliberately brittle: synonyms produce false negatives and substring
// coincidences produce false positives. The trigger phrases and point values
// are load-bearing; changing them changes every ranking downstream.
func Score(profile model.Profile, s model.Scholarship) (int, []string) {
	score := 0
	var reasons []string
	c := strings.ToLower(s.Criteria)
	n := strings.ToLower(s.Name)

	if profile.Citizenship != "" {
		cit := strings.ToLower(profile.Citizenship)
		if strings.Contains(c, "u.s. citizen") && (strings.Contains(cit, "u.s.") || strings.Contains(cit, "dual")) {
			score += 20
			reasons = append(reasons, "Citizenship eligible")
		}
		if strings.Contains(c, "daca") && strings.Contains(cit, "daca") {
			score += 25
			reasons = append(reasons, "DACA eligible")
		}
	}

	if len(profile.Ethnicity) > 0 {
		eth := strings.ToLower(strings.Join(profile.Ethnicity, " "))
		// Each heritage category is independent; a scholarship mentioning
		// several eligible groups can stack multiple "Heritage match" bonuses.
		if (strings.Contains(c, "african american") || strings.Contains(n, "african american") || strings.Contains(c, "black")) && strings.Contains(eth, "african") {
			score += 25
			reasons = append(reasons, "Heritage match")
		}
		if (strings.Contains(c, "hispanic") || strings.Contains(n, "hispanic") || strings.Contains(c, "latino")) && strings.Contains(eth, "hispanic") {
			score += 25
			reasons = append(reasons, "Heritage match")
		}
		if (strings.Contains(c, "asian") || strings.Contains(n, "asian") || strings.Contains(c, "pacific islander")) && strings.Contains(eth, "asian") {
			score += 25
			reasons = append(reasons, "Heritage match")
		}
		if (strings.Contains(c, "native american") || strings.Contains(c, "indigenous") || strings.Contains(c, "tribal")) && strings.Contains(eth, "native") {
			score += 25
			reasons = append(reasons, "Heritage match")
		}
	}

	if gpa, ok := parseGPA(profile.GPA); ok {
		if m := gpaReqPattern.FindStringSubmatch(c); m != nil {
			raw := m[1]
			if raw == "" {
				raw = m[2]
			}
			req, _ := strconv.ParseFloat(raw, 64)
			if gpa >= req {
				score += 15
				reasons = append(reasons, fmt.Sprintf("GPA %s meets %s req", formatGPA(gpa), formatGPA(req)))
			}
		} else if gpa >= 3.0 {
			score += 10
			reasons = append(reasons, "Strong GPA")
		}
	}

	if profile.FinancialNeed != "" {
		need := strings.ToLower(profile.FinancialNeed)
		if s.IsNeedBased() && strings.Contains(need, "yes") {
			score += 15
			reasons = append(reasons, "Need-based match")
		}
		if !s.IsNeedBased() && !strings.Contains(need, "yes") {
			score += 5
			reasons = append(reasons, "Merit-based fit")
		}
	}

	if profile.IntendedMajor != "" {
		major := strings.ToLower(profile.IntendedMajor)
		if (strings.Contains(c, "stem") || strings.Contains(c, "science") || strings.Contains(c, "engineering")) &&
			(strings.Contains(major, "science") || strings.Contains(major, "engineering") || strings.Contains(major, "computer") || strings.Contains(major, "math")) {
			score += 15
			reasons = append(reasons, "STEM field match")
		}
	}

	// Length over 30 chars is a cheap "answered for real" heuristic, not a
	// semantic check of the activities text.
	if len(profile.Activities) > 30 {
		if strings.Contains(c, "leadership") {
			score += 10
			reasons = append(reasons, "Leadership valued")
		}
		if strings.Contains(c, "community") || strings.Contains(c, "volunteer") {
			score += 10
			reasons = append(reasons, "Service match")
		}
	}

	if profile.GradYear != "" && (strings.Contains(c, "high school senior") || strings.Contains(c, "graduating")) {
		score += 5
		reasons = append(reasons, "Grade level match")
	}

	if score > 100 {
		score = 100
	}
	return score, reasons
}

// parseGPA parses the free-text GPA answer. Malformed input means the GPA
// rules simply do not apply; it is never an error.
func parseGPA(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	gpa, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return gpa, true
}

// formatGPA prints a GPA with no trailing zeros, so 3.50 reads "3.5" and
// 3.0 reads "3" in reason strings.
func formatGPA(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
