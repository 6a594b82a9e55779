package match

import (
	"fmt"
	"math"
	"time"
)

// DeadlineState classifies how a deadline should be styled by the frontend.
// The values double as color class names in the web client's palette.
const (
	DeadlineNeutral = "dim"
	DeadlineUrgent  = "pink"
	DeadlineWarning = "orange"
	DeadlineNormal  = "teal"
)

// DeadlineInfo is the display status derived from a deadline string.
type DeadlineInfo struct {
	Label      string `json:"label"`
	ColorClass string `json:"color_class"`
}

const deadlineLayout = "2006-01-02"

// DeadlineStatus derives a display status for a scholarship deadline.
// Sentinel values ("Varies", "Nomination Only", empty) pass through with a
// neutral status; so do dates that fail to parse. The day count is the
// ceiling of the remaining time, so a deadline later today still reads
// "0d left" rather than expired.
func DeadlineStatus(deadline string, now time.Time) DeadlineInfo {
	if deadline == "" {
		return DeadlineInfo{Label: "Varies", ColorClass: DeadlineNeutral}
	}
	if deadline == "Varies" || deadline == "Nomination Only" {
		return DeadlineInfo{Label: deadline, ColorClass: DeadlineNeutral}
	}

	d, err := time.Parse(deadlineLayout, deadline)
	if err != nil {
		return DeadlineInfo{Label: deadline, ColorClass: DeadlineNeutral}
	}

	days := int(math.Ceil(d.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		return DeadlineInfo{Label: "Expired", ColorClass: DeadlineUrgent}
	case days <= 14:
		return DeadlineInfo{Label: fmt.Sprintf("%dd left", days), ColorClass: DeadlineUrgent}
	case days <= 60:
		return DeadlineInfo{Label: fmt.Sprintf("%dd left", days), ColorClass: DeadlineWarning}
	default:
		return DeadlineInfo{Label: d.Format("Jan 2"), ColorClass: DeadlineNormal}
	}
}
