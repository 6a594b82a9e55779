package dto

import (
	"github.com/scholarbot/scholarbot-api/internal/match"
	"github.com/scholarbot/scholarbot-api/internal/model"
)

// ScholarshipDTO is a catalog record plus its derived deadline status for
// display.
type ScholarshipDTO struct {
	model.Scholarship
	DeadlineStatus match.DeadlineInfo `json:"deadline_status"`
}

type CatalogDTO struct {
	Scholarships []ScholarshipDTO `json:"scholarships"`
	Total        int              `json:"total"`
	Source       string           `json:"source"`
	LastSynced   string           `json:"last_synced,omitempty"`
}
