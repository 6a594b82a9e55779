package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// NeedBasedMarker is the catalog value that flags a scholarship as
// targeting demonstrated financial need. Any other value means merit.
const NeedBasedMarker = "Y"

type Scholarship struct {
	ID        string          `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name      string          `json:"name"`
	Criteria  string          `gorm:"type:text" json:"criteria"`
	Link      string          `json:"link"`
	Deadline  string          `gorm:"type:varchar(50)" json:"deadline"` // date string or "Varies"/"Nomination Only"
	Amount    string          `json:"amount"`
	NeedBased string          `gorm:"type:varchar(10)" json:"need_based"`
	Embedding pgvector.Vector `gorm:"type:vector(3072)" json:"-"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (s *Scholarship) TableName() string {
	return "scholarships"
}

// IsNeedBased reports whether the record carries the need-based marker.
func (s *Scholarship) IsNeedBased() bool {
	return s.NeedBased == NeedBasedMarker
}
