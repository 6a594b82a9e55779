package model

import (
	"time"

	"github.com/google/uuid"
)

type Letter struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProfileID   uuid.UUID `gorm:"type:uuid;index" json:"profile_id"`
	Scholarship string    `json:"scholarship"` // display label, not a foreign key: custom scholarships have no catalog row
	TemplateID  string    `gorm:"type:varchar(50)" json:"template_id"`
	Body        string    `gorm:"type:text" json:"body"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (l *Letter) TableName() string {
	return "letters"
}
