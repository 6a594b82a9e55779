package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds a student's answers to the fixed questionnaire. Every field
// is optional; an empty value means "no information provided", never a
// negative signal for matching.
type Profile struct {
	ID               uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	Location         string            `json:"location"`
	Citizenship      string            `json:"citizenship"`
	Ethnicity        []string          `gorm:"serializer:json;type:jsonb" json:"ethnicity"`
	GPA              string            `gorm:"column:gpa;type:varchar(20)" json:"gpa"`
	SATACT           string            `gorm:"column:satact;type:varchar(50)" json:"satact"`
	School           string            `json:"school"`
	GradYear         string            `gorm:"type:varchar(10)" json:"grad_year"`
	IntendedMajor    string            `json:"intended_major"`
	FinancialNeed    string            `json:"financial_need"`
	Activities       string            `gorm:"type:text" json:"activities"`
	Awards           string            `gorm:"type:text" json:"awards"`
	CommunityService string            `gorm:"type:text" json:"community_service"`
	PersonalStory    string            `gorm:"type:text" json:"personal_story"`
	CareerGoal       string            `gorm:"type:text" json:"career_goal"`
	WritingStyle     string            `json:"writing_style"`
	BragSheet        string            `gorm:"type:text" json:"brag_sheet"`
	AppAnswers       map[string]string `gorm:"serializer:json;type:jsonb" json:"app_answers"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func (p *Profile) TableName() string {
	return "profiles"
}
