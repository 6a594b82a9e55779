package dto

import (
	"github.com/scholarbot/scholarbot-api/internal/model"
)

// ProfilePatch carries a field-by-field profile update. Nil means "leave the
// field alone"; a pointer to the zero value clears it. App answers are merged
// by question, not replaced wholesale.
type ProfilePatch struct {
	Name             *string           `json:"name"`
	Email            *string           `json:"email"`
	Phone            *string           `json:"phone"`
	Location         *string           `json:"location"`
	Citizenship      *string           `json:"citizenship"`
	Ethnicity        *[]string         `json:"ethnicity"`
	GPA              *string           `json:"gpa"`
	SATACT           *string           `json:"satact"`
	School           *string           `json:"school"`
	GradYear         *string           `json:"grad_year"`
	IntendedMajor    *string           `json:"intended_major"`
	FinancialNeed    *string           `json:"financial_need"`
	Activities       *string           `json:"activities"`
	Awards           *string           `json:"awards"`
	CommunityService *string           `json:"community_service"`
	PersonalStory    *string           `json:"personal_story"`
	CareerGoal       *string           `json:"career_goal"`
	WritingStyle     *string           `json:"writing_style"`
	AppAnswers       map[string]string `json:"app_answers"`
}

// Apply copies the non-nil patch fields onto the profile.
func (p *ProfilePatch) Apply(profile *model.Profile) {
	if p.Name != nil {
		profile.Name = *p.Name
	}
	if p.Email != nil {
		profile.Email = *p.Email
	}
	if p.Phone != nil {
		profile.Phone = *p.Phone
	}
	if p.Location != nil {
		profile.Location = *p.Location
	}
	if p.Citizenship != nil {
		profile.Citizenship = *p.Citizenship
	}
	if p.Ethnicity != nil {
		profile.Ethnicity = *p.Ethnicity
	}
	if p.GPA != nil {
		profile.GPA = *p.GPA
	}
	if p.SATACT != nil {
		profile.SATACT = *p.SATACT
	}
	if p.School != nil {
		profile.School = *p.School
	}
	if p.GradYear != nil {
		profile.GradYear = *p.GradYear
	}
	if p.IntendedMajor != nil {
		profile.IntendedMajor = *p.IntendedMajor
	}
	if p.FinancialNeed != nil {
		profile.FinancialNeed = *p.FinancialNeed
	}
	if p.Activities != nil {
		profile.Activities = *p.Activities
	}
	if p.Awards != nil {
		profile.Awards = *p.Awards
	}
	if p.CommunityService != nil {
		profile.CommunityService = *p.CommunityService
	}
	if p.PersonalStory != nil {
		profile.PersonalStory = *p.PersonalStory
	}
	if p.CareerGoal != nil {
		profile.CareerGoal = *p.CareerGoal
	}
	if p.WritingStyle != nil {
		profile.WritingStyle = *p.WritingStyle
	}
	if len(p.AppAnswers) > 0 {
		if profile.AppAnswers == nil {
			profile.AppAnswers = make(map[string]string, len(p.AppAnswers))
		}
		for q, a := range p.AppAnswers {
			profile.AppAnswers[q] = a
		}
	}
}

type ProfileDTO struct {
	model.Profile
	Completion int `json:"completion"`
}
