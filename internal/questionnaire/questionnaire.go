// Package questionnaire defines the fixed profile questionnaire served to
// the frontend, and computes how much of it a profile has answered.
package questionnaire

import (
	"math"

	"github.com/scholarbot/scholarbot-api/internal/model"
)

type Question struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	Type        string   `json:"type"` // text, select, multiselect, textarea
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
	Step        int      `json:"step"`
}

type Step struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

func Steps() []Step {
	return []Step{
		{Title: "Basic Info", Desc: "Name, contact, and location"},
		{Title: "Background", Desc: "Academics, identity, and school"},
		{Title: "Strengths", Desc: "Major, activities, and achievements"},
		{Title: "Your Story", Desc: "Personal narrative and voice"},
	}
}

func Questions() []Question {
	return []Question{
		{ID: "name", Prompt: "What is your full name?", Type: "text", Placeholder: "First Last", Step: 0},
		{ID: "email", Prompt: "Email address?", Type: "text", Placeholder: "you@email.com", Step: 0},
		{ID: "phone", Prompt: "Phone number?", Type: "text", Placeholder: "(555) 123-4567", Step: 0},
		{ID: "location", Prompt: "Where are you located? (City, State)", Type: "text", Placeholder: "Rochester, NY", Step: 0},
		{ID: "citizenship", Prompt: "Citizenship / Residency status?", Type: "select", Options: []string{"U.S. Citizen", "Dual Citizen (U.S./Canada)", "Permanent Resident", "DACA/TPS", "International Student", "Other"}, Step: 1},
		{ID: "ethnicity", Prompt: "How do you identify? (helps match heritage-specific scholarships)", Type: "multiselect", Options: []string{"African American/Black", "Hispanic/Latino", "Asian/Pacific Islander", "Native American/Indigenous", "White/Caucasian", "Multiracial", "Prefer not to say"}, Step: 1},
		{ID: "gpa", Prompt: "Current GPA (unweighted)?", Type: "text", Placeholder: "3.7", Step: 1},
		{ID: "satact", Prompt: "SAT or ACT score (if taken)?", Type: "text", Placeholder: "1350 SAT or 30 ACT", Step: 1},
		{ID: "school", Prompt: "Current or most recent high school?", Type: "text", Placeholder: "Lincoln High School", Step: 1},
		{ID: "gradYear", Prompt: "Graduation year?", Type: "select", Options: []string{"2025", "2026", "2027", "2028"}, Step: 1},
		{ID: "intendedMajor", Prompt: "Intended college major or field of study?", Type: "text", Placeholder: "Computer Science, Biology, etc.", Step: 2},
		{ID: "financialNeed", Prompt: "Do you demonstrate financial need?", Type: "select", Options: []string{"Yes — Pell-eligible", "Yes — moderate need", "No significant need", "Unsure"}, Step: 2},
		{ID: "activities", Prompt: "List your top 3-5 extracurricular activities / leadership roles:", Type: "textarea", Placeholder: "e.g., Captain of Debate Team, Volunteer at Food Bank, NSBE chapter co-founder...", Step: 2},
		{ID: "awards", Prompt: "Notable awards or honors?", Type: "textarea", Placeholder: "e.g., AP Scholar, Regional Science Fair Winner, Honor Roll...", Step: 2},
		{ID: "communityService", Prompt: "Describe your most impactful community service experience:", Type: "textarea", Placeholder: "What did you do? How many hours? What was the impact?", Step: 3},
		{ID: "personalStory", Prompt: "What is your personal story? What challenges have you overcome?", Type: "textarea", Placeholder: "This is the heart of your application. Be authentic — what makes you, YOU?", Step: 3},
		{ID: "careerGoal", Prompt: "What is your career goal and how does college fit into it?", Type: "textarea", Placeholder: "Where do you see yourself in 10 years? Why does this education matter?", Step: 3},
		{ID: "writingStyle", Prompt: "How would you describe your writing voice?", Type: "select", Options: []string{"Warm and narrative — I tell stories", "Direct and evidence-based — I show data", "Enthusiastic and energetic — I radiate passion", "Reflective and thoughtful — I go deep", "Professional and polished — I sound mature"}, Step: 3},
	}
}

// answer returns the profile's answer for a question id. Multiselect answers
// count as answered when at least one option is selected.
func answered(p model.Profile, id string) bool {
	switch id {
	case "name":
		return p.Name != ""
	case "email":
		return p.Email != ""
	case "phone":
		return p.Phone != ""
	case "location":
		return p.Location != ""
	case "citizenship":
		return p.Citizenship != ""
	case "ethnicity":
		return len(p.Ethnicity) > 0
	case "gpa":
		return p.GPA != ""
	case "satact":
		return p.SATACT != ""
	case "school":
		return p.School != ""
	case "gradYear":
		return p.GradYear != ""
	case "intendedMajor":
		return p.IntendedMajor != ""
	case "financialNeed":
		return p.FinancialNeed != ""
	case "activities":
		return p.Activities != ""
	case "awards":
		return p.Awards != ""
	case "communityService":
		return p.CommunityService != ""
	case "personalStory":
		return p.PersonalStory != ""
	case "careerGoal":
		return p.CareerGoal != ""
	case "writingStyle":
		return p.WritingStyle != ""
	}
	return false
}

// Completion returns the percentage of questionnaire fields answered,
// rounded to the nearest whole percent.
func Completion(p model.Profile) int {
	questions := Questions()
	count := 0
	for _, q := range questions {
		if answered(p, q.ID) {
			count++
		}
	}
	return int(math.Round(float64(count) / float64(len(questions)) * 100))
}
