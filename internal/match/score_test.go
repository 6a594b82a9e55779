package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarbot/scholarbot-api/internal/model"
)

func fullProfile() model.Profile {
	return model.Profile{
		Name:          "Jordan Avery",
		Citizenship:   "U.S. Citizen",
		Ethnicity:     []string{"Hispanic/Latino"},
		GPA:           "3.8",
		FinancialNeed: "Yes, significant need",
		IntendedMajor: "Computer Science",
		Activities:    "Robotics club captain, debate team, weekend volunteering at the food bank",
		GradYear:      "2026",
	}
}

func TestScoreCitizenship(t *testing.T) {
	p := model.Profile{Citizenship: "U.S. Citizen"}

	score, reasons := Score(p, model.Scholarship{Criteria: "Open to U.S. citizens and permanent residents"})
	assert.Equal(t, 20, score)
	assert.Equal(t, []string{"Citizenship eligible"}, reasons)

	// Dual citizens count as eligible too.
	p.Citizenship = "Dual citizen"
	score, _ = Score(p, model.Scholarship{Criteria: "Open to U.S. citizens"})
	assert.Equal(t, 20, score)

	p.Citizenship = "DACA recipient"
	score, reasons = Score(p, model.Scholarship{Criteria: "DACA students encouraged to apply"})
	assert.Equal(t, 25, score)
	assert.Equal(t, []string{"DACA eligible"}, reasons)
}

func TestScoreHeritage(t *testing.T) {
	tests := []struct {
		name      string
		ethnicity []string
		criteria  string
		schName   string
		want      int
	}{
		{"african american criteria", []string{"Black/African American"}, "For African American students", "", 25},
		{"black keyword", []string{"Black/African American"}, "Supporting Black students in the arts", "", 25},
		{"hispanic via name", []string{"Hispanic/Latino"}, "Graduating seniors", "Hispanic Heritage Fund", 25},
		{"asian pacific islander", []string{"Asian/Pacific Islander"}, "Open to Pacific Islander students", "", 25},
		{"native american", []string{"Native American"}, "Enrolled tribal members only", "", 25},
		{"no ethnicity answered", nil, "For African American students", "", 0},
		{"ethnicity does not match", []string{"White"}, "For African American students", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.Profile{Ethnicity: tt.ethnicity}
			score, reasons := Score(p, model.Scholarship{Name: tt.schName, Criteria: tt.criteria})
			assert.Equal(t, tt.want, score)
			if tt.want > 0 {
				assert.Equal(t, []string{"Heritage match"}, reasons)
			} else {
				assert.Empty(t, reasons)
			}
		})
	}
}

func TestScoreHeritageStacks(t *testing.T) {
	// A record naming several eligible groups stacks one bonus per group
	// the student belongs to.
	p := model.Profile{Ethnicity: []string{"Black/African American", "Hispanic/Latino"}}
	s := model.Scholarship{Criteria: "For African American and Hispanic students"}

	score, reasons := Score(p, s)
	assert.Equal(t, 50, score)
	assert.Equal(t, []string{"Heritage match", "Heritage match"}, reasons)
}

func TestScoreGPA(t *testing.T) {
	tests := []struct {
		name       string
		gpa        string
		criteria   string
		wantScore  int
		wantReason string
	}{
		{"meets explicit requirement", "3.8", "3.5+ GPA required", 15, "GPA 3.8 meets 3.5 req"},
		{"gpa of phrasing", "3.2", "Minimum GPA of 3.0", 15, "GPA 3.2 meets 3 req"},
		{"below explicit requirement", "3.2", "3.5+ GPA required", 0, ""},
		{"strong gpa without requirement", "3.4", "Graduating seniors with leadership", 10, "Strong GPA"},
		{"weak gpa without requirement", "2.1", "Graduating seniors", 0, ""},
		{"unanswered gpa", "", "3.5+ GPA required", 0, ""},
		{"unparseable gpa", "around 3.5", "3.5+ GPA required", 0, ""},
		// Two-decimal requirements are not recognized as explicit, so this
		// profile picks up the generic strong-GPA bonus instead.
		{"two decimal requirement ignored", "3.8", "3.25 GPA minimum", 10, "Strong GPA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.Profile{GPA: tt.gpa}
			score, reasons := Score(p, model.Scholarship{Criteria: tt.criteria})
			assert.Equal(t, tt.wantScore, score)
			if tt.wantReason != "" {
				require.Len(t, reasons, 1)
				assert.Equal(t, tt.wantReason, reasons[0])
			} else {
				assert.Empty(t, reasons)
			}
		})
	}
}

func TestScoreFinancialNeed(t *testing.T) {
	needBased := model.Scholarship{Criteria: "Demonstrated financial need", NeedBased: "Y"}
	merit := model.Scholarship{Criteria: "Academic excellence", NeedBased: "N"}

	p := model.Profile{FinancialNeed: "Yes, significant need"}
	score, reasons := Score(p, needBased)
	assert.Equal(t, 15, score)
	assert.Equal(t, []string{"Need-based match"}, reasons)

	score, _ = Score(p, merit)
	assert.Equal(t, 0, score)

	p.FinancialNeed = "No significant need"
	score, reasons = Score(p, merit)
	assert.Equal(t, 5, score)
	assert.Equal(t, []string{"Merit-based fit"}, reasons)

	score, _ = Score(p, needBased)
	assert.Equal(t, 0, score)

	// Unanswered need question fires neither rule.
	p.FinancialNeed = ""
	score, _ = Score(p, merit)
	assert.Equal(t, 0, score)
}

func TestScoreSTEM(t *testing.T) {
	s := model.Scholarship{Criteria: "Pursuing a degree in engineering or science"}

	for _, major := range []string{"Computer Science", "Mechanical Engineering", "Applied Math"} {
		score, reasons := Score(model.Profile{IntendedMajor: major}, s)
		assert.Equal(t, 15, score, major)
		assert.Equal(t, []string{"STEM field match"}, reasons)
	}

	score, _ := Score(model.Profile{IntendedMajor: "History"}, s)
	assert.Equal(t, 0, score)
}

func TestScoreActivities(t *testing.T) {
	long := "Robotics club captain, debate team, weekend volunteering at the food bank"
	s := model.Scholarship{Criteria: "Leadership and community service required"}

	score, reasons := Score(model.Profile{Activities: long}, s)
	assert.Equal(t, 20, score)
	assert.Equal(t, []string{"Leadership valued", "Service match"}, reasons)

	// Short answers are treated as unanswered.
	score, _ = Score(model.Profile{Activities: "chess club"}, s)
	assert.Equal(t, 0, score)
}

func TestScoreGradeLevel(t *testing.T) {
	p := model.Profile{GradYear: "2026"}

	score, reasons := Score(p, model.Scholarship{Criteria: "High school seniors only"})
	assert.Equal(t, 5, score)
	assert.Equal(t, []string{"Grade level match"}, reasons)

	score, _ = Score(p, model.Scholarship{Criteria: "Graduating students welcome"})
	assert.Equal(t, 5, score)

	score, _ = Score(model.Profile{}, model.Scholarship{Criteria: "High school seniors only"})
	assert.Equal(t, 0, score)
}

func TestScoreClampAndBounds(t *testing.T) {
	p := fullProfile()
	p.Ethnicity = []string{"Black/African American", "Hispanic/Latino", "Asian", "Native American"}
	s := model.Scholarship{
		Name:      "Asian and Hispanic Heritage Award",
		Criteria:  "For African American, Hispanic, Asian, Native American and tribal students; U.S. citizen; 3.0+ GPA; leadership and community service; high school senior",
		NeedBased: "N",
	}

	score, reasons := Score(p, s)
	assert.Equal(t, 100, score)
	assert.NotEmpty(t, reasons)
}

func TestScoreCitizenAndGPACombined(t *testing.T) {
	p := model.Profile{Citizenship: "U.S. Citizen", GPA: "3.8"}
	s := model.Scholarship{Criteria: "U.S. citizen high school senior with leadership. 3.5+ GPA."}

	score, reasons := Score(p, s)
	assert.Equal(t, 35, score)
	assert.Equal(t, []string{"Citizenship eligible", "GPA 3.8 meets 3.5 req"}, reasons)

	// Grade-level rule stacks once the graduation year is answered.
	p.GradYear = "2026"
	score, _ = Score(p, s)
	assert.Equal(t, 40, score)
}

func TestScoreDeterministic(t *testing.T) {
	p := fullProfile()
	s := model.Scholarship{Criteria: "U.S. citizen, 3.5+ GPA, leadership, community service, high school senior", NeedBased: "Y"}

	score1, reasons1 := Score(p, s)
	score2, reasons2 := Score(p, s)
	assert.Equal(t, score1, score2)
	assert.Equal(t, reasons1, reasons2)
	assert.Positive(t, score1)
}

func TestScoreEmptyProfile(t *testing.T) {
	score, reasons := Score(model.Profile{}, model.Scholarship{
		Criteria:  "U.S. citizen, 3.0+ GPA, leadership, community service",
		NeedBased: "Y",
	})
	assert.Equal(t, 0, score)
	assert.Empty(t, reasons)
}
