package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scholarbot/scholarbot-api/internal/dto"
	"github.com/scholarbot/scholarbot-api/internal/model"
)

func TestProfileSummaryDefaults(t *testing.T) {
	summary := profileSummary(model.Profile{Name: "Jordan Avery"})

	assert.Contains(t, summary, "CANDIDATE: Jordan Avery")
	assert.Contains(t, summary, "LOCATION: N/A")
	assert.Contains(t, summary, "WRITING VOICE: Warm and narrative")
	assert.Contains(t, summary, "BRAG SHEET: None")
}

func TestProfileSummaryUsesAnswers(t *testing.T) {
	p := model.Profile{
		Name:         "Jordan Avery",
		GPA:          "3.8",
		WritingStyle: "Direct and evidence-based",
		BragSheet:    "Won the regional science fair",
		AppAnswers:   map[string]string{"q1": "my answer"},
	}
	summary := profileSummary(p)

	assert.Contains(t, summary, "GPA: 3.8")
	assert.Contains(t, summary, "WRITING VOICE: Direct and evidence-based")
	assert.Contains(t, summary, "Won the regional science fair")
	assert.Contains(t, summary, "my answer")
}

func TestBuildSystemPrompt(t *testing.T) {
	tmpl := model.DefaultTemplates()[0]
	prompt := buildSystemPrompt(model.Profile{Name: "Jordan"}, tmpl)

	assert.Contains(t, prompt, tmpl.Name)
	assert.Contains(t, prompt, tmpl.Rules)
	assert.Contains(t, prompt, "ANTI-DETECTION RULES")
	// Graduation year defaults when unanswered.
	assert.Contains(t, prompt, "2026 high school student")
}

func TestQuestionAnswer(t *testing.T) {
	p := model.Profile{
		Name:      "Jordan",
		Ethnicity: []string{"Hispanic/Latino", "Multiracial"},
	}

	assert.Equal(t, "Jordan", questionAnswer(p, "name"))
	assert.Equal(t, "Hispanic/Latino, Multiracial", questionAnswer(p, "ethnicity"))
	assert.Equal(t, "N/A", questionAnswer(p, "gpa"))
	assert.Equal(t, "N/A", questionAnswer(p, "unknown-id"))
}

func TestSaveRejectsBadInput(t *testing.T) {
	uc := &LetterUsecase{}

	_, err := uc.Save(&dto.SaveLetterRequest{ProfileID: "not-a-uuid", Body: "text"})
	assert.Error(t, err)

	_, err = uc.Save(&dto.SaveLetterRequest{
		ProfileID: "a91bc024-0000-0000-0000-000000000000",
		Body:      "   ",
	})
	assert.Error(t, err)
}

func TestStripHTML(t *testing.T) {
	page := `<html><head><style>body{color:red}</style><script>alert(1)</script></head>` +
		`<body><h1>STEM Award</h1><p>For    engineering students</p></body></html>`

	text := htmlTagPattern.ReplaceAllString(page, " ")
	text = strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))

	assert.Equal(t, "STEM Award For engineering students", text)
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color:red")
}

func TestJSONFenceStripping(t *testing.T) {
	fenced := "```json\n{\"name\":\"Gates\"}\n```"
	m := jsonFencePattern.FindStringSubmatch(fenced)
	assert.Equal(t, `{"name":"Gates"}`, m[1])
}
