package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarbot/scholarbot-api/internal/model"
)

func TestQuestionsReferenceValidSteps(t *testing.T) {
	steps := Steps()
	require.Len(t, steps, 4)

	for _, q := range Questions() {
		assert.NotEmpty(t, q.ID)
		assert.NotEmpty(t, q.Prompt)
		assert.GreaterOrEqual(t, q.Step, 0)
		assert.Less(t, q.Step, len(steps))
		if q.Type == "select" || q.Type == "multiselect" {
			assert.NotEmpty(t, q.Options, q.ID)
		}
	}
}

func TestEveryQuestionHasAnswerMapping(t *testing.T) {
	// A question whose id is unknown to answered() would silently cap the
	// completion percentage below 100.
	full := model.Profile{
		Name: "a", Email: "a", Phone: "a", Location: "a",
		Citizenship: "a", Ethnicity: []string{"a"}, GPA: "a", SATACT: "a",
		School: "a", GradYear: "a", IntendedMajor: "a", FinancialNeed: "a",
		Activities: "a", Awards: "a", CommunityService: "a",
		PersonalStory: "a", CareerGoal: "a", WritingStyle: "a",
	}
	for _, q := range Questions() {
		assert.True(t, answered(full, q.ID), "question %s has no answer mapping", q.ID)
	}
}

func TestCompletion(t *testing.T) {
	assert.Equal(t, 0, Completion(model.Profile{}))

	half := model.Profile{
		Name: "Jordan", Email: "j@example.com", Phone: "555", Location: "Rochester, NY",
		Citizenship: "U.S. Citizen", Ethnicity: []string{"Hispanic/Latino"},
		GPA: "3.8", SATACT: "1350 SAT", School: "Lincoln High",
	}
	assert.Equal(t, 50, Completion(half))

	one := model.Profile{Name: "Jordan"}
	assert.Equal(t, 6, Completion(one))
}
