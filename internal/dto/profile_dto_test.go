package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scholarbot/scholarbot-api/internal/model"
)

func strPtr(s string) *string { return &s }

func TestProfilePatchApply(t *testing.T) {
	profile := model.Profile{Name: "Old Name", GPA: "3.2"}

	patch := ProfilePatch{
		Name:      strPtr("New Name"),
		Ethnicity: &[]string{"Hispanic/Latino"},
	}
	patch.Apply(&profile)

	assert.Equal(t, "New Name", profile.Name)
	assert.Equal(t, []string{"Hispanic/Latino"}, profile.Ethnicity)
	// Untouched fields keep their value.
	assert.Equal(t, "3.2", profile.GPA)
}

func TestProfilePatchClearsWithZeroPointer(t *testing.T) {
	profile := model.Profile{GPA: "3.2"}

	patch := ProfilePatch{GPA: strPtr("")}
	patch.Apply(&profile)

	assert.Empty(t, profile.GPA)
}

func TestProfilePatchMergesAppAnswers(t *testing.T) {
	profile := model.Profile{AppAnswers: map[string]string{
		"q1": "kept",
		"q2": "overwritten",
	}}

	patch := ProfilePatch{AppAnswers: map[string]string{
		"q2": "new answer",
		"q3": "added",
	}}
	patch.Apply(&profile)

	assert.Equal(t, "kept", profile.AppAnswers["q1"])
	assert.Equal(t, "new answer", profile.AppAnswers["q2"])
	assert.Equal(t, "added", profile.AppAnswers["q3"])
}

func TestProfilePatchInitializesNilAppAnswers(t *testing.T) {
	profile := model.Profile{}

	patch := ProfilePatch{AppAnswers: map[string]string{"q1": "a"}}
	patch.Apply(&profile)

	assert.Equal(t, "a", profile.AppAnswers["q1"])
}
