package questionnaire

// AppQuestions are the common application essay prompts students practice
// answers for; answers are stored on the profile and fed into letter
// generation as extra context.
func AppQuestions() []string {
	return []string{
		"Tell us about yourself and your educational goals. (150-300 words)",
		"Describe a challenge you've overcome and what you learned from it. (150-300 words)",
		"How will this scholarship help you achieve your goals? (100-200 words)",
		"Describe your most significant community contribution. (150-250 words)",
		"Why should you be selected for this scholarship? (100-200 words)",
	}
}
