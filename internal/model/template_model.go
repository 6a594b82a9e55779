package model

import "time"

// Template is a writing-style preset for letter generation. The four
// built-in templates can be edited by the user; edits are persisted.
type Template struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name        string    `json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Rules       string    `gorm:"type:text" json:"rules"`
	Icon        string    `gorm:"type:varchar(10)" json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Template) TableName() string {
	return "templates"
}

// DefaultTemplates returns the built-in writing-style presets.
func DefaultTemplates() []Template {
	return []Template{
		{
			ID:          "narrative",
			Name:        "The Storyteller",
			Description: "Opens with a personal anecdote, weaves narrative throughout. Best for scholarships that value personal journey.",
			Rules:       "1. Open with a specific moment or memory. 2. Use I-statements. 3. Connect personal story to scholarship mission. 4. Close with forward-looking vision. 5. NO AI-isms: avoid 'delve','foster','landscape','cutting-edge'.",
			Icon:        "✍",
		},
		{
			ID:          "evidence",
			Name:        "The Scientist",
			Description: "Lead with evidence and accomplishments. Data-driven. Best for STEM and merit-based scholarships.",
			Rules:       "1. Open with a concrete achievement or metric. 2. Use specific numbers and outcomes. 3. Frame experiences as evidence of capability. 4. Connect technical skills to broader impact. 5. NO fluff: replace 'I am passionate about' with 'My work in X demonstrated...'",
			Icon:        "🔬",
		},
		{
			ID:          "mission",
			Name:        "The Mission Matcher",
			Description: "Deeply aligns candidate values with the scholarship's stated mission. Best for foundation and organization scholarships.",
			Rules:       "1. Reference the scholarship's mission statement directly. 2. Mirror their language naturally. 3. Show how your goals amplify their mission. 4. Provide specific examples of aligned work. 5. Keep tone collaborative, not sycophantic.",
			Icon:        "🎯",
		},
		{
			ID:          "underdog",
			Name:        "The Overcomer",
			Description: "Emphasizes resilience, challenges overcome, and growth. Best for need-based and adversity scholarships.",
			Rules:       "1. Be honest about challenges without being pitiful. 2. Show agency — what YOU did about it. 3. Frame hardship as fuel, not excuse. 4. Demonstrate growth trajectory. 5. End with strength and vision, not gratitude alone.",
			Icon:        "💪",
		},
	}
}
