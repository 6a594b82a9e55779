package dto

// GenerateLetterRequest selects the scholarship either from the catalog
// (ScholarshipID) or from user-provided text (CustomName/CustomText); the
// catalog selection wins when both are present.
type GenerateLetterRequest struct {
	ProfileID     string `json:"profile_id"`
	ScholarshipID string `json:"scholarship_id"`
	CustomName    string `json:"custom_name"`
	CustomText    string `json:"custom_text"`
	CustomURL     string `json:"custom_url"`
	TemplateID    string `json:"template_id"`
}

type SaveLetterRequest struct {
	ProfileID   string `json:"profile_id"`
	Scholarship string `json:"scholarship"`
	TemplateID  string `json:"template_id"`
	Body        string `json:"body"`
}

// ScholarshipImportDTO is the structured summary extracted from a
// scholarship page URL.
type ScholarshipImportDTO struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Criteria     string `json:"criteria"`
	Amount       string `json:"amount"`
	Deadline     string `json:"deadline"`
	Requirements string `json:"requirements"`
}
