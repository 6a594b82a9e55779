package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/scholarbot/scholarbot-api/internal/dto"
	"github.com/scholarbot/scholarbot-api/internal/match"
	"github.com/scholarbot/scholarbot-api/internal/model"
	"github.com/scholarbot/scholarbot-api/internal/questionnaire"
	"github.com/scholarbot/scholarbot-api/internal/repository"
	"github.com/scholarbot/scholarbot-api/internal/service"

	"github.com/scholarbot/scholarbot-api/internal/catalog"
)

const generationModel = "gemini-2.5-flash"

type LetterUsecase struct {
	store        *catalog.Store
	profileRepo  *repository.ProfileRepository
	letterRepo   *repository.LetterRepository
	templateRepo *repository.TemplateRepository
	gemini       service.GeminiServiceInterface
	web          *resty.Client
}

func NewLetterUsecase(store *catalog.Store, profileRepo *repository.ProfileRepository, letterRepo *repository.LetterRepository, templateRepo *repository.TemplateRepository, gemini service.GeminiServiceInterface) *LetterUsecase {
	return &LetterUsecase{
		store:        store,
		profileRepo:  profileRepo,
		letterRepo:   letterRepo,
		templateRepo: templateRepo,
		gemini:       gemini,
		web:          resty.New().SetTimeout(20 * time.Second),
	}
}

// Generate produces an application letter for a catalog scholarship or a
// user-provided one. AI failures come back as errors; there is no automatic
// retry, the student retries from the UI.
func (uc *LetterUsecase) Generate(ctx context.Context, req *dto.GenerateLetterRequest) (string, error) {
	profile, err := uc.profileRepo.FindProfileByID(req.ProfileID)
	if err != nil {
		return "", err
	}
	if profile.Name == "" {
		return "", match.ErrProfileIncomplete
	}

	label, details, err := uc.resolveScholarship(req)
	if err != nil {
		return "", err
	}

	tmpl := uc.resolveTemplate(req.TemplateID)
	system := buildSystemPrompt(*profile, tmpl)
	prompt := fmt.Sprintf("Write a scholarship application letter for %q.\n\n%s\n\nWrite a compelling, authentic letter (350-500 words). Make it feel HUMAN, not AI-generated.", label, details)

	return uc.gemini.GenerateText(ctx, generationModel, system, prompt)
}

func (uc *LetterUsecase) resolveScholarship(req *dto.GenerateLetterRequest) (label, details string, err error) {
	if req.ScholarshipID != "" {
		s, ok := uc.store.Get(req.ScholarshipID)
		if !ok {
			return "", "", fmt.Errorf("scholarship %q not found in catalog", req.ScholarshipID)
		}
		details = fmt.Sprintf("SCHOLARSHIP DETAILS (from database):\n- Name: %s\n- Criteria: %s\n- Amount: %s\n- Link: %s", s.Name, s.Criteria, s.Amount, s.Link)
		return s.Name, details, nil
	}

	text := strings.TrimSpace(req.CustomText)
	if text == "" {
		return "", "", fmt.Errorf("either a catalog scholarship or custom scholarship details are required")
	}
	if len(text) > 8000 {
		text = text[:8000]
	}
	label = req.CustomName
	if label == "" {
		label = "Custom Scholarship"
	}
	name := req.CustomName
	if name == "" {
		name = "Not specified"
	}
	var urlLine string
	if req.CustomURL != "" {
		urlLine = fmt.Sprintf("- URL: %s\n", req.CustomURL)
	}
	details = fmt.Sprintf("SCHOLARSHIP DETAILS (provided by user):\n- Name: %s\n%s- Full Description:\n%s", name, urlLine, text)
	return label, details, nil
}

func (uc *LetterUsecase) resolveTemplate(id string) model.Template {
	if id != "" {
		if t, err := uc.templateRepo.FindTemplateByID(id); err == nil {
			return *t
		}
	}
	return model.DefaultTemplates()[0]
}

func buildSystemPrompt(p model.Profile, tmpl model.Template) string {
	gradYear := p.GradYear
	if gradYear == "" {
		gradYear = "2026"
	}
	return fmt.Sprintf(`You are a scholarship application letter writer. Write in the candidate's authentic voice — NOT like an AI.

STYLE TEMPLATE: %q
RULES: %s

CRITICAL ANTI-DETECTION RULES:
1. NEVER use: "delve," "cutting-edge," "landscape," "foster," "tapestry," "game-changer," "testament," "unwavering," "thrilled," "elevate," "synergy"
2. Vary sentence length. Mix short punchy sentences with longer ones.
3. Use specific details — names, dates, numbers, places.
4. Sound like a real %s high school student.
5. NO em-dashes. Use periods or commas.
6. Don't start paragraphs with "Additionally," "Furthermore," or "Moreover."
7. Open with something MEMORABLE.

CANDIDATE PROFILE:
%s`, tmpl.Name, tmpl.Rules, gradYear, profileSummary(p))
}

func profileSummary(p model.Profile) string {
	answers, _ := json.Marshal(p.AppAnswers)
	writingStyle := p.WritingStyle
	if writingStyle == "" {
		writingStyle = "Warm and narrative"
	}
	bragSheet := p.BragSheet
	if bragSheet == "" {
		bragSheet = "None"
	}
	return fmt.Sprintf("CANDIDATE: %s\nLOCATION: %s\nCITIZENSHIP: %s\nHERITAGE: %s\nGPA: %s | TEST SCORES: %s\nINTENDED MAJOR: %s\nGRADUATION: %s\nFINANCIAL NEED: %s\nACTIVITIES: %s\nAWARDS: %s\nCOMMUNITY SERVICE: %s\nPERSONAL STORY: %s\nCAREER GOAL: %s\nWRITING VOICE: %s\nBRAG SHEET: %s\nAPP ANSWERS: %s",
		p.Name, orNA(p.Location), orNA(p.Citizenship), strings.Join(p.Ethnicity, ", "),
		orNA(p.GPA), orNA(p.SATACT), orNA(p.IntendedMajor), orNA(p.GradYear),
		orNA(p.FinancialNeed), orNA(p.Activities), orNA(p.Awards),
		orNA(p.CommunityService), orNA(p.PersonalStory), orNA(p.CareerGoal),
		writingStyle, bragSheet, string(answers))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// GenerateDossier builds a reusable markdown candidate profile from the full
// questionnaire, for students who paste it into other application tools.
func (uc *LetterUsecase) GenerateDossier(ctx context.Context, profileID string) (string, error) {
	profile, err := uc.profileRepo.FindProfileByID(profileID)
	if err != nil {
		return "", err
	}
	if profile.Name == "" {
		return "", match.ErrProfileIncomplete
	}

	var b strings.Builder
	for _, q := range questionnaire.Questions() {
		fmt.Fprintf(&b, "%s: %s\n", q.Prompt, questionAnswer(*profile, q.ID))
	}
	prompt := fmt.Sprintf(`Create a candidate profile in Markdown format for scholarship applications:

# Candidate Profile: [Name]

**Contact Info:**
* Email / Phone / Location

**Voice:** [Describe their writing voice]

**Humanization & Anti-Detection Rules (CRITICAL):**
[4 specific rules]

**Key Directives:**
[5 directives based on strongest assets]

BASE THIS ON:
%s`, b.String())
	if profile.BragSheet != "" {
		prompt += "\nBRAG SHEET:\n" + profile.BragSheet
	}
	if len(profile.AppAnswers) > 0 {
		answers, _ := json.Marshal(profile.AppAnswers)
		prompt += "\nAPPLICATION ANSWERS:\n" + string(answers)
	}

	return uc.gemini.GenerateText(ctx, generationModel, "", prompt)
}

func questionAnswer(p model.Profile, id string) string {
	switch id {
	case "name":
		return orNA(p.Name)
	case "email":
		return orNA(p.Email)
	case "phone":
		return orNA(p.Phone)
	case "location":
		return orNA(p.Location)
	case "citizenship":
		return orNA(p.Citizenship)
	case "ethnicity":
		if len(p.Ethnicity) == 0 {
			return "N/A"
		}
		return strings.Join(p.Ethnicity, ", ")
	case "gpa":
		return orNA(p.GPA)
	case "satact":
		return orNA(p.SATACT)
	case "school":
		return orNA(p.School)
	case "gradYear":
		return orNA(p.GradYear)
	case "intendedMajor":
		return orNA(p.IntendedMajor)
	case "financialNeed":
		return orNA(p.FinancialNeed)
	case "activities":
		return orNA(p.Activities)
	case "awards":
		return orNA(p.Awards)
	case "communityService":
		return orNA(p.CommunityService)
	case "personalStory":
		return orNA(p.PersonalStory)
	case "careerGoal":
		return orNA(p.CareerGoal)
	case "writingStyle":
		return orNA(p.WritingStyle)
	}
	return "N/A"
}

var (
	htmlTagPattern    = regexp.MustCompile(`(?s)<script.*?</script>|<style.*?</style>|<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	jsonFencePattern  = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
)

// ImportFromURL fetches a scholarship page, asks the model to pull out the
// key fields as JSON, and returns the structured summary. Best effort: pages
// behind logins or heavy scripts extract poorly.
func (uc *LetterUsecase) ImportFromURL(ctx context.Context, url string) (*dto.ScholarshipImportDTO, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("url is required")
	}

	resp, err := uc.web.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch scholarship page: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch scholarship page: unexpected status %d", resp.StatusCode())
	}

	text := htmlTagPattern.ReplaceAllString(resp.String(), " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	if len(text) > 15000 {
		text = text[:15000]
	}

	prompt := fmt.Sprintf(`Extract the key details of the scholarship described on this page.

Return your answer STRICTLY in JSON format with this schema:
{
  "name": "<scholarship name>",
  "organization": "<sponsoring organization>",
  "criteria": "<eligibility criteria>",
  "amount": "<award amount>",
  "deadline": "<application deadline>",
  "requirements": "<application requirements>"
}

PAGE CONTENT:
%s`, text)

	raw, err := uc.gemini.GenerateText(ctx, generationModel, "", prompt)
	if err != nil {
		return nil, err
	}
	if m := jsonFencePattern.FindStringSubmatch(raw); m != nil {
		raw = m[1]
	}

	out := &dto.ScholarshipImportDTO{
		Name:         gjson.Get(raw, "name").String(),
		Organization: gjson.Get(raw, "organization").String(),
		Criteria:     gjson.Get(raw, "criteria").String(),
		Amount:       gjson.Get(raw, "amount").String(),
		Deadline:     gjson.Get(raw, "deadline").String(),
		Requirements: gjson.Get(raw, "requirements").String(),
	}
	if out.Name == "" && out.Criteria == "" {
		return nil, fmt.Errorf("could not extract scholarship details from %s", url)
	}
	return out, nil
}

func (uc *LetterUsecase) Save(req *dto.SaveLetterRequest) (*model.Letter, error) {
	profileID, err := uuid.Parse(req.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("invalid profile id: %w", err)
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, fmt.Errorf("letter body cannot be empty")
	}
	letter := &model.Letter{
		ProfileID:   profileID,
		Scholarship: req.Scholarship,
		TemplateID:  req.TemplateID,
		Body:        req.Body,
	}
	if err := uc.letterRepo.CreateLetter(letter); err != nil {
		return nil, err
	}
	return letter, nil
}

func (uc *LetterUsecase) List(profileID string) ([]model.Letter, error) {
	return uc.letterRepo.FindLettersByProfile(profileID)
}

func (uc *LetterUsecase) Templates() ([]model.Template, error) {
	return uc.templateRepo.GetTemplates()
}

// UpdateTemplate rewrites the prompt rules of a template. Name and icon stay
// fixed so the preset list keeps its shape.
func (uc *LetterUsecase) UpdateTemplate(id, description, rules string) (*model.Template, error) {
	tmpl, err := uc.templateRepo.FindTemplateByID(id)
	if err != nil {
		return nil, err
	}
	if description != "" {
		tmpl.Description = description
	}
	if rules != "" {
		tmpl.Rules = rules
	}
	if err := uc.templateRepo.UpdateTemplate(tmpl); err != nil {
		return nil, err
	}
	return tmpl, nil
}
