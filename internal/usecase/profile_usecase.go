package usecase

import (
	"fmt"

	"github.com/scholarbot/scholarbot-api/internal/dto"
	"github.com/scholarbot/scholarbot-api/internal/model"
	"github.com/scholarbot/scholarbot-api/internal/questionnaire"
	"github.com/scholarbot/scholarbot-api/internal/repository"
)

type ProfileUsecase struct {
	profileRepo *repository.ProfileRepository
}

func NewProfileUsecase(profileRepo *repository.ProfileRepository) *ProfileUsecase {
	return &ProfileUsecase{profileRepo: profileRepo}
}

func (uc *ProfileUsecase) Create() (*model.Profile, error) {
	p := &model.Profile{}
	if err := uc.profileRepo.CreateProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProfileUsecase) Get(id string) (*dto.ProfileDTO, error) {
	p, err := uc.profileRepo.FindProfileByID(id)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileDTO{Profile: *p, Completion: questionnaire.Completion(*p)}, nil
}

// Patch applies a field-by-field update and persists it, mirroring the
// save-after-every-answer behavior of the profile builder UI.
func (uc *ProfileUsecase) Patch(id string, patch *dto.ProfilePatch) (*dto.ProfileDTO, error) {
	p, err := uc.profileRepo.FindProfileByID(id)
	if err != nil {
		return nil, err
	}
	patch.Apply(p)
	if err := uc.profileRepo.UpdateProfile(p); err != nil {
		return nil, err
	}
	return &dto.ProfileDTO{Profile: *p, Completion: questionnaire.Completion(*p)}, nil
}

// AppendBragSheet adds extracted document text to the profile's brag sheet,
// keeping whatever was already there.
func (uc *ProfileUsecase) AppendBragSheet(id, filename, text string) (*model.Profile, error) {
	p, err := uc.profileRepo.FindProfileByID(id)
	if err != nil {
		return nil, err
	}
	if p.BragSheet != "" {
		p.BragSheet = p.BragSheet + fmt.Sprintf("\n\n--- Uploaded from: %s ---\n\n", filename) + text
	} else {
		p.BragSheet = text
	}
	if err := uc.profileRepo.UpdateProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}
