package usecase

import (
	"github.com/scholarbot/scholarbot-api/internal/catalog"
	"github.com/scholarbot/scholarbot-api/internal/match"
	"github.com/scholarbot/scholarbot-api/internal/repository"
)

type MatchUsecase struct {
	store       *catalog.Store
	profileRepo *repository.ProfileRepository
}

func NewMatchUsecase(store *catalog.Store, profileRepo *repository.ProfileRepository) *MatchUsecase {
	return &MatchUsecase{store: store, profileRepo: profileRepo}
}

// Run loads the profile and ranks the whole catalog snapshot against it.
// match.ErrProfileIncomplete comes back untouched so the handler can turn it
// into a "complete your profile first" response instead of a server fault.
func (uc *MatchUsecase) Run(profileID string) ([]match.Result, error) {
	profile, err := uc.profileRepo.FindProfileByID(profileID)
	if err != nil {
		return nil, err
	}
	return match.Rank(*profile, uc.store.All())
}
