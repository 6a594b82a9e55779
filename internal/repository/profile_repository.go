package repository

import (
	"github.com/scholarbot/scholarbot-api/internal/model"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db}
}

func (r *ProfileRepository) CreateProfile(p *model.Profile) error {
	return r.db.Create(p).Error
}

func (r *ProfileRepository) UpdateProfile(p *model.Profile) error {
	return r.db.Save(p).Error
}

func (r *ProfileRepository) FindProfileByID(id string) (*model.Profile, error) {
	var p model.Profile
	err := r.db.First(&p, "id = ?", id).Error
	return &p, err
}
