package repository

import (
	"github.com/scholarbot/scholarbot-api/internal/model"
	"gorm.io/gorm"
)

type LetterRepository struct {
	db *gorm.DB
}

func NewLetterRepository(db *gorm.DB) *LetterRepository {
	return &LetterRepository{db}
}

func (r *LetterRepository) CreateLetter(l *model.Letter) error {
	return r.db.Create(l).Error
}

func (r *LetterRepository) FindLettersByProfile(profileID string) ([]model.Letter, error) {
	var letters []model.Letter
	err := r.db.Where("profile_id = ?", profileID).Order("created_at DESC").Find(&letters).Error
	return letters, err
}

func (r *LetterRepository) FindLetterByID(id string) (*model.Letter, error) {
	var l model.Letter
	err := r.db.First(&l, "id = ?", id).Error
	return &l, err
}
