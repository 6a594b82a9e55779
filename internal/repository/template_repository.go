package repository

import (
	"github.com/scholarbot/scholarbot-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db}
}

// SeedDefaults inserts the built-in writing-style templates without
// clobbering any user edits already in the table.
func (r *TemplateRepository) SeedDefaults() error {
	defaults := model.DefaultTemplates()
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error
}

func (r *TemplateRepository) GetTemplates() ([]model.Template, error) {
	var templates []model.Template
	err := r.db.Order("id").Find(&templates).Error
	return templates, err
}

func (r *TemplateRepository) FindTemplateByID(id string) (*model.Template, error) {
	var t model.Template
	err := r.db.First(&t, "id = ?", id).Error
	return &t, err
}

func (r *TemplateRepository) UpdateTemplate(t *model.Template) error {
	return r.db.Save(t).Error
}
