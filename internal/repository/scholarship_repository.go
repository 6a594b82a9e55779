package repository

import (
	"github.com/pgvector/pgvector-go"
	"github.com/scholarbot/scholarbot-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScholarshipRepository mirrors catalog records into Postgres so they can be
// searched semantically via pgvector. The rule-based matching core never
// touches this; it works off the in-memory catalog snapshot.
type ScholarshipRepository struct {
	db *gorm.DB
}

func NewScholarshipRepository(db *gorm.DB) *ScholarshipRepository {
	return &ScholarshipRepository{db}
}

func (r *ScholarshipRepository) UpsertScholarship(s *model.Scholarship) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(s).Error
}

// SearchScholarships returns the topK records nearest to the query embedding.
func (r *ScholarshipRepository) SearchScholarships(embedding pgvector.Vector, topK int) ([]model.Scholarship, error) {
	var scholarships []model.Scholarship
	err := r.db.Raw(`
        SELECT *, embedding <-> ? AS distance
        FROM scholarships
        ORDER BY embedding <-> ?
        LIMIT ?
    `, embedding, embedding, topK).Scan(&scholarships).Error
	return scholarships, err
}
