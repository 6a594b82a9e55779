package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pgvector/pgvector-go"
	"github.com/scholarbot/scholarbot-api/internal/catalog"
	"github.com/scholarbot/scholarbot-api/internal/dto"
	"github.com/scholarbot/scholarbot-api/internal/match"
	"github.com/scholarbot/scholarbot-api/internal/model"
	"github.com/scholarbot/scholarbot-api/internal/repository"
	"github.com/scholarbot/scholarbot-api/internal/service"
)

type CatalogUsecase struct {
	store           *catalog.Store
	supabase        *catalog.SupabaseClient
	scholarshipRepo *repository.ScholarshipRepository
	gemini          service.GeminiServiceInterface
}

func NewCatalogUsecase(store *catalog.Store, supabase *catalog.SupabaseClient, scholarshipRepo *repository.ScholarshipRepository, gemini service.GeminiServiceInterface) *CatalogUsecase {
	return &CatalogUsecase{store: store, supabase: supabase, scholarshipRepo: scholarshipRepo, gemini: gemini}
}

// List filters the catalog snapshot and decorates each record with its
// derived deadline status.
func (uc *CatalogUsecase) List(query string, need match.NeedFilter) dto.CatalogDTO {
	now := time.Now()
	filtered := match.Filter(uc.store.All(), query, need)

	items := make([]dto.ScholarshipDTO, 0, len(filtered))
	for _, s := range filtered {
		items = append(items, dto.ScholarshipDTO{
			Scholarship:    s,
			DeadlineStatus: match.DeadlineStatus(s.Deadline, now),
		})
	}

	source, lastSynced := uc.store.Source()
	out := dto.CatalogDTO{
		Scholarships: items,
		Total:        uc.store.Len(),
		Source:       source,
	}
	if !lastSynced.IsZero() {
		out.LastSynced = lastSynced.Format("2006-01-02")
	}
	return out
}

// Sync fetches the hosted catalog and swaps it in atomically. A fetch or
// validation failure leaves the current snapshot untouched.
func (uc *CatalogUsecase) Sync(ctx context.Context) (int, error) {
	records, err := uc.supabase.FetchScholarships(ctx)
	if err != nil {
		return 0, err
	}
	if err := uc.store.Replace(records); err != nil {
		return 0, err
	}
	log.Printf("catalog synced: %d scholarships", len(records))
	return len(records), nil
}

// RebuildEmbeddings mirrors the current snapshot into Postgres with a fresh
// embedding per record, enabling semantic search.
func (uc *CatalogUsecase) RebuildEmbeddings(ctx context.Context) (int, error) {
	records := uc.store.All()
	for i := range records {
		text := records[i].Name + "\n" + records[i].Criteria
		vec, err := uc.gemini.GenerateEmbedding(ctx, text)
		if err != nil {
			return i, fmt.Errorf("embed scholarship %s: %w", records[i].ID, err)
		}
		records[i].Embedding = pgvector.NewVector(vec)
		if err := uc.scholarshipRepo.UpsertScholarship(&records[i]); err != nil {
			return i, fmt.Errorf("upsert scholarship %s: %w", records[i].ID, err)
		}
	}
	return len(records), nil
}

// SemanticSearch embeds the query and returns the nearest scholarships from
// the mirrored table. Requires RebuildEmbeddings to have run at least once.
func (uc *CatalogUsecase) SemanticSearch(ctx context.Context, query string, topK int) ([]model.Scholarship, error) {
	if topK <= 0 {
		topK = 5
	}
	vec, err := uc.gemini.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, err
	}
	return uc.scholarshipRepo.SearchScholarships(pgvector.NewVector(vec), topK)
}
