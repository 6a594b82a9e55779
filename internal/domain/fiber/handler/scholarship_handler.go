package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/scholarbot/scholarbot-api/internal/match"
	"github.com/scholarbot/scholarbot-api/internal/middleware"
	"github.com/scholarbot/scholarbot-api/internal/response"
	"github.com/scholarbot/scholarbot-api/internal/usecase"
	"github.com/scholarbot/scholarbot-api/internal/util"
)

type ScholarshipHandler struct {
	uc *usecase.CatalogUsecase
}

func NewScholarshipHandler(uc *usecase.CatalogUsecase) *ScholarshipHandler {
	return &ScholarshipHandler{uc: uc}
}

func (h *ScholarshipHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/scholarships", h.List)
	app.Post("/scholarships/sync", middleware.RateLimiter(1, 30*time.Second), h.Sync)
	app.Get("/scholarships/semantic-search", h.SemanticSearch)
	app.Post("/scholarships/rebuild-embeddings", middleware.RateLimiter(1, 5*time.Minute), h.RebuildEmbeddings)
}

// List returns the filtered catalog, paginated, with deadline statuses.
func (h *ScholarshipHandler) List(c *fiber.Ctx) error {
	query := c.Query("q")
	need := match.NeedFilter(c.Query("need", string(match.NeedFilterAll)))
	if need != match.NeedFilterAll && need != match.NeedFilterNeed && need != match.NeedFilterMerit {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "need filter must be one of: all, need, merit",
		})
	}

	catalog := h.uc.List(query, need)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "50"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	total := len(catalog.Scholarships)
	from := (page - 1) * pageSize
	if from > total {
		from = total
	}
	to := from + pageSize
	if to > total {
		to = total
	}
	items := catalog.Scholarships[from:to]
	totalPages := int64((total + pageSize - 1) / pageSize)

	pagination := &response.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: int64(total),
		HasMore:    int64(page) < totalPages,
		From:       from + 1,
		To:         to,
	}
	if total == 0 {
		pagination.From = 0
	}
	catalog.Scholarships = items

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get scholarships",
		Data:       catalog,
		Pagination: pagination,
	})
}

func (h *ScholarshipHandler) Sync(c *fiber.Ctx) error {
	count, err := h.uc.Sync(c.Context())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: "failed to sync scholarship catalog",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success sync scholarship catalog",
		Data:    fiber.Map{"count": count},
	})
}

func (h *ScholarshipHandler) SemanticSearch(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "q query parameter is required",
		})
	}
	topK, _ := strconv.Atoi(c.Query("top_k", "5"))

	scholarships, err := h.uc.SemanticSearch(c.Context(), query, topK)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to search scholarships",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success search scholarships",
		Data:    scholarships,
	})
}

func (h *ScholarshipHandler) RebuildEmbeddings(c *fiber.Ctx) error {
	count, err := h.uc.RebuildEmbeddings(c.Context())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to rebuild embeddings",
			Details: fiber.Map{"embedded": count},
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success rebuild embeddings",
		Data:    fiber.Map{"embedded": count},
	})
}
