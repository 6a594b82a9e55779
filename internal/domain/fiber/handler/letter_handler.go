package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/scholarbot/scholarbot-api/internal/dto"
	"github.com/scholarbot/scholarbot-api/internal/match"
	"github.com/scholarbot/scholarbot-api/internal/middleware"
	"github.com/scholarbot/scholarbot-api/internal/usecase"
	"github.com/scholarbot/scholarbot-api/internal/util"
)

type LetterHandler struct {
	uc *usecase.LetterUsecase
}

func NewLetterHandler(uc *usecase.LetterUsecase) *LetterHandler {
	return &LetterHandler{uc: uc}
}

func (h *LetterHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/templates", h.Templates)
	app.Put("/templates/:id", h.UpdateTemplate)
	app.Get("/letters", h.List)
	app.Post("/letters", h.Save)
	app.Post("/letters/generate", middleware.RateLimiter(5, time.Minute), h.Generate)
	app.Post("/scholarships/import", middleware.RateLimiter(5, time.Minute), h.ImportFromURL)
}

func (h *LetterHandler) Templates(c *fiber.Ctx) error {
	templates, err := h.uc.Templates()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get templates",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get templates",
		Data:    templates,
	})
}

func (h *LetterHandler) UpdateTemplate(c *fiber.Ctx) error {
	var req struct {
		Description string `json:"description"`
		Rules       string `json:"rules"`
	}
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	tmpl, err := h.uc.UpdateTemplate(c.Params("id"), req.Description, req.Rules)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "template not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to update template",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update template",
		Data:    tmpl,
	})
}

func (h *LetterHandler) List(c *fiber.Ctx) error {
	profileID := c.Query("profile_id")
	if profileID == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "profile_id query parameter is required",
		})
	}
	letters, err := h.uc.List(profileID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get letters",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get letters",
		Data:    letters,
	})
}

func (h *LetterHandler) Save(c *fiber.Ctx) error {
	req := new(dto.SaveLetterRequest)
	if err := c.BodyParser(req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	letter, err := h.uc.Save(req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success save letter",
		Data:    letter,
	})
}

func (h *LetterHandler) Generate(c *fiber.Ctx) error {
	req := new(dto.GenerateLetterRequest)
	if err := c.BodyParser(req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	body, err := h.uc.Generate(c.Context(), req)
	if err != nil {
		return letterError(c, err, "failed to generate letter")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generate letter",
		Data:    fiber.Map{"body": body},
	})
}

func (h *LetterHandler) ImportFromURL(c *fiber.Ctx) error {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "url is required",
		})
	}
	imported, err := h.uc.ImportFromURL(c.Context(), req.URL)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: "failed to import scholarship from url",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success import scholarship",
		Data:    imported,
	})
}

// letterError maps generation failures onto response codes. An incomplete
// profile is the student's problem, everything else is ours or Gemini's.
func letterError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, match.ErrProfileIncomplete):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: "Please complete your profile before generating documents",
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "profile not found",
		})
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: fallback,
		}, err)
	}
}
