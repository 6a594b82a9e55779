package handler

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/scholarbot/scholarbot-api/internal/dto"
	"github.com/scholarbot/scholarbot-api/internal/match"
	"github.com/scholarbot/scholarbot-api/internal/middleware"
	"github.com/scholarbot/scholarbot-api/internal/questionnaire"
	"github.com/scholarbot/scholarbot-api/internal/usecase"
	"github.com/scholarbot/scholarbot-api/internal/util"
)

type ProfileHandler struct {
	uc       *usecase.ProfileUsecase
	matchUc  *usecase.MatchUsecase
	letterUc *usecase.LetterUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase, matchUc *usecase.MatchUsecase, letterUc *usecase.LetterUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc, matchUc: matchUc, letterUc: letterUc}
}

func (h *ProfileHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/questionnaire", h.Questionnaire)
	app.Post("/profiles", h.Create)
	app.Get("/profiles/:id", h.Get)
	app.Patch("/profiles/:id", h.Patch)
	app.Post("/profiles/:id/brag-sheet", middleware.RateLimiter(5, time.Minute), h.UploadBragSheet)
	app.Post("/profiles/:id/match", h.Match)
	app.Post("/profiles/:id/dossier", middleware.RateLimiter(5, time.Minute), h.Dossier)
}

// Questionnaire exposes the full intake definition so clients never hardcode
// question text.
func (h *ProfileHandler) Questionnaire(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get questionnaire",
		Data: fiber.Map{
			"steps":         questionnaire.Steps(),
			"questions":     questionnaire.Questions(),
			"app_questions": questionnaire.AppQuestions(),
		},
	})
}

func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	profile, err := h.uc.Create()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create profile",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create profile",
		Data:    profile,
	})
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return profileError(c, err, "failed to get profile")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get profile",
		Data:    profile,
	})
}

func (h *ProfileHandler) Patch(c *fiber.Ctx) error {
	patch := new(dto.ProfilePatch)
	if err := c.BodyParser(patch); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	profile, err := h.uc.Patch(c.Params("id"), patch)
	if err != nil {
		return profileError(c, err, "failed to update profile")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update profile",
		Data:    profile,
	})
}

// UploadBragSheet extracts text from an uploaded document and appends it to
// the profile's brag sheet.
func (h *ProfileHandler) UploadBragSheet(c *fiber.Ctx) error {
	content, filename, err := h.processFile(c, "document", "./uploads/brag_sheet/")
	if err != nil {
		return err
	}

	profile, err := h.uc.AppendBragSheet(c.Params("id"), filename, content)
	if err != nil {
		return profileError(c, err, "failed to update brag sheet")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success upload brag sheet",
		Data:    fiber.Map{"brag_sheet": profile.BragSheet},
	})
}

func (h *ProfileHandler) Match(c *fiber.Ctx) error {
	results, err := h.matchUc.Run(c.Params("id"))
	if err != nil {
		if errors.Is(err, match.ErrProfileIncomplete) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusConflict,
				Message: "Please complete your profile before matching",
			})
		}
		return profileError(c, err, "failed to match scholarships")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success match scholarships",
		Data:    fiber.Map{"matches": results, "total": len(results)},
	})
}

func (h *ProfileHandler) Dossier(c *fiber.Ctx) error {
	body, err := h.letterUc.GenerateDossier(c.Context(), c.Params("id"))
	if err != nil {
		return letterError(c, err, "failed to generate dossier")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generate dossier",
		Data:    fiber.Map{"body": body},
	})
}

func (h *ProfileHandler) processFile(c *fiber.Ctx, fieldName, uploadDir string) (string, string, error) {
	file, err := c.FormFile(fieldName)
	if err != nil {
		return "", "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fmt.Sprintf("%s file is required", fieldName),
		}, err)
	}

	if file.Size > 5*1024*1024 {
		return "", "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fmt.Sprintf("%s file size is too large (max 5MB)", fieldName),
		}, nil)
	}

	savePath := filepath.Join(uploadDir, file.Filename)
	if err := c.SaveFile(file, savePath); err != nil {
		return "", "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fmt.Sprintf("cannot save %s file", fieldName),
		}, err)
	}

	content, err := util.ExtractDocumentText(savePath)
	if err != nil {
		return "", "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fmt.Sprintf("failed to extract %s text", fieldName),
		}, err)
	}

	return content, file.Filename, nil
}

func profileError(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "profile not found",
		})
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Message: fallback,
	}, err)
}
