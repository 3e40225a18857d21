package handler

import (
	"net/url"

	"examdrill/internal/domain"
	"examdrill/internal/dto"
	"examdrill/internal/service"
	"examdrill/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AttemptHandler handles attempt-related HTTP requests
type AttemptHandler struct {
	attempts  service.AttemptService
	validator *validation.Validator
}

// NewAttemptHandler creates a new AttemptHandler instance
func NewAttemptHandler(attempts service.AttemptService) *AttemptHandler {
	return &AttemptHandler{
		attempts:  attempts,
		validator: validation.NewValidator(),
	}
}

// SaveAttempt godoc
// @Summary Save a finished practice attempt
// @Description Persists the attempt. The percentage is recomputed on the server from correctAnswers and questionsCount.
// @Tags attempts
// @Accept json
// @Produce json
// @Param attempt body dto.SaveAttemptRequest true "Attempt"
// @Success 201 {object} dto.AttemptResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /attempts [post]
func (h *AttemptHandler) SaveAttempt(c *fiber.Ctx) error {
	var req dto.SaveAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateSaveAttemptRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.attempts.SaveAttempt(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetAttempts godoc
// @Summary Get all attempts
// @Description Returns every saved attempt, newest first
// @Tags attempts
// @Produce json
// @Success 200 {object} dto.AttemptsResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /attempts [get]
func (h *AttemptHandler) GetAttempts(c *fiber.Ctx) error {
	resp, err := h.attempts.GetAttempts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetAttemptsByTitle godoc
// @Summary Get attempts for one title
// @Tags attempts
// @Produce json
// @Param title path string true "Exam title"
// @Success 200 {object} dto.AttemptsResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /attempts/title/{title} [get]
func (h *AttemptHandler) GetAttemptsByTitle(c *fiber.Ctx) error {
	title := c.Params("title")
	if decoded, err := url.PathUnescape(title); err == nil {
		title = decoded
	}

	resp, err := h.attempts.GetAttemptsByTitle(c.Context(), title)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
