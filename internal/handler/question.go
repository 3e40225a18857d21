package handler

import (
	"net/url"
	"strconv"

	"examdrill/internal/dto"
	"examdrill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// defaultSampleCount is used when the count query parameter is absent
// or not numeric.
const defaultSampleCount = 10

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	questions service.QuestionService
	taxonomy  service.TaxonomyService
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(questions service.QuestionService, taxonomy service.TaxonomyService) *QuestionHandler {
	return &QuestionHandler{
		questions: questions,
		taxonomy:  taxonomy,
	}
}

// GetTitles godoc
// @Summary Get all exam titles
// @Description Returns every title with its exams grouped and ordered for display
// @Tags questions
// @Produce json
// @Success 200 {object} dto.TitlesResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions/titles [get]
func (h *QuestionHandler) GetTitles(c *fiber.Ctx) error {
	resp, err := h.taxonomy.GetTitles(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetFilteredQuestions godoc
// @Summary Get a filtered random sample of questions
// @Description Draws a random sample from the exam's title, restricted to the selected interaction-state categories. The categories combine with OR; with none selected the whole pool is eligible.
// @Tags questions
// @Produce json
// @Param examId query string true "Exam ID"
// @Param includeNew query bool false "Include unanswered questions"
// @Param includeAnswered query bool false "Include answered questions"
// @Param includeFlagged query bool false "Include flagged questions"
// @Param includeIncorrect query bool false "Include missed questions"
// @Param count query int false "Sample size (default 10, 0 or negative for all)"
// @Success 200 {object} dto.FilteredQuestionsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions/filtered [get]
func (h *QuestionHandler) GetFilteredQuestions(c *fiber.Ctx) error {
	req := &dto.FilteredQuestionsRequest{
		ExamID: c.Query("examId"),
		Filter: dto.FilterParams{
			IncludeNew:       c.Query("includeNew") == "true",
			IncludeAnswered:  c.Query("includeAnswered") == "true",
			IncludeFlagged:   c.Query("includeFlagged") == "true",
			IncludeIncorrect: c.Query("includeIncorrect") == "true",
			Count:            parseCount(c.Query("count")),
		},
	}

	resp, err := h.questions.GetFilteredQuestions(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetStats godoc
// @Summary Get question statistics for an exam's title
// @Description Returns per-interaction-category question counts
// @Tags questions
// @Produce json
// @Param examId path string true "Exam ID"
// @Success 200 {object} dto.StatsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/stats/{examId} [get]
func (h *QuestionHandler) GetStats(c *fiber.Ctx) error {
	resp, err := h.questions.GetStats(c.Context(), examIDParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetMetadata godoc
// @Summary Get metadata for one exam
// @Tags questions
// @Produce json
// @Param examId path string true "Exam ID"
// @Success 200 {object} dto.ExamMetadataResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/metadata/{examId} [get]
func (h *QuestionHandler) GetMetadata(c *fiber.Ctx) error {
	resp, err := h.questions.GetMetadata(c.Context(), examIDParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestions godoc
// @Summary Get the questions of one exam
// @Description The synthetic flagged/missed exams return the title's flagged or missed questions
// @Tags questions
// @Produce json
// @Param examId path string true "Exam ID"
// @Success 200 {object} dto.QuestionsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/{examId} [get]
func (h *QuestionHandler) GetQuestions(c *fiber.Ctx) error {
	resp, err := h.questions.GetQuestions(c.Context(), examIDParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// FlagQuestion godoc
// @Summary Flag a question for review
// @Tags questions
// @Produce json
// @Param id query string true "Question ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/flag [put]
func (h *QuestionHandler) FlagQuestion(c *fiber.Ctx) error {
	resp, err := h.questions.FlagQuestion(c.Context(), questionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UnflagQuestion godoc
// @Summary Remove the review flag from a question
// @Tags questions
// @Produce json
// @Param id query string true "Question ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/unflag [put]
func (h *QuestionHandler) UnflagQuestion(c *fiber.Ctx) error {
	resp, err := h.questions.UnflagQuestion(c.Context(), questionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// MarkMissed godoc
// @Summary Mark a question as missed
// @Tags questions
// @Produce json
// @Param id query string true "Question ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/markMissed [put]
func (h *QuestionHandler) MarkMissed(c *fiber.Ctx) error {
	resp, err := h.questions.MarkMissed(c.Context(), questionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UnmarkMissed godoc
// @Summary Clear the missed mark from a question
// @Tags questions
// @Produce json
// @Param id query string true "Question ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/unmarkMissed [put]
func (h *QuestionHandler) UnmarkMissed(c *fiber.Ctx) error {
	resp, err := h.questions.UnmarkMissed(c.Context(), questionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// MarkAnswered godoc
// @Summary Mark a question as answered
// @Tags questions
// @Produce json
// @Param id query string true "Question ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/markAnswered [put]
func (h *QuestionHandler) MarkAnswered(c *fiber.Ctx) error {
	resp, err := h.questions.MarkAnswered(c.Context(), questionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// examIDParam returns the examId path parameter. Exam ids derive from
// titles like "Net+", so the raw segment may be percent-encoded.
func examIDParam(c *fiber.Ctx) string {
	examID := c.Params("examId")
	if decoded, err := url.PathUnescape(examID); err == nil {
		return decoded
	}
	return examID
}

// questionID prefers the value the validation middleware stored.
func questionID(c *fiber.Ctx) string {
	if id, ok := c.Locals("validated_question_id").(string); ok && id != "" {
		return id
	}
	return c.Query("id")
}

func parseCount(raw string) int {
	if raw == "" {
		return defaultSampleCount
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return defaultSampleCount
	}
	return count
}
