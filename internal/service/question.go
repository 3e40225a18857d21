package service

import (
	"context"
	"fmt"

	"examdrill/internal/domain"
	"examdrill/internal/dto"
	"examdrill/internal/logger"

	"go.uber.org/zap"
)

// QuestionService defines the interface for question-related operations
type QuestionService interface {
	// GetQuestions returns the questions of one exam. The synthetic
	// flagged/missed exams resolve to title-scoped queries.
	GetQuestions(ctx context.Context, examID string) (*dto.QuestionsResponse, error)

	// GetFilteredQuestions draws a random sample from the exam's title,
	// restricted by the interaction-state filter.
	GetFilteredQuestions(ctx context.Context, req *dto.FilteredQuestionsRequest) (*dto.FilteredQuestionsResponse, error)

	// GetStats returns per-category counts for the exam's title.
	GetStats(ctx context.Context, examID string) (*dto.StatsResponse, error)

	// GetMetadata returns a single exam metadata record.
	GetMetadata(ctx context.Context, examID string) (*dto.ExamMetadataResponse, error)

	// Interaction-state mutators. All are last-write-wins and idempotent.
	FlagQuestion(ctx context.Context, id string) (*dto.MutationResponse, error)
	UnflagQuestion(ctx context.Context, id string) (*dto.MutationResponse, error)
	MarkMissed(ctx context.Context, id string) (*dto.MutationResponse, error)
	UnmarkMissed(ctx context.Context, id string) (*dto.MutationResponse, error)
	MarkAnswered(ctx context.Context, id string) (*dto.MutationResponse, error)
}

// questionService implements QuestionService
type questionService struct {
	questionRepo domain.QuestionRepository
	examRepo     domain.ExamMetadataRepository
}

// NewQuestionService creates a new instance of questionService
func NewQuestionService(questionRepo domain.QuestionRepository, examRepo domain.ExamMetadataRepository) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		examRepo:     examRepo,
	}
}

// GetQuestions implements QuestionService
func (s *questionService) GetQuestions(ctx context.Context, examID string) (*dto.QuestionsResponse, error) {
	meta, err := s.resolveExam(ctx, examID)
	if err != nil {
		return nil, err
	}

	var questions []domain.Question
	switch meta.Kind() {
	case domain.ExamKindFlagged:
		questions, err = s.questionRepo.ListByTitle(ctx, meta.Title, domain.FlaggedOnly())
	case domain.ExamKindMissed:
		questions, err = s.questionRepo.ListByTitle(ctx, meta.Title, domain.MissedOnly())
	default:
		questions, err = s.questionRepo.GetByExamID(ctx, examID)
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to get questions", err)
	}

	if len(questions) == 0 {
		switch meta.Kind() {
		case domain.ExamKindFlagged:
			return nil, domain.NewNotFoundError("No flagged questions found. Flag some questions first.")
		case domain.ExamKindMissed:
			return nil, domain.NewNotFoundError("No missed questions found. Miss some questions first.")
		default:
			return nil, domain.NewNotFoundError(fmt.Sprintf("No questions found for %s. Make sure to import questions first.", examID))
		}
	}

	return &dto.QuestionsResponse{
		Questions: toQuestionResponses(questions),
		Metadata:  toExamMetadataResponse(meta),
	}, nil
}

// GetFilteredQuestions implements QuestionService
func (s *questionService) GetFilteredQuestions(ctx context.Context, req *dto.FilteredQuestionsRequest) (*dto.FilteredQuestionsResponse, error) {
	meta, err := s.resolveExam(ctx, req.ExamID)
	if err != nil {
		return nil, err
	}

	filter := domain.QuestionFilter{
		IncludeNew:       req.Filter.IncludeNew,
		IncludeAnswered:  req.Filter.IncludeAnswered,
		IncludeFlagged:   req.Filter.IncludeFlagged,
		IncludeIncorrect: req.Filter.IncludeIncorrect,
	}

	questions, err := s.questionRepo.SampleByTitle(ctx, meta.Title, filter, req.Filter.Count)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get filtered questions", err)
	}

	resp := &dto.FilteredQuestionsResponse{
		Questions: toQuestionResponses(questions),
		Metadata:  toExamMetadataResponse(meta),
		Params:    req.Filter,
	}
	if len(questions) == 0 {
		resp.Message = "No questions matched the selected filters. Adjust the filters and try again."
		logger.Get().Info("Filter matched no questions",
			zap.String("examId", req.ExamID),
			zap.String("title", meta.Title))
	}
	return resp, nil
}

// GetStats implements QuestionService
func (s *questionService) GetStats(ctx context.Context, examID string) (*dto.StatsResponse, error) {
	meta, err := s.resolveExam(ctx, examID)
	if err != nil {
		return nil, err
	}

	counts, err := s.questionRepo.CountByCategory(ctx, meta.Title)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question stats", err)
	}

	return &dto.StatsResponse{
		NewCount:       counts.New,
		AnsweredCount:  counts.Answered,
		FlaggedCount:   counts.Flagged,
		IncorrectCount: counts.Incorrect,
		TotalCount:     counts.Total,
	}, nil
}

// GetMetadata implements QuestionService
func (s *questionService) GetMetadata(ctx context.Context, examID string) (*dto.ExamMetadataResponse, error) {
	meta, err := s.resolveExam(ctx, examID)
	if err != nil {
		return nil, err
	}
	resp := toExamMetadataResponse(meta)
	return &resp, nil
}

// FlagQuestion implements QuestionService
func (s *questionService) FlagQuestion(ctx context.Context, id string) (*dto.MutationResponse, error) {
	return s.mutate(ctx, id, "Question flagged successfully", func() error {
		return s.questionRepo.SetFlagged(ctx, id, true)
	})
}

// UnflagQuestion implements QuestionService
func (s *questionService) UnflagQuestion(ctx context.Context, id string) (*dto.MutationResponse, error) {
	return s.mutate(ctx, id, "Question unflagged successfully", func() error {
		return s.questionRepo.SetFlagged(ctx, id, false)
	})
}

// MarkMissed implements QuestionService
func (s *questionService) MarkMissed(ctx context.Context, id string) (*dto.MutationResponse, error) {
	return s.mutate(ctx, id, "Question marked as missed", func() error {
		return s.questionRepo.SetMissed(ctx, id, true)
	})
}

// UnmarkMissed implements QuestionService
func (s *questionService) UnmarkMissed(ctx context.Context, id string) (*dto.MutationResponse, error) {
	return s.mutate(ctx, id, "Question unmarked as missed", func() error {
		return s.questionRepo.SetMissed(ctx, id, false)
	})
}

// MarkAnswered implements QuestionService
func (s *questionService) MarkAnswered(ctx context.Context, id string) (*dto.MutationResponse, error) {
	return s.mutate(ctx, id, "Question marked as answered", func() error {
		return s.questionRepo.SetAnswered(ctx, id)
	})
}

func (s *questionService) mutate(ctx context.Context, id, message string, update func() error) (*dto.MutationResponse, error) {
	if id == "" {
		return nil, domain.NewInvalidInputError("Question ID is required")
	}
	if err := update(); err != nil {
		return nil, err
	}

	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load updated question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}

	return &dto.MutationResponse{
		Message:  message,
		Question: toQuestionResponse(question),
	}, nil
}

func (s *questionService) resolveExam(ctx context.Context, examID string) (*domain.ExamMetadata, error) {
	if examID == "" {
		return nil, domain.NewInvalidInputError("Exam ID is required")
	}
	meta, err := s.examRepo.GetByExamID(ctx, examID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to resolve exam", err)
	}
	if meta == nil {
		return nil, domain.NewExamNotFoundError(examID)
	}
	return meta, nil
}

func toQuestionResponse(q *domain.Question) dto.QuestionResponse {
	choices := make([]dto.ChoiceResponse, 0, len(q.Choices))
	for _, c := range q.Choices {
		choices = append(choices, dto.ChoiceResponse{
			ID:        c.ID,
			Text:      c.Text,
			IsCorrect: c.IsCorrect,
		})
	}
	return dto.QuestionResponse{
		ID:              q.ID,
		Question:        q.Text,
		Choices:         choices,
		CorrectAnswerID: q.CorrectAnswerID,
		Explanation:     q.Explanation,
		ExamID:          q.ExamID,
		Title:           q.Title,
		Type:            q.Type,
		Vendor:          q.Vendor,
		Year:            q.Year,
		Flagged:         q.Flagged,
		Missed:          q.Missed,
		Answered:        q.Answered,
	}
}

func toQuestionResponses(questions []domain.Question) []dto.QuestionResponse {
	responses := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		responses = append(responses, toQuestionResponse(&questions[i]))
	}
	return responses
}
