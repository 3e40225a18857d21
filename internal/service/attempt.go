package service

import (
	"context"

	"examdrill/internal/domain"
	"examdrill/internal/dto"
	"examdrill/internal/logger"

	"go.uber.org/zap"
)

// AttemptService defines the interface for attempt-related operations
type AttemptService interface {
	// SaveAttempt persists a finished practice run. The percentage is
	// recomputed from the two counters, never trusted from the client.
	SaveAttempt(ctx context.Context, req *dto.SaveAttemptRequest) (*dto.AttemptResponse, error)

	// GetAttempts returns every attempt, newest first.
	GetAttempts(ctx context.Context) (*dto.AttemptsResponse, error)

	// GetAttemptsByTitle returns one title's attempts, newest first.
	GetAttemptsByTitle(ctx context.Context, title string) (*dto.AttemptsResponse, error)
}

// attemptService implements AttemptService
type attemptService struct {
	attemptRepo domain.AttemptRepository
}

// NewAttemptService creates a new instance of attemptService
func NewAttemptService(attemptRepo domain.AttemptRepository) AttemptService {
	return &attemptService{attemptRepo: attemptRepo}
}

// SaveAttempt implements AttemptService
func (s *attemptService) SaveAttempt(ctx context.Context, req *dto.SaveAttemptRequest) (*dto.AttemptResponse, error) {
	attempt := &domain.Attempt{
		ExamID:         req.ExamID,
		ExamName:       req.ExamName,
		Title:          req.Title,
		Type:           req.Type,
		Vendor:         req.Vendor,
		Year:           req.Year,
		QuestionsCount: req.QuestionsCount,
	}
	if req.CorrectAnswers != nil {
		attempt.CorrectAnswers = *req.CorrectAnswers
	}
	attempt.ComputePercentage()

	if err := attempt.Validate(); err != nil {
		return nil, err
	}

	if err := s.attemptRepo.Save(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("Failed to save attempt", err)
	}

	logger.Get().Info("Attempt saved",
		zap.String("examId", attempt.ExamID),
		zap.Int("percentage", attempt.Percentage))

	resp := toAttemptResponse(attempt)
	return &resp, nil
}

// GetAttempts implements AttemptService
func (s *attemptService) GetAttempts(ctx context.Context) (*dto.AttemptsResponse, error) {
	attempts, err := s.attemptRepo.GetAll(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get attempts", err)
	}
	return toAttemptsResponse(attempts), nil
}

// GetAttemptsByTitle implements AttemptService
func (s *attemptService) GetAttemptsByTitle(ctx context.Context, title string) (*dto.AttemptsResponse, error) {
	if title == "" {
		return nil, domain.NewInvalidInputError("Title is required")
	}
	attempts, err := s.attemptRepo.GetByTitle(ctx, title)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get attempts", err)
	}
	return toAttemptsResponse(attempts), nil
}

func toAttemptsResponse(attempts []domain.Attempt) *dto.AttemptsResponse {
	resp := &dto.AttemptsResponse{Attempts: make([]dto.AttemptResponse, 0, len(attempts))}
	for i := range attempts {
		resp.Attempts = append(resp.Attempts, toAttemptResponse(&attempts[i]))
	}
	return resp
}

func toAttemptResponse(a *domain.Attempt) dto.AttemptResponse {
	return dto.AttemptResponse{
		ID:             a.ID,
		ExamID:         a.ExamID,
		ExamName:       a.ExamName,
		Title:          a.Title,
		Type:           a.Type,
		Vendor:         a.Vendor,
		Year:           a.Year,
		QuestionsCount: a.QuestionsCount,
		CorrectAnswers: a.CorrectAnswers,
		Percentage:     a.Percentage,
		Date:           a.Date,
	}
}
