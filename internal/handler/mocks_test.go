package handler

import (
	"context"

	"examdrill/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockQuestionService ---
type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) GetQuestions(ctx context.Context, examID string) (*dto.QuestionsResponse, error) {
	args := m.Called(ctx, examID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuestionsResponse), args.Error(1)
}

func (m *MockQuestionService) GetFilteredQuestions(ctx context.Context, req *dto.FilteredQuestionsRequest) (*dto.FilteredQuestionsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FilteredQuestionsResponse), args.Error(1)
}

func (m *MockQuestionService) GetStats(ctx context.Context, examID string) (*dto.StatsResponse, error) {
	args := m.Called(ctx, examID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StatsResponse), args.Error(1)
}

func (m *MockQuestionService) GetMetadata(ctx context.Context, examID string) (*dto.ExamMetadataResponse, error) {
	args := m.Called(ctx, examID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExamMetadataResponse), args.Error(1)
}

func (m *MockQuestionService) FlagQuestion(ctx context.Context, id string) (*dto.MutationResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MutationResponse), args.Error(1)
}

func (m *MockQuestionService) UnflagQuestion(ctx context.Context, id string) (*dto.MutationResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MutationResponse), args.Error(1)
}

func (m *MockQuestionService) MarkMissed(ctx context.Context, id string) (*dto.MutationResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MutationResponse), args.Error(1)
}

func (m *MockQuestionService) UnmarkMissed(ctx context.Context, id string) (*dto.MutationResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MutationResponse), args.Error(1)
}

func (m *MockQuestionService) MarkAnswered(ctx context.Context, id string) (*dto.MutationResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MutationResponse), args.Error(1)
}

// --- MockTaxonomyService ---
type MockTaxonomyService struct {
	mock.Mock
}

func (m *MockTaxonomyService) GetTitles(ctx context.Context) (*dto.TitlesResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TitlesResponse), args.Error(1)
}

func (m *MockTaxonomyService) InvalidateTitles(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockAttemptService ---
type MockAttemptService struct {
	mock.Mock
}

func (m *MockAttemptService) SaveAttempt(ctx context.Context, req *dto.SaveAttemptRequest) (*dto.AttemptResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AttemptResponse), args.Error(1)
}

func (m *MockAttemptService) GetAttempts(ctx context.Context) (*dto.AttemptsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AttemptsResponse), args.Error(1)
}

func (m *MockAttemptService) GetAttemptsByTitle(ctx context.Context, title string) (*dto.AttemptsResponse, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AttemptsResponse), args.Error(1)
}
