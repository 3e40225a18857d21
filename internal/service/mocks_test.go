package service

import (
	"context"
	"time"

	"examdrill/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetByExamID(ctx context.Context, examID string) ([]domain.Question, error) {
	args := m.Called(ctx, examID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) ListByTitle(ctx context.Context, title string, filter domain.QuestionFilter) ([]domain.Question, error) {
	args := m.Called(ctx, title, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) SampleByTitle(ctx context.Context, title string, filter domain.QuestionFilter, limit int) ([]domain.Question, error) {
	args := m.Called(ctx, title, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) CountByCategory(ctx context.Context, title string) (*domain.CategoryCounts, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryCounts), args.Error(1)
}

func (m *MockQuestionRepository) SetFlagged(ctx context.Context, id string, flagged bool) error {
	args := m.Called(ctx, id, flagged)
	return args.Error(0)
}

func (m *MockQuestionRepository) SetMissed(ctx context.Context, id string, missed bool) error {
	args := m.Called(ctx, id, missed)
	return args.Error(0)
}

func (m *MockQuestionRepository) SetAnswered(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionRepository) Save(ctx context.Context, q *domain.Question) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuestionRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockExamMetadataRepository ---
type MockExamMetadataRepository struct {
	mock.Mock
}

func (m *MockExamMetadataRepository) GetAll(ctx context.Context) ([]domain.ExamMetadata, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExamMetadata), args.Error(1)
}

func (m *MockExamMetadataRepository) GetByExamID(ctx context.Context, examID string) (*domain.ExamMetadata, error) {
	args := m.Called(ctx, examID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExamMetadata), args.Error(1)
}

func (m *MockExamMetadataRepository) Save(ctx context.Context, meta *domain.ExamMetadata) error {
	args := m.Called(ctx, meta)
	return args.Error(0)
}

func (m *MockExamMetadataRepository) SetQuestionCount(ctx context.Context, examID string, count int) error {
	args := m.Called(ctx, examID, count)
	return args.Error(0)
}

func (m *MockExamMetadataRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockAttemptRepository ---
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) Save(ctx context.Context, a *domain.Attempt) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetAll(ctx context.Context) ([]domain.Attempt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attempt), args.Error(1)
}

func (m *MockAttemptRepository) GetByTitle(ctx context.Context, title string) ([]domain.Attempt, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attempt), args.Error(1)
}

func (m *MockAttemptRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
