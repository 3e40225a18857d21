package repository

import (
	"context"
	"fmt"
	"time"

	"examdrill/internal/domain"
	"examdrill/internal/repository/models"
	"examdrill/internal/util"

	"github.com/jmoiron/sqlx"
)

const attemptColumns = `
		id "id",
		exam_id "exam_id",
		exam_name "exam_name",
		title "title",
		exam_type "exam_type",
		vendor "vendor",
		exam_year "exam_year",
		questions_count "questions_count",
		correct_answers "correct_answers",
		percentage "percentage",
		attempted_at "attempted_at"`

// AttemptDatabaseAdapter implements domain.AttemptRepository using sqlx.DB
type AttemptDatabaseAdapter struct {
	db *sqlx.DB
}

// NewAttemptDatabaseAdapter creates a new instance of AttemptDatabaseAdapter
func NewAttemptDatabaseAdapter(db *sqlx.DB) domain.AttemptRepository {
	return &AttemptDatabaseAdapter{db: db}
}

// Save implements domain.AttemptRepository
func (a *AttemptDatabaseAdapter) Save(ctx context.Context, attempt *domain.Attempt) error {
	if attempt == nil {
		return fmt.Errorf("cannot save nil attempt")
	}
	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	if attempt.Date.IsZero() {
		attempt.Date = time.Now()
	}

	query := `INSERT INTO attempts (
		id, exam_id, exam_name, title, exam_type, vendor, exam_year,
		questions_count, correct_answers, percentage, attempted_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11
	)`

	_, err := a.db.ExecContext(ctx, query,
		attempt.ID,
		attempt.ExamID,
		util.StringToNullString(attempt.ExamName),
		attempt.Title,
		attempt.Type,
		attempt.Vendor,
		attempt.Year,
		attempt.QuestionsCount,
		attempt.CorrectAnswers,
		attempt.Percentage,
		attempt.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to save attempt: %w", err)
	}
	return nil
}

// GetAll implements domain.AttemptRepository
func (a *AttemptDatabaseAdapter) GetAll(ctx context.Context) ([]domain.Attempt, error) {
	var modelAttempts []models.Attempt
	query := `SELECT ` + attemptColumns + ` FROM attempts ORDER BY attempted_at DESC`

	if err := a.db.SelectContext(ctx, &modelAttempts, query); err != nil {
		return nil, fmt.Errorf("failed to get attempts: %w", err)
	}
	return toDomainAttempts(modelAttempts), nil
}

// GetByTitle implements domain.AttemptRepository
func (a *AttemptDatabaseAdapter) GetByTitle(ctx context.Context, title string) ([]domain.Attempt, error) {
	var modelAttempts []models.Attempt
	query := `SELECT ` + attemptColumns + ` FROM attempts WHERE title = :1 ORDER BY attempted_at DESC`

	if err := a.db.SelectContext(ctx, &modelAttempts, query, title); err != nil {
		return nil, fmt.Errorf("failed to get attempts for title %s: %w", title, err)
	}
	return toDomainAttempts(modelAttempts), nil
}

// DeleteAll implements domain.AttemptRepository
func (a *AttemptDatabaseAdapter) DeleteAll(ctx context.Context) error {
	if _, err := a.db.ExecContext(ctx, `DELETE FROM attempts`); err != nil {
		return fmt.Errorf("failed to delete attempts: %w", err)
	}
	return nil
}

func toDomainAttempts(modelAttempts []models.Attempt) []domain.Attempt {
	attempts := make([]domain.Attempt, 0, len(modelAttempts))
	for i := range modelAttempts {
		attempts = append(attempts, *toDomainAttempt(&modelAttempts[i]))
	}
	return attempts
}

func toDomainAttempt(m *models.Attempt) *domain.Attempt {
	if m == nil {
		return nil
	}
	return &domain.Attempt{
		ID:             m.ID,
		ExamID:         m.ExamID,
		ExamName:       m.ExamName.String,
		Title:          m.Title,
		Type:           m.ExamType,
		Vendor:         m.Vendor,
		Year:           m.ExamYear,
		QuestionsCount: m.QuestionsCount,
		CorrectAnswers: m.CorrectAnswers,
		Percentage:     m.Percentage,
		Date:           m.AttemptedAt,
	}
}
