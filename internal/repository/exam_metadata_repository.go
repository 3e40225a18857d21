package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"examdrill/internal/domain"
	"examdrill/internal/repository/models"
	"examdrill/internal/util"

	"github.com/jmoiron/sqlx"
)

const examMetadataColumns = `
		exam_id "exam_id",
		file_name "file_name",
		title "title",
		exam_type "exam_type",
		vendor "vendor",
		exam_year "exam_year",
		full_name "full_name",
		question_count "question_count",
		is_flagged "is_flagged",
		is_missed "is_missed",
		display_order "display_order",
		date_imported "date_imported"`

// ExamMetadataDatabaseAdapter implements domain.ExamMetadataRepository using sqlx.DB
type ExamMetadataDatabaseAdapter struct {
	db *sqlx.DB
}

// NewExamMetadataDatabaseAdapter creates a new instance of ExamMetadataDatabaseAdapter
func NewExamMetadataDatabaseAdapter(db *sqlx.DB) domain.ExamMetadataRepository {
	return &ExamMetadataDatabaseAdapter{db: db}
}

// GetAll implements domain.ExamMetadataRepository
func (a *ExamMetadataDatabaseAdapter) GetAll(ctx context.Context) ([]domain.ExamMetadata, error) {
	var modelMetadata []models.ExamMetadata
	query := `SELECT ` + examMetadataColumns + ` FROM exam_metadata ORDER BY title, display_order, exam_id`

	if err := a.db.SelectContext(ctx, &modelMetadata, query); err != nil {
		return nil, fmt.Errorf("failed to get exam metadata: %w", err)
	}

	result := make([]domain.ExamMetadata, 0, len(modelMetadata))
	for i := range modelMetadata {
		result = append(result, *toDomainExamMetadata(&modelMetadata[i]))
	}
	return result, nil
}

// GetByExamID implements domain.ExamMetadataRepository
func (a *ExamMetadataDatabaseAdapter) GetByExamID(ctx context.Context, examID string) (*domain.ExamMetadata, error) {
	var modelMeta models.ExamMetadata
	query := `SELECT ` + examMetadataColumns + ` FROM exam_metadata WHERE exam_id = :1`

	err := a.db.GetContext(ctx, &modelMeta, query, examID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exam metadata for %s: %w", examID, err)
	}
	return toDomainExamMetadata(&modelMeta), nil
}

// Save implements domain.ExamMetadataRepository
func (a *ExamMetadataDatabaseAdapter) Save(ctx context.Context, m *domain.ExamMetadata) error {
	if m == nil {
		return fmt.Errorf("cannot save nil exam metadata")
	}
	if m.DateImported.IsZero() {
		m.DateImported = time.Now()
	}

	query := `INSERT INTO exam_metadata (
		exam_id, file_name, title, exam_type, vendor, exam_year,
		full_name, question_count, is_flagged, is_missed, display_order, date_imported
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11, :12
	)`

	_, err := a.db.ExecContext(ctx, query,
		m.ExamID,
		util.StringToNullString(m.FileName),
		m.Title,
		m.Type,
		m.Vendor,
		m.Year,
		m.FullName,
		m.QuestionCount,
		boolToInt(m.IsFlagged),
		boolToInt(m.IsMissed),
		m.DisplayOrder,
		m.DateImported,
	)
	if err != nil {
		return fmt.Errorf("failed to save exam metadata %s: %w", m.ExamID, err)
	}
	return nil
}

// SetQuestionCount implements domain.ExamMetadataRepository
func (a *ExamMetadataDatabaseAdapter) SetQuestionCount(ctx context.Context, examID string, count int) error {
	query := `UPDATE exam_metadata SET question_count = :1 WHERE exam_id = :2`

	result, err := a.db.ExecContext(ctx, query, count, examID)
	if err != nil {
		return fmt.Errorf("failed to update question count for %s: %w", examID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewExamNotFoundError(examID)
	}
	return nil
}

// DeleteAll implements domain.ExamMetadataRepository
func (a *ExamMetadataDatabaseAdapter) DeleteAll(ctx context.Context) error {
	if _, err := a.db.ExecContext(ctx, `DELETE FROM exam_metadata`); err != nil {
		return fmt.Errorf("failed to delete exam metadata: %w", err)
	}
	return nil
}

func toDomainExamMetadata(m *models.ExamMetadata) *domain.ExamMetadata {
	if m == nil {
		return nil
	}
	return &domain.ExamMetadata{
		ExamID:        m.ExamID,
		FileName:      m.FileName.String,
		Title:         m.Title,
		Type:          m.ExamType,
		Vendor:        m.Vendor,
		Year:          m.ExamYear,
		FullName:      m.FullName,
		QuestionCount: m.QuestionCount,
		IsFlagged:     m.IsFlagged,
		IsMissed:      m.IsMissed,
		DisplayOrder:  m.DisplayOrder,
		DateImported:  m.DateImported,
	}
}
