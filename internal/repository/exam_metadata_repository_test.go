package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"examdrill/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func setupExamMetadataTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func examMetadataRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"exam_id", "file_name", "title", "exam_type", "vendor", "exam_year",
		"full_name", "question_count", "is_flagged", "is_missed", "display_order", "date_imported",
	})
}

func TestGetAllExamMetadata(t *testing.T) {
	db, mock := setupExamMetadataTestDB(t)
	repo := NewExamMetadataDatabaseAdapter(db)
	defer db.Close()

	now := time.Now()
	rows := examMetadataRows().
		AddRow("CISSP_1", "CISSP_Exam1_Boson_2024.json", "CISSP", "Exam1", "Boson", 2024,
			"CISSP Exam1 Boson 2024", 100, false, false, 0, now).
		AddRow("CISSP_Flagged", "virtual", "CISSP", "Flagged Questions", "Boson", 2024,
			"CISSP Flagged Questions", 0, true, false, 0, now)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM exam_metadata ORDER BY title, display_order, exam_id`)).
		WillReturnRows(rows)

	metadata, err := repo.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, metadata, 2)
	assert.Equal(t, "CISSP_1", metadata[0].ExamID)
	assert.Equal(t, domain.ExamKindRegular, metadata[0].Kind())
	assert.True(t, metadata[1].IsFlagged)
	assert.Equal(t, domain.ExamKindFlagged, metadata[1].Kind())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByExamIDNotFound(t *testing.T) {
	db, mock := setupExamMetadataTestDB(t)
	repo := NewExamMetadataDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM exam_metadata WHERE exam_id = :1`)).
		WithArgs("missing").
		WillReturnRows(examMetadataRows())

	meta, err := repo.GetByExamID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, meta)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveExamMetadata(t *testing.T) {
	db, mock := setupExamMetadataTestDB(t)
	repo := NewExamMetadataDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO exam_metadata`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	meta := &domain.ExamMetadata{
		ExamID:   "NetPlus_AllQuestions_Kaplan",
		Title:    "Net+",
		Type:     "AllQuestions",
		Vendor:   "Kaplan",
		Year:     2024,
		FullName: "Net+ AllQuestions Kaplan 2024",
	}

	err := repo.Save(context.Background(), meta)
	assert.NoError(t, err)
	assert.False(t, meta.DateImported.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetQuestionCountNotFound(t *testing.T) {
	db, mock := setupExamMetadataTestDB(t)
	repo := NewExamMetadataDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE exam_metadata SET question_count = :1`)).
		WithArgs(42, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetQuestionCount(context.Background(), "missing", 42)

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeExamNotFound, domainErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
