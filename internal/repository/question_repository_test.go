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

// setupQuestionTestDB creates a new sqlx.DB instance and sqlmock for
// question repository testing.
func setupQuestionTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func questionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "question_text", "correct_answer_id", "explanation",
		"exam_id", "title", "exam_type", "vendor", "exam_year",
		"flagged", "missed", "answered", "created_at", "updated_at",
	})
}

func choiceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "question_id", "choice_id", "choice_text", "is_correct", "display_order",
	})
}

func TestBuildFilterClause(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.QuestionFilter
		want   string
	}{
		{"unrestricted", domain.QuestionFilter{}, ""},
		{"new only", domain.QuestionFilter{IncludeNew: true}, " AND (answered = 0)"},
		{"flagged or incorrect", domain.QuestionFilter{IncludeFlagged: true, IncludeIncorrect: true},
			" AND (flagged = 1 OR missed = 1)"},
		{"all four", domain.QuestionFilter{IncludeNew: true, IncludeAnswered: true, IncludeFlagged: true, IncludeIncorrect: true},
			" AND (answered = 0 OR answered = 1 OR flagged = 1 OR missed = 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildFilterClause(tt.filter))
		})
	}
}

func TestSampleByTitleBoundedQuery(t *testing.T) {
	db, mock := setupQuestionTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)
	defer db.Close()

	now := time.Now()
	rows := questionRows().
		AddRow("q1", "What is X?", "a", "Because.", "Sec+_1", "Sec+", "Exam1", "Boson", 2024,
			true, false, true, now, now)

	// The draw itself must happen in SQL with a row cap.
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY DBMS_RANDOM.VALUE FETCH FIRST :2 ROWS ONLY`)).
		WithArgs("Sec+", 5).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM question_choices WHERE question_id IN (:1)`)).
		WithArgs("q1").
		WillReturnRows(choiceRows().
			AddRow("c1", "q1", "a", "Right answer", true, 0).
			AddRow("c2", "q1", "b", "Wrong answer", false, 1))

	questions, err := repo.SampleByTitle(context.Background(), "Sec+",
		domain.QuestionFilter{IncludeFlagged: true}, 5)

	assert.NoError(t, err)
	assert.Len(t, questions, 1)
	assert.Equal(t, "q1", questions[0].ID)
	assert.Len(t, questions[0].Choices, 2)
	assert.Equal(t, "a", questions[0].Choices[0].ID)
	assert.True(t, questions[0].Choices[0].IsCorrect)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSampleByTitleUnboundedQuery(t *testing.T) {
	db, mock := setupQuestionTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)
	defer db.Close()

	// No FETCH FIRST clause when the caller wants the whole eligible set.
	mock.ExpectQuery(`ORDER BY DBMS_RANDOM.VALUE$`).
		WithArgs("Sec+").
		WillReturnRows(questionRows())

	questions, err := repo.SampleByTitle(context.Background(), "Sec+", domain.QuestionFilter{}, 0)

	assert.NoError(t, err)
	assert.Empty(t, questions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetFlaggedNotFound(t *testing.T) {
	db, mock := setupQuestionTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE questions SET flagged = :1`)).
		WithArgs(1, sqlmock.AnyArg(), "nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetFlagged(context.Background(), "nope", true)

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeQuestionNotFound, domainErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetMissedSuccess(t *testing.T) {
	db, mock := setupQuestionTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE questions SET missed = :1`)).
		WithArgs(0, sqlmock.AnyArg(), "q1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetMissed(context.Background(), "q1", false)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByCategory(t *testing.T) {
	db, mock := setupQuestionTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"total_count", "new_count", "answered_count", "flagged_count", "missed_count"}).
		AddRow(10, 6, 4, 3, 2)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM questions WHERE title = :1`)).
		WithArgs("Sec+").
		WillReturnRows(rows)

	counts, err := repo.CountByCategory(context.Background(), "Sec+")

	assert.NoError(t, err)
	assert.Equal(t, &domain.CategoryCounts{New: 6, Answered: 4, Flagged: 3, Incorrect: 2, Total: 10}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock := setupQuestionTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM questions WHERE id = :1`)).
		WithArgs("missing").
		WillReturnRows(questionRows())

	q, err := repo.GetByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, q)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveQuestionInsertsChoices(t *testing.T) {
	db, mock := setupQuestionTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO questions`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO question_choices`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO question_choices`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	q := &domain.Question{
		Text:            "What is phishing?",
		CorrectAnswerID: "a",
		Explanation:     "Social engineering over email.",
		ExamID:          "Sec+_1",
		Title:           "Sec+",
		Type:            "Exam1",
		Vendor:          "Boson",
		Year:            2024,
		Choices: []domain.Choice{
			{ID: "a", Text: "A social engineering attack", IsCorrect: true},
			{ID: "b", Text: "A firewall rule", IsCorrect: false},
		},
	}

	err := repo.Save(context.Background(), q)
	assert.NoError(t, err)
	assert.NotEmpty(t, q.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
