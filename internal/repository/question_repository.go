package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"examdrill/internal/domain"
	"examdrill/internal/repository/models"
	"examdrill/internal/util"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `
		id "id",
		question_text "question_text",
		correct_answer_id "correct_answer_id",
		explanation "explanation",
		exam_id "exam_id",
		title "title",
		exam_type "exam_type",
		vendor "vendor",
		exam_year "exam_year",
		flagged "flagged",
		missed "missed",
		answered "answered",
		created_at "created_at",
		updated_at "updated_at"`

const choiceColumns = `
		id "id",
		question_id "question_id",
		choice_id "choice_id",
		choice_text "choice_text",
		is_correct "is_correct",
		display_order "display_order"`

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// buildFilterClause turns a QuestionFilter into a disjunctive SQL
// predicate. An unrestricted filter produces no predicate at all.
func buildFilterClause(f domain.QuestionFilter) string {
	if f.IsUnrestricted() {
		return ""
	}
	var preds []string
	if f.IncludeNew {
		preds = append(preds, "answered = 0")
	}
	if f.IncludeAnswered {
		preds = append(preds, "answered = 1")
	}
	if f.IncludeFlagged {
		preds = append(preds, "flagged = 1")
	}
	if f.IncludeIncorrect {
		preds = append(preds, "missed = 1")
	}
	return " AND (" + strings.Join(preds, " OR ") + ")"
}

// GetByID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	var modelQuestion models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = :1`

	err := a.db.GetContext(ctx, &modelQuestion, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by ID %s: %w", id, err)
	}

	choices, err := a.loadChoices(ctx, []string{modelQuestion.ID})
	if err != nil {
		return nil, err
	}
	q := toDomainQuestion(&modelQuestion, choices[modelQuestion.ID])
	return q, nil
}

// GetByExamID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetByExamID(ctx context.Context, examID string) ([]domain.Question, error) {
	var modelQuestions []models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE exam_id = :1 ORDER BY id`

	if err := a.db.SelectContext(ctx, &modelQuestions, query, examID); err != nil {
		return nil, fmt.Errorf("failed to get questions for exam %s: %w", examID, err)
	}
	return a.toDomainQuestions(ctx, modelQuestions)
}

// ListByTitle implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListByTitle(ctx context.Context, title string, filter domain.QuestionFilter) ([]domain.Question, error) {
	var modelQuestions []models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE title = :1` +
		buildFilterClause(filter) + ` ORDER BY id`

	if err := a.db.SelectContext(ctx, &modelQuestions, query, title); err != nil {
		return nil, fmt.Errorf("failed to list questions for title %s: %w", title, err)
	}
	return a.toDomainQuestions(ctx, modelQuestions)
}

// SampleByTitle implements domain.QuestionRepository. The random draw
// happens in the database so concurrent mutators never race an in-memory
// filter pass.
func (a *QuestionDatabaseAdapter) SampleByTitle(ctx context.Context, title string, filter domain.QuestionFilter, limit int) ([]domain.Question, error) {
	var modelQuestions []models.Question

	query := `SELECT ` + questionColumns + ` FROM questions WHERE title = :1` +
		buildFilterClause(filter) + ` ORDER BY DBMS_RANDOM.VALUE`

	var err error
	if limit > 0 {
		query += ` FETCH FIRST :2 ROWS ONLY`
		err = a.db.SelectContext(ctx, &modelQuestions, query, title, limit)
	} else {
		err = a.db.SelectContext(ctx, &modelQuestions, query, title)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to sample questions for title %s: %w", title, err)
	}
	return a.toDomainQuestions(ctx, modelQuestions)
}

// CountByCategory implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) CountByCategory(ctx context.Context, title string) (*domain.CategoryCounts, error) {
	var row models.CategoryCounts
	query := `SELECT
		COUNT(*) "total_count",
		NVL(SUM(CASE WHEN answered = 0 THEN 1 ELSE 0 END), 0) "new_count",
		NVL(SUM(CASE WHEN answered = 1 THEN 1 ELSE 0 END), 0) "answered_count",
		NVL(SUM(CASE WHEN flagged = 1 THEN 1 ELSE 0 END), 0) "flagged_count",
		NVL(SUM(CASE WHEN missed = 1 THEN 1 ELSE 0 END), 0) "missed_count"
	FROM questions WHERE title = :1`

	if err := a.db.GetContext(ctx, &row, query, title); err != nil {
		return nil, fmt.Errorf("failed to count questions for title %s: %w", title, err)
	}

	return &domain.CategoryCounts{
		New:       row.New,
		Answered:  row.Answered,
		Flagged:   row.Flagged,
		Incorrect: row.Missed,
		Total:     row.Total,
	}, nil
}

// SetFlagged implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) SetFlagged(ctx context.Context, id string, flagged bool) error {
	return a.updateField(ctx, id, "flagged", flagged)
}

// SetMissed implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) SetMissed(ctx context.Context, id string, missed bool) error {
	return a.updateField(ctx, id, "missed", missed)
}

// SetAnswered implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) SetAnswered(ctx context.Context, id string) error {
	return a.updateField(ctx, id, "answered", true)
}

// updateField performs an unconditional last-write-wins update of one
// interaction-state column.
func (a *QuestionDatabaseAdapter) updateField(ctx context.Context, id, column string, value bool) error {
	query := fmt.Sprintf(`UPDATE questions SET %s = :1, updated_at = :2 WHERE id = :3`, column)

	result, err := a.db.ExecContext(ctx, query, boolToInt(value), time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update %s for question %s: %w", column, id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewQuestionNotFoundError(id)
	}
	return nil
}

// Save implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Save(ctx context.Context, q *domain.Question) error {
	if q == nil {
		return fmt.Errorf("cannot save nil question")
	}
	if q.ID == "" {
		q.ID = util.NewULID()
	}
	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now

	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuestion := `INSERT INTO questions (
		id, question_text, correct_answer_id, explanation,
		exam_id, title, exam_type, vendor, exam_year,
		flagged, missed, answered, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11, :12, :13, :14
	)`

	_, err = tx.ExecContext(ctx, insertQuestion,
		q.ID,
		q.Text,
		util.StringToNullString(q.CorrectAnswerID),
		q.Explanation,
		q.ExamID,
		q.Title,
		q.Type,
		q.Vendor,
		q.Year,
		boolToInt(q.Flagged),
		boolToInt(q.Missed),
		boolToInt(q.Answered),
		q.CreatedAt,
		q.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	insertChoice := `INSERT INTO question_choices (
		id, question_id, choice_id, choice_text, is_correct, display_order
	) VALUES (
		:1, :2, :3, :4, :5, :6
	)`

	for i, c := range q.Choices {
		_, err = tx.ExecContext(ctx, insertChoice,
			util.NewULID(),
			q.ID,
			c.ID,
			c.Text,
			boolToInt(c.IsCorrect),
			i,
		)
		if err != nil {
			return fmt.Errorf("failed to save choice %s of question %s: %w", c.ID, q.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit question save: %w", err)
	}
	return nil
}

// DeleteAll implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) DeleteAll(ctx context.Context) error {
	if _, err := a.db.ExecContext(ctx, `DELETE FROM question_choices`); err != nil {
		return fmt.Errorf("failed to delete question choices: %w", err)
	}
	if _, err := a.db.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return fmt.Errorf("failed to delete questions: %w", err)
	}
	return nil
}

// loadChoices fetches the choice rows for the given question ids,
// grouped by question.
func (a *QuestionDatabaseAdapter) loadChoices(ctx context.Context, questionIDs []string) (map[string][]models.QuestionChoice, error) {
	result := make(map[string][]models.QuestionChoice, len(questionIDs))
	if len(questionIDs) == 0 {
		return result, nil
	}

	placeholders := make([]string, len(questionIDs))
	args := make([]interface{}, len(questionIDs))
	for i, id := range questionIDs {
		placeholders[i] = fmt.Sprintf(":%d", i+1)
		args[i] = id
	}

	query := `SELECT ` + choiceColumns + ` FROM question_choices WHERE question_id IN (` +
		strings.Join(placeholders, ", ") + `) ORDER BY question_id, display_order`

	var rows []models.QuestionChoice
	if err := a.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to load choices: %w", err)
	}

	for _, row := range rows {
		result[row.QuestionID] = append(result[row.QuestionID], row)
	}
	return result, nil
}

func (a *QuestionDatabaseAdapter) toDomainQuestions(ctx context.Context, modelQuestions []models.Question) ([]domain.Question, error) {
	ids := make([]string, len(modelQuestions))
	for i := range modelQuestions {
		ids[i] = modelQuestions[i].ID
	}

	choices, err := a.loadChoices(ctx, ids)
	if err != nil {
		return nil, err
	}

	questions := make([]domain.Question, 0, len(modelQuestions))
	for i := range modelQuestions {
		q := toDomainQuestion(&modelQuestions[i], choices[modelQuestions[i].ID])
		questions = append(questions, *q)
	}
	return questions, nil
}

func toDomainQuestion(m *models.Question, choices []models.QuestionChoice) *domain.Question {
	if m == nil {
		return nil
	}

	domainChoices := make([]domain.Choice, 0, len(choices))
	for _, c := range choices {
		domainChoices = append(domainChoices, domain.Choice{
			ID:        c.ChoiceID,
			Text:      c.ChoiceText,
			IsCorrect: c.IsCorrect,
		})
	}

	return &domain.Question{
		ID:              m.ID,
		Text:            m.QuestionText,
		Choices:         domainChoices,
		CorrectAnswerID: m.CorrectAnswerID.String,
		Explanation:     m.Explanation,
		ExamID:          m.ExamID,
		Title:           m.Title,
		Type:            m.ExamType,
		Vendor:          m.Vendor,
		Year:            m.ExamYear,
		Flagged:         m.Flagged,
		Missed:          m.Missed,
		Answered:        m.Answered,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
