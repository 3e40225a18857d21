package domain

import "context"

// QuestionRepository defines the persistence port for questions.
type QuestionRepository interface {
	// GetByID retrieves a single question, nil when not found.
	GetByID(ctx context.Context, id string) (*Question, error)

	// GetByExamID returns all questions belonging to one exam instance,
	// in import order.
	GetByExamID(ctx context.Context, examID string) ([]Question, error)

	// ListByTitle returns the title's questions matching the filter, in
	// import order.
	ListByTitle(ctx context.Context, title string, filter QuestionFilter) ([]Question, error)

	// SampleByTitle draws a uniform random sample without replacement
	// from the title's questions matching the filter. limit <= 0 returns
	// the whole eligible set (still randomly ordered).
	SampleByTitle(ctx context.Context, title string, filter QuestionFilter, limit int) ([]Question, error)

	// CountByCategory counts the title's questions per interaction category.
	CountByCategory(ctx context.Context, title string) (*CategoryCounts, error)

	// SetFlagged, SetMissed and SetAnswered are unconditional last-write-wins
	// single-field updates. They return a QUESTION_NOT_FOUND domain error
	// when the id does not resolve.
	SetFlagged(ctx context.Context, id string, flagged bool) error
	SetMissed(ctx context.Context, id string, missed bool) error
	SetAnswered(ctx context.Context, id string) error

	// Save persists a new question (bulk import path).
	Save(ctx context.Context, q *Question) error

	// DeleteAll removes every question (database reset).
	DeleteAll(ctx context.Context) error
}

// ExamMetadataRepository defines the persistence port for exam metadata.
type ExamMetadataRepository interface {
	// GetAll returns the full metadata collection.
	GetAll(ctx context.Context) ([]ExamMetadata, error)

	// GetByExamID retrieves one record, nil when not found.
	GetByExamID(ctx context.Context, examID string) (*ExamMetadata, error)

	// Save persists a new metadata record.
	Save(ctx context.Context, m *ExamMetadata) error

	// SetQuestionCount updates the questionCount bookkeeping field.
	SetQuestionCount(ctx context.Context, examID string, count int) error

	// DeleteAll removes every record (database reset).
	DeleteAll(ctx context.Context) error
}

// AttemptRepository defines the persistence port for attempts.
type AttemptRepository interface {
	// Save persists a new attempt.
	Save(ctx context.Context, a *Attempt) error

	// GetAll returns every attempt, newest first.
	GetAll(ctx context.Context) ([]Attempt, error)

	// GetByTitle returns one title's attempts, newest first.
	GetByTitle(ctx context.Context, title string) ([]Attempt, error)

	// DeleteAll removes every attempt (database reset).
	DeleteAll(ctx context.Context) error
}
