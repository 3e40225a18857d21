package models

import (
	"database/sql"
	"time"
)

// Question is the questions table row. Choices live in the
// question_choices child table.
type Question struct {
	ID              string         `db:"id"`
	QuestionText    string         `db:"question_text"`
	CorrectAnswerID sql.NullString `db:"correct_answer_id"`
	Explanation     string         `db:"explanation"`
	ExamID          string         `db:"exam_id"`
	Title           string         `db:"title"`
	ExamType        string         `db:"exam_type"`
	Vendor          string         `db:"vendor"`
	ExamYear        int            `db:"exam_year"`
	Flagged         bool           `db:"flagged"`
	Missed          bool           `db:"missed"`
	Answered        bool           `db:"answered"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

// QuestionChoice is one answer option row.
type QuestionChoice struct {
	ID           string `db:"id"`
	QuestionID   string `db:"question_id"`
	ChoiceID     string `db:"choice_id"`
	ChoiceText   string `db:"choice_text"`
	IsCorrect    bool   `db:"is_correct"`
	DisplayOrder int    `db:"display_order"`
}

// ExamMetadata is the exam_metadata table row.
type ExamMetadata struct {
	ExamID        string         `db:"exam_id"`
	FileName      sql.NullString `db:"file_name"`
	Title         string         `db:"title"`
	ExamType      string         `db:"exam_type"`
	Vendor        string         `db:"vendor"`
	ExamYear      int            `db:"exam_year"`
	FullName      string         `db:"full_name"`
	QuestionCount int            `db:"question_count"`
	IsFlagged     bool           `db:"is_flagged"`
	IsMissed      bool           `db:"is_missed"`
	DisplayOrder  int            `db:"display_order"`
	DateImported  time.Time      `db:"date_imported"`
}

// Attempt is the attempts table row.
type Attempt struct {
	ID             string         `db:"id"`
	ExamID         string         `db:"exam_id"`
	ExamName       sql.NullString `db:"exam_name"`
	Title          string         `db:"title"`
	ExamType       string         `db:"exam_type"`
	Vendor         string         `db:"vendor"`
	ExamYear       int            `db:"exam_year"`
	QuestionsCount int            `db:"questions_count"`
	CorrectAnswers int            `db:"correct_answers"`
	Percentage     int            `db:"percentage"`
	AttemptedAt    time.Time      `db:"attempted_at"`
}

// CategoryCounts is the aggregate row of the per-title stats query.
type CategoryCounts struct {
	Total     int `db:"total_count"`
	New       int `db:"new_count"`
	Answered  int `db:"answered_count"`
	Flagged   int `db:"flagged_count"`
	Missed    int `db:"missed_count"`
}
