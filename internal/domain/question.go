package domain

import "time"

// Choice is a single answer option of a question.
type Choice struct {
	ID        string
	Text      string
	IsCorrect bool
}

// Question represents one practice item. The exam scope fields (ExamID,
// Title, Type, Vendor, Year) are denormalized from the owning exam so
// title-scoped queries never need a join against exam metadata.
//
// Flagged, Missed and Answered are per-question interaction state. The
// deployment is single-tenant, so they live directly on the question row.
type Question struct {
	ID              string
	Text            string
	Choices         []Choice
	CorrectAnswerID string
	Explanation     string
	ExamID          string
	Title           string
	Type            string
	Vendor          string
	Year            int
	Flagged         bool
	Missed          bool
	Answered        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks the structural invariant between CorrectAnswerID and
// the choice set: single-answer questions must name exactly one correct
// choice, multi-answer questions carry two or more correct choices and
// no CorrectAnswerID.
func (q *Question) Validate() error {
	if q.Text == "" {
		return NewInvalidInputError("question text is required")
	}
	if len(q.Choices) < 2 {
		return NewInvalidInputError("question needs at least two choices")
	}

	correct := 0
	correctID := ""
	for _, c := range q.Choices {
		if c.IsCorrect {
			correct++
			correctID = c.ID
		}
	}

	switch {
	case correct == 0:
		return NewInvalidInputError("question has no correct choice")
	case correct == 1:
		if q.CorrectAnswerID != correctID {
			return NewInvalidInputError("correctAnswerId does not match the correct choice")
		}
	default:
		// Multi-answer question: no single canonical answer id applies.
		if q.CorrectAnswerID != "" {
			return NewInvalidInputError("multi-answer question must not set correctAnswerId")
		}
	}
	return nil
}

// CategoryCounts holds per-interaction-category question counts for a title.
type CategoryCounts struct {
	New       int
	Answered  int
	Flagged   int
	Incorrect int
	Total     int
}
