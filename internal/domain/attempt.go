package domain

import (
	"math"
	"time"
)

// Attempt is one completed quiz session's outcome. Attempts are immutable
// once saved.
type Attempt struct {
	ID             string
	ExamID         string
	ExamName       string
	Title          string
	Type           string
	Vendor         string
	Year           int
	QuestionsCount int
	CorrectAnswers int
	Percentage     int
	Date           time.Time
}

// Validate checks the counter invariants. Zero correct answers is a
// legitimate outcome, not a missing value.
func (a *Attempt) Validate() error {
	if a.ExamID == "" {
		return NewInvalidInputError("examId is required")
	}
	if a.QuestionsCount <= 0 {
		return NewInvalidInputError("questionsCount must be positive")
	}
	if a.CorrectAnswers < 0 || a.CorrectAnswers > a.QuestionsCount {
		return NewInvalidInputError("correctAnswers must be between 0 and questionsCount")
	}
	return nil
}

// ComputePercentage derives the integer score from the two counters,
// overwriting whatever the client sent.
func (a *Attempt) ComputePercentage() {
	if a.QuestionsCount <= 0 {
		a.Percentage = 0
		return
	}
	a.Percentage = int(math.Round(100 * float64(a.CorrectAnswers) / float64(a.QuestionsCount)))
}
