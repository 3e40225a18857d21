package dto

import "time"

// SaveAttemptRequest is the body of POST /attempts. CorrectAnswers and
// Percentage are pointers so a legitimate zero survives the required-field
// check.
type SaveAttemptRequest struct {
	ExamID         string `json:"examId"`
	ExamName       string `json:"examName"`
	Title          string `json:"title"`
	Type           string `json:"type"`
	Vendor         string `json:"vendor"`
	Year           int    `json:"year"`
	QuestionsCount int    `json:"questionsCount"`
	CorrectAnswers *int   `json:"correctAnswers"`
	Percentage     *int   `json:"percentage"`
}

// AttemptResponse represents a saved attempt in the API response.
type AttemptResponse struct {
	ID             string    `json:"_id"`
	ExamID         string    `json:"examId"`
	ExamName       string    `json:"examName"`
	Title          string    `json:"title"`
	Type           string    `json:"type"`
	Vendor         string    `json:"vendor"`
	Year           int       `json:"year"`
	QuestionsCount int       `json:"questionsCount"`
	CorrectAnswers int       `json:"correctAnswers"`
	Percentage     int       `json:"percentage"`
	Date           time.Time `json:"date"`
}

// AttemptsResponse lists attempts, newest first.
type AttemptsResponse struct {
	Attempts []AttemptResponse `json:"attempts"`
}
