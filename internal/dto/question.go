package dto

// ChoiceResponse is one answer option as sent to the client.
type ChoiceResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// QuestionResponse represents a question in the API response.
// @Description Question with its interaction state
type QuestionResponse struct {
	ID              string           `json:"_id"`
	Question        string           `json:"question"`
	Choices         []ChoiceResponse `json:"choices"`
	CorrectAnswerID string           `json:"correctAnswerId,omitempty"`
	Explanation     string           `json:"explanation"`
	ExamID          string           `json:"examId"`
	Title           string           `json:"title"`
	Type            string           `json:"type"`
	Vendor          string           `json:"vendor"`
	Year            int              `json:"year"`
	Flagged         bool             `json:"flagged"`
	Missed          bool             `json:"missed"`
	Answered        bool             `json:"answered"`
}

// ExamMetadataResponse represents one exam instance in the API response.
type ExamMetadataResponse struct {
	ExamID        string `json:"examId"`
	FileName      string `json:"fileName,omitempty"`
	Title         string `json:"title"`
	Type          string `json:"type"`
	Vendor        string `json:"vendor"`
	Year          int    `json:"year"`
	FullName      string `json:"fullName"`
	QuestionCount int    `json:"questionCount"`
	IsFlagged     bool   `json:"isFlagged"`
	IsMissed      bool   `json:"isMissed"`
}

// TitleGroupResponse is one taxonomy node: a title and its ordered exams.
type TitleGroupResponse struct {
	Title string                 `json:"_id"`
	Exams []ExamMetadataResponse `json:"exams"`
	Count int                    `json:"count"`
}

// TitlesResponse is the taxonomy tree returned by GET /questions/titles.
type TitlesResponse struct {
	Titles []TitleGroupResponse `json:"titles"`
}

// QuestionsResponse is the payload of GET /questions/:examId.
type QuestionsResponse struct {
	Questions []QuestionResponse   `json:"questions"`
	Metadata  ExamMetadataResponse `json:"metadata"`
}

// FilterParams echoes the effective filter parameters of a sampler call
// back to the client.
type FilterParams struct {
	IncludeNew       bool `json:"includeNew"`
	IncludeAnswered  bool `json:"includeAnswered"`
	IncludeFlagged   bool `json:"includeFlagged"`
	IncludeIncorrect bool `json:"includeIncorrect"`
	Count            int  `json:"count"`
}

// FilteredQuestionsRequest carries the parsed sampler parameters.
type FilteredQuestionsRequest struct {
	ExamID string
	Filter FilterParams
}

// FilteredQuestionsResponse is the payload of GET /questions/filtered.
// Message is set when the eligible set is empty so the client can render
// a "no matches" state instead of an error.
type FilteredQuestionsResponse struct {
	Questions []QuestionResponse   `json:"questions"`
	Metadata  ExamMetadataResponse `json:"metadata"`
	Params    FilterParams         `json:"params"`
	Message   string               `json:"message,omitempty"`
}

// StatsResponse is the payload of GET /questions/stats/:examId.
type StatsResponse struct {
	NewCount       int `json:"newCount"`
	AnsweredCount  int `json:"answeredCount"`
	FlaggedCount   int `json:"flaggedCount"`
	IncorrectCount int `json:"incorrectCount"`
	TotalCount     int `json:"totalCount"`
}

// MutationResponse confirms an interaction-state update and returns the
// updated question.
type MutationResponse struct {
	Message  string           `json:"message"`
	Question QuestionResponse `json:"question"`
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}
