package validation

import (
	"regexp"
	"strings"

	"examdrill/internal/domain"
	"examdrill/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuestionID validates the id parameter of the mutator endpoints
func (v *Validator) ValidateQuestionID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}

	return errors
}

// ValidateSaveAttemptRequest validates the save attempt request body.
// CorrectAnswers and Percentage are checked for presence, not truthiness:
// zero is a legitimate score.
func (v *Validator) ValidateSaveAttemptRequest(req *dto.SaveAttemptRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.ExamID) == "" {
		errors = append(errors, domain.NewMissingFieldError("examId"))
	}
	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	}
	if req.QuestionsCount <= 0 {
		errors = append(errors, domain.NewOutOfRangeError("questionsCount", req.QuestionsCount, 1, 10000))
	}
	if req.CorrectAnswers == nil {
		errors = append(errors, domain.NewMissingFieldError("correctAnswers"))
	} else if *req.CorrectAnswers < 0 || (req.QuestionsCount > 0 && *req.CorrectAnswers > req.QuestionsCount) {
		errors = append(errors, domain.NewOutOfRangeError("correctAnswers", *req.CorrectAnswers, 0, req.QuestionsCount))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	// Check if all characters are valid base32 (Crockford's Base32)
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
