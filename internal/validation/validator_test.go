package validation

import (
	"testing"

	"examdrill/internal/dto"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestValidateQuestionID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateQuestionID("01HXXXXXXXXXXXXXXXXXXXXXXX"))

	errs := v.ValidateQuestionID("")
	assert.Len(t, errs, 1)
	assert.Equal(t, "id", errs[0].Field)

	errs = v.ValidateQuestionID("not-a-ulid")
	assert.Len(t, errs, 1)
}

func TestValidateSaveAttemptRequestValid(t *testing.T) {
	v := NewValidator()
	errs := v.ValidateSaveAttemptRequest(&dto.SaveAttemptRequest{
		ExamID:         "Net+_1",
		Title:          "Net+",
		QuestionsCount: 10,
		CorrectAnswers: intPtr(7),
	})
	assert.Empty(t, errs)
}

func TestValidateSaveAttemptRequestZeroScoreAllowed(t *testing.T) {
	v := NewValidator()
	errs := v.ValidateSaveAttemptRequest(&dto.SaveAttemptRequest{
		ExamID:         "Net+_1",
		Title:          "Net+",
		QuestionsCount: 10,
		CorrectAnswers: intPtr(0),
		Percentage:     intPtr(0),
	})
	assert.Empty(t, errs)
}

func TestValidateSaveAttemptRequestMissingFields(t *testing.T) {
	v := NewValidator()
	errs := v.ValidateSaveAttemptRequest(&dto.SaveAttemptRequest{})

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "examId")
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "questionsCount")
	assert.Contains(t, fields, "correctAnswers")
}

func TestValidateSaveAttemptRequestCorrectAnswersOutOfRange(t *testing.T) {
	v := NewValidator()
	errs := v.ValidateSaveAttemptRequest(&dto.SaveAttemptRequest{
		ExamID:         "Net+_1",
		Title:          "Net+",
		QuestionsCount: 5,
		CorrectAnswers: intPtr(9),
	})
	assert.Len(t, errs, 1)
	assert.Equal(t, "correctAnswers", errs[0].Field)
}
