package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionFilterIsUnrestricted(t *testing.T) {
	assert.True(t, QuestionFilter{}.IsUnrestricted())
	assert.False(t, QuestionFilter{IncludeNew: true}.IsUnrestricted())
	assert.False(t, QuestionFilter{IncludeIncorrect: true}.IsUnrestricted())
}

func TestQuestionFilterMatchesDisjunction(t *testing.T) {
	newQ := &Question{}
	answeredQ := &Question{Answered: true}
	missedQ := &Question{Answered: true, Missed: true}
	flaggedNewQ := &Question{Flagged: true}

	tests := []struct {
		name   string
		filter QuestionFilter
		q      *Question
		want   bool
	}{
		{"new matches includeNew", QuestionFilter{IncludeNew: true}, newQ, true},
		{"answered excluded by includeNew", QuestionFilter{IncludeNew: true}, answeredQ, false},
		{"answered matches includeAnswered", QuestionFilter{IncludeAnswered: true}, answeredQ, true},
		{"missed matches includeIncorrect", QuestionFilter{IncludeIncorrect: true}, missedQ, true},
		{"correct answered excluded by includeIncorrect", QuestionFilter{IncludeIncorrect: true}, answeredQ, false},
		{"flagged matches includeFlagged", QuestionFilter{IncludeFlagged: true}, flaggedNewQ, true},
		// OR semantics: a new+flagged question matches a filter selecting
		// answered OR flagged because of the flagged bit alone.
		{"disjunction over categories", QuestionFilter{IncludeAnswered: true, IncludeFlagged: true}, flaggedNewQ, true},
		{"no category matches", QuestionFilter{IncludeFlagged: true, IncludeIncorrect: true}, answeredQ, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.q))
		})
	}
}

func TestQuestionFilterUnrestrictedMatchesEverything(t *testing.T) {
	f := QuestionFilter{}
	for _, q := range []*Question{
		{},
		{Answered: true},
		{Answered: true, Missed: true},
		{Flagged: true},
	} {
		assert.True(t, f.Matches(q))
	}
}
