package domain

// QuestionFilter selects questions by interaction state. The four flags
// are disjunctive: a question is eligible when it satisfies ANY selected
// category. With no flag selected the filter is unrestricted and every
// question in scope is eligible.
type QuestionFilter struct {
	IncludeNew       bool
	IncludeAnswered  bool
	IncludeFlagged   bool
	IncludeIncorrect bool
}

// IsUnrestricted reports whether the filter selects the whole pool.
func (f QuestionFilter) IsUnrestricted() bool {
	return !f.IncludeNew && !f.IncludeAnswered && !f.IncludeFlagged && !f.IncludeIncorrect
}

// Matches reports whether q satisfies the filter (OR over the selected
// categories).
func (f QuestionFilter) Matches(q *Question) bool {
	if f.IsUnrestricted() {
		return true
	}
	if f.IncludeNew && !q.Answered {
		return true
	}
	if f.IncludeAnswered && q.Answered {
		return true
	}
	if f.IncludeFlagged && q.Flagged {
		return true
	}
	if f.IncludeIncorrect && q.Missed {
		return true
	}
	return false
}

// FlaggedOnly is the filter backing the synthetic flagged pseudo-exam.
func FlaggedOnly() QuestionFilter {
	return QuestionFilter{IncludeFlagged: true}
}

// MissedOnly is the filter backing the synthetic missed pseudo-exam.
func MissedOnly() QuestionFilter {
	return QuestionFilter{IncludeIncorrect: true}
}
