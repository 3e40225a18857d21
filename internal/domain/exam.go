package domain

import (
	"strings"
	"time"
)

// ExamMetadata describes one exam instance: either a real imported file's
// worth of questions, or a synthetic flagged/missed pseudo-exam created
// once per title at import time.
type ExamMetadata struct {
	ExamID        string
	FileName      string
	Title         string
	Type          string
	Vendor        string
	Year          int
	FullName      string
	QuestionCount int
	IsFlagged     bool
	IsMissed      bool
	DisplayOrder  int
	DateImported  time.Time
}

// ExamKind classifies an exam metadata record for display partitioning.
type ExamKind int

const (
	ExamKindRegular ExamKind = iota
	ExamKindAllQuestions
	ExamKindFlagged
	ExamKindMissed
)

// Kind derives the exam's variant from its stored fields. The two kind
// flags win over the type match; a type containing "all" (any case)
// marks a per-vendor "all questions" exam.
func (m *ExamMetadata) Kind() ExamKind {
	switch {
	case m.IsFlagged:
		return ExamKindFlagged
	case m.IsMissed:
		return ExamKindMissed
	case strings.Contains(strings.ToLower(m.Type), "all"):
		return ExamKindAllQuestions
	default:
		return ExamKindRegular
	}
}

// TitleGroup is one node of the taxonomy tree: every exam sharing a
// title, ordered for rendering.
type TitleGroup struct {
	Title string
	Exams []ExamMetadata
}
