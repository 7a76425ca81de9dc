package grading

import (
	"strings"

	"github.com/abhisek/gramly/internal/bank"
)

// Grade compares a submitted answer against the expected answer.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Leading/trailing whitespace on both sides is trimmed
// - Comparison is case-insensitive
// - Interior punctuation and spacing must match exactly
//
// An answer that is empty after trimming is always wrong.
func Grade(submitted, expected string) bool {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return false
	}
	return strings.EqualFold(submitted, strings.TrimSpace(expected))
}

// CheckAnswer grades a submission against a question. Every question type
// uses the same literal string comparison; a multiple-choice submission must
// be the option text itself, never the option number.
func CheckAnswer(submitted string, q *bank.Question) bool {
	return Grade(submitted, q.Answer)
}
