package session

import (
	"errors"
	"strings"

	"github.com/abhisek/gramly/internal/bank"
	"github.com/abhisek/gramly/internal/grading"
)

// Submission errors.
var (
	// ErrEmptyAnswer is returned when the submission is blank after trimming.
	ErrEmptyAnswer = errors.New("empty answer")

	// ErrAlreadyAnswered is returned when the current question was already graded.
	ErrAlreadyAnswered = errors.New("question already answered")

	// ErrNoQuestion is returned when the filtered pool is empty.
	ErrNoQuestion = errors.New("no question available")
)

// State tracks a single ephemeral practice session. It is never persisted;
// only the lifetime progress record outlives it.
type State struct {
	// Category filters the question pool; empty means all questions.
	Category bank.Category

	// pool is the filtered question list in bank order.
	pool []bank.Question

	// index is the position of the current question within pool.
	index int

	// Answered is true once the current question has been graded.
	Answered bool

	// LastCorrect records the outcome of the most recent submission.
	LastCorrect bool

	// LastSubmission holds the most recent graded answer, for feedback display.
	LastSubmission string

	// Score and Total are the session-local counters shown in the status line.
	Score int
	Total int
}

// New creates a session over the full question bank.
func New() *State {
	return NewForCategory("")
}

// NewForCategory creates a session filtered to one category. An empty
// category selects the full bank.
func NewForCategory(cat bank.Category) *State {
	s := &State{}
	s.SetCategory(cat)
	return s
}

// SetCategory switches the category filter. The pool is rebuilt and the
// cursor returns to the first question, but the session score is kept.
func (s *State) SetCategory(cat bank.Category) {
	s.Category = cat
	if cat == "" {
		s.pool = bank.Questions()
	} else {
		s.pool = bank.QuestionsForCategory(cat)
	}
	s.index = 0
	s.clearAnswer()
}

// Current returns the question under the cursor, or nil if the pool is empty.
func (s *State) Current() *bank.Question {
	if len(s.pool) == 0 {
		return nil
	}
	return &s.pool[s.index]
}

// Position returns the 1-based cursor position and the pool size.
func (s *State) Position() (current, total int) {
	if len(s.pool) == 0 {
		return 0, 0
	}
	return s.index + 1, len(s.pool)
}

// Submit grades an answer against the current question and updates the
// session counters. Each question accepts exactly one submission; use Next
// to move on.
func (s *State) Submit(answer string) (correct bool, err error) {
	q := s.Current()
	if q == nil {
		return false, ErrNoQuestion
	}
	if s.Answered {
		return s.LastCorrect, ErrAlreadyAnswered
	}
	if strings.TrimSpace(answer) == "" {
		return false, ErrEmptyAnswer
	}

	correct = grading.CheckAnswer(answer, q)
	s.Answered = true
	s.LastCorrect = correct
	s.LastSubmission = answer
	s.Total++
	if correct {
		s.Score++
	}
	return correct, nil
}

// Next advances the cursor, wrapping to the first question after the last.
// The answered flag is cleared so the next question can be submitted.
func (s *State) Next() {
	if len(s.pool) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.pool)
	s.clearAnswer()
}

// Reset returns to the first question and zeroes the session counters.
func (s *State) Reset() {
	s.index = 0
	s.Score = 0
	s.Total = 0
	s.clearAnswer()
}

// Accuracy returns the rounded session accuracy percentage, or 0 before any
// submission.
func (s *State) Accuracy() int {
	if s.Total == 0 {
		return 0
	}
	return int(float64(s.Score)/float64(s.Total)*100 + 0.5)
}

func (s *State) clearAnswer() {
	s.Answered = false
	s.LastCorrect = false
	s.LastSubmission = ""
}
