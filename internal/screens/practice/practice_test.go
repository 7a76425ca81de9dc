package practice

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gramly/internal/bank"
	"github.com/abhisek/gramly/internal/progress"
	"github.com/abhisek/gramly/internal/store"
)

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	if s == "tab" {
		return tea.KeyPressMsg{Code: tea.KeyTab}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func newTestScreen() (*PracticeScreen, *progress.UserProgress) {
	prog := progress.New()
	return New(prog, nil, nil), prog
}

func TestNew_StartsAtFirstQuestion(t *testing.T) {
	p, _ := newTestScreen()

	q := p.state.Current()
	if q == nil {
		t.Fatal("Current() = nil")
	}
	if q.ID != "q1" {
		t.Errorf("Current().ID = %q, want %q", q.ID, "q1")
	}
	if !p.mcActive {
		t.Error("mcActive = false for a multiple-choice question")
	}
}

func TestSubmit_CorrectMultipleChoice(t *testing.T) {
	p, prog := newTestScreen()

	// q1's correct option is at index 1.
	s, _ := p.handleKey(key("2"))
	p = s.(*PracticeScreen)

	if !p.state.Answered {
		t.Fatal("state.Answered = false after choosing an option")
	}
	if !p.state.LastCorrect {
		t.Error("state.LastCorrect = false for the correct option")
	}
	if p.state.Score != 1 || p.state.Total != 1 {
		t.Errorf("score = %d/%d, want 1/1", p.state.Score, p.state.Total)
	}
	if prog.TotalQuestions != 1 || prog.CorrectAnswers != 1 {
		t.Errorf("lifetime progress = %d/%d, want 1/1", prog.CorrectAnswers, prog.TotalQuestions)
	}
	if tally := prog.QuestionsPerRule["sentence-structure"]; tally.Correct != 1 {
		t.Errorf("rule tally = %+v, want 1 correct", tally)
	}
}

func TestSubmit_WrongThenNext(t *testing.T) {
	p, prog := newTestScreen()

	s, _ := p.handleKey(key("1"))
	p = s.(*PracticeScreen)

	if p.state.LastCorrect {
		t.Error("state.LastCorrect = true for a wrong option")
	}
	if prog.CorrectAnswers != 0 || prog.TotalQuestions != 1 {
		t.Errorf("lifetime progress = %d/%d, want 0/1", prog.CorrectAnswers, prog.TotalQuestions)
	}

	s, _ = p.handleKey(key("enter"))
	p = s.(*PracticeScreen)

	if p.state.Answered {
		t.Error("state.Answered = true after advancing")
	}
	if q := p.state.Current(); q == nil || q.ID != "q2" {
		t.Errorf("Current() = %v, want q2", q)
	}
	if p.mcActive {
		t.Error("mcActive = true for a fill-blank question")
	}
}

func TestSwitchCategory_KeepsScore(t *testing.T) {
	p, _ := newTestScreen()

	s, _ := p.handleKey(key("2"))
	p = s.(*PracticeScreen)

	s, _ = p.handleKey(key("tab"))
	p = s.(*PracticeScreen)

	if p.state.Category != bank.AllCategories()[0] {
		t.Errorf("Category = %q, want %q", p.state.Category, bank.AllCategories()[0])
	}
	if p.state.Score != 1 || p.state.Total != 1 {
		t.Errorf("score = %d/%d after category switch, want 1/1", p.state.Score, p.state.Total)
	}
	if p.state.Answered {
		t.Error("Answered = true after category switch")
	}
}

func TestRestart_ZeroesSessionNotLifetime(t *testing.T) {
	p, prog := newTestScreen()

	s, _ := p.handleKey(key("2"))
	p = s.(*PracticeScreen)
	s, _ = p.handleKey(key("r"))
	p = s.(*PracticeScreen)

	if p.state.Score != 0 || p.state.Total != 0 {
		t.Errorf("score = %d/%d after restart, want 0/0", p.state.Score, p.state.Total)
	}
	if q := p.state.Current(); q == nil || q.ID != "q1" {
		t.Errorf("Current() = %v, want q1 after restart", q)
	}
	if prog.TotalQuestions != 1 {
		t.Errorf("lifetime TotalQuestions = %d, restart must not touch it", prog.TotalQuestions)
	}
}

// failingEventRepo rejects answer appends; the other EventRepo methods are
// never reached in these tests.
type failingEventRepo struct {
	store.EventRepo
}

func (failingEventRepo) AppendAnswer(ctx context.Context, data store.AnswerEventData) error {
	return errors.New("event log unavailable")
}

func TestAnswerEventWriteFailureSurfaces(t *testing.T) {
	prog := progress.New()
	p := New(prog, nil, failingEventRepo{})

	s, cmd := p.handleKey(key("2"))
	p = s.(*PracticeScreen)
	if cmd == nil {
		t.Fatal("expected a persistence command after submitting")
	}

	msg := cmd()
	done, ok := msg.(persistDoneMsg)
	if !ok {
		t.Fatalf("cmd returned %T, want persistDoneMsg", msg)
	}
	if done.Err == nil {
		t.Fatal("append failure was dropped instead of surfacing")
	}

	s, _ = p.Update(done)
	p = s.(*PracticeScreen)
	if p.persistErr == "" {
		t.Error("persistErr not set after a failed answer-event write")
	}
}

func TestStreak_SetOnOpen(t *testing.T) {
	p, prog := newTestScreen()
	p.Init()

	if prog.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d after first open, want 1", prog.CurrentStreak)
	}
}
