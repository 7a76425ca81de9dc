package practice

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/gramly/internal/achievements"
	"github.com/abhisek/gramly/internal/bank"
	"github.com/abhisek/gramly/internal/progress"
	"github.com/abhisek/gramly/internal/screen"
	sess "github.com/abhisek/gramly/internal/session"
	"github.com/abhisek/gramly/internal/store"
	"github.com/abhisek/gramly/internal/ui/components"
	"github.com/abhisek/gramly/internal/ui/layout"
)

// PracticeScreen runs the question loop: pick a category, answer questions,
// review the explanation, move on. Session counters live in sess.State;
// lifetime counters live in the shared progress record.
type PracticeScreen struct {
	state        *sess.State
	prog         *progress.UserProgress
	progressRepo store.ProgressRepo
	eventRepo    store.EventRepo
	sessionID    string

	cats     []bank.Category // cats[0] is empty: the "All" filter
	catIndex int

	mc       components.MultiChoice
	mcActive bool
	input    components.TextInput

	newBadges  []string
	persistErr string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a new PracticeScreen over the full question bank.
func New(prog *progress.UserProgress, progressRepo store.ProgressRepo, eventRepo store.EventRepo) *PracticeScreen {
	p := &PracticeScreen{
		state:        sess.New(),
		prog:         prog,
		progressRepo: progressRepo,
		eventRepo:    eventRepo,
		sessionID:    uuid.New().String(),
		cats:         append([]bank.Category{""}, bank.AllCategories()...),
	}
	p.setupQuestion()
	return p
}

func (p *PracticeScreen) Init() tea.Cmd {
	// Opening the practice view counts as today's practice for the streak.
	if p.prog.UpdateStreak(time.Now()) {
		return tea.Batch(p.saveProgress(), p.input.Init())
	}
	return p.input.Init()
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if p.state.Current() == nil {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Category"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if p.state.Answered {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "R", Description: "Restart"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Tab", Description: "Category"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case persistDoneMsg:
		if msg.Err != nil {
			p.persistErr = msg.Err.Error()
		}
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if !p.mcActive && !p.state.Answered {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.state.Current() == nil {
		// Empty pool; only category switching makes sense.
		switch key {
		case "tab":
			return p, p.switchCategory(1)
		case "shift+tab":
			return p, p.switchCategory(-1)
		}
		return p, nil
	}

	// Feedback phase: advance, restart, or switch category.
	if p.state.Answered {
		switch key {
		case "enter", "n", " ":
			p.state.Next()
			p.setupQuestion()
			return p, p.input.Init()
		case "r":
			p.state.Reset()
			p.setupQuestion()
			return p, p.input.Init()
		case "tab":
			return p, p.switchCategory(1)
		case "shift+tab":
			return p, p.switchCategory(-1)
		}
		return p, nil
	}

	// Answering phase.
	switch key {
	case "tab":
		return p, p.switchCategory(1)
	case "shift+tab":
		return p, p.switchCategory(-1)
	}

	if p.mcActive {
		switch key {
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(p.mc.Options) {
				p.mc.Selected = idx
				p.mc.Submitted = true
				p.mc.ChosenIndex = idx
				return p, p.submit(p.mc.Options[idx])
			}
			return p, nil
		case "r":
			p.state.Reset()
			p.setupQuestion()
			return p, nil
		}

		var cmd tea.Cmd
		p.mc, cmd = p.mc.Update(msg)
		if p.mc.Submitted {
			return p, p.submit(p.mc.Options[p.mc.ChosenIndex])
		}
		return p, cmd
	}

	if key == "enter" {
		return p, p.submit(p.input.Value())
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// submit grades the answer and records it against lifetime progress.
func (p *PracticeScreen) submit(answer string) tea.Cmd {
	q := p.state.Current()
	correct, err := p.state.Submit(answer)
	if err != nil {
		if errors.Is(err, sess.ErrEmptyAnswer) {
			// Blank submissions are ignored rather than graded wrong.
			p.mc.Submitted = false
			p.mc.ChosenIndex = -1
		}
		return nil
	}

	if !p.mcActive {
		p.input.Submit(correct)
	}

	p.prog.RecordAnswer(q.RuleID, correct)
	p.prog.UpdateStreak(time.Now())

	p.newBadges = nil
	for _, a := range achievements.Evaluate(p.prog) {
		p.newBadges = append(p.newBadges, a.Icon+" "+a.Title)
	}

	return p.persistAnswer(*q, answer, correct)
}

// switchCategory rotates the category filter. Session score survives the
// switch; the cursor returns to the first question of the new pool.
func (p *PracticeScreen) switchCategory(dir int) tea.Cmd {
	p.catIndex = (p.catIndex + dir + len(p.cats)) % len(p.cats)
	p.state.SetCategory(p.cats[p.catIndex])
	p.setupQuestion()
	return p.input.Init()
}

// setupQuestion prepares the input widgets for the question under the cursor.
func (p *PracticeScreen) setupQuestion() {
	p.newBadges = nil

	q := p.state.Current()
	if q == nil {
		p.mcActive = false
		return
	}

	if q.Type == bank.TypeMultipleChoice {
		p.mcActive = true
		correctIndex := -1
		for i, opt := range q.Options {
			if opt == q.Answer {
				correctIndex = i
			}
		}
		p.mc = components.NewMultiChoice("", q.Options, correctIndex)
	} else {
		p.mcActive = false
		p.input = components.NewTextInput("Type your answer...", 80)
	}
}

// persistAnswer saves lifetime progress and appends the answer event.
func (p *PracticeScreen) persistAnswer(q bank.Question, submitted string, correct bool) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		// Try both writes; a failed event append must not skip the
		// progress save, but it surfaces the same way.
		var firstErr error
		if p.eventRepo != nil {
			firstErr = p.eventRepo.AppendAnswer(ctx, store.AnswerEventData{
				SessionID:  p.sessionID,
				QuestionID: q.ID,
				RuleID:     q.RuleID,
				Type:       string(q.Type),
				Submitted:  submitted,
				Correct:    correct,
			})
		}

		if p.progressRepo != nil {
			if err := p.progressRepo.Save(ctx, p.prog); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return persistDoneMsg{Err: firstErr}
	}
}

// saveProgress persists the progress record alone, used for streak updates.
func (p *PracticeScreen) saveProgress() tea.Cmd {
	return func() tea.Msg {
		if p.progressRepo == nil {
			return persistDoneMsg{}
		}
		if err := p.progressRepo.Save(context.Background(), p.prog); err != nil {
			return persistDoneMsg{Err: err}
		}
		return persistDoneMsg{}
	}
}
