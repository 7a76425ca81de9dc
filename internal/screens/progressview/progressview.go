package progressview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gramly/internal/achievements"
	"github.com/abhisek/gramly/internal/bank"
	"github.com/abhisek/gramly/internal/progress"
	"github.com/abhisek/gramly/internal/screen"
	"github.com/abhisek/gramly/internal/ui/components"
	"github.com/abhisek/gramly/internal/ui/layout"
	"github.com/abhisek/gramly/internal/ui/theme"
)

// ProgressScreen shows lifetime statistics: streak, per-rule accuracy, and
// achievements.
type ProgressScreen struct {
	prog         *progress.UserProgress
	scrollOffset int
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a new ProgressScreen.
func New(prog *progress.UserProgress) *ProgressScreen {
	return &ProgressScreen{prog: prog}
}

func (s *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (s *ProgressScreen) Title() string {
	return "Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			s.scrollOffset++
		}
	}
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	lines := s.buildLines(width)

	if s.scrollOffset > len(lines)-height {
		s.scrollOffset = len(lines) - height
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}

	end := s.scrollOffset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[s.scrollOffset:end], "\n")
}

func (s *ProgressScreen) buildLines(width int) []string {
	var lines []string

	header := func(label string) {
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  "+label))
		lines = append(lines, "")
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	// Overview.
	header("Overview")
	lines = append(lines,
		dim.Render("  Day streak:      ")+val.Render(fmt.Sprintf("%d", s.prog.CurrentStreak)),
		dim.Render("  Questions:       ")+val.Render(fmt.Sprintf("%d", s.prog.TotalQuestions)),
		dim.Render("  Correct:         ")+val.Render(fmt.Sprintf("%d", s.prog.CorrectAnswers)),
		dim.Render("  Accuracy:        ")+val.Render(fmt.Sprintf("%d%%", s.prog.OverallAccuracy())),
	)
	if s.prog.LastPracticeDate != "" {
		lines = append(lines, dim.Render("  Last practiced:  ")+val.Render(s.prog.LastPracticeDate))
	}

	// Per-rule accuracy.
	header("Accuracy by Rule")
	barWidth := width - 8
	if barWidth > 64 {
		barWidth = 64
	}
	for _, rule := range bank.Rules() {
		tally := s.prog.QuestionsPerRule[rule.ID]
		label := fmt.Sprintf("%-28s", truncate(rule.Title, 28))
		if tally.Total == 0 {
			lines = append(lines, "  "+dim.Render(label+"  not practiced yet"))
			continue
		}
		pct := float64(tally.Correct) / float64(tally.Total)
		bar := components.NewProgressBar(label, pct, true, barWidth)
		lines = append(lines, "  "+bar.View()+dim.Render(fmt.Sprintf("  %d/%d", tally.Correct, tally.Total)))
	}

	// Rules under 70% accuracy deserve another study pass.
	var weak []string
	for _, rule := range bank.Rules() {
		tally := s.prog.QuestionsPerRule[rule.ID]
		if tally.Total > 0 && s.prog.AccuracyForRule(rule.ID) < 70 {
			weak = append(weak, fmt.Sprintf("%s (%d%%)", rule.Title, s.prog.AccuracyForRule(rule.ID)))
		}
	}
	if len(weak) > 0 {
		header("Areas to Improve")
		for _, w := range weak {
			lines = append(lines, "  "+lipgloss.NewStyle().Foreground(theme.Error).Render("▾ ")+dim.Render(w))
		}
	}

	// Achievements.
	header("Achievements")
	for _, a := range achievements.All() {
		if s.prog.HasAchievement(a.ID) {
			lines = append(lines, "  "+lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(a.Icon+" "+a.Title)+
				"  "+dim.Render(a.Description))
		} else {
			lines = append(lines, "  "+dim.Render("· "+a.Title+"  "+a.Description))
		}
	}

	return lines
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
