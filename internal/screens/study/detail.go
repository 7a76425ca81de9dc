package study

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gramly/internal/bank"
	"github.com/abhisek/gramly/internal/progress"
	"github.com/abhisek/gramly/internal/screen"
	"github.com/abhisek/gramly/internal/ui/layout"
	"github.com/abhisek/gramly/internal/ui/theme"
)

// RuleDetailScreen shows one grammar rule with its examples.
type RuleDetailScreen struct {
	rule bank.Rule
	prog *progress.UserProgress
}

var _ screen.Screen = (*RuleDetailScreen)(nil)
var _ screen.KeyHintProvider = (*RuleDetailScreen)(nil)

func newRuleDetail(rule bank.Rule, prog *progress.UserProgress) *RuleDetailScreen {
	return &RuleDetailScreen{rule: rule, prog: prog}
}

func (d *RuleDetailScreen) Init() tea.Cmd { return nil }
func (d *RuleDetailScreen) Title() string { return d.rule.Title }

func (d *RuleDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *RuleDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *RuleDetailScreen) View(width, height int) string {
	rule := d.rule
	contentWidth := width - 8
	if contentWidth > 70 {
		contentWidth = 70
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  " + rule.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.CategoryColor(string(rule.Category))).
		Render("  " + string(rule.Category)))
	b.WriteString("\n\n")

	if rule.Description != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.Text).
			PaddingLeft(2).
			Render(rule.Description))
		b.WriteString("\n\n")
	}

	if len(rule.Examples) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  Examples"))
		b.WriteString("\n")
		for _, ex := range rule.Examples {
			b.WriteString(lipgloss.NewStyle().
				Width(contentWidth).
				Foreground(theme.Text).
				PaddingLeft(4).
				Render("• " + ex))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	questions := bank.QuestionsForRule(rule.ID)
	b.WriteString(dimStyle.Render("  Questions:  ") + valStyle.Render(fmt.Sprintf("%d in bank", len(questions))) + "\n")

	tally := d.prog.QuestionsPerRule[rule.ID]
	if tally.Total > 0 {
		b.WriteString(dimStyle.Render("  Your score: ") +
			valStyle.Render(fmt.Sprintf("%d/%d (%d%%)", tally.Correct, tally.Total, d.prog.AccuracyForRule(rule.ID))) + "\n")
	} else {
		b.WriteString(dimStyle.Render("  Your score: ") + valStyle.Render("not practiced yet") + "\n")
	}

	return b.String()
}
