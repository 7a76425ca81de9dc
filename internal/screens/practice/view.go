package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gramly/internal/bank"
	"github.com/abhisek/gramly/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	q := p.state.Current()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No questions in this category yet.\n  Press Tab to pick another.")
	}

	var b strings.Builder

	b.WriteString(p.renderCategoryTabs(width))
	b.WriteString("\n")
	b.WriteString(p.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question type tag.
	tag := q.Type.Label()
	if rule, err := bank.RuleByID(q.RuleID); err == nil {
		tag += "  ·  " + rule.Title
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(tag))
	b.WriteString("\n\n")

	// Question text.
	qStyle := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, qStyle.Render(q.Prompt)))
	b.WriteString("\n\n")

	// Input area.
	if p.mcActive {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.mc.View()))
		if !p.state.Answered {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("Select (1-4) or use arrows + Enter"))
		}
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + p.input.View()))
	}

	if p.state.Answered {
		b.WriteString("\n\n")
		b.WriteString(p.renderFeedback(q, width))
	}

	if p.persistErr != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Could not save progress: " + p.persistErr))
	}

	return b.String()
}

// renderCategoryTabs shows the filter row with the active category highlighted.
func (p *PracticeScreen) renderCategoryTabs(width int) string {
	var tabs []string
	for i, cat := range p.cats {
		label := "All"
		if cat != "" {
			label = string(cat)
		}
		if i == p.catIndex {
			tabs = append(tabs, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.CategoryColor(label)).
				Bold(true).
				Padding(0, 1).
				Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Padding(0, 1).
				Render(label))
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, " "))
}

// renderStatusLine shows the cursor position and the session score.
func (p *PracticeScreen) renderStatusLine(width int) string {
	current, total := p.state.Position()

	left := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Question %d/%d", current, total))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Score %s/%d (%d%%)  ",
			lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("%d", p.state.Score)),
			p.state.Total,
			p.state.Accuracy(),
		))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

// renderFeedback shows the grading result and explanation below the question.
func (p *PracticeScreen) renderFeedback(q *bank.Question, width int) string {
	var b strings.Builder

	if p.state.LastCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", q.Answer)))
	}

	if q.Explanation != "" {
		b.WriteString("\n\n")
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
	}

	for _, badge := range p.newBadges {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("Achievement unlocked: " + badge))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter for the next question"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
