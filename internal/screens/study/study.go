package study

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gramly/internal/bank"
	"github.com/abhisek/gramly/internal/progress"
	"github.com/abhisek/gramly/internal/router"
	"github.com/abhisek/gramly/internal/screen"
	"github.com/abhisek/gramly/internal/ui/layout"
	"github.com/abhisek/gramly/internal/ui/theme"
)

type rowKind int

const (
	rowCategoryHeader rowKind = iota
	rowRule
)

type row struct {
	kind     rowKind
	category bank.Category
	rule     *bank.Rule
}

// StudyScreen lists every grammar rule grouped by category.
type StudyScreen struct {
	rows         []row
	cursor       int
	scrollOffset int
	prog         *progress.UserProgress
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a new StudyScreen.
func New(prog *progress.UserProgress) *StudyScreen {
	var rows []row
	for _, cat := range bank.AllCategories() {
		rules := bank.RulesByCategory(cat)
		if len(rules) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowCategoryHeader, category: cat})
		for i := range rules {
			rows = append(rows, row{kind: rowRule, category: cat, rule: &rules[i]})
		}
	}

	s := &StudyScreen{rows: rows, prog: prog}

	// Set cursor to first rule row
	for i, r := range s.rows {
		if r.kind == rowRule {
			s.cursor = i
			break
		}
	}

	return s
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Next category"},
		{Key: "Enter", Description: "Open rule"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextCategory()
		case "shift+tab":
			s.prevCategory()
		case "enter":
			return s, s.openRule()
		}
	}
	return s, nil
}

func (s *StudyScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}

		switch r.kind {
		case rowCategoryHeader:
			lines = append(lines, s.renderCategoryHeader(r.category, width))
		case rowRule:
			lines = append(lines, s.renderRuleRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *StudyScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowRule {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextCategory jumps the cursor to the first rule of the following category.
func (s *StudyScreen) nextCategory() {
	cur := s.rows[s.cursor].category
	passed := false
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].category != cur {
			passed = true
		}
		if passed && s.rows[i].kind == rowRule {
			s.cursor = i
			return
		}
	}
}

func (s *StudyScreen) prevCategory() {
	cur := s.rows[s.cursor].category
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].category != cur && s.rows[i].kind == rowRule {
			// Walk back to the first rule of that category.
			target := s.rows[i].category
			first := i
			for j := i; j >= 0 && s.rows[j].category == target; j-- {
				if s.rows[j].kind == rowRule {
					first = j
				}
			}
			s.cursor = first
			return
		}
	}
}

func (s *StudyScreen) adjustScroll(height int) {
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}

func (s *StudyScreen) openRule() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowRule || r.rule == nil {
		return nil
	}
	rule := *r.rule
	prog := s.prog
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: newRuleDetail(rule, prog)}
	}
}

func (s *StudyScreen) renderCategoryHeader(cat bank.Category, width int) string {
	label := string(cat)
	return lipgloss.NewStyle().
		Foreground(theme.CategoryColor(label)).
		Bold(true).
		Render("  ▌ " + label)
}

func (s *StudyScreen) renderRuleRow(r row, selected bool, width int) string {
	rule := r.rule

	tally := s.prog.QuestionsPerRule[rule.ID]
	stats := ""
	if tally.Total > 0 {
		stats = fmt.Sprintf("%d%% of %d", s.prog.AccuracyForRule(rule.ID), tally.Total)
	}

	cursor := "    "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		cursor = "  ▸ "
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	left := cursor + rule.Title
	line := style.Render(left)

	if stats != "" {
		right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(stats + "  ")
		pad := width - lipgloss.Width(line) - lipgloss.Width(right)
		if pad > 0 {
			line += strings.Repeat(" ", pad) + right
		}
	}

	return line
}
