package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gramly/internal/achievements"
	"github.com/abhisek/gramly/internal/progress"
	"github.com/abhisek/gramly/internal/router"
	"github.com/abhisek/gramly/internal/screen"
	"github.com/abhisek/gramly/internal/screens/generate"
	"github.com/abhisek/gramly/internal/screens/practice"
	"github.com/abhisek/gramly/internal/screens/progressview"
	"github.com/abhisek/gramly/internal/screens/study"
	"github.com/abhisek/gramly/internal/store"
	"github.com/abhisek/gramly/internal/ui/components"
	"github.com/abhisek/gramly/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	prog       *progress.UserProgress
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(prog *progress.UserProgress, progressRepo store.ProgressRepo, eventRepo store.EventRepo) *HomeScreen {
	menuLabels := []string{"PRACTICE", "STUDY RULES", "MY PROGRESS", "GENERATE", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: practice.New(prog, progressRepo, eventRepo),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: study.New(prog)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progressview.New(prog)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: generate.New(eventRepo)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		prog:       prog,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, h.renderStatsBar(cw))
	sections = append(sections, h.renderMenu(cw))

	content := strings.Join(sections, "\n\n")

	return components.Frame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderStatsBar shows streak, questions answered, accuracy, and earned
// achievements in a single card.
func (h *HomeScreen) renderStatsBar(cw int) string {
	earned := 0
	for _, a := range achievements.All() {
		if h.prog.HasAchievement(a.ID) {
			earned++
		}
	}

	stat := func(icon, value, label string) string {
		return lipgloss.NewStyle().Foreground(theme.Accent).Render(icon) + " " +
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value) + " " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
	}

	parts := []string{
		stat("🔥", fmt.Sprintf("%d", h.prog.CurrentStreak), "streak"),
		stat("✎", fmt.Sprintf("%d", h.prog.TotalQuestions), "answered"),
		stat("✓", fmt.Sprintf("%d%%", h.prog.OverallAccuracy()), "accuracy"),
		stat("🏆", fmt.Sprintf("%d/%d", earned, len(achievements.All())), "badges"),
	}

	return components.Card(strings.Join(parts, "    "), cw)
}

// renderMenu renders the vertical button stack.
func (h *HomeScreen) renderMenu(cw int) string {
	bw := cw - 8
	if bw < 16 {
		bw = 16
	}

	var buttons []string
	for i, label := range h.menuLabels {
		buttons = append(buttons, components.MenuButton(label, i == h.menu.Selected, bw))
	}

	return lipgloss.JoinVertical(lipgloss.Center, buttons...)
}
