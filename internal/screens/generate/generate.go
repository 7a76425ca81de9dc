package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gramly/internal/llm"
	"github.com/abhisek/gramly/internal/questiongen"
	"github.com/abhisek/gramly/internal/screen"
	"github.com/abhisek/gramly/internal/store"
	"github.com/abhisek/gramly/internal/ui/layout"
	"github.com/abhisek/gramly/internal/ui/theme"
)

type genDoneMsg struct {
	Path     string
	Count    int
	Findings []questiongen.Finding
	Err      error
}

// GenerateScreen drives LLM question generation from inside the TUI. The
// batch is written to a JSON file for curation; nothing touches the bank.
type GenerateScreen struct {
	eventRepo store.EventRepo
	count     int

	running bool
	done    bool
	result  genDoneMsg
	started time.Time
	elapsed time.Duration
}

var _ screen.Screen = (*GenerateScreen)(nil)
var _ screen.KeyHintProvider = (*GenerateScreen)(nil)

// New creates a new GenerateScreen.
func New(eventRepo store.EventRepo) *GenerateScreen {
	return &GenerateScreen{
		eventRepo: eventRepo,
		count:     questiongen.DefaultConfig().DefaultCount,
	}
}

func (g *GenerateScreen) Init() tea.Cmd {
	return nil
}

func (g *GenerateScreen) Title() string {
	return "Generate"
}

func (g *GenerateScreen) KeyHints() []layout.KeyHint {
	if g.running {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Generate"},
		{Key: "+/-", Description: "Count"},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GenerateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case genDoneMsg:
		g.running = false
		g.done = true
		g.result = msg
		g.elapsed = time.Since(g.started)
		return g, nil

	case tea.KeyMsg:
		if g.running {
			return g, nil
		}
		switch msg.String() {
		case "enter":
			g.running = true
			g.done = false
			g.started = time.Now()
			return g, g.runGeneration()
		case "+", "=":
			if g.count < 50 {
				g.count++
			}
		case "-":
			if g.count > 1 {
				g.count--
			}
		}
	}
	return g, nil
}

// runGeneration calls the provider off the UI loop and reports back with a
// single message. Generation failures never touch progress or the bank.
func (g *GenerateScreen) runGeneration() tea.Cmd {
	count := g.count
	eventRepo := g.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
		if err != nil {
			return genDoneMsg{Err: err}
		}

		gen := questiongen.New(provider, questiongen.DefaultConfig())
		questions, err := gen.Generate(ctx, questiongen.GenerateInput{Count: count})
		if err != nil {
			return genDoneMsg{Err: err}
		}

		findings := questiongen.Review(questions)

		out, err := json.MarshalIndent(map[string]any{"questions": questions}, "", "  ")
		if err != nil {
			return genDoneMsg{Err: err}
		}
		out = append(out, '\n')

		path := fmt.Sprintf("gramly-questions-%s.json", time.Now().Format("20060102-150405"))
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return genDoneMsg{Err: err}
		}

		return genDoneMsg{Path: path, Count: len(questions), Findings: findings}
	}
}

func (g *GenerateScreen) View(width, height int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Draft Question Generation"))
	b.WriteString("\n\n")
	b.WriteString(dim.Render("  New questions are written to a JSON file for manual review.\n"))
	b.WriteString(dim.Render("  Nothing is added to the question bank automatically.\n"))
	b.WriteString("\n")
	b.WriteString(dim.Render("  Questions to request: ") + val.Render(fmt.Sprintf("%d", g.count)))
	b.WriteString("\n\n")

	switch {
	case g.running:
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("  Generating... this can take a minute."))

	case g.done && g.result.Err != nil:
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  Generation failed: " + g.result.Err.Error()))

	case g.done:
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("  Wrote %d questions to %s (%.0fs)",
				g.result.Count, g.result.Path, g.elapsed.Seconds())))
		if n := len(g.result.Findings); n > 0 {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Accent).
				Render(fmt.Sprintf("  %d review findings to check before merging:", n)))
			shown := g.result.Findings
			if len(shown) > 8 {
				shown = shown[:8]
			}
			for _, f := range shown {
				b.WriteString("\n" + dim.Render("    "+f.String()))
			}
			if len(g.result.Findings) > 8 {
				b.WriteString("\n" + dim.Render(fmt.Sprintf("    ...and %d more", len(g.result.Findings)-8)))
			}
		}

	default:
		b.WriteString(dim.Render("  Press Enter to start."))
	}

	return b.String()
}
