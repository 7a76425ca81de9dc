package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gramly/internal/ui/theme"
)

const wordmark = `
 ██████╗ ██████╗  █████╗ ███╗   ███╗██╗  ██╗   ██╗
██╔════╝ ██╔══██╗██╔══██╗████╗ ████║██║  ╚██╗ ██╔╝
██║  ███╗██████╔╝███████║██╔████╔██║██║   ╚████╔╝
██║   ██║██╔══██╗██╔══██║██║╚██╔╝██║██║    ╚██╔╝
╚██████╔╝██║  ██║██║  ██║██║ ╚═╝ ██║███████╗██║
 ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝     ╚═╝╚══════╝╚═╝`

const tagline = "Master English grammar, one question at a time"

// renderTitle renders the wordmark, or a compact one-liner on small
// terminals where the ASCII art would overflow.
func renderTitle(cw int, compact bool) string {
	if compact || cw < 52 {
		return lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Width(cw).
			Align(lipgloss.Center).
			Render("★ G R A M L Y ★")
	}

	art := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(wordmark)

	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(tagline)

	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, art) + "\n" + sub
}
