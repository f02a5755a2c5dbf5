package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Base     = lipgloss.Color("#1e1e2e")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Mauve    = lipgloss.Color("#cba6f7")
	Blue     = lipgloss.Color("#89b4fa")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Yellow   = lipgloss.Color("#f9e2af")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(1, 2)

	Title  = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted  = lipgloss.NewStyle().Foreground(Subtext0)
	Accent = lipgloss.NewStyle().Foreground(Sapphire)
	Clock  = lipgloss.NewStyle().Foreground(Text).Bold(true)
	Good   = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Bad    = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Hot    = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Quote  = lipgloss.NewStyle().Foreground(Sapphire).Italic(true)
	Author = lipgloss.NewStyle().Foreground(Yellow)

	Work  = lipgloss.NewStyle().Foreground(Mauve).Bold(true)
	Break = lipgloss.NewStyle().Foreground(Blue).Bold(true)
)

// LabelStyle colours break-like labels blue and everything else as work.
func LabelStyle(label string) lipgloss.Style {
	if strings.Contains(strings.ToLower(label), "break") {
		return Break
	}
	return Work
}
