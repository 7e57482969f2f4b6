package render

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme is a set of styles for one display preference.
type Theme struct {
	Name string

	Title   lipgloss.Style
	Heading lipgloss.Style
	Body    lipgloss.Style
	Hint    lipgloss.Style
	Card    lipgloss.Style
	Tip     lipgloss.Style

	Correct   lipgloss.Style
	Incorrect lipgloss.Style
	Error     lipgloss.Style
}

type palette struct {
	primary, secondary, accent color.Color
	success, failure           color.Color
	text, textDim, border      color.Color
}

var (
	darkPalette = palette{
		primary:   lipgloss.Color("#8B5CF6"),
		secondary: lipgloss.Color("#14B8A6"),
		accent:    lipgloss.Color("#F97316"),
		success:   lipgloss.Color("#22C55E"),
		failure:   lipgloss.Color("#F43F5E"),
		text:      lipgloss.Color("#F8FAFC"),
		textDim:   lipgloss.Color("#94A3B8"),
		border:    lipgloss.Color("#334155"),
	}
	lightPalette = palette{
		primary:   lipgloss.Color("#4F46E5"),
		secondary: lipgloss.Color("#0F766E"),
		accent:    lipgloss.Color("#C2410C"),
		success:   lipgloss.Color("#15803D"),
		failure:   lipgloss.Color("#BE123C"),
		text:      lipgloss.Color("#111827"),
		textDim:   lipgloss.Color("#6B7280"),
		border:    lipgloss.Color("#D1D5DB"),
	}
)

func newTheme(name string, p palette) Theme {
	return Theme{
		Name: name,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.secondary),
		Body: lipgloss.NewStyle().
			Foreground(p.text),
		Hint: lipgloss.NewStyle().
			Foreground(p.textDim).
			Italic(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		Tip: lipgloss.NewStyle().
			Foreground(p.accent),
		Correct: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		Incorrect: lipgloss.NewStyle().
			Foreground(p.failure).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(p.failure),
	}
}

var (
	Dark  = newTheme("dark", darkPalette)
	Light = newTheme("light", lightPalette)
)

// For returns the theme matching the saved dark mode preference.
func For(darkMode bool) Theme {
	if darkMode {
		return Dark
	}
	return Light
}
