// Package ui holds the lipgloss styles used to render search results.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - single cyan accent over grays.
const (
	ColorCyan     = "51"  // Primary accent - result titles, prompt
	ColorWhite    = "255" // Headers
	ColorGray     = "245" // Snippets, secondary text
	ColorDarkGray = "238" // Separators, URLs
	ColorRed      = "196" // Errors
	ColorYellow   = "220" // Warnings
)

// Styles holds the render styles for CLI output.
type Styles struct {
	Header  lipgloss.Style
	Rank    lipgloss.Style
	Title   lipgloss.Style
	URL     lipgloss.Style
	Snippet lipgloss.Style
	Score   lipgloss.Style
	Prompt  lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the styled set for terminal output.
func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Rank:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorCyan)),
		URL:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)).Underline(true),
		Snippet: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Score:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorCyan)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
	}
}

// NoColorStyles returns unstyled components for plain mode (pipes, --no-color).
func NoColorStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle(),
		Rank:    lipgloss.NewStyle(),
		Title:   lipgloss.NewStyle(),
		URL:     lipgloss.NewStyle(),
		Snippet: lipgloss.NewStyle(),
		Score:   lipgloss.NewStyle(),
		Prompt:  lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}
