package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors.
const (
	ColorAccent    = "86"  // titles, ratings
	ColorHighlight = "205" // focused controls, borders
	ColorMuted     = "241" // ids, hints
	ColorWarning   = "208" // invalid props
)

// Styles holds the shared lipgloss styles for the editor and its views.
var Styles = struct {
	Title   lipgloss.Style
	Box     lipgloss.Style
	Muted   lipgloss.Style
	Rating  lipgloss.Style
	Empty   lipgloss.Style
	Flag    lipgloss.Style
	Button  lipgloss.Style
	Focused lipgloss.Style
	Hint    lipgloss.Style
	Details lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Rating: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Flag: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
}
