package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	TileBorder        *lipgloss.Style
	TileBorderFocused *lipgloss.Style
	TileTitle         *lipgloss.Style
	TileTitleFocused  *lipgloss.Style
	TileBody          *lipgloss.Style
	TileBodyFocused   *lipgloss.Style

	Header            *lipgloss.Style
	Footer            *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
}

var defaultStyles = Styles{
	TileBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	TileBorderFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	TileTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	TileTitleFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	TileBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	TileBodyFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
