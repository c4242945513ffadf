// Package styles builds the lipgloss styles boardctl renders with
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/boardstore/internal/config"
	"github.com/thenoetrevino/boardstore/internal/models"
)

// CardWidth is the width of the bordered card detail view
const CardWidth = 80

// Styles is the set of styles derived from one theme
type Styles struct {
	// Tree levels
	Workspace lipgloss.Style
	Board     lipgloss.Style
	List      lipgloss.Style
	Card      lipgloss.Style
	Enum      lipgloss.Style // Tree branches

	// Text styles
	Title   lipgloss.Style
	Subtle  lipgloss.Style
	Label   lipgloss.Style // For field labels like "List:", "Assigned:"
	Section lipgloss.Style // For section headers like "Description", "Todos"

	// Status styles
	Success lipgloss.Style
	Error   lipgloss.Style

	// Detail card border
	Frame lipgloss.Style

	theme config.Theme
}

// New builds the styles for theme
func New(theme config.Theme) *Styles {
	theme.ApplyDefaults()
	return &Styles{
		Workspace: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent)),
		Board:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Board)),
		List:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.List)),
		Card:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Card)),
		Enum:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).MarginRight(1),

		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent)),
		Subtle:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)),
		Label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent)),
		Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent)).MarginTop(1),

		Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.List)),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Error)),

		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Accent)).
			Padding(1, 2).
			Width(CardWidth),

		theme: theme,
	}
}

// Theme returns the theme the styles were built from
func (s *Styles) Theme() config.Theme {
	return s.theme
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// TagChip renders a tag as "[name]" in the tag's color
func (s *Styles) TagChip(tag models.Tag) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(tag.Color)).
		Bold(true).
		Render("[" + tag.Name + "]")
}

// Checkbox renders a todo state marker
func (s *Styles) Checkbox(done bool) string {
	if done {
		return s.Success.Render("[x]")
	}
	return s.Subtle.Render("[ ]")
}

// RenderCard wraps content in a styled card border
func (s *Styles) RenderCard(content string) string {
	return s.Frame.Render(content)
}
