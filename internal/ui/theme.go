// Package ui provides terminal output for the scaffolder: theme colors,
// spinners for long-running phases, informational messages and the
// final next-steps report. Every component degrades to plain text when
// no terminal is attached or color is disabled.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Brand colors shared by every UI component.
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#7C3AED"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#F3F4F6"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)

// Colors holds the palette of a Theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Text      string
	Muted     string
	Border    string
}

// Theme describes how terminal output is styled.
type Theme struct {
	Colors  Colors
	NoColor bool
}

// NewTheme returns the default theme. Color is disabled when the
// NO_COLOR environment variable is set.
func NewTheme() *Theme {
	return &Theme{
		Colors: Colors{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Error:     ColorError,
			Text:      ColorText,
			Muted:     ColorMuted,
			Border:    ColorBorder,
		},
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// Style returns a style with the given foreground color, or a plain
// style when color is disabled.
func (t *Theme) Style(color string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if t.NoColor {
		return s
	}
	return s.Foreground(lipgloss.Color(color))
}
