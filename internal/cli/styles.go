package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CLI output styles for consistent terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliBorder  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symError() string   { return cliError.Render("✗") }

type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines aligns keys into a column.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p.key))
	}
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		key := cliMuted.Render(p.key + strings.Repeat(" ", width-lipgloss.Width(p.key)))
		lines = append(lines, key+"  "+p.value)
	}
	return strings.Join(lines, "\n")
}

// renderSuccessCard renders a bordered card with a check-marked title.
func renderSuccessCard(title string, details ...string) string {
	body := symSuccess() + " " + title
	if len(details) > 0 {
		body += "\n\n" + strings.Join(details, "\n")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder).
		Padding(0, 1).
		Render(body)
}
