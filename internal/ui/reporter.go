package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/modu-ai/scaffold/pkg/models"
)

// nextStepsWrap is the word-wrap width of the rendered next-steps report.
const nextStepsWrap = 80

// reporterImpl implements the Reporter interface.
type reporterImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewReporter creates a Reporter writing to os.Stdout.
func NewReporter(theme *Theme, hm *HeadlessManager) Reporter {
	return newReporterImpl(theme, hm, os.Stdout)
}

// newReporterImpl creates a reporterImpl with a custom writer (for testing).
func newReporterImpl(theme *Theme, hm *HeadlessManager, w io.Writer) *reporterImpl {
	return &reporterImpl{theme: theme, headless: hm, writer: w}
}

// Info prints msg prefixed with an info marker.
func (r *reporterImpl) Info(msg string) {
	marker := r.theme.Style(r.theme.Colors.Secondary).Render("ℹ")
	_, _ = fmt.Fprintf(r.writer, "%s %s\n", marker, msg)
}

// NextSteps prints tasks as a markdown list. On a color terminal the
// markdown is rendered with glamour; otherwise it is printed as is.
// Nothing is printed when there are no tasks.
func (r *reporterImpl) NextSteps(tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	md := NextStepsMarkdown(tasks)
	if r.headless.IsHeadless() || r.theme.NoColor {
		_, err := io.WriteString(r.writer, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(nextStepsWrap),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render next steps: %w", err)
	}
	_, err = io.WriteString(r.writer, out)
	return err
}

// NextStepsMarkdown formats tasks as a "Next Steps" markdown section.
func NextStepsMarkdown(tasks []models.Task) string {
	var b strings.Builder
	b.WriteString("## Next Steps\n\n")
	for _, t := range tasks {
		b.WriteString("- ")
		b.WriteString(t.Summary)
		if t.Description != "" {
			b.WriteString(": ")
			b.WriteString(t.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}
