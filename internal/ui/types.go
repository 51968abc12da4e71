package ui

import "github.com/modu-ai/scaffold/pkg/models"

// Spinner is an indeterminate progress indicator for a running phase.
type Spinner interface {
	// SetTitle replaces the text shown next to the spinner.
	SetTitle(title string)
	// Stop halts the spinner. It is safe to call more than once.
	Stop()
}

// Progress creates spinners.
type Progress interface {
	Spinner(title string) Spinner
}

// Reporter prints user-facing messages during and after a run.
type Reporter interface {
	// Info prints a single informational line.
	Info(msg string)
	// NextSteps prints the follow-up tasks of a finished run.
	NextSteps(tasks []models.Task) error
}
