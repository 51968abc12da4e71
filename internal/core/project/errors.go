// Package project orchestrates a scaffold run: it collects the user's
// decisions, fans work out to the license, language, VCS and dependency
// updater collaborators, writes the README and reports the follow-up tasks.
package project

import (
	"errors"
	"fmt"
)

// ErrVerificationFailed indicates the language's verification command
// exited unsuccessfully. The shell error is wrapped alongside it.
var ErrVerificationFailed = errors.New("verification failed")

// ErrMissingDependency indicates a required collaborator was not supplied.
var ErrMissingDependency = errors.New("missing scaffolder dependency")

// Step names a phase of a scaffold run.
type Step string

// Phases of a scaffold run, in execution order.
const (
	StepBaseDetails       Step = "base-details"
	StepVcsInit           Step = "vcs-init"
	StepLanguageDetails   Step = "language-details"
	StepLicense           Step = "license"
	StepLanguage          Step = "language"
	StepVcsHost           Step = "vcs-host"
	StepDependencyUpdater Step = "dependency-updater"
	StepReadme            Step = "readme"
	StepEditorConfig      Step = "editorconfig"
	StepGit               Step = "git"
	StepVerify            Step = "verify"
	StepReport            Step = "report"
)

// StepError records which phase of a run failed. The run aborts at the
// first failing step; nothing is retried or rolled back.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func stepError(step Step, err error) error {
	if err == nil {
		return nil
	}
	var se *StepError
	if errors.As(err, &se) {
		return err
	}
	return &StepError{Step: step, Err: err}
}
