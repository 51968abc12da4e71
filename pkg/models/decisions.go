package models

import (
	"maps"
	"slices"
)

// Question identifies a single prompt whose answer may be pre-supplied.
type Question string

// Built-in question identifiers. Plugins may define additional ones.
const (
	QuestionProjectName       Question = "PROJECT_NAME"
	QuestionDescription       Question = "DESCRIPTION"
	QuestionVisibility        Question = "VISIBILITY"
	QuestionUnlicensed        Question = "UNLICENSED"
	QuestionLicense           Question = "LICENSE"
	QuestionCopyrightYear     Question = "COPYRIGHT_YEAR"
	QuestionCopyrightHolder   Question = "COPYRIGHT_HOLDER"
	QuestionGitRepo           Question = "GIT_REPO"
	QuestionRepoHost          Question = "REPO_HOST"
	QuestionRepoOwner         Question = "REPO_OWNER"
	QuestionProjectType       Question = "PROJECT_TYPE"
	QuestionDependencyUpdater Question = "DEPENDENCY_UPDATER"
)

// Decisions is an immutable lookup of pre-supplied answers.
// The zero value holds no decisions and is ready to use.
type Decisions struct {
	answers map[Question]string
}

// NewDecisions creates a Decisions store from the given answers.
// The input map is copied; later changes to it are not observed.
func NewDecisions(answers map[Question]string) Decisions {
	if len(answers) == 0 {
		return Decisions{}
	}
	copied := make(map[Question]string, len(answers))
	maps.Copy(copied, answers)
	return Decisions{answers: copied}
}

// Lookup returns the pre-supplied answer for q, if any.
func (d Decisions) Lookup(q Question) (string, bool) {
	v, ok := d.answers[q]
	return v, ok
}

// Len returns the number of pre-supplied answers.
func (d Decisions) Len() int {
	return len(d.answers)
}

// Questions returns the decided question ids in sorted order.
func (d Decisions) Questions() []Question {
	return slices.Sorted(maps.Keys(d.answers))
}

// With returns a new Decisions holding d's answers overlaid with extra.
// Neither d nor extra is modified.
func (d Decisions) With(extra map[Question]string) Decisions {
	merged := make(map[Question]string, len(d.answers)+len(extra))
	maps.Copy(merged, d.answers)
	maps.Copy(merged, extra)
	return NewDecisions(merged)
}
