// Package prompt resolves the answers a scaffolding run needs.
//
// Every question is identified by a models.Question. A pre-supplied
// decision for that question always wins; only undecided questions reach
// a Prompter, which either asks the user through huh forms or, when no
// terminal is available, falls back to the question's default.
package prompt

import "errors"

var (
	// ErrCancelled is returned when the user aborts a prompt.
	ErrCancelled = errors.New("scaffolding cancelled by user")

	// ErrAnswerRequired is returned when a question has no decision and
	// no usable default in headless mode, or a required answer is empty.
	ErrAnswerRequired = errors.New("answer required")

	// ErrInvalidAnswer is returned when a decision is not an acceptable
	// answer for its question.
	ErrInvalidAnswer = errors.New("invalid answer")
)
