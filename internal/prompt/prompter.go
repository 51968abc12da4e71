package prompt

import (
	"context"
	"fmt"
)

// Prompter asks a single question. It is never consulted for questions
// that already have a decision.
type Prompter interface {
	// Input asks for free text. An empty reply yields def. When required
	// is set, an empty result is not accepted.
	Input(ctx context.Context, title, def string, required bool) (string, error)

	// Select asks for one of options, preselecting def.
	Select(ctx context.Context, title string, options []string, def string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, title string, def bool) (bool, error)
}

// Headless is a Prompter for runs without a terminal. It answers every
// question with its default.
type Headless struct{}

// Input returns def, or ErrAnswerRequired when def is empty and an
// answer is required.
func (Headless) Input(ctx context.Context, title, def string, required bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if required && def == "" {
		return "", fmt.Errorf("%w: %s", ErrAnswerRequired, title)
	}
	return def, nil
}

// Select returns def, or ErrAnswerRequired when there is no default.
func (Headless) Select(ctx context.Context, title string, _ []string, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if def == "" {
		return "", fmt.Errorf("%w: %s", ErrAnswerRequired, title)
	}
	return def, nil
}

// Confirm returns def.
func (Headless) Confirm(ctx context.Context, _ string, def bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return def, nil
}
