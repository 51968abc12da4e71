package prompt

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/modu-ai/scaffold/pkg/models"
	"github.com/modu-ai/scaffold/pkg/plugin"
)

var _ plugin.Asker = (*DecisionAsker)(nil)

// DecisionAsker answers questions from decisions first and falls back to
// a Prompter for the rest.
type DecisionAsker struct {
	decisions models.Decisions
	prompter  Prompter
	logger    *slog.Logger
}

// NewDecisionAsker creates a DecisionAsker. A nil logger discards output.
func NewDecisionAsker(decisions models.Decisions, prompter Prompter, logger *slog.Logger) *DecisionAsker {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &DecisionAsker{decisions: decisions, prompter: prompter, logger: logger}
}

// Input resolves a free-text answer. The answer is trimmed and
// NFC-normalized.
func (a *DecisionAsker) Input(ctx context.Context, q models.Question, title, def string) (string, error) {
	return a.input(ctx, q, title, def, false)
}

func (a *DecisionAsker) input(ctx context.Context, q models.Question, title, def string, required bool) (string, error) {
	if v, ok := a.decisions.Lookup(q); ok {
		a.logger.Debug("answer from decisions", "question", q)
		v = normalize(v)
		if required && v == "" {
			return "", fmt.Errorf("%w: %s", ErrAnswerRequired, q)
		}
		return v, nil
	}

	v, err := a.prompter.Input(ctx, title, def, required)
	if err != nil {
		return "", fmt.Errorf("ask %s: %w", q, err)
	}
	v = normalize(v)
	if required && v == "" {
		return "", fmt.Errorf("%w: %s", ErrAnswerRequired, q)
	}
	return v, nil
}

// Select resolves one of options. A decision outside options is rejected
// with ErrInvalidAnswer.
func (a *DecisionAsker) Select(ctx context.Context, q models.Question, title string, options []string, def string) (string, error) {
	if v, ok := a.decisions.Lookup(q); ok {
		a.logger.Debug("answer from decisions", "question", q)
		if !slices.Contains(options, v) {
			return "", fmt.Errorf("%w: %s=%q, want one of %s", ErrInvalidAnswer, q, v, strings.Join(options, ", "))
		}
		return v, nil
	}

	v, err := a.prompter.Select(ctx, title, options, def)
	if err != nil {
		return "", fmt.Errorf("ask %s: %w", q, err)
	}
	return v, nil
}

// Confirm resolves a yes/no answer. Decisions accept the forms of
// strconv.ParseBool as well as yes/no and y/n.
func (a *DecisionAsker) Confirm(ctx context.Context, q models.Question, title string, def bool) (bool, error) {
	if v, ok := a.decisions.Lookup(q); ok {
		a.logger.Debug("answer from decisions", "question", q)
		b, err := parseBool(v)
		if err != nil {
			return false, fmt.Errorf("%w: %s=%q is not a yes/no answer", ErrInvalidAnswer, q, v)
		}
		return b, nil
	}

	v, err := a.prompter.Confirm(ctx, title, def)
	if err != nil {
		return false, fmt.Errorf("ask %s: %w", q, err)
	}
	return v, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(s))
}

// normalize trims s and converts it to Unicode NFC so that names typed
// on different platforms compare equal.
func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
