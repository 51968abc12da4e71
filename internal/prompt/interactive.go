package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/scaffold/internal/ui"
)

// Interactive is a Prompter backed by huh forms.
// Each question runs as its own form.
type Interactive struct {
	theme      *huh.Theme
	accessible bool
}

// NewInteractive creates an Interactive prompter styled with theme.
// A nil theme or one with color disabled uses huh's base theme.
func NewInteractive(theme *ui.Theme) *Interactive {
	return &Interactive{theme: newHuhTheme(theme)}
}

// WithAccessible switches the prompter to huh's accessible mode, which
// reads plain lines from stdin instead of drawing a TUI.
func (p *Interactive) WithAccessible(accessible bool) *Interactive {
	p.accessible = accessible
	return p
}

// Input asks for free text.
func (p *Interactive) Input(ctx context.Context, title, def string, required bool) (string, error) {
	var value string

	inp := huh.NewInput().
		Title(title).
		Value(&value).
		Validate(func(val string) error {
			if required && strings.TrimSpace(val) == "" && def == "" {
				return errors.New("an answer is required")
			}
			return nil
		})
	if def != "" {
		inp = inp.Placeholder(def)
	}

	if err := p.run(ctx, inp); err != nil {
		return "", err
	}
	if strings.TrimSpace(value) == "" {
		return def, nil
	}
	return value, nil
}

// Select asks for one of options.
func (p *Interactive) Select(ctx context.Context, title string, options []string, def string) (string, error) {
	selected := def

	sel := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(&selected)

	if err := p.run(ctx, sel); err != nil {
		return "", err
	}
	return selected, nil
}

// Confirm asks a yes/no question.
func (p *Interactive) Confirm(ctx context.Context, title string, def bool) (bool, error) {
	value := def

	confirm := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := p.run(ctx, confirm); err != nil {
		return false, err
	}
	return value, nil
}

// run shows a single-field form, mapping a user abort to ErrCancelled.
func (p *Interactive) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithAccessible(p.accessible)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("prompt error: %w", err)
	}
	return nil
}

// newHuhTheme maps the UI palette onto a huh theme.
func newHuhTheme(theme *ui.Theme) *huh.Theme {
	t := huh.ThemeBase()
	if theme == nil || theme.NoColor {
		return t
	}

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: theme.Colors.Primary}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: theme.Colors.Secondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: theme.Colors.Success}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: theme.Colors.Error}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: theme.Colors.Text}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: theme.Colors.Muted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: theme.Colors.Border}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	return t
}
