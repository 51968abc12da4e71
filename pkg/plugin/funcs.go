package plugin

import (
	"context"
	"errors"

	"github.com/modu-ai/scaffold/pkg/models"
)

// Sentinel errors reported by the func adapters.
var (
	// ErrMissingScaffolder indicates a plugin has no scaffold function.
	ErrMissingScaffolder = errors.New("scaffolder is required")

	// ErrMissingPrompt indicates a VCS host has no prompt function.
	ErrMissingPrompt = errors.New("prompt is required")
)

// Compile-time interface compliance checks.
var (
	_ LanguagePlugin    = LanguageFunc(nil)
	_ VcsHostPlugin     = (*VcsHostFuncs)(nil)
	_ DependencyUpdater = (*UpdaterFuncs)(nil)
)

// LanguageFunc adapts a function to LanguagePlugin.
type LanguageFunc func(ctx context.Context, pc ProjectContext) (*models.LanguageResult, error)

// Scaffold calls f.
func (f LanguageFunc) Scaffold(ctx context.Context, pc ProjectContext) (*models.LanguageResult, error) {
	return f(ctx, pc)
}

// Validate reports a nil function.
func (f LanguageFunc) Validate() error {
	if f == nil {
		return ErrMissingScaffolder
	}
	return nil
}

// VcsHostFuncs adapts a pair of functions to VcsHostPlugin.
type VcsHostFuncs struct {
	ScaffoldFunc func(ctx context.Context, hc HostContext) (*models.VcsHostResult, error)
	PromptFunc   func(ctx context.Context, pc HostPromptContext) (*HostAnswers, error)

	// Public and Private restrict the visibilities the host is offered for.
	// Both false means no restriction.
	Public  bool
	Private bool
}

// Scaffold calls ScaffoldFunc.
func (h *VcsHostFuncs) Scaffold(ctx context.Context, hc HostContext) (*models.VcsHostResult, error) {
	return h.ScaffoldFunc(ctx, hc)
}

// Prompt calls PromptFunc.
func (h *VcsHostFuncs) Prompt(ctx context.Context, pc HostPromptContext) (*HostAnswers, error) {
	return h.PromptFunc(ctx, pc)
}

// Supports reports whether the host accepts projects of visibility v.
func (h *VcsHostFuncs) Supports(v models.Visibility) bool {
	if !h.Public && !h.Private {
		return true
	}
	switch v {
	case models.VisibilityPublic:
		return h.Public
	case models.VisibilityPrivate:
		return h.Private
	}
	return false
}

// Validate reports missing functions.
func (h *VcsHostFuncs) Validate() error {
	if h == nil {
		return errors.Join(ErrMissingScaffolder, ErrMissingPrompt)
	}
	var errs []error
	if h.ScaffoldFunc == nil {
		errs = append(errs, ErrMissingScaffolder)
	}
	if h.PromptFunc == nil {
		errs = append(errs, ErrMissingPrompt)
	}
	return errors.Join(errs...)
}

// UpdaterFuncs adapts a function to DependencyUpdater.
type UpdaterFuncs struct {
	ScaffoldFunc func(ctx context.Context, uc UpdaterContext) (*models.UpdaterResult, error)
}

// Scaffold calls ScaffoldFunc.
func (u *UpdaterFuncs) Scaffold(ctx context.Context, uc UpdaterContext) (*models.UpdaterResult, error) {
	return u.ScaffoldFunc(ctx, uc)
}

// Validate reports a missing function.
func (u *UpdaterFuncs) Validate() error {
	if u == nil || u.ScaffoldFunc == nil {
		return ErrMissingScaffolder
	}
	return nil
}
