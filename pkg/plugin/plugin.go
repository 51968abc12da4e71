// Package plugin defines the contracts between the scaffolder and its
// language, VCS host and dependency-updater plugins.
//
// Plugins are plain Go values registered by name in config.Options. The
// func adapters ([VcsHostFuncs], [UpdaterFuncs], [LanguageFunc]) exist for
// callers that assemble plugins from loose functions; they implement
// [Validator] so missing functions are reported at validation time instead
// of panicking mid-run.
package plugin

import (
	"context"

	"github.com/modu-ai/scaffold/pkg/models"
)

// Asker resolves a single answer, consulting decisions before prompting.
// Implementations live in internal/prompt.
type Asker interface {
	// Input asks for free text. def is offered as the default answer.
	Input(ctx context.Context, q models.Question, title, def string) (string, error)

	// Select asks for one of options. def must be one of options or empty.
	Select(ctx context.Context, q models.Question, title string, options []string, def string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, q models.Question, title string, def bool) (bool, error)
}

// Validator is implemented by plugins that can check their own shape.
type Validator interface {
	Validate() error
}

// ProjectContext is handed to the chosen language plugin.
type ProjectContext struct {
	ProjectRoot string
	ProjectName string
	Vcs         *models.VcsContext // nil when version control was declined.
	Visibility  models.Visibility
	License     string // SPDX identifier, or "UNLICENSED".
	Description string
	Decisions   models.Decisions
	Asker       Asker
}

// LanguagePlugin scaffolds a language-specific project skeleton.
type LanguagePlugin interface {
	Scaffold(ctx context.Context, pc ProjectContext) (*models.LanguageResult, error)
}

// HostPromptContext is handed to a VCS host plugin's prompt.
type HostPromptContext struct {
	ProjectName string
	Visibility  models.Visibility
	Decisions   models.Decisions
	Asker       Asker
}

// HostAnswers are the repository coordinates resolved by a host prompt.
type HostAnswers struct {
	Owner string
	Name  string
}

// HostContext is handed to the chosen VCS host plugin's scaffolder.
type HostContext struct {
	models.VcsContext
	ProjectRoot string
	ProjectType string
	Description string
	Visibility  models.Visibility
	Homepage    string
	NextSteps   []models.Task
	Decisions   models.Decisions
	Asker       Asker
}

// VcsHostPlugin registers a project with a hosting service.
type VcsHostPlugin interface {
	Scaffold(ctx context.Context, hc HostContext) (*models.VcsHostResult, error)
	Prompt(ctx context.Context, pc HostPromptContext) (*HostAnswers, error)
}

// VisibilityFilter is implemented by hosts that only support some visibilities.
// Hosts that do not implement it are offered for every visibility.
type VisibilityFilter interface {
	Supports(v models.Visibility) bool
}

// UpdaterContext is handed to the chosen dependency updater.
type UpdaterContext struct {
	ProjectRoot string
	ProjectType string
	Vcs         models.VcsContext
	Decisions   models.Decisions
}

// DependencyUpdater configures automated dependency updates for a project.
type DependencyUpdater interface {
	Scaffold(ctx context.Context, uc UpdaterContext) (*models.UpdaterResult, error)
}
