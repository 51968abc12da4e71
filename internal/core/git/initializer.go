package git

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/modu-ai/scaffold/pkg/models"
	"github.com/modu-ai/scaffold/pkg/plugin"
)

// OtherHost is offered alongside the registered hosts for repositories
// hosted elsewhere.
const OtherHost = "Other"

// InitOptions holds the inputs of Initializer.Initialize.
type InitOptions struct {
	GitRepo     bool // false skips version control entirely.
	ProjectRoot string
	ProjectName string
	Visibility  models.Visibility
	Hosts       map[string]plugin.VcsHostPlugin
	Decisions   models.Decisions
	Asker       plugin.Asker
}

// Initializer sets up version control for a new project.
type Initializer interface {
	// Initialize returns nil when version control was declined.
	Initialize(ctx context.Context, opts InitOptions) (*models.VcsContext, error)
}

// initializer is the git implementation of Initializer.
type initializer struct {
	logger *slog.Logger
}

// NewInitializer creates an Initializer. A nil logger discards output.
func NewInitializer(logger *slog.Logger) Initializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &initializer{logger: logger}
}

// Initialize runs "git init" unless ProjectRoot already is a repository,
// then resolves where the repository will be hosted. Hosts whose
// VisibilityFilter rejects the project's visibility are not offered.
func (i *initializer) Initialize(ctx context.Context, opts InitOptions) (*models.VcsContext, error) {
	if !opts.GitRepo {
		i.logger.Debug("version control declined")
		return nil, nil
	}

	if isRepository(ctx, opts.ProjectRoot) {
		i.logger.Info("git repository already initialized", "dir", opts.ProjectRoot)
	} else {
		if _, err := execGit(ctx, opts.ProjectRoot, "init"); err != nil {
			return nil, fmt.Errorf("initialize repository: %w", err)
		}
		if _, err := execGit(ctx, opts.ProjectRoot, "symbolic-ref", "HEAD", "refs/heads/main"); err != nil {
			return nil, fmt.Errorf("set default branch: %w", err)
		}
		i.logger.Info("git repository initialized", "dir", opts.ProjectRoot)
	}

	options := append(availableHosts(opts.Hosts, opts.Visibility), OtherHost)
	host, err := opts.Asker.Select(ctx, models.QuestionRepoHost, "Where will the repository be hosted?", options, options[0])
	if err != nil {
		return nil, err
	}

	vcs := &models.VcsContext{Host: host}
	if p, ok := opts.Hosts[host]; ok && host != OtherHost {
		answers, err := p.Prompt(ctx, plugin.HostPromptContext{
			ProjectName: opts.ProjectName,
			Visibility:  opts.Visibility,
			Decisions:   opts.Decisions,
			Asker:       opts.Asker,
		})
		if err != nil {
			return nil, fmt.Errorf("%s prompt: %w", host, err)
		}
		vcs.Owner, vcs.Name = answers.Owner, answers.Name
	} else {
		owner, err := opts.Asker.Input(ctx, models.QuestionRepoOwner, "What is the id of the repository owner?", "")
		if err != nil {
			return nil, err
		}
		vcs.Owner, vcs.Name = owner, opts.ProjectName
	}

	if vcs.Owner == "" {
		return nil, fmt.Errorf("%w: host %s", ErrOwnerRequired, host)
	}
	if vcs.Name == "" {
		vcs.Name = opts.ProjectName
	}

	i.logger.Debug("vcs context resolved", "host", vcs.Host, "owner", vcs.Owner, "name", vcs.Name)
	return vcs, nil
}

// availableHosts returns the sorted names of hosts that accept visibility.
func availableHosts(hosts map[string]plugin.VcsHostPlugin, visibility models.Visibility) []string {
	var names []string
	for _, name := range slices.Sorted(maps.Keys(hosts)) {
		if f, ok := hosts[name].(plugin.VisibilityFilter); ok && !f.Supports(visibility) {
			continue
		}
		names = append(names, name)
	}
	return names
}
