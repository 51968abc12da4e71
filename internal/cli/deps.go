// Package cli provides the Cobra command tree and dependency injection
// wiring for the scaffold CLI. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/modu-ai/scaffold/internal/config"
	"github.com/modu-ai/scaffold/internal/core/git"
	"github.com/modu-ai/scaffold/internal/core/project"
	"github.com/modu-ai/scaffold/internal/language/golang"
	"github.com/modu-ai/scaffold/internal/license"
	"github.com/modu-ai/scaffold/internal/prompt"
	"github.com/modu-ai/scaffold/internal/readme"
	"github.com/modu-ai/scaffold/internal/shell"
	"github.com/modu-ai/scaffold/internal/template"
	"github.com/modu-ai/scaffold/internal/ui"
	"github.com/modu-ai/scaffold/internal/updater/dependabot"
	"github.com/modu-ai/scaffold/internal/vcshost/github"
	"github.com/modu-ai/scaffold/pkg/models"
	"github.com/modu-ai/scaffold/pkg/plugin"
)

// Dependencies holds the services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Theme     *ui.Theme
	Headless  *ui.HeadlessManager
	Templates fs.FS
	Licenses  []string
	Files     template.FileWriter
	Prompter  prompt.Prompter
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
}

// @MX:ANCHOR: [AUTO] NewDependencies is the Composition Root that wires all domain modules
// @MX:REASON: [AUTO] fan_in=3, called from new.go, deps_test.go and new_test.go
// NewDependencies loads the embedded templates and picks the prompter:
// interactive on a terminal, headless otherwise or when hm forces it.
func NewDependencies(hm *ui.HeadlessManager, logger *slog.Logger) (*Dependencies, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		return nil, err
	}
	licenses, err := template.Licenses(fsys)
	if err != nil {
		return nil, err
	}

	theme := ui.NewTheme()
	var prompter prompt.Prompter = prompt.Headless{}
	if !hm.IsHeadless() {
		prompter = prompt.NewInteractive(theme).WithAccessible(os.Getenv("ACCESSIBLE") != "")
	}

	return &Dependencies{
		Theme:     theme,
		Headless:  hm,
		Templates: fsys,
		Licenses:  licenses,
		Files:     template.NewFileWriter(fsys),
		Prompter:  prompter,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Logger:    logger,
	}, nil
}

// Scaffolder wires the orchestrator for a project generated into root.
func (d *Dependencies) Scaffolder(root string) project.Scaffolder {
	return project.NewScaffolder(root, project.Dependencies{
		Questioner: prompt.NewQuestioner(d.Prompter, d.Licenses, d.Logger),
		Vcs:        git.NewInitializer(d.Logger),
		Git:        git.NewScaffolder(d.Files, d.Logger),
		License:    license.NewScaffolder(d.Templates, d.Files, d.Logger),
		Readme:     readme.NewWriter(d.Logger),
		Files:      d.Files,
		Runner:     shell.NewRunner(d.Stdout, d.Stderr, d.Logger),
		Reporter:   ui.NewReporter(d.Theme, d.Headless),
		Progress:   ui.NewProgress(d.Theme, d.Headless),
		Logger:     d.Logger,
	})
}

// Options registers the built-in plugins and applies the file
// configuration, with decisions overlaid on the file's decisions.
func (d *Dependencies) Options(file *config.FileConfig, decisions map[models.Question]string) config.Options {
	opts := config.Options{
		Languages: map[string]plugin.LanguagePlugin{
			golang.Name: golang.New(d.Files, d.Logger),
		},
		VcsHosts: map[string]plugin.VcsHostPlugin{
			github.Name: github.New(d.Logger),
		},
		DependencyUpdaters: map[string]plugin.DependencyUpdater{
			dependabot.Name: dependabot.New(d.Logger),
		},
		Decisions: models.NewDecisions(file.DecisionMap()).With(decisions),
	}
	if file != nil {
		opts.Overrides = file.Overrides
	}
	return opts
}

// newLogger returns a stderr text logger when verbose, otherwise a
// logger that discards everything.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// loadFileConfig reads path, or returns an empty configuration when
// path is empty.
func loadFileConfig(path string) (*config.FileConfig, error) {
	if path == "" {
		return &config.FileConfig{}, nil
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
