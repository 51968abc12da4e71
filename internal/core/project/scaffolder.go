package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/modu-ai/scaffold/internal/config"
	"github.com/modu-ai/scaffold/internal/core/git"
	"github.com/modu-ai/scaffold/internal/language"
	"github.com/modu-ai/scaffold/internal/license"
	"github.com/modu-ai/scaffold/internal/readme"
	"github.com/modu-ai/scaffold/internal/shell"
	"github.com/modu-ai/scaffold/internal/template"
	"github.com/modu-ai/scaffold/internal/ui"
	"github.com/modu-ai/scaffold/internal/updater"
	"github.com/modu-ai/scaffold/internal/vcshost"
	"github.com/modu-ai/scaffold/pkg/models"
	"github.com/modu-ai/scaffold/pkg/plugin"
)

// EditorConfigFile is the editor settings file copied into every project.
const EditorConfigFile = ".editorconfig"

// Unlicensed is the license handed to language plugins for projects
// without a license.
const Unlicensed = "UNLICENSED"

// Questioner collects the answers a scaffold run needs.
type Questioner interface {
	BaseDetails(ctx context.Context, projectRoot, copyrightHolder string, decisions models.Decisions) (*models.BaseAnswers, error)
	LanguageDetails(ctx context.Context, languages []string, decisions models.Decisions) (*models.LanguageAnswers, error)
	DependencyUpdater(ctx context.Context, names []string, decisions models.Decisions) (string, error)
	// Asker returns the asker handed to plugins for their own questions.
	Asker(decisions models.Decisions) plugin.Asker
}

// Dependencies are the collaborators of a Scaffolder.
// Progress and Logger are optional; every other field is required.
type Dependencies struct {
	Questioner Questioner
	Vcs        git.Initializer
	Git        git.Scaffolder
	License    license.Scaffolder
	Readme     readme.Writer
	Files      template.FileWriter
	Runner     shell.Runner
	Reporter   ui.Reporter
	Progress   ui.Progress
	Logger     *slog.Logger
}

// Result summarizes a finished scaffold run.
type Result struct {
	ProjectName string
	ProjectRoot string
	Vcs         *models.VcsContext // nil when version control was declined.
	Language    string
	NextSteps   []models.Task
}

// Scaffolder runs a complete scaffold of a new project.
type Scaffolder interface {
	Scaffold(ctx context.Context, opts config.Options) (*Result, error)
}

// projectScaffolder is the concrete implementation of Scaffolder.
type projectScaffolder struct {
	root   string
	deps   Dependencies
	logger *slog.Logger
}

// NewScaffolder creates a Scaffolder generating into root. An empty root
// means the current working directory, resolved when Scaffold runs.
func NewScaffolder(root string, deps Dependencies) Scaffolder {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectScaffolder{root: root, deps: deps, logger: logger}
}

// @MX:ANCHOR: [AUTO] Scaffold is the single entry point of a scaffold run.
// @MX:REASON: [AUTO] fan_in=3, called from the new command, library callers and tests
// Scaffold validates opts, then runs every phase in order. Any failure
// aborts the run with a *StepError naming the phase; validation failures
// are returned as the config package reports them.
func (s *projectScaffolder) Scaffold(ctx context.Context, opts config.Options) (*Result, error) {
	// Step 1: Validate before any side effect.
	validated, err := config.Validate(opts)
	if err != nil {
		return nil, err
	}
	if err := s.checkDependencies(); err != nil {
		return nil, err
	}

	root, err := s.projectRoot()
	if err != nil {
		return nil, err
	}
	decisions := validated.Decisions
	asker := s.deps.Questioner.Asker(decisions)

	s.logger.Info("scaffolding project", "root", root)

	// Step 2: Base answers.
	base, err := s.deps.Questioner.BaseDetails(ctx, root, validated.Overrides.CopyrightHolder, decisions)
	if err != nil {
		return nil, stepError(StepBaseDetails, err)
	}

	// Step 3: Version control. A nil context means it was declined.
	vcs, err := s.deps.Vcs.Initialize(ctx, git.InitOptions{
		GitRepo:     base.GitRepo,
		ProjectRoot: root,
		ProjectName: base.ProjectName,
		Visibility:  base.Visibility,
		Hosts:       validated.VcsHosts,
		Decisions:   decisions,
		Asker:       asker,
	})
	if err != nil {
		return nil, stepError(StepVcsInit, err)
	}

	// Step 4: Language answers.
	langAnswers, err := s.deps.Questioner.LanguageDetails(ctx, slices.Sorted(maps.Keys(validated.Languages)), decisions)
	if err != nil {
		return nil, stepError(StepLanguageDetails, err)
	}
	s.logger.Info("project details resolved",
		"project", base.ProjectName, "language", langAnswers.Language, "vcs", vcs != nil)

	// Step 5: License and language scaffolding run concurrently.
	lic, lang, err := s.scaffoldLicenseAndLanguage(ctx, root, base, vcs, langAnswers.Language, validated.Languages, decisions, asker)
	if err != nil {
		return nil, err
	}

	// Step 6: Tasks contributed by the collaborators, in run order.
	var contributed []models.Task
	if lang != nil {
		contributed = append(contributed, lang.NextSteps...)
	}

	// Step 7: Host registration needs a local repository.
	var host *models.VcsHostResult
	var upd *models.UpdaterResult
	if vcs != nil {
		host, err = vcshost.Scaffold(ctx, validated.VcsHosts, plugin.HostContext{
			VcsContext:  *vcs,
			ProjectRoot: root,
			ProjectType: langAnswers.Language,
			Description: base.Description,
			Visibility:  base.Visibility,
			Homepage:    lang.Homepage(),
			NextSteps:   slices.Clone(contributed),
			Decisions:   decisions,
			Asker:       asker,
		})
		if err != nil {
			return nil, stepError(StepVcsHost, err)
		}
		if host != nil {
			contributed = append(contributed, host.NextSteps...)
		}

		// Step 7b: Dependency updates.
		upd, err = s.scaffoldUpdater(ctx, root, *vcs, langAnswers.Language, validated.DependencyUpdaters, decisions)
		if err != nil {
			return nil, err
		}
		if upd != nil {
			contributed = append(contributed, upd.NextSteps...)
		}
	}

	// Step 8: README and editor settings run concurrently.
	if err := s.writeDocuments(ctx, root, base, lang, lic, upd); err != nil {
		return nil, err
	}

	// Step 9: Git files and remote.
	var gitSteps []models.Task
	if base.GitRepo {
		gitSteps, err = s.scaffoldGit(ctx, root, lang, host)
		if err != nil {
			return nil, stepError(StepGit, err)
		}
	}

	// Step 10: Verification.
	if lang != nil && lang.VerificationCommand != "" {
		s.deps.Reporter.Info("Verifying the generated project")
		s.logger.Info("running verification", "command", lang.VerificationCommand)
		if err := s.deps.Runner.Run(ctx, root, lang.VerificationCommand); err != nil {
			return nil, stepError(StepVerify, fmt.Errorf("%w: %w", ErrVerificationFailed, err))
		}
	}

	// Step 11: Report.
	nextSteps := slices.Concat(gitSteps, contributed)
	if err := s.deps.Reporter.NextSteps(nextSteps); err != nil {
		return nil, stepError(StepReport, err)
	}

	s.logger.Info("project scaffolded", "project", base.ProjectName, "steps", len(nextSteps))
	return &Result{
		ProjectName: base.ProjectName,
		ProjectRoot: root,
		Vcs:         vcs,
		Language:    langAnswers.Language,
		NextSteps:   nextSteps,
	}, nil
}

func (s *projectScaffolder) scaffoldLicenseAndLanguage(
	ctx context.Context,
	root string,
	base *models.BaseAnswers,
	vcs *models.VcsContext,
	chosen string,
	languages map[string]plugin.LanguagePlugin,
	decisions models.Decisions,
	asker plugin.Asker,
) (*models.LicenseResult, *models.LanguageResult, error) {
	var lic *models.LicenseResult
	var lang *models.LanguageResult

	projectLicense := base.License
	if projectLicense == "" {
		projectLicense = Unlicensed
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lic, err = s.deps.License.Scaffold(gctx, license.Options{
			ProjectRoot: root,
			License:     base.License,
			Copyright:   base.Copyright(),
			Vcs:         vcs,
		})
		return stepError(StepLicense, err)
	})
	g.Go(func() error {
		var err error
		lang, err = language.Scaffold(gctx, languages, chosen, plugin.ProjectContext{
			ProjectRoot: root,
			ProjectName: base.ProjectName,
			Vcs:         vcs,
			Visibility:  base.Visibility,
			License:     projectLicense,
			Description: base.Description,
			Decisions:   decisions,
			Asker:       asker,
		})
		return stepError(StepLanguage, err)
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return lic, lang, nil
}

func (s *projectScaffolder) scaffoldUpdater(
	ctx context.Context,
	root string,
	vcs models.VcsContext,
	projectType string,
	updaters map[string]plugin.DependencyUpdater,
	decisions models.Decisions,
) (*models.UpdaterResult, error) {
	if len(updaters) == 0 {
		return nil, nil
	}

	chosen, err := s.deps.Questioner.DependencyUpdater(ctx, slices.Collect(maps.Keys(updaters)), decisions)
	if err != nil {
		return nil, stepError(StepDependencyUpdater, err)
	}
	s.logger.Debug("dependency updater chosen", "updater", chosen)

	result, err := updater.Scaffold(ctx, updaters, chosen, plugin.UpdaterContext{
		ProjectRoot: root,
		ProjectType: projectType,
		Vcs:         vcs,
		Decisions:   decisions,
	})
	if err != nil {
		return nil, stepError(StepDependencyUpdater, err)
	}
	return result, nil
}

func (s *projectScaffolder) writeDocuments(
	ctx context.Context,
	root string,
	base *models.BaseAnswers,
	lang *models.LanguageResult,
	lic *models.LicenseResult,
	upd *models.UpdaterResult,
) error {
	in := readme.Input{
		ProjectName: base.ProjectName,
		Description: base.Description,
		Visibility:  base.Visibility,
	}
	if lang != nil {
		in.Documentation = lang.Documentation
		in.Contributed = append(in.Contributed, lang.Badges)
	}
	if upd != nil {
		in.Contributed = append(in.Contributed, upd.Badges)
	}
	if lic != nil {
		in.LicenseBadge = lic.Badges.Consumer
	}

	spin := s.spinner("Writing project documents")
	defer spin.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return stepError(StepReadme, s.deps.Readme.Write(gctx, root, in))
	})
	g.Go(func() error {
		return stepError(StepEditorConfig, s.deps.Files.Copy(gctx, root, template.EditorConfig, EditorConfigFile))
	})
	return g.Wait()
}

func (s *projectScaffolder) scaffoldGit(ctx context.Context, root string, lang *models.LanguageResult, host *models.VcsHostResult) ([]models.Task, error) {
	opts := git.ScaffoldOptions{ProjectRoot: root}
	if lang != nil {
		opts.Ignore = lang.VcsIgnore
	}
	if host != nil {
		opts.Origin = host.Origin
	}

	spin := s.spinner("Configuring the git repository")
	defer spin.Stop()

	result, err := s.deps.Git.Scaffold(ctx, opts)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return result.NextSteps, nil
}

func (s *projectScaffolder) spinner(title string) ui.Spinner {
	if s.deps.Progress == nil {
		return noopSpinner{}
	}
	return s.deps.Progress.Spinner(title)
}

func (s *projectScaffolder) projectRoot() (string, error) {
	if s.root != "" {
		return filepath.Abs(s.root)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return wd, nil
}

func (s *projectScaffolder) checkDependencies() error {
	d := s.deps
	missing := []struct {
		name   string
		absent bool
	}{
		{"Questioner", d.Questioner == nil},
		{"Vcs", d.Vcs == nil},
		{"Git", d.Git == nil},
		{"License", d.License == nil},
		{"Readme", d.Readme == nil},
		{"Files", d.Files == nil},
		{"Runner", d.Runner == nil},
		{"Reporter", d.Reporter == nil},
	}
	for _, m := range missing {
		if m.absent {
			return fmt.Errorf("%w: %s", ErrMissingDependency, m.name)
		}
	}
	return nil
}

type noopSpinner struct{}

func (noopSpinner) SetTitle(string) {}
func (noopSpinner) Stop()           {}
