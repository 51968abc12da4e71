package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/modu-ai/scaffold/internal/template"
	"github.com/modu-ai/scaffold/pkg/models"
)

// Files written by the Scaffolder, relative to the project root.
const (
	GitignoreFile     = ".gitignore"
	GitattributesFile = ".gitattributes"
)

// RemoteName is the remote added for the hosted repository.
const RemoteName = "origin"

// ScaffoldOptions holds the inputs of Scaffolder.Scaffold.
type ScaffoldOptions struct {
	ProjectRoot string
	Ignore      *models.VcsIgnore // nil when the language contributed none.
	Origin      *models.Origin    // nil when no host created a repository.
}

// Scaffolder writes git configuration into a project.
type Scaffolder interface {
	Scaffold(ctx context.Context, opts ScaffoldOptions) (*models.GitResult, error)
}

// scaffolder is the concrete implementation of Scaffolder.
type scaffolder struct {
	files  template.FileWriter
	logger *slog.Logger
}

// NewScaffolder creates a Scaffolder copying templates through files.
// A nil logger discards output.
func NewScaffolder(files template.FileWriter, logger *slog.Logger) Scaffolder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &scaffolder{files: files, logger: logger}
}

// Scaffold writes .gitignore and .gitattributes and, when an origin is
// known, registers it as the "origin" remote.
func (s *scaffolder) Scaffold(ctx context.Context, opts ScaffoldOptions) (*models.GitResult, error) {
	if err := writeGitignore(opts.ProjectRoot, opts.Ignore); err != nil {
		return nil, err
	}
	if err := s.files.Copy(ctx, opts.ProjectRoot, template.GitAttributes, GitattributesFile); err != nil {
		return nil, fmt.Errorf("write %s: %w", GitattributesFile, err)
	}

	result := &models.GitResult{
		NextSteps: []models.Task{{Summary: "Commit scaffolded files"}},
	}

	if opts.Origin != nil && opts.Origin.SSHURL != "" {
		if err := s.addRemote(ctx, opts.ProjectRoot, opts.Origin.SSHURL); err != nil {
			return nil, err
		}
		result.NextSteps = append(result.NextSteps, models.Task{
			Summary: "Set local `main` branch to track upstream `origin/main`",
		})
	}

	s.logger.Debug("git files scaffolded", "dir", opts.ProjectRoot, "origin", opts.Origin != nil)
	return result, nil
}

// addRemote registers url as the origin remote. An existing origin is
// left untouched.
func (s *scaffolder) addRemote(ctx context.Context, dir, url string) error {
	existing, err := remotes(ctx, dir)
	if err != nil {
		return fmt.Errorf("list remotes: %w", err)
	}
	if slices.Contains(existing, RemoteName) {
		s.logger.Info("remote already configured", "remote", RemoteName)
		return nil
	}
	if _, err := execGit(ctx, dir, "remote", "add", RemoteName, url); err != nil {
		return fmt.Errorf("add remote %s: %w", RemoteName, err)
	}
	return nil
}

// writeGitignore writes directories first, then files. Entries already in
// an existing .gitignore are not repeated. Nothing is written when there
// is nothing to ignore.
func writeGitignore(projectRoot string, ignore *models.VcsIgnore) error {
	if ignore == nil || (len(ignore.Directories) == 0 && len(ignore.Files) == 0) {
		return nil
	}

	path := filepath.Join(projectRoot, GitignoreFile)
	content, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read %s: %w", GitignoreFile, err)
	}

	present := make(map[string]bool)
	for line := range strings.SplitSeq(string(content), "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var sections []string
	for _, entries := range [][]string{ignore.Directories, ignore.Files} {
		var missing []string
		for _, e := range entries {
			if e != "" && !present[e] {
				missing = append(missing, e)
				present[e] = true
			}
		}
		if len(missing) > 0 {
			sections = append(sections, strings.Join(missing, "\n")+"\n")
		}
	}
	if len(sections) == 0 {
		return nil
	}

	out := string(content)
	if out != "" {
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		out += "\n"
	}
	out += strings.Join(sections, "\n")

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", GitignoreFile, err)
	}
	return nil
}
