// Package github is the built-in VCS host plugin for GitHub. It talks to
// GitHub through the gh CLI.
package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"

	"github.com/modu-ai/scaffold/pkg/models"
	"github.com/modu-ai/scaffold/pkg/plugin"
)

// Name is the key the plugin is registered under.
const Name = "github"

// QuestionCreateRepo asks whether the repository should be created on
// GitHub during scaffolding.
const QuestionCreateRepo models.Question = "GITHUB_CREATE_REPO"

var (
	// ErrGHNotFound indicates the gh CLI is not installed or not on PATH.
	ErrGHNotFound = errors.New("gh CLI not found")

	// ErrGHNotAuthenticated indicates gh has no logged-in account.
	ErrGHNotAuthenticated = errors.New("gh CLI not authenticated")

	// ErrOwnerRequired indicates no repository owner was given.
	ErrOwnerRequired = errors.New("github repository owner required")
)

// ghBin caches the resolved gh binary path to avoid repeated exec.LookPath calls.
var (
	ghBinOnce sync.Once
	ghBinPath string
	ghBinErr  error
)

// execFunc is the function signature for executing gh CLI commands.
// Used for dependency injection in tests.
type execFunc func(ctx context.Context, dir string, args ...string) (string, error)

var _ plugin.VcsHostPlugin = (*Host)(nil)

// Host is the GitHub VCS host plugin.
type Host struct {
	logger *slog.Logger
	// execFn is the function used to execute gh commands.
	// If nil, the package-level execGH function is used.
	execFn execFunc
}

// New creates the GitHub host plugin. A nil logger discards output.
func New(logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Host{logger: logger}
}

// newHostWithExec creates a Host with a custom exec function for testing.
func newHostWithExec(fn execFunc) *Host {
	h := New(nil)
	h.execFn = fn
	return h
}

// exec runs a gh command using execFn if set, otherwise falls back to execGH.
func (h *Host) exec(ctx context.Context, dir string, args ...string) (string, error) {
	if h.execFn != nil {
		return h.execFn(ctx, dir, args...)
	}
	return execGH(ctx, dir, args...)
}

// Prompt resolves the repository owner. The login of the account gh is
// authenticated with is offered as the default. The repository is named
// after the project.
func (h *Host) Prompt(ctx context.Context, pc plugin.HostPromptContext) (*plugin.HostAnswers, error) {
	login, err := h.exec(ctx, "", "api", "user", "--jq", ".login")
	if err != nil {
		h.logger.Debug("gh login unavailable", "error", err)
		login = ""
	}

	owner, err := pc.Asker.Input(ctx, models.QuestionRepoOwner, "What is the GitHub account or organization that owns the repository?", strings.TrimSpace(login))
	if err != nil {
		return nil, err
	}
	if owner == "" {
		return nil, ErrOwnerRequired
	}
	return &plugin.HostAnswers{Owner: owner, Name: pc.ProjectName}, nil
}

// Scaffold optionally creates the repository on GitHub and files the
// contributed next steps as issues there. The SSH origin is returned
// either way so the local repository can be wired to it.
func (h *Host) Scaffold(ctx context.Context, hc plugin.HostContext) (*models.VcsHostResult, error) {
	slug := hc.Owner + "/" + hc.Name
	result := &models.VcsHostResult{
		Origin: &models.Origin{SSHURL: SSHURL(hc.Owner, hc.Name)},
	}

	create, err := hc.Asker.Confirm(ctx, QuestionCreateRepo, fmt.Sprintf("Create %s on GitHub now?", slug), false)
	if err != nil {
		return nil, err
	}
	if !create {
		result.NextSteps = []models.Task{{
			Summary:     "Create the GitHub repository",
			Description: fmt.Sprintf("gh repo create %s %s", slug, visibilityFlag(hc.Visibility)),
		}}
		return result, nil
	}

	if _, err := h.exec(ctx, hc.ProjectRoot, "auth", "status"); err != nil {
		return nil, fmt.Errorf("check auth: %w", ErrGHNotAuthenticated)
	}

	args := []string{"repo", "create", slug, visibilityFlag(hc.Visibility)}
	if hc.Description != "" {
		args = append(args, "--description", hc.Description)
	}
	if hc.Homepage != "" {
		args = append(args, "--homepage", hc.Homepage)
	}
	if _, err := h.exec(ctx, hc.ProjectRoot, args...); err != nil {
		return nil, fmt.Errorf("create repository %s: %w", slug, err)
	}
	h.logger.Info("github repository created", "repo", slug)

	for _, task := range hc.NextSteps {
		body := task.Description
		if body == "" {
			body = task.Summary
		}
		if _, err := h.exec(ctx, hc.ProjectRoot, "issue", "create", "--repo", slug, "--title", task.Summary, "--body", body); err != nil {
			return nil, fmt.Errorf("create issue %q: %w", task.Summary, err)
		}
	}
	h.logger.Debug("next steps filed as issues", "repo", slug, "count", len(hc.NextSteps))

	return result, nil
}

// SSHURL returns the SSH clone URL of a GitHub repository.
func SSHURL(owner, name string) string {
	return "git@github.com:" + owner + "/" + name + ".git"
}

func visibilityFlag(v models.Visibility) string {
	if v == models.VisibilityPrivate {
		return "--private"
	}
	return "--public"
}

// execGH runs a gh CLI command and returns trimmed stdout.
func execGH(ctx context.Context, dir string, args ...string) (string, error) {
	ghBinOnce.Do(func() {
		ghBinPath, ghBinErr = exec.LookPath("gh")
	})
	if ghBinErr != nil {
		return "", fmt.Errorf("gh lookup: %w", ErrGHNotFound)
	}

	cmd := exec.CommandContext(ctx, ghBinPath, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		if len(args) == 0 {
			return "", fmt.Errorf("gh: %s: %w", errMsg, err)
		}
		return "", fmt.Errorf("gh %s: %s: %w", args[0], errMsg, err)
	}

	return strings.TrimRight(stdout.String(), "\n\r"), nil
}
