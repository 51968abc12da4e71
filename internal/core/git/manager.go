// Package git initializes the project's git repository and writes the
// git-specific files of a scaffolded project.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds each git invocation.
const DefaultTimeout = 30 * time.Second

var (
	// ErrSystemGitNotFound indicates git is not installed or not on PATH.
	ErrSystemGitNotFound = errors.New("system git not found")

	// ErrOwnerRequired indicates the repository owner could not be resolved.
	ErrOwnerRequired = errors.New("repository owner required")
)

// execGit runs a git command in dir and returns trimmed stdout.
// Prompts are disabled and the locale is fixed so output can be parsed.
func execGit(ctx context.Context, dir string, args ...string) (string, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("system git lookup: %w", ErrSystemGitNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"LC_ALL=C",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if len(args) > 0 {
			return "", fmt.Errorf("git %s: %s: %w", args[0], stderrStr, err)
		}
		return "", fmt.Errorf("git: %s: %w", stderrStr, err)
	}

	return strings.TrimRight(stdout.String(), "\n\r"), nil
}

// isRepository reports whether dir is the top level of a git work tree.
// A directory nested inside another repository does not count.
func isRepository(ctx context.Context, dir string) bool {
	out, err := execGit(ctx, dir, "rev-parse", "--show-prefix")
	return err == nil && out == ""
}

// remotes returns the names of the configured remotes.
func remotes(ctx context.Context, dir string) ([]string, error) {
	out, err := execGit(ctx, dir, "remote")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}
