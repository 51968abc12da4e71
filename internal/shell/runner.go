// Package shell runs project commands through the platform shell with
// their output streamed to the caller.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
)

var (
	// ErrCommandFailed indicates the command ran and exited non-zero.
	ErrCommandFailed = errors.New("command failed")

	// ErrShellNotFound indicates the platform shell is not on PATH.
	ErrShellNotFound = errors.New("shell not found")
)

// CommandError reports a command that exited with a non-zero status.
// It matches ErrCommandFailed with errors.Is.
type CommandError struct {
	Command  string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %q exited with status %d", ErrCommandFailed, e.Command, e.ExitCode)
}

// Is reports whether target is ErrCommandFailed.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// Runner executes shell command lines.
type Runner interface {
	// Run executes command in dir. Output is passed through, not captured.
	Run(ctx context.Context, dir, command string) error
}

// runner is the os/exec implementation of Runner.
type runner struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// NewRunner creates a Runner writing command output to stdout and stderr.
// Nil writers default to os.Stdout and os.Stderr; a nil logger discards.
func NewRunner(stdout, stderr io.Writer, logger *slog.Logger) Runner {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &runner{stdout: stdout, stderr: stderr, logger: logger}
}

// Run executes command with "sh -c", or "cmd /C" on Windows.
func (r *runner) Run(ctx context.Context, dir, command string) error {
	name, args := shellCommand(command)
	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s lookup: %w", name, ErrShellNotFound)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	r.logger.Debug("running command", "dir", dir, "command", command)

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("run %q: %w", command, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &CommandError{Command: command, ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("run %q: %w", command, err)
	}
	return nil
}

func shellCommand(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}
