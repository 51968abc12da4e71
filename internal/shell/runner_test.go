package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests use POSIX shell syntax")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunner_PassesOutputThrough(t *testing.T) {
	requireShell(t)

	var stdout, stderr bytes.Buffer
	r := NewRunner(&stdout, &stderr, nil)

	if err := r.Run(context.Background(), t.TempDir(), "echo out; echo err >&2"); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "out" {
		t.Errorf("stdout = %q, want %q", got, "out")
	}
	if got := strings.TrimSpace(stderr.String()); got != "err" {
		t.Errorf("stderr = %q, want %q", got, "err")
	}
}

func TestRunner_RunsInDir(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	var stdout bytes.Buffer
	if err := NewRunner(&stdout, &bytes.Buffer{}, nil).Run(context.Background(), dir, "pwd -P"); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(stdout.String()), dir) {
		t.Errorf("pwd = %q, want %q", stdout.String(), dir)
	}
}

func TestRunner_NonZeroExit(t *testing.T) {
	requireShell(t)

	err := NewRunner(&bytes.Buffer{}, &bytes.Buffer{}, nil).Run(context.Background(), t.TempDir(), "exit 3")
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("Run() error = %v, want ErrCommandFailed", err)
	}
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("Run() error = %T, want *CommandError", err)
	}
	if cmdErr.ExitCode != 3 || cmdErr.Command != "exit 3" {
		t.Errorf("CommandError = %+v", cmdErr)
	}
}

func TestRunner_CancelledContext(t *testing.T) {
	requireShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewRunner(&bytes.Buffer{}, &bytes.Buffer{}, nil).Run(ctx, t.TempDir(), "true")
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if errors.Is(err, ErrCommandFailed) {
		t.Errorf("cancellation reported as command failure: %v", err)
	}
}
