package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager reports whether prompts, spinners and rendered
// markdown are available. A run is headless when stdin is not a
// terminal, when CI is set, or when forced.
type HeadlessManager struct {
	forced   *bool
	terminal func() bool
	getenv   func(string) string
}

// NewHeadlessManager creates a HeadlessManager that inspects os.Stdin
// and the environment.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{terminal: stdinIsTerminal, getenv: os.Getenv}
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsHeadless reports whether the run must avoid interactive output.
// A forced value wins over detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	if h.getenv("CI") != "" {
		return true
	}
	return !h.terminal()
}

// ForceHeadless pins the mode regardless of detection.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce reverts to detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}
