package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Phase markers printed by spinners.
const (
	markRunning = "→"
	markDone    = "✓"
)

// progressImpl implements the Progress interface.
type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
	now      func() time.Time
}

// NewProgress creates a Progress writing to os.Stdout.
func NewProgress(theme *Theme, hm *HeadlessManager) Progress {
	return newProgressImpl(theme, hm, os.Stdout)
}

// newProgressImpl creates a progressImpl with a custom writer (for testing).
func newProgressImpl(theme *Theme, hm *HeadlessManager, w io.Writer) *progressImpl {
	return &progressImpl{theme: theme, headless: hm, writer: w, now: time.Now}
}

// Spinner starts a spinner for one phase of a run. When stopped it
// leaves a completion line with the phase's elapsed time. Without a
// terminal or color it prints plain start and completion lines instead.
func (p *progressImpl) Spinner(title string) Spinner {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return newPlainSpinner(title, p.writer, p.now)
	}
	return newAnimatedSpinner(p.theme, title, p.writer, p.now)
}

func elapsed(since, now time.Time) string {
	return now.Sub(since).Round(time.Millisecond).String()
}

// --- animatedSpinner ---

// spinnerTitleMsg renames the running phase.
type spinnerTitleMsg string

// spinnerStopMsg finishes the phase; at is the completion time.
type spinnerStopMsg struct{ at time.Time }

// spinnerModel is the bubbletea Model of a running phase.
type spinnerModel struct {
	theme   *Theme
	spinner spinner.Model
	title   string
	started time.Time
	summary string // completion line, set once the phase is done.
}

func newSpinnerModel(theme *Theme, title string, started time.Time) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	s.Style = theme.Style(theme.Colors.Primary)
	return spinnerModel{theme: theme, spinner: s, title: title, started: started}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		mark := m.theme.Style(m.theme.Colors.Success).Render(markDone)
		muted := m.theme.Style(m.theme.Colors.Muted)
		m.summary = fmt.Sprintf("%s %s %s", mark, m.title, muted.Render("("+elapsed(m.started, msg.at)+")"))
		return m, tea.Quit
	case spinner.TickMsg:
		if m.summary != "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the running phase, or its completion line once done.
func (m spinnerModel) View() string {
	if m.summary != "" {
		return m.summary + "\n"
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// animatedSpinner implements Spinner with a bubbles spinner.
type animatedSpinner struct {
	program *tea.Program
	now     func() time.Time
	once    sync.Once
}

// @MX:WARN: [AUTO] the program goroutine lives until Stop is called; a missing Stop leaks it.
// @MX:REASON: [AUTO] goroutine lifetime is bound to the tea.Program lifetime
func newAnimatedSpinner(theme *Theme, title string, w io.Writer, now func() time.Time) *animatedSpinner {
	// Stdin is left alone: prompts may read it once the phase ends.
	p := tea.NewProgram(newSpinnerModel(theme, title, now()), tea.WithOutput(w), tea.WithInput(nil))
	go func() {
		_, _ = p.Run()
	}()
	return &animatedSpinner{program: p, now: now}
}

// SetTitle renames the running phase.
func (s *animatedSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

// Stop finishes the phase and waits for the completion line to render.
func (s *animatedSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{at: s.now()})
		s.program.Wait()
	})
}

// --- plainSpinner ---

// plainSpinner implements Spinner with one line per event.
type plainSpinner struct {
	title   string
	started time.Time
	writer  io.Writer
	now     func() time.Time
	once    sync.Once
}

func newPlainSpinner(title string, w io.Writer, now func() time.Time) *plainSpinner {
	s := &plainSpinner{title: title, started: now(), writer: w, now: now}
	_, _ = fmt.Fprintf(w, "%s %s\n", markRunning, title)
	return s
}

// SetTitle prints the new phase title.
func (s *plainSpinner) SetTitle(title string) {
	s.title = title
	_, _ = fmt.Fprintf(s.writer, "%s %s\n", markRunning, title)
}

// Stop prints the completion line once.
func (s *plainSpinner) Stop() {
	s.once.Do(func() {
		_, _ = fmt.Fprintf(s.writer, "%s %s (%s)\n", markDone, s.title, elapsed(s.started, s.now()))
	})
}
