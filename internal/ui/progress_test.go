package ui

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func testTheme() *Theme {
	th := NewTheme()
	th.NoColor = false
	return th
}

// steppingClock returns a clock that advances by step on every reading.
func steppingClock(step time.Duration) func() time.Time {
	t := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}

func startTestSpinner(t *testing.T, title string) (*animatedSpinner, <-chan struct{}) {
	t.Helper()
	now := steppingClock(time.Second)
	p := tea.NewProgram(newSpinnerModel(testTheme(), title, now()),
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Run()
	}()
	// Let the program start before messages are sent.
	time.Sleep(10 * time.Millisecond)
	return &animatedSpinner{program: p, now: now}, done
}

func waitForProgram(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("tea.Program did not exit within 2 second timeout")
	}
}

func TestAnimatedSpinner_SetTitleThenStop(t *testing.T) {
	s, done := startTestSpinner(t, "Writing project documents")
	s.SetTitle("Committing")
	s.Stop()
	waitForProgram(t, done)
}

func TestAnimatedSpinner_StopTwice(t *testing.T) {
	s, done := startTestSpinner(t, "Loading")
	s.Stop()
	s.Stop()
	waitForProgram(t, done)
}

func TestSpinnerModel_Update(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := newSpinnerModel(testTheme(), "Initial", start)

	updated, _ := m.Update(spinnerTitleMsg("Renamed"))
	renamed := updated.(spinnerModel)
	if renamed.title != "Renamed" {
		t.Errorf("title = %q, want %q", renamed.title, "Renamed")
	}
	if !strings.Contains(renamed.View(), "Renamed") {
		t.Errorf("View() = %q, want the running title", renamed.View())
	}

	updated, cmd := renamed.Update(spinnerStopMsg{at: start.Add(1500 * time.Millisecond)})
	stopped := updated.(spinnerModel)
	if cmd == nil {
		t.Error("stop message should return tea.Quit")
	}
	view := stopped.View()
	for _, want := range []string{markDone, "Renamed", "1.5s"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() after stop = %q, missing %q", view, want)
		}
	}

	tick := m.Init()
	if tick == nil {
		t.Fatal("Init should return a tick command")
	}
	if msg, ok := tick().(spinner.TickMsg); ok {
		if _, cmd := stopped.Update(msg); cmd != nil {
			t.Error("a finished spinner should stop ticking")
		}
		updated, _ = m.Update(msg)
		if updated.(spinnerModel).summary != "" {
			t.Error("tick should not finish the spinner")
		}
	}
}

func TestProgressImpl_PlainSpinner(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)

	var buf strings.Builder
	prog := newProgressImpl(testTheme(), hm, &buf)
	prog.now = steppingClock(250 * time.Millisecond)

	sp := prog.Spinner("Writing project documents")
	sp.SetTitle("Copying .editorconfig")
	sp.Stop()
	sp.Stop()

	want := "→ Writing project documents\n→ Copying .editorconfig\n✓ Copying .editorconfig (250ms)\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestProgressImpl_NoColorIsPlain(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)
	th := testTheme()
	th.NoColor = true

	var buf strings.Builder
	sp := newProgressImpl(th, hm, &buf).Spinner("Plain")
	sp.Stop()

	if _, ok := sp.(*plainSpinner); !ok {
		t.Errorf("spinner type = %T, want *plainSpinner", sp)
	}
}

func TestHeadlessManager_Force(t *testing.T) {
	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("ForceHeadless(true) should report headless")
	}
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("ForceHeadless(false) should report interactive")
	}
	hm.ClearForce()
	if hm.forced != nil {
		t.Error("ClearForce should remove the override")
	}
}

func TestHeadlessManager_Detection(t *testing.T) {
	tests := []struct {
		name     string
		terminal bool
		ci       string
		want     bool
	}{
		{"terminal", true, "", false},
		{"no terminal", false, "", true},
		{"ci on a terminal", true, "true", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hm := &HeadlessManager{
				terminal: func() bool { return tt.terminal },
				getenv: func(key string) string {
					if key == "CI" {
						return tt.ci
					}
					return ""
				},
			}
			if got := hm.IsHeadless(); got != tt.want {
				t.Errorf("IsHeadless() = %v, want %v", got, tt.want)
			}
		})
	}
}
