package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// SpinnerState tracks where a spinner is in its lifecycle.
type SpinnerState int

const (
	SpinnerPending SpinnerState = iota
	SpinnerInProgress
	SpinnerSuccess
	SpinnerFailed
)

// Spinner animates a braille indicator next to a label while a command
// waits on a slow sample. Output goes to stderr so stdout stays clean for
// command output and JSON envelopes.
type Spinner struct {
	mu        sync.Mutex
	label     string
	state     SpinnerState
	frame     int
	startTime time.Time
	stopCh    chan struct{}
	doneCh    chan struct{}
	output    func(string)
	running   bool
	lastLine  string
}

// NewSpinner creates a spinner in the pending state.
func NewSpinner(label string) *Spinner {
	return &Spinner{
		label:  label,
		state:  SpinnerPending,
		output: func(text string) { fmt.Fprint(os.Stderr, text) },
	}
}

// SetOutput replaces the default stderr writer.
func (s *Spinner) SetOutput(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.output = fn
}

// Start begins the animation. Starting a running spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.state = SpinnerInProgress
	s.startTime = time.Now()
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.mu.Unlock()

	s.render()

	go s.animate()
}

// Stop halts the animation and erases the spinner line, leaving no trace
// on the terminal. State is unchanged; use Success or Fail to print a
// result line instead.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	<-s.doneCh

	s.mu.Lock()
	s.clearLine()
	s.mu.Unlock()
}

// Success stops the spinner and prints the label with a green check and
// the elapsed time.
func (s *Spinner) Success() {
	s.finish(SpinnerSuccess, SymbolSuccess, ColorSuccess)
}

// Fail stops the spinner and prints the label with a red cross and the
// elapsed time.
func (s *Spinner) Fail() {
	s.finish(SpinnerFailed, SymbolFail, ColorError)
}

// State returns the current spinner state.
func (s *Spinner) State() SpinnerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Elapsed returns the time since Start, or zero before the first Start.
func (s *Spinner) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime)
}

func (s *Spinner) finish(state SpinnerState, symbol string, color lipgloss.Color) {
	s.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state

	var elapsed time.Duration
	if !s.startTime.IsZero() {
		elapsed = time.Since(s.startTime)
	}

	line := fmt.Sprintf("%s %s %s\n",
		lipgloss.NewStyle().Foreground(color).Render(symbol),
		s.label,
		MutedStyle().Render(formatDuration(elapsed)),
	)
	s.output(line)
}

func (s *Spinner) animate() {
	ticker := time.NewTicker(SpinnerFrames.FPS)
	defer ticker.Stop()
	defer close(s.doneCh)

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame = (s.frame + 1) % len(SpinnerFrames.Frames)
			s.mu.Unlock()
			s.render()
		}
	}
}

func (s *Spinner) render() {
	s.mu.Lock()
	defer s.mu.Unlock()

	frame := lipgloss.NewStyle().Foreground(ColorSecondary).Render(SpinnerFrames.Frames[s.frame])
	line := frame + " " + s.label + "..."

	s.clearLine()
	s.output(line)
	s.lastLine = line
}

// clearLine erases the previously rendered line. Callers must hold s.mu.
func (s *Spinner) clearLine() {
	if s.lastLine == "" {
		return
	}
	s.output("\r" + strings.Repeat(" ", lipgloss.Width(s.lastLine)) + "\r")
	s.lastLine = ""
}

// formatDuration renders an elapsed time compactly: whole milliseconds
// under a second, tenths of a second above.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
