package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerFrames is the braille scan animation shared by the standalone
// Spinner and Bubble Tea components, so every spinner in the tool looks
// and ticks the same.
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"},
	FPS:    time.Second / 16,
}

// SpinnerComponentState mirrors SpinnerState for Bubble Tea models.
type SpinnerComponentState int

const (
	SpinnerComponentPending SpinnerComponentState = iota
	SpinnerComponentInProgress
	SpinnerComponentSuccess
	SpinnerComponentFailed
)

// SpinnerComponent embeds a spinner in a Bubble Tea model, like the
// dashboard's wait for its first metrics snapshot. It owns no output
// stream; the parent model composes View into its own rendering.
type SpinnerComponent struct {
	spinner   spinner.Model
	Label     string
	State     SpinnerComponentState
	StartTime time.Time
}

// NewSpinnerComponent creates a pending spinner with the given label.
func NewSpinnerComponent(label string) SpinnerComponent {
	sp := spinner.New()
	sp.Spinner = SpinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ColorSecondary)

	return SpinnerComponent{
		spinner: sp,
		Label:   label,
		State:   SpinnerComponentPending,
	}
}

// Start flips the component to in-progress and returns the animation tick.
func (s *SpinnerComponent) Start() tea.Cmd {
	s.State = SpinnerComponentInProgress
	s.StartTime = time.Now()
	return s.spinner.Tick
}

// Success freezes the component on its success line.
func (s *SpinnerComponent) Success() {
	s.State = SpinnerComponentSuccess
}

// Fail freezes the component on its failure line.
func (s *SpinnerComponent) Fail() {
	s.State = SpinnerComponentFailed
}

// Init returns the initial animation tick.
func (s SpinnerComponent) Init() tea.Cmd {
	return s.spinner.Tick
}

// Update advances the animation on tick messages. A finished component
// returns no command, which ends the tick loop.
func (s SpinnerComponent) Update(msg tea.Msg) (SpinnerComponent, tea.Cmd) {
	if s.State != SpinnerComponentInProgress {
		return s, nil
	}

	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return s, nil
	}

	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(tick)
	return s, cmd
}

// View renders the component for its current state.
func (s SpinnerComponent) View() string {
	switch s.State {
	case SpinnerComponentInProgress:
		return s.spinner.View() + " " + s.Label + "..."
	case SpinnerComponentSuccess:
		return s.resultLine(SymbolSuccess, ColorSuccess)
	case SpinnerComponentFailed:
		return s.resultLine(SymbolFail, ColorError)
	default:
		return MutedStyle().Render(SymbolPending) + " " + s.Label
	}
}

func (s SpinnerComponent) resultLine(symbol string, color lipgloss.Color) string {
	mark := lipgloss.NewStyle().Foreground(color).Render(symbol)
	timing := MutedStyle().Render(formatDuration(s.Elapsed()))
	return mark + " " + s.Label + " " + timing
}

// Elapsed returns the time since Start, or zero before the first Start.
func (s SpinnerComponent) Elapsed() time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	return time.Since(s.StartTime)
}
