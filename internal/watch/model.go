package watch

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/ui"
)

// watchProcessRows is how many top processes the dashboard lists.
const watchProcessRows = 10

// collectTimeout bounds one metrics collection cycle.
const collectTimeout = 10 * time.Second

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	collector *collector.Collector
	log       logger.Logger
	history   *History
	interval  time.Duration
	spin      ui.SpinnerComponent

	width  int
	height int

	status     *collector.StatusSnapshot
	procs      []collector.ProcessRecord
	net        *collector.NetworkStats
	lastErr    string
	lastUpdate time.Time
	quitting   bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// metricsMsg carries one collection cycle's results.
type metricsMsg struct {
	status *collector.StatusSnapshot
	procs  []collector.ProcessRecord
	net    *collector.NetworkStats
	err    error
	time   time.Time
}

// NewModel creates a dashboard model refreshing at the given interval.
func NewModel(c *collector.Collector, log logger.Logger, interval time.Duration) Model {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	spin := ui.NewSpinnerComponent("Collecting metrics")
	spin.Start()
	return Model{
		collector: c,
		log:       log,
		history:   NewHistory(DefaultHistorySize),
		interval:  interval,
		spin:      spin,
	}
}

// Init starts the tick timer, the waiting spinner, and an initial metrics
// collection.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.collectCmd(),
		m.spin.Init(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, tea.Batch(m.tickCmd(), m.collectCmd())

	case metricsMsg:
		m.lastUpdate = msg.time
		if msg.err != nil {
			m.lastErr = msg.err.Error()
			if m.status == nil {
				// No snapshot to fall back on. Failing the waiting spinner
				// also ends its tick loop; the error line takes its place.
				m.spin.Fail()
			}
			m.log.Debug("collection failed: %v", msg.err)
			return m, nil
		}
		m.spin.Success()
		m.lastErr = ""
		m.status = msg.status
		m.procs = msg.procs
		m.net = msg.net
		m.history.PushUsage(msg.status.CPUPercent, msg.status.MemPercent)
		if msg.net != nil {
			m.history.PushNetwork(msg.net.GlobalStats.BytesRecv, msg.net.GlobalStats.BytesSent)
		}
		return m, nil
	}

	// Anything else may be a spinner animation frame.
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collectCmd returns a command that gathers one snapshot in the background.
// The overview must succeed; the process table and network stats degrade to
// their previous values when they fail mid-cycle.
func (m Model) collectCmd() tea.Cmd {
	c := m.collector
	prevProcs := m.procs
	prevNet := m.net

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
		defer cancel()

		msg := metricsMsg{time: time.Now()}

		status, err := c.StatusOverview(ctx)
		if err != nil {
			msg.err = err
			return msg
		}
		msg.status = status

		if procs, err := c.ListProcesses(ctx, collector.SortCPU, watchProcessRows); err == nil {
			msg.procs = procs
		} else {
			msg.procs = prevProcs
		}

		if net, err := c.NetworkStats(ctx); err == nil {
			msg.net = net
		} else {
			msg.net = prevNet
		}

		return msg
	}
}

// SecondsSinceUpdate returns whole seconds since the last completed
// collection, or -1 before the first one.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return -1
	}
	return int(time.Since(m.lastUpdate).Seconds())
}

// Run starts the dashboard and blocks until the user quits.
func Run(c *collector.Collector, log logger.Logger, interval time.Duration) error {
	model := NewModel(c, log, interval)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "Dashboard terminated")
	}
	return nil
}
