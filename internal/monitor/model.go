package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sysdash/internal/config"
	"github.com/rileyhilliard/sysdash/internal/errors"
	"github.com/rileyhilliard/sysdash/internal/layout"
	"github.com/rileyhilliard/sysdash/internal/logger"
	"github.com/rileyhilliard/sysdash/internal/metrics"
)

// waitingText is shown until the first sample lands.
const waitingText = "Sampling host metrics..."

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	source   metrics.Source
	cfg      *config.Config
	log      logger.Logger
	composer *Composer
	palette  Palette
	keys     KeyMap
	sched    *Scheduler

	snapshot *metrics.Snapshot
	view     string // cached render of the last frame
	width    int
	height   int
	quitting bool
	err      error
}

// tickMsg signals the end of one scheduler tick.
type tickMsg time.Time

// snapshotMsg carries the result of one sample.
type snapshotMsg struct {
	snapshot *metrics.Snapshot
	err      error
}

// NewModel creates a dashboard reading from source. A nil cfg uses the
// defaults; a nil log discards output.
func NewModel(source metrics.Source, cfg *config.Config, log logger.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = logger.Noop()
	}
	return Model{
		source:   source,
		cfg:      cfg,
		log:      log,
		composer: NewComposer(cfg),
		palette:  DefaultPalette(),
		keys:     DefaultKeyMap(),
		sched:    NewScheduler(cfg.Timing),
	}
}

// WithSize sets the viewport before the first WindowSizeMsg arrives.
func (m Model) WithSize(width, height int) Model {
	m.width, m.height = width, height
	return m
}

// Init takes the first sample and starts the tick loop.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tickCmd()}
	if m.sched.BeginRender() {
		cmds = append(cmds, m.collectCmd())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.sched.ShouldPollInput() && key.Matches(msg, m.keys.Quit) {
			m.log.Debug("quit requested with %q at tick %d", msg.String(), m.sched.Tick())
			m.sched.Shutdown()
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.render()

	case tickMsg:
		if m.sched.State() == StateShutdown {
			return m, nil
		}
		m.sched.Advance()
		cmds := []tea.Cmd{m.tickCmd()}
		if m.sched.BeginRender() {
			cmds = append(cmds, m.collectCmd())
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		if msg.err != nil {
			m.log.Error("sampling failed: %v", msg.err)
			m.err = msg.err
			m.sched.Shutdown()
			m.quitting = true
			return m, tea.Quit
		}
		m.snapshot = msg.snapshot
		m.render()
		m.sched.RenderDone()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.snapshot == nil {
		return waitingText
	}
	return m.view
}

// Err returns the error that stopped the dashboard, if any.
func (m Model) Err() error {
	return m.err
}

// Snapshot returns the most recent sample, or nil before the first one.
func (m Model) Snapshot() *metrics.Snapshot {
	return m.snapshot
}

// Scheduler exposes the refresh scheduler for inspection.
func (m Model) Scheduler() *Scheduler {
	return m.sched
}

// render recomposes the cached view from the current snapshot and size.
func (m *Model) render() {
	if m.snapshot == nil {
		return
	}
	frame := m.composer.Compose(m.snapshot, layout.NewRect(0, 0, m.width, m.height))
	m.view = frame.Render(m.palette)
}

// tickCmd waits out one tick: the input poll window plus the tick sleep.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.Timing.TickPeriod(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collectCmd samples the source in the background. The sample is abandoned
// if it outlives the watchdog timeout.
func (m Model) collectCmd() tea.Cmd {
	source := m.source
	timeout := m.cfg.Timing.SampleTimeout
	log := m.log

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		snap, err := sample(ctx, source)
		if err != nil {
			return snapshotMsg{err: err}
		}
		log.Debug("sampled %d cores, %d disks, %d processes in %s",
			len(snap.CPU.Cores), len(snap.Disks), len(snap.Processes), time.Since(start))
		return snapshotMsg{snapshot: snap}
	}
}

// sample runs one refresh, giving up when ctx is done even if the source
// doesn't watch it.
func sample(ctx context.Context, source metrics.Source) (*metrics.Snapshot, error) {
	type result struct {
		snap *metrics.Snapshot
		err  error
	}
	done := make(chan result, 1)

	go func() {
		snap, err := source.Refresh(ctx)
		done <- result{snap: snap, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return nil, r.err
		}
		if r.snap == nil {
			return nil, errors.New(errors.ErrMetrics,
				"Metrics source returned no snapshot",
				"This is a bug in the metrics source.")
		}
		return r.snap, nil
	case <-ctx.Done():
		return nil, errors.WrapWithCode(ctx.Err(), errors.ErrMetrics,
			"Sampling host metrics timed out",
			"The host is under heavy load or a metrics call is hanging. Try again.")
	}
}
