package monitor

import "github.com/rileyhilliard/sysdash/internal/config"

// State is the scheduler's position in the refresh cycle.
type State int

const (
	// StateIdle waits for the next refresh tick.
	StateIdle State = iota
	// StateRendering has a sample in flight. No new sample starts until it lands.
	StateRendering
	// StateShutdown is terminal.
	StateShutdown
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRendering:
		return "rendering"
	case StateShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// ShouldRefresh reports whether tick is a refresh tick.
func ShouldRefresh(tick uint64, every int) bool {
	if every <= 1 {
		return true
	}
	return tick%uint64(every) == 0
}

// Scheduler counts ticks and decides when to sample.
//
// Tick 0 refreshes, then every Timing.RefreshEvery ticks after it. The
// counter is the only mutable state; everything else is derived from it.
type Scheduler struct {
	tick  uint64
	every int
	state State
}

// NewScheduler returns an idle scheduler at tick 0.
func NewScheduler(timing config.Timing) *Scheduler {
	return &Scheduler{every: timing.RefreshEvery}
}

// Tick returns the current tick count.
func (s *Scheduler) Tick() uint64 { return s.tick }

// State returns the current state.
func (s *Scheduler) State() State { return s.state }

// ShouldRefresh reports whether the current tick should start a sample.
func (s *Scheduler) ShouldRefresh() bool {
	return s.state == StateIdle && ShouldRefresh(s.tick, s.every)
}

// ShouldPollInput reports whether key events still matter.
func (s *Scheduler) ShouldPollInput() bool {
	return s.state != StateShutdown
}

// BeginRender moves to Rendering if the current tick is due. It returns
// false, and changes nothing, when it isn't or a sample is already in flight.
func (s *Scheduler) BeginRender() bool {
	if !s.ShouldRefresh() {
		return false
	}
	s.state = StateRendering
	return true
}

// RenderDone returns to Idle after a frame was produced.
func (s *Scheduler) RenderDone() {
	if s.state == StateRendering {
		s.state = StateIdle
	}
}

// Advance moves to the next tick. A shut down scheduler stays where it is.
func (s *Scheduler) Advance() {
	if s.state == StateShutdown {
		return
	}
	s.tick++
}

// Shutdown stops the scheduler for good.
func (s *Scheduler) Shutdown() {
	s.state = StateShutdown
}
