// Package config holds the compiled-in settings for the sysdash dashboard.
//
// There is no config file and no environment lookup: DefaultConfig is the
// only source of values. The struct form exists so the values can be
// validated, threaded through the renderers, and printed by `sysdash config`.
package config

import "time"

// Severity thresholds, in percent.
const (
	ElevatedThreshold = 50.0
	CriticalThreshold = 75.5
)

// Scheduler timing.
const (
	// TickSleep is the pause at the end of every tick.
	TickSleep = 10 * time.Millisecond
	// InputPollWindow bounds how long one tick waits for a key event.
	InputPollWindow = 100 * time.Millisecond
	// RefreshEveryTicks is the number of ticks between two samples.
	RefreshEveryTicks = 10
	// SampleTimeout is the watchdog for a single metrics refresh.
	SampleTimeout = 5 * time.Second
)

// Layout constants, in cells unless named as a percentage.
const (
	ViewportMargin       = 1
	MetricsColumnWidth   = 40
	SecondaryColumnWidth = 50

	CPUBasePercent    = 7
	CPUPerCorePercent = 2
	MemoryPercent     = 16
	SwapPercent       = 14
	DiskPercent       = 31
	HostPercent       = 20

	BarWidth = 10
)

// Process table constants.
const (
	ProcessMemoryFloorBytes = 50_000_000
	ProcessNameMaxChars     = 21
)

// ProcessColumnPercents are the widths of PID, Name, Mem, CPU, Uptime and EUID/EGID.
var ProcessColumnPercents = []uint16{10, 32, 13, 10, 15, 18}

// Config is the complete set of dashboard settings.
type Config struct {
	Thresholds Thresholds   `yaml:"thresholds"`
	Timing     Timing       `yaml:"timing"`
	Layout     Layout       `yaml:"layout"`
	Processes  ProcessTable `yaml:"processes"`
}

// Thresholds are the severity cutoffs. A value strictly above Critical is
// critical; strictly above Elevated is elevated.
type Thresholds struct {
	Elevated float64 `yaml:"elevated"`
	Critical float64 `yaml:"critical"`
}

// Timing drives the refresh scheduler.
type Timing struct {
	TickSleep     time.Duration `yaml:"tick_sleep"`
	InputPoll     time.Duration `yaml:"input_poll"`
	RefreshEvery  int           `yaml:"refresh_every"`
	SampleTimeout time.Duration `yaml:"sample_timeout"`
}

// TickPeriod is the wall time of one idle tick: the full input poll window
// followed by the tick sleep.
func (t Timing) TickPeriod() time.Duration {
	return t.InputPoll + t.TickSleep
}

// RefreshInterval is the approximate time between two samples.
func (t Timing) RefreshInterval() time.Duration {
	return t.TickPeriod() * time.Duration(t.RefreshEvery)
}

// Layout holds the frame geometry.
type Layout struct {
	ViewportMargin       uint16 `yaml:"viewport_margin"`
	MetricsColumnWidth   uint16 `yaml:"metrics_column_width"`
	SecondaryColumnWidth uint16 `yaml:"secondary_column_width"`

	CPUBasePercent    uint16 `yaml:"cpu_base_percent"`
	CPUPerCorePercent uint16 `yaml:"cpu_per_core_percent"`
	MemoryPercent     uint16 `yaml:"memory_percent"`
	SwapPercent       uint16 `yaml:"swap_percent"`
	DiskPercent       uint16 `yaml:"disk_percent"`
	HostPercent       uint16 `yaml:"host_percent"`

	BarWidth int `yaml:"bar_width"`
}

// CPUPercent returns the share of the metrics column given to the CPU panel.
// It grows with the core count and is capped at 100.
func (l Layout) CPUPercent(cores int) uint16 {
	p := int(l.CPUBasePercent) + cores*int(l.CPUPerCorePercent)
	if p > 100 {
		return 100
	}
	return uint16(p)
}

// ProcessTable configures the process projection.
type ProcessTable struct {
	MemoryFloorBytes uint64   `yaml:"memory_floor_bytes"`
	NameMaxChars     int      `yaml:"name_max_chars"`
	ColumnPercents   []uint16 `yaml:"column_percents"`
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() *Config {
	columns := make([]uint16, len(ProcessColumnPercents))
	copy(columns, ProcessColumnPercents)

	return &Config{
		Thresholds: Thresholds{
			Elevated: ElevatedThreshold,
			Critical: CriticalThreshold,
		},
		Timing: Timing{
			TickSleep:     TickSleep,
			InputPoll:     InputPollWindow,
			RefreshEvery:  RefreshEveryTicks,
			SampleTimeout: SampleTimeout,
		},
		Layout: Layout{
			ViewportMargin:       ViewportMargin,
			MetricsColumnWidth:   MetricsColumnWidth,
			SecondaryColumnWidth: SecondaryColumnWidth,
			CPUBasePercent:       CPUBasePercent,
			CPUPerCorePercent:    CPUPerCorePercent,
			MemoryPercent:        MemoryPercent,
			SwapPercent:          SwapPercent,
			DiskPercent:          DiskPercent,
			HostPercent:          HostPercent,
			BarWidth:             BarWidth,
		},
		Processes: ProcessTable{
			MemoryFloorBytes: ProcessMemoryFloorBytes,
			NameMaxChars:     ProcessNameMaxChars,
			ColumnPercents:   columns,
		},
	}
}
