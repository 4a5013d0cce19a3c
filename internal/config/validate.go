package config

import (
	"fmt"
	"math"

	"github.com/rileyhilliard/sysdash/internal/errors"
)

// processColumnCount is the number of columns the process table renders.
const processColumnCount = 6

// Validate checks the config for values the renderers can't work with.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig, "No configuration provided", "Use config.DefaultConfig().")
	}

	if err := validateThresholds(cfg.Thresholds); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Invalid severity thresholds", "Elevated must sit below critical, both within 0-100.")
	}

	if err := validateTiming(cfg.Timing); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Invalid scheduler timing", "All durations and the refresh cadence must be positive.")
	}

	if err := validateLayout(cfg.Layout); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Invalid layout", "Check the column widths and panel proportions.")
	}

	if err := validateProcessTable(cfg.Processes); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Invalid process table settings", "Check the process column widths.")
	}

	return nil
}

func validateThresholds(t Thresholds) error {
	if math.IsNaN(t.Elevated) || math.IsNaN(t.Critical) {
		return fmt.Errorf("thresholds can't be NaN")
	}
	if t.Elevated < 0 || t.Critical > 100 {
		return fmt.Errorf("thresholds must be within 0-100 (got %.2f and %.2f)", t.Elevated, t.Critical)
	}
	if t.Elevated >= t.Critical {
		return fmt.Errorf("elevated (%.2f) must be below critical (%.2f)", t.Elevated, t.Critical)
	}
	return nil
}

func validateTiming(t Timing) error {
	if t.TickSleep <= 0 {
		return fmt.Errorf("tick sleep must be positive (got %s)", t.TickSleep)
	}
	if t.InputPoll <= 0 {
		return fmt.Errorf("input poll window must be positive (got %s)", t.InputPoll)
	}
	if t.RefreshEvery < 1 {
		return fmt.Errorf("refresh cadence must be at least 1 tick (got %d)", t.RefreshEvery)
	}
	if t.SampleTimeout <= 0 {
		return fmt.Errorf("sample timeout must be positive (got %s)", t.SampleTimeout)
	}
	return nil
}

func validateLayout(l Layout) error {
	if l.MetricsColumnWidth == 0 {
		return fmt.Errorf("metrics column width must be positive")
	}
	if l.BarWidth < 1 {
		return fmt.Errorf("bar width must be positive (got %d)", l.BarWidth)
	}
	fixed := int(l.CPUBasePercent) + int(l.MemoryPercent) + int(l.SwapPercent) + int(l.DiskPercent) + int(l.HostPercent)
	if fixed > 100 {
		return fmt.Errorf("panel proportions add up to %d%%, over 100%%", fixed)
	}
	return nil
}

func validateProcessTable(p ProcessTable) error {
	if p.NameMaxChars < 1 {
		return fmt.Errorf("name length must be positive (got %d)", p.NameMaxChars)
	}
	if len(p.ColumnPercents) != processColumnCount {
		return fmt.Errorf("expected %d column widths, got %d", processColumnCount, len(p.ColumnPercents))
	}
	sum := 0
	for _, c := range p.ColumnPercents {
		sum += int(c)
	}
	if sum > 100 {
		return fmt.Errorf("column widths add up to %d%%, over 100%%", sum)
	}
	return nil
}
