// Package scoring implements the adaptive circadian-recovery productivity
// engine: a pure, deterministic computation from one day's wellness sample
// and its trailing baseline to recovery, hourly productivity scores, an
// energy-flow prediction, and ranked deep-work windows. The package performs
// no I/O; callers resolve all inputs first.
package scoring

import (
	"fmt"
	"math"

	"github.com/daypulse/daypulse/internal/domain"
)

// Params is the immutable configuration consumed by the engine. Construct
// with DefaultParams and override fields before calling Validate.
type Params struct {
	// Fallback wake time (HH:MM) when a sample lacks sleep_end
	DefaultWakeTime string
	// Fallback sleep duration when a sample lacks one
	DefaultSleepHours float64
	// Sleep duration at which pressure accumulates at the nominal rate
	OptimalSleepHours float64
	// Hours awake at which sleep pressure saturates to 1.0
	PressureSaturationHours float64
	// How strongly sleep pressure suppresses circadian alertness
	PressureDamping float64

	// Recovery component weights (renormalized over available metrics)
	HRVWeight   float64
	RHRWeight   float64
	SleepWeight float64

	// Productivity combination weights
	CircadianWeight float64
	RecoveryWeight  float64

	// Minimum hourly score for focus-block membership
	FocusThreshold int
	// Minimum contiguous hours for a focus block
	MinFocusBlockHours int

	// Sizes of the derived peak/low hour lists
	PeakHoursCount int
	LowHoursCount  int
}

// DefaultParams returns the engine defaults.
func DefaultParams() Params {
	return Params{
		DefaultWakeTime:         "07:00",
		DefaultSleepHours:       7.5,
		OptimalSleepHours:       7.5,
		PressureSaturationHours: 16.0,
		PressureDamping:         0.7,
		HRVWeight:               0.45,
		RHRWeight:               0.35,
		SleepWeight:             0.20,
		CircadianWeight:         0.5,
		RecoveryWeight:          0.5,
		FocusThreshold:          70,
		MinFocusBlockHours:      2,
		PeakHoursCount:          5,
		LowHoursCount:           3,
	}
}

// Validate checks the configuration at startup. Any violation wraps
// domain.ErrConfiguration and is fatal for the caller.
func (p Params) Validate() error {
	if p.HRVWeight < 0 || p.RHRWeight < 0 || p.SleepWeight < 0 {
		return fmt.Errorf("%w: recovery weights must be non-negative", domain.ErrConfiguration)
	}
	if sum := p.HRVWeight + p.RHRWeight + p.SleepWeight; math.Abs(sum-1.0) > 1e-6 {
		return fmt.Errorf("%w: recovery weights sum to %.3f, want 1.0", domain.ErrConfiguration, sum)
	}
	if p.CircadianWeight < 0 || p.RecoveryWeight < 0 {
		return fmt.Errorf("%w: productivity weights must be non-negative", domain.ErrConfiguration)
	}
	if sum := p.CircadianWeight + p.RecoveryWeight; math.Abs(sum-1.0) > 1e-6 {
		return fmt.Errorf("%w: productivity weights sum to %.3f, want 1.0", domain.ErrConfiguration, sum)
	}
	if p.FocusThreshold < 0 || p.FocusThreshold > 100 {
		return fmt.Errorf("%w: focus threshold %d outside [0,100]", domain.ErrConfiguration, p.FocusThreshold)
	}
	if p.MinFocusBlockHours < 1 {
		return fmt.Errorf("%w: min focus block hours must be at least 1", domain.ErrConfiguration)
	}
	if p.PeakHoursCount < 1 || p.LowHoursCount < 1 {
		return fmt.Errorf("%w: peak/low list sizes must be at least 1", domain.ErrConfiguration)
	}
	if p.PressureSaturationHours <= 0 {
		return fmt.Errorf("%w: pressure saturation hours must be positive", domain.ErrConfiguration)
	}
	if p.PressureDamping < 0 || p.PressureDamping > 1 {
		return fmt.Errorf("%w: pressure damping %.2f outside [0,1]", domain.ErrConfiguration, p.PressureDamping)
	}
	if p.DefaultSleepHours <= 0 || p.OptimalSleepHours <= 0 {
		return fmt.Errorf("%w: default/optimal sleep hours must be positive", domain.ErrConfiguration)
	}
	if _, err := ParseClock(p.DefaultWakeTime); err != nil {
		return fmt.Errorf("%w: default wake time: %v", domain.ErrConfiguration, err)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
