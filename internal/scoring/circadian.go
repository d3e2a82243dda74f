package scoring

import (
	"fmt"
	"math"

	"github.com/daypulse/daypulse/internal/domain"
)

// Two-process model constants. Process C is anchored to clock time; the
// energy-flow windows are anchored to hours after waking. Window boundaries
// are fixed; only the wake-time anchor adapts per day.
const (
	// Process C: sinusoid peaking mid-morning with an afternoon dip
	circadianPeakHour     = 10.0
	circadianAmplitude    = 0.30
	postLunchDipHour      = 14.5
	postLunchDipMagnitude = 0.15
	postLunchDipWidth     = 2.0

	// Process S: rate adjustment for sleep deficit/surplus
	pressureRateSlope = 0.5
	pressureRateMin   = 0.5
	pressureRateMax   = 1.5

	// Wake-anchored energy landmarks (hours after waking)
	firstPeakOffset    = 3.0
	dipOffset          = 7.0
	secondPeakOffset   = 10.0
	declineStartOffset = 14.0

	// Energy-curve anchor intensities
	wakeEnergy       = 0.35
	rampedEnergy     = 0.70
	firstPeakEnergy  = 0.95
	dipEnergy        = 0.55
	secondPeakEnergy = 0.85
	declineEnergy    = 0.45
	declineFloor     = 0.30
	declineRate      = 0.10
	asleepEnergy     = 0.20

	rampDuration   = 0.5
	declineEnd     = 16.0
)

// energyAnchors defines the wake-anchored energy curve as piecewise-linear
// segments between landmark offsets. Sampling at a window's midpoint offset
// recovers the landmark intensity for that window.
var energyAnchors = []struct{ offset, level float64 }{
	{0.0, wakeEnergy},
	{rampDuration, rampedEnergy},
	{firstPeakOffset, firstPeakEnergy},
	{dipOffset, dipEnergy},
	{secondPeakOffset, secondPeakEnergy},
	{declineStartOffset, declineEnergy},
	{declineEnd, declineEnergy},
}

// CircadianModel maps wake time and elapsed wakefulness to alertness, and
// produces wake-anchored energy-flow predictions.
type CircadianModel struct {
	params Params
}

// NewCircadianModel creates a circadian model with the given configuration.
func NewCircadianModel(params Params) *CircadianModel {
	return &CircadianModel{params: params}
}

// circadianFactor computes Process C for a clock hour: a 24-hour sinusoid
// peaking at circadianPeakHour with a Gaussian mid-afternoon dip, amplitude
// expanded and clamped to [0,1]. Clock-anchored, independent of wake time.
func (m *CircadianModel) circadianFactor(clockHour float64) float64 {
	phaseShift := (circadianPeakHour - 6) / 24 * 2 * math.Pi
	base := math.Sin(2*math.Pi*clockHour/24 - phaseShift)
	factor := (base + 1) / 2

	dip := postLunchDipMagnitude * math.Exp(
		-math.Pow(clockHour-postLunchDipHour, 2)/(2*postLunchDipWidth*postLunchDipWidth))
	factor = math.Max(0, factor-dip)

	factor = 0.5 + (factor-0.5)*(1+circadianAmplitude)
	return clamp01(factor)
}

// SleepPressure computes Process S: zero at waking, rising linearly with
// elapsed wakefulness and saturating to 1.0 at the configured full-wakefulness
// duration. A sleep deficit raises the accumulation rate and a surplus lowers
// it; the rate is bounded so buildup never stops or reverses.
func (m *CircadianModel) SleepPressure(hoursAwake, sleepHours float64) float64 {
	if hoursAwake < 0 {
		hoursAwake = 0
	}
	if !isUsableHours(sleepHours) {
		sleepHours = m.params.DefaultSleepHours
	}

	deficit := (m.params.OptimalSleepHours - sleepHours) / m.params.OptimalSleepHours
	rate := clamp(1+pressureRateSlope*deficit, pressureRateMin, pressureRateMax)

	return clamp01(hoursAwake / m.params.PressureSaturationHours * rate)
}

// Alertness combines Process C and Process S for a wake-relative instant:
// circadian * (1 - pressure*damping), clamped to [0,1]. hoursSinceWake may
// exceed 24; pressure stays saturated past the clamp point.
func (m *CircadianModel) Alertness(wakeHour, hoursSinceWake, sleepHours float64) float64 {
	clockHour := math.Mod(wakeHour+hoursSinceWake, 24)
	if clockHour < 0 {
		clockHour += 24
	}

	circadian := m.circadianFactor(clockHour)
	pressure := m.SleepPressure(hoursSinceWake, sleepHours)

	return clamp01(circadian * (1 - pressure*m.params.PressureDamping))
}

// windowEnergy samples the wake-anchored energy curve at an offset. The curve
// interpolates linearly between anchors; past the decline plateau it falls by
// declineRate per hour down to a floor. Offsets before waking map to a
// minimal asleep level.
func windowEnergy(hoursAfterWake float64) float64 {
	if hoursAfterWake < 0 {
		return asleepEnergy
	}
	last := energyAnchors[len(energyAnchors)-1]
	if hoursAfterWake >= last.offset {
		return math.Max(declineFloor, last.level-declineRate*(hoursAfterWake-last.offset))
	}
	for i := 1; i < len(energyAnchors); i++ {
		a, b := energyAnchors[i-1], energyAnchors[i]
		if hoursAfterWake <= b.offset {
			t := (hoursAfterWake - a.offset) / (b.offset - a.offset)
			return a.level + t*(b.level-a.level)
		}
	}
	return last.level
}

// EnergyFlowPrediction builds the day's energy forecast anchored to wake
// time. Window boundaries are fixed offsets after waking; each window's
// energy level samples the curve at the window midpoint, scaled by the sleep
// factor min(1, sleep/optimal).
func (m *CircadianModel) EnergyFlowPrediction(wakeHour, sleepHours float64) domain.EnergyFlowPrediction {
	if !isUsableHours(sleepHours) {
		sleepHours = m.params.DefaultSleepHours
	}
	sleepFactor := math.Min(1.0, sleepHours/m.params.OptimalSleepHours)

	type windowSpec struct {
		name     string
		start    float64
		end      float64
		category domain.EnergyCategory
		bestFor  string
	}
	specs := []windowSpec{
		{"Wake-Up Ramp", 0, rampDuration, domain.EnergyRising, "Light movement, planning, hydration"},
		{"Morning Peak", firstPeakOffset - 1.5, firstPeakOffset + 1.5, domain.EnergyHigh, "Deep focused work, complex problem solving"},
		{"Post-Lunch Dip", dipOffset - 1.0, dipOffset + 1.0, domain.EnergyLow, "Light tasks, email, breaks, naps"},
		{"Afternoon Peak", secondPeakOffset - 1.5, secondPeakOffset + 1.5, domain.EnergyHigh, "Creative work, collaboration, second deep work session"},
		{"Evening Decline", declineStartOffset, declineEnd, domain.EnergyLow, "Wind down, planning for tomorrow, light reading"},
	}

	windows := make([]domain.EnergyWindow, 0, len(specs))
	for _, s := range specs {
		mid := (s.start + s.end) / 2
		level := int(math.Round(windowEnergy(mid) * sleepFactor * 100))
		windows = append(windows, domain.EnergyWindow{
			Name:             s.name,
			StartOffsetHours: s.start,
			EndOffsetHours:   s.end,
			Start:            FormatClock(wakeHour + s.start),
			End:              FormatClock(wakeHour + s.end),
			EnergyLevel:      level,
			Category:         s.category,
			BestFor:          s.bestFor,
		})
	}

	peaks := domain.PeakTimes{
		FirstPeak:     FormatClock(wakeHour + firstPeakOffset),
		SecondPeak:    FormatClock(wakeHour + secondPeakOffset),
		EnergyDip:     FormatClock(wakeHour + dipOffset),
		DeclineStarts: FormatClock(wakeHour + declineStartOffset),
	}

	summary := fmt.Sprintf(
		"Based on waking at %s, your peak energy windows are %s-%s and %s-%s. Avoid demanding tasks around %s.",
		FormatClock(wakeHour),
		windows[1].Start, windows[1].End,
		windows[3].Start, windows[3].End,
		peaks.EnergyDip,
	)

	return domain.EnergyFlowPrediction{
		WakeTime:           FormatClock(wakeHour),
		SleepHours:         sleepHours,
		SleepQualityFactor: math.Round(sleepFactor*100) / 100,
		Windows:            windows,
		PeakTimes:          peaks,
		Summary:            summary,
	}
}

func isUsableHours(h float64) bool {
	return !math.IsNaN(h) && !math.IsInf(h, 0) && h > 0
}
