package scoring

import (
	"math"

	"github.com/daypulse/daypulse/internal/domain"
)

// Per-metric saturation thresholds. HRV scores saturate at +/-0.5 standard
// deviations from baseline; RHR at +/-3 bpm.
const (
	hrvOptimalZ  = 0.5
	hrvPoorZ     = -0.5
	rhrOptimalDev = -3.0
	rhrPoorDev    = 3.0

	sleepOptimalMin = 7.0
	sleepOptimalMax = 9.0
	oversleepPenalty = 0.1

	durationWeight = 0.7
	qualityWeight  = 0.3
)

// Recovery status thresholds, display only.
const (
	statusExcellentMin = 0.75
	statusGoodMin      = 0.60
	statusModerateMin  = 0.40
)

// RecoveryAnalyzer converts today's HRV, RHR, and sleep metrics plus the
// trailing baseline into a single normalized recovery score.
type RecoveryAnalyzer struct {
	params Params
}

// NewRecoveryAnalyzer creates a recovery analyzer with the given configuration.
func NewRecoveryAnalyzer(params Params) *RecoveryAnalyzer {
	return &RecoveryAnalyzer{params: params}
}

// HRVScore scores today's HRV against the baseline: 1.0 at z >= +0.5
// (inclusive), 0.0 at z <= -0.5, linear between. A zero or undefined
// baseline deviation yields z = 0, never a division by zero.
func (a *RecoveryAnalyzer) HRVScore(current, baselineMean, baselineStd float64) float64 {
	z := 0.0
	if baselineStd > 0 && !math.IsNaN(baselineStd) && !math.IsInf(baselineStd, 0) {
		z = (current - baselineMean) / baselineStd
	}

	switch {
	case z >= hrvOptimalZ:
		return 1.0
	case z <= hrvPoorZ:
		return 0.0
	default:
		return clamp01((z - hrvPoorZ) / (hrvOptimalZ - hrvPoorZ))
	}
}

// RHRScore scores today's resting heart rate against the baseline mean.
// Lower is better: 1.0 at 3 bpm below baseline, 0.0 at 3 bpm above.
func (a *RecoveryAnalyzer) RHRScore(current, baselineMean float64) float64 {
	deviation := current - baselineMean

	switch {
	case deviation <= rhrOptimalDev:
		return 1.0
	case deviation >= rhrPoorDev:
		return 0.0
	default:
		return clamp01(1.0 - (deviation-rhrOptimalDev)/(rhrPoorDev-rhrOptimalDev))
	}
}

// SleepScore scores sleep duration (optimal 7-9h) blended with the subjective
// quality rating when present. Without a rating the duration component
// carries full weight.
func (a *RecoveryAnalyzer) SleepScore(sleepHours float64, quality *int) float64 {
	var duration float64
	switch {
	case sleepHours >= sleepOptimalMin && sleepHours <= sleepOptimalMax:
		duration = 1.0
	case sleepHours < sleepOptimalMin:
		duration = math.Max(0, sleepHours/sleepOptimalMin)
	default:
		duration = math.Max(0.5, 1.0-(sleepHours-sleepOptimalMax)*oversleepPenalty)
	}

	if quality == nil {
		return clamp01(duration)
	}

	q := clamp(float64(*quality), 1, 5)
	qualityScore := (q - 1) / 4
	return clamp01(durationWeight*duration + qualityWeight*qualityScore)
}

// Analyze produces the day's recovery result. Metrics missing from the
// sample or unsupported by the baseline are dropped and the remaining
// weights renormalized; only total absence of usable signal is fatal and
// surfaces as domain.ErrDataInsufficient.
func (a *RecoveryAnalyzer) Analyze(sample *domain.WellnessSample, baseline domain.Baseline) (domain.RecoveryResult, error) {
	result := domain.RecoveryResult{}

	type component struct {
		score  float64
		weight float64
	}
	var components []component

	if sample.HasHRV() && baseline.HRVCount > 0 {
		s := a.HRVScore(*sample.HRVRMSSD, baseline.HRVMean, baseline.HRVStd)
		result.HRVScore = &s
		components = append(components, component{s, a.params.HRVWeight})
	}
	if sample.HasRestingHR() && baseline.RHRCount > 0 {
		s := a.RHRScore(*sample.RestingHR, baseline.RHRMean)
		result.RHRScore = &s
		components = append(components, component{s, a.params.RHRWeight})
	}
	if sample.HasSleep() {
		s := a.SleepScore(sample.SleepHours, sample.SleepQuality)
		result.SleepScore = &s
		components = append(components, component{s, a.params.SleepWeight})
	}

	if len(components) == 0 {
		return result, domain.ErrDataInsufficient
	}

	totalWeight := 0.0
	for _, c := range components {
		totalWeight += c.weight
	}
	score := 0.0
	for _, c := range components {
		score += c.score * (c.weight / totalWeight)
	}

	result.Score = clamp01(score)
	result.Status = recoveryStatus(result.Score)
	result.AvailableMetrics = len(components)
	return result, nil
}

func recoveryStatus(score float64) domain.RecoveryStatus {
	switch {
	case score >= statusExcellentMin:
		return domain.RecoveryExcellent
	case score >= statusGoodMin:
		return domain.RecoveryGood
	case score >= statusModerateMin:
		return domain.RecoveryModerate
	default:
		return domain.RecoveryPoor
	}
}
