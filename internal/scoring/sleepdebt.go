package scoring

import (
	"math"
	"sort"

	"github.com/daypulse/daypulse/internal/domain"
)

// Sleep-debt model: Debt(today) = Debt(yesterday)*decay + (need - actual),
// clamped to [0, maxDebt].
const (
	debtDecayFactor  = 0.85
	maxDebt          = 40.0
	defaultSleepNeed = 8.0

	debtNoneMax     = 1.0
	debtLowMax      = 5.0
	debtModerateMax = 15.0
	debtHighMax     = 25.0

	debtMaxImpact       = 0.5
	debtRecoveryMaxDays = 30
)

// SleepDebtCalculator tracks cumulative sleep deficit with daily decay.
// Reported alongside recovery; it does not feed the recovery score.
type SleepDebtCalculator struct{}

// NewSleepDebtCalculator creates a sleep debt calculator.
func NewSleepDebtCalculator() *SleepDebtCalculator {
	return &SleepDebtCalculator{}
}

// DailyDebt rolls the debt forward one day. A day without sleep data still
// decays the carried debt.
func (c *SleepDebtCalculator) DailyDebt(previousDebt, actualSleep, sleepNeed float64) float64 {
	if math.IsNaN(previousDebt) || previousDebt < 0 {
		previousDebt = 0
	}
	if !isUsableHours(sleepNeed) {
		sleepNeed = defaultSleepNeed
	}

	decayed := previousDebt * debtDecayFactor
	if !isUsableHours(actualSleep) {
		return round2(clamp(decayed, 0, maxDebt))
	}

	return round2(clamp(decayed+(sleepNeed-actualSleep), 0, maxDebt))
}

// Accumulate folds the debt model over a date-ordered history ending with
// today's sample, starting from zero debt. sleepNeed falls back to the
// baseline sleep mean, then to the default need.
func (c *SleepDebtCalculator) Accumulate(history []domain.WellnessSample, today *domain.WellnessSample, baselineSleepMean float64) domain.SleepDebtStatus {
	need := baselineSleepMean
	if !isUsableHours(need) {
		need = defaultSleepNeed
	}

	ordered := make([]domain.WellnessSample, len(history))
	copy(ordered, history)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Date < ordered[j].Date })

	debt := 0.0
	for i := range ordered {
		debt = c.DailyDebt(debt, sleepOrNaN(&ordered[i]), need)
	}
	if today != nil {
		debt = c.DailyDebt(debt, sleepOrNaN(today), need)
	}

	return domain.SleepDebtStatus{
		Hours:        debt,
		Category:     c.Category(debt),
		ImpactFactor: c.ImpactFactor(debt),
		RecoveryDays: c.EstimateRecoveryDays(debt, 1.0),
	}
}

// Category labels the debt level.
func (c *SleepDebtCalculator) Category(debt float64) string {
	switch {
	case debt < debtNoneMax:
		return "none"
	case debt < debtLowMax:
		return "low"
	case debt < debtModerateMax:
		return "moderate"
	case debt < debtHighMax:
		return "high"
	default:
		return "severe"
	}
}

// ImpactFactor maps debt to a recovery-capacity factor: 1.0 at no debt
// declining linearly to 0.5 at the debt ceiling.
func (c *SleepDebtCalculator) ImpactFactor(debt float64) float64 {
	return clamp(1.0-(debt/maxDebt)*debtMaxImpact, debtMaxImpact, 1.0)
}

// EstimateRecoveryDays simulates day-by-day debt reduction assuming a
// constant nightly surplus, capped at debtRecoveryMaxDays.
func (c *SleepDebtCalculator) EstimateRecoveryDays(debt, nightlySurplus float64) int {
	if debt < debtNoneMax {
		return 0
	}
	days := 0
	for debt >= debtNoneMax && days < debtRecoveryMaxDays {
		debt = math.Max(0, debt*debtDecayFactor-nightlySurplus)
		days++
	}
	return days
}

func sleepOrNaN(s *domain.WellnessSample) float64 {
	if s.HasSleep() {
		return s.SleepHours
	}
	return math.NaN()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
