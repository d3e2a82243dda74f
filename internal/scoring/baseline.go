package scoring

import (
	"math"

	"github.com/daypulse/daypulse/internal/domain"
)

// Below this many prior days the baseline confidence is reported low.
const baselineConfidentDays = 3

// ComputeBaseline builds rolling statistics from the samples of the trailing
// days preceding the scored date. Per-metric means and standard deviations
// use only days where the metric is present. An empty history yields a
// baseline with confidence "none"; scoring still proceeds, with the
// baseline-dependent metrics dropped by the recovery analyzer.
func ComputeBaseline(history []domain.WellnessSample) domain.Baseline {
	b := domain.Baseline{Days: len(history)}

	var hrv, rhr, sleep []float64
	for i := range history {
		s := &history[i]
		if s.HasHRV() {
			hrv = append(hrv, *s.HRVRMSSD)
		}
		if s.HasRestingHR() {
			rhr = append(rhr, *s.RestingHR)
		}
		if s.HasSleep() {
			sleep = append(sleep, s.SleepHours)
		}
	}

	b.HRVMean, b.HRVStd = meanStd(hrv)
	b.RHRMean, b.RHRStd = meanStd(rhr)
	b.SleepMean, _ = meanStd(sleep)
	b.HRVCount = len(hrv)
	b.RHRCount = len(rhr)
	b.SleepCount = len(sleep)

	switch {
	case b.Days == 0:
		b.Confidence = domain.ConfidenceNone
	case b.Days < baselineConfidentDays:
		b.Confidence = domain.ConfidenceLow
	default:
		b.Confidence = domain.ConfidenceGood
	}
	return b
}

// meanStd returns the mean and sample standard deviation. A single value has
// zero deviation; the recovery analyzer treats that as z = 0.
func meanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(len(values))

	if len(values) > 1 {
		sumSquares := 0.0
		for _, v := range values {
			diff := v - mean
			sumSquares += diff * diff
		}
		std = math.Sqrt(sumSquares / float64(len(values)-1))
	}
	return mean, std
}
