package scoring

import (
	"math"
	"testing"

	"github.com/daypulse/daypulse/internal/domain"
)

func TestComputeBaseline(t *testing.T) {
	history := []domain.WellnessSample{
		{Date: "2026-08-19", SleepHours: 7.0, HRVRMSSD: floatPtr(58), RestingHR: floatPtr(52)},
		{Date: "2026-08-20", SleepHours: 7.5, HRVRMSSD: floatPtr(62), RestingHR: floatPtr(51)},
		{Date: "2026-08-21", SleepHours: 8.0, HRVRMSSD: floatPtr(60)},
		{Date: "2026-08-22", SleepHours: 0, RestingHR: floatPtr(53)},
	}

	b := ComputeBaseline(history)

	if b.Days != 4 {
		t.Errorf("Days = %d, want 4", b.Days)
	}
	if b.Confidence != domain.ConfidenceGood {
		t.Errorf("Confidence = %s, want %s", b.Confidence, domain.ConfidenceGood)
	}
	if b.HRVCount != 3 || b.RHRCount != 3 || b.SleepCount != 3 {
		t.Errorf("counts = %d/%d/%d, want 3/3/3", b.HRVCount, b.RHRCount, b.SleepCount)
	}
	if math.Abs(b.HRVMean-60) > 1e-9 {
		t.Errorf("HRVMean = %v, want 60", b.HRVMean)
	}
	if math.Abs(b.HRVStd-2) > 1e-9 {
		t.Errorf("HRVStd = %v, want 2 (sample std)", b.HRVStd)
	}
	if math.Abs(b.SleepMean-7.5) > 1e-9 {
		t.Errorf("SleepMean = %v, want 7.5", b.SleepMean)
	}
}

func TestComputeBaselineConfidence(t *testing.T) {
	tests := []struct {
		name string
		days int
		want domain.BaselineConfidence
	}{
		{"empty history", 0, domain.ConfidenceNone},
		{"below threshold", 2, domain.ConfidenceLow},
		{"at threshold", 3, domain.ConfidenceGood},
		{"full week", 7, domain.ConfidenceGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := make([]domain.WellnessSample, tt.days)
			for i := range history {
				history[i] = domain.WellnessSample{SleepHours: 7.5}
			}
			if got := ComputeBaseline(history).Confidence; got != tt.want {
				t.Errorf("Confidence = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestComputeBaselineIgnoresUnusableValues(t *testing.T) {
	history := []domain.WellnessSample{
		{SleepHours: 7.5, HRVRMSSD: floatPtr(math.NaN()), RestingHR: floatPtr(math.Inf(-1))},
		{SleepHours: 7.5, HRVRMSSD: floatPtr(60)},
	}

	b := ComputeBaseline(history)
	if b.HRVCount != 1 {
		t.Errorf("HRVCount = %d, want 1", b.HRVCount)
	}
	if b.RHRCount != 0 {
		t.Errorf("RHRCount = %d, want 0", b.RHRCount)
	}
	if b.HRVStd != 0 {
		t.Errorf("single sample std = %v, want 0", b.HRVStd)
	}
}
