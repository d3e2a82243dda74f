package cli

import (
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/daypulse/daypulse/internal/domain"
)

func testPlan() *domain.DayPlanResponse {
	scores := make([]domain.HourlyScore, 24)
	for h := 0; h < 24; h++ {
		s := 40
		if h >= 9 && h < 13 {
			s = 82
		}
		scores[h] = domain.HourlyScore{Hour: h, Score: s}
	}
	primary := domain.FocusBlock{StartHour: 9, EndHour: 13, LengthHours: 4, AvgScore: 82.0}
	return &domain.DayPlanResponse{
		Date:       "2026-08-25",
		WakeTime:   "06:40",
		SleepHours: 7.5,
		Recovery: domain.RecoveryResult{
			Score:            0.81,
			Status:           domain.RecoveryExcellent,
			AvailableMetrics: 3,
		},
		Baseline:     domain.Baseline{Confidence: domain.ConfidenceGood},
		HourlyScores: scores,
		FocusBlocks:  []domain.FocusBlock{primary},
		DeepWork:     domain.DeepWorkPlan{Primary: &primary},
		EnergyFlow: domain.EnergyFlowPrediction{
			Windows: []domain.EnergyWindow{
				{Name: "Morning Peak", Start: "08:10", End: "11:10", Category: domain.EnergyHigh, BestFor: "Deep focused work"},
			},
		},
		Commentary: "Strong recovery; front-load demanding work.",
		Cautions:   []string{"Afternoon dip may run deep"},
	}
}

func TestRenderPlan(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	out := renderPlan(testPlan(), 70)

	for _, want := range []string{
		"2026-08-25",
		"wake 06:40",
		"(excellent)",
		"3/3 metrics, good baseline",
		"Primary deep work:",
		"09:00-13:00 (avg 82.0)",
		"Morning Peak",
		"Strong recovery; front-load demanding work.",
		"! Afternoon dip may run deep",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("renderPlan output missing %q", want)
		}
	}

	hourRow := regexp.MustCompile(`(?m)^  \d{2}:00 `)
	if got := len(hourRow.FindAllString(out, -1)); got != 24 {
		t.Errorf("rendered %d hourly rows, want 24", got)
	}
}

func TestRenderPlanNoBlocks(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	plan := testPlan()
	plan.DeepWork = domain.DeepWorkPlan{}
	plan.FocusBlocks = nil

	out := renderPlan(plan, 70)
	if !strings.Contains(out, "No deep-work block qualified today.") {
		t.Error("expected a no-block message")
	}
}
