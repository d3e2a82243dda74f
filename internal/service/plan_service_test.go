package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/daypulse/daypulse/internal/domain"
	"github.com/daypulse/daypulse/internal/scoring"
)

func fptr(f float64) *float64 { return &f }

// seedWeek fills the repo with a steady trailing week plus the scored day.
func seedWeek(repo *MockWellnessRepository, scoredDate string, scoredSample *domain.WellnessSample) {
	day, _ := time.Parse("2006-01-02", scoredDate)
	for i := 1; i <= 7; i++ {
		date := day.AddDate(0, 0, -i).Format("2006-01-02")
		repo.samples[date] = &domain.WellnessSample{
			Date:       date,
			SleepHours: 7.5,
			HRVRMSSD:   fptr(60),
			RestingHR:  fptr(52),
			Source:     domain.SourceIntervals,
		}
	}
	repo.samples[scoredDate] = scoredSample
}

func wakeAt(date string, hour, minute int) *time.Time {
	day, _ := time.Parse("2006-01-02", date)
	t := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	return &t
}

func TestPlanServicePlan(t *testing.T) {
	repo := NewMockWellnessRepository()
	reports := NewMockReportRepository()
	seedWeek(repo, "2026-08-25", &domain.WellnessSample{
		Date:       "2026-08-25",
		SleepHours: 8.0,
		SleepEnd:   wakeAt("2026-08-25", 6, 40),
		HRVRMSSD:   fptr(66),
		RestingHR:  fptr(50),
		Source:     domain.SourceIntervals,
	})

	svc := NewPlanService(repo, reports, nil, scoring.DefaultParams(), 16)
	plan, err := svc.Plan(context.Background(), "2026-08-25")
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	if plan.WakeTime != "06:40" {
		t.Errorf("WakeTime = %s, want 06:40", plan.WakeTime)
	}
	if plan.SleepHours != 8.0 {
		t.Errorf("SleepHours = %v, want 8.0", plan.SleepHours)
	}
	if len(plan.HourlyScores) != 24 {
		t.Errorf("len(HourlyScores) = %d, want 24", len(plan.HourlyScores))
	}
	if len(plan.PeakHours) != 5 || len(plan.LowHours) != 3 {
		t.Errorf("peak/low sizes = %d/%d, want 5/3", len(plan.PeakHours), len(plan.LowHours))
	}
	if plan.Recovery.AvailableMetrics != 3 {
		t.Errorf("AvailableMetrics = %d, want 3", plan.Recovery.AvailableMetrics)
	}
	if plan.Baseline.Confidence != domain.ConfidenceGood {
		t.Errorf("baseline confidence = %s, want good", plan.Baseline.Confidence)
	}
	// A well-rested day over a steady baseline must produce usable blocks.
	if len(plan.FocusBlocks) == 0 || plan.DeepWork.Primary == nil {
		t.Errorf("expected focus blocks and a primary window, got %+v", plan.DeepWork)
	}
	if plan.SleepDebt == nil {
		t.Error("SleepDebt missing")
	}
	if plan.Commentary != "" {
		t.Errorf("Commentary = %q, want empty without advisor", plan.Commentary)
	}

	report, err := reports.GetByDate(context.Background(), "2026-08-25")
	if err != nil {
		t.Fatalf("report not persisted: %v", err)
	}
	if report.RecoveryScore != plan.Recovery.Score || len(report.PlanJSON) == 0 {
		t.Errorf("report = %+v", report)
	}
}

func TestPlanServiceCachesAndInvalidates(t *testing.T) {
	repo := NewMockWellnessRepository()
	advisor := &MockAdvisoryLLM{output: &domain.AdvisoryOutput{Commentary: "solid day"}}
	seedWeek(repo, "2026-08-25", &domain.WellnessSample{
		Date: "2026-08-25", SleepHours: 7.5, HRVRMSSD: fptr(61), Source: domain.SourceIntervals,
	})

	svc := NewPlanService(repo, nil, advisor, scoring.DefaultParams(), 16)

	if _, err := svc.Plan(context.Background(), "2026-08-25"); err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if _, err := svc.Plan(context.Background(), "2026-08-25"); err != nil {
		t.Fatalf("Plan (cached): %v", err)
	}
	if advisor.calls != 1 {
		t.Errorf("advisor calls = %d, want 1 (second hit served from cache)", advisor.calls)
	}

	svc.InvalidateFrom("2026-08-25")
	if _, err := svc.Plan(context.Background(), "2026-08-25"); err != nil {
		t.Fatalf("Plan (recomputed): %v", err)
	}
	if advisor.calls != 2 {
		t.Errorf("advisor calls = %d, want 2 after invalidation", advisor.calls)
	}
}

func TestPlanServiceAdvisoryFailureIsNonFatal(t *testing.T) {
	repo := NewMockWellnessRepository()
	advisor := &MockAdvisoryLLM{err: errors.New("model overloaded")}
	seedWeek(repo, "2026-08-25", &domain.WellnessSample{
		Date: "2026-08-25", SleepHours: 7.5, Source: domain.SourceManual,
	})

	svc := NewPlanService(repo, nil, advisor, scoring.DefaultParams(), 16)
	plan, err := svc.Plan(context.Background(), "2026-08-25")
	if err != nil {
		t.Fatalf("Plan should survive advisory failure: %v", err)
	}
	if plan.Commentary != "" || plan.Cautions != nil {
		t.Errorf("failed advisory must leave commentary empty: %+v", plan)
	}
}

func TestPlanServiceAdvisoryPreferenceBreaksTies(t *testing.T) {
	repo := NewMockWellnessRepository()
	seedWeek(repo, "2026-08-25", &domain.WellnessSample{
		Date: "2026-08-25", SleepHours: 8.0, HRVRMSSD: fptr(66), RestingHR: fptr(50),
		SleepEnd: wakeAt("2026-08-25", 7, 0), Source: domain.SourceIntervals,
	})

	// Compute once without preference to discover the tied blocks.
	base, err := NewPlanService(repo, nil, nil, scoring.DefaultParams(), 16).Plan(context.Background(), "2026-08-25")
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(base.FocusBlocks) < 2 {
		t.Skipf("need at least two focus blocks, got %d", len(base.FocusBlocks))
	}

	last := base.FocusBlocks[len(base.FocusBlocks)-1]
	advisor := &MockAdvisoryLLM{output: &domain.AdvisoryOutput{
		Commentary:      "prefer the later window",
		BlockPreference: []int{last.StartHour},
	}}
	svc := NewPlanService(repo, nil, advisor, scoring.DefaultParams(), 16)
	plan, err := svc.Plan(context.Background(), "2026-08-25")
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if plan.DeepWork.Primary == nil {
		t.Fatal("no primary block")
	}
	// The preference may only win where average scores tie.
	if last.AvgScore == base.DeepWork.Primary.AvgScore && plan.DeepWork.Primary.StartHour != last.StartHour {
		t.Errorf("tied preference ignored: primary starts %d, want %d", plan.DeepWork.Primary.StartHour, last.StartHour)
	}
	if last.AvgScore < base.DeepWork.Primary.AvgScore && plan.DeepWork.Primary.StartHour != base.DeepWork.Primary.StartHour {
		t.Errorf("preference promoted a lower-scoring block to primary")
	}
}

func TestPlanServiceUnknownDate(t *testing.T) {
	svc := NewPlanService(NewMockWellnessRepository(), nil, nil, scoring.DefaultParams(), 16)
	if _, err := svc.Plan(context.Background(), "2026-08-25"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestPlanServiceDataInsufficient(t *testing.T) {
	repo := NewMockWellnessRepository()
	repo.samples["2026-08-25"] = &domain.WellnessSample{
		Date: "2026-08-25", SleepHours: 0, Source: domain.SourceManual,
	}

	svc := NewPlanService(repo, nil, nil, scoring.DefaultParams(), 16)
	if _, err := svc.Plan(context.Background(), "2026-08-25"); !errors.Is(err, domain.ErrDataInsufficient) {
		t.Errorf("err = %v, want ErrDataInsufficient", err)
	}
}

func TestPlanServiceDefaultsWithoutWakeTime(t *testing.T) {
	repo := NewMockWellnessRepository()
	seedWeek(repo, "2026-08-25", &domain.WellnessSample{
		Date: "2026-08-25", SleepHours: 7.5, Source: domain.SourceManual,
	})

	params := scoring.DefaultParams()
	params.DefaultWakeTime = "06:15"
	svc := NewPlanService(repo, nil, nil, params, 16)

	plan, err := svc.Plan(context.Background(), "2026-08-25")
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if plan.WakeTime != "06:15" {
		t.Errorf("WakeTime = %s, want configured default 06:15", plan.WakeTime)
	}
}

func TestPlanServicePartialViews(t *testing.T) {
	repo := NewMockWellnessRepository()
	seedWeek(repo, "2026-08-25", &domain.WellnessSample{
		Date: "2026-08-25", SleepHours: 7.8, SleepEnd: wakeAt("2026-08-25", 13, 49),
		Source: domain.SourceIntervals,
	})

	svc := NewPlanService(repo, nil, nil, scoring.DefaultParams(), 16)

	flow, err := svc.EnergyFlow(context.Background(), "2026-08-25")
	if err != nil {
		t.Fatalf("EnergyFlow: %v", err)
	}
	if flow.WakeTime != "13:49" {
		t.Errorf("WakeTime = %s, want 13:49", flow.WakeTime)
	}
	var morningPeak *domain.EnergyWindow
	for i := range flow.Windows {
		if flow.Windows[i].Name == "Morning Peak" {
			morningPeak = &flow.Windows[i]
		}
	}
	if morningPeak == nil {
		t.Fatal("Morning Peak window missing")
	}
	if morningPeak.Start != "15:19" || morningPeak.End != "18:19" {
		t.Errorf("Morning Peak = %s-%s, want 15:19-18:19", morningPeak.Start, morningPeak.End)
	}

	recovery, err := svc.Recovery(context.Background(), "2026-08-25")
	if err != nil {
		t.Fatalf("Recovery: %v", err)
	}
	if recovery.Score < 0 || recovery.Score > 1 {
		t.Errorf("Score = %v, want [0,1]", recovery.Score)
	}
}

func TestPlanServiceInvalidDate(t *testing.T) {
	repo := NewMockWellnessRepository()
	repo.samples["not-a-date"] = &domain.WellnessSample{Date: "not-a-date", SleepHours: 7}

	svc := NewPlanService(repo, nil, nil, scoring.DefaultParams(), 16)
	if _, err := svc.Plan(context.Background(), "not-a-date"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestPlanServiceLowConfidenceBaseline(t *testing.T) {
	repo := NewMockWellnessRepository()
	repo.samples["2026-08-24"] = &domain.WellnessSample{
		Date: "2026-08-24", SleepHours: 7.2, HRVRMSSD: fptr(59), Source: domain.SourceIntervals,
	}
	repo.samples["2026-08-25"] = &domain.WellnessSample{
		Date: "2026-08-25", SleepHours: 7.5, HRVRMSSD: fptr(62), Source: domain.SourceIntervals,
	}

	svc := NewPlanService(repo, nil, nil, scoring.DefaultParams(), 16)
	plan, err := svc.Plan(context.Background(), "2026-08-25")
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if plan.Baseline.Confidence != domain.ConfidenceLow {
		t.Errorf("Confidence = %s, want low", plan.Baseline.Confidence)
	}
}
