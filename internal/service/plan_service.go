package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/maypok86/otter/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/daypulse/daypulse/internal/domain"
	"github.com/daypulse/daypulse/internal/llm"
	"github.com/daypulse/daypulse/internal/repository"
	"github.com/daypulse/daypulse/internal/scoring"
)

const (
	// Trailing window feeding the baseline statistics
	BaselineWindowDays = 7
	// How long a computed plan stays cached before recomputation
	planCacheTTL = 15 * time.Minute
)

// PlanService computes the full day plan and its partial views.
type PlanService interface {
	// Plan returns the complete scoring output for a date (YYYY-MM-DD).
	Plan(ctx context.Context, date string) (*domain.DayPlanResponse, error)
	// EnergyFlow returns only the wake-anchored energy prediction.
	EnergyFlow(ctx context.Context, date string) (*domain.EnergyFlowPrediction, error)
	// Recovery returns only the recovery analysis.
	Recovery(ctx context.Context, date string) (*domain.RecoveryResult, error)
	// InvalidateFrom drops cached plans for date and the following days
	// whose baselines it feeds.
	InvalidateFrom(date string)
}

type planService struct {
	sampleRepo repository.WellnessRepository
	reportRepo repository.ReportRepository
	advisor    llm.AdvisoryLLM

	circadian *scoring.CircadianModel
	analyzer  *scoring.RecoveryAnalyzer
	calc      *scoring.ProductivityCalculator
	selector  *scoring.DeepWorkSelector
	debt      *scoring.SleepDebtCalculator
	params    scoring.Params

	cache *otter.Cache[string, domain.DayPlanResponse]
}

// NewPlanService creates the plan service. advisor may be nil; plans are then
// produced without commentary. cacheSize bounds the number of cached plans.
func NewPlanService(
	sampleRepo repository.WellnessRepository,
	reportRepo repository.ReportRepository,
	advisor llm.AdvisoryLLM,
	params scoring.Params,
	cacheSize int,
) PlanService {
	circadian := scoring.NewCircadianModel(params)
	cache := otter.Must(&otter.Options[string, domain.DayPlanResponse]{
		MaximumSize:      cacheSize,
		ExpiryCalculator: otter.ExpiryWriting[string, domain.DayPlanResponse](planCacheTTL),
	})

	return &planService{
		sampleRepo: sampleRepo,
		reportRepo: reportRepo,
		advisor:    advisor,
		circadian:  circadian,
		analyzer:   scoring.NewRecoveryAnalyzer(params),
		calc:       scoring.NewProductivityCalculator(circadian, params),
		selector:   scoring.NewDeepWorkSelector(params),
		debt:       scoring.NewSleepDebtCalculator(),
		params:     params,
		cache:      cache,
	}
}

func (s *planService) Plan(ctx context.Context, date string) (*domain.DayPlanResponse, error) {
	if cached, found := s.cache.GetIfPresent(date); found {
		return &cached, nil
	}

	tracer := otel.Tracer("daypulse-api/plan")
	ctx, span := tracer.Start(ctx, "PlanService.Plan",
		trace.WithAttributes(attribute.String("plan.date", date)),
	)
	defer span.End()

	sample, err := s.sampleRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	history, err := s.history(ctx, date)
	if err != nil {
		return nil, err
	}
	baseline := scoring.ComputeBaseline(history)

	recovery, err := s.analyzer.Analyze(sample, baseline)
	if err != nil {
		return nil, err
	}

	wakeHour, wakeTime := s.resolveWake(sample)
	sleepHours := sample.SleepHours
	if !sample.HasSleep() {
		sleepHours = s.params.DefaultSleepHours
	}

	hourly := s.calc.HourlyScores(wakeHour, sleepHours, recovery.Score)
	blocks := s.calc.FocusBlocks(hourly)
	flow := s.circadian.EnergyFlowPrediction(wakeHour, sleepHours)
	debt := s.debt.Accumulate(history, sample, baseline.SleepMean)

	plan := &domain.DayPlanResponse{
		Date:         date,
		WakeTime:     wakeTime,
		SleepHours:   sleepHours,
		Recovery:     recovery,
		Baseline:     baseline,
		HourlyScores: hourly,
		PeakHours:    s.calc.PeakHours(hourly),
		LowHours:     s.calc.LowHours(hourly),
		AverageScore: scoring.AverageScore(hourly),
		FocusBlocks:  blocks,
		EnergyFlow:   flow,
		SleepDebt:    &debt,
	}

	// Advisory output shapes tie-breaks and commentary only; its absence or
	// failure never blocks the plan.
	var preference []int
	if s.advisor != nil {
		advisory, advErr := s.advisor.GenerateAdvisory(ctx, &domain.DayContext{
			Date:        date,
			WakeTime:    wakeTime,
			SleepHours:  sleepHours,
			Recovery:    recovery,
			Baseline:    baseline,
			FocusBlocks: blocks,
			EnergyFlow:  flow,
			SleepDebt:   &debt,
		})
		if advErr != nil {
			log.Printf("advisory generation failed for %s: %v", date, advErr)
		} else {
			preference = advisory.BlockPreference
			plan.Commentary = advisory.Commentary
			plan.Cautions = advisory.Cautions
		}
	}

	plan.DeepWork = s.selector.Select(blocks, flow, wakeHour, preference)

	span.SetAttributes(
		attribute.Float64("plan.recovery_score", recovery.Score),
		attribute.Float64("plan.average_score", plan.AverageScore),
		attribute.Int("plan.focus_blocks", len(blocks)),
	)

	s.persistReport(ctx, plan)
	s.cache.Set(date, *plan)
	return plan, nil
}

func (s *planService) EnergyFlow(ctx context.Context, date string) (*domain.EnergyFlowPrediction, error) {
	plan, err := s.Plan(ctx, date)
	if err != nil {
		return nil, err
	}
	return &plan.EnergyFlow, nil
}

func (s *planService) Recovery(ctx context.Context, date string) (*domain.RecoveryResult, error) {
	plan, err := s.Plan(ctx, date)
	if err != nil {
		return nil, err
	}
	return &plan.Recovery, nil
}

// InvalidateFrom drops the date's cached plan plus the following baseline
// window, since an edited sample feeds those days' statistics.
func (s *planService) InvalidateFrom(date string) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return
	}
	for i := 0; i <= BaselineWindowDays; i++ {
		s.cache.Invalidate(day.AddDate(0, 0, i).Format("2006-01-02"))
	}
}

// history loads the trailing baseline window: the 7 days before date,
// excluding the scored date itself.
func (s *planService) history(ctx context.Context, date string) ([]domain.WellnessSample, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	from := day.AddDate(0, 0, -BaselineWindowDays).Format("2006-01-02")
	return s.sampleRepo.ListRange(ctx, from, date)
}

// resolveWake picks the circadian anchor: the sample's recorded wake time,
// falling back to the configured default.
func (s *planService) resolveWake(sample *domain.WellnessSample) (float64, string) {
	if sample.SleepEnd != nil {
		h := scoring.ClockHour(*sample.SleepEnd)
		return h, scoring.FormatClock(h)
	}
	h, err := scoring.ParseClock(s.params.DefaultWakeTime)
	if err != nil {
		h = 7.0
	}
	return h, scoring.FormatClock(h)
}

// persistReport stores the derived report for later retrieval. Persistence
// failures are logged; the computed plan is still served.
func (s *planService) persistReport(ctx context.Context, plan *domain.DayPlanResponse) {
	if s.reportRepo == nil {
		return
	}
	planJSON, err := json.Marshal(plan)
	if err != nil {
		log.Printf("failed to marshal plan for %s: %v", plan.Date, err)
		return
	}
	report := &domain.DailyReport{
		Date:           plan.Date,
		RecoveryScore:  plan.Recovery.Score,
		RecoveryStatus: plan.Recovery.Status,
		AverageScore:   plan.AverageScore,
		PlanJSON:       planJSON,
		Commentary:     plan.Commentary,
	}
	if err := s.reportRepo.Save(ctx, report); err != nil {
		log.Printf("failed to persist report for %s: %v", plan.Date, err)
	}
}
