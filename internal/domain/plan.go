package domain

// BaselineConfidence qualifies how much history backs a baseline.
type BaselineConfidence string

const (
	ConfidenceNone BaselineConfidence = "none"
	ConfidenceLow  BaselineConfidence = "low"
	ConfidenceGood BaselineConfidence = "good"
)

// Baseline holds rolling statistics over the trailing 7 complete days
// preceding the scored date. It is recomputed per run and never persisted
// as a source of truth.
// @Description Trailing 7-day baseline statistics.
type Baseline struct {
	// Mean and standard deviation of HRV (RMSSD, ms) over days with data
	HRVMean float64 `json:"hrv_mean"`
	HRVStd  float64 `json:"hrv_std"`
	// Mean and standard deviation of resting HR (bpm) over days with data
	RHRMean float64 `json:"rhr_mean"`
	RHRStd  float64 `json:"rhr_std"`
	// Mean sleep hours over days with data
	SleepMean float64 `json:"sleep_mean"`

	// Per-metric sample counts
	HRVCount   int `json:"hrv_count"`
	RHRCount   int `json:"rhr_count"`
	SleepCount int `json:"sleep_count"`
	// Number of prior days contributing any data
	Days int `json:"days"`

	Confidence BaselineConfidence `json:"confidence" example:"good"`
}

// RecoveryStatus is the qualitative recovery label, for display only.
type RecoveryStatus string

const (
	RecoveryExcellent RecoveryStatus = "excellent"
	RecoveryGood      RecoveryStatus = "good"
	RecoveryModerate  RecoveryStatus = "moderate"
	RecoveryPoor      RecoveryStatus = "poor"
)

// RecoveryResult is the output of the recovery analyzer.
// @Description Normalized recovery score with per-metric breakdown.
type RecoveryResult struct {
	// Overall recovery score in [0,1]
	Score  float64        `json:"score" example:"0.81"`
	Status RecoveryStatus `json:"status" example:"excellent"`
	// Component scores in [0,1]; nil when the metric was unavailable
	HRVScore   *float64 `json:"hrv_score,omitempty"`
	RHRScore   *float64 `json:"rhr_score,omitempty"`
	SleepScore *float64 `json:"sleep_score,omitempty"`
	// Number of metrics that contributed to the score
	AvailableMetrics int `json:"available_metrics" example:"3"`
}

// HourlyScore is one of 24 productivity entries for a given date.
// @Description Productivity score for one clock hour.
type HourlyScore struct {
	// Local clock hour 0-23
	Hour int `json:"hour" example:"10"`
	// Circadian alertness component in [0,1]
	CircadianComponent float64 `json:"circadian_component" example:"0.85"`
	// Recovery component in [0,1]; constant across the day
	RecoveryComponent float64 `json:"recovery_component" example:"0.81"`
	// Combined productivity score 0-100
	Score int `json:"score" example:"83"`
}

// EnergyCategory classifies an energy window.
type EnergyCategory string

const (
	EnergyRising EnergyCategory = "rising"
	EnergyHigh   EnergyCategory = "high"
	EnergyLow    EnergyCategory = "low"
)

// EnergyWindow is a named interval anchored to hours after waking.
// @Description Wake-relative energy window with clock-time bounds.
type EnergyWindow struct {
	Name string `json:"name" example:"Morning Peak"`
	// Offsets measured from wake time, in hours
	StartOffsetHours float64 `json:"start_offset_hours" example:"1.5"`
	EndOffsetHours   float64 `json:"end_offset_hours" example:"4.5"`
	// Clock times (HH:MM), wrapped past midnight as needed
	Start string `json:"start" example:"08:30"`
	End   string `json:"end" example:"11:30"`
	// Predicted energy level 0-100
	EnergyLevel int            `json:"energy_level" example:"95"`
	Category    EnergyCategory `json:"category" example:"high"`
	// Suggested use of the window
	BestFor string `json:"best_for" example:"Deep focused work, complex problem solving"`
}

// PeakTimes lists the clock times of the day's circadian landmarks.
type PeakTimes struct {
	FirstPeak     string `json:"first_peak" example:"10:00"`
	SecondPeak    string `json:"second_peak" example:"17:00"`
	EnergyDip     string `json:"energy_dip" example:"14:00"`
	DeclineStarts string `json:"decline_starts" example:"21:00"`
}

// EnergyFlowPrediction is the wake-anchored energy forecast for a day.
// @Description Full energy-flow prediction anchored to actual wake time.
type EnergyFlowPrediction struct {
	WakeTime   string `json:"wake_time" example:"07:00"`
	SleepHours float64 `json:"sleep_hours" example:"7.5"`
	// Sleep factor applied to window energy levels, in [0,1]
	SleepQualityFactor float64        `json:"sleep_quality_factor" example:"1.0"`
	Windows            []EnergyWindow `json:"windows"`
	PeakTimes          PeakTimes      `json:"peak_times"`
	// Display-only narrative; not consumed by any downstream calculation
	Summary string `json:"summary"`
}

// FocusBlock is a maximal contiguous run of clock hours whose scores all
// meet or exceed the focus threshold.
// @Description Contiguous high-productivity block.
type FocusBlock struct {
	// First hour of the block (inclusive)
	StartHour int `json:"start_hour" example:"9"`
	// End hour (exclusive)
	EndHour     int     `json:"end_hour" example:"13"`
	LengthHours int     `json:"length_hours" example:"4"`
	AvgScore    float64 `json:"avg_score" example:"82.5"`
}

// Overlaps reports whether two blocks share any hour.
func (b FocusBlock) Overlaps(other FocusBlock) bool {
	return b.StartHour < other.EndHour && other.StartHour < b.EndHour
}

// AvoidWindow is a low-energy window flagged for the deep-work plan.
// @Description Low-energy window to keep clear of demanding work.
type AvoidWindow struct {
	Window EnergyWindow `json:"window"`
	// True when the window overlaps a qualifying focus block; reported,
	// never fatal
	ConflictsWithFocus bool `json:"conflicts_with_focus" example:"false"`
}

// DeepWorkPlan ranks focus blocks into primary/secondary/avoid categories.
// @Description Ranked deep-work windows for the day.
type DeepWorkPlan struct {
	Primary   *FocusBlock   `json:"primary,omitempty"`
	Secondary *FocusBlock   `json:"secondary,omitempty"`
	Avoid     []AvoidWindow `json:"avoid"`
}

// SleepDebtStatus summarizes accumulated sleep debt.
// @Description Cumulative sleep-debt summary.
type SleepDebtStatus struct {
	Hours    float64 `json:"hours" example:"3.2"`
	Category string  `json:"category" example:"low"`
	// Recovery-capacity impact factor in [0.5,1.0]; 1.0 means no impact
	ImpactFactor float64 `json:"impact_factor" example:"0.96"`
	// Estimated days to clear the debt with one hour nightly surplus
	RecoveryDays int `json:"recovery_days" example:"3"`
}

// AdvisoryOutput is the structured output of the LLM advisory call.
// @Description LLM-generated commentary and focus-block preference.
type AdvisoryOutput struct {
	// Prose commentary for the daily report (2-4 sentences)
	Commentary string `json:"commentary"`
	// Preferred ordering of focus blocks, by start hour. Applied only as
	// a tie-break among blocks the numeric threshold already qualified.
	BlockPreference []int `json:"block_preference"`
	// Optional cautions surfaced verbatim in the report
	Cautions []string `json:"cautions,omitempty"`
}

// DayContext is the context object sent to the advisory LLM.
// @Description Context data for advisory generation.
type DayContext struct {
	Date        string               `json:"date"`
	WakeTime    string               `json:"wake_time"`
	SleepHours  float64              `json:"sleep_hours"`
	Recovery    RecoveryResult       `json:"recovery"`
	Baseline    Baseline             `json:"baseline"`
	FocusBlocks []FocusBlock         `json:"focus_blocks"`
	EnergyFlow  EnergyFlowPrediction `json:"energy_flow"`
	SleepDebt   *SleepDebtStatus     `json:"sleep_debt,omitempty"`
}

// DayPlanResponse is the full scoring output for one date.
// @Description Complete day plan: recovery, hourly scores, and windows.
type DayPlanResponse struct {
	Date       string  `json:"date" example:"2024-03-15"`
	WakeTime   string  `json:"wake_time" example:"06:40"`
	SleepHours float64 `json:"sleep_hours" example:"7.5"`

	Recovery RecoveryResult `json:"recovery"`
	Baseline Baseline       `json:"baseline"`

	HourlyScores []HourlyScore `json:"hourly_scores"`
	PeakHours    []HourlyScore `json:"peak_hours"`
	LowHours     []HourlyScore `json:"low_hours"`
	AverageScore float64       `json:"average_score" example:"64.3"`

	FocusBlocks []FocusBlock         `json:"focus_blocks"`
	DeepWork    DeepWorkPlan         `json:"deep_work"`
	EnergyFlow  EnergyFlowPrediction `json:"energy_flow"`
	SleepDebt   *SleepDebtStatus     `json:"sleep_debt,omitempty"`

	// LLM commentary; empty when the advisory client is not configured
	Commentary string   `json:"commentary,omitempty"`
	Cautions   []string `json:"cautions,omitempty"`
}
