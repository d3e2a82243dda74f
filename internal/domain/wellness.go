package domain

import (
	"math"
	"time"
)

// SampleSource identifies where a wellness sample originated. When several
// sources report the same day, the collector resolves them by priority.
type SampleSource string

const (
	// SourceIntervals is the intervals.icu wellness feed (wearable-backed).
	SourceIntervals SampleSource = "intervals"
	// SourceGoogleFit is the Google Fit aggregate feed.
	SourceGoogleFit SampleSource = "google_fit"
	// SourceManual is a hand-entered sample.
	SourceManual SampleSource = "manual"
)

// SourcePriority returns the resolution rank of a source; higher wins.
func SourcePriority(s SampleSource) int {
	switch s {
	case SourceIntervals:
		return 3
	case SourceGoogleFit:
		return 2
	case SourceManual:
		return 1
	default:
		return 0
	}
}

// WellnessSample is one calendar day's physiological record.
// @Description Daily wellness metrics used to drive productivity scoring.
type WellnessSample struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Date string `gorm:"type:varchar(10);not null;uniqueIndex:idx_samples_date" json:"date"`

	// Main sleep episode
	SleepHours float64    `gorm:"not null" json:"sleep_hours"`
	SleepStart *time.Time `json:"sleep_start,omitempty"`
	// SleepEnd is the wake time used by the circadian model.
	SleepEnd *time.Time `json:"sleep_end,omitempty"`
	// Subjective quality rating 1-5
	SleepQuality *int `gorm:"type:smallint" json:"sleep_quality,omitempty"`

	// Recovery metrics
	HRVRMSSD  *float64 `gorm:"column:hrv_rmssd" json:"hrv_rmssd,omitempty"`
	RestingHR *float64 `json:"resting_hr,omitempty"`

	Source    SampleSource `gorm:"type:varchar(20);not null;default:'manual'" json:"source"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WellnessSample) TableName() string {
	return "wellness_samples"
}

// HasHRV reports whether the sample carries a usable HRV reading.
// NaN and infinite values are treated as absent rather than clamped.
func (s *WellnessSample) HasHRV() bool {
	return s.HRVRMSSD != nil && isFinite(*s.HRVRMSSD)
}

// HasRestingHR reports whether the sample carries a usable RHR reading.
func (s *WellnessSample) HasRestingHR() bool {
	return s.RestingHR != nil && isFinite(*s.RestingHR)
}

// HasSleep reports whether the sample carries a usable sleep duration.
func (s *WellnessSample) HasSleep() bool {
	return isFinite(s.SleepHours) && s.SleepHours > 0
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// CreateSampleRequest is the request body for ingesting a wellness sample.
// @Description Request payload for recording one day's wellness metrics.
type CreateSampleRequest struct {
	// Calendar date in YYYY-MM-DD format
	Date string `json:"date" validate:"required,datetime=2006-01-02" example:"2024-03-15"`
	// Duration of the main sleep episode in hours
	SleepHours float64 `json:"sleep_hours" validate:"required,gte=0,lte=24" example:"7.5"`
	// Sleep onset in RFC3339 format
	SleepStart *time.Time `json:"sleep_start,omitempty" example:"2024-03-14T23:10:00Z"`
	// Wake time in RFC3339 format (anchors the circadian model)
	SleepEnd *time.Time `json:"sleep_end,omitempty" example:"2024-03-15T06:40:00Z"`
	// Subjective sleep quality from 1 (poor) to 5 (excellent)
	SleepQuality *int `json:"sleep_quality,omitempty" validate:"omitempty,min=1,max=5" example:"4"`
	// Resting HRV (RMSSD) in milliseconds
	HRVRMSSD *float64 `json:"hrv_rmssd,omitempty" validate:"omitempty,gt=0" example:"62.5"`
	// Resting heart rate in bpm
	RestingHR *float64 `json:"resting_hr,omitempty" validate:"omitempty,gt=0" example:"52"`
	// Origin of the sample
	Source SampleSource `json:"source" validate:"required,oneof=intervals google_fit manual" example:"intervals" enums:"intervals,google_fit,manual"`
}

// ToSample converts the request into a persistable sample.
func (r *CreateSampleRequest) ToSample() *WellnessSample {
	return &WellnessSample{
		Date:         r.Date,
		SleepHours:   r.SleepHours,
		SleepStart:   r.SleepStart,
		SleepEnd:     r.SleepEnd,
		SleepQuality: r.SleepQuality,
		HRVRMSSD:     r.HRVRMSSD,
		RestingHR:    r.RestingHR,
		Source:       r.Source,
	}
}

// SampleListResponse is the response body for listing wellness samples.
// @Description Paginated list of wellness samples.
type SampleListResponse struct {
	Data       []WellnessSample   `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SampleFilter contains filter parameters for listing wellness samples.
type SampleFilter struct {
	From   string // inclusive YYYY-MM-DD, optional
	To     string // inclusive YYYY-MM-DD, optional
	Limit  int
	Cursor string
}
