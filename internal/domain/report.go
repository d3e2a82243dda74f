package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyReport is the persisted result of one day's scoring run.
type DailyReport struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_reports_date" json:"date"`

	RecoveryScore  float64        `gorm:"not null" json:"recovery_score"`
	RecoveryStatus RecoveryStatus `gorm:"type:varchar(20);not null" json:"recovery_status"`
	AverageScore   float64        `gorm:"not null" json:"average_score"`

	// Full DayPlanResponse as JSON; the reporting layer renders from this
	PlanJSON []byte `gorm:"type:jsonb" json:"-"`

	Commentary string    `gorm:"type:text" json:"commentary,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DailyReport) TableName() string {
	return "daily_reports"
}
