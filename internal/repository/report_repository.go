package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/daypulse/daypulse/internal/domain"
)

type ReportRepository interface {
	Save(ctx context.Context, report *domain.DailyReport) error
	GetByDate(ctx context.Context, date string) (*domain.DailyReport, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Save replaces any prior report for the same day. Reports are derived data;
// recomputing after a sample correction must overwrite, not duplicate.
func (r *reportRepository) Save(ctx context.Context, report *domain.DailyReport) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"recovery_score", "recovery_status", "average_score", "plan_json", "commentary",
		}),
	}).Create(report).Error
}

func (r *reportRepository) GetByDate(ctx context.Context, date string) (*domain.DailyReport, error) {
	var report domain.DailyReport
	err := r.db.WithContext(ctx).First(&report, "date = ?", date).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}
