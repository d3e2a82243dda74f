package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/daypulse/daypulse/internal/domain"
	"github.com/daypulse/daypulse/pkg/pagination"
)

type WellnessRepository interface {
	Upsert(ctx context.Context, sample *domain.WellnessSample) error
	GetByDate(ctx context.Context, date string) (*domain.WellnessSample, error)
	// ListRange returns samples with from <= date < to, ascending by date.
	ListRange(ctx context.Context, from, to string) ([]domain.WellnessSample, error)
	List(ctx context.Context, filter domain.SampleFilter) ([]domain.WellnessSample, error)
}

type wellnessRepository struct {
	db *gorm.DB
}

func NewWellnessRepository(db *gorm.DB) WellnessRepository {
	return &wellnessRepository{db: db}
}

// Upsert inserts the sample or replaces the metric columns of an existing
// row for the same calendar day. One row per date is the storage invariant.
func (r *wellnessRepository) Upsert(ctx context.Context, sample *domain.WellnessSample) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"sleep_hours", "sleep_start", "sleep_end", "sleep_quality",
			"hrv_rmssd", "resting_hr", "source",
		}),
	}).Create(sample).Error
}

func (r *wellnessRepository) GetByDate(ctx context.Context, date string) (*domain.WellnessSample, error) {
	var sample domain.WellnessSample
	err := r.db.WithContext(ctx).First(&sample, "date = ?", date).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &sample, nil
}

func (r *wellnessRepository) ListRange(ctx context.Context, from, to string) ([]domain.WellnessSample, error) {
	var samples []domain.WellnessSample
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&samples).Error
	if err != nil {
		return nil, err
	}
	return samples, nil
}

func (r *wellnessRepository) List(ctx context.Context, filter domain.SampleFilter) ([]domain.WellnessSample, error) {
	query := r.db.WithContext(ctx).Order("date DESC")

	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// DESC order: continue below the last seen date
			query = query.Where("date < ?", cursor.Date)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var samples []domain.WellnessSample
	if err := query.Find(&samples).Error; err != nil {
		return nil, err
	}

	return samples, nil
}
