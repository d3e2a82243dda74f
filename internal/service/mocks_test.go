package service

import (
	"context"
	"sort"
	"time"

	"github.com/daypulse/daypulse/internal/domain"
)

// MockWellnessRepository is a mock implementation of WellnessRepository
type MockWellnessRepository struct {
	samples    map[string]*domain.WellnessSample
	listResult []domain.WellnessSample
	err        error
}

func NewMockWellnessRepository() *MockWellnessRepository {
	return &MockWellnessRepository{
		samples: make(map[string]*domain.WellnessSample),
	}
}

func (m *MockWellnessRepository) Upsert(ctx context.Context, sample *domain.WellnessSample) error {
	if m.err != nil {
		return m.err
	}
	sample.UpdatedAt = time.Now()
	m.samples[sample.Date] = sample
	return nil
}

func (m *MockWellnessRepository) GetByDate(ctx context.Context, date string) (*domain.WellnessSample, error) {
	if m.err != nil {
		return nil, m.err
	}
	sample, ok := m.samples[date]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return sample, nil
}

func (m *MockWellnessRepository) ListRange(ctx context.Context, from, to string) ([]domain.WellnessSample, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.WellnessSample
	for date, sample := range m.samples {
		if date >= from && date < to {
			result = append(result, *sample)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (m *MockWellnessRepository) List(ctx context.Context, filter domain.SampleFilter) ([]domain.WellnessSample, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.WellnessSample, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.WellnessSample
	for _, sample := range m.samples {
		result = append(result, *sample)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

// MockReportRepository is a mock implementation of ReportRepository
type MockReportRepository struct {
	reports map[string]*domain.DailyReport
	err     error
}

func NewMockReportRepository() *MockReportRepository {
	return &MockReportRepository{reports: make(map[string]*domain.DailyReport)}
}

func (m *MockReportRepository) Save(ctx context.Context, report *domain.DailyReport) error {
	if m.err != nil {
		return m.err
	}
	m.reports[report.Date] = report
	return nil
}

func (m *MockReportRepository) GetByDate(ctx context.Context, date string) (*domain.DailyReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	report, ok := m.reports[date]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return report, nil
}

// MockAdvisoryLLM is a mock implementation of llm.AdvisoryLLM
type MockAdvisoryLLM struct {
	output *domain.AdvisoryOutput
	err    error
	calls  int
}

func (m *MockAdvisoryLLM) GenerateAdvisory(ctx context.Context, dayCtx *domain.DayContext) (*domain.AdvisoryOutput, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// MockSourceClient is a mock implementation of SourceClient
type MockSourceClient struct {
	samples []domain.WellnessSample
	err     error
}

func (m *MockSourceClient) FetchRange(ctx context.Context, oldest, newest string) ([]domain.WellnessSample, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.samples, nil
}
