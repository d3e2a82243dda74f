package service

import (
	"context"

	"github.com/daypulse/daypulse/internal/domain"
	"github.com/daypulse/daypulse/internal/repository"
	"github.com/daypulse/daypulse/pkg/pagination"
)

// SampleService ingests and lists daily wellness samples.
type SampleService interface {
	// Ingest stores a sample, replacing any prior record for the date.
	Ingest(ctx context.Context, req *domain.CreateSampleRequest) (*domain.WellnessSample, error)
	List(ctx context.Context, filter domain.SampleFilter) (*domain.SampleListResponse, error)
}

type sampleService struct {
	repo  repository.WellnessRepository
	plans PlanService
}

// NewSampleService creates the sample service. plans may be nil when no plan
// cache needs invalidation (CLI workflows).
func NewSampleService(repo repository.WellnessRepository, plans PlanService) SampleService {
	return &sampleService{repo: repo, plans: plans}
}

func (s *sampleService) Ingest(ctx context.Context, req *domain.CreateSampleRequest) (*domain.WellnessSample, error) {
	sample := req.ToSample()

	if err := s.repo.Upsert(ctx, sample); err != nil {
		return nil, err
	}

	// A corrected sample changes this day's plan and the baselines of the
	// days that follow it.
	if s.plans != nil {
		s.plans.InvalidateFrom(sample.Date)
	}
	return sample, nil
}

func (s *sampleService) List(ctx context.Context, filter domain.SampleFilter) (*domain.SampleListResponse, error) {
	samples, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(samples) > limit

	// Trim to actual limit
	if hasMore {
		samples = samples[:limit]
	}

	response := &domain.SampleListResponse{
		Data: samples,
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	// Set next cursor if there are more results
	if hasMore && len(samples) > 0 {
		last := samples[len(samples)-1]
		cursor := &pagination.Cursor{Date: last.Date}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
