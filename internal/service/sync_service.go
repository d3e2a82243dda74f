package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/daypulse/daypulse/internal/domain"
	"github.com/daypulse/daypulse/internal/repository"
)

// SourceClient fetches raw wellness samples from an external feed.
type SourceClient interface {
	FetchRange(ctx context.Context, oldest, newest string) ([]domain.WellnessSample, error)
}

// Resolver merges multi-source samples into one record per date.
type Resolver func(samples []domain.WellnessSample) []domain.WellnessSample

// SyncService pulls external wellness data into local storage.
type SyncService interface {
	// Sync fetches oldest..newest (inclusive) and upserts the resolved
	// samples. Returns the number of days written.
	Sync(ctx context.Context, oldest, newest string) (int, error)
}

type syncService struct {
	client  SourceClient
	resolve Resolver
	repo    repository.WellnessRepository
	plans   PlanService
}

// NewSyncService creates the sync service. plans may be nil.
func NewSyncService(client SourceClient, resolve Resolver, repo repository.WellnessRepository, plans PlanService) SyncService {
	return &syncService{client: client, resolve: resolve, repo: repo, plans: plans}
}

func (s *syncService) Sync(ctx context.Context, oldest, newest string) (int, error) {
	tracer := otel.Tracer("daypulse-api/sync")
	ctx, span := tracer.Start(ctx, "SyncService.Sync",
		trace.WithAttributes(
			attribute.String("sync.oldest", oldest),
			attribute.String("sync.newest", newest),
		),
	)
	defer span.End()

	fetched, err := s.client.FetchRange(ctx, oldest, newest)
	if err != nil {
		return 0, fmt.Errorf("sync fetch: %w", err)
	}

	resolved := s.resolve(fetched)
	written := 0
	for i := range resolved {
		if err := s.repo.Upsert(ctx, &resolved[i]); err != nil {
			return written, fmt.Errorf("sync upsert %s: %w", resolved[i].Date, err)
		}
		written++
	}

	if s.plans != nil && len(resolved) > 0 {
		s.plans.InvalidateFrom(resolved[0].Date)
	}

	span.SetAttributes(attribute.Int("sync.days_written", written))
	return written, nil
}
