package service

import (
	"context"
	"errors"
	"testing"

	"github.com/daypulse/daypulse/internal/collector"
	"github.com/daypulse/daypulse/internal/domain"
)

func TestSyncService(t *testing.T) {
	repo := NewMockWellnessRepository()
	client := &MockSourceClient{samples: []domain.WellnessSample{
		{Date: "2026-08-24", SleepHours: 7.2, Source: domain.SourceIntervals},
		{Date: "2026-08-24", SleepHours: 6.8, RestingHR: fptr(53), Source: domain.SourceManual},
		{Date: "2026-08-25", SleepHours: 8.0, Source: domain.SourceIntervals},
	}}

	svc := NewSyncService(client, collector.Resolve, repo, nil)
	written, err := svc.Sync(context.Background(), "2026-08-24", "2026-08-25")
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if written != 2 {
		t.Errorf("written = %d, want 2 resolved days", written)
	}

	merged, err := repo.GetByDate(context.Background(), "2026-08-24")
	if err != nil {
		t.Fatalf("merged day missing: %v", err)
	}
	if merged.SleepHours != 7.2 {
		t.Errorf("SleepHours = %v, want winner's 7.2", merged.SleepHours)
	}
	if merged.RestingHR == nil || *merged.RestingHR != 53 {
		t.Errorf("RestingHR = %v, want backfilled 53", merged.RestingHR)
	}
}

func TestSyncServiceFetchFailure(t *testing.T) {
	client := &MockSourceClient{err: errors.New("upstream down")}
	svc := NewSyncService(client, collector.Resolve, NewMockWellnessRepository(), nil)

	if _, err := svc.Sync(context.Background(), "2026-08-24", "2026-08-25"); err == nil {
		t.Fatal("expected error")
	}
}
