package handler

import (
	"context"

	"github.com/daypulse/daypulse/internal/domain"
)

// MockSampleService is a mock implementation of SampleService
type MockSampleService struct {
	ingestFunc func(ctx context.Context, req *domain.CreateSampleRequest) (*domain.WellnessSample, error)
	listFunc   func(ctx context.Context, filter domain.SampleFilter) (*domain.SampleListResponse, error)
}

func (m *MockSampleService) Ingest(ctx context.Context, req *domain.CreateSampleRequest) (*domain.WellnessSample, error) {
	if m.ingestFunc != nil {
		return m.ingestFunc(ctx, req)
	}
	return req.ToSample(), nil
}

func (m *MockSampleService) List(ctx context.Context, filter domain.SampleFilter) (*domain.SampleListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.SampleListResponse{
		Data:       []domain.WellnessSample{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockPlanService is a mock implementation of PlanService
type MockPlanService struct {
	planFunc     func(ctx context.Context, date string) (*domain.DayPlanResponse, error)
	flowFunc     func(ctx context.Context, date string) (*domain.EnergyFlowPrediction, error)
	recoveryFunc func(ctx context.Context, date string) (*domain.RecoveryResult, error)
	invalidated  []string
}

func (m *MockPlanService) Plan(ctx context.Context, date string) (*domain.DayPlanResponse, error) {
	if m.planFunc != nil {
		return m.planFunc(ctx, date)
	}
	return &domain.DayPlanResponse{Date: date}, nil
}

func (m *MockPlanService) EnergyFlow(ctx context.Context, date string) (*domain.EnergyFlowPrediction, error) {
	if m.flowFunc != nil {
		return m.flowFunc(ctx, date)
	}
	return &domain.EnergyFlowPrediction{}, nil
}

func (m *MockPlanService) Recovery(ctx context.Context, date string) (*domain.RecoveryResult, error) {
	if m.recoveryFunc != nil {
		return m.recoveryFunc(ctx, date)
	}
	return &domain.RecoveryResult{}, nil
}

func (m *MockPlanService) InvalidateFrom(date string) {
	m.invalidated = append(m.invalidated, date)
}
