package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/fitplan/backend/internal/models"
	"github.com/pageza/fitplan/backend/internal/recommendation"
	"github.com/pageza/fitplan/backend/internal/types"
)

// MockUserService is a mock implementation of the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req *types.CreateUserRequest) (*models.User, recommendation.PlanSummary, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, recommendation.PlanSummary{}, args.Error(2)
	}
	return args.Get(0).(*models.User), args.Get(1).(recommendation.PlanSummary), args.Error(2)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]types.UserSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.UserSummary), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetRecommendation(ctx context.Context, id uuid.UUID) (*recommendation.Recommendation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recommendation.Recommendation), args.Error(1)
}

func (m *MockUserService) ExportRecommendation(ctx context.Context, id uuid.UUID) (*types.ExportResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ExportResponse), args.Error(1)
}
