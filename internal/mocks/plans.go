package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/fitplan/backend/internal/models"
	"github.com/pageza/fitplan/backend/internal/types"
)

type MockWorkoutPlanService struct {
	mock.Mock
}

func (m *MockWorkoutPlanService) ListWorkoutPlans(ctx context.Context) ([]models.WorkoutPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkoutPlan), args.Error(1)
}

func (m *MockWorkoutPlanService) CreateWorkoutPlan(ctx context.Context, req *types.CreateWorkoutPlanRequest) (*models.WorkoutPlan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkoutPlan), args.Error(1)
}

func (m *MockWorkoutPlanService) GetWorkoutPlan(ctx context.Context, id uuid.UUID) (*models.WorkoutPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkoutPlan), args.Error(1)
}

type MockDietPlanService struct {
	mock.Mock
}

func (m *MockDietPlanService) ListDietPlans(ctx context.Context) ([]models.DietPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DietPlan), args.Error(1)
}

func (m *MockDietPlanService) CreateDietPlan(ctx context.Context, req *types.CreateDietPlanRequest) (*models.DietPlan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DietPlan), args.Error(1)
}

func (m *MockDietPlanService) GetDietPlan(ctx context.Context, id uuid.UUID) (*models.DietPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DietPlan), args.Error(1)
}
