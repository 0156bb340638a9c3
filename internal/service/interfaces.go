package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/fitplan/backend/internal/models"
	"github.com/pageza/fitplan/backend/internal/recommendation"
	"github.com/pageza/fitplan/backend/internal/types"
)

// IUserService defines the interface for profile operations
type IUserService interface {
	CreateUser(ctx context.Context, req *types.CreateUserRequest) (*models.User, recommendation.PlanSummary, error)
	ListUsers(ctx context.Context) ([]types.UserSummary, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetRecommendation(ctx context.Context, id uuid.UUID) (*recommendation.Recommendation, error)
	ExportRecommendation(ctx context.Context, id uuid.UUID) (*types.ExportResponse, error)
}

// IWorkoutPlanService defines the interface for workout plan operations
type IWorkoutPlanService interface {
	ListWorkoutPlans(ctx context.Context) ([]models.WorkoutPlan, error)
	CreateWorkoutPlan(ctx context.Context, req *types.CreateWorkoutPlanRequest) (*models.WorkoutPlan, error)
	GetWorkoutPlan(ctx context.Context, id uuid.UUID) (*models.WorkoutPlan, error)
}

// IDietPlanService defines the interface for diet plan operations
type IDietPlanService interface {
	ListDietPlans(ctx context.Context) ([]models.DietPlan, error)
	CreateDietPlan(ctx context.Context, req *types.CreateDietPlanRequest) (*models.DietPlan, error)
	GetDietPlan(ctx context.Context, id uuid.UUID) (*models.DietPlan, error)
}

// ITokenService issues and validates admin tokens
type ITokenService interface {
	GenerateToken(subject string, ttl time.Duration) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// RecommendationArchive stores recommendation snapshots as JSON objects.
// config.S3Config satisfies it.
type RecommendationArchive interface {
	PutJSON(ctx context.Context, objectKey string, body []byte) error
	GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}
