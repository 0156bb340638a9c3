package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fitplan/backend/internal/metrics"
	"github.com/pageza/fitplan/backend/internal/models"
	"github.com/pageza/fitplan/backend/internal/types"
)

// WorkoutPlanService handles workout plan operations
type WorkoutPlanService struct {
	db      *gorm.DB
	metrics *metrics.Manager
}

var _ IWorkoutPlanService = (*WorkoutPlanService)(nil)

func NewWorkoutPlanService(db *gorm.DB, m *metrics.Manager) *WorkoutPlanService {
	return &WorkoutPlanService{db: db, metrics: m}
}

// ListWorkoutPlans returns all plans with their exercises, newest first.
func (s *WorkoutPlanService) ListWorkoutPlans(ctx context.Context) ([]models.WorkoutPlan, error) {
	plans := []models.WorkoutPlan{}
	if err := s.db.WithContext(ctx).Preload("Exercises").Order("created_at DESC").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list workout plans: %w", err)
	}
	for i := range plans {
		if plans[i].Exercises == nil {
			plans[i].Exercises = []models.Exercise{}
		}
	}
	return plans, nil
}

// CreateWorkoutPlan stores a plan and its exercises in one transaction.
func (s *WorkoutPlanService) CreateWorkoutPlan(ctx context.Context, req *types.CreateWorkoutPlanRequest) (*models.WorkoutPlan, error) {
	plan := &models.WorkoutPlan{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Difficulty:  req.Difficulty,
		BodyFocus:   req.BodyFocus,
		UserID:      req.UserID,
		Exercises:   make([]models.Exercise, 0, len(req.Exercises)),
	}
	for _, e := range req.Exercises {
		plan.Exercises = append(plan.Exercises, models.Exercise{
			Name:        e.Name,
			Description: e.Description,
			Sets:        e.Sets,
			Reps:        e.Reps,
			RestTime:    e.RestTime,
			BodyPart:    e.BodyPart,
		})
	}

	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, fmt.Errorf("failed to create workout plan: %w", err)
	}

	if s.metrics != nil {
		s.metrics.CounterPlansCreated.WithLabelValues("workout").Inc()
	}
	return plan, nil
}

// GetWorkoutPlan retrieves a plan with its exercises
func (s *WorkoutPlanService) GetWorkoutPlan(ctx context.Context, id uuid.UUID) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	if err := s.db.WithContext(ctx).Preload("Exercises").Where("id = ?", id).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get workout plan: %w", err)
	}
	if plan.Exercises == nil {
		plan.Exercises = []models.Exercise{}
	}
	return &plan, nil
}
