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

// DietPlanService handles diet plan operations
type DietPlanService struct {
	db      *gorm.DB
	metrics *metrics.Manager
}

var _ IDietPlanService = (*DietPlanService)(nil)

func NewDietPlanService(db *gorm.DB, m *metrics.Manager) *DietPlanService {
	return &DietPlanService{db: db, metrics: m}
}

// ListDietPlans returns all plans with their meals, newest first.
func (s *DietPlanService) ListDietPlans(ctx context.Context) ([]models.DietPlan, error) {
	plans := []models.DietPlan{}
	if err := s.db.WithContext(ctx).Preload("Meals").Order("created_at DESC").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list diet plans: %w", err)
	}
	for i := range plans {
		if plans[i].Meals == nil {
			plans[i].Meals = []models.Meal{}
		}
	}
	return plans, nil
}

// CreateDietPlan stores a plan and its meals in one transaction.
func (s *DietPlanService) CreateDietPlan(ctx context.Context, req *types.CreateDietPlanRequest) (*models.DietPlan, error) {
	plan := &models.DietPlan{
		Name:        req.Name,
		Description: req.Description,
		CalorieGoal: req.CalorieGoal,
		ProteinGoal: req.ProteinGoal,
		CarbGoal:    req.CarbGoal,
		FatGoal:     req.FatGoal,
		UserID:      req.UserID,
		Meals:       make([]models.Meal, 0, len(req.Meals)),
	}
	for _, m := range req.Meals {
		plan.Meals = append(plan.Meals, models.Meal{
			Name:        m.Name,
			Description: m.Description,
			Calories:    m.Calories,
			Protein:     m.Protein,
			Carbs:       m.Carbs,
			Fat:         m.Fat,
			PrepTime:    m.PrepTime,
			Recipe:      m.Recipe,
		})
	}

	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, fmt.Errorf("failed to create diet plan: %w", err)
	}

	if s.metrics != nil {
		s.metrics.CounterPlansCreated.WithLabelValues("diet").Inc()
	}
	return plan, nil
}

// GetDietPlan retrieves a plan with its meals
func (s *DietPlanService) GetDietPlan(ctx context.Context, id uuid.UUID) (*models.DietPlan, error) {
	var plan models.DietPlan
	if err := s.db.WithContext(ctx).Preload("Meals").Where("id = ?", id).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get diet plan: %w", err)
	}
	if plan.Meals == nil {
		plan.Meals = []models.Meal{}
	}
	return &plan, nil
}
