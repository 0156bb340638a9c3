package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pageza/fitplan/backend/internal/metrics"
	"github.com/pageza/fitplan/backend/internal/models"
	"github.com/pageza/fitplan/backend/internal/recommendation"
	"github.com/pageza/fitplan/backend/internal/types"
)

// UserService handles profile operations
type UserService struct {
	db      *gorm.DB
	archive *Archiver
	metrics *metrics.Manager
}

var _ IUserService = (*UserService)(nil)

// NewUserService creates a new UserService. archive may be nil.
func NewUserService(db *gorm.DB, archive *Archiver, m *metrics.Manager) *UserService {
	return &UserService{
		db:      db,
		archive: archive,
		metrics: m,
	}
}

// CreateUser stores a new profile and returns it with its plan summary.
func (s *UserService) CreateUser(ctx context.Context, req *types.CreateUserRequest) (*models.User, recommendation.PlanSummary, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, recommendation.PlanSummary{}, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, recommendation.PlanSummary{}, fmt.Errorf("failed to check existing user: %w", err)
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Height:    req.Height,
		Weight:    req.Weight,
		Age:       req.Age,
		Gender:    req.Gender,
		BodyGoal:  req.BodyGoal,
		Timeframe: req.Timeframe,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, recommendation.PlanSummary{}, ErrUserExists
		}
		return nil, recommendation.PlanSummary{}, fmt.Errorf("failed to create user: %w", err)
	}

	goal := checkGoal(user)
	if s.metrics != nil {
		s.metrics.CounterProfilesCreated.WithLabelValues(goal.String()).Inc()
	}

	if s.archive != nil {
		rec := recommendation.Derive(user.BodyGoal, user.Gender, user.Weight)
		if err := s.archive.Store(ctx, user.ID, rec); err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).Error("failed to archive recommendation")
		}
	}

	return user, recommendation.Summarize(user.BodyGoal), nil
}

// ListUsers returns summaries of all profiles, newest first.
func (s *UserService) ListUsers(ctx context.Context) ([]types.UserSummary, error) {
	users := []types.UserSummary{}
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Select("id", "email", "name", "body_goal", "timeframe", "created_at").
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a profile by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetRecommendation derives the recommendation for a stored profile.
func (s *UserService) GetRecommendation(ctx context.Context, id uuid.UUID) (*recommendation.Recommendation, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	goal := checkGoal(user)
	if s.metrics != nil {
		s.metrics.CounterRecommendations.WithLabelValues(goal.String()).Inc()
	}

	rec := recommendation.Derive(user.BodyGoal, user.Gender, user.Weight)
	return &rec, nil
}

// ExportRecommendation archives the current recommendation of a profile and
// returns a short-lived download link for it.
func (s *UserService) ExportRecommendation(ctx context.Context, id uuid.UUID) (*types.ExportResponse, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}

	rec, err := s.GetRecommendation(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.archive.Store(ctx, id, *rec); err != nil {
		return nil, err
	}
	return s.archive.Link(ctx, id)
}

// checkGoal normalizes the stored goal and warns when it is not one we know.
func checkGoal(user *models.User) recommendation.BodyGoal {
	goal, ok := recommendation.ParseBodyGoal(user.BodyGoal)
	if !ok {
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,
			"body_goal": user.BodyGoal,
		}).Warn("unknown body goal, using maintenance plan")
		return recommendation.Normalize(user.BodyGoal)
	}
	return goal
}
