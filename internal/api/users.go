package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/fitplan/backend/internal/service"
	"github.com/pageza/fitplan/backend/internal/types"
)

type UserHandler struct {
	userService service.IUserService
	limiter     gin.HandlerFunc
}

// NewUserHandler creates the profile handler. limiter guards profile creation
// and may be nil.
func NewUserHandler(userService service.IUserService, limiter gin.HandlerFunc) *UserHandler {
	return &UserHandler{
		userService: userService,
		limiter:     limiter,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.ListUsers)
		if h.limiter != nil {
			users.POST("", h.limiter, h.CreateUser)
		} else {
			users.POST("", h.CreateUser)
		}
		users.GET("/:id", h.GetUser)
		users.GET("/:id/recommendation", h.GetRecommendation)
		users.GET("/:id/recommendation/export", h.ExportRecommendation)
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to list users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateUser stores a profile and answers with it merged with its plan summary.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, summary, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		logrus.WithError(err).Error("failed to create user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, types.CreateUserResponse{User: user, PlanSummary: summary})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "Invalid user ID")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logrus.WithError(err).WithField("user_id", id).Error("failed to get user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetRecommendation(c *gin.Context) {
	id, ok := parseID(c, "Invalid user ID")
	if !ok {
		return
	}

	rec, err := h.userService.GetRecommendation(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logrus.WithError(err).WithField("user_id", id).Error("failed to get recommendation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recommendation"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

func (h *UserHandler) ExportRecommendation(c *gin.Context) {
	id, ok := parseID(c, "Invalid user ID")
	if !ok {
		return
	}

	export, err := h.userService.ExportRecommendation(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArchiveDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Recommendation export is not configured"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			logrus.WithError(err).WithField("user_id", id).Error("failed to export recommendation")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export recommendation"})
		}
		return
	}

	c.JSON(http.StatusOK, export)
}
