package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/fitplan/backend/internal/service"
	"github.com/pageza/fitplan/backend/internal/types"
)

type WorkoutPlanHandler struct {
	planService service.IWorkoutPlanService
	authorize   []gin.HandlerFunc
}

// NewWorkoutPlanHandler creates the handler; authorize runs before plan creation.
func NewWorkoutPlanHandler(planService service.IWorkoutPlanService, authorize ...gin.HandlerFunc) *WorkoutPlanHandler {
	return &WorkoutPlanHandler{
		planService: planService,
		authorize:   authorize,
	}
}

func (h *WorkoutPlanHandler) chain(handler gin.HandlerFunc) []gin.HandlerFunc {
	return append(append([]gin.HandlerFunc{}, h.authorize...), handler)
}

func (h *WorkoutPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/workout-plans")
	{
		plans.GET("", h.ListWorkoutPlans)
		plans.POST("", h.chain(h.CreateWorkoutPlan)...)
		plans.GET("/:id", h.GetWorkoutPlan)
	}
}

func (h *WorkoutPlanHandler) ListWorkoutPlans(c *gin.Context) {
	plans, err := h.planService.ListWorkoutPlans(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to list workout plans")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workout plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (h *WorkoutPlanHandler) CreateWorkoutPlan(c *gin.Context) {
	var req types.CreateWorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planService.CreateWorkoutPlan(c.Request.Context(), &req)
	if err != nil {
		logrus.WithError(err).Error("failed to create workout plan")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workout plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *WorkoutPlanHandler) GetWorkoutPlan(c *gin.Context) {
	id, ok := parseID(c, "Invalid workout plan ID")
	if !ok {
		return
	}

	plan, err := h.planService.GetWorkoutPlan(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workout plan not found"})
			return
		}
		logrus.WithError(err).WithField("plan_id", id).Error("failed to get workout plan")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workout plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}
