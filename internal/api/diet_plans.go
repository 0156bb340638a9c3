package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/fitplan/backend/internal/service"
	"github.com/pageza/fitplan/backend/internal/types"
)

type DietPlanHandler struct {
	planService service.IDietPlanService
	authorize   []gin.HandlerFunc
}

func NewDietPlanHandler(planService service.IDietPlanService, authorize ...gin.HandlerFunc) *DietPlanHandler {
	return &DietPlanHandler{
		planService: planService,
		authorize:   authorize,
	}
}

func (h *DietPlanHandler) chain(handler gin.HandlerFunc) []gin.HandlerFunc {
	return append(append([]gin.HandlerFunc{}, h.authorize...), handler)
}

func (h *DietPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/diet-plans")
	{
		plans.GET("", h.ListDietPlans)
		plans.POST("", h.chain(h.CreateDietPlan)...)
		plans.GET("/:id", h.GetDietPlan)
	}
}

func (h *DietPlanHandler) ListDietPlans(c *gin.Context) {
	plans, err := h.planService.ListDietPlans(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to list diet plans")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch diet plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (h *DietPlanHandler) CreateDietPlan(c *gin.Context) {
	var req types.CreateDietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planService.CreateDietPlan(c.Request.Context(), &req)
	if err != nil {
		logrus.WithError(err).Error("failed to create diet plan")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create diet plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *DietPlanHandler) GetDietPlan(c *gin.Context) {
	id, ok := parseID(c, "Invalid diet plan ID")
	if !ok {
		return
	}

	plan, err := h.planService.GetDietPlan(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Diet plan not found"})
			return
		}
		logrus.WithError(err).WithField("plan_id", id).Error("failed to get diet plan")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch diet plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}
