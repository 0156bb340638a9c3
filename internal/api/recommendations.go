package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/fitplan/backend/internal/metrics"
	"github.com/pageza/fitplan/backend/internal/recommendation"
	"github.com/pageza/fitplan/backend/internal/types"
)

// RecommendationHandler previews a recommendation without storing a profile.
type RecommendationHandler struct {
	metrics *metrics.Manager
}

func NewRecommendationHandler(m *metrics.Manager) *RecommendationHandler {
	return &RecommendationHandler{metrics: m}
}

func (h *RecommendationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recommendations", h.Derive)
}

func (h *RecommendationHandler) Derive(c *gin.Context) {
	var req types.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := recommendation.ParseBodyGoal(req.BodyGoal); !ok {
		logrus.WithField("body_goal", req.BodyGoal).Warn("unknown body goal, using maintenance plan")
	}

	rec := recommendation.Derive(req.BodyGoal, req.Gender, req.Weight)
	if h.metrics != nil {
		h.metrics.CounterRecommendations.WithLabelValues(rec.BodyGoal.String()).Inc()
	}

	c.JSON(http.StatusOK, rec)
}
