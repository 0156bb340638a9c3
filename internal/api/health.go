package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthChecker reports whether the database is reachable.
type HealthChecker func(ctx context.Context) error

type HealthHandler struct {
	check HealthChecker
}

func NewHealthHandler(check HealthChecker) *HealthHandler {
	return &HealthHandler{check: check}
}

func (h *HealthHandler) Check(c *gin.Context) {
	if h.check != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.check(ctx); err != nil {
			logrus.WithError(err).Error("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unavailable",
				"database": "unreachable",
				"error":    "database unreachable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
}
