package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fitplan/backend/internal/metrics"
)

// Metrics records request counts, in-flight requests and latency per route.
func Metrics(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.GaugeRequests.Inc()
		start := time.Now()
		defer func() {
			m.GaugeRequests.Dec()

			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			m.CounterRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
			m.HistRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		}()

		c.Next()
	}
}
