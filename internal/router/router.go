package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pageza/fitplan/backend/internal/api"
	"github.com/pageza/fitplan/backend/internal/middleware"
)

// Options controls the middleware stack in front of the API.
type Options struct {
	CORSAllowedOrigins []string
	// Gatherer is served on /metrics when set
	Gatherer prometheus.Gatherer
}

// SetupRouter configures the middleware stack and the application routes
func SetupRouter(deps api.Dependencies, opts Options) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(deps.Metrics))
	router.Use(middleware.RequestLogger())
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}
	if len(opts.CORSAllowedOrigins) > 0 {
		router.Use(middleware.CORS(opts.CORSAllowedOrigins))
	}

	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	api.SetupAPI(router, deps)

	return router
}
