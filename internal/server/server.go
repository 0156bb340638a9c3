package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pageza/fitplan/backend/config"
	"github.com/pageza/fitplan/backend/internal/api"
	"github.com/pageza/fitplan/backend/internal/database"
	"github.com/pageza/fitplan/backend/internal/metrics"
	"github.com/pageza/fitplan/backend/internal/middleware"
	"github.com/pageza/fitplan/backend/internal/router"
	"github.com/pageza/fitplan/backend/internal/service"
)

const ShutdownTimeout = 5 * time.Second

// Options are the optional backends of the server.
type Options struct {
	Redis   *redis.Client
	Archive service.RecommendationArchive
}

// Server represents the HTTP server
type Server struct {
	router   *gin.Engine
	http     *http.Server
	metrics  *metrics.Manager
	registry *prometheus.Registry
}

// New wires services, middleware and routes around the given database.
func New(cfg *config.Config, db *gorm.DB, opts Options) *Server {
	if cfg.Environment.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewManager("fitplan", "api", registry)

	var archive *service.Archiver
	if opts.Archive != nil {
		archive = service.NewArchiver(opts.Archive, service.DefaultLinkExpiration)
	}

	deps := api.Dependencies{
		Users:        service.NewUserService(db, archive, m),
		WorkoutPlans: service.NewWorkoutPlanService(db, m),
		DietPlans:    service.NewDietPlanService(db, m),
		Health: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		},
		Metrics: m,
	}
	if cfg.AdminAuthEnabled() {
		deps.Tokens = service.NewTokenService(cfg.JWTSecret)
	}
	if opts.Redis != nil {
		deps.ProfileLimiter = middleware.NewProfileCreationRateLimiter(opts.Redis, cfg.ProfileRateLimit, m).Middleware()
	}

	routerOpts := router.Options{CORSAllowedOrigins: cfg.CORSAllowedOrigins}
	if cfg.MetricsEnabled {
		routerOpts.Gatherer = registry
	}

	engine := router.SetupRouter(deps, routerOpts)

	return &Server{
		router: engine,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		metrics:  m,
		registry: registry,
	}
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP until the server is shut down.
func (s *Server) Start() error {
	logrus.WithField("addr", s.http.Addr).Info("Starting server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
