// Package api exposes the profile, recommendation and plan endpoints over gin.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/fitplan/backend/internal/metrics"
	"github.com/pageza/fitplan/backend/internal/middleware"
	"github.com/pageza/fitplan/backend/internal/service"
)

// Dependencies are the collaborators the handlers are built from. Tokens and
// ProfileLimiter are optional.
type Dependencies struct {
	Users          service.IUserService
	WorkoutPlans   service.IWorkoutPlanService
	DietPlans      service.IDietPlanService
	Tokens         middleware.TokenValidator
	ProfileLimiter gin.HandlerFunc
	Health         HealthChecker
	Metrics        *metrics.Manager
}

// SetupAPI registers every route on the engine.
func SetupAPI(router *gin.Engine, deps Dependencies) {
	health := NewHealthHandler(deps.Health)
	router.GET("/health", health.Check)

	api := router.Group("/api")
	{
		api.GET("/health", health.Check)

		var authorize []gin.HandlerFunc
		if deps.Tokens != nil {
			authorize = append(authorize, middleware.AdminAuth(deps.Tokens))
		}

		NewUserHandler(deps.Users, deps.ProfileLimiter).RegisterRoutes(api)
		NewRecommendationHandler(deps.Metrics).RegisterRoutes(api)
		NewWorkoutPlanHandler(deps.WorkoutPlans, authorize...).RegisterRoutes(api)
		NewDietPlanHandler(deps.DietPlans, authorize...).RegisterRoutes(api)
	}
}
