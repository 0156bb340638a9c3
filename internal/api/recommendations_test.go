package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fitplan/backend/internal/metrics"
	"github.com/pageza/fitplan/backend/internal/recommendation"
)

func newRecommendationRouter(m *metrics.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewRecommendationHandler(m).RegisterRoutes(router.Group("/api"))
	return router
}

func TestDeriveRecommendation(t *testing.T) {
	m := metrics.NewTestManager()
	router := newRecommendationRouter(m)

	w := doJSON(router, http.MethodPost, "/api/recommendations", map[string]interface{}{
		"bodyGoal": "build_muscle", "gender": "female", "weight": 60,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var rec recommendation.Recommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, recommendation.BuildMuscle, rec.BodyGoal)
	assert.Equal(t, "build muscle", rec.Headline)
	assert.Equal(t, "Muscle Building Program", rec.Workout.Name)
	assert.Equal(t, "Muscle Building Diet Plan", rec.Diet.Name)
	assert.Equal(t, 1452, rec.Diet.Calories)
	assert.Equal(t, recommendation.Macros{Protein: 132, Fat: 40, Carbs: 141}, rec.Diet.Macros)
	assert.Len(t, rec.Diet.Meals, 4)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRecommendations.WithLabelValues("build_muscle")))
}

func TestDeriveRecommendationUnknownGoal(t *testing.T) {
	router := newRecommendationRouter(nil)

	w := doJSON(router, http.MethodPost, "/api/recommendations", map[string]interface{}{
		"bodyGoal": "unknown", "gender": "male", "weight": 75,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var rec recommendation.Recommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, recommendation.Maintain, rec.BodyGoal)
	assert.Equal(t, "Maintenance Program", rec.Workout.Name)
	assert.Equal(t, "Balanced Fitness Diet Plan", rec.Diet.Name)
	assert.Equal(t, "improve your overall fitness", rec.Headline)
}

func TestDeriveRecommendationInvalid(t *testing.T) {
	router := newRecommendationRouter(nil)

	w := doJSON(router, http.MethodPost, "/api/recommendations", map[string]interface{}{"bodyGoal": "maintain"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/recommendations", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
