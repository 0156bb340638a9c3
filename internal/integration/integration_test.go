package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fitplan/backend/config"
	"github.com/pageza/fitplan/backend/internal/database"
	"github.com/pageza/fitplan/backend/internal/models"
	"github.com/pageza/fitplan/backend/internal/server"
	"github.com/pageza/fitplan/backend/internal/testhelpers"
)

const migrationsDir = "../../migrations"

func post(t *testing.T, h http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.10:4321"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

// TestPostgresStack runs the API against migrated Postgres and a Redis-backed
// profile rate limiter.
func TestPostgresStack(t *testing.T) {
	pg := testhelpers.SetupPostgres(t)
	rdb := testhelpers.SetupRedis(t)
	require.NoError(t, database.RunMigrations(pg.DB, migrationsDir))

	cfg := &config.Config{
		Environment:      config.Test,
		ServerHost:       "localhost",
		ServerPort:       "0",
		ProfileRateLimit: 3,
		MetricsEnabled:   true,
	}
	h := server.New(cfg, pg.DB, server.Options{Redis: rdb}).Handler()

	first := testhelpers.FakeUserRequest("improve_fitness")
	w := post(t, h, "/api/users", first)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"workoutPlanName":"Overall Fitness Program"`)
	assert.Contains(t, w.Body.String(), `"dietPlanName":"Balanced Nutrition Plan"`)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Remaining"))

	// duplicate email hits the explicit check and never reaches the table
	dup := testhelpers.FakeUserRequest("lose_weight")
	dup.Email = first.Email
	w = post(t, h, "/api/users", dup)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, pg.DB.Model(&models.User{}).Where("email = ?", first.Email).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	w = post(t, h, "/api/users", testhelpers.FakeUserRequest("maintain"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = post(t, h, "/api/users", testhelpers.FakeUserRequest("maintain"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = get(h, "/api/users")
	require.Equal(t, http.StatusOK, w.Code)
	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 2)

	w = post(t, h, "/api/workout-plans", testhelpers.FakeWorkoutPlanRequest(3))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = post(t, h, "/api/diet-plans", testhelpers.FakeDietPlanRequest(4))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var plan struct {
		ID    string `json:"id"`
		Meals []struct {
			DietPlanID string `json:"dietPlanId"`
		} `json:"meals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	require.Len(t, plan.Meals, 4)
	assert.Equal(t, plan.ID, plan.Meals[0].DietPlanID)

	w = get(h, fmt.Sprintf("/api/diet-plans/%s", plan.ID))
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(h, "/api/workout-plans")
	require.Equal(t, http.StatusOK, w.Code)
	var plans []struct {
		Exercises []interface{} `json:"exercises"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plans))
	require.Len(t, plans, 1)
	assert.Len(t, plans[0].Exercises, 3)
}
