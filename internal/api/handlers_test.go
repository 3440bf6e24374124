package api

import (
	"context"
	"errors"
	"fitmanager/routine-service/internal/repository"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAuth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/exercises", "", nil)
	requireStatus(t, w, http.StatusUnauthorized)
	assert.Equal(t, "Access token required", decode[errorBody](t, w).Error)

	req := httptest.NewRequest(http.MethodGet, "/routines", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	requireStatus(t, w, http.StatusForbidden)
	assert.Equal(t, "Invalid token", decode[errorBody](t, w).Error)

	req = httptest.NewRequest(http.MethodGet, "/routines", nil)
	req.Header.Set("Authorization", signToken(t, "u1"))
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestExercises_CreateListGet(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/exercises", "u1", map[string]interface{}{
		"name":         "Sentadillas",
		"muscleGroups": []string{"legs"},
		"equipment":    []string{"bodyweight"},
		"difficulty":   "beginner",
	})
	requireStatus(t, w, http.StatusCreated)
	created := decode[ExerciseResponse](t, w)
	assert.Len(t, created.ID, 24)
	assert.Equal(t, "Sentadillas", created.Name)
	assert.Equal(t, []string{}, created.Tips)

	w = s.do(t, http.MethodGet, "/exercises?muscleGroup=legs&search=SENTA", "u1", nil)
	requireStatus(t, w, http.StatusOK)
	list := decode[ExerciseListResponse](t, w)
	require.Len(t, list.Exercises, 1)
	assert.Equal(t, created.ID, list.Exercises[0].ID)
	assert.Equal(t, int64(1), list.Total)
	assert.Equal(t, 1, list.CurrentPage)
	assert.Equal(t, int64(1), list.TotalPages)

	w = s.do(t, http.MethodGet, "/exercises?muscleGroup=chest", "u1", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Empty(t, decode[ExerciseListResponse](t, w).Exercises)

	w = s.do(t, http.MethodGet, "/exercises/"+created.ID, "u1", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "Sentadillas", decode[ExerciseResponse](t, w).Name)

	w = s.do(t, http.MethodGet, "/exercises/"+primitive.NewObjectID().Hex(), "u1", nil)
	requireStatus(t, w, http.StatusNotFound)
	assert.Equal(t, "Exercise not found", decode[errorBody](t, w).Error)

	w = s.do(t, http.MethodGet, "/exercises/not-an-id", "u1", nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestExercises_Validation(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/exercises", "u1", map[string]string{"name": "ab"})
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, `"name" length must be at least 3 characters long`, decode[errorBody](t, w).Error)

	w = s.do(t, http.MethodPost, "/exercises", "u1", `{"name": `)
	requireStatus(t, w, http.StatusBadRequest)
	assert.True(t, strings.HasPrefix(decode[errorBody](t, w).Error, "Invalid request body"))
}

func TestExercises_Bulk(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/exercises/bulk", "u1", map[string]interface{}{
		"exercises": []map[string]string{{"name": "Sentadillas"}, {"name": "ab"}},
	})
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t,
		`Validation error for exercise "ab" (index 1): "name" length must be at least 3 characters long`,
		decode[errorBody](t, w).Error)

	list := decode[ExerciseListResponse](t, s.do(t, http.MethodGet, "/exercises", "u1", nil))
	assert.Zero(t, list.Total)

	w = s.do(t, http.MethodPost, "/exercises/bulk", "u1", map[string]interface{}{"exercises": map[string]string{"name": "Sentadillas"}})
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "exercises must be an array", decode[errorBody](t, w).Error)

	w = s.do(t, http.MethodPost, "/exercises/bulk", "u1", map[string]interface{}{
		"exercises": []map[string]string{{"name": "Sentadillas"}, {"name": "Zancadas"}},
	})
	requireStatus(t, w, http.StatusCreated)
	batch := decode[ExerciseBatchResponse](t, w)
	assert.Equal(t, "Successfully created 2 exercises", batch.Message)
	assert.Len(t, batch.Exercises, 2)
}

func TestExercises_SeedTwiceAndStats(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/exercises/seed", "u1", nil)
	requireStatus(t, w, http.StatusCreated)
	seeded := decode[ExerciseBatchResponse](t, w)
	n := len(seeded.Exercises)
	require.NotZero(t, n)
	assert.Equal(t, fmt.Sprintf("Successfully seeded %d exercises", n), seeded.Message)

	w = s.do(t, http.MethodPost, "/exercises/seed", "u1", nil)
	requireStatus(t, w, http.StatusBadRequest)
	body := decode[errorBody](t, w)
	assert.Equal(t, "Exercises already exist in database", body.Error)
	require.NotNil(t, body.Count)
	assert.Equal(t, int64(n), *body.Count)

	w = s.do(t, http.MethodGet, "/exercises/stats", "u1", nil)
	requireStatus(t, w, http.StatusOK)
	stats := decode[map[string]interface{}](t, w)
	assert.EqualValues(t, n, stats["totalExercises"])
	groups := stats["stats"].(map[string]interface{})
	byMuscle := groups["byMuscleGroup"].([]interface{})
	require.NotEmpty(t, byMuscle)
	first := byMuscle[0].(map[string]interface{})
	assert.Contains(t, first, "_id")
	assert.Contains(t, first, "count")
	assert.Len(t, stats["recentExercises"], 5)
}

func TestPaginationErrors(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		query string
		msg   string
	}{
		{"limit=0", `"limit" must be greater than or equal to 1`},
		{"limit=101", `"limit" must be less than or equal to 100`},
		{"page=abc", `"page" must be an integer`},
		{"page=0", `"page" must be greater than or equal to 1`},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := s.do(t, http.MethodGet, "/exercises?"+tt.query, "u1", nil)
			requireStatus(t, w, http.StatusBadRequest)
			assert.Equal(t, tt.msg, decode[errorBody](t, w).Error)
		})
	}

	w := s.do(t, http.MethodGet, "/routines?isPublic=maybe", "u1", nil)
	requireStatus(t, w, http.StatusBadRequest)
	w = s.do(t, http.MethodGet, "/workout-logs?startDate=yesterday", "u1", nil)
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, `"startDate" must be a valid date`, decode[errorBody](t, w).Error)
}

func TestExercises_PagesNewestFirst(t *testing.T) {
	s := newTestServer(t)
	for i := 0; i < 5; i++ {
		requireStatus(t, s.do(t, http.MethodPost, "/exercises", "u1", map[string]string{"name": fmt.Sprintf("Ejercicio %d", i)}), http.StatusCreated)
	}

	list := decode[ExerciseListResponse](t, s.do(t, http.MethodGet, "/exercises?page=2&limit=2", "u1", nil))
	assert.Equal(t, int64(5), list.Total)
	assert.Equal(t, 2, list.CurrentPage)
	assert.Equal(t, int64(3), list.TotalPages)
	require.Len(t, list.Exercises, 2)
	assert.Equal(t, "Ejercicio 2", list.Exercises[0].Name)
	assert.Equal(t, "Ejercicio 1", list.Exercises[1].Name)
}

func TestStoreErrors(t *testing.T) {
	s := newTestServer(t)

	s.store.FailWith(fmt.Errorf("%w: server selection timeout", repository.ErrUnavailable))
	w := s.do(t, http.MethodGet, "/exercises", "u1", nil)
	requireStatus(t, w, http.StatusServiceUnavailable)
	assert.Equal(t, "Service temporarily unavailable", decode[errorBody](t, w).Error)

	s.store.FailWith(errors.New("disk on fire"))
	w = s.do(t, http.MethodGet, "/routines", "u1", nil)
	requireStatus(t, w, http.StatusInternalServerError)
	assert.Equal(t, "Internal server error", decode[errorBody](t, w).Error)
	assert.NotContains(t, w.Body.String(), "disk on fire")

	var logged bool
	for _, e := range s.logs.AllEntries() {
		if e.Message == "Unhandled service error" {
			logged = true
			assert.EqualError(t, e.Data["error"].(error), "disk on fire")
		}
	}
	assert.True(t, logged)
}

func TestHealthMetricsAndNoRoute(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", "", nil)
	requireStatus(t, w, http.StatusOK)
	health := decode[map[string]interface{}](t, w)
	assert.Equal(t, "OK", health["status"])
	assert.Equal(t, "routine-service", health["service"])

	w = s.do(t, http.MethodGet, "/nope", "", nil)
	requireStatus(t, w, http.StatusNotFound)
	assert.Equal(t, "Route not found", decode[errorBody](t, w).Error)

	w = s.do(t, http.MethodGet, "/metrics", "", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/health",service="routine-service",status_code="200"} 1`)
	assert.Contains(t, w.Body.String(), "service_up")
}

func TestCORS(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/routines", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", "", nil)
	requestID := w.Header().Get(requestIDHeader)
	assert.NotEmpty(t, requestID)

	entry := s.logs.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Request handled", entry.Message)
	assert.Equal(t, requestID, entry.Data["request_id"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}

func TestHealthReportsStore(t *testing.T) {
	s := newTestServer(t, func(d *Dependencies) {
		d.StorePing = func(context.Context) error { return repository.ErrUnavailable }
	})

	w := s.do(t, http.MethodGet, "/health", "", nil)
	requireStatus(t, w, http.StatusOK)
	health := decode[map[string]interface{}](t, w)
	assert.Equal(t, "OK", health["status"])
	assert.Equal(t, "disconnected", health["database"])
}
