package api

import (
	"bytes"
	"encoding/json"
	"fitmanager/routine-service/internal/auth"
	"fitmanager/routine-service/internal/metrics"
	"fitmanager/routine-service/internal/repository/memory"
	"fitmanager/routine-service/internal/service"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router  *gin.Engine
	store   *memory.Store
	logs    *test.Hook
	metrics *metrics.Metrics
}

func newTestServer(t *testing.T, opts ...func(*Dependencies)) *testServer {
	t.Helper()
	store := memory.NewStore()
	log, hook := test.NewNullLogger()

	deps := Dependencies{
		ServiceName:       "routine-service",
		Log:               log,
		Verifier:          auth.NewVerifier(testSecret),
		Metrics:           metrics.New("routine-service"),
		AllowedOrigins:    []string{"https://app.example.com"},
		ExerciseService:   service.NewExerciseService(store.Exercises(), log),
		RoutineService:    service.NewRoutineService(store.Routines(), store.Exercises(), log),
		WorkoutLogService: service.NewWorkoutLogService(store.WorkoutLogs(), store.Routines(), store.Exercises(), log),
	}
	for _, opt := range opts {
		opt(&deps)
	}

	router := gin.New()
	SetupRoutes(router, deps)
	return &testServer{router: router, store: store, logs: hook, metrics: deps.Metrics}
}

func signToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   userID,
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// do sends a request as userID; an empty userID sends no Authorization header.
func (s *testServer) do(t *testing.T, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+signToken(t, userID))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type errorBody struct {
	Error string `json:"error"`
	Count *int64 `json:"count"`
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, code int) {
	t.Helper()
	require.Equal(t, code, w.Code, w.Body.String())
}
