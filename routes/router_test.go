package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "fitnessai/docs"
	"fitnessai/internal/controllers"
	"fitnessai/internal/logging"
	"fitnessai/internal/metrics"
	"fitnessai/internal/middleware"
	"fitnessai/internal/services"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logging.Nop()
	m := metrics.New()
	rc := controllers.NewRecommendationController(
		services.NewDietAnalyzer(log, nil),
		services.NewStressAnalyzer(log, nil),
		services.NewWorkoutAnalyzer(log, nil),
		log, m,
	)
	return NewRouter(log, m, rc, controllers.NewHealthController(time.Now))
}

func TestRoutesRegistered(t *testing.T) {
	router := setupTestRouter()

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodPost, "/api/diet", "", http.StatusBadRequest},
		{http.MethodPost, "/api/stress", `{"current_check_in":{"stressLevel":3}}`, http.StatusOK},
		{http.MethodPost, "/api/workout", `{"user_data":{}}`, http.StatusOK},
		{http.MethodGet, "/api/health", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/swagger/doc.json", "", http.StatusOK},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestMetricsCountRequests(t *testing.T) {
	router := setupTestRouter()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `fitnessai_http_requests_total{method="GET",route="/api/health",status="200"} 1`)
}

func TestSwaggerDocDescribesEndpoints(t *testing.T) {
	router := setupTestRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	for _, path := range []string{"/api/diet", "/api/stress", "/api/workout", "/api/health"} {
		assert.Contains(t, w.Body.String(), `"`+path+`"`)
	}
}
