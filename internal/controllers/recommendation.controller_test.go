package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fitnessai/internal/controllers"
	"fitnessai/internal/logging"
	"fitnessai/internal/metrics"
	"fitnessai/internal/models"
	"fitnessai/internal/services"
)

type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(payload map[string]any) models.Report {
	args := m.Called(payload)
	return args.Get(0).(models.Report)
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func setupControllerWithMock() (*controllers.RecommendationController, *MockAnalyzer, *metrics.Metrics) {
	analyzer := new(MockAnalyzer)
	m := metrics.New()
	controller := controllers.NewRecommendationController(analyzer, analyzer, analyzer, logging.Nop(), m)
	return controller, analyzer, m
}

func TestRejectsRequestsWithoutData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"invalid json", "{not json"},
		{"array", "[1,2,3]"},
		{"string", `"hello"`},
		{"null", "null"},
		{"empty object", "{}"},
	}
	for _, path := range []string{"/api/diet", "/api/stress", "/api/workout"} {
		for _, tt := range tests {
			t.Run(path+" "+tt.name, func(t *testing.T) {
				controller, analyzer, _ := setupControllerWithMock()
				router := setupTestRouter()
				router.POST("/api/diet", controller.Diet)
				router.POST("/api/stress", controller.Stress)
				router.POST("/api/workout", controller.Workout)

				req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.JSONEq(t, `{"error":"Invalid request: No data provided"}`, w.Body.String())
				analyzer.AssertNotCalled(t, "Analyze", mock.Anything)
			})
		}
	}
}

func TestForwardsPayloadAndReport(t *testing.T) {
	controller, analyzer, m := setupControllerWithMock()
	router := setupTestRouter()
	router.POST("/api/stress", controller.Stress)

	analyzer.On("Analyze", mock.MatchedBy(func(p map[string]any) bool {
		checkIn, ok := p["current_check_in"].(map[string]any)
		return ok && checkIn["stressLevel"] == 7.0
	})).Return(models.Report{
		Recommendations: []string{"breathe"},
		Analysis:        map[string]any{"ok": true},
		ProfileComplete: true,
	}).Once()

	body, _ := json.Marshal(map[string]any{"current_check_in": map[string]any{"stressLevel": 7}})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/stress", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"recommendations":["breathe"],"analysis":{"ok":true},"profile_complete":true}`, w.Body.String())
	analyzer.AssertExpectations(t)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReportsTotal.WithLabelValues("stress", metrics.OutcomeOK)))
}

func TestFallbackReportIsStill200(t *testing.T) {
	controller, analyzer, m := setupControllerWithMock()
	router := setupTestRouter()
	router.POST("/api/workout", controller.Workout)

	analyzer.On("Analyze", mock.Anything).Return(models.Report{
		Recommendations: []string{"general tip"},
		Analysis:        models.ErrorAnalysis{Error: "boom"},
		Fallback:        true,
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/workout", strings.NewReader(`{"user_data":"x"}`)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"recommendations":["general tip"],"analysis":{"error":"boom","profile_complete":false},"profile_complete":false}`, w.Body.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReportsTotal.WithLabelValues("workout", metrics.OutcomeFallback)))
}

func TestEndpointsWithRealAnalyzers(t *testing.T) {
	now := func() time.Time { return time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC) }
	log := logging.Nop()
	controller := controllers.NewRecommendationController(
		services.NewDietAnalyzer(log, now),
		services.NewStressAnalyzer(log, now),
		services.NewWorkoutAnalyzer(log, now),
		log,
		metrics.New(),
	)
	router := setupTestRouter()
	router.POST("/api/diet", controller.Diet)
	router.POST("/api/stress", controller.Stress)
	router.POST("/api/workout", controller.Workout)

	tests := []struct {
		path     string
		body     string
		analysis []string
	}{
		{
			path:     "/api/diet",
			body:     `{"user_data":{"dateOfBirth":"1996-01-01","gender":"female"},"daily_intake":{"calories":2000,"macronutrients":{"protein":50,"carbohydrates":300,"fats":40}}}`,
			analysis: []string{"current_intake", "meal_pattern", "nutrient_balance", "profile_data"},
		},
		{
			path:     "/api/stress",
			body:     `{"current_check_in":{"mood":"sad","stressLevel":15,"sleepQuality":3}}`,
			analysis: []string{"current_state", "patterns"},
		},
		{
			path:     "/api/workout",
			body:     `{"user_data":{"dateOfBirth":null,"gender":"other"},"current_stats":{"heartRate":150}}`,
			analysis: []string{"current_workout", "weekly_stats", "heart_rate_zones", "profile_data"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body)))
			require.Equal(t, http.StatusOK, w.Code)

			var resp map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp, "recommendations")
			assert.Contains(t, resp, "profile_complete")

			var analysis map[string]any
			require.NoError(t, json.Unmarshal(resp["analysis"], &analysis))
			for _, key := range tt.analysis {
				assert.Contains(t, analysis, key)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	controller := controllers.NewHealthController(func() time.Time {
		return time.Date(2026, 10, 14, 14, 30, 0, 0, time.FixedZone("CEST", 2*3600))
	})
	router := setupTestRouter()
	router.GET("/api/health", controller.Health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","timestamp":"2026-10-14T12:30:00Z"}`, w.Body.String())
}
