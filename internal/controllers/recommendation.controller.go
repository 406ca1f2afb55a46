package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"fitnessai/internal/logging"
	"fitnessai/internal/metrics"
	"fitnessai/internal/middleware"
	"fitnessai/internal/models"
	"fitnessai/internal/services"
)

const errNoData = "Invalid request: No data provided"

type RecommendationController struct {
	diet    services.Analyzer
	stress  services.Analyzer
	workout services.Analyzer
	log     *logging.Logger
	metrics *metrics.Metrics
}

func NewRecommendationController(diet, stress, workout services.Analyzer, log *logging.Logger, m *metrics.Metrics) *RecommendationController {
	return &RecommendationController{
		diet:    diet,
		stress:  stress,
		workout: workout,
		log:     log.With("recommendations"),
		metrics: m,
	}
}

// Diet godoc
// @Summary Diet recommendations
// @Description Analyze daily intake and meal timing against the user's profile
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body models.DietRequest true "Profile, intake and nutrition logs"
// @Success 200 {object} models.Report{analysis=models.DietAnalysis} "Diet report"
// @Failure 400 {object} models.ErrorResponse "No data provided"
// @Failure 500 {object} models.ErrorResponse "Unexpected failure"
// @Router /api/diet [post]
func (rc *RecommendationController) Diet(c *gin.Context) {
	rc.serve(c, "diet", rc.diet)
}

// Stress godoc
// @Summary Stress recommendations
// @Description Analyze the current check-in and daily logs for stress, sleep and mood trends
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body models.StressRequest true "Profile, daily logs and current check-in"
// @Success 200 {object} models.Report{analysis=models.StressAnalysis} "Stress report"
// @Failure 400 {object} models.ErrorResponse "No data provided"
// @Failure 500 {object} models.ErrorResponse "Unexpected failure"
// @Router /api/stress [post]
func (rc *RecommendationController) Stress(c *gin.Context) {
	rc.serve(c, "stress", rc.stress)
}

// Workout godoc
// @Summary Workout recommendations
// @Description Analyze the current session and workout history against age and gender targets
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body models.WorkoutRequest true "Profile, workout history and current session"
// @Success 200 {object} models.Report{analysis=models.WorkoutAnalysis} "Workout report"
// @Failure 400 {object} models.ErrorResponse "No data provided"
// @Failure 500 {object} models.ErrorResponse "Unexpected failure"
// @Router /api/workout [post]
func (rc *RecommendationController) Workout(c *gin.Context) {
	rc.serve(c, "workout", rc.workout)
}

func (rc *RecommendationController) serve(c *gin.Context, name string, analyzer services.Analyzer) {
	payload, ok := readPayload(c)
	if !ok {
		rc.log.Warn("rejected request without data", "request_id", middleware.GetRequestID(c), "analyzer", name)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errNoData})
		return
	}

	report := analyzer.Analyze(payload)
	rc.metrics.ObserveReport(name, report.Fallback)
	rc.log.Info("generated recommendations",
		"request_id", middleware.GetRequestID(c),
		"analyzer", name,
		"count", len(report.Recommendations),
		"profile_complete", report.ProfileComplete,
		"fallback", report.Fallback,
	)
	c.JSON(http.StatusOK, report)
}

// readPayload decodes the body as a non-empty JSON object.
func readPayload(c *gin.Context) (map[string]any, bool) {
	if c.Request.Body == nil {
		return nil, false
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		return nil, false
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, false
	}
	return payload, len(payload) > 0
}
