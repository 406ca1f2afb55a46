package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitnessai/internal/models"
)

type HealthController struct {
	now func() time.Time
}

func NewHealthController(now func() time.Time) *HealthController {
	if now == nil {
		now = time.Now
	}
	return &HealthController{now: now}
}

// Health godoc
// @Summary Health check
// @Description Report that the service is up
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /api/health [get]
func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: hc.now().UTC().Format(time.RFC3339),
	})
}
