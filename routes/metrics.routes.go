package routes

import (
	"github.com/gin-gonic/gin"

	"fitnessai/internal/metrics"
)

// RegisterMetricsRoutes exposes the Prometheus registry at /metrics.
func RegisterMetricsRoutes(router *gin.Engine, m *metrics.Metrics) {
	router.GET("/metrics", gin.WrapH(m.Handler()))
}
