package routes

import (
	"github.com/gin-gonic/gin"

	"fitnessai/internal/controllers"
	"fitnessai/internal/logging"
	"fitnessai/internal/metrics"
	"fitnessai/internal/middleware"
)

// NewRouter builds the engine with the shared middleware chain and every
// route of the service.
func NewRouter(log *logging.Logger, m *metrics.Metrics, rc *controllers.RecommendationController, hc *controllers.HealthController) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.Metrics(m),
		// innermost so the access log and metrics see the 500
		middleware.Recovery(log),
	)

	RegisterRecommendationRoutes(router, rc)
	RegisterHealthRoutes(router, hc)
	RegisterMetricsRoutes(router, m)
	RegisterSwaggerRoutes(router)
	return router
}
