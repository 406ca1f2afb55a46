package routes

import (
	"github.com/gin-gonic/gin"

	"fitnessai/internal/controllers"
)

func RegisterHealthRoutes(router *gin.Engine, healthController *controllers.HealthController) {
	router.GET("/api/health", healthController.Health)
}
