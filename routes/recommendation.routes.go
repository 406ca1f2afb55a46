package routes

import (
	"github.com/gin-gonic/gin"

	"fitnessai/internal/controllers"
)

func RegisterRecommendationRoutes(router *gin.Engine, recommendationController *controllers.RecommendationController) {
	api := router.Group("/api")
	{
		api.POST("/diet", recommendationController.Diet)
		api.POST("/stress", recommendationController.Stress)
		api.POST("/workout", recommendationController.Workout)
	}
}
