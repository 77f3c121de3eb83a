package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pulseform/survey-server/controllers"
	"github.com/pulseform/survey-server/middleware"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
			auth.POST("/google/login", controllers.GoogleLogin)
		}

		api.GET("/me", middleware.AuthJWT(), controllers.Me)

		surveys := api.Group("/surveys")
		{
			surveys.POST("", middleware.AuthJWT(), controllers.CreateSurvey)
			surveys.GET("/my", middleware.AuthJWT(), controllers.GetMySurveys)

			owner := surveys.Group("/:id")
			owner.Use(middleware.AuthJWT(), middleware.CheckSurveyOwner())
			{
				owner.GET("", controllers.GetSurveyDetail)
				owner.DELETE("", controllers.DeleteSurvey)
				owner.GET("/report", controllers.GetReport)
				owner.GET("/report/csv", controllers.GetReportCSV)
				owner.POST("/export", controllers.CreateExport)
			}
		}

		// Public respond-link endpoints, no auth required.
		api.GET("/surveys/public/:token", controllers.GetPublicSurvey)
		api.POST("/surveys/public/:token/responses", middleware.OptionalAuth(), controllers.SubmitResponse)

		api.GET("/exports/:job_id", middleware.AuthJWT(), controllers.GetExport)
	}
}
