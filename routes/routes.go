package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public API
	api := r.Group("/api")
	{
		api.POST("/login", controllers.Login)
		api.POST("/logout", controllers.Logout)
		api.POST("/forgot-password", controllers.ForgotPassword)
		api.POST("/reset-password", controllers.ResetPassword)

		api.GET("/activities", controllers.ListActivities)
		api.POST("/activities", controllers.CreateActivity)
		api.GET("/activities/:id", controllers.GetActivity)
		api.PUT("/activities/:id", controllers.UpdateActivity)
		api.DELETE("/activities/:id", controllers.DeleteActivity)

		api.GET("/verses", controllers.GetVerses)
		api.GET("/verses/search", controllers.SearchVerses)
		api.GET("/cards", controllers.GetCards)

		api.POST("/spreadsheet", controllers.AppendSheetRow)
	}

	// Admin routes
	admin := r.Group("/api")
	admin.Use(middlewares.AuthMiddleware())
	{
		admin.POST("/verses", controllers.AddTodayVerse)
		admin.POST("/bible-verses", controllers.AddVerse)
		admin.DELETE("/verses/:id", controllers.DeleteTodayVerse)
		admin.POST("/cards/artwork", controllers.UploadCardArtwork)
		admin.GET("/activities/export", controllers.ExportActivities)
	}

	return r
}
