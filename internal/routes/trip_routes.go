package routes

import (
	"fleetops/internal/controllers"
	"fleetops/internal/middleware"
	"fleetops/internal/models"

	"github.com/gin-gonic/gin"
)

func TripRoutes(r *gin.Engine) {
	trips := r.Group("/trips")
	trips.Use(middleware.RequireRoles(models.RoleManager, models.RoleDispatcher))
	{
		trips.POST("/", controllers.CreateTrip)
		trips.GET("/", controllers.ListTrips)
		trips.GET("/:id", controllers.GetTrip)
		trips.PUT("/:id", controllers.UpdateTrip)
		trips.DELETE("/:id", controllers.DeleteTrip)

		trips.POST("/:id/dispatch", controllers.DispatchTrip)
		trips.POST("/:id/complete", controllers.CompleteTrip)
		trips.POST("/:id/cancel", controllers.CancelTrip)
	}
}
