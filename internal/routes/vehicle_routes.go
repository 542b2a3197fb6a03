package routes

import (
	"fleetops/internal/controllers"
	"fleetops/internal/middleware"
	"fleetops/internal/models"

	"github.com/gin-gonic/gin"
)

func VehicleRoutes(r *gin.Engine) {
	vehicles := r.Group("/vehicles")
	vehicles.Use(middleware.RequireRoles(models.RoleManager, models.RoleDispatcher))
	{
		vehicles.POST("/", controllers.CreateVehicle)
		vehicles.GET("/", controllers.ListVehicles)
		vehicles.GET("/available", controllers.ListAvailableVehicles)
		vehicles.GET("/:id", controllers.GetVehicle)
		vehicles.PUT("/:id", controllers.UpdateVehicle)
		vehicles.DELETE("/:id", controllers.DeleteVehicle)
	}

	// Retirement is terminal; managers only.
	r.POST("/vehicles/:id/retire",
		middleware.RequireRoles(models.RoleManager), controllers.RetireVehicle)

	// Financial rollup for analysts and managers.
	r.GET("/vehicles/:id/roi",
		middleware.RequireRoles(models.RoleManager, models.RoleAnalyst), controllers.VehicleROI)
}
