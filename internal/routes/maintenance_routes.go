package routes

import (
	"fleetops/internal/controllers"
	"fleetops/internal/middleware"
	"fleetops/internal/models"

	"github.com/gin-gonic/gin"
)

func MaintenanceRoutes(r *gin.Engine) {
	reads := r.Group("/maintenance")
	reads.Use(middleware.RequireAuth())
	{
		reads.GET("/", controllers.ListMaintenance)
		reads.GET("/:id", controllers.GetMaintenance)
	}

	writes := r.Group("/maintenance")
	writes.Use(middleware.RequireRoles(models.RoleManager, models.RoleSafetyOfficer))
	{
		writes.POST("/", controllers.CreateMaintenance)
		writes.PUT("/:id", controllers.UpdateMaintenance)
		writes.DELETE("/:id", controllers.DeleteMaintenance)
		writes.POST("/:id/complete", controllers.CompleteMaintenance)
	}
}
