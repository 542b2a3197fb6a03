package routes

import (
	"fleetops/internal/controllers"
	"fleetops/internal/middleware"
	"fleetops/internal/models"

	"github.com/gin-gonic/gin"
)

func DriverRoutes(r *gin.Engine) {
	// Reads are open to any authenticated role; dispatchers need driver
	// availability to plan trips.
	drivers := r.Group("/drivers")
	drivers.Use(middleware.RequireAuth())
	{
		drivers.GET("/", controllers.ListDrivers)
		drivers.GET("/available", controllers.ListAvailableDrivers)
		drivers.GET("/:id", controllers.GetDriver)
	}

	// Compliance management sits with managers and safety officers.
	compliance := r.Group("/drivers")
	compliance.Use(middleware.RequireRoles(models.RoleManager, models.RoleSafetyOfficer))
	{
		compliance.POST("/", controllers.CreateDriver)
		compliance.PUT("/:id", controllers.UpdateDriver)
		compliance.DELETE("/:id", controllers.DeleteDriver)
		compliance.GET("/compliance-alerts", controllers.ComplianceAlerts)
		compliance.POST("/:id/suspend", controllers.SuspendDriver)
		compliance.POST("/:id/reinstate", controllers.ReinstateDriver)
	}
}
