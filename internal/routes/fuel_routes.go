package routes

import (
	"fleetops/internal/controllers"
	"fleetops/internal/middleware"
	"fleetops/internal/models"

	"github.com/gin-gonic/gin"
)

func FuelRoutes(r *gin.Engine) {
	fuel := r.Group("/fuel")
	fuel.Use(middleware.RequireRoles(models.RoleManager, models.RoleDispatcher))
	{
		fuel.POST("/", controllers.CreateFuelLog)
		fuel.GET("/", controllers.ListFuelLogs)
		fuel.GET("/:id", controllers.GetFuelLog)
		fuel.PUT("/:id", controllers.UpdateFuelLog)
		fuel.DELETE("/:id", controllers.DeleteFuelLog)
	}

	r.GET("/fuel/efficiency",
		middleware.RequireRoles(models.RoleManager, models.RoleAnalyst),
		controllers.FuelEfficiencyReport)
}
