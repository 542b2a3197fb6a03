package routes

import (
	"fleetops/internal/controllers"
	"fleetops/internal/middleware"
	"fleetops/internal/models"

	"github.com/gin-gonic/gin"
)

func ExpenseRoutes(r *gin.Engine) {
	reads := r.Group("/expenses")
	reads.Use(middleware.RequireAuth())
	{
		reads.GET("/", controllers.ListExpenses)
		reads.GET("/:id", controllers.GetExpense)
	}

	writes := r.Group("/expenses")
	writes.Use(middleware.RequireRoles(models.RoleManager, models.RoleAnalyst))
	{
		writes.POST("/", controllers.CreateExpense)
		writes.PUT("/:id", controllers.UpdateExpense)
		writes.DELETE("/:id", controllers.DeleteExpense)
	}
}
