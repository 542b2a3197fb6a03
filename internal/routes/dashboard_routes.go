package routes

import (
	"fleetops/internal/controllers"
	"fleetops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func DashboardRoutes(r *gin.Engine) {
	r.GET("/dashboard", middleware.RequireAuth(), controllers.Dashboard)
}
