package routes

import (
	"fleetops/internal/controllers"
	"fleetops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middleware.RequireAuth(), controllers.Me)
		auth.POST("/change-password", middleware.RequireAuth(), controllers.ChangePassword)
	}
}
