package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"fleetops/internal/middleware"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	UserRoutes(r)
	VehicleRoutes(r)
	DriverRoutes(r)
	TripRoutes(r)
	FuelRoutes(r)
	MaintenanceRoutes(r)
	ExpenseRoutes(r)
	DashboardRoutes(r)

	return r
}
