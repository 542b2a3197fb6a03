package main

import (
	"log"
	"net/http"

	"fleetops/internal/cache"
	"fleetops/internal/config"
	"fleetops/internal/controllers"
	"fleetops/internal/logger"
	"fleetops/internal/middleware"
	"fleetops/internal/routes"

	logrus "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	// Structured logging to a rotating file
	logger.Setup(cfg.LogFile)

	// The middleware picks a default secret at init, before .env is read
	middleware.SetSecret(cfg.JWTSecret)

	// Connect to the database and migrate the schema
	config.InitDB(cfg)

	// Redis is optional: the dashboard cache fails open without it
	var kpiCache *cache.Client
	if cfg.RedisURL != "" {
		var err error
		kpiCache, err = cache.Initialize(cfg.RedisURL)
		if err != nil {
			logrus.WithError(err).Warn("redis unavailable, dashboard cache disabled")
		}
	}
	controllers.Init(kpiCache)

	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("Server running at %s", cfg.ServerAddr)
	log.Fatal(http.ListenAndServe(cfg.ServerAddr, handler))
}
