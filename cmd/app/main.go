package main

import (
	"staywise/config"
	"staywise/di"
	"staywise/helper"
	"staywise/infras/metrics"
	"staywise/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title StayWise API
// @version 1.0
// @description Rental listings, onboarding, concierge and dashboards.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	metrics.Register()

	http := di.InitializeService()
	http.Serve()
}
