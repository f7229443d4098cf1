package main

import (
	"context"
	"mallbook/config"
	"mallbook/di"
	"mallbook/helper"
	"mallbook/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Mallbook API
// @version 1.0
// @description Store directory, service catalog and slot booking for a shopping mall.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.InitLogger()

	cfg := config.Get()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Refusing to start with incomplete configuration")
	}

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if len(cfg.Kafka.Brokers) > 0 {
		go di.InitializeBookingListener().Listen(ctx)
	}

	http := di.InitializeService()
	http.Serve()
}
