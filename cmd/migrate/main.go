package main

import (
	"mallbook/config"
	"mallbook/helper"
	"mallbook/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

// usage: migrate <up|down|step-up|drop|version>
func main() {
	logger.InitLogger()

	if len(os.Args) != 2 {
		log.Fatal().Msg("Migration action is required: up, down, step-up, drop or version")
	}

	action, err := helper.ParseAction(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid migration action")
	}

	cfg := config.Get()
	logger.Configure(cfg)

	if err := helper.Runner(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", string(action)).Msg("Migration failed")
	}
}
