package main

import (
	"airline/config"
	"airline/helper"
	"airline/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down/drop/step-up) is required")
	}

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	switch os.Args[1] {
	case "up":
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate up")
		}
	case "down":
		if err := helper.Down(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate down")
		}
	case "drop":
		if err := helper.Drop(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to drop migrations")
		}
	case "step-up":
		if err := helper.StepUp(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate one step up")
		}
	default:
		log.Fatal().Str("direction", os.Args[1]).Msg("Invalid direction. Use 'up', 'down', 'drop' or 'step-up'")
	}
}
