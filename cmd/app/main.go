package main

import (
	"airline/config"
	"airline/di"
	"airline/helper"
	"airline/infras/postgres"
	"airline/shared/logger"
	"airline/shared/prompt"
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 4

	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	streams := prompt.StdStreams()

	if len(args) != argLength {
		fmt.Fprintln(streams.Err, "Usage: app <dbname> <port> <user>")

		return exitUsage
	}

	cfg := config.Get().WithDatabase(args[1], args[2], args[3])

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Error().Err(err).Msg("Failed to migrate database")
			fmt.Fprintln(streams.Err, err)

			return exitFailure
		}
	}

	conn, err := postgres.New(cfg)
	if err != nil {
		log.Error().Err(err).Str("database", cfg.DB.Postgres.Name).Msg("Failed to connect to database")
		fmt.Fprintln(streams.Err, err)
		fmt.Fprintln(streams.Err, "Make sure you started postgres on this machine")

		return exitFailure
	}

	defer func() {
		fmt.Fprint(streams.Out, "Disconnecting from database...")

		_ = conn.Close()

		fmt.Fprintln(streams.Out, "Done\n\nBye !")
	}()

	app := di.InitializeConsole(cfg, conn, streams)

	defer func() {
		if err := app.Shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Failed to flush traces")
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("Console stopped")
		fmt.Fprintln(streams.Err, err)

		return exitFailure
	}

	return 0
}
