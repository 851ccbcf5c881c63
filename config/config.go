package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
	} `envconfig:"SERVER"`

	App struct {
		Name string `envconfig:"APP_NAME" default:"airline"`
	} `envconfig:"APP"`

	DB struct {
		Postgres struct {
			Host           string `envconfig:"HOST"            default:"localhost"`
			Port           string `envconfig:"PORT"            default:"5432"`
			Username       string `envconfig:"USER"`
			Password       string `envconfig:"PASSWORD"`
			Name           string `envconfig:"NAME"`
			SSLMode        string `envconfig:"SSL_MODE"        default:"disable"`
			MaxRetry       int    `envconfig:"MAX_RETRY"       default:"1"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"1"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Booking struct {
		MaxSeatUpdateAttempts int `envconfig:"MAX_SEAT_UPDATE_ATTEMPTS" default:"3"`
	} `envconfig:"BOOKING"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Debug().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Debug().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Debug().Msg("Configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}

// WithDatabase points the postgres settings at the database named on the command line.
func (c *Config) WithDatabase(name, port, user string) *Config {
	c.DB.Postgres.Name = name
	c.DB.Postgres.Port = port
	c.DB.Postgres.Username = user

	return c
}
