package postgres

//nolint:revive
import (
	"airline/config"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	// One console session drives one sequence of statements.
	postgresMaxOpenConnection = 1
	postgresMaxIdleConnection = 1
)

var errNoAttempts = errors.New("no connection attempts configured")

type Connection struct {
	DB *sqlx.DB
}

func New(config *config.Config) (*Connection, error) {
	db, err := CreatePostgresConnection(*config)
	if err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

// Close releases the connection. Safe to call on a nil Connection.
func (c *Connection) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}

	if err := c.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	return nil
}

// Descriptor builds the connection URL for the configured database.
func Descriptor(config config.Config) string {
	pg := config.DB.Postgres

	descriptor := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pg.Username, pg.Password),
		Host:     net.JoinHostPort(pg.Host, pg.Port),
		Path:     "/" + pg.Name,
		RawQuery: url.Values{"sslmode": []string{pg.SSLMode}}.Encode(),
	}

	return descriptor.String()
}

// CreatePostgresConnection connects to the configured database, retrying up to MaxRetry times.
func CreatePostgresConnection(config config.Config) (*sqlx.DB, error) {
	pg := config.DB.Postgres
	descriptor := Descriptor(config)

	err := errNoAttempts

	for retry := range max(pg.MaxRetry, 1) {
		var sqlDB *sqlx.DB

		sqlDB, err = sqlx.Connect(driverName, descriptor)
		if err == nil {
			log.
				Info().
				Str("host", pg.Host).
				Str("port", pg.Port).
				Str("dbName", pg.Name).
				Str("user", pg.Username).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB, nil
		}

		log.
			Error().
			Err(err).
			Str("host", pg.Host).
			Str("port", pg.Port).
			Str("dbName", pg.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database")

		if retry+1 < pg.MaxRetry {
			time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
		}
	}

	return nil, fmt.Errorf("unable to connect to database: %w", err)
}
