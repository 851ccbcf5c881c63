package helper_test

import (
	"airline/config"
	"airline/helper"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionString(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Host = "localhost"
	cfg.DB.Postgres.SSLMode = "disable"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.WithDatabase("airline", "5432", "operator")

	assert.Equal(t,
		"postgres://operator:@localhost:5432/airline?sslmode=disable&x-migrations-table=schema_migrations",
		helper.ConnectionString(cfg),
	)
}
