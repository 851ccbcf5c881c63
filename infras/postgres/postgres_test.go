package postgres_test

import (
	"airline/config"
	"airline/infras/postgres"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptor(t *testing.T) {
	cfg := config.Config{}
	cfg.DB.Postgres.Host = "localhost"
	cfg.DB.Postgres.SSLMode = "disable"
	cfg.WithDatabase("airline", "5432", "operator")

	assert.Equal(t, "postgres://operator:@localhost:5432/airline?sslmode=disable", postgres.Descriptor(cfg))
}

func TestConnectionClose_Nil(t *testing.T) {
	var conn *postgres.Connection

	assert.NoError(t, conn.Close())
}
