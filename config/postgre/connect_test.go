package postgre

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"directory-api/config"
)

func TestDSN(t *testing.T) {
	cfg := config.PostgresConfig{Host: "db", Port: 5432, User: "app", Password: "pw", DBName: "directory"}
	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=directory sslmode=disable", DSN(cfg))

	cfg.SSLMode = "require"
	assert.Contains(t, DSN(cfg), "sslmode=require")
}
