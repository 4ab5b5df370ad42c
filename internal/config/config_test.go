package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jredd/mouse-tracks-backend/internal/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASS", "pass")
	t.Setenv("DB_NAME", "mousetracks")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "8080", cfg.APIPort)
	assert.Equal(t, "secret", cfg.JWTSecret)
	assert.Equal(t,
		"host=localhost port=5432 user=app password=pass dbname=mousetracks sslmode=disable",
		cfg.DSN())
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	// t.Setenv регистрирует восстановление, после чего переменная снимается
	t.Setenv("JWT_SECRET", "x")
	os.Unsetenv("JWT_SECRET")

	_, err := config.Load()
	assert.Error(t, err)
}
