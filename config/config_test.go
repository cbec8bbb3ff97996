package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopedidos/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/pedidos?sslmode=disable")
	t.Setenv("JWT_SECRET_KEY", "segredo")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Equal(t, time.Hour, cfg.TokenExpiry)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 2*time.Second, cfg.CacheTimeout)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/pedidos?sslmode=disable")
	t.Setenv("JWT_SECRET_KEY", "segredo")
	t.Setenv("JWT_EXPIRY_MIN", "15")
	t.Setenv("DB_TIMEOUT_SEC", "2")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.TokenExpiry)
	assert.Equal(t, 2*time.Second, cfg.DBTimeout)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/pedidos?sslmode=disable")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}
