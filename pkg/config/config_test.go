package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/saftpt-validator/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.01", cfg.Validation.DeltaLine)
	assert.True(t, cfg.Validation.ContinuousLines)
	assert.False(t, cfg.Validation.AllowDebitAndCredit)
	assert.True(t, cfg.Validation.Sign)
	assert.True(t, cfg.Validation.Schema)
	assert.False(t, cfg.DB.Enabled())
	assert.False(t, cfg.Signature.Enabled())
}

func TestLoad_Entorno(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("VALIDATION_DELTA_TABLE", "0.5")
	t.Setenv("VALIDATION_CONTINUOUS_LINES", "false")
	t.Setenv("VALIDATION_SIGN", "no-es-bool")
	t.Setenv("DB_HOST", "db")
	t.Setenv("SIGN_PUBLIC_KEY_PATH", "/keys/pub.pem")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "0.5", cfg.Validation.DeltaTable)
	assert.False(t, cfg.Validation.ContinuousLines)
	assert.True(t, cfg.Validation.Sign, "valor inválido usa el defecto")
	assert.True(t, cfg.DB.Enabled())
	assert.True(t, cfg.Signature.Enabled())
}

func TestLoad_ProduccionExigeSecreto(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "saft", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/saft?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
