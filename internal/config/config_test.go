package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shoplite/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "unknown", cfg.AppEnv)
	assert.Equal(t, "dev-secret", cfg.TokenSecret)
	assert.Equal(t, ":8001", cfg.UserAddr)
	assert.Equal(t, ":8002", cfg.OrderAddr)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("TOKEN_SECRET", "s3cr3t")
	t.Setenv("USER_ADDR", ":9001")
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := config.Load()

	assert.Equal(t, "staging", cfg.AppEnv)
	assert.Equal(t, "s3cr3t", cfg.TokenSecret)
	assert.Equal(t, ":9001", cfg.UserAddr)
	assert.Equal(t, "sqlite", cfg.StoreBackend)
	assert.Equal(t, "debug", cfg.LogLevel)
}
