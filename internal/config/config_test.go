package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "toursandtravels-web", cfg.App.Name)
	assert.Equal(t, "127.0.0.1:3000", cfg.App.Addr())
	assert.Equal(t, "http://localhost:8080", cfg.Backend.BaseURL)
	assert.Equal(t, TokenStoreFile, cfg.Token.Backend)
	assert.Equal(t, "toursandtravels:token", cfg.Token.RedisKey)
	assert.NotEmpty(t, cfg.Token.FilePath)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "4000")
	t.Setenv("BACKEND_BASE_URL", "http://backend:9090")
	t.Setenv("TOKEN_STORE", TokenStoreRedis)
	t.Setenv("BACKEND_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:4000", cfg.App.Addr())
	assert.Equal(t, "http://backend:9090", cfg.Backend.BaseURL)
	assert.Equal(t, TokenStoreRedis, cfg.Token.Backend)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout())
}

func TestLoad_RejectsUnknownTokenStore(t *testing.T) {
	t.Setenv("TOKEN_STORE", "s3")

	_, err := Load()
	require.Error(t, err)
}

func TestGetEnvAsInt_BadValueFallsBack(t *testing.T) {
	t.Setenv("BACKEND_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Backend.TimeoutSeconds)
}
