package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "JWT_SECRET", "JWT_TTL", "BCRYPT_COST", "API_BASE_URL",
		"DATABASE_URL", "CORS_ORIGINS", "RATE_LIMIT_RPM", "AUTH_RATE_LIMIT_RPM",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadMissingSecretFallsBack(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	// The server must still start without JWT_SECRET; the fallback is an
	// explicitly insecure development default.
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.ServerPort)
	assert.Equal(t, "super-secret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestValidate(t *testing.T) {
	t.Run("rejects non-positive TTL", func(t *testing.T) {
		cfg := &Config{ServerPort: "3000", JWTTTL: 0, BcryptCost: 10, RequestTimeout: time.Second}
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects out of range bcrypt cost", func(t *testing.T) {
		cfg := &Config{ServerPort: "3000", JWTTTL: time.Hour, BcryptCost: 99, RequestTimeout: time.Second}
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects empty port", func(t *testing.T) {
		cfg := &Config{ServerPort: "", JWTTTL: time.Hour, BcryptCost: 10, RequestTimeout: time.Second}
		require.Error(t, cfg.Validate())
	})
}
