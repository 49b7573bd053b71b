package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Addr)
		assert.Equal(t, "5432", cfg.Database.Port)
		assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
		assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
		assert.Equal(t, "./media", cfg.Storage.Root)
		assert.Empty(t, cfg.Mail.Host)
		assert.Same(t, cfg, AppConfig)
	})

	t.Run("FromEnv", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("HTTP_ADDR", ":9000")
		t.Setenv("JWT_TTL", "30m")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
		t.Setenv("SMTP_HOST", "smtp.example.com")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.Server.Addr)
		assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	})

	t.Run("Failed - missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		require.NoError(t, os.Unsetenv("JWT_SECRET"))

		_, err := LoadConfig()

		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("Failed - empty jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := LoadConfig()

		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("Failed - bad duration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("JWT_TTL", "soon")

		_, err := LoadConfig()

		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	dsn := LoadTestConfig().Database.DSN()

	assert.Contains(t, dsn, "port=5433")
	assert.Contains(t, dsn, "dbname=test_db")
	assert.Contains(t, dsn, "timezone=UTC")
}

func TestRedisConfig_Addr(t *testing.T) {
	assert.Equal(t, "localhost:6380", LoadTestConfig().Redis.Addr())
}
