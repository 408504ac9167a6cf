package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv elimina variables y las restaura al terminar el test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfig_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "s3cr3t")
	t.Setenv("ENV", "development")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "p@ss")
	t.Setenv("DB_NAME", "cc")
	t.Setenv("DB_SSLMODE", "require")
	unsetEnv(t, "LOG_LEVEL", "PORT", "JWT_EXPIRY_MIN", "DB_TIMEOUT_SEC")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "postgres://app:p%40ss@db:5433/cc?sslmode=require", cfg.DatabaseURL)
	assert.Equal(t, 60*time.Minute, cfg.TokenExpiry)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_ProductionOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "s3cr3t")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://u:p@h/db")
	t.Setenv("JWT_EXPIRY_MIN", "15")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "no-numero")
	unsetEnv(t, "LOG_LEVEL")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.edu.co, https://b.edu.co ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "postgres://u:p@h/db", cfg.DatabaseURL)
	assert.Equal(t, 15*time.Minute, cfg.TokenExpiry)
	assert.Equal(t, 10, cfg.RateLimitMaxRequests)
	assert.Equal(t, []string{"https://a.edu.co", "https://b.edu.co"}, cfg.CORSAllowedOrigins)
}

func TestLoadMigrationConfig_DoesNotNeedJWTSecret(t *testing.T) {
	unsetEnv(t, "JWT_SECRET_KEY")
	t.Setenv("DATABASE_URL", "postgres://u:p@h/db")

	cfg := LoadMigrationConfig()

	assert.Equal(t, "postgres://u:p@h/db", cfg.DatabaseURL)
}
