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
		"PORT", "DB_TYPE", "DB_HOST", "DB_PORT", "DB_DATABASE", "DB_USER",
		"DB_PASSWORD", "DB_CONNECTION_LIMIT", "SESSION_COOKIE", "SESSION_EXPIRATION_HOURS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DATABASE", "jobtrackd")
	t.Setenv("DB_USER", "app")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mysql", cfg.DBType)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
	assert.Equal(t, "session_id", cfg.SessionCookie)
	assert.Equal(t, 24*time.Hour, cfg.SessionExpiration)
}

func TestLoadRequiresDatabase(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_USER", "app")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DATABASE")
}

func TestLoadRequiresUserExceptSQLite(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DATABASE", "jobtrackd")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")

	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_DATABASE", ":memory:")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBType)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_DATABASE", "tracker")
	t.Setenv("DB_USER", "tracker")
	t.Setenv("DB_CONNECTION_LIMIT", "20")
	t.Setenv("SESSION_COOKIE", "sid")
	t.Setenv("SESSION_EXPIRATION_HOURS", "72")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 20, cfg.DBConnectionLimit)
	assert.Equal(t, "sid", cfg.SessionCookie)
	assert.Equal(t, 72*time.Hour, cfg.SessionExpiration)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DATABASE", "jobtrackd")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_CONNECTION_LIMIT", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
}
