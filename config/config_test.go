package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "4567", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, time.UTC, cfg.App.Location)
	assert.Equal(t, "practice_session", cfg.Session.CookieName)
	assert.Equal(t, 10*time.Minute, cfg.Session.FlashTTL)
	assert.Empty(t, cfg.Session.CSRFKey)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_TIMEZONE", "America/Vancouver")
	t.Setenv("DB_NAME", "practice")
	t.Setenv("FLASH_TTL", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "America/Vancouver", cfg.App.Location.String())
	assert.Equal(t, "practice", cfg.DB.Name)
	assert.Equal(t, 30*time.Second, cfg.Session.FlashTTL)
}

func TestLoadConfig_InvalidTimezone(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_TIMEZONE", "Mars/Olympus_Mons")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestDBConfig_URLs(t *testing.T) {
	db := DBConfig{Host: "db", Port: "5432", User: "jane", Password: "secret", Name: "jane", SSLMode: "disable", TimeZone: "UTC"}

	assert.Equal(t, "host=db user=jane password=secret dbname=jane port=5432 sslmode=disable TimeZone=UTC", db.DSN())
	assert.Equal(t, "pgx5://jane:secret@db:5432/jane?sslmode=disable", db.MigrationURL())
}
