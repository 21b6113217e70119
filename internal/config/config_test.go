package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, "development", c.Env)
	assert.Equal(t, BackendMemory, c.StorageBackend)
	assert.Equal(t, "3000", c.Port)
	assert.Equal(t, ":3000", c.Addr())
	assert.Equal(t, 1, c.CurrentInternID)
	assert.Equal(t, time.Second, c.AuthDelay)
	assert.Equal(t, "2025", c.ReferralSuffix)
	assert.Equal(t, []string{"*"}, c.CORSOrigins)
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("AUTH_DELAY", "250ms")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3001")
	t.Setenv("STORAGE_BACKEND", "sqlite")
	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, "8088", c.Port)
	assert.Equal(t, 250*time.Millisecond, c.AuthDelay)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3001"}, c.CORSOrigins)
	assert.Equal(t, BackendSQLite, c.StorageBackend)
}

func TestNew_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "postgres")
	_, err := New()
	assert.ErrorContains(t, err, "POSTGRES_DSN")
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Env:             "development",
			Port:            "3000",
			StorageBackend:  BackendMemory,
			CurrentInternID: 1,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown backend", mutate: func(c *Config) { c.StorageBackend = "redis" }, wantErr: "STORAGE_BACKEND"},
		{name: "file without path", mutate: func(c *Config) { c.StorageBackend = BackendFile }, wantErr: "DATA_FILE"},
		{name: "bad env", mutate: func(c *Config) { c.Env = "qa" }, wantErr: "APP_ENV"},
		{name: "zero intern", mutate: func(c *Config) { c.CurrentInternID = 0 }, wantErr: "CURRENT_INTERN_ID"},
		{name: "negative delay", mutate: func(c *Config) { c.AuthDelay = -time.Second }, wantErr: "AUTH_DELAY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNew_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SHUTDOWN_TIMEOUT=42s\nPORT=9999\n"), 0o644))
	t.Chdir(dir)
	t.Setenv("PORT", "4000")
	t.Cleanup(func() { os.Unsetenv("SHUTDOWN_TIMEOUT") })

	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, 42*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "4000", c.Port, "environment wins over .env")
}
