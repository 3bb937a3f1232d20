package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}"))
	require.NoError(t, err)

	assert.Equal(t, 20*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3, cfg.API.Retry.MaxAttempts)
	assert.Equal(t, 24*time.Hour, cfg.Sync.Interval)
	assert.False(t, cfg.Sync.SkipFailedRegions)
	assert.Equal(t, "./tables", cfg.Tables.Dir)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Values(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
database:
  host: db.internal
  port: 5433
  user: rs
  password: secret
  dbname: ratesync
  sslmode: disable
api:
  base_url: https://rates.example/api
  timeout: 10s
sync:
  interval: 1h
  skip_failed_regions: true
log_level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, "https://rates.example/api", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, time.Hour, cfg.Sync.Interval)
	assert.True(t, cfg.Sync.SkipFailedRegions)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t,
		"host=db.internal port=5433 user=rs password=secret dbname=ratesync sslmode=disable",
		cfg.Database.DSN(),
	)
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("RS_DB_PASSWORD", "from-env")

	cfg, err := Load(writeConfig(t, `
database:
  password: ${RS_DB_PASSWORD}
`))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
