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
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
database:
  path: "test.db"
dashboard:
  default_currency: "USD"
logger:
  level: "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "test.db", cfg.Database.Path)
	assert.Equal(t, "USD", cfg.Dashboard.DefaultCurrency)
	assert.Equal(t, "debug", cfg.Logger.Level)

	// Defaults fill the rest.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "migrations", cfg.Database.MigrationsDir)
	assert.Equal(t, 1000, cfg.Dashboard.MaxExecutionPage)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeConfig(t, `
server:
  port: -1
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
