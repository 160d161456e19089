package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MoraStok/apareo-con-actualizaciones/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "localhost:9000", cfg.Storage.Endpoint)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "ledger.db", cfg.Database.Name)
	assert.Equal(t, 3306, cfg.Database.Port)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORAGE_BUCKET", "ledgers")
	t.Setenv("STORAGE_USE_SSL", "true")
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "ledgers", cfg.Storage.Bucket)
	assert.True(t, cfg.Storage.UseSSL)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_FORMAT=json\nDATABASE_NAME=ledger.db\n"), 0o600)
	require.NoError(t, err)

	// godotenv.Overload writes into the process environment; restore it afterwards.
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("DATABASE_NAME", "")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "ledger.db", cfg.Database.Name)
}
