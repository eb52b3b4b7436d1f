package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFrom_YAMLWithEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD", "s3cret")
	t.Setenv("CATALOG_PATH", "/srv/catalog.yaml")

	path := writeConfig(t, `
server:
  port: 9090
database:
  driver: mysql
  host: db.internal
  username: app
  database: tools
cron:
  recompute_hour: 3
  concurrency: 4
`)
	cfg := LoadFrom(path)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "app:s3cret@tcp(db.internal:3306)/tools?charset=utf8mb4", cfg.DB.DSN)
	assert.Equal(t, "/srv/catalog.yaml", cfg.Catalog.Path)
	assert.Equal(t, 3, cfg.Cron.RecomputeHour)
	assert.Equal(t, 4, cfg.Cron.Concurrency)
	assert.Equal(t, 60, cfg.Scheduler.CheckIntervalSec)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFrom_SQLiteDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")

	cfg := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Contains(t, cfg.DB.DSN, "file:ai_tool_directory.db")
	assert.Equal(t, "catalog.yaml", cfg.Catalog.Path)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFrom_DSNFromEnv(t *testing.T) {
	t.Setenv("DB_DSN", "user:pw@tcp(localhost:3306)/x")

	cfg := LoadFrom(writeConfig(t, "database:\n  host: ignored\n"))

	assert.Equal(t, "user:pw@tcp(localhost:3306)/x", cfg.DB.DSN)
}

func TestValidate(t *testing.T) {
	cfg := LoadFrom(writeConfig(t, `
database:
  driver: postgres
  host: h
cron:
  recompute_hour: 25
`))

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "driver must be one of")
	assert.Contains(t, err.Error(), "recompute_hour")

	mysqlNoHost := LoadFrom(writeConfig(t, "database:\n  driver: mysql\n"))
	assert.ErrorContains(t, mysqlNoHost.Validate(), "dsn is empty")
}
