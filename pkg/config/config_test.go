package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "SQLITE_PATH", "MAX_UPLOAD_MB", "HISTORY_LIMIT", "CORS_ORIGINS", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "resumematch.db", cfg.SQLitePath)
	assert.Equal(t, 15, cfg.MaxUploadMB)
	assert.Equal(t, 15*1024*1024, cfg.MaxUploadBytes())
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, "*", cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("MAX_UPLOAD_MB", "2")
	t.Setenv("HISTORY_LIMIT", "not-a-number")
	t.Setenv("CATALOG_SEED_FILE", "configs/skills.yaml")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, 2, cfg.MaxUploadMB)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, "configs/skills.yaml", cfg.CatalogSeedFile)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}
