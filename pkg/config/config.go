package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port            string
	StoreDriver     string
	DatabaseURL     string
	SQLitePath      string
	UploadDir       string
	MaxUploadMB     int
	HistoryLimit    int
	CatalogSeedFile string
	CORSOrigins     string
	LogLevel        string
	LogFormat       string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", DriverPostgres)),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SQLitePath:      getEnv("SQLITE_PATH", "resumematch.db"),
		UploadDir:       getEnv("UPLOAD_DIR", os.TempDir()),
		MaxUploadMB:     getEnvInt("MAX_UPLOAD_MB", 15),
		HistoryLimit:    getEnvInt("HISTORY_LIMIT", 10),
		CatalogSeedFile: os.Getenv("CATALOG_SEED_FILE"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 15
	}
	return cfg
}

// MaxUploadBytes: лимит тела запроса для загрузки резюме.
func (c Config) MaxUploadBytes() int {
	return c.MaxUploadMB * 1024 * 1024
}

// Logger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func (c Config) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(c.LogLevel)}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
