package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	PORT        string
	DB_DRIVER   string
	DB_URL      string
	SQLITE_PATH string
	JWT_SECRET  string
	CORS_ORIGIN string
	MEDIA_ROOT  string

	// CATALOG_PUBLISHED_ONLY hides unpublished films and persons on public pages.
	CATALOG_PUBLISHED_ONLY bool

	ADMIN_USERNAME string
	ADMIN_EMAIL    string
	ADMIN_PASSWORD string
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found. Using system environment variables.")
	}

	setupLogger(getEnv("LOG_LEVEL", "info"), getEnv("LOG_FORMAT", "json"))

	PORT = getEnv("PORT", "8080")
	DB_DRIVER = getEnv("DB_DRIVER", "postgres")
	if DB_DRIVER == "postgres" {
		DB_URL = mustEnv("DB_URL")
	}
	SQLITE_PATH = getEnv("SQLITE_PATH", "catalog.db")
	JWT_SECRET = mustEnv("JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")
	MEDIA_ROOT = getEnv("MEDIA_ROOT", "media")
	CATALOG_PUBLISHED_ONLY = getBool("CATALOG_PUBLISHED_ONLY", false)

	ADMIN_USERNAME = getEnv("ADMIN_USERNAME", "admin")
	ADMIN_EMAIL = getEnv("ADMIN_EMAIL", "")
	ADMIN_PASSWORD = getEnv("ADMIN_PASSWORD", "")
}

func setupLogger(level, format string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatal().Str("key", key).Msg("Missing required environment variable")
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Invalid boolean, using default")
		return fallback
	}
	return b
}
