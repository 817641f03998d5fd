package main

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds process-level settings, all overridable via environment
// variables or a local .env file.
type Config struct {
	DBPath   string
	LogLevel string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func LoadConfig() Config {
	// A missing .env is fine; the defaults below cover first runs.
	_ = godotenv.Load()

	return Config{
		DBPath:   getenv("BOOKSTORE_DB_PATH", "bookstore.db"),
		LogLevel: getenv("BOOKSTORE_LOG_LEVEL", "info"),
	}
}
