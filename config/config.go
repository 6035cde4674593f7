package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the process needs from the environment.
// A .env file is loaded when present; real env vars win.
type Config struct {
	Port string

	Database    string // "sqlite", "postgres" or "memory"
	DatabaseURL string // postgres DSN
	SQLitePath  string

	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads the configuration from the environment with local defaults.
func Load() Config {
	_ = godotenv.Load() // ok if missing in prod

	return Config{
		Port:        getenv("PORT", "8080"),
		Database:    getenv("DATABASE", "sqlite"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getenv("SQLITE_PATH", "autoplate.db"),
		JWTSecret:   getenv("JWT_SECRET", "CHANGE_ME"),
		TokenTTL:    time.Duration(getenvInt("TOKEN_TTL_MINUTES", 30)) * time.Minute,
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	s := os.Getenv(k)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
