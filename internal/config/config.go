package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	DatabaseURL        string
	LogLevel           string
	LogColors          bool
	SessionIdleTimeout time.Duration
	SecureCookies      bool
	// LogFile receives log output while the terminal UI owns the screen.
	LogFile string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
// DATABASE_URL has no default: an empty value is reported by the caller, not here.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:               envOr("ADDR", ":8080"),
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		LogColors:          envBoolOr("LOG_COLORS", true),
		SessionIdleTimeout: envDurationOr("SESSION_IDLE_TIMEOUT", 2*time.Hour),
		SecureCookies:      envBoolOr("SECURE_COOKIES", false),
		LogFile:            envOr("LOG_FILE", "chessroyale.log"),
	}
}

// Validate reports the first configuration value that cannot be used.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel)
	}
	if c.SessionIdleTimeout <= 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be positive, got %s", c.SessionIdleTimeout)
	}
	return nil
}

// HasDatabase reports whether a connection string was configured.
func (c Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}
