package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"dinogen-tracker/internal/adapters/dinogen/api"

	"github.com/joho/godotenv"
)

type Config struct {
	Token          string
	DatabaseURL    string
	APIBaseURL     string
	RequestTimeout time.Duration
	DiscordGuildID string
	MetricsAddr    string
	LogLevel       string
	HistoryLimit   int
}

const (
	defaultAPIBaseURL = api.DefaultBaseURL
	defaultTimeout    = api.DefaultTimeout
)

func Load() (*Config, error) {
	_ = godotenv.Load()

	token := readSecret("discord_token")
	if token == "" {
		token = os.Getenv("DISCORD_TOKEN")
	}
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is not set (via secret or env var)")
	}

	// Optional: without a database the snapshot archive is disabled.
	dbURL := readSecret("database_url")
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}

	cfg := &Config{
		Token:          token,
		DatabaseURL:    dbURL,
		APIBaseURL:     envString("DINOGEN_API_URL", defaultAPIBaseURL),
		RequestTimeout: envDuration("DINOGEN_TIMEOUT", defaultTimeout),
		DiscordGuildID: envString("DISCORD_GUILD_ID", ""),
		MetricsAddr:    envString("METRICS_ADDR", ":2112"),
		LogLevel:       envString("LOG_LEVEL", "info"),
		HistoryLimit:   envInt("HISTORY_LIMIT", 10),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ArchiveEnabled reports whether leaderboard snapshots should be persisted.
func (c *Config) ArchiveEnabled() bool {
	return c.DatabaseURL != ""
}

var secretsDir = "/run/secrets/"

func readSecret(name string) string {
	data, err := os.ReadFile(secretsDir + name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
