package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validation constants define acceptable bounds for configuration values
const (
	minTokenLength = 50 // Discord tokens are typically 50+ characters

	minRequestTimeout = 1 * time.Second
	maxRequestTimeout = 2 * time.Minute

	minHistoryLimit = 1
	maxHistoryLimit = 25 // rows that fit one Discord message comfortably
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks if the configuration values are valid and within acceptable ranges.
// It returns all validation errors at once using errors.Join.
func (c *Config) Validate() error {
	var errs []error

	if err := c.validateToken(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateAPIBaseURL(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateRequestTimeout(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateHistoryLimit(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateLogLevel(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}

	return nil
}

func (c *Config) validateToken() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required but not set")
	}

	if len(c.Token) < minTokenLength {
		return fmt.Errorf(
			"DISCORD_TOKEN appears invalid (too short: %d chars, expected %d+)",
			len(c.Token), minTokenLength,
		)
	}

	return nil
}

func (c *Config) validateAPIBaseURL() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("DINOGEN_API_URL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("DINOGEN_API_URL must use http or https, got %q", c.APIBaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("DINOGEN_API_URL must include a host, got %q", c.APIBaseURL)
	}
	return nil
}

func (c *Config) validateRequestTimeout() error {
	if c.RequestTimeout < minRequestTimeout {
		return fmt.Errorf(
			"DINOGEN_TIMEOUT must be at least %v, got %v",
			minRequestTimeout, c.RequestTimeout,
		)
	}

	if c.RequestTimeout > maxRequestTimeout {
		return fmt.Errorf(
			"DINOGEN_TIMEOUT must be at most %v, got %v (hint: recommended range is 5s-30s)",
			maxRequestTimeout, c.RequestTimeout,
		)
	}

	return nil
}

func (c *Config) validateHistoryLimit() error {
	if c.HistoryLimit < minHistoryLimit || c.HistoryLimit > maxHistoryLimit {
		return fmt.Errorf(
			"HISTORY_LIMIT must be between %d and %d, got %d",
			minHistoryLimit, maxHistoryLimit, c.HistoryLimit,
		)
	}
	return nil
}

func (c *Config) validateLogLevel() error {
	level := strings.ToLower(c.LogLevel)
	for _, l := range validLogLevels {
		if level == l {
			return nil
		}
	}
	return fmt.Errorf("LOG_LEVEL must be one of %s, got %q", strings.Join(validLogLevels, ", "), c.LogLevel)
}
