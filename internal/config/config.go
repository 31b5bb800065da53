package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	Session SessionConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	FrontendOrigin string
}

// Level maps LOG_LEVEL onto a slog level, defaulting to info.
func (a AppConfig) Level() slog.Level {
	switch strings.ToLower(a.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// BackendConfig points at the external worklog backend that owns all state
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig names the backend's session cookie
type SessionConfig struct {
	CookieName string
}

func Load() (*Config, error) {
	// A missing .env file is fine in deployed environments.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
	}

	// Backend configuration
	backendTimeout, err := time.ParseDuration(getEnv("BACKEND_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKEND_TIMEOUT: %w", err)
	}

	config.Backend = BackendConfig{
		BaseURL: getEnv("BACKEND_BASE_URL", ""),
		Timeout: backendTimeout,
	}

	// Session configuration
	config.Session = SessionConfig{
		CookieName: getEnv("SESSION_COOKIE", "worklog_session"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}
	if _, err := url.ParseRequestURI(c.Backend.BaseURL); err != nil {
		return fmt.Errorf("BACKEND_BASE_URL is not a valid URL: %w", err)
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE must not be empty")
	}
	return nil
}

// BackendURL returns the parsed backend base URL.
func (c *Config) BackendURL() (*url.URL, error) {
	return url.Parse(c.Backend.BaseURL)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
