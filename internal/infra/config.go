package infra

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	APIBaseURL       string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	APITimeout       time.Duration
	HealthInterval   time.Duration
	HealthTimeout    time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults
// where needed. API_BASE_URL falls back to the local backend in development and
// to the production API otherwise, matching how the hosted UI picks its target.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		APIBaseURL:       os.Getenv("API_BASE_URL"),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		APITimeout:       time.Second * time.Duration(getEnvInt("API_TIMEOUT_SECONDS", 15)),
		HealthInterval:   time.Second * time.Duration(getEnvInt("HEALTH_INTERVAL_SECONDS", 10)),
		HealthTimeout:    time.Second * time.Duration(getEnvInt("HEALTH_TIMEOUT_SECONDS", 3)),
	}

	if cfg.APIBaseURL == "" {
		if cfg.AppEnv == "development" {
			cfg.APIBaseURL = "http://localhost:3000"
		} else {
			cfg.APIBaseURL = "https://api.studio-matic.org"
		}
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	if _, err := url.ParseRequestURI(cfg.APIBaseURL); err != nil {
		return nil, fmt.Errorf("API_BASE_URL is not a valid url: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
