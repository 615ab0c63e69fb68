package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Data
	DataFile   string // CSV of launch records, read once at startup
	ConfigFile string // Optional dashboard YAML

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json or text

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // Optional: enables mTLS

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Rate limiting
	RateLimitMax int    // Requests per minute per IP
	RedisURL     string // Optional shared limiter storage, e.g. "redis://localhost:6379/0"

	// Site Branding
	SiteTitle  string // env: SITE_TITLE
	SiteFooter string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		ServerAddr:   getEnv("SERVER_ADDR", ":3000"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:3000"),
		DataFile:     getEnv("DATA_FILE", "data/spacex_launch_dash.csv"),
		ConfigFile:   getEnv("CONFIG_FILE", "dashboard.yaml"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		TLSEnabled:   getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:  getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:   getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:    getEnv("TLS_CA_FILE", ""),
		CORSOrigins:  getEnv("CORS_ORIGINS", ""),
		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 100),
		RedisURL:     getEnv("REDIS_URL", ""),

		SiteTitle:  getEnv("SITE_TITLE", "SpaceX Launch Records Dashboard"),
		SiteFooter: getEnv("SITE_FOOTER", "Launch records dashboard"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt returns fallback when the variable is unset or not a positive integer.
func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// UsesRedisLimiter returns true if rate limit counters are kept in Redis.
func (c *Config) UsesRedisLimiter() bool {
	return c.RedisURL != ""
}
