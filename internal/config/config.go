package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	Port            string
	DefaultCitySlug string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Upstream provider credentials. Either may be empty, which is a
	// normal configuration state: the affected section of the page falls
	// back to static content.
	TicketmasterKey string
	OpenWeatherKey  string

	UpstreamTimeout time.Duration

	// RevalidateSeconds drives the Cache-Control window on page responses.
	RevalidateSeconds int
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	upstreamTimeout, err := parseDuration("UPSTREAM_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	revalidate, err := parseInt("REVALIDATE_SECONDS", 600)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:            envOrDefault("PORT", "8080"),
		DefaultCitySlug: envOrDefault("DEFAULT_CITY_SLUG", "saltlake"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		TicketmasterKey: os.Getenv("TM_API_KEY"),
		OpenWeatherKey:  os.Getenv("WEATHER_API_KEY"),

		UpstreamTimeout:   upstreamTimeout,
		RevalidateSeconds: revalidate,
	}

	if cfg.DefaultCitySlug == "" {
		return nil, errors.New("DEFAULT_CITY_SLUG is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parseInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}
