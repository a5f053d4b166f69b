package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

type APIConfig struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type Config struct {
	API         APIConfig
	ServerPort  string
	MetricsAddr string
	PprofAddr   string
}

func Load() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL:  getEnvOrDefault("PETALTH_API_URL", "http://localhost:8080"),
			Timeout:  getDurationOrDefault("PETALTH_API_TIMEOUT", 15*time.Second),
			CacheTTL: getDurationOrDefault("PETALTH_CACHE_TTL", 5*time.Minute),
		},
		ServerPort:  getEnvOrDefault("SERVER_PORT", "4200"),
		MetricsAddr: getEnvOrDefault("METRICS_ADDR", ":9092"),
		PprofAddr:   getEnvOrDefault("PPROF_ADDR", ":6060"),
	}

	if _, err := url.Parse(cfg.API.BaseURL); err != nil {
		return nil, fmt.Errorf("PETALTH_API_URL is not a valid URL: %w", err)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
