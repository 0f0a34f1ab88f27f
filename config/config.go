package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config holds the service configuration, loaded from the environment.
type Config struct {
	Elasticsearch ElasticsearchConfig
	HTTP          HTTPConfig
}

// ElasticsearchConfig is the engine connection and index target.
type ElasticsearchConfig struct {
	Addresses []string
	Username  string
	Password  string
	Index     string
	Timeout   time.Duration
}

// HTTPConfig is the API server configuration.
type HTTPConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
}

// Load reads configuration from environment variables. Secrets support the
// *_FILE indirection convention.
func Load() (*Config, error) {
	addresses := splitAddresses(getEnvRequired("ELASTICSEARCH_ADDRESSES"))
	if len(addresses) == 0 {
		return nil, fmt.Errorf("ELASTICSEARCH_ADDRESSES must contain at least one address")
	}

	cfg := &Config{
		Elasticsearch: ElasticsearchConfig{
			Addresses: addresses,
			Username:  getEnvOrDefault("ELASTICSEARCH_USERNAME", ""),
			Password:  getEnvOrDefault("ELASTICSEARCH_PASSWORD", ""),
			Index:     getEnvOrDefault("ELASTICSEARCH_INDEX", "charging_stations"),
			Timeout:   15 * time.Second,
		},
		HTTP: HTTPConfig{
			Addr:              getEnvOrDefault("HTTP_ADDR", ":9400"),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	slog.Info("configuration loaded",
		"es_addresses", cfg.Elasticsearch.Addresses,
		"es_index", cfg.Elasticsearch.Index,
		"http_addr", cfg.HTTP.Addr,
	)

	return cfg, nil
}

func splitAddresses(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvRequired(key string) string {
	// Check for _FILE suffix
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	// Check for _FILE suffix
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
