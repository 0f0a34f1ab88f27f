package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("ELASTICSEARCH_ADDRESSES", "http://es-1:9200, http://es-2:9200")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Elasticsearch.Addresses) != 2 {
		t.Fatalf("Addresses = %v, want 2 entries", cfg.Elasticsearch.Addresses)
	}
	if cfg.Elasticsearch.Addresses[0] != "http://es-1:9200" {
		t.Errorf("Addresses[0] = %q", cfg.Elasticsearch.Addresses[0])
	}
	if cfg.Elasticsearch.Index != "charging_stations" {
		t.Errorf("Index = %q, want default", cfg.Elasticsearch.Index)
	}
	if cfg.HTTP.Addr != ":9400" {
		t.Errorf("Addr = %q, want default", cfg.HTTP.Addr)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ELASTICSEARCH_ADDRESSES", "http://es:9200")
	t.Setenv("ELASTICSEARCH_INDEX", "stations_v2")
	t.Setenv("HTTP_ADDR", ":8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Elasticsearch.Index != "stations_v2" {
		t.Errorf("Index = %q, want stations_v2", cfg.Elasticsearch.Index)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.HTTP.Addr)
	}
}

func TestLoad_MissingRequiredPanics(t *testing.T) {
	t.Setenv("ELASTICSEARCH_ADDRESSES", "")

	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing ELASTICSEARCH_ADDRESSES")
		}
	}()
	_, _ = Load()
}

func TestGetEnvOrDefault_FileIndirection(t *testing.T) {
	secretFile := filepath.Join(t.TempDir(), "password")
	if err := os.WriteFile(secretFile, []byte("s3cret\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ELASTICSEARCH_PASSWORD_FILE", secretFile)

	if got := getEnvOrDefault("ELASTICSEARCH_PASSWORD", ""); got != "s3cret" {
		t.Errorf("getEnvOrDefault = %q, want s3cret", got)
	}
}
