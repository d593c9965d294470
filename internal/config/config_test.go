package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGO_URI", "mongodb://localhost:27017")
	os.Setenv("REDIS_HOST", "localhost")
	os.Setenv("REDIS_PORT", "6379")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.Redis.Host == "" {
		t.Fatalf("unexpected empty config values: %+v", cfg)
	}
	if cfg.MongoDB.Database != "clients_db" {
		t.Fatalf("MongoDB.Database = %q, want clients_db", cfg.MongoDB.Database)
	}
	if cfg.MongoDB.CascadeStrict {
		t.Fatalf("CascadeStrict should default to false")
	}
}
