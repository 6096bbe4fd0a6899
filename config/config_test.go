package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfigDefaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.Postgres.Host != "localhost" || cfg.Postgres.Port != 5432 {
		t.Errorf("Postgres = %s:%d, want localhost:5432", cfg.Postgres.Host, cfg.Postgres.Port)
	}
	if cfg.Postgres.Name != "hirewire" {
		t.Errorf("Postgres.Name = %q, want hirewire", cfg.Postgres.Name)
	}
	if !cfg.Postgres.RunMigrationsOnStart {
		t.Error("Postgres.RunMigrationsOnStart = false, want true")
	}
	if cfg.Redis.URI != "localhost:6379" {
		t.Errorf("Redis.URI = %q, want localhost:6379", cfg.Redis.URI)
	}
	if cfg.Cache.SnapshotTTL != 5*time.Minute {
		t.Errorf("Cache.SnapshotTTL = %v, want 5m", cfg.Cache.SnapshotTTL)
	}
	if cfg.Bulk.Concurrency != 8 {
		t.Errorf("Bulk.Concurrency = %d, want 8", cfg.Bulk.Concurrency)
	}
}

func TestAppConfigEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("CACHE_SNAPSHOT_TTL", "90s")
	t.Setenv("BULK_CONCURRENCY", "3")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("HTTP.Addr = %q, want :9090", cfg.HTTP.Addr)
	}
	if cfg.Postgres.Host != "db.internal" || cfg.Postgres.Port != 5433 {
		t.Errorf("Postgres = %s:%d, want db.internal:5433", cfg.Postgres.Host, cfg.Postgres.Port)
	}
	if cfg.Cache.SnapshotTTL != 90*time.Second {
		t.Errorf("Cache.SnapshotTTL = %v, want 90s", cfg.Cache.SnapshotTTL)
	}
	if cfg.Bulk.Concurrency != 3 {
		t.Errorf("Bulk.Concurrency = %d, want 3", cfg.Bulk.Concurrency)
	}
}

func TestSanitizeClampsValues(t *testing.T) {
	cfg := AppConfig{
		Cache: CacheConfig{SnapshotTTL: -time.Second},
		Bulk:  BulkConfig{Concurrency: 0},
	}
	cfg.Sanitize()

	if cfg.Cache.SnapshotTTL != 5*time.Minute {
		t.Errorf("Cache.SnapshotTTL = %v, want clamp to 5m", cfg.Cache.SnapshotTTL)
	}
	if cfg.Bulk.Concurrency != 1 {
		t.Errorf("Bulk.Concurrency = %d, want clamp to 1", cfg.Bulk.Concurrency)
	}

	cfg.Bulk.Concurrency = 500
	cfg.Sanitize()
	if cfg.Bulk.Concurrency != 64 {
		t.Errorf("Bulk.Concurrency = %d, want clamp to 64", cfg.Bulk.Concurrency)
	}
}

func TestDetectDevMode(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	cfg.Sanitize()
	if !cfg.IsDev {
		t.Error("IsDev = false, want true when NODE_ENV=development")
	}
}
