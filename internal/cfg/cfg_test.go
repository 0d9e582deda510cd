package cfg

import (
	"testing"

	"github.com/shoplens/go-backend/pkg/logger"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(logger.NewSlogLogger())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Http.Port != "8501" {
		t.Fatalf("default port: expected 8501, got %s", cfg.Http.Port)
	}
	if cfg.Seed.Size != 125 {
		t.Fatalf("default seed size: expected 125, got %d", cfg.Seed.Size)
	}
	if cfg.Recommender.SimWeight != 0.7 {
		t.Fatalf("default sim weight: expected 0.7, got %v", cfg.Recommender.SimWeight)
	}
	if cfg.Analytics.MinReviews != 10 {
		t.Fatalf("default review floor: expected 10, got %d", cfg.Analytics.MinReviews)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("SEED_SIZE", "200")
	t.Setenv("RECOMMENDER_SIM_WEIGHT", "0.5")
	t.Setenv("SQLITE_PATH", "/tmp/test.db")

	cfg, err := Load(logger.NewSlogLogger())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Http.Port != "9000" {
		t.Fatalf("port override: got %s", cfg.Http.Port)
	}
	if cfg.Seed.Size != 200 {
		t.Fatalf("seed size override: got %d", cfg.Seed.Size)
	}
	if cfg.Recommender.SimWeight != 0.5 {
		t.Fatalf("sim weight override: got %v", cfg.Recommender.SimWeight)
	}
	if cfg.Db.Path != "/tmp/test.db" {
		t.Fatalf("db path override: got %s", cfg.Db.Path)
	}
}

func TestLoadMalformedValue(t *testing.T) {
	t.Setenv("SEED_SIZE", "not-a-number")

	if _, err := Load(logger.NewSlogLogger()); err == nil {
		t.Fatalf("expected error for malformed SEED_SIZE")
	}
}
