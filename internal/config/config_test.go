package config

import (
	"strings"
	"testing"
	"time"
)

func TestParse_EmptyGivesDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UpdateDelay != 500*time.Millisecond {
		t.Fatalf("expected default delay 500ms, got %v", cfg.UpdateDelay)
	}
	if len(cfg.FrameOverrides) != 0 {
		t.Fatalf("expected no overrides, got %v", cfg.FrameOverrides)
	}
}

func TestParse_DelayAndOverrides(t *testing.T) {
	doc := `
update_delay: 0.25
frame:
  child-border-width: 2
  title: docs
`
	cfg, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UpdateDelay != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", cfg.UpdateDelay)
	}
	if len(cfg.FrameOverrides) != 2 {
		t.Fatalf("expected 2 overrides, got %v", cfg.FrameOverrides)
	}
	// file order preserved
	if cfg.FrameOverrides[0].Key != "child-border-width" || cfg.FrameOverrides[1].Key != "title" {
		t.Fatalf("expected file order preserved, got %v", cfg.FrameOverrides)
	}
}

func TestParse_RejectsUnknownTopLevelKey(t *testing.T) {
	if _, err := Parse(strings.NewReader("debounce: 1\n")); err == nil {
		t.Fatalf("expected error for unknown top-level key")
	}
}

func TestParse_RejectsUnknownFrameParameter(t *testing.T) {
	doc := "frame:\n  z-order: 3\n"
	_, err := Parse(strings.NewReader(doc))
	if err == nil {
		t.Fatalf("expected error for unknown frame parameter")
	}
	if !strings.Contains(err.Error(), "z-order") {
		t.Fatalf("error should name the parameter: %v", err)
	}
}

func TestParse_RejectsNonPositiveDelay(t *testing.T) {
	if _, err := Parse(strings.NewReader("update_delay: 0\n")); err == nil {
		t.Fatalf("expected error for zero delay")
	}
	if _, err := Parse(strings.NewReader("update_delay: -1\n")); err == nil {
		t.Fatalf("expected error for negative delay")
	}
}

func TestLoadFromPath_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFromPath("/nonexistent/popframe/config.yaml")
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.UpdateDelay != 500*time.Millisecond {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}
