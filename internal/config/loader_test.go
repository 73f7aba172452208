package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSketchCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sketch.yaml")

	content := `
grid:
  dimension: 32
colors:
  neutral:
    r: 10
    g: 20
    b: 30
  darken_percent: 25
render:
  cell_width: 1
seed: 99
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := LoadSketch(path)
	if err != nil {
		t.Fatalf("LoadSketch() failed: %v", err)
	}

	if cfg.Grid.Dimension != 32 {
		t.Errorf("Dimension = %d, expected 32", cfg.Grid.Dimension)
	}
	if cfg.Colors.Neutral != (ChannelTriple{R: 10, G: 20, B: 30}) {
		t.Errorf("Neutral = %+v, expected {10 20 30}", cfg.Colors.Neutral)
	}
	if cfg.Colors.DarkenPercent != 25 {
		t.Errorf("DarkenPercent = %d, expected 25", cfg.Colors.DarkenPercent)
	}
	if cfg.Render.CellWidth != 1 {
		t.Errorf("CellWidth = %d, expected 1", cfg.Render.CellWidth)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d, expected 99", cfg.Seed)
	}
}

func TestLoadSketchMissingCustomPath(t *testing.T) {
	_, err := LoadSketch(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("LoadSketch() with missing custom path should fail")
	}
}

func TestLoadSketchMalformedCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a map"), 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	if _, err := LoadSketch(path); err == nil {
		t.Error("LoadSketch() with malformed YAML should fail")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// No custom path and (almost certainly) no user/local config in the
	// test environment: falls through to the embedded YAML, which must
	// agree with the hardcoded defaults.
	def := DefaultSketchConfig()

	if def.Grid.Dimension != 16 {
		t.Errorf("default dimension = %d, expected 16", def.Grid.Dimension)
	}
	if def.Colors.Neutral != (ChannelTriple{R: 240, G: 240, B: 240}) {
		t.Errorf("default neutral = %+v, expected {240 240 240}", def.Colors.Neutral)
	}
	if def.Colors.DarkenPercent != 10 {
		t.Errorf("default darken = %d, expected 10", def.Colors.DarkenPercent)
	}
	if def.Render.CellWidth != 2 {
		t.Errorf("default cell width = %d, expected 2", def.Render.CellWidth)
	}
}
