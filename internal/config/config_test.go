package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.Far != 3000 {
		t.Errorf("expected far plane 3000, got %f", cfg.Graphics.Far)
	}

	// Terrain defaults
	if cfg.Terrain.Size != 512 {
		t.Errorf("expected terrain size 512, got %f", cfg.Terrain.Size)
	}
	if cfg.Terrain.MaxHeight != 150 {
		t.Errorf("expected max height 150, got %f", cfg.Terrain.MaxHeight)
	}

	// LOD defaults
	if cfg.LOD.Policy != "quadtree" {
		t.Errorf("expected policy 'quadtree', got %s", cfg.LOD.Policy)
	}
	if len(cfg.LOD.Distances) != 4 {
		t.Errorf("expected 4 band thresholds, got %d", len(cfg.LOD.Distances))
	}
	if len(cfg.LOD.SubdivideDistances) != cfg.LOD.MaxLevels {
		t.Error("subdivide distances should cover every quadtree depth")
	}
	if !cfg.LOD.CullingEnabled {
		t.Error("expected culling to be enabled by default")
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  far: 5000

terrain:
  size: 1024
  max_height: 200
  seed: 42

lod:
  policy: "flat"
  distances: [100, 200, 400]
  culling_enabled: false
  always_draw: true

audio:
  enabled: true
  master_volume: 0.5

logging:
  level: "debug"
  log_file: "terrain.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.Far != 5000 {
		t.Errorf("expected far plane 5000, got %f", cfg.Graphics.Far)
	}

	if cfg.Terrain.Size != 1024 {
		t.Errorf("expected terrain size 1024, got %f", cfg.Terrain.Size)
	}
	if cfg.Terrain.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Terrain.Seed)
	}

	if cfg.LOD.Policy != "flat" {
		t.Errorf("expected policy 'flat', got %s", cfg.LOD.Policy)
	}
	if len(cfg.LOD.Distances) != 3 {
		t.Errorf("expected 3 distance bands, got %d", len(cfg.LOD.Distances))
	}
	if cfg.LOD.CullingEnabled {
		t.Error("expected culling to be disabled")
	}
	if !cfg.LOD.AlwaysDraw {
		t.Error("expected always_draw to be true")
	}

	if !cfg.Audio.Enabled {
		t.Error("expected audio to be enabled")
	}
	if cfg.Audio.MasterVolume != 0.5 {
		t.Errorf("expected master volume 0.5, got %f", cfg.Audio.MasterVolume)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "terrain.log" {
		t.Errorf("expected log file 'terrain.log', got %s", cfg.Logging.LogFile)
	}

	// Sections absent from the file keep their defaults.
	if cfg.Terrain.Resolution != 256 {
		t.Errorf("expected default resolution 256, got %d", cfg.Terrain.Resolution)
	}
	if cfg.Graphics.Near != 1.0 {
		t.Errorf("expected default near plane 1, got %f", cfg.Graphics.Near)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("{invalid: yaml: ["), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "sub", "config.yaml")

	cfg := Default()
	cfg.Terrain.Seed = 99
	cfg.LOD.Policy = "flat"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, configPath); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Terrain.Seed != 99 {
		t.Errorf("expected seed 99 after reload, got %d", loaded.Terrain.Seed)
	}
	if loaded.LOD.Policy != "flat" {
		t.Errorf("expected policy 'flat' after reload, got %s", loaded.LOD.Policy)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty path")
	}
}
