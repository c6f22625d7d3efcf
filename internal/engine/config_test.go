package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.Width != 80 || cfg.Height != 40 || cfg.MinRoomSize != 6 {
		t.Errorf("default geometry = %dx%d/%d", cfg.Width, cfg.Height, cfg.MinRoomSize)
	}
	if cfg.LogRetention != 10 || cfg.BaseSightRadius != 8 {
		t.Errorf("defaults: retention %d, sight %d", cfg.LogRetention, cfg.BaseSightRadius)
	}
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "veil.yaml")
	data := []byte("seed: 7\nwidth: 50\nheight: 30\nport: \"9000\"\nlog_level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("VEIL_SEED", "99")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 99 {
		t.Errorf("env should override the file seed, got %d", cfg.Seed)
	}
	if cfg.Width != 50 || cfg.Height != 30 || cfg.Port != "9000" || cfg.LogLevel != "debug" {
		t.Errorf("file values not applied: %+v", cfg)
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("width: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestConfig_NormalizedGeometry(t *testing.T) {
	cfg := Config{Width: 5, Height: 5, MinRoomSize: 1}.normalized()
	if cfg.MinRoomSize != 6 || cfg.Width != 80 || cfg.Height != 40 {
		t.Errorf("normalized = %+v", cfg)
	}
}
