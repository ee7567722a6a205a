package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default differs from DefaultConfig():\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if got := DefaultConfig().SplitRange(); got != 720-140-270 {
		t.Errorf("SplitRange() = %d, expected %d", got, 720-140-270)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Playfield.Width = 0 }, "playfield.width"},
		{"gap too large", func(c *Config) { c.Obstacles.Gap = 600 }, "leaves no room"},
		{"hitbox outside sprite", func(c *Config) { c.Player.HitboxSize = 80 }, "hitbox"},
		{"negative countdown", func(c *Config) { c.Countdown.Seconds = -1 }, "countdown.seconds"},
		{"zero capacity", func(c *Config) { c.HighScores.Capacity = 0 }, "highscores.capacity"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("obstacles:\n  speed: 8\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Obstacles.Speed != 8 {
		t.Errorf("speed = %d, expected 8", cfg.Obstacles.Speed)
	}
	if cfg.Obstacles.Gap != 270 {
		t.Errorf("unspecified keys should keep defaults, gap = %d", cfg.Obstacles.Gap)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("countdown:\n  seconds: 1\n  auto_start: false\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Countdown.Seconds != 1 || cfg.Countdown.AutoStart {
		t.Errorf("countdown = %+v, expected 1s without auto start", cfg.Countdown)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("obstacles: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/tmp/x.db")
	if err != nil || got != "/tmp/x.db" {
		t.Errorf("ExpandHome of absolute path = %q, %v", got, err)
	}

	got, err = ExpandHome("~/scores.db")
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if strings.HasPrefix(got, "~") {
		t.Errorf("ExpandHome should replace ~, got %q", got)
	}
}
