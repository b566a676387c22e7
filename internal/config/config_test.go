package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Glyph != "@" {
		t.Errorf("expected glyph @, got %s", cfg.Glyph)
	}
	if cfg.MaxTemp != 10 {
		t.Errorf("expected max temp 10, got %d", cfg.MaxTemp)
	}
	if cfg.Rule != 60 {
		t.Errorf("expected rule 60, got %d", cfg.Rule)
	}
	if cfg.FramePeriod() != 50*time.Millisecond {
		t.Errorf("expected 50ms frame period, got %v", cfg.FramePeriod())
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		check func(*Config) bool
	}{
		{"zero max temp", Config{MaxTemp: 0}, func(c *Config) bool { return c.MaxTemp == DefaultMaxTemp }},
		{"negative max temp", Config{MaxTemp: -4}, func(c *Config) bool { return c.MaxTemp == DefaultMaxTemp }},
		{"rule too large", Config{Rule: 256}, func(c *Config) bool { return c.Rule == DefaultRule }},
		{"negative rule", Config{Rule: -1}, func(c *Config) bool { return c.Rule == DefaultRule }},
		{"rule zero kept", Config{Rule: 0, MaxTemp: 3}, func(c *Config) bool { return c.Rule == 0 && c.MaxTemp == 3 }},
		{"negative fps", Config{FPS: -3}, func(c *Config) bool { return c.FPS == 0 }},
		{"empty glyph", Config{}, func(c *Config) bool { return c.Glyph == "@" }},
		{"negative flicker", Config{FlickerOdds: -1}, func(c *Config) bool { return c.FlickerOdds == DefaultFlickerOdds }},
		{"unknown backend", Config{Backend: "ncurses"}, func(c *Config) bool { return c.Backend == DefaultBackend }},
		{"tcell backend kept", Config{Backend: "tcell"}, func(c *Config) bool { return c.Backend == "tcell" }},
		{"empty palette", Config{}, func(c *Config) bool { return c.Palette == DefaultPalette }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.Sanitize()
			if !tt.check(&cfg) {
				t.Errorf("unexpected sanitized config: %+v", cfg)
			}
		})
	}
}

func TestFramePeriodUnthrottled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FPS = 0
	if cfg.FramePeriod() != 0 {
		t.Errorf("expected no delay, got %v", cfg.FramePeriod())
	}
}

func TestGlyphRune(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Glyph = "#abc"
	if cfg.GlyphRune() != '#' {
		t.Errorf("expected #, got %q", cfg.GlyphRune())
	}
	cfg.Glyph = "█"
	if cfg.GlyphRune() != '█' {
		t.Errorf("expected block, got %q", cfg.GlyphRune())
	}
}

func TestParseIntOr(t *testing.T) {
	tests := []struct {
		in       string
		fallback int
		want     int
	}{
		{"12", 0, 12},
		{" 7 ", 0, 7},
		{"-3", 10, -3},
		{"abc", 10, 10},
		{"", 60, 60},
		{"3.5", 20, 20},
	}

	for _, tt := range tests {
		if got := ParseIntOr(tt.in, tt.fallback); got != tt.want {
			t.Errorf("ParseIntOr(%q, %d): expected %d, got %d", tt.in, tt.fallback, tt.want, got)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fire.yaml")
	cfg := DefaultConfig()
	cfg.MaxTemp = 14
	cfg.Palette = "doom"
	cfg.Seed = 99

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", *cfg, *loaded)
	}
}

func TestMergeKeepsUnsetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("rule: 90\nfps: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := GetPreset("inferno")
	if err := Merge(path, cfg); err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if cfg.Rule != 90 || cfg.FPS != 5 {
		t.Errorf("expected file values, got rule %d fps %d", cfg.Rule, cfg.FPS)
	}
	if cfg.MaxTemp != 18 || cfg.Palette != "doom" {
		t.Errorf("expected preset values kept, got %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("embers")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.MaxTemp != 5 {
		t.Errorf("expected max temp 5, got %d", cfg.MaxTemp)
	}

	cfg.MaxTemp = 99
	if Presets["embers"].MaxTemp != 5 {
		t.Error("preset mutated through returned copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	if presets[0] != "campfire" {
		t.Errorf("expected sorted names, got %v", presets)
	}
	for _, name := range presets {
		cfg := GetPreset(name)
		before := *cfg
		cfg.Sanitize()
		if *cfg != before {
			t.Errorf("preset %s is not already sane: %+v", name, before)
		}
	}
}
