package config

import (
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGlyph       = "@"
	DefaultFPS         = 20
	DefaultMaxTemp     = 10
	DefaultRule        = 60
	DefaultFlickerOdds = 30
	DefaultPalette     = "auto"
	DefaultBackend     = "tea"
)

var Backends = []string{"tea", "tcell"}

type Config struct {
	Glyph       string `yaml:"glyph"`
	FPS         int    `yaml:"fps"`
	MaxTemp     int    `yaml:"max_temp"`
	Rule        int    `yaml:"rule"`
	FlickerOdds int    `yaml:"flicker_odds"`
	Seed        int64  `yaml:"seed"`
	Palette     string `yaml:"palette"`
	Backend     string `yaml:"backend"`
	Status      bool   `yaml:"status"`
}

func DefaultConfig() *Config {
	return &Config{
		Glyph:       DefaultGlyph,
		FPS:         DefaultFPS,
		MaxTemp:     DefaultMaxTemp,
		Rule:        DefaultRule,
		FlickerOdds: DefaultFlickerOdds,
		Palette:     DefaultPalette,
		Backend:     DefaultBackend,
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := Merge(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays the keys present in the yaml file at path onto cfg.
func Merge(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Sanitize replaces out-of-range values with their defaults. Bad settings
// never stop the fire from starting.
func (c *Config) Sanitize() {
	if c.Glyph == "" || !utf8.ValidString(c.Glyph) {
		c.Glyph = DefaultGlyph
	}
	if c.FPS < 0 {
		c.FPS = 0
	}
	if c.MaxTemp < 1 {
		c.MaxTemp = DefaultMaxTemp
	}
	if c.Rule < 0 || c.Rule > 255 {
		c.Rule = DefaultRule
	}
	if c.FlickerOdds < 0 {
		c.FlickerOdds = DefaultFlickerOdds
	}
	if c.Palette == "" {
		c.Palette = DefaultPalette
	}
	if !validBackend(c.Backend) {
		c.Backend = DefaultBackend
	}
}

func validBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}

// GlyphRune is the character drawn for a burning cell.
func (c *Config) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Glyph)
	if r == utf8.RuneError {
		return '@'
	}
	return r
}

// FramePeriod is the delay between frames; 0 means as fast as possible.
func (c *Config) FramePeriod() time.Duration {
	if c.FPS < 1 {
		return 0
	}
	return time.Second / time.Duration(c.FPS)
}

// ParseIntOr parses s as a decimal integer, returning fallback when s is
// not one.
func ParseIntOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}
