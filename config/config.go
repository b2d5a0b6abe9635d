// Package config loads window settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	gp1 "github.com/mxtt-mmxix/GameProject-1"
)

// Config is the on-disk shape of the window settings.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Mode   string `yaml:"mode"`
	VSync  bool   `yaml:"vsync"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Title:  "GameProject-1",
		Width:  gp1.DefaultSize.X,
		Height: gp1.DefaultSize.Y,
		Mode:   gp1.Windowed.String(),
		VSync:  true,
	}
}

func (c *Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("window dimensions must not be negative, got %dx%d", c.Width, c.Height)
	}
	if _, err := ParseMode(c.Mode); err != nil {
		return err
	}
	return nil
}

// WindowData converts the validated settings into window state.
func (c *Config) WindowData() gp1.WindowData {
	mode, _ := ParseMode(c.Mode)
	return gp1.WindowData{
		Width:  c.Width,
		Height: c.Height,
		Title:  c.Title,
		Mode:   mode,
		VSync:  c.VSync,
	}
}

// ParseMode maps a mode name to its WindowMode. The empty string means
// windowed.
func ParseMode(s string) (gp1.WindowMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "windowed":
		return gp1.Windowed, nil
	case "fullscreen":
		return gp1.Fullscreen, nil
	case "borderless":
		return gp1.Borderless, nil
	default:
		return gp1.Windowed, fmt.Errorf("unknown window mode %q", s)
	}
}

// LoadFromPath reads settings from path. A missing file yields the defaults;
// a malformed or invalid file is an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
