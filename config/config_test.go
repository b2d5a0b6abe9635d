package config

import (
	"os"
	"path/filepath"
	"testing"

	gp1 "github.com/mxtt-mmxix/GameProject-1"
)

func TestDefault_Validates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.Width != gp1.DefaultSize.X || cfg.Height != gp1.DefaultSize.Y {
		t.Fatalf("expected default size %dx%d, got %dx%d",
			gp1.DefaultSize.X, gp1.DefaultSize.Y, cfg.Width, cfg.Height)
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Title != Default().Title {
		t.Fatalf("expected default title, got %q", cfg.Title)
	}
}

func TestLoadFromPath_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.yaml")
	data := "title: Sandbox\nwidth: 1280\nheight: 720\nmode: borderless\nvsync: false\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	win := cfg.WindowData()
	if win.Title != "Sandbox" || win.Width != 1280 || win.Height != 720 {
		t.Fatalf("unexpected window data %+v", win)
	}
	if win.Mode != gp1.Borderless {
		t.Fatalf("expected borderless mode, got %v", win.Mode)
	}
	if win.VSync {
		t.Fatalf("expected vsync off")
	}
}

func TestLoadFromPath_UnknownModeFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.yaml")
	if err := os.WriteFile(path, []byte("mode: cinematic\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected an error for an unknown mode")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want gp1.WindowMode
		ok   bool
	}{
		{"", gp1.Windowed, true},
		{"windowed", gp1.Windowed, true},
		{"Fullscreen", gp1.Fullscreen, true},
		{" borderless ", gp1.Borderless, true},
		{"cinematic", gp1.Windowed, false},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.ok != (err == nil) {
			t.Fatalf("ParseMode(%q): unexpected error state %v", tt.in, err)
		}
		if err == nil && got != tt.want {
			t.Fatalf("ParseMode(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
