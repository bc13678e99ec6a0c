package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"deskgauge/internal/models"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.PollInterval() != 2*time.Second {
		t.Errorf("PollInterval: got %v, want 2s", cfg.PollInterval())
	}
	if cfg.DiskPath != "/" {
		t.Errorf("DiskPath: got %q, want /", cfg.DiskPath)
	}
	if cfg.Thresholds.Warning != 50 || cfg.Thresholds.Critical != 90 {
		t.Errorf("Thresholds: got %+v, want {50 90}", cfg.Thresholds)
	}
	want := models.Geometry{X: 10, Y: 10, Width: 300, Height: 200}
	if cfg.Geometry() != want {
		t.Errorf("Geometry: got %+v, want %+v", cfg.Geometry(), want)
	}
	if cfg.InitialTheme() != models.ThemeDark {
		t.Errorf("InitialTheme: got %v, want dark", cfg.InitialTheme())
	}
	if cfg.Surface != SurfaceBrowser {
		t.Errorf("Surface: got %q, want %q", cfg.Surface, SurfaceBrowser)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:  "overrides",
			input: "poll_interval_ms: 1000\ntheme: light\ndisk_path: /home\nwindow:\n  x: 50\n  y: 60\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.PollInterval() != time.Second {
					t.Errorf("PollInterval: got %v, want 1s", cfg.PollInterval())
				}
				if cfg.InitialTheme() != models.ThemeLight {
					t.Errorf("InitialTheme: got %v, want light", cfg.InitialTheme())
				}
				if cfg.DiskPath != "/home" {
					t.Errorf("DiskPath: got %q", cfg.DiskPath)
				}
				if cfg.Window.X != 50 || cfg.Window.Y != 60 || cfg.Window.Width != 300 {
					t.Errorf("Window: got %+v", cfg.Window)
				}
			},
		},
		{
			name:  "terminal surface",
			input: "surface: terminal\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Surface != SurfaceTerminal {
					t.Errorf("Surface: got %q", cfg.Surface)
				}
			},
		},
		{
			name:  "explicit zeros survive",
			input: "thresholds:\n  warning: 0\n  critical: 40\nwindow:\n  x: 0\n  y: 0\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Thresholds.Warning != 0 || cfg.Thresholds.Critical != 40 {
					t.Errorf("Thresholds: got %+v, want {0 40}", cfg.Thresholds)
				}
				if cfg.Window.X != 0 || cfg.Window.Y != 0 || cfg.Window.Height != 200 {
					t.Errorf("Window: got %+v", cfg.Window)
				}
			},
		},
		{
			name:  "partial thresholds keep the other default",
			input: "thresholds:\n  warning: 30\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Thresholds.Warning != 30 || cfg.Thresholds.Critical != 90 {
					t.Errorf("Thresholds: got %+v, want {30 90}", cfg.Thresholds)
				}
			},
		},
		{name: "critical below default warning", input: "thresholds:\n  critical: 40\n", wantErr: true},
		{name: "zero width", input: "window:\n  width: 0\n", wantErr: true},
		{name: "inverted thresholds", input: "thresholds:\n  warning: 95\n  critical: 90\n", wantErr: true},
		{name: "unknown theme", input: "theme: neon\n", wantErr: true},
		{name: "unknown surface", input: "surface: gtk\n", wantErr: true},
		{name: "interval too short", input: "poll_interval_ms: 10\n", wantErr: true},
		{name: "malformed yaml", input: "window: [", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got config %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
	if cfg.PollIntervalMs != 2000 {
		t.Errorf("PollIntervalMs: got %d, want 2000", cfg.PollIntervalMs)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deskgauge.yaml")
	if err := os.WriteFile(path, []byte("tray_on_close: true\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.TrayOnClose {
		t.Error("TrayOnClose: got false, want true")
	}
}
