package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"deskgauge/internal/models"

	"gopkg.in/yaml.v3"
)

const fileName = ".deskgauge.yaml"

type Config struct {
	PollIntervalMs   int        `yaml:"poll_interval_ms"`
	DiskPath         string     `yaml:"disk_path"`
	Thresholds       Thresholds `yaml:"thresholds"`
	Window           Window     `yaml:"window"`
	Theme            string     `yaml:"theme"`
	Surface          string     `yaml:"surface"`
	Listen           string     `yaml:"listen"`
	TrayOnClose      bool       `yaml:"tray_on_close"`
	TokenExpiryHours int        `yaml:"token_expiry_hours"`
	Log              Log        `yaml:"log"`
}

type Thresholds struct {
	Warning  float64 `yaml:"warning"`
	Critical float64 `yaml:"critical"`
}

type Window struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Log struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

const (
	SurfaceBrowser  = "browser"
	SurfaceTerminal = "terminal"
)

// Default returns the compiled-in configuration
func Default() *Config {
	return &Config{
		PollIntervalMs:   2000,
		DiskPath:         "/",
		Thresholds:       Thresholds{Warning: 50, Critical: 90},
		Window:           Window{X: 10, Y: 10, Width: 300, Height: 200},
		Theme:            "dark",
		Surface:          SurfaceBrowser,
		Listen:           "localhost:8080",
		TokenExpiryHours: 24,
		Log:              Log{MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 28},
	}
}

// DefaultPath returns the fixed location of the optional override file
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return filepath.Join(os.TempDir(), fileName)
	}
	return filepath.Join(homeDir, fileName)
}

// LoadConfig reads path over the compiled-in defaults. A missing file is not
// an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is required")
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over the compiled-in defaults. Keys absent from data
// keep their default, keys present win even when zero.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.PollIntervalMs < 100 {
		return fmt.Errorf("poll_interval_ms must be at least 100")
	}
	if c.DiskPath == "" {
		return fmt.Errorf("disk_path must not be empty")
	}
	if c.Thresholds.Warning < 0 || c.Thresholds.Critical > 100 {
		return fmt.Errorf("thresholds must lie within [0, 100]")
	}
	if c.Thresholds.Warning >= c.Thresholds.Critical {
		return fmt.Errorf("thresholds.warning (%g) must be below thresholds.critical (%g)",
			c.Thresholds.Warning, c.Thresholds.Critical)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window width and height must be positive")
	}
	if _, err := models.ParseTheme(c.Theme); err != nil {
		return err
	}
	if c.Surface != SurfaceBrowser && c.Surface != SurfaceTerminal {
		return fmt.Errorf("surface must be %q or %q", SurfaceBrowser, SurfaceTerminal)
	}
	if c.Listen == "" {
		return fmt.Errorf("listen must not be empty")
	}
	if c.TokenExpiryHours <= 0 {
		return fmt.Errorf("token_expiry_hours must be positive")
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log limits must not be negative")
	}
	return nil
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

func (c *Config) TokenExpiry() time.Duration {
	return time.Duration(c.TokenExpiryHours) * time.Hour
}

// InitialTheme returns the configured starting theme
func (c *Config) InitialTheme() models.Theme {
	theme, _ := models.ParseTheme(c.Theme)
	return theme
}

// Geometry returns the configured window placement
func (c *Config) Geometry() models.Geometry {
	return models.Geometry{
		X:      c.Window.X,
		Y:      c.Window.Y,
		Width:  c.Window.Width,
		Height: c.Window.Height,
	}
}
