// Package config loads generator and renderer settings from a JSON
// file, with CLI flags taking priority over file values.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable generation and render settings.
type Config struct {
	// Generation
	Radius    float64 `json:"radius"`
	Frequency int     `json:"frequency"`

	// Output
	OutputDir string `json:"output_dir"`

	// Render settings
	RenderSize  int     `json:"render_size"`
	Supersample int     `json:"supersample"`
	TexturePath string  `json:"texture"`
	CameraYaw   float64 `json:"camera_yaw"`
	CameraPitch float64 `json:"camera_pitch"`
	Workers     int     `json:"workers"`
}

// Flags carries CLI overrides; zero values mean "not set".
type Flags struct {
	Radius    float64
	Frequency int
	OutputDir string
	Texture   string
	Workers   int
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Radius > 0 {
		c.Radius = flags.Radius
	}
	if flags.Frequency > 0 {
		c.Frequency = flags.Frequency
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Texture != "" {
		c.TexturePath = flags.Texture
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Radius <= 0 {
		c.Radius = 1
	}
	if c.Frequency <= 0 {
		c.Frequency = 3
	}
	if c.OutputDir == "" {
		c.OutputDir = "out"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.CameraYaw == 0 && c.CameraPitch == 0 {
		c.CameraYaw = 30
		c.CameraPitch = -20
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
