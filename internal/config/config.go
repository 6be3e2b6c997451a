package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	Input      string `json:"input"`       // image file or directory of images
	OutputDir  string `json:"output_dir"`  // destination for WebP files
	PresetFile string `json:"preset_file"` // optional YAML preset file
	Preset     string `json:"preset"`      // preset name to start from

	// Render settings
	RenderSize  int  `json:"render_size"`
	Supersample int  `json:"supersample"`
	Frames      int  `json:"frames"`
	FPS         int  `json:"fps"`
	Orbit       bool `json:"orbit"`
	Workers     int  `json:"workers"`
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
	// CLI flags override config file
	if flags.Input != "" {
		c.Input = flags.Input
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.PresetFile != "" {
		c.PresetFile = flags.PresetFile
	}
	if flags.Preset != "" {
		c.Preset = flags.Preset
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Orbit {
		c.Orbit = true
	}

	// Defaults
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Preset == "" {
		c.Preset = "default"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 48
	}
	if c.FPS <= 0 {
		c.FPS = 24
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Input      string
	OutputDir  string
	PresetFile string
	Preset     string
	Size       int
	Frames     int
	FPS        int
	Workers    int
	Orbit      bool
}
