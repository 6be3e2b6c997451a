package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	var c Config
	c.Resolve(Flags{})

	if c.OutputDir != "renders" || c.Preset != "default" {
		t.Fatalf("defaults: %+v", c)
	}
	if c.RenderSize != 512 || c.Supersample != 2 || c.Frames != 48 || c.FPS != 24 {
		t.Fatalf("defaults: %+v", c)
	}
	if c.Workers < 1 {
		t.Fatalf("workers = %d", c.Workers)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	c := Config{Input: "from-file.png", Frames: 10, Preset: "dense"}
	c.Resolve(Flags{Input: "from-flag.png", Frames: 99})

	if c.Input != "from-flag.png" {
		t.Fatalf("input = %q", c.Input)
	}
	if c.Frames != 99 {
		t.Fatalf("frames = %d", c.Frames)
	}
	if c.Preset != "dense" {
		t.Fatalf("unset flag clobbered config: %q", c.Preset)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"input": "pic.png", "render_size": 256, "orbit": true}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Input != "pic.png" || c.RenderSize != 256 || !c.Orbit {
		t.Fatalf("loaded %+v", c)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Fatal("missing config loaded")
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("invalid config parsed")
	}
}
