package preset

import (
	"os"
	"path/filepath"
	"testing"

	"lumicube-renderer/internal/scene"
)

func TestBuiltinDefaults(t *testing.T) {
	presets := Builtin()
	if _, ok := presets["default"]; !ok {
		t.Fatal("no default preset")
	}
	for name, p := range presets {
		q := p
		q.Clamp()
		if p != q {
			t.Errorf("built-in %q out of range: %+v", name, p)
		}
	}
}

func TestLoadOverridesAndClamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	data := `
default:
  density: 0.9
  rotationSpeed: 0.5
  pulseStrength: 0.2
  depthScale: 1.0
  cubeSize: 1.0
  threshold: 0.2
  colorMode: custom
  customColor: {r: 10, g: 200, b: 30}
wild:
  density: 5.0
  rotationSpeed: 1.0
  pulseStrength: 0.5
  depthScale: 1.0
  cubeSize: 1.0
  threshold: 0.1
  colorMode: sampled
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	presets, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if presets["default"].Density != 0.9 {
		t.Fatalf("file did not override built-in: %+v", presets["default"])
	}
	if presets["default"].CustomColor != (scene.RGB{R: 10, G: 200, B: 30}) {
		t.Fatalf("custom color %+v", presets["default"].CustomColor)
	}
	if presets["wild"].Density != 1.0 {
		t.Fatalf("out-of-range density not clamped: %v", presets["wild"].Density)
	}
	if _, ok := presets["dense"]; !ok {
		t.Fatal("built-ins dropped by file load")
	}
}

func TestResolveUnknown(t *testing.T) {
	if _, err := Resolve("", "no-such"); err == nil {
		t.Fatal("unknown preset resolved")
	}
}

func TestResolveBuiltin(t *testing.T) {
	p, err := Resolve("", "relief")
	if err != nil {
		t.Fatal(err)
	}
	if p.DepthScale != 2.0 {
		t.Fatalf("relief preset %+v", p)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "gone.yaml")); err == nil {
		t.Fatal("missing preset file loaded")
	}
}
