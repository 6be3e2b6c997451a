// Package preset loads named parameter sets from a YAML file and
// ships a few built-ins.
package preset

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"lumicube-renderer/internal/scene"
)

// Builtin returns the presets available without any file.
func Builtin() map[string]scene.Params {
	def := scene.DefaultParams()

	dense := def
	dense.Density = 1.0
	dense.CubeSize = 0.6
	dense.Threshold = 0.05

	relief := def
	relief.Density = 0.8
	relief.DepthScale = 2.0
	relief.RotationSpeed = 0
	relief.PulseStrength = 0
	relief.ColorMode = scene.ModeMonochrome

	calm := def
	calm.RotationSpeed = 0.15
	calm.PulseStrength = 0.1

	return map[string]scene.Params{
		"default": def,
		"dense":   dense,
		"relief":  relief,
		"calm":    calm,
	}
}

// Load reads presets from a YAML file. File entries are clamped to
// the UI ranges and override built-ins of the same name.
func Load(path string) (map[string]scene.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: read %s: %w", path, err)
	}

	var file map[string]scene.Params
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("preset: parse %s: %w", path, err)
	}

	presets := Builtin()
	for name, p := range file {
		p.Clamp()
		presets[name] = p
	}
	return presets, nil
}

// Resolve picks a preset by name, reading the file first when one is
// given. An unknown name is an error listing what exists.
func Resolve(path, name string) (scene.Params, error) {
	presets := Builtin()
	if path != "" {
		var err error
		presets, err = Load(path)
		if err != nil {
			return scene.Params{}, err
		}
	}

	p, ok := presets[name]
	if !ok {
		names := make([]string, 0, len(presets))
		for n := range presets {
			names = append(names, n)
		}
		sort.Strings(names)
		return scene.Params{}, fmt.Errorf("preset: unknown preset %q (have %v)", name, names)
	}
	return p, nil
}
