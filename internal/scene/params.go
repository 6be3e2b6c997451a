// Package scene maps a luminance field onto renderable cube
// instances and animates them.
package scene

import "fmt"

// ColorMode selects how a cube's material color is resolved at
// build time.
type ColorMode string

const (
	ModeMonochrome ColorMode = "monochrome" // fixed white
	ModeSampled    ColorMode = "sampled"    // depth remapped into the source pixel buffer
	ModeCustom     ColorMode = "custom"     // user-chosen fixed color
)

// ParseColorMode validates a mode string from config, presets or the
// CLI.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case ModeMonochrome, ModeSampled, ModeCustom:
		return ColorMode(s), nil
	}
	return "", fmt.Errorf("scene: unknown color mode %q", s)
}

// RGB is a plain 8-bit color triple.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Params is the live-tunable parameter set. The sampler reads
// Density, Threshold, DepthScale and the color fields at build time;
// the animator reads RotationSpeed, PulseStrength and CubeSize every
// frame without triggering a rebuild.
type Params struct {
	Density       float64   `json:"density" yaml:"density"`              // 0–1, grid edge = floor(20·density)
	RotationSpeed float64   `json:"rotation_speed" yaml:"rotationSpeed"` // 0–2
	PulseStrength float64   `json:"pulse_strength" yaml:"pulseStrength"` // 0–1
	DepthScale    float64   `json:"depth_scale" yaml:"depthScale"`       // 0–2, z multiplier
	CubeSize      float64   `json:"cube_size" yaml:"cubeSize"`           // 0.1–2
	Threshold     float64   `json:"threshold" yaml:"threshold"`          // 0–1, contrast cutoff
	ColorMode     ColorMode `json:"color_mode" yaml:"colorMode"`
	CustomColor   RGB       `json:"custom_color" yaml:"customColor"`
}

// DefaultParams returns the parameter set a fresh session starts
// with.
func DefaultParams() Params {
	return Params{
		Density:       0.5,
		RotationSpeed: 0.5,
		PulseStrength: 0.3,
		DepthScale:    1.0,
		CubeSize:      1.0,
		Threshold:     0.1,
		ColorMode:     ModeSampled,
		CustomColor:   RGB{R: 255, G: 255, B: 255},
	}
}

// Clamp forces every numeric field into its UI range and falls back
// to monochrome on an unknown color mode.
func (p *Params) Clamp() {
	p.Density = clamp(p.Density, 0, 1)
	p.RotationSpeed = clamp(p.RotationSpeed, 0, 2)
	p.PulseStrength = clamp(p.PulseStrength, 0, 1)
	p.DepthScale = clamp(p.DepthScale, 0, 2)
	p.CubeSize = clamp(p.CubeSize, 0.1, 2)
	p.Threshold = clamp(p.Threshold, 0, 1)
	if _, err := ParseColorMode(string(p.ColorMode)); err != nil {
		p.ColorMode = ModeMonochrome
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
