// Package ui draws the floating parameter panel of the interactive
// viewer and maps mouse input back onto the parameter set.
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lumicube-renderer/internal/scene"
)

// slider binds one numeric parameter to a track row.
type slider struct {
	label   string
	min     float64
	max     float64
	rebuild bool // true when a change must rebuild the instance set
	get     func(*scene.Params) float64
	set     func(*scene.Params, float64)
}

var paramSliders = []slider{
	{"density", 0, 1, true,
		func(p *scene.Params) float64 { return p.Density },
		func(p *scene.Params, v float64) { p.Density = v }},
	{"rotation speed", 0, 2, false,
		func(p *scene.Params) float64 { return p.RotationSpeed },
		func(p *scene.Params, v float64) { p.RotationSpeed = v }},
	{"pulse", 0, 1, false,
		func(p *scene.Params) float64 { return p.PulseStrength },
		func(p *scene.Params, v float64) { p.PulseStrength = v }},
	{"depth", 0, 2, true,
		func(p *scene.Params) float64 { return p.DepthScale },
		func(p *scene.Params, v float64) { p.DepthScale = v }},
	{"cube size", 0.1, 2, false,
		func(p *scene.Params) float64 { return p.CubeSize },
		func(p *scene.Params, v float64) { p.CubeSize = v }},
	{"threshold", 0, 1, true,
		func(p *scene.Params) float64 { return p.Threshold },
		func(p *scene.Params, v float64) { p.Threshold = v }},
}

var colorSliders = []slider{
	{"red", 0, 255, true,
		func(p *scene.Params) float64 { return float64(p.CustomColor.R) },
		func(p *scene.Params, v float64) { p.CustomColor.R = uint8(v + 0.5) }},
	{"green", 0, 255, true,
		func(p *scene.Params) float64 { return float64(p.CustomColor.G) },
		func(p *scene.Params, v float64) { p.CustomColor.G = uint8(v + 0.5) }},
	{"blue", 0, 255, true,
		func(p *scene.Params) float64 { return float64(p.CustomColor.B) },
		func(p *scene.Params, v float64) { p.CustomColor.B = uint8(v + 0.5) }},
}

var modes = []scene.ColorMode{scene.ModeMonochrome, scene.ModeSampled, scene.ModeCustom}

// Row geometry.
const (
	PanelWidth = 220
	rowHeight  = 34
	trackInset = 8
	trackTop   = 16
	trackH     = 10
	modeRowH   = 30
	padTop     = 6
	padBottom  = 8
)

var (
	panelBG  = color.NRGBA{18, 18, 26, 225}
	trackBG  = color.NRGBA{60, 60, 72, 255}
	trackFG  = color.NRGBA{120, 170, 255, 255}
	buttonBG = color.NRGBA{50, 50, 62, 255}
	buttonOn = color.NRGBA{100, 130, 210, 255}
)

// Panel is the floating parameter panel anchored at (X, Y).
type Panel struct {
	X int
	Y int
}

// rows returns the sliders visible for the current color mode.
func rows(p *scene.Params) []slider {
	if p.ColorMode == scene.ModeCustom {
		return append(append([]slider{}, paramSliders...), colorSliders...)
	}
	return paramSliders
}

// Height is the panel pixel height for the current mode.
func (pl *Panel) Height(p *scene.Params) int {
	return padTop + len(rows(p))*rowHeight + modeRowH + padBottom
}

// Contains reports whether the cursor is over the panel, used to
// suppress orbit dragging underneath it.
func (pl *Panel) Contains(p *scene.Params, mx, my int) bool {
	return mx >= pl.X && mx < pl.X+PanelWidth &&
		my >= pl.Y && my < pl.Y+pl.Height(p)
}

// Handle applies the current mouse state to the parameters. It
// returns whether the instance set must be rebuilt as a result.
func (pl *Panel) Handle(p *scene.Params, mx, my int, pressed bool) (rebuild bool) {
	if !pressed || !pl.Contains(p, mx, my) {
		return false
	}

	for i, s := range rows(p) {
		tx, ty, tw, th := pl.trackRect(i)
		if mx >= tx && mx < tx+tw && my >= ty-4 && my < ty+th+4 {
			v := valueFromMouse(mx, tx, tw, s.min, s.max)
			if s.get(p) != v {
				s.set(p, v)
				if s.rebuild {
					rebuild = true
				}
			}
			return rebuild
		}
	}

	// Mode selector row
	if idx := pl.modeHit(p, mx, my); idx >= 0 && modes[idx] != p.ColorMode {
		p.ColorMode = modes[idx]
		return true
	}
	return false
}

// trackRect returns the slider track rectangle for row i.
func (pl *Panel) trackRect(i int) (x, y, w, h int) {
	x = pl.X + trackInset
	y = pl.Y + padTop + i*rowHeight + trackTop
	return x, y, PanelWidth - 2*trackInset, trackH
}

// modeHit returns the index of the mode button under the cursor, or
// -1.
func (pl *Panel) modeHit(p *scene.Params, mx, my int) int {
	y := pl.Y + padTop + len(rows(p))*rowHeight + 4
	if my < y || my >= y+modeRowH-8 {
		return -1
	}
	bw := (PanelWidth - 2*trackInset) / len(modes)
	for i := range modes {
		bx := pl.X + trackInset + i*bw
		if mx >= bx && mx < bx+bw-2 {
			return i
		}
	}
	return -1
}

// valueFromMouse maps a cursor x position on a track to a parameter
// value, clamped to [min, max].
func valueFromMouse(mx, trackX, trackW int, min, max float64) float64 {
	t := float64(mx-trackX) / float64(trackW)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return min + t*(max-min)
}

// Draw renders the panel.
func (pl *Panel) Draw(dst *ebiten.Image, p *scene.Params) {
	h := pl.Height(p)
	vector.DrawFilledRect(dst, float32(pl.X), float32(pl.Y), PanelWidth, float32(h), panelBG, false)

	for i, s := range rows(p) {
		tx, ty, tw, th := pl.trackRect(i)
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%s: %.2f", s.label, s.get(p)), tx, ty-trackTop+2)

		vector.DrawFilledRect(dst, float32(tx), float32(ty), float32(tw), float32(th), trackBG, false)
		frac := (s.get(p) - s.min) / (s.max - s.min)
		vector.DrawFilledRect(dst, float32(tx), float32(ty), float32(frac*float64(tw)), float32(th), trackFG, false)
	}

	// Mode buttons
	y := pl.Y + padTop + len(rows(p))*rowHeight + 4
	bw := (PanelWidth - 2*trackInset) / len(modes)
	for i, m := range modes {
		bx := pl.X + trackInset + i*bw
		bg := buttonBG
		if m == p.ColorMode {
			bg = buttonOn
		}
		vector.DrawFilledRect(dst, float32(bx), float32(y), float32(bw-2), modeRowH-8, bg, false)
		ebitenutil.DebugPrintAt(dst, shortMode(m), bx+4, y+3)
	}

	if p.ColorMode == scene.ModeCustom {
		// Swatch next to the mode row
		c := p.CustomColor
		vector.DrawFilledRect(dst, float32(pl.X+PanelWidth-trackInset-14), float32(pl.Y+padTop+2), 14, 10,
			color.NRGBA{c.R, c.G, c.B, 255}, false)
	}
}

func shortMode(m scene.ColorMode) string {
	switch m {
	case scene.ModeMonochrome:
		return "mono"
	case scene.ModeSampled:
		return "sampled"
	default:
		return "custom"
	}
}
