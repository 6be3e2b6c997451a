package scene

import "math"

// pulseDamp scales the sinusoidal pulse so a full-strength setting
// stays subtle.
const pulseDamp = 0.2

// Animator advances the per-frame state of a cube set: continuous
// per-instance rotation plus a global sinusoidal pulse. It never
// adds or removes instances; rebuilds replace the set wholesale via
// Reset.
type Animator struct {
	cubes []Cube
	t     float64 // elapsed seconds
}

func NewAnimator(cubes []Cube) *Animator {
	return &Animator{cubes: cubes}
}

// Reset swaps in a freshly built cube set, keeping elapsed time so
// the pulse phase does not jump.
func (a *Animator) Reset(cubes []Cube) {
	a.cubes = cubes
}

// Advance integrates rotation for every cube over dt seconds, scaled
// by the live RotationSpeed, and accumulates elapsed time. Runs
// indefinitely; there is no terminal state.
func (a *Animator) Advance(p Params, dt float64) {
	for i := range a.cubes {
		a.cubes[i].Rot = a.cubes[i].Rot.Add(a.cubes[i].AngVel.Scale(p.RotationSpeed * dt))
	}
	a.t += dt
}

// Pulse returns the current uniform scale factor,
// 1 + sin(2t)·PulseStrength·pulseDamp, applied to all three axes on
// top of the static CubeSize.
func (a *Animator) Pulse(p Params) float64 {
	return 1 + math.Sin(2*a.t)*p.PulseStrength*pulseDamp
}

// Cubes exposes the live instance set for rendering.
func (a *Animator) Cubes() []Cube {
	return a.cubes
}

// Time returns elapsed animation time in seconds.
func (a *Animator) Time() float64 {
	return a.t
}
