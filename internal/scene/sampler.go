package scene

import (
	"math/rand"

	"lumicube-renderer/internal/field"
	"lumicube-renderer/internal/mathutil"
)

const (
	// gridSpacing is the world-space distance between neighbouring
	// grid cells.
	gridSpacing = 0.5

	// angVelBase is the per-axis angular velocity ceiling in rad/s at
	// RotationSpeed = 1 (0.02 rad/frame at 60 fps).
	angVelBase = 1.2

	// samplerSeed fixes the per-instance velocity draw so rebuilding
	// from identical inputs yields an identical instance set.
	samplerSeed = 0x1c3
)

// Cube is one renderable wireframe cube derived from a grid cell.
// Pos, AngVel and Color are fixed at build time; Rot is integrated
// by the Animator.
type Cube struct {
	Pos    mathutil.Vec3
	AngVel mathutil.Vec3 // rad/s per axis at RotationSpeed = 1
	Rot    mathutil.Vec3 // current Euler angles, radians
	Depth  float64       // sampled luminance that admitted this cell
	Color  RGB
}

// RotationMatrix composes the cube's current Euler angles.
func (c *Cube) RotationMatrix() mathutil.Mat3 {
	return mathutil.EulerXYZ(c.Rot[0], c.Rot[1], c.Rot[2])
}

// GridEdge derives the sample column/row count from density.
func GridEdge(density float64) int {
	return int(20 * density)
}

// Build walks a GridEdge×GridEdge grid over the field, nearest-
// neighbour samples the luminance under each cell and emits a cube
// for every cell whose depth exceeds the threshold. The result is a
// pure function of (field, Density, Threshold, color settings).
func Build(f *field.Field, p Params) []Cube {
	if f.Empty() {
		return nil
	}
	edge := GridEdge(p.Density)
	if edge <= 0 {
		return nil
	}

	stepX := float64(f.Width) / float64(edge)
	stepY := float64(f.Height) / float64(edge)
	half := float64(edge) / 2

	rng := rand.New(rand.NewSource(samplerSeed))
	cubes := make([]Cube, 0, edge*edge)

	for y := 0; y < edge; y++ {
		for x := 0; x < edge; x++ {
			px := int(float64(x) * stepX)
			py := int(float64(y) * stepY)
			depth := f.At(px, py)

			// Velocity is drawn per candidate cell, not per admitted
			// cube, so the threshold never shifts the draw sequence.
			vel := mathutil.Vec3{
				(rng.Float64()*2 - 1) * angVelBase,
				(rng.Float64()*2 - 1) * angVelBase,
				(rng.Float64()*2 - 1) * angVelBase,
			}

			if depth <= p.Threshold {
				continue
			}

			cubes = append(cubes, Cube{
				Pos: mathutil.Vec3{
					(float64(x) - half) * gridSpacing,
					(float64(y) - half) * gridSpacing,
					depth * p.DepthScale,
				},
				AngVel: vel,
				Depth:  depth,
				Color:  resolveColor(f, p, depth),
			})
		}
	}

	return cubes
}

// resolveColor picks the cube material color per Params.ColorMode.
// Sampled mode reinterprets depth as an index into the raw pixel
// buffer, clamped — a non-spatial remap, not a lookup of the cell's
// own pixel.
func resolveColor(f *field.Field, p Params, depth float64) RGB {
	switch p.ColorMode {
	case ModeSampled:
		n := f.Width * f.Height
		if n == 0 {
			return RGB{R: 255, G: 255, B: 255}
		}
		idx := int(depth * float64(n))
		if idx < 0 {
			idx = 0
		}
		if idx >= n {
			idx = n - 1
		}
		i := idx * 4
		return RGB{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2]}
	case ModeCustom:
		return p.CustomColor
	default:
		return RGB{R: 255, G: 255, B: 255}
	}
}
