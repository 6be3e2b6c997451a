// Package camera provides the orbit camera used by both the offline
// renderer and the interactive viewer.
package camera

import (
	"math"

	"lumicube-renderer/internal/mathutil"
	"lumicube-renderer/internal/scene"
)

// DefaultFOV is the vertical field of view in degrees.
const DefaultFOV = 45.0

const (
	minDistance = 1.0
	maxDistance = 60.0
	// maxPitch stops the orbit just short of the poles.
	maxPitch = math.Pi/2 - 0.05
)

// Orbit is a yaw/pitch/distance camera looking at the origin.
type Orbit struct {
	Yaw      float64 // radians around Y
	Pitch    float64 // radians around X
	Distance float64 // world units from the origin
	FOV      float64 // vertical field of view, degrees
}

// NewOrbit returns a camera at a gentle three-quarter angle.
func NewOrbit(distance float64) Orbit {
	return Orbit{
		Yaw:      mathutil.Deg2Rad(30),
		Pitch:    mathutil.Deg2Rad(-20),
		Distance: distance,
		FOV:      DefaultFOV,
	}
}

// Rotation returns the world-to-view rotation.
func (o Orbit) Rotation() mathutil.Mat3 {
	return mathutil.Mat3Mul(mathutil.RotX(o.Pitch), mathutil.RotY(o.Yaw))
}

// Drag applies a mouse delta in pixels to yaw and pitch.
func (o *Orbit) Drag(dx, dy float64) {
	o.Yaw += dx / 100
	o.Pitch += dy / 100
	if o.Pitch > maxPitch {
		o.Pitch = maxPitch
	}
	if o.Pitch < -maxPitch {
		o.Pitch = -maxPitch
	}
}

// Zoom moves the camera along the view axis; positive steps zoom in.
func (o *Orbit) Zoom(steps float64) {
	o.Distance *= math.Pow(0.9, steps)
	if o.Distance < minDistance {
		o.Distance = minDistance
	}
	if o.Distance > maxDistance {
		o.Distance = maxDistance
	}
}

// AutoFrame returns the distance at which the whole cube set fits the
// view with a small margin. Falls back to a fixed distance for an
// empty set.
func AutoFrame(cubes []scene.Cube, fovDeg float64) float64 {
	if len(cubes) == 0 {
		return 10
	}
	var radius float64
	for i := range cubes {
		if l := cubes[i].Pos.Len(); l > radius {
			radius = l
		}
	}
	radius += 1 // room for cube extent and pulse
	d := radius / math.Tan(mathutil.Deg2Rad(fovDeg/2)) * 1.1
	if d < minDistance {
		d = minDistance
	}
	if d > maxDistance {
		d = maxDistance
	}
	return d
}

// Project transforms a world-space point to screen coordinates on a
// size×size target. The returned depth grows toward the camera so a
// plain greater-than z-test keeps near geometry; ok is false when the
// point lies behind the near plane.
func (o Orbit) Project(p mathutil.Vec3, size int) (sx, sy, depth float64, ok bool) {
	v := o.Rotation().MulVec3(p)
	dz := o.Distance - v[2]
	if dz < 0.1 {
		return 0, 0, 0, false
	}

	fov := o.FOV
	if fov == 0 {
		fov = DefaultFOV
	}
	f := float64(size) / 2 / math.Tan(mathutil.Deg2Rad(fov/2))
	half := float64(size) / 2

	sx = half + v[0]*f/dz
	sy = half - v[1]*f/dz
	return sx, sy, -dz, true
}
