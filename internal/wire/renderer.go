// Package wire renders cube instances as depth-tested wireframes
// into a software framebuffer.
package wire

import (
	"image"

	"lumicube-renderer/internal/camera"
	"lumicube-renderer/internal/postprocess"
	"lumicube-renderer/internal/scene"
)

// baseHalfExtent is half the cube edge at CubeSize = 1 and pulse = 1,
// sized against the 0.5 grid spacing so neighbours do not touch.
const baseHalfExtent = 0.2

// corners are the unit cube corner offsets; edges index corner pairs.
var corners = [8][3]float64{
	{-1, -1, -1},
	{-1, 1, -1},
	{1, 1, -1},
	{1, -1, -1},
	{-1, -1, 1},
	{-1, 1, 1},
	{1, 1, 1},
	{1, -1, 1},
}

var edges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Options controls the offscreen render target.
type Options struct {
	Size        int
	Supersample int
	Background  [3]uint8
}

// Render draws every cube at its current rotation, scaled by
// CubeSize and the live pulse factor, through the orbit camera.
// Renders at Size·Supersample and downsamples for clean 1px lines.
func Render(cubes []scene.Cube, cam camera.Orbit, pulse float64, p scene.Params, opts Options) *image.NRGBA {
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	size := opts.Size * ss
	fb := NewFrameBuffer(size, size, opts.Background)

	half := baseHalfExtent * p.CubeSize * pulse

	var sx, sy, sz [8]float64
	var vis [8]bool

	for i := range cubes {
		c := &cubes[i]
		rot := c.RotationMatrix()

		for k := 0; k < 8; k++ {
			corner := rot.MulVec3([3]float64{
				corners[k][0] * half,
				corners[k][1] * half,
				corners[k][2] * half,
			})
			world := c.Pos.Add(corner)
			sx[k], sy[k], sz[k], vis[k] = cam.Project(world, size)
		}

		for _, e := range edges {
			a, b := e[0], e[1]
			if !vis[a] || !vis[b] {
				continue
			}
			DrawLine(fb, sx[a], sy[a], sz[a], sx[b], sy[b], sz[b],
				c.Color.R, c.Color.G, c.Color.B)
		}
	}

	img := fb.Image()
	if ss > 1 {
		img = postprocess.Downsample(img, opts.Size)
	}
	return img
}
