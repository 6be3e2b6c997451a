package wire

import "math"

// DrawLine rasterizes a depth-tested 1px line segment with linear z
// interpolation. Depth grows toward the camera; a pixel wins when its
// depth exceeds the stored value.
//
// This is the HOT PATH of the wireframe renderer — no allocation.
func DrawLine(fb *FrameBuffer, x0, y0, z0, x1, y1, z1 float64, r, g, b uint8) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1

	sx := dx / float64(steps)
	sy := dy / float64(steps)
	sz := (z1 - z0) / float64(steps)

	x, y, z := x0, y0, z0
	w, h := fb.Width, fb.Height

	for i := 0; i <= steps; i++ {
		px := int(x + 0.5)
		py := int(y + 0.5)
		if px >= 0 && px < w && py >= 0 && py < h {
			idx := py*w + px
			if z > fb.ZBuf[idx] {
				fb.ZBuf[idx] = z
				ci := idx * 4
				fb.Color[ci+0] = r
				fb.Color[ci+1] = g
				fb.Color[ci+2] = b
				fb.Color[ci+3] = 255
			}
		}
		x += sx
		y += sy
		z += sz
	}
}
