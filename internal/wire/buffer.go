package wire

import (
	"image"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel, len = W*H, initialized to -inf
}

// NewFrameBuffer allocates a -inf z-buffer and fills the color buffer
// with an opaque background.
func NewFrameBuffer(w, h int, bg [3]uint8) *FrameBuffer {
	n := w * h
	zbuf := make([]float64, n)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}
	col := make([]uint8, n*4)
	for i := 0; i < n; i++ {
		col[i*4+0] = bg[0]
		col[i*4+1] = bg[1]
		col[i*4+2] = bg[2]
		col[i*4+3] = 255
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  col,
		ZBuf:   zbuf,
	}
}

// Image copies the color buffer into a freshly allocated NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
