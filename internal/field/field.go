// Package field turns a decoded raster image into a per-pixel
// luminance field, the depth source for the cube grid.
package field

import "image"

// Field holds normalized per-pixel luminance in row-major order,
// plus the source RGBA bytes for color sampling. Immutable once
// built; a new image replaces the field wholesale.
type Field struct {
	Width  int
	Height int
	Values []float64 // len = Width*Height, each in [0,1]
	Pix    []uint8   // RGBA interleaved, len = Width*Height*4
}

// FromImage computes luminance = (R+G+B)/(3·255) for every pixel.
// No gamma correction, no channel weighting. A zero-dimension image
// yields an empty field.
func FromImage(img *image.NRGBA) *Field {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return &Field{}
	}

	f := &Field{
		Width:  w,
		Height: h,
		Values: make([]float64, w*h),
		Pix:    make([]uint8, w*h*4),
	}

	// img.Pix rows may be padded; copy row by row into a tight buffer.
	for y := 0; y < h; y++ {
		copy(f.Pix[y*w*4:(y+1)*w*4], img.Pix[y*img.Stride:y*img.Stride+w*4])
	}

	for i := 0; i < w*h; i++ {
		p := i * 4
		sum := int(f.Pix[p]) + int(f.Pix[p+1]) + int(f.Pix[p+2])
		f.Values[i] = float64(sum) / (3 * 255)
	}

	return f
}

// At returns the luminance at pixel (x, y). Out-of-range coordinates
// return 0.
func (f *Field) At(x, y int) float64 {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0
	}
	return f.Values[y*f.Width+x]
}

// Empty reports whether the field carries no pixels.
func (f *Field) Empty() bool {
	return f == nil || f.Width == 0 || f.Height == 0
}
