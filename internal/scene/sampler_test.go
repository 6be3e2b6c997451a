package scene

import (
	"image"
	"image/color"
	"testing"

	"lumicube-renderer/internal/field"
)

func testField(t *testing.T, w, h int, lum uint8) *field.Field {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{lum, lum, lum, 255})
		}
	}
	return field.FromImage(img)
}

func TestGridEdge(t *testing.T) {
	cases := []struct {
		density float64
		want    int
	}{
		{0, 0},
		{0.049, 0},
		{0.05, 1},
		{0.5, 10},
		{0.99, 19},
		{1, 20},
	}
	for _, c := range cases {
		if got := GridEdge(c.density); got != c.want {
			t.Errorf("GridEdge(%v) = %d, want %d", c.density, got, c.want)
		}
	}
}

func TestBuildCountBound(t *testing.T) {
	f := testField(t, 64, 64, 200)
	p := DefaultParams()
	p.Density = 0.5
	p.Threshold = 0.1

	cubes := Build(f, p)
	edge := GridEdge(p.Density)
	if edge != 10 {
		t.Fatalf("edge = %d, want 10", edge)
	}
	if len(cubes) > edge*edge {
		t.Fatalf("%d instances exceeds edge² = %d", len(cubes), edge*edge)
	}
	// Uniform bright field above threshold: every candidate admitted.
	if len(cubes) != edge*edge {
		t.Fatalf("uniform bright field built %d cubes, want %d", len(cubes), edge*edge)
	}
}

func TestBuildThresholdExcludes(t *testing.T) {
	f := testField(t, 32, 32, 128)
	p := DefaultParams()
	p.Threshold = 1.0
	if got := Build(f, p); len(got) != 0 {
		t.Fatalf("threshold 1.0 admitted %d cubes", len(got))
	}

	p.Threshold = 0.9
	for _, c := range Build(f, p) {
		if c.Depth <= p.Threshold {
			t.Fatalf("cube admitted with depth %v ≤ threshold %v", c.Depth, p.Threshold)
		}
	}
}

func TestBuildIdempotent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 6), uint8(y * 6), 90, 255})
		}
	}
	f := field.FromImage(img)
	p := DefaultParams()

	a := Build(f, p)
	b := Build(f, p)
	if len(a) != len(b) {
		t.Fatalf("rebuild changed count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("rebuild changed instance %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestAnimationParamsDoNotChangeCount(t *testing.T) {
	f := testField(t, 48, 48, 180)
	p := DefaultParams()
	base := len(Build(f, p))

	p.PulseStrength = 1.0
	p.RotationSpeed = 2.0
	if got := len(Build(f, p)); got != base {
		t.Fatalf("pulse/rotation change altered count: %d vs %d", got, base)
	}
}

func TestBuildEmptyField(t *testing.T) {
	if got := Build(&field.Field{}, DefaultParams()); got != nil {
		t.Fatalf("empty field built %d cubes", len(got))
	}
}

func TestBuildZeroDensity(t *testing.T) {
	f := testField(t, 16, 16, 255)
	p := DefaultParams()
	p.Density = 0
	if got := Build(f, p); len(got) != 0 {
		t.Fatalf("zero density built %d cubes", len(got))
	}
}

func TestDepthScalePosition(t *testing.T) {
	f := testField(t, 16, 16, 255) // depth 1.0 everywhere
	p := DefaultParams()
	p.Density = 0.1 // edge 2
	p.DepthScale = 1.7
	cubes := Build(f, p)
	if len(cubes) == 0 {
		t.Fatal("no cubes built")
	}
	for _, c := range cubes {
		if c.Pos[2] != 1.7 {
			t.Fatalf("z = %v, want depth·scale = 1.7", c.Pos[2])
		}
	}
}

func TestColorModes(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{200, 100, 50, 255})
		}
	}
	f := field.FromImage(img)

	p := DefaultParams()
	p.ColorMode = ModeMonochrome
	for _, c := range Build(f, p) {
		if (c.Color != RGB{R: 255, G: 255, B: 255}) {
			t.Fatalf("monochrome cube color %+v", c.Color)
		}
	}

	p.ColorMode = ModeCustom
	p.CustomColor = RGB{R: 10, G: 20, B: 30}
	for _, c := range Build(f, p) {
		if c.Color != p.CustomColor {
			t.Fatalf("custom cube color %+v", c.Color)
		}
	}

	// Uniform image: any remapped index lands on the same color.
	p.ColorMode = ModeSampled
	for _, c := range Build(f, p) {
		if (c.Color != RGB{R: 200, G: 100, B: 50}) {
			t.Fatalf("sampled cube color %+v", c.Color)
		}
	}
}

func TestSampledColorClamped(t *testing.T) {
	// Depth 1.0 maps to index = pixelCount, which must clamp to the
	// last pixel rather than read past the buffer.
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	img.SetNRGBA(3, 3, color.NRGBA{255, 255, 254, 255}) // last pixel marker, still depth≈1
	f := field.FromImage(img)

	p := DefaultParams()
	p.ColorMode = ModeSampled
	p.Threshold = 0.5
	cubes := Build(f, p)
	if len(cubes) == 0 {
		t.Fatal("no cubes built")
	}
	for _, c := range cubes {
		if c.Color.R != 255 {
			t.Fatalf("clamped sample read garbage: %+v", c.Color)
		}
	}
}
