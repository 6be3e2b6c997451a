package wire

import (
	"image"
	"image/color"
	"testing"

	"lumicube-renderer/internal/camera"
	"lumicube-renderer/internal/field"
	"lumicube-renderer/internal/scene"
)

func buildTestScene(t *testing.T) []scene.Cube {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, color.NRGBA{220, 220, 220, 255})
		}
	}
	p := scene.DefaultParams()
	p.Density = 0.25
	cubes := scene.Build(field.FromImage(img), p)
	if len(cubes) == 0 {
		t.Fatal("test scene built no cubes")
	}
	return cubes
}

func TestRenderSizeAndBackground(t *testing.T) {
	cubes := buildTestScene(t)
	cam := camera.NewOrbit(camera.AutoFrame(cubes, camera.DefaultFOV))
	img := Render(cubes, cam, 1.0, scene.DefaultParams(), Options{
		Size:        64,
		Supersample: 2,
		Background:  [3]uint8{0, 0, 0},
	})

	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("frame %v, want 64x64", img.Bounds())
	}

	lit := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] != 255 {
			t.Fatal("frame not opaque")
		}
		if img.Pix[i] > 0 || img.Pix[i+1] > 0 || img.Pix[i+2] > 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("no wireframe pixels drawn")
	}
}

func TestRenderEmptySceneIsBackground(t *testing.T) {
	cam := camera.NewOrbit(10)
	img := Render(nil, cam, 1.0, scene.DefaultParams(), Options{
		Size:       32,
		Background: [3]uint8{7, 7, 7},
	})
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 7 || img.Pix[i+1] != 7 || img.Pix[i+2] != 7 {
			t.Fatal("empty scene drew geometry")
		}
	}
}

func TestDrawLineDepthTest(t *testing.T) {
	fb := NewFrameBuffer(8, 8, [3]uint8{0, 0, 0})
	// Far line first, near line after: near color must win.
	DrawLine(fb, 0, 4, -10, 7, 4, -10, 255, 0, 0)
	DrawLine(fb, 0, 4, -5, 7, 4, -5, 0, 255, 0)
	idx := (4*8 + 3) * 4
	if fb.Color[idx] != 0 || fb.Color[idx+1] != 255 {
		t.Fatalf("near line lost the depth test: %v", fb.Color[idx:idx+3])
	}

	// Repeating the far line must not overwrite.
	DrawLine(fb, 0, 4, -10, 7, 4, -10, 255, 0, 0)
	if fb.Color[idx+1] != 255 {
		t.Fatal("far line overwrote near line")
	}
}

func TestDrawLineClipsAtBounds(t *testing.T) {
	fb := NewFrameBuffer(4, 4, [3]uint8{0, 0, 0})
	// Must not panic when the segment leaves the buffer.
	DrawLine(fb, -10, -10, 0, 10, 10, 0, 255, 255, 255)
}
