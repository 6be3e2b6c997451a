package scene

import "testing"

func TestParseColorMode(t *testing.T) {
	for _, s := range []string{"monochrome", "sampled", "custom"} {
		if _, err := ParseColorMode(s); err != nil {
			t.Errorf("ParseColorMode(%q) error: %v", s, err)
		}
	}
	if _, err := ParseColorMode("plasma"); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestClampRanges(t *testing.T) {
	p := Params{
		Density:       1.5,
		RotationSpeed: -1,
		PulseStrength: 2,
		DepthScale:    9,
		CubeSize:      0,
		Threshold:     -0.1,
		ColorMode:     "plasma",
	}
	p.Clamp()

	if p.Density != 1 || p.RotationSpeed != 0 || p.PulseStrength != 1 {
		t.Fatalf("clamp failed: %+v", p)
	}
	if p.DepthScale != 2 || p.CubeSize != 0.1 || p.Threshold != 0 {
		t.Fatalf("clamp failed: %+v", p)
	}
	if p.ColorMode != ModeMonochrome {
		t.Fatalf("unknown mode not reset: %v", p.ColorMode)
	}
}

func TestDefaultParamsWithinRanges(t *testing.T) {
	p := DefaultParams()
	q := p
	q.Clamp()
	if p != q {
		t.Fatalf("defaults changed by Clamp: %+v vs %+v", p, q)
	}
}
