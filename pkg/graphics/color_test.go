package graphics

import "testing"

func TestRGBFMatchesByteConstruction(t *testing.T) {
	if got := RGBF(1, 0, 0); got != ColorRed {
		t.Errorf("RGBF(1,0,0) = %08x, want %08x", uint32(got), uint32(ColorRed))
	}
	if got := RGBF(1, 1, 1); got != ColorWhite {
		t.Errorf("RGBF(1,1,1) = %08x, want white", uint32(got))
	}
	// Out-of-range components clamp.
	if got := RGBF(2, -1, 0.5); got != RGB(255, 0, 128) {
		t.Errorf("clamped RGBF = %08x", uint32(got))
	}
}

func TestAlphaRoundTrip(t *testing.T) {
	c := RGBA(10, 20, 30, 0.5)
	if a := c.Alpha(); a < 0.49 || a > 0.51 {
		t.Errorf("Alpha = %g, want about 0.5", a)
	}
	opaque := c.WithAlpha(1)
	if opaque.Alpha() != 1 {
		t.Errorf("WithAlpha(1).Alpha = %g", opaque.Alpha())
	}
	r, g, b, _ := opaque.RGBAF()
	if r != 10.0/255 || g != 20.0/255 || b != 30.0/255 {
		t.Errorf("RGBAF = %g,%g,%g", r, g, b)
	}
}
