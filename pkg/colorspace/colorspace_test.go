package colorspace

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestLinearBoundaries(t *testing.T) {
	if got := Linear(0); got != 0 {
		t.Errorf("Linear(0) = %v, want exactly 0", got)
	}
	if got := Linear(1); got != 1 {
		t.Errorf("Linear(1) = %v, want exactly 1", got)
	}
}

func TestLinearPiecewise(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.02, 0.02 / 12.92},
		{0.04045, 0.04045 / 12.92},
		{0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
		{0.8, math.Pow((0.8+0.055)/1.055, 2.4)},
	}

	for _, tt := range tests {
		if got := Linear(tt.in); math.Abs(got-tt.want) > 1e-15 {
			t.Errorf("Linear(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLinearMonotonic(t *testing.T) {
	prev := Linear(0)
	for i := 1; i <= 1000; i++ {
		cur := Linear(float64(i) / 1000)
		if cur < prev {
			t.Fatalf("Linear not monotonic at %v: %v < %v", float64(i)/1000, cur, prev)
		}
		prev = cur
	}
}

func TestSRGBInvertsLinear(t *testing.T) {
	for i := 0; i <= 20; i++ {
		c := float64(i) / 20
		if got := SRGB(Linear(c)); math.Abs(got-c) > 1e-9 {
			t.Errorf("SRGB(Linear(%v)) = %v", c, got)
		}
	}
}

func TestRGBALinearKeepsAlpha(t *testing.T) {
	c := RGBA{R: 0.5, G: 0.02, B: 1, A: 0.3}
	got := c.Linear()

	if got.A != 0.3 {
		t.Errorf("alpha changed: got %v, want 0.3", got.A)
	}
	if math.Abs(got.R-Linear(0.5)) > 1e-15 || math.Abs(got.G-Linear(0.02)) > 1e-15 || got.B != 1 {
		t.Errorf("channels not converted independently: %v", got)
	}
}

func TestNRGBA(t *testing.T) {
	got := RGBA{R: 1, G: 0.5, B: -0.2, A: 1}.NRGBA()
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	if got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
}

func TestFromHex(t *testing.T) {
	c, err := FromHex("#ff8000")
	if err != nil {
		t.Fatalf("FromHex failed: %v", err)
	}
	if c.R != 1 || math.Abs(c.G-128.0/255) > 1e-12 || c.B != 0 || c.A != 1 {
		t.Errorf("FromHex = %v", c)
	}
	if c.Hex() != "#ff8000" {
		t.Errorf("Hex() = %s, want #ff8000", c.Hex())
	}

	if _, err := FromHex("not a colour"); err == nil {
		t.Error("expected error for malformed hex")
	} else if errors.Unwrap(err) == nil {
		t.Error("expected wrapped parse error")
	}
}

func TestLerp(t *testing.T) {
	got := Black.Lerp(White, 0.25)
	want := RGBA{0.25, 0.25, 0.25, 1}
	if got != want {
		t.Errorf("Lerp = %v, want %v", got, want)
	}
}
