package colormaps

import (
	"errors"
	"math"
	"testing"

	"github.com/jnwhnr/data-on-the-sphere/pkg/colorspace"
	"github.com/jnwhnr/data-on-the-sphere/pkg/palette"
)

const eps = 1e-3

func near(a, b colorspace.RGBA) bool {
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestEveryExternalNameSamples(t *testing.T) {
	tables := New()
	for _, name := range palette.Default().ExternalNames() {
		for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
			c, err := tables.At(name, x)
			if err != nil {
				t.Fatalf("At(%q, %v) error: %v", name, x, err)
			}
			if c != c.Clamped() || c.A != 1 {
				t.Errorf("At(%q, %v) = %v, want opaque channels in [0, 1]", name, x, c)
			}
		}
	}
}

func TestKnownEndpoints(t *testing.T) {
	tables := New()
	tests := []struct {
		name string
		x    float64
		want string
	}{
		{"viridis", 0, "#440154"},
		{"viridis", 1, "#fde725"},
		{"Blues", 0, "#f7fbff"},
		{"Blues", 1, "#08306b"},
		{"RdBu", 0, "#67001f"},
		{"RdBu_r", 0, "#053061"},
		{"Greys", 1, "#000000"},
		{"jet", 0, "#000080"},
		{"bwr", 0.5, "#ffffff"},
		{"hsv", 0, "#ff0000"},
		{"hsv", 1, "#ff0000"},
		{"terrain", 1, "#ffffff"},
		{"gnuplot", 0, "#000000"},
		{"cubehelix", 0, "#000000"},
		{"cubehelix", 1, "#ffffff"},
	}
	for _, tt := range tests {
		got, err := tables.At(tt.name, tt.x)
		if err != nil {
			t.Fatalf("At(%q, %v) error: %v", tt.name, tt.x, err)
		}
		if got.Hex() != tt.want {
			t.Errorf("At(%q, %v) = %s, want %s", tt.name, tt.x, got.Hex(), tt.want)
		}
	}
}

func TestReversed(t *testing.T) {
	tables := New()
	for _, x := range []float64{0, 0.2, 0.5, 0.9, 1} {
		a, _ := tables.At("Spectral", x)
		b, err := tables.At("Spectral_r", 1-x)
		if err != nil {
			t.Fatalf("At(Spectral_r) error: %v", err)
		}
		if !near(a, b) {
			t.Errorf("Spectral(%v) = %v, Spectral_r(%v) = %v", x, a, 1-x, b)
		}
	}
}

func TestClampsOutsideDomain(t *testing.T) {
	tables := New()
	lo, _ := tables.At("plasma", 0)
	hi, _ := tables.At("plasma", 1)
	below, _ := tables.At("plasma", -3)
	above, _ := tables.At("plasma", 7)
	if !near(lo, below) || !near(hi, above) {
		t.Errorf("out of domain samples not clamped: %v %v", below, above)
	}
}

func TestTwilightShifted(t *testing.T) {
	tables := New()
	mid, _ := tables.At("twilight", 0.5)
	start, _ := tables.At("twilight_shifted", 0)
	if !near(mid, start) {
		t.Errorf("twilight_shifted(0) = %v, want twilight(0.5) = %v", start, mid)
	}
}

func TestErrors(t *testing.T) {
	tables := New()
	if _, err := tables.At("nope", 0.5); !errors.Is(err, ErrUnknownColormap) {
		t.Errorf("At(nope) error = %v, want ErrUnknownColormap", err)
	}
	if _, err := tables.At("viridis", math.NaN()); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("At(viridis, NaN) error = %v, want ErrInvalidPosition", err)
	}
	if tables.Has("nope_r") || !tables.Has("magma_r") {
		t.Error("Has() mismatch for reversed names")
	}
}

func TestChannelDiscontinuity(t *testing.T) {
	c := Channel{
		{X: 0, Below: 0, Above: 0},
		{X: 0.5, Below: 1, Above: 0},
		{X: 1, Below: 1, Above: 1},
	}
	tests := []struct{ x, want float64 }{
		{0, 0}, {0.25, 0.5}, {0.5, 1}, {0.75, 0.5}, {1, 1},
	}
	for _, tt := range tests {
		if got := c.At(tt.x); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Channel.At(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}
