package gradient

import (
	"errors"
	"math"
	"testing"

	"github.com/jnwhnr/data-on-the-sphere/pkg/colorspace"
)

func mustNew(t *testing.T, stops []Stop) Gradient {
	t.Helper()
	g, err := New(stops)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g
}

func TestNewRejects(t *testing.T) {
	red := colorspace.RGBA{R: 1, A: 1}
	tests := []struct {
		name  string
		stops []Stop
	}{
		{"empty", nil},
		{"single", []Stop{{0, red}}},
		{"start", []Stop{{0.1, red}, {1, red}}},
		{"end", []Stop{{0, red}, {0.9, red}}},
		{"duplicate", []Stop{{0, red}, {0.5, red}, {0.5, red}, {1, red}}},
		{"descending", []Stop{{0, red}, {0.6, red}, {0.4, red}, {1, red}}},
		{"nan", []Stop{{0, red}, {math.NaN(), red}, {1, red}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.stops); !errors.Is(err, ErrInvalidGradient) {
				t.Errorf("New() error = %v, want ErrInvalidGradient", err)
			}
		})
	}
}

func TestNewCopies(t *testing.T) {
	stops := []Stop{{0, colorspace.Black}, {1, colorspace.White}}
	g := mustNew(t, stops)
	stops[0].Color = colorspace.White
	if g.Stops()[0].Color != colorspace.Black {
		t.Error("New() kept a reference to the caller's slice")
	}
	out := g.Stops()
	out[1].Color = colorspace.Black
	if Evaluate(g, 1) != colorspace.White {
		t.Error("Stops() leaked internal storage")
	}
}

func TestEvaluateEndpointsAndClamp(t *testing.T) {
	a := colorspace.RGBA{R: 0.1, G: 0.2, B: 0.3, A: 1}
	b := colorspace.RGBA{R: 0.9, G: 0.5, B: 0.0, A: 0.5}
	g := mustNew(t, []Stop{{0, a}, {0.3, b}, {1, a}})

	tests := []struct {
		t    float64
		want colorspace.RGBA
	}{
		{-1, a}, {0, a}, {0.3, b}, {1, a}, {2, a},
	}
	for _, tt := range tests {
		if got := Evaluate(g, tt.t); got != tt.want {
			t.Errorf("Evaluate(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestEvaluateInterpolates(t *testing.T) {
	g := Fallback()
	got := Evaluate(g, 0.25)
	for _, v := range []float64{got.R, got.G, got.B} {
		if math.Abs(v-0.25) > 1e-12 {
			t.Errorf("Evaluate(0.25) = %v, want 0.25 grey", got)
		}
	}
	if got.A != 1 {
		t.Errorf("Evaluate(0.25) alpha = %v, want 1", got.A)
	}
}

func TestEvaluateMonotonicBetweenStops(t *testing.T) {
	g := mustNew(t, []Stop{
		{0, colorspace.RGBA{R: 0.1, G: 0.9, B: 0.2, A: 1}},
		{0.4, colorspace.RGBA{R: 0.6, G: 0.4, B: 0.2, A: 1}},
		{1, colorspace.RGBA{R: 0.7, G: 0.1, B: 0.8, A: 1}},
	})
	prev := Evaluate(g, 0)
	for i := 1; i <= 1000; i++ {
		c := Evaluate(g, float64(i)/1000)
		if c.R < prev.R || c.G > prev.G || c.B < prev.B {
			t.Fatalf("Evaluate not monotonic at %v: %v after %v", float64(i)/1000, c, prev)
		}
		prev = c
	}
}

func TestSample(t *testing.T) {
	g := Fallback()
	cols := g.Sample(5)
	if len(cols) != 5 {
		t.Fatalf("Sample(5) len = %d", len(cols))
	}
	if cols[0] != colorspace.Black || cols[4] != colorspace.White {
		t.Errorf("Sample(5) ends = %v, %v", cols[0], cols[4])
	}
	if math.Abs(cols[2].R-0.5) > 1e-12 {
		t.Errorf("Sample(5)[2] = %v, want mid grey", cols[2])
	}
	if g.Sample(0) != nil {
		t.Error("Sample(0) should be nil")
	}
	if one := g.Sample(1); len(one) != 1 || one[0] != colorspace.Black {
		t.Errorf("Sample(1) = %v", one)
	}
}
