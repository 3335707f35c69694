// Package gradient builds colour gradients in linear light and evaluates them.
package gradient

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/jnwhnr/data-on-the-sphere/pkg/colorspace"
)

// Gradient errors.
var (
	ErrInvalidGradient  = errors.New("invalid gradient")
	ErrExternalProvider = errors.New("external colormap provider failed")
)

// Stop is one (position, colour) pair of a gradient. Colours are linear light.
type Stop struct {
	Position float64         `yaml:"position"`
	Color    colorspace.RGBA `yaml:"color"`
}

// Gradient is an ordered list of stops starting at 0 and ending at 1 with
// strictly increasing positions.
type Gradient struct {
	stops []Stop
}

// New validates stops and returns a gradient holding a copy of them.
func New(stops []Stop) (Gradient, error) {
	if len(stops) < 2 {
		return Gradient{}, fmt.Errorf("%w: need at least 2 stops, got %d", ErrInvalidGradient, len(stops))
	}
	if stops[0].Position != 0 {
		return Gradient{}, fmt.Errorf("%w: first stop at %v", ErrInvalidGradient, stops[0].Position)
	}
	if last := stops[len(stops)-1].Position; last != 1 {
		return Gradient{}, fmt.Errorf("%w: last stop at %v", ErrInvalidGradient, last)
	}
	for i := 1; i < len(stops); i++ {
		if !(stops[i].Position > stops[i-1].Position) {
			return Gradient{}, fmt.Errorf("%w: stop %d at %v after %v",
				ErrInvalidGradient, i, stops[i].Position, stops[i-1].Position)
		}
	}
	return Gradient{stops: append([]Stop(nil), stops...)}, nil
}

// Fallback is the two-stop opaque black to white gradient.
func Fallback() Gradient {
	return Gradient{stops: []Stop{
		{Position: 0, Color: colorspace.Black},
		{Position: 1, Color: colorspace.White},
	}}
}

// Stops returns a copy of the stops.
func (g Gradient) Stops() []Stop {
	return append([]Stop(nil), g.stops...)
}

// Len returns the number of stops.
func (g Gradient) Len() int { return len(g.stops) }

// MarshalYAML writes the gradient as its stop list.
func (g Gradient) MarshalYAML() (interface{}, error) {
	return g.stops, nil
}

// UnmarshalYAML reads a stop list and validates it like New.
func (g *Gradient) UnmarshalYAML(n *yaml.Node) error {
	var stops []Stop
	if err := n.Decode(&stops); err != nil {
		return err
	}
	parsed, err := New(stops)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Evaluate returns the colour of g at t. Values outside the stop range clamp
// to the end colours; inside, channels are interpolated linearly between the
// bracketing stops.
func Evaluate(g Gradient, t float64) colorspace.RGBA {
	stops := g.stops
	if len(stops) == 0 {
		return colorspace.Black
	}
	first, last := stops[0], stops[len(stops)-1]
	if t <= first.Position || math.IsNaN(t) {
		return first.Color
	}
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t <= b.Position {
			if b.Position == a.Position {
				return a.Color
			}
			return a.Color.Lerp(b.Color, (t-a.Position)/(b.Position-a.Position))
		}
	}
	return last.Color
}

// At is Evaluate as a method.
func (g Gradient) At(t float64) colorspace.RGBA {
	return Evaluate(g, t)
}

// Sample returns n colours evenly spaced over [0, 1], both ends included.
func (g Gradient) Sample(n int) []colorspace.RGBA {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []colorspace.RGBA{Evaluate(g, 0)}
	}
	out := make([]colorspace.RGBA, n)
	for i := range out {
		out[i] = Evaluate(g, float64(i)/float64(n-1))
	}
	return out
}
