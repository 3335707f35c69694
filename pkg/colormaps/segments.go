package colormaps

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Anchor is one breakpoint of a channel: at X the channel arrives with value
// Below and leaves with value Above. Below differs from Above only at a
// discontinuity.
type Anchor struct {
	X, Below, Above float64
}

// Channel is a piecewise linear function given by anchors with increasing X,
// the first at 0 and the last at 1.
type Channel []Anchor

// At evaluates the channel at t.
func (c Channel) At(t float64) float64 {
	if t <= c[0].X {
		return c[0].Above
	}
	for i := 1; i < len(c); i++ {
		a, b := c[i-1], c[i]
		if t <= b.X {
			if b.X == a.X {
				return b.Below
			}
			f := (t - a.X) / (b.X - a.X)
			return a.Above + (b.Below-a.Above)*f
		}
	}
	return c[len(c)-1].Below
}

// Segmented is a colormap described per channel.
type Segmented struct {
	Red, Green, Blue Channel
}

// At implements Colormap.
func (s Segmented) At(t float64) colorful.Color {
	return colorful.Color{R: s.Red.At(t), G: s.Green.At(t), B: s.Blue.At(t)}
}

// smooth builds a channel without discontinuities from (x, y) pairs.
func smooth(xy ...float64) Channel {
	c := make(Channel, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		c = append(c, Anchor{X: xy[i], Below: xy[i+1], Above: xy[i+1]})
	}
	return c
}

// spaced builds a channel from values evenly spaced over [0, 1].
func spaced(ys ...float64) Channel {
	c := make(Channel, len(ys))
	for i, y := range ys {
		c[i] = Anchor{X: float64(i) / float64(len(ys)-1), Below: y, Above: y}
	}
	return c
}

var segmented = map[string]Segmented{
	"jet": {
		Red:   smooth(0, 0, 0.35, 0, 0.66, 1, 0.89, 1, 1, 0.5),
		Green: smooth(0, 0, 0.125, 0, 0.375, 1, 0.64, 1, 0.91, 0, 1, 0),
		Blue:  smooth(0, 0.5, 0.11, 1, 0.34, 1, 0.65, 0, 1, 0),
	},
	"bwr": {
		Red:   smooth(0, 0, 0.5, 1, 1, 1),
		Green: smooth(0, 0, 0.5, 1, 1, 0),
		Blue:  smooth(0, 1, 0.5, 1, 1, 0),
	},
	"brg": {
		Red:   smooth(0, 0, 0.5, 1, 1, 0),
		Green: smooth(0, 0, 0.5, 0, 1, 1),
		Blue:  smooth(0, 1, 0.5, 0, 1, 0),
	},
	"seismic": {
		Red:   smooth(0, 0, 0.25, 0, 0.5, 1, 0.75, 1, 1, 0.5),
		Green: smooth(0, 0, 0.25, 0, 0.5, 1, 0.75, 0, 1, 0),
		Blue:  smooth(0, 0.3, 0.25, 1, 0.5, 1, 0.75, 0, 1, 0),
	},
	"gist_stern": {
		Red: Channel{
			{X: 0, Below: 0, Above: 0},
			{X: 0.0547, Below: 1, Above: 1},
			{X: 0.250, Below: 0.027, Above: 0.250},
			{X: 1, Below: 1, Above: 1},
		},
		Green: smooth(0, 0, 1, 1),
		Blue:  smooth(0, 0, 0.5, 1, 0.735, 0, 1, 0),
	},
	"gist_rainbow": {
		Red:   smooth(0, 1, 0.030, 1, 0.215, 1, 0.400, 0, 0.586, 0, 0.770, 0, 0.954, 1, 1, 1),
		Green: smooth(0, 0, 0.030, 0, 0.215, 1, 0.400, 1, 0.586, 1, 0.770, 0, 0.954, 0, 1, 0),
		Blue:  smooth(0, 0.16, 0.030, 0, 0.215, 0, 0.400, 0, 0.586, 1, 0.770, 1, 0.954, 1, 1, 0.75),
	},
	"nipy_spectral": {
		Red: spaced(0, 0.4667, 0.5333, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0.7333, 0.9333, 1, 1, 1, 0.8667, 0.8, 0.8),
		Green: spaced(0, 0, 0, 0, 0, 0.4667, 0.6, 0.6667, 0.6667, 0.6, 0.7333,
			0.8667, 1, 1, 0.9333, 0.8, 0.6, 0, 0, 0, 0.8),
		Blue: spaced(0, 0.5333, 0.6, 0.6667, 0.8667, 0.8667, 0.8667, 0.6667, 0.5333, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0.8),
	},
}

// listed maps are given as colour keypoints.
var listed = map[string]Ramp{
	"terrain": {
		{colorful.Color{R: 0.2, G: 0.2, B: 0.6}, 0},
		{colorful.Color{R: 0, G: 0.6, B: 1}, 0.15},
		{colorful.Color{R: 0, G: 0.8, B: 0.4}, 0.25},
		{colorful.Color{R: 1, G: 1, B: 0.6}, 0.5},
		{colorful.Color{R: 0.5, G: 0.36, B: 0.33}, 0.75},
		{colorful.Color{R: 1, G: 1, B: 1}, 1},
	},
	"CMRmap": evenly(
		colorful.Color{R: 0, G: 0, B: 0},
		colorful.Color{R: 0.15, G: 0.15, B: 0.5},
		colorful.Color{R: 0.3, G: 0.15, B: 0.75},
		colorful.Color{R: 0.6, G: 0.2, B: 0.5},
		colorful.Color{R: 1, G: 0.25, B: 0.15},
		colorful.Color{R: 0.9, G: 0.5, B: 0},
		colorful.Color{R: 0.9, G: 0.75, B: 0.1},
		colorful.Color{R: 0.9, G: 0.9, B: 0.5},
		colorful.Color{R: 1, G: 1, B: 1},
	),
}

func evenly(cols ...colorful.Color) Ramp {
	r := make(Ramp, len(cols))
	for i, c := range cols {
		r[i] = Keypoint{Col: c, Pos: float64(i) / float64(len(cols)-1)}
	}
	return r
}
