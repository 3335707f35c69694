// Package colorspace converts colour channels between the sRGB encoding used
// for authoring palettes and the linear-light encoding shading math expects.
package colorspace

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a colour with float channels in [0, 1]. Whether the channels are
// sRGB encoded or linear light depends on where the value came from; the type
// does not track it.
type RGBA struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// Opaque black and white.
var (
	Black = RGBA{0, 0, 0, 1}
	White = RGBA{1, 1, 1, 1}
)

// Linear converts one sRGB encoded channel to linear light:
//
//	c / 12.92                    if c <= 0.04045
//	((c + 0.055) / 1.055) ^ 2.4  otherwise
//
// Inputs are expected in [0, 1].
func Linear(c float64) float64 {
	r, _, _ := colorful.Color{R: c}.LinearRgb()
	return r
}

// SRGB is the inverse of Linear.
func SRGB(c float64) float64 {
	return colorful.LinearRgb(c, 0, 0).R
}

// Linear converts R, G and B from sRGB to linear light. Alpha is unchanged.
func (c RGBA) Linear() RGBA {
	r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.LinearRgb()
	return RGBA{r, g, b, c.A}
}

// SRGB converts R, G and B from linear light to sRGB. Alpha is unchanged.
func (c RGBA) SRGB() RGBA {
	s := colorful.LinearRgb(c.R, c.G, c.B)
	return RGBA{s.R, s.G, s.B, c.A}
}

// Lerp interpolates every channel from c towards other.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Clamped returns c with every channel clamped to [0, 1].
func (c RGBA) Clamped() RGBA {
	return RGBA{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// NRGBA quantizes c to 8 bits per channel, non-premultiplied.
func (c RGBA) NRGBA() color.NRGBA {
	c = c.Clamped()
	return color.NRGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: uint8(math.Round(c.A * 255)),
	}
}

// Hex formats the colour channels as #rrggbb, ignoring alpha.
func (c RGBA) Hex() string {
	cc := c.Clamped()
	return colorful.Color{R: cc.R, G: cc.G, B: cc.B}.Hex()
}

// String implements fmt.Stringer.
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%.4f, %.4f, %.4f, %.4f)", c.R, c.G, c.B, c.A)
}

// FromHex parses #rrggbb or #rgb as an opaque colour.
func FromHex(s string) (RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("parsing colour %q: %w", s, err)
	}
	return RGBA{c.R, c.G, c.B, 1}, nil
}

// MustHex is FromHex for static tables; it panics on malformed input.
func MustHex(s string) RGBA {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColorful converts a go-colorful colour to an opaque RGBA.
func FromColorful(c colorful.Color) RGBA {
	c = c.Clamped()
	return RGBA{c.R, c.G, c.B, 1}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
