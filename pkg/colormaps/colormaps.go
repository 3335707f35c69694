// Package colormaps samples matplotlib style colormaps by name. The tables
// are compact approximations of the matplotlib definitions: ColorBrewer and
// perceptual maps as evenly spaced hex stops, the classic maps as per channel
// segment data, and the analytic maps (gnuplot, cubehelix, hsv ...) as
// functions. All colours are sRGB encoded.
package colormaps

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jnwhnr/data-on-the-sphere/pkg/colorspace"
)

// ErrUnknownColormap is returned for names the tables do not define.
var ErrUnknownColormap = errors.New("unknown colormap")

// ErrInvalidPosition is returned when a sample position is NaN.
var ErrInvalidPosition = errors.New("invalid colormap position")

// Colormap maps t in [0, 1] to an sRGB colour.
type Colormap interface {
	At(t float64) colorful.Color
}

// Func adapts a function to Colormap.
type Func func(t float64) colorful.Color

// At implements Colormap.
func (f Func) At(t float64) colorful.Color { return f(t) }

// Tables is the built-in colormap provider. The zero value is not usable;
// call New.
type Tables struct {
	maps map[string]Colormap
}

// New returns the provider with every built-in colormap.
func New() *Tables {
	t := &Tables{maps: make(map[string]Colormap)}
	for name, hexes := range brewer {
		t.maps[name] = mustHexRamp(hexes)
	}
	for name, hexes := range perceptual {
		t.maps[name] = mustHexRamp(hexes)
	}
	for name, seg := range segmented {
		t.maps[name] = seg
	}
	for name, stops := range listed {
		t.maps[name] = stops
	}
	for name, f := range analytic {
		t.maps[name] = f
	}
	twilight := t.maps["twilight"]
	t.maps["twilight_shifted"] = Func(func(x float64) colorful.Color {
		return twilight.At(frac(1.5 - x))
	})
	return t
}

// Add registers an extra colormap, replacing any existing one of that name.
func (t *Tables) Add(name string, cm Colormap) {
	t.maps[name] = cm
}

// Has reports whether name (or its _r variant) can be sampled.
func (t *Tables) Has(name string) bool {
	_, _, err := t.lookup(name)
	return err == nil
}

// Names returns the base colormap names, sorted.
func (t *Tables) Names() []string {
	names := make([]string, 0, len(t.maps))
	for name := range t.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// At samples colormap name at position x. Positions outside [0, 1] are
// clamped. A trailing _r samples the reversed map.
func (t *Tables) At(name string, x float64) (colorspace.RGBA, error) {
	cm, reversed, err := t.lookup(name)
	if err != nil {
		return colorspace.RGBA{}, err
	}
	if math.IsNaN(x) {
		return colorspace.RGBA{}, fmt.Errorf("%w: %s at NaN", ErrInvalidPosition, name)
	}
	x = clamp01(x)
	if reversed {
		x = 1 - x
	}
	return colorspace.FromColorful(cm.At(x)), nil
}

func (t *Tables) lookup(name string) (Colormap, bool, error) {
	if cm, ok := t.maps[name]; ok {
		return cm, false, nil
	}
	if base, ok := strings.CutSuffix(name, "_r"); ok {
		if cm, ok := t.maps[base]; ok {
			return cm, true, nil
		}
	}
	return nil, false, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
}

// Ramp is a list of positioned colour keypoints blended in RGB.
type Ramp []Keypoint

// Keypoint is one position on a Ramp.
type Keypoint struct {
	Col colorful.Color
	Pos float64
}

// At implements Colormap.
func (r Ramp) At(t float64) colorful.Color {
	if t <= r[0].Pos {
		return r[0].Col
	}
	for i := 0; i < len(r)-1; i++ {
		c1, c2 := r[i], r[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			if c2.Pos == c1.Pos {
				return c1.Col
			}
			return c1.Col.BlendRgb(c2.Col, (t-c1.Pos)/(c2.Pos-c1.Pos))
		}
	}
	return r[len(r)-1].Col
}

func mustHexRamp(hexes []string) Ramp {
	r := make(Ramp, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("colormaps: %v", err))
		}
		r[i] = Keypoint{Col: c, Pos: float64(i) / float64(len(hexes)-1)}
	}
	return r
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func frac(v float64) float64 {
	return v - math.Floor(v)
}
