// Package valuerange maps raw data values onto the unit interval used to
// sample gradients.
package valuerange

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
)

// ErrDegenerateRange is returned when the source range has zero width.
var ErrDegenerateRange = errors.New("degenerate value range")

// Range is an affine mapping from [FromMin, FromMax] onto [ToMin, ToMax].
type Range struct {
	FromMin float64 `yaml:"min"`
	FromMax float64 `yaml:"max"`
	ToMin   float64 `yaml:"to_min"`
	ToMax   float64 `yaml:"to_max"`
}

// Unit returns the range mapping [min, max] onto [0, 1].
func Unit(min, max float64) Range {
	return Range{FromMin: min, FromMax: max, ToMin: 0, ToMax: 1}
}

// Validate reports ErrDegenerateRange for a zero width source range.
func (r Range) Validate() error {
	if r.FromMax == r.FromMin {
		return fmt.Errorf("%w: min and max are both %v", ErrDegenerateRange, r.FromMin)
	}
	if math.IsNaN(r.FromMin) || math.IsNaN(r.FromMax) {
		return fmt.Errorf("%w: NaN bound", ErrDegenerateRange)
	}
	return nil
}

// Normalize maps v affinely from the source range into the target range.
// Values outside the source range are extrapolated, not clamped.
func Normalize(v float64, r Range) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	s := scale.Linear{Min: r.FromMin, Max: r.FromMax}
	return r.ToMin + s.Map(v)*(r.ToMax-r.ToMin), nil
}

// Denormalize is the inverse of Normalize.
func Denormalize(u float64, r Range) (float64, error) {
	if r.ToMax == r.ToMin {
		return 0, fmt.Errorf("%w: target min and max are both %v", ErrDegenerateRange, r.ToMin)
	}
	if err := r.Validate(); err != nil {
		return 0, err
	}
	s := scale.Linear{Min: r.ToMin, Max: r.ToMax}
	return r.FromMin + s.Map(u)*(r.FromMax-r.FromMin), nil
}

// Ticks returns n evenly spaced values from FromMin to FromMax inclusive.
func Ticks(r Range, n int) []float64 {
	if n < 2 {
		n = 2
	}
	return vec.Linspace(r.FromMin, r.FromMax, n)
}

// NiceTicks returns at most max round-numbered major ticks inside the source
// range.
func NiceTicks(r Range, max int) []float64 {
	lo, hi := r.FromMin, r.FromMax
	if lo > hi {
		lo, hi = hi, lo
	}
	s := scale.Linear{Min: lo, Max: hi}
	major, _ := s.Ticks(scale.TickOptions{Max: max})
	return major
}

// FormatBound formats a range bound with an explicit sign for non-negative
// values: 5 -> "+5", -2.5 -> "-2.5".
func FormatBound(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if v >= 0 {
		return "+" + s
	}
	return s
}

// FormatTick formats a tick label with one decimal.
func FormatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
