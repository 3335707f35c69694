// Package overlay composites colour legends onto rendered globe images.
package overlay

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/jnwhnr/data-on-the-sphere/internal/raster"
)

// ErrInvalidPosition is returned for unknown corner names.
var ErrInvalidPosition = errors.New("invalid overlay position")

// Position is the image corner the legend is anchored to.
type Position string

// Corners.
const (
	TopRight    Position = "top_right"
	TopLeft     Position = "top_left"
	BottomRight Position = "bottom_right"
	BottomLeft  Position = "bottom_left"
)

// ParsePosition validates a corner name. The empty string means top right.
func ParsePosition(s string) (Position, error) {
	switch p := Position(strings.ToLower(s)); p {
	case "":
		return TopRight, nil
	case TopRight, TopLeft, BottomRight, BottomLeft:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
}

// Options control legend size and placement.
type Options struct {
	Enabled           bool     `yaml:"enabled"`
	Position          Position `yaml:"position"`
	Scale             float64  `yaml:"scale"`
	Padding           int      `yaml:"padding"`
	BackgroundOpacity float64  `yaml:"background_opacity"`
	BackgroundPadding int      `yaml:"background_padding"`
	LabelPadding      int      `yaml:"label_padding"`
}

// DefaultOptions puts the legend top right at 40% of the image height.
func DefaultOptions() Options {
	return Options{
		Enabled:           false,
		Position:          TopRight,
		Scale:             0.4,
		Padding:           50,
		BackgroundOpacity: 0,
		BackgroundPadding: 10,
		LabelPadding:      30,
	}
}

// Placement returns the top-left corner of an item of the given size placed
// in a corner of the canvas, kept inside the canvas.
func Placement(canvas, item image.Point, pos Position, padding int) image.Point {
	var x, y int
	switch pos {
	case TopLeft:
		x, y = padding, padding
	case BottomRight:
		x, y = canvas.X-item.X-padding, canvas.Y-item.Y-padding
	case BottomLeft:
		x, y = padding, canvas.Y-item.Y-padding
	default:
		x, y = canvas.X-item.X-padding, padding
	}
	x = max(0, min(x, canvas.X-item.X))
	y = max(0, min(y, canvas.Y-item.Y))
	return image.Pt(x, y)
}

// LabelPrefix returns the part of an input name before the first underscore.
func LabelPrefix(input string) string {
	prefix, _, _ := strings.Cut(input, "_")
	return prefix
}

// Compositor draws legends onto renders.
type Compositor struct {
	Options Options
	Logger  *zap.Logger
}

// Composite scales the legend relative to the base height, optionally backs it
// with a translucent black panel, places it, and draws label in the bottom
// right corner when label is not empty.
func (c *Compositor) Composite(base, legend image.Image, label string, textColor color.Color) *image.NRGBA {
	o := c.Options
	bb := base.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bb.Dx(), bb.Dy()))
	draw.Draw(out, out.Bounds(), base, bb.Min, draw.Src)

	lb := legend.Bounds()
	h := int(float64(bb.Dy()) * o.Scale)
	w := int(float64(lb.Dx()) * float64(h) / float64(lb.Dy()))
	var panel image.Image = legend
	if h > 0 && w > 0 {
		panel = raster.Resize(legend, w, h)
	}

	if o.BackgroundOpacity > 0 {
		pad := o.BackgroundPadding
		pb := panel.Bounds()
		bg := image.NewNRGBA(image.Rect(0, 0, pb.Dx()+2*pad, pb.Dy()+2*pad))
		alpha := uint8(math.Min(1, o.BackgroundOpacity) * 255)
		draw.Draw(bg, bg.Bounds(), image.NewUniform(color.NRGBA{A: alpha}), image.Point{}, draw.Src)
		draw.Draw(bg, pb.Add(image.Pt(pad, pad)), panel, pb.Min, draw.Over)
		panel = bg
	}

	pb := panel.Bounds()
	at := Placement(bb.Size(), pb.Size(), o.Position, o.Padding)
	draw.Draw(out, pb.Sub(pb.Min).Add(at), panel, pb.Min, draw.Over)

	if label != "" {
		scale := FontScale(bb.Dy())
		size := raster.TextSize(label, scale)
		pt := image.Pt(bb.Dx()-size.X-o.LabelPadding, bb.Dy()-size.Y-o.LabelPadding)
		raster.DrawText(out, pt, label, textColor, scale)
	}
	return out
}

// FontScale picks an integer magnification of the bitmap font giving text
// roughly 2.5% of the image height, and never below 24 pixels.
func FontScale(imageHeight int) int {
	px := max(24, int(float64(imageHeight)*0.025))
	return max(1, int(math.Round(float64(px)/13)))
}

// CompositeFiles reads a render and a legend PNG, composites them and writes
// the result to outPath.
func (c *Compositor) CompositeFiles(renderPath, legendPath, outPath, label, textColor string) error {
	log := c.logger()

	fg, err := raster.ParseColor(textColor)
	if err != nil {
		return err
	}
	base, err := raster.ReadPNG(renderPath)
	if err != nil {
		return fmt.Errorf("reading render: %w", err)
	}
	legend, err := raster.ReadPNG(legendPath)
	if err != nil {
		return fmt.Errorf("reading colorbar: %w", err)
	}

	out := c.Composite(base, legend, label, fg)
	if err := raster.WritePNG(outPath, out); err != nil {
		return fmt.Errorf("writing composite: %w", err)
	}
	log.Info("composite written", zap.String("render", renderPath), zap.String("output", outPath))
	return nil
}

func (c *Compositor) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
