// Package colorbar draws vertical colour legends for a gradient and value
// range, as PNG or SVG.
package colorbar

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"

	"github.com/jnwhnr/data-on-the-sphere/internal/raster"
	"github.com/jnwhnr/data-on-the-sphere/pkg/gradient"
	"github.com/jnwhnr/data-on-the-sphere/pkg/valuerange"
)

// ErrInvalidOptions is returned for unusable layout options.
var ErrInvalidOptions = errors.New("invalid colorbar options")

// Text colour choices. Auto picks white for enhanced renders, black
// otherwise.
const (
	TextAuto  = "auto"
	TextBlack = "black"
	TextWhite = "white"
)

// Output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatBoth = "both"
)

// Options lay out the legend. Sizes are in pixels.
type Options struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	BarWidth  int    `yaml:"bar_width"`
	Margin    int    `yaml:"margin"`
	Ticks     int    `yaml:"ticks"`
	TickLen   int    `yaml:"tick_length"`
	Outline   int    `yaml:"outline"`
	FontScale int    `yaml:"font_scale"`
	TextColor string `yaml:"text_color"`
	Format    string `yaml:"format"`
}

// DefaultOptions matches a 2 x 4.8 inch legend at 300 dpi with six ticks.
func DefaultOptions() Options {
	return Options{
		Width:     600,
		Height:    1440,
		BarWidth:  160,
		Margin:    60,
		Ticks:     6,
		TickLen:   18,
		Outline:   6,
		FontScale: 5,
		TextColor: TextAuto,
		Format:    FormatPNG,
	}
}

// Validate checks that the bar fits inside the image.
func (o Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidOptions, o.Width, o.Height)
	case o.BarWidth <= 0 || o.Margin < 0 || o.BarWidth+2*o.Margin > o.Width:
		return fmt.Errorf("%w: bar width %d with margin %d exceeds width %d", ErrInvalidOptions, o.BarWidth, o.Margin, o.Width)
	case 2*o.Margin >= o.Height:
		return fmt.Errorf("%w: margin %d leaves no bar height", ErrInvalidOptions, o.Margin)
	case o.Ticks < 2:
		return fmt.Errorf("%w: need at least 2 ticks, got %d", ErrInvalidOptions, o.Ticks)
	}
	switch o.Format {
	case FormatPNG, FormatSVG, FormatBoth:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidOptions, o.Format)
	}
	return nil
}

// ResolveTextColor maps auto to a concrete colour name.
func ResolveTextColor(name string, enhanced bool) string {
	if name == "" || name == TextAuto {
		if enhanced {
			return TextWhite
		}
		return TextBlack
	}
	return name
}

// Tick is one labelled value on the legend.
type Tick struct {
	Value float64 `yaml:"value"`
	Label string  `yaml:"label"`
}

// Ticks returns n evenly spaced labelled ticks from min to max.
func Ticks(r valuerange.Range, n int) []Tick {
	values := valuerange.Ticks(r, n)
	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{Value: v, Label: valuerange.FormatTick(v)}
	}
	return ticks
}

// Legend is a gradient bound to the value range it colours.
type Legend struct {
	Gradient gradient.Gradient
	Range    valuerange.Range
}

// colorAt returns the display colour for the bar row at fraction u from the
// bottom. Gradients are linear light, so colours are re-encoded to sRGB.
func (l Legend) colorAt(u float64) color.NRGBA {
	return gradient.Evaluate(l.Gradient, u).SRGB().NRGBA()
}

// barRect is the bar area for the layout.
func barRect(o Options) image.Rectangle {
	return image.Rect(o.Margin, o.Margin, o.Margin+o.BarWidth, o.Height-o.Margin)
}

// tickY maps tick i of n to a row: the first tick (minimum) at the bottom.
func tickY(bar image.Rectangle, i, n int) int {
	h := bar.Dy() - 1
	return bar.Max.Y - 1 - (i*h+(n-1)/2)/(n-1)
}

// PNG renders the legend onto a transparent image.
func (l Legend) PNG(o Options, textColor string) (*image.NRGBA, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := l.Range.Validate(); err != nil {
		return nil, err
	}
	fg, err := raster.ParseColor(textColor)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, o.Width, o.Height))
	bar := barRect(o)

	for y := bar.Min.Y; y < bar.Max.Y; y++ {
		u := float64(bar.Max.Y-1-y) / float64(bar.Dy()-1)
		row := image.Rect(bar.Min.X, y, bar.Max.X, y+1)
		draw.Draw(img, row, image.NewUniform(l.colorAt(u)), image.Point{}, draw.Src)
	}

	if o.Outline > 0 {
		stroke := image.NewUniform(fg)
		outer := bar.Inset(-o.Outline)
		for _, r := range []image.Rectangle{
			image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, bar.Min.Y),
			image.Rect(outer.Min.X, bar.Max.Y, outer.Max.X, outer.Max.Y),
			image.Rect(outer.Min.X, bar.Min.Y, bar.Min.X, bar.Max.Y),
			image.Rect(bar.Max.X, bar.Min.Y, outer.Max.X, bar.Max.Y),
		} {
			draw.Draw(img, r.Intersect(img.Bounds()), stroke, image.Point{}, draw.Src)
		}
	}

	ticks := Ticks(l.Range, o.Ticks)
	x0 := bar.Max.X + o.Outline
	for i, tk := range ticks {
		y := tickY(bar, i, len(ticks))
		line := image.Rect(x0, y-o.Outline/2, x0+o.TickLen, y-o.Outline/2+max(o.Outline, 1))
		draw.Draw(img, line.Intersect(img.Bounds()), image.NewUniform(fg), image.Point{}, draw.Src)

		size := raster.TextSize(tk.Label, o.FontScale)
		pt := image.Pt(x0+o.TickLen+o.FontScale*2, y-size.Y/2)
		raster.DrawText(img, pt, tk.Label, fg, o.FontScale)
	}
	return img, nil
}

// SVG writes the legend as an SVG document with a linear gradient fill.
func (l Legend) SVG(w io.Writer, o Options, textColor string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := l.Range.Validate(); err != nil {
		return err
	}
	if _, err := raster.ParseColor(textColor); err != nil {
		return err
	}

	stops := l.Gradient.Stops()
	offsets := make([]svg.Offcolor, len(stops))
	for i, s := range stops {
		c := s.Color.SRGB()
		offsets[i] = svg.Offcolor{
			Offset:  uint8(s.Position*100 + 0.5),
			Color:   c.Hex(),
			Opacity: c.A,
		}
	}

	bar := barRect(o)
	canvas := svg.New(w)
	canvas.Start(o.Width, o.Height)
	canvas.Def()
	// Bottom to top so the minimum sits at the bottom.
	canvas.LinearGradient("bar", 0, 100, 0, 0, offsets)
	canvas.DefEnd()
	canvas.Rect(bar.Min.X, bar.Min.Y, bar.Dx(), bar.Dy(),
		fmt.Sprintf("fill:url(#bar);stroke:%s;stroke-width:%d", textColor, o.Outline))

	ticks := Ticks(l.Range, o.Ticks)
	x0 := bar.Max.X + o.Outline
	fontSize := 13 * o.FontScale
	for i, tk := range ticks {
		y := tickY(bar, i, len(ticks))
		canvas.Line(x0, y, x0+o.TickLen, y,
			fmt.Sprintf("stroke:%s;stroke-width:%d", textColor, max(o.Outline, 1)))
		canvas.Text(x0+o.TickLen+o.FontScale*2, y+fontSize/3, tk.Label,
			fmt.Sprintf("fill:%s;font-size:%dpx;font-family:sans-serif", textColor, fontSize))
	}
	canvas.End()
	return nil
}

// WriteFiles writes the legend under dir as name.png and/or name.svg
// depending on o.Format, returning the paths written.
func (l Legend) WriteFiles(dir, name string, o Options, textColor string) ([]string, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	var written []string
	if o.Format == FormatPNG || o.Format == FormatBoth {
		img, err := l.PNG(o, textColor)
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, name+".png")
		if err := raster.WritePNG(path, img); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	if o.Format == FormatSVG || o.Format == FormatBoth {
		path := filepath.Join(dir, name+".svg")
		if err := writeSVGFile(path, l, o, textColor); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeSVGFile(path string, l Legend, o Options, textColor string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := l.SVG(f, o, textColor); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
