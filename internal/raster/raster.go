// Package raster holds the small image helpers shared by the colorbar and
// overlay writers: named colours, bitmap text and PNG file IO.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jnwhnr/data-on-the-sphere/pkg/colorspace"
)

// ErrUnknownColor is returned for colour names that are neither SVG/CSS names
// nor hex codes.
var ErrUnknownColor = errors.New("unknown colour")

// ParseColor accepts an SVG colour keyword ("black", "white", "steelblue")
// or a #rrggbb hex code.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorspace.FromHex(s)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %w", ErrUnknownColor, err)
		}
		return c.NRGBA(), nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// Face is the bitmap font used for all labels.
var Face font.Face = basicfont.Face7x13

// glyphHeight is the line height of Face in pixels.
const glyphHeight = 13

// TextSize returns the size of s drawn at the given scale.
func TextSize(s string, scale int) image.Point {
	if scale < 1 {
		scale = 1
	}
	w := font.MeasureString(Face, s).Ceil()
	return image.Pt(w*scale, glyphHeight*scale)
}

// DrawText draws s with its top-left corner at pt, magnifying the bitmap font
// by an integer scale.
func DrawText(dst draw.Image, pt image.Point, s string, c color.Color, scale int) {
	if scale < 1 {
		scale = 1
	}
	w := font.MeasureString(Face, s).Ceil()
	if w == 0 {
		return
	}
	glyphs := image.NewNRGBA(image.Rect(0, 0, w, glyphHeight))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(c),
		Face: Face,
		Dot:  fixed.P(0, Face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	target := image.Rect(pt.X, pt.Y, pt.X+w*scale, pt.Y+glyphHeight*scale)
	draw.NearestNeighbor.Scale(dst, target, glyphs, glyphs.Bounds(), draw.Over, nil)
}

// Resize scales src to w by h with Catmull-Rom filtering.
func Resize(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// ReadPNG decodes a PNG file.
func ReadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// WritePNG encodes img to path, creating parent directories.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
