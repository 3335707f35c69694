package plan

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jnwhnr/data-on-the-sphere/pkg/valuerange"
)

// Suffix builds the file name suffix shared by renders and colorbars of one
// run: _wow, _zoomNN, _dof_fNN, the signed range bounds and _robinson.
func Suffix(s Settings) string {
	var b strings.Builder
	if s.Enhanced {
		b.WriteString("_wow")
	}
	b.WriteString("_zoom")
	b.WriteString(zoomTag(s.Camera.ZoomLevel))
	if s.Camera.DepthOfField {
		b.WriteString("_dof_f")
		b.WriteString(strings.Replace(fmt.Sprintf("%.1f", s.Camera.ApertureFStop), ".", "", 1))
	}
	b.WriteString("_")
	b.WriteString(valuerange.FormatBound(s.Range.FromMin))
	b.WriteString("_")
	b.WriteString(valuerange.FormatBound(s.Range.FromMax))
	if s.Object == Robinson {
		b.WriteString("_robinson")
	}
	return b.String()
}

// zoomTag formats whole zoom levels as two digits and fractional ones with
// two decimals and no point: 1 -> "01", 0.5 -> "050".
func zoomTag(z float64) string {
	if z == float64(int64(z)) {
		return fmt.Sprintf("%02d", int64(z))
	}
	return strings.Replace(fmt.Sprintf("%.2f", z), ".", "", 1)
}

// InputStem is the input file name without directory and extension.
func InputStem(input string) string {
	if input == "" {
		return ""
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// RenderName is the output image name for one camera.
func RenderName(s Settings, view, suffix string) string {
	prefix := InputStem(s.Input)
	if prefix == "" {
		prefix = string(s.Object)
	}
	return fmt.Sprintf("%s_%s%s.png", prefix, view, suffix)
}

// ColorbarName is the legend image name for a text colour.
func ColorbarName(s Settings, suffix, textColor string) string {
	min := valuerange.FormatBound(s.Range.FromMin)
	max := valuerange.FormatBound(s.Range.FromMax)
	return fmt.Sprintf("%s_colorbar%s_%s_%s_%s.png", s.Palette.Name, suffix, min, max, textColor)
}

// CompositeName is the name of a render with its legend overlaid.
func CompositeName(render string) string {
	return strings.TrimSuffix(render, ".png") + "_colorbar.png"
}
