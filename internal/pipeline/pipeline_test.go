package pipeline

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/jnwhnr/data-on-the-sphere/internal/colorbar"
	"github.com/jnwhnr/data-on-the-sphere/internal/overlay"
	"github.com/jnwhnr/data-on-the-sphere/internal/plan"
	"github.com/jnwhnr/data-on-the-sphere/internal/raster"
	"github.com/jnwhnr/data-on-the-sphere/pkg/camera"
	"github.com/jnwhnr/data-on-the-sphere/pkg/colormaps"
	"github.com/jnwhnr/data-on-the-sphere/pkg/geo"
	"github.com/jnwhnr/data-on-the-sphere/pkg/gradient"
	"github.com/jnwhnr/data-on-the-sphere/pkg/palette"
	"github.com/jnwhnr/data-on-the-sphere/pkg/valuerange"
)

func buildPlan(t *testing.T) *plan.Plan {
	t.Helper()
	r := gradient.NewResolver(palette.Default(), colormaps.New(), nil)
	b := plan.NewBuilder(r, geo.DefaultCatalog(), nil)
	p, err := b.Build(context.Background(), plan.Settings{
		Input:     "precip_ssp585.tif",
		Object:    plan.Sphere,
		Palette:   gradient.Request{Name: "viridis", Samples: 16},
		Range:     valuerange.Unit(0, 12),
		Camera:    camera.DefaultConfig(),
		Locations: []string{"Europe", "Asia"},
		TextColor: colorbar.TextAuto,
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return p
}

func smallLegend() colorbar.Options {
	o := colorbar.DefaultOptions()
	o.Width, o.Height, o.BarWidth, o.Margin, o.FontScale = 120, 300, 30, 20, 1
	return o
}

func TestColorbars(t *testing.T) {
	p := buildPlan(t)
	dir := t.TempDir()
	o := smallLegend()
	o.Format = colorbar.FormatBoth

	files, err := Colorbars(p, dir, o, nil)
	if err != nil {
		t.Fatalf("Colorbars() error: %v", err)
	}
	if len(files) != 4 {
		t.Fatalf("Colorbars() wrote %d files, want 4: %v", len(files), files)
	}
	if _, err := os.Stat(filepath.Join(dir, p.Colorbar())); err != nil {
		t.Errorf("legend for plan text colour missing: %v", err)
	}
}

func TestOverlays(t *testing.T) {
	p := buildPlan(t)
	dir := t.TempDir()
	if _, err := Colorbars(p, dir, smallLegend(), nil); err != nil {
		t.Fatalf("Colorbars() error: %v", err)
	}

	// Only the first view has been rendered.
	render := image.NewNRGBA(image.Rect(0, 0, 400, 400))
	for i := range render.Pix {
		render.Pix[i] = 0x80
	}
	render.Set(0, 0, color.NRGBA{A: 255})
	if err := raster.WritePNG(filepath.Join(dir, p.Shots[0].Output), render); err != nil {
		t.Fatal(err)
	}

	c := &overlay.Compositor{Options: overlay.DefaultOptions()}
	res, err := Overlays(context.Background(), p, dir, c, nil)
	if err != nil {
		t.Fatalf("Overlays() error: %v", err)
	}
	if res.Composited != 1 || res.Missing != 1 {
		t.Errorf("Overlays() = %+v, want 1 composited and 1 missing", res)
	}
	out, err := raster.ReadPNG(filepath.Join(dir, p.Shots[0].Composite))
	if err != nil {
		t.Fatalf("composite not readable: %v", err)
	}
	if out.Bounds().Size() != render.Bounds().Size() {
		t.Errorf("composite size = %v, want %v", out.Bounds().Size(), render.Bounds().Size())
	}
}

func TestOverlaysNeedColorbar(t *testing.T) {
	p := buildPlan(t)
	c := &overlay.Compositor{Options: overlay.DefaultOptions()}
	if _, err := Overlays(context.Background(), p, t.TempDir(), c, nil); !errors.Is(err, ErrNoColorbar) {
		t.Errorf("Overlays() error = %v, want ErrNoColorbar", err)
	}
}
