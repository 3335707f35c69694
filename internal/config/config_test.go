package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jnwhnr/data-on-the-sphere/internal/overlay"
	"github.com/jnwhnr/data-on-the-sphere/internal/plan"
	"github.com/jnwhnr/data-on-the-sphere/pkg/geo"
	"github.com/jnwhnr/data-on-the-sphere/pkg/palette"
	"github.com/jnwhnr/data-on-the-sphere/pkg/valuerange"
)

// isolate keeps Load from picking up a config file in the user's home.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	f := NewFlags("test", io.Discard)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Parse(%v) error: %v", args, err)
	}
	return Load(f)
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "globe.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Palette.Name != "temperature" {
		t.Errorf("expected palette temperature, got %s", cfg.Palette.Name)
	}
	if cfg.Palette.Samples != 20 {
		t.Errorf("expected 20 samples, got %d", cfg.Palette.Samples)
	}
	if cfg.Range.FromMin != 0 || cfg.Range.FromMax != 10 || cfg.Range.ToMax != 1 {
		t.Errorf("expected range 0..10 -> 0..1, got %+v", cfg.Range)
	}
	if cfg.Camera.FocalLengthMM != 50 || cfg.Camera.Distance != 6 {
		t.Errorf("unexpected camera defaults %+v", cfg.Camera)
	}
	if cfg.Render.Object != "sphere" {
		t.Errorf("expected sphere, got %s", cfg.Render.Object)
	}
	if len(cfg.Render.Locations) != 1 || cfg.Render.Locations[0] != "Europe" {
		t.Errorf("expected [Europe], got %v", cfg.Render.Locations)
	}
	if cfg.Overlay.Enabled {
		t.Error("expected overlay to be disabled by default")
	}
	if cfg.Reproject.Timeout != 5*time.Minute {
		t.Errorf("expected 5m reproject timeout, got %v", cfg.Reproject.Timeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, `
palette:
  name: viridis
  samples: 32
range:
  min: -5
  max: 5
  to_min: 0
  to_max: 1
camera:
  zoom: 1
  dof: true
  fstop: 2.8
render:
  object: robinson
  input: data/precip.tif
  enhanced: true
reproject:
  timeout: 90s
logging:
  level: debug
`)

	cfg, err := load(t, "-config", path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Palette.Name != "viridis" || cfg.Palette.Samples != 32 {
		t.Errorf("palette = %+v", cfg.Palette)
	}
	if cfg.Range.FromMin != -5 || cfg.Range.FromMax != 5 {
		t.Errorf("range = %+v", cfg.Range)
	}
	if cfg.Camera.ZoomLevel != 1 || !cfg.Camera.DepthOfField || cfg.Camera.ApertureFStop != 2.8 {
		t.Errorf("camera = %+v", cfg.Camera)
	}
	// Untouched values keep their defaults.
	if cfg.Camera.FocalLengthMM != 50 {
		t.Errorf("expected default focal length, got %v", cfg.Camera.FocalLengthMM)
	}
	if cfg.Reproject.Timeout != 90*time.Second {
		t.Errorf("expected 90s timeout, got %v", cfg.Reproject.Timeout)
	}
	if cfg.Reproject.Width != 5000 {
		t.Errorf("expected default reproject width, got %d", cfg.Reproject.Width)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, `
palette:
  name: viridis
range:
  min: -5
  max: 5
  to_max: 1
render:
  locations: [Asia]
`)

	cfg, err := load(t, "-config", path,
		"-palette", "precipitation",
		"-vmax", "20",
		"-locations", "Europe, Africa",
		"-effects",
		"-overlay-position", "bottom_left")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Palette.Name != "precipitation" {
		t.Errorf("expected flag palette, got %s", cfg.Palette.Name)
	}
	if cfg.Range.FromMin != -5 {
		t.Errorf("unset -vmin replaced file value: %v", cfg.Range.FromMin)
	}
	if cfg.Range.FromMax != 20 {
		t.Errorf("expected -vmax 20, got %v", cfg.Range.FromMax)
	}
	if got := strings.Join(cfg.Render.Locations, ","); got != "Europe,Africa" {
		t.Errorf("locations = %s", got)
	}
	if !cfg.Render.Enhanced {
		t.Error("expected -effects to enable enhanced mode")
	}
	if cfg.Overlay.Position != overlay.BottomLeft {
		t.Errorf("overlay position = %s", cfg.Overlay.Position)
	}
}

func TestFlagZeroValueOverrides(t *testing.T) {
	isolate(t)
	path := writeFile(t, `
range:
  min: 3
  max: 9
  to_max: 1
`)
	cfg, err := load(t, "-config", path, "-vmin", "0")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Range.FromMin != 0 {
		t.Errorf("explicit -vmin 0 ignored, got %v", cfg.Range.FromMin)
	}
}

func TestDebugFlag(t *testing.T) {
	isolate(t)
	cfg, err := load(t, "-debug")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	isolate(t)
	if _, err := load(t, "-config", filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.Range = valuerange.Unit(2, 2)
	cfg.Camera.Distance = 0
	cfg.Render.Object = "cube"
	cfg.Overlay.Position = "middle"
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate() error = %v, want ErrInvalidConfig", err)
	}
	for _, want := range []error{valuerange.ErrDegenerateRange, plan.ErrUnknownObject, overlay.ErrInvalidPosition} {
		if !errors.Is(err, want) {
			t.Errorf("Validate() error does not wrap %v", want)
		}
	}
	for _, want := range []string{"camera.distance", "logging.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error missing %q: %v", want, err)
		}
	}
}

func TestRegistryCustomPalettes(t *testing.T) {
	half := 0.5
	cfg := Default()
	cfg.CustomPalettes = []CustomPalette{{
		Name: "sand",
		Stops: []CustomStop{
			{Position: 0, Color: "#000000"},
			{Position: 1, Color: "#ffcc88", Alpha: &half},
		},
	}}
	reg, err := cfg.Registry()
	if err != nil {
		t.Fatalf("Registry() error: %v", err)
	}
	stops, err := reg.Custom("sand")
	if err != nil {
		t.Fatalf("Custom(sand) error: %v", err)
	}
	if stops[1].Color.A != 0.5 || stops[0].Color.A != 1 {
		t.Errorf("alpha = %v, %v", stops[0].Color.A, stops[1].Color.A)
	}

	cfg.CustomPalettes[0].Stops[1].Position = 0
	if _, err := cfg.Registry(); !errors.Is(err, palette.ErrInvalidRamp) {
		t.Errorf("Registry() error = %v, want ErrInvalidRamp", err)
	}
	cfg.CustomPalettes[0].Stops[1] = CustomStop{Position: 1, Color: "orange-ish"}
	if _, err := cfg.Registry(); err == nil {
		t.Error("expected error for malformed hex colour")
	}
}

func TestCatalogOverrides(t *testing.T) {
	cfg := Default()
	cfg.Locations = []geo.Position{
		{Name: "Bremen", Lat: 53, Lon: 9},
		{Name: "Lake_Victoria", Lat: -1, Lon: 33},
	}
	cat := cfg.Catalog()
	if got, _ := cat.Lookup("Bremen"); got.Lat != 53 {
		t.Errorf("Bremen override not applied: %+v", got)
	}
	if _, err := cat.Lookup("Lake_Victoria"); err != nil {
		t.Errorf("added location missing: %v", err)
	}

	cfg.Locations = append(cfg.Locations, geo.Position{Name: "Nowhere", Lat: 95})
	if err := cfg.Validate(); err == nil {
		t.Error("expected out of bounds location to fail validation")
	}
}

func TestSettings(t *testing.T) {
	cfg := Default()
	cfg.Render.Object = "robinson"
	cfg.Render.Input = filepath.Join("Input", "ESRI:54030", "precip.tif")
	s := cfg.Settings()
	if s.Object != plan.Robinson {
		t.Errorf("object = %s", s.Object)
	}
	if want := filepath.Join("Input", "ESRI:54030", "robinson_mask.tif"); s.MaskPath != want {
		t.Errorf("mask = %s, want %s", s.MaskPath, want)
	}
	if s.Palette.Name != "temperature" || s.Palette.Samples != 20 {
		t.Errorf("palette request = %+v", s.Palette)
	}
}

func TestOutputDir(t *testing.T) {
	cfg := Default()
	cfg.Output.Project = "proj"
	cfg.Render.Object = "robinson"
	if got := cfg.OutputDir(); got != filepath.Join("proj", "Output", "Robinson") {
		t.Errorf("OutputDir() = %s", got)
	}
	cfg.Output.Dir = "renders"
	if got := cfg.OutputDir(); got != "renders" {
		t.Errorf("OutputDir() = %s", got)
	}
}

func TestSaveTo(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "subdir", "globe.yaml")

	cfg := Default()
	cfg.Palette.Name = "magma"
	cfg.Range = valuerange.Unit(-1, 1)
	cfg.Reproject.Timeout = 2 * time.Minute

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded, err := load(t, "-config", path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Palette.Name != "magma" {
		t.Errorf("expected palette magma, got %s", loaded.Palette.Name)
	}
	if loaded.Range.FromMin != -1 {
		t.Errorf("expected range min -1, got %v", loaded.Range.FromMin)
	}
	if loaded.Reproject.Timeout != 2*time.Minute {
		t.Errorf("expected 2m timeout, got %v", loaded.Reproject.Timeout)
	}
}

func TestLoggerOptions(t *testing.T) {
	cfg := Default()
	if opts := cfg.LoggerOptions(io.Discard); opts.File.Path != "" {
		t.Errorf("expected no log file, got %s", opts.File.Path)
	}
	cfg.Logging.LogFile = "globe.log"
	opts := cfg.LoggerOptions(nil)
	if opts.File.Path != "globe.log" || opts.File.MaxSizeMB != 50 {
		t.Errorf("file options = %+v", opts.File)
	}
}
