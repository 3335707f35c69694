package config

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/jnwhnr/data-on-the-sphere/internal/colorbar"
	"github.com/jnwhnr/data-on-the-sphere/internal/logger"
	"github.com/jnwhnr/data-on-the-sphere/internal/overlay"
	"github.com/jnwhnr/data-on-the-sphere/internal/plan"
	"github.com/jnwhnr/data-on-the-sphere/internal/reproject"
	"github.com/jnwhnr/data-on-the-sphere/pkg/colorspace"
	"github.com/jnwhnr/data-on-the-sphere/pkg/geo"
	"github.com/jnwhnr/data-on-the-sphere/pkg/gradient"
	"github.com/jnwhnr/data-on-the-sphere/pkg/palette"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var errs error
	add := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf(format, args...))
	}

	if c.Palette.Name == "" {
		add("palette.name is empty")
	}
	if c.Palette.Samples < 0 {
		add("palette.samples must not be negative, got %d", c.Palette.Samples)
	}
	if err := c.Range.Validate(); err != nil {
		add("range: %w", err)
	}

	if c.Camera.Distance <= 0 {
		add("camera.distance must be positive, got %v", c.Camera.Distance)
	}
	if c.Camera.ZoomLevel < 0 {
		add("camera.zoom must not be negative, got %v", c.Camera.ZoomLevel)
	}
	if c.Camera.FocalLengthMM <= 0 {
		add("camera.focal_length must be positive, got %v", c.Camera.FocalLengthMM)
	}
	if c.Camera.ApertureFStop <= 0 {
		add("camera.fstop must be positive, got %v", c.Camera.ApertureFStop)
	}

	if _, err := plan.ParseObject(c.Render.Object); err != nil {
		add("render.object: %w", err)
	}

	if err := c.Colorbar.Validate(); err != nil {
		add("colorbar: %w", err)
	}
	switch c.Colorbar.TextColor {
	case colorbar.TextAuto, colorbar.TextBlack, colorbar.TextWhite:
	default:
		add("colorbar.text_color must be auto, black or white, got %q", c.Colorbar.TextColor)
	}

	if _, err := overlay.ParsePosition(string(c.Overlay.Position)); err != nil {
		add("overlay.position: %w", err)
	}
	if c.Overlay.Scale <= 0 || c.Overlay.Scale > 1 {
		add("overlay.scale must be in (0, 1], got %v", c.Overlay.Scale)
	}
	if c.Overlay.BackgroundOpacity < 0 || c.Overlay.BackgroundOpacity > 1 {
		add("overlay.background_opacity must be in [0, 1], got %v", c.Overlay.BackgroundOpacity)
	}

	if c.Reproject.Width <= 0 || c.Reproject.Height <= 0 {
		add("reproject size must be positive, got %dx%d", c.Reproject.Width, c.Reproject.Height)
	}
	if c.Reproject.Timeout < 0 {
		add("reproject.timeout must not be negative, got %v", c.Reproject.Timeout)
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		add("logging.level: %w", err)
	}

	if _, err := c.Registry(); err != nil {
		add("custom_palettes: %w", err)
	}
	for _, p := range c.Locations {
		if p.Name == "" {
			add("locations: entry without a name")
		} else if !p.Valid() {
			add("locations: %s at (%v, %v) is outside lat/lon bounds", p.Name, p.Lat, p.Lon)
		}
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
	}
	return nil
}

// Registry returns the built-in palettes plus the configured custom ones.
func (c *Config) Registry() (*palette.Registry, error) {
	reg := palette.Default()
	for _, cp := range c.CustomPalettes {
		stops := make([]palette.Stop, len(cp.Stops))
		for i, s := range cp.Stops {
			col, err := colorspace.FromHex(s.Color)
			if err != nil {
				return nil, fmt.Errorf("%s stop %d: %w", cp.Name, i, err)
			}
			if s.Alpha != nil {
				col.A = *s.Alpha
			}
			stops[i] = palette.Stop{Position: s.Position, Color: col}
		}
		if err := reg.Register(cp.Name, stops); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Catalog returns the built-in locations with the configured ones applied.
func (c *Config) Catalog() *geo.Catalog {
	cat := geo.DefaultCatalog()
	for _, p := range c.Locations {
		cat.Add(p)
	}
	return cat
}

// Settings converts the config into plan settings.
func (c *Config) Settings() plan.Settings {
	s := plan.Settings{
		Input:          c.Render.Input,
		Object:         plan.Object(c.Render.Object),
		Enhanced:       c.Render.Enhanced,
		LowRes:         c.Render.LowRes,
		Palette:        gradient.Request{Name: c.Palette.Name, Samples: c.Palette.Samples},
		Range:          c.Range,
		Camera:         c.Camera,
		Locations:      append([]string(nil), c.Render.Locations...),
		TextColor:      c.Colorbar.TextColor,
		RotationOffset: c.Render.RotationOffset,
	}
	if s.Object == plan.Robinson && s.Input != "" {
		s.MaskPath = filepath.Join(filepath.Dir(s.Input), reproject.MaskName)
	}
	return s
}

// Layout returns the project folder layout.
func (c *Config) Layout() reproject.Layout {
	return reproject.Layout{Root: c.Output.Project}
}

// OutputDir is the render folder. Unset, it is the project layout's folder
// for the configured object.
func (c *Config) OutputDir() string {
	if c.Output.Dir != "" {
		return c.Output.Dir
	}
	return c.Layout().OutputDir(c.Render.Object)
}

// LoggerOptions builds logger options writing human output to console.
func (c *Config) LoggerOptions(console io.Writer) logger.Options {
	opts := logger.Options{Level: c.Logging.Level, Console: console}
	if c.Logging.LogFile != "" {
		opts.File = c.Logging.Rotation
		opts.File.Path = c.Logging.LogFile
	}
	return opts
}
