// Package config handles render configuration loading and management.
package config

import (
	"github.com/jnwhnr/data-on-the-sphere/internal/colorbar"
	"github.com/jnwhnr/data-on-the-sphere/internal/logger"
	"github.com/jnwhnr/data-on-the-sphere/internal/overlay"
	"github.com/jnwhnr/data-on-the-sphere/internal/reproject"
	"github.com/jnwhnr/data-on-the-sphere/pkg/camera"
	"github.com/jnwhnr/data-on-the-sphere/pkg/geo"
	"github.com/jnwhnr/data-on-the-sphere/pkg/gradient"
	"github.com/jnwhnr/data-on-the-sphere/pkg/math"
	"github.com/jnwhnr/data-on-the-sphere/pkg/valuerange"
)

// Config holds all render settings.
type Config struct {
	Palette   PaletteConfig     `yaml:"palette"`
	Range     valuerange.Range  `yaml:"range"`
	Camera    camera.Config     `yaml:"camera"`
	Render    RenderConfig      `yaml:"render"`
	Colorbar  colorbar.Options  `yaml:"colorbar"`
	Overlay   overlay.Options   `yaml:"overlay"`
	Reproject reproject.Options `yaml:"reproject"`
	Output    OutputConfig      `yaml:"output"`
	Logging   LoggingConfig     `yaml:"logging"`

	// CustomPalettes are registered next to the built-in ramps.
	CustomPalettes []CustomPalette `yaml:"custom_palettes,omitempty"`
	// Locations add to or override the built-in catalog.
	Locations []geo.Position `yaml:"locations,omitempty"`
}

// PaletteConfig selects the colour ramp.
type PaletteConfig struct {
	Name    string `yaml:"name"`
	Samples int    `yaml:"samples"` // External colormaps only
}

// RenderConfig holds scene settings.
type RenderConfig struct {
	Object    string   `yaml:"object"` // sphere or robinson
	Input     string   `yaml:"input"`
	Enhanced  bool     `yaml:"enhanced"`
	LowRes    bool     `yaml:"lowres"`
	Locations []string `yaml:"locations"`
	// RotationOffset turns the data texture on the sphere, in degrees.
	RotationOffset math.Vec3 `yaml:"rotation_offset"`
}

// OutputConfig holds output paths.
type OutputConfig struct {
	Dir     string `yaml:"dir"`     // Empty uses the project layout
	Plan    string `yaml:"plan"`
	Project string `yaml:"project"` // Root of the Input/Output folder layout
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level    string            `yaml:"level"`
	LogFile  string            `yaml:"log_file"`
	Rotation logger.FileConfig `yaml:"rotation"`
}

// CustomPalette is a user authored ramp with sRGB hex colours.
type CustomPalette struct {
	Name  string       `yaml:"name"`
	Stops []CustomStop `yaml:"stops"`
}

// CustomStop is one stop of a CustomPalette. Alpha defaults to opaque.
type CustomStop struct {
	Position float64  `yaml:"position"`
	Color    string   `yaml:"color"`
	Alpha    *float64 `yaml:"alpha,omitempty"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Palette: PaletteConfig{
			Name:    "temperature",
			Samples: gradient.DefaultSamples,
		},
		Range:  valuerange.Unit(0, 10),
		Camera: camera.DefaultConfig(),
		Render: RenderConfig{
			Object:         "sphere",
			Locations:      []string{"Europe"},
			RotationOffset: math.Vec3{Z: 90},
		},
		Colorbar:  colorbar.DefaultOptions(),
		Overlay:   overlay.DefaultOptions(),
		Reproject: reproject.DefaultOptions(),
		Output: OutputConfig{
			Dir:     "",
			Plan:    "plan.yaml",
			Project: ".",
		},
		Logging: LoggingConfig{
			Level:    "info",
			LogFile:  "",
			Rotation: logger.DefaultFileConfig(""),
		},
	}
}
