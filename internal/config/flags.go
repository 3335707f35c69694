package config

import (
	"flag"
	"io"
	"strings"

	"github.com/jnwhnr/data-on-the-sphere/internal/overlay"
)

// Flags are the command line overrides. Only flags given on the command line
// replace file or default values.
type Flags struct {
	fs *flag.FlagSet

	config   string
	debug    bool
	logFile  string
	logLevel string

	input     string
	output    string
	plan      string
	project   string
	object    string
	locations string
	palette   string
	samples   int
	vmin      float64
	vmax      float64
	zoom      float64
	focal     float64
	distance  float64
	dof       bool
	fstop     float64
	effects   bool
	lowres    bool

	overlay         bool
	overlayColor    string
	overlayOpacity  float64
	overlayPosition string
	legendFormat    string
}

// NewFlags defines the render flags on a new flag set.
func NewFlags(name string, output io.Writer) *Flags {
	f := &Flags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	if output != nil {
		f.fs.SetOutput(output)
	}
	fs := f.fs
	fs.StringVar(&f.config, "config", "", "Path to config file")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.logFile, "log-file", "", "Write logs to a rotating file")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	fs.StringVar(&f.input, "input", "", "Input GeoTIFF")
	fs.StringVar(&f.output, "output", "", "Output directory")
	fs.StringVar(&f.plan, "plan", "", "Render plan file name")
	fs.StringVar(&f.project, "project", "", "Project root holding Input/ and Output/")
	fs.StringVar(&f.object, "object", "", "Render object: sphere or robinson")
	fs.StringVar(&f.locations, "locations", "", "Comma separated locations, or all")
	fs.StringVar(&f.palette, "palette", "", "Palette name")
	fs.IntVar(&f.samples, "samples", 0, "Samples taken from external colormaps")
	fs.Float64Var(&f.vmin, "vmin", 0, "Data value mapped to the start of the palette")
	fs.Float64Var(&f.vmax, "vmax", 0, "Data value mapped to the end of the palette")
	fs.Float64Var(&f.zoom, "zoomlevel", 0, "Zoom level, multiplies the focal length by 1+zoom")
	fs.Float64Var(&f.focal, "focal", 0, "Focal length in mm")
	fs.Float64Var(&f.distance, "distance", 0, "Camera distance from the globe centre")
	fs.BoolVar(&f.dof, "dof", false, "Enable depth of field")
	fs.Float64Var(&f.fstop, "fstop", 0, "Aperture f-stop for depth of field")
	fs.BoolVar(&f.effects, "effects", false, "Enhanced look: displacement, glow and depth of field")
	fs.BoolVar(&f.lowres, "lowres", false, "Low resolution preview")

	fs.BoolVar(&f.overlay, "do-overlay", false, "Composite the colorbar onto renders")
	fs.StringVar(&f.overlayColor, "overlay-color", "", "Legend text colour: auto, black or white")
	fs.Float64Var(&f.overlayOpacity, "overlay-opacity", 0, "Legend background opacity")
	fs.StringVar(&f.overlayPosition, "overlay-position", "", "Legend corner: top_right, top_left, bottom_right, bottom_left")
	fs.StringVar(&f.legendFormat, "legend-format", "", "Colorbar format: png, svg or both")
	return f
}

// Parse parses args, not including the program name.
func (f *Flags) Parse(args []string) error {
	return f.fs.Parse(args)
}

// Args returns the positional arguments.
func (f *Flags) Args() []string {
	return f.fs.Args()
}

// Usage prints the flag defaults.
func (f *Flags) Usage() {
	f.fs.PrintDefaults()
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	return f.config
}

// apply copies the flags given on the command line into cfg.
func (f *Flags) apply(cfg *Config) {
	set := map[string]bool{}
	f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if f.debug {
		cfg.Logging.Level = "debug"
	}
	if set["log-level"] {
		cfg.Logging.Level = f.logLevel
	}
	if set["log-file"] {
		cfg.Logging.LogFile = f.logFile
	}
	if set["input"] {
		cfg.Render.Input = f.input
	}
	if set["output"] {
		cfg.Output.Dir = f.output
	}
	if set["plan"] {
		cfg.Output.Plan = f.plan
	}
	if set["project"] {
		cfg.Output.Project = f.project
	}
	if set["object"] {
		cfg.Render.Object = f.object
	}
	if set["locations"] {
		cfg.Render.Locations = splitList(f.locations)
	}
	if set["palette"] {
		cfg.Palette.Name = f.palette
	}
	if set["samples"] {
		cfg.Palette.Samples = f.samples
	}
	if set["vmin"] {
		cfg.Range.FromMin = f.vmin
	}
	if set["vmax"] {
		cfg.Range.FromMax = f.vmax
	}
	if set["zoomlevel"] {
		cfg.Camera.ZoomLevel = f.zoom
	}
	if set["focal"] {
		cfg.Camera.FocalLengthMM = f.focal
	}
	if set["distance"] {
		cfg.Camera.Distance = f.distance
	}
	if set["dof"] {
		cfg.Camera.DepthOfField = f.dof
	}
	if set["fstop"] {
		cfg.Camera.ApertureFStop = f.fstop
	}
	if set["effects"] {
		cfg.Render.Enhanced = f.effects
	}
	if set["lowres"] {
		cfg.Render.LowRes = f.lowres
	}
	if set["do-overlay"] {
		cfg.Overlay.Enabled = f.overlay
	}
	if set["overlay-color"] {
		cfg.Colorbar.TextColor = f.overlayColor
	}
	if set["overlay-opacity"] {
		cfg.Overlay.BackgroundOpacity = f.overlayOpacity
	}
	if set["overlay-position"] {
		cfg.Overlay.Position = overlay.Position(f.overlayPosition)
	}
	if set["legend-format"] {
		cfg.Colorbar.Format = f.legendFormat
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
