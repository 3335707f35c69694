// palettetool is a CLI utility for inspecting palettes, drawing legends and
// preparing Robinson inputs.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/jnwhnr/data-on-the-sphere/internal/colorbar"
	"github.com/jnwhnr/data-on-the-sphere/internal/logger"
	"github.com/jnwhnr/data-on-the-sphere/internal/overlay"
	"github.com/jnwhnr/data-on-the-sphere/internal/pipeline"
	"github.com/jnwhnr/data-on-the-sphere/internal/plan"
	"github.com/jnwhnr/data-on-the-sphere/internal/reproject"
	"github.com/jnwhnr/data-on-the-sphere/pkg/camera"
	"github.com/jnwhnr/data-on-the-sphere/pkg/colormaps"
	"github.com/jnwhnr/data-on-the-sphere/pkg/geo"
	"github.com/jnwhnr/data-on-the-sphere/pkg/gradient"
	"github.com/jnwhnr/data-on-the-sphere/pkg/palette"
	"github.com/jnwhnr/data-on-the-sphere/pkg/valuerange"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "list", "ls":
		cmdList(args)
	case "recommend", "rec":
		cmdRecommend(args)
	case "sample":
		cmdSample(args)
	case "colorbar", "legend":
		cmdColorbar(args)
	case "locations", "loc":
		cmdLocations(args)
	case "setup":
		cmdSetup(args)
	case "reproject":
		cmdReproject(args)
	case "overlay":
		cmdOverlay(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`palettetool - palette, legend and projection utility

Usage:
  palettetool <command> [options]

Commands:
  list [-kind custom|external]        List palette names
  recommend <data kind>               Recommended palettes for a kind of data
  sample <palette> [-n N] [-srgb]     Print the resolved gradient stops
  colorbar <palette> -vmin A -vmax B  Draw a colorbar legend
  locations [-distance D]             List locations and their camera positions
  setup [-project dir]                Create the Input/Output folder layout
  reproject [-project dir] [-mask]    Reproject EPSG:4326 inputs to Robinson
  overlay <plan.yaml> [-dir dir]      Composite legends onto finished renders

Examples:
  palettetool list -kind custom
  palettetool recommend precipitation
  palettetool sample viridis -n 5 -srgb
  palettetool colorbar temp_dif -vmin -5 -vmax 5 -text white -format both
  palettetool reproject -project ./globe -mask`)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// consoleLogger logs info and above to stderr.
func consoleLogger(debug bool) *zap.Logger {
	level := "info"
	if debug {
		level = "debug"
	}
	log, err := logger.Init(level, "")
	if err != nil {
		fail("%v", err)
	}
	return log
}

// parse parses args allowing flags after the positional arguments.
func parse(fs *flag.FlagSet, args []string) []string {
	var positional []string
	for {
		fs.Parse(args)
		if fs.NArg() == 0 {
			return positional
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}
}

func cmdList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	kind := fs.String("kind", "", "Only list custom or external palettes")
	parse(fs, args)

	reg := palette.Default()
	if *kind == "" || *kind == "custom" {
		fmt.Println("Custom palettes:")
		for _, name := range reg.CustomNames() {
			fmt.Printf("  %s\n", name)
		}
	}
	if *kind == "" || *kind == "external" {
		fmt.Println("External colormaps:")
		for _, name := range reg.ExternalNames() {
			fmt.Printf("  %s\n", name)
		}
	}
}

func cmdRecommend(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: palettetool recommend <%s>\n", strings.Join(palette.DataKinds(), "|"))
		os.Exit(1)
	}
	names, ok := palette.Recommendations(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown data kind %q, showing sequential\n", args[0])
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOLORBLIND SAFE\tHIGH CONTRAST")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, yes(palette.ColorblindSafe(name)), yes(palette.HighContrast(name)))
	}
	w.Flush()
}

func yes(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

func resolver(log *zap.Logger) *gradient.Resolver {
	return gradient.NewResolver(palette.Default(), colormaps.New(), log)
}

func cmdSample(args []string) {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	n := fs.Int("n", gradient.DefaultSamples, "Samples for external colormaps")
	srgb := fs.Bool("srgb", false, "Print sRGB instead of linear values")
	pos := parse(fs, args)
	if len(pos) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: palettetool sample <palette> [-n N] [-srgb]")
		os.Exit(1)
	}

	res := resolver(consoleLogger(false)).Resolve(gradient.Request{Name: pos[0], Samples: *n})
	fmt.Printf("Palette: %s (%s)\n", pos[0], res.Source)
	if res.Fallback {
		fmt.Printf("Fallback: %v\n", res.Err)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "POSITION\tR\tG\tB\tA\tHEX")
	for _, s := range res.Gradient.Stops() {
		c := s.Color
		if *srgb {
			c = c.SRGB()
		}
		fmt.Fprintf(w, "%.4f\t%.4f\t%.4f\t%.4f\t%.2f\t%s\n", s.Position, c.R, c.G, c.B, c.A, s.Color.SRGB().Hex())
	}
	w.Flush()
}

func cmdColorbar(args []string) {
	o := colorbar.DefaultOptions()
	fs := flag.NewFlagSet("colorbar", flag.ExitOnError)
	vmin := fs.Float64("vmin", 0, "Value at the bottom of the bar")
	vmax := fs.Float64("vmax", 1, "Value at the top of the bar")
	out := fs.String("o", ".", "Output directory")
	text := fs.String("text", colorbar.TextBlack, "Text colour")
	fs.StringVar(&o.Format, "format", o.Format, "png, svg or both")
	fs.IntVar(&o.Ticks, "ticks", o.Ticks, "Number of ticks")
	n := fs.Int("n", gradient.DefaultSamples, "Samples for external colormaps")
	pos := parse(fs, args)
	if len(pos) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: palettetool colorbar <palette> -vmin A -vmax B [-o dir]")
		os.Exit(1)
	}

	log := consoleLogger(false)
	defer logger.Sync(log)
	r := valuerange.Unit(*vmin, *vmax)
	res := resolver(log).Resolve(gradient.Request{Name: pos[0], Samples: *n})
	legend := colorbar.Legend{Gradient: res.Gradient, Range: r}

	name := fmt.Sprintf("%s_colorbar_%s_%s_%s", pos[0], valuerange.FormatBound(*vmin), valuerange.FormatBound(*vmax), *text)
	files, err := legend.WriteFiles(*out, name, o, *text)
	if err != nil {
		fail("%v", err)
	}
	for _, f := range files {
		fmt.Println(f)
	}
}

func cmdLocations(args []string) {
	fs := flag.NewFlagSet("locations", flag.ExitOnError)
	cfg := camera.DefaultConfig()
	fs.Float64Var(&cfg.Distance, "distance", cfg.Distance, "Camera distance from the globe centre")
	parse(fs, args)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLABEL\tLAT\tLON\tCAMERA X\tY\tZ")
	for _, pose := range camera.PlaceAll(geo.DefaultCatalog().All(), cfg, false) {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.3f\t%.3f\t%.3f\n",
			pose.Name, geo.DisplayName(pose.Name), pose.Lat, pose.Lon,
			pose.Position.X, pose.Position.Y, pose.Position.Z)
	}
	w.Flush()
}

func cmdSetup(args []string) {
	fs := flag.NewFlagSet("setup", flag.ExitOnError)
	root := fs.String("project", ".", "Project root")
	parse(fs, args)

	layout := reproject.Layout{Root: *root}
	created, err := layout.Create()
	if err != nil {
		fail("%v", err)
	}
	for _, dir := range created {
		fmt.Printf("Created %s\n", dir)
	}
	if len(created) == 0 {
		fmt.Println("Folder layout already complete")
	}
}

func cmdReproject(args []string) {
	o := reproject.DefaultOptions()
	fs := flag.NewFlagSet("reproject", flag.ExitOnError)
	root := fs.String("project", ".", "Project root")
	mask := fs.Bool("mask", false, "Also build the Robinson alpha mask from the first input")
	debug := fs.Bool("debug", false, "Log the GDAL command lines")
	fs.DurationVar(&o.Timeout, "timeout", o.Timeout, "Per command timeout")
	fs.IntVar(&o.Width, "width", o.Width, "Output width in pixels")
	fs.IntVar(&o.Height, "height", o.Height, "Output height in pixels")
	files := parse(fs, args)

	log := consoleLogger(*debug)
	defer logger.Sync(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	layout := reproject.Layout{Root: *root}
	if _, err := layout.Create(); err != nil {
		fail("%v", err)
	}
	if len(files) == 0 {
		found, err := layout.GeoTIFFs(reproject.PlateCarree)
		if err != nil {
			fail("%v", err)
		}
		files = found
	}
	if len(files) == 0 {
		fail("no GeoTIFFs in %s", layout.InputDir(reproject.PlateCarree))
	}

	runner := reproject.NewRunner(o, log)
	version, err := runner.Version(ctx)
	if err != nil {
		fail("%v (install GDAL to reproject)", err)
	}
	log.Info("using gdal", zap.String("version", version))

	ok := 0
	for _, in := range files {
		out := filepath.Join(layout.InputDir(reproject.Robinson), filepath.Base(in))
		if err := runner.Warp(ctx, in, out); err != nil {
			log.Error("reprojection failed", zap.String("input", in), zap.Error(err))
			continue
		}
		ok++
	}
	maskFailed := false
	if *mask {
		if err := runner.Mask(ctx, files[0], layout.MaskPath()); err != nil {
			log.Error("mask creation failed", zap.Error(err))
			maskFailed = true
		}
	}
	fmt.Printf("Reprojected %d/%d files\n", ok, len(files))
	if ok < len(files) || maskFailed {
		os.Exit(1)
	}
}

func cmdOverlay(args []string) {
	o := overlay.DefaultOptions()
	fs := flag.NewFlagSet("overlay", flag.ExitOnError)
	dir := fs.String("dir", "", "Folder holding renders and legends (default: plan folder)")
	position := fs.String("position", string(o.Position), "Legend corner")
	fs.Float64Var(&o.BackgroundOpacity, "opacity", o.BackgroundOpacity, "Legend background opacity")
	fs.Float64Var(&o.Scale, "scale", o.Scale, "Legend height relative to the render")
	pos := parse(fs, args)
	if len(pos) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: palettetool overlay <plan.yaml> [-dir dir]")
		os.Exit(1)
	}

	p, err := plan.Read(pos[0])
	if err != nil {
		fail("%v", err)
	}
	if o.Position, err = overlay.ParsePosition(*position); err != nil {
		fail("%v", err)
	}
	if *dir == "" {
		*dir = filepath.Dir(pos[0])
	}

	log := consoleLogger(false)
	defer logger.Sync(log)
	comp := &overlay.Compositor{Options: o, Logger: log}
	res, err := pipeline.Overlays(context.Background(), p, *dir, comp, log)
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("Created %d/%d overlay composites\n", res.Composited, res.Composited+res.Missing)
}
