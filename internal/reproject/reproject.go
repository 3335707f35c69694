// Package reproject drives the GDAL command line tools that turn plate carrée
// rasters into Robinson rasters and alpha masks for flat map renders.
package reproject

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"
)

// Reprojection errors.
var (
	ErrToolNotFound = errors.New("gdal tool not found")
	ErrCommand      = errors.New("gdal command failed")
	ErrNoOutput     = errors.New("gdal command produced no output file")
)

// Projection identifiers.
const (
	PlateCarree = "EPSG:4326"
	Robinson    = "ESRI:54030"
)

// Options describe the gdalwarp call.
type Options struct {
	Warp       string        `yaml:"warp_command"`
	Calc       string        `yaml:"calc_command"`
	SourceSRS  string        `yaml:"source_srs"`
	TargetSRS  string        `yaml:"target_srs"`
	Extent     [4]float64    `yaml:"extent"`
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Resampling string        `yaml:"resampling"`
	NoData     float64       `yaml:"nodata"`
	Format     string        `yaml:"format"`
	Timeout    time.Duration `yaml:"timeout"`
}

// DefaultOptions reprojects the whole globe to a 5000x2500 Robinson GeoTIFF.
func DefaultOptions() Options {
	return Options{
		Warp:       "gdalwarp",
		Calc:       "gdal_calc.py",
		SourceSRS:  PlateCarree,
		TargetSRS:  Robinson,
		Extent:     [4]float64{-17000000, -8500000, 17000000, 8500000},
		Width:      5000,
		Height:     2500,
		Resampling: "bilinear",
		NoData:     -9999,
		Format:     "GTiff",
		Timeout:    5 * time.Minute,
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WarpArgs returns the gdalwarp arguments reprojecting in to out.
func (o Options) WarpArgs(in, out string) []string {
	return []string{
		"-s_srs", o.SourceSRS,
		"-t_srs", o.TargetSRS,
		"-te", num(o.Extent[0]), num(o.Extent[1]), num(o.Extent[2]), num(o.Extent[3]),
		"-ts", strconv.Itoa(o.Width), strconv.Itoa(o.Height),
		"-r", o.Resampling,
		"-dstnodata", num(o.NoData),
		"-of", o.Format,
		in,
		out,
	}
}

// MaskArgs returns the gdal_calc arguments turning a reprojected raster into
// a byte mask: 255 where data is present, 0 at nodata.
func (o Options) MaskArgs(in, out string) []string {
	return []string{
		"-A", in,
		"--outfile=" + out,
		fmt.Sprintf("--calc=(A!=%s)*255", num(o.NoData)),
		"--type=Byte",
		"--NoDataValue=0",
	}
}

// Runner executes GDAL tools.
type Runner struct {
	Options Options
	Logger  *zap.Logger
}

// NewRunner returns a runner. A nil logger discards output.
func NewRunner(o Options, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{Options: o, Logger: log}
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// run executes tool with args under the configured timeout and returns its
// standard output.
func (r *Runner) run(ctx context.Context, tool string, args ...string) (string, error) {
	path, err := exec.LookPath(tool)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrToolNotFound, tool, err)
	}
	if r.Options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Options.Timeout)
		defer cancel()
	}

	line := shellquote.Join(append([]string{tool}, args...)...)
	r.logger().Debug("running", zap.String("command", line))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrCommand, line, ctxErr)
		}
		return "", fmt.Errorf("%w: %s: %w: %s", ErrCommand, line, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// Version returns the gdalwarp version banner, or ErrToolNotFound when GDAL
// is not installed.
func (r *Runner) Version(ctx context.Context) (string, error) {
	out, err := r.run(ctx, r.Options.Warp, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Warp reprojects in to out and checks the output exists.
func (r *Runner) Warp(ctx context.Context, in, out string) error {
	if _, err := os.Stat(in); err != nil {
		return fmt.Errorf("reproject input: %w", err)
	}
	if _, err := r.run(ctx, r.Options.Warp, r.Options.WarpArgs(in, out)...); err != nil {
		return err
	}
	info, err := os.Stat(out)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNoOutput, out)
	}
	r.logger().Info("reprojected",
		zap.String("input", in),
		zap.String("output", out),
		zap.Int64("bytes", info.Size()))
	return nil
}

// Mask builds the Robinson alpha mask for in: it reprojects to a temporary
// raster next to mask and thresholds it against the nodata value.
func (r *Runner) Mask(ctx context.Context, in, mask string) error {
	tmp := strings.TrimSuffix(mask, ".tif") + "_temp_data.tif"
	defer os.Remove(tmp)

	if err := r.Warp(ctx, in, tmp); err != nil {
		return fmt.Errorf("mask reprojection: %w", err)
	}
	if _, err := r.run(ctx, r.Options.Calc, r.Options.MaskArgs(tmp, mask)...); err != nil {
		return fmt.Errorf("mask threshold: %w", err)
	}
	if _, err := os.Stat(mask); err != nil {
		return fmt.Errorf("%w: %s", ErrNoOutput, mask)
	}
	r.logger().Info("mask written", zap.String("mask", mask))
	return nil
}
