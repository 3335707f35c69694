// Package plan assembles everything a scene builder needs for one render run:
// the linear-light gradient, the value range, camera poses, render settings
// and the names of every file the run produces.
package plan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/jnwhnr/data-on-the-sphere/internal/colorbar"
	"github.com/jnwhnr/data-on-the-sphere/pkg/camera"
	"github.com/jnwhnr/data-on-the-sphere/pkg/geo"
	"github.com/jnwhnr/data-on-the-sphere/pkg/gradient"
	"github.com/jnwhnr/data-on-the-sphere/pkg/math"
	"github.com/jnwhnr/data-on-the-sphere/pkg/palette"
	"github.com/jnwhnr/data-on-the-sphere/pkg/valuerange"
)

// ErrUnknownObject is returned for render objects other than sphere and
// robinson.
var ErrUnknownObject = errors.New("unknown render object")

// Object is the surface the data is rendered on.
type Object string

// Render objects.
const (
	Sphere   Object = "sphere"
	Robinson Object = "robinson"
)

// ParseObject accepts "sphere" and "robinson".
func ParseObject(s string) (Object, error) {
	switch Object(s) {
	case Sphere, Robinson:
		return Object(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownObject, s)
}

// Settings are the inputs of one run.
type Settings struct {
	Input          string
	Object         Object
	Enhanced       bool
	LowRes         bool
	Palette        gradient.Request
	Range          valuerange.Range
	Camera         camera.Config
	Locations      []string
	TextColor      string
	RotationOffset math.Vec3
	MaskPath       string
}

// LegendTextColor resolves the auto text colour against enhanced mode.
func (s Settings) LegendTextColor() string {
	return colorbar.ResolveTextColor(s.TextColor, s.Enhanced)
}

// Shot is a camera and the image it renders.
type Shot struct {
	Camera    camera.Pose `yaml:"camera"`
	Object    string      `yaml:"object_name"`
	Output    string      `yaml:"output"`
	Composite string      `yaml:"composite"`
}

// Colorbar is a legend image name per text colour.
type Colorbar struct {
	TextColor string `yaml:"text_color"`
	File      string `yaml:"file"`
}

// Gradient is the resolved colour ramp.
type Gradient struct {
	Palette  string            `yaml:"palette"`
	Source   palette.Kind      `yaml:"source"`
	Fallback bool              `yaml:"fallback"`
	Reason   string            `yaml:"fallback_reason,omitempty"`
	Stops    gradient.Gradient `yaml:"stops"`
}

// Plan is the render plan written for the scene builder.
type Plan struct {
	Object    Object           `yaml:"object"`
	Input     string           `yaml:"input,omitempty"`
	Enhanced  bool             `yaml:"enhanced"`
	Suffix    string           `yaml:"suffix"`
	Gradient  Gradient         `yaml:"gradient"`
	Range     valuerange.Range `yaml:"range"`
	Render    Render           `yaml:"render"`
	Mesh      Mesh             `yaml:"mesh"`
	Material  Material         `yaml:"material"`
	Lights    []Light          `yaml:"lights"`
	Shots     []Shot           `yaml:"shots"`
	Colorbars []Colorbar       `yaml:"colorbars"`
	TextColor string           `yaml:"legend_text_color"`
}

// Builder resolves gradients and locations for plans.
type Builder struct {
	Resolver *gradient.Resolver
	Catalog  *geo.Catalog
	Logger   *zap.Logger
}

// NewBuilder returns a builder. A nil logger discards output.
func NewBuilder(r *gradient.Resolver, c *geo.Catalog, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{Resolver: r, Catalog: c, Logger: log}
}

// Build resolves the gradient and places the cameras concurrently. A bad
// value range, object or location fails the build; a bad palette only falls
// back to greyscale.
func (b *Builder) Build(ctx context.Context, s Settings) (*Plan, error) {
	if _, err := ParseObject(string(s.Object)); err != nil {
		return nil, err
	}
	if err := s.Range.Validate(); err != nil {
		return nil, err
	}

	var (
		res   gradient.Resolution
		poses []camera.Pose
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res = b.Resolver.Resolve(s.Palette)
		return nil
	})
	g.Go(func() error {
		if s.Object == Robinson {
			poses = []camera.Pose{camera.Robinson()}
			return nil
		}
		positions, err := b.Catalog.Select(s.Locations)
		if err != nil {
			return err
		}
		for _, p := range positions {
			if !p.Valid() {
				b.logger().Warn("location outside lat/lon bounds",
					zap.String("location", p.Name),
					zap.Float64("lat", p.Lat),
					zap.Float64("lon", p.Lon))
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		poses = camera.PlaceAll(positions, s.Camera, s.Enhanced)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	suffix := Suffix(s)
	p := &Plan{
		Object:   s.Object,
		Input:    s.Input,
		Enhanced: s.Enhanced,
		Suffix:   suffix,
		Gradient: Gradient{
			Palette:  s.Palette.Name,
			Source:   res.Source,
			Fallback: res.Fallback,
			Stops:    res.Gradient,
		},
		Range:     s.Range,
		Render:    RenderFor(s),
		Mesh:      MeshFor(s),
		Material:  MaterialFor(s, s.MaskPath),
		Lights:    LightsFor(s),
		TextColor: s.LegendTextColor(),
	}
	if res.Err != nil {
		p.Gradient.Reason = res.Err.Error()
	}
	for _, pose := range poses {
		out := RenderName(s, pose.Name, suffix)
		p.Shots = append(p.Shots, Shot{
			Camera:    pose,
			Object:    "Camera_Sphere_" + pose.Name,
			Output:    out,
			Composite: CompositeName(out),
		})
	}
	if s.Object == Robinson {
		p.Shots[0].Object = camera.RobinsonView
	}
	for _, tc := range []string{colorbar.TextBlack, colorbar.TextWhite} {
		p.Colorbars = append(p.Colorbars, Colorbar{TextColor: tc, File: ColorbarName(s, suffix, tc)})
	}

	b.logger().Info("plan built",
		zap.String("object", string(s.Object)),
		zap.String("palette", s.Palette.Name),
		zap.Bool("fallback", res.Fallback),
		zap.Int("shots", len(p.Shots)),
		zap.String("suffix", suffix))
	return p, nil
}

func (b *Builder) logger() *zap.Logger {
	if b.Logger == nil {
		return zap.NewNop()
	}
	return b.Logger
}

// Colorbar returns the legend file for the plan's text colour.
func (p *Plan) Colorbar() string {
	for _, c := range p.Colorbars {
		if c.TextColor == p.TextColor {
			return c.File
		}
	}
	return ""
}

// Marshal encodes the plan as YAML.
func (p *Plan) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("encoding plan: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding plan: %w", err)
	}
	return buf.Bytes(), nil
}

// Write saves the plan to path, creating parent directories.
func (p *Plan) Write(path string) error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating plan directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing plan: %w", err)
	}
	return nil
}

// Read loads a plan written by Write.
func Read(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	return &p, nil
}
