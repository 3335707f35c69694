package gradient

import (
	"errors"
	"fmt"

	"github.com/aclements/go-moremath/vec"
	"go.uber.org/zap"

	"github.com/jnwhnr/data-on-the-sphere/pkg/colorspace"
	"github.com/jnwhnr/data-on-the-sphere/pkg/palette"
)

// DefaultSamples is the sample count used when a request leaves it unset.
const DefaultSamples = 20

// Provider samples named colormaps. Returned colours must be sRGB encoded.
type Provider interface {
	At(name string, t float64) (colorspace.RGBA, error)
}

// Request asks for a gradient by palette name. Samples applies to external
// colormaps only.
type Request struct {
	Name    string `yaml:"name"`
	Samples int    `yaml:"samples"`
}

// Resolution is the outcome of Resolve. Gradient is always valid. When
// Fallback is set, Err holds the reason the named palette was not used.
type Resolution struct {
	Gradient Gradient     `yaml:"stops"`
	Source   palette.Kind `yaml:"source"`
	Fallback bool         `yaml:"fallback"`
	Err      error        `yaml:"-"`
}

// Resolver turns palette names into linear-light gradients.
type Resolver struct {
	Registry *palette.Registry
	Provider Provider
	Logger   *zap.Logger
}

// NewResolver returns a resolver. A nil logger discards output.
func NewResolver(reg *palette.Registry, p Provider, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{Registry: reg, Provider: p, Logger: log}
}

// Resolve never fails: unknown names, provider errors and invalid authored
// data all yield the black to white fallback with Err set.
func (r *Resolver) Resolve(req Request) Resolution {
	log := r.logger().With(zap.String("palette", req.Name))

	src := r.Registry.Classify(req.Name)
	var (
		g   Gradient
		err error
	)
	switch src.Kind {
	case palette.Custom:
		g, err = fromCustom(src.Stops)
	case palette.External:
		g, err = r.fromProvider(req.Name, req.Samples)
	default:
		err = fmt.Errorf("%w: %q", palette.ErrNotFound, req.Name)
	}

	if err != nil {
		log.Warn("using fallback gradient", zap.Stringer("source", src.Kind), zap.Error(err))
		return Resolution{Gradient: Fallback(), Source: src.Kind, Fallback: true, Err: err}
	}
	log.Debug("resolved gradient", zap.Stringer("source", src.Kind), zap.Int("stops", g.Len()))
	return Resolution{Gradient: g, Source: src.Kind}
}

func (r *Resolver) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// fromCustom linearizes authored stops, keeping their positions.
func fromCustom(authored []palette.Stop) (Gradient, error) {
	stops := make([]Stop, len(authored))
	for i, s := range authored {
		stops[i] = Stop{Position: s.Position, Color: s.Color.Linear()}
	}
	return New(stops)
}

// fromProvider samples an external colormap at n uniform positions.
func (r *Resolver) fromProvider(name string, n int) (g Gradient, err error) {
	if r.Provider == nil {
		return Gradient{}, fmt.Errorf("%w: no provider configured", ErrExternalProvider)
	}
	switch {
	case n <= 0:
		n = DefaultSamples
	case n == 1:
		n = 2
	}

	defer func() {
		if p := recover(); p != nil {
			g, err = Gradient{}, fmt.Errorf("%w: %s: panic: %v", ErrExternalProvider, name, p)
		}
	}()

	positions := vec.Linspace(0, 1, n)
	// Pin the ends so float drift cannot break the gradient bounds.
	positions[0], positions[n-1] = 0, 1

	stops := make([]Stop, n)
	for i, t := range positions {
		c, perr := r.Provider.At(name, t)
		if perr != nil {
			if errors.Is(perr, ErrExternalProvider) {
				return Gradient{}, perr
			}
			return Gradient{}, fmt.Errorf("%w: %s at %v: %w", ErrExternalProvider, name, t, perr)
		}
		stops[i] = Stop{Position: t, Color: c.Linear()}
	}
	return New(stops)
}
