// Package palette is the registry of named colour palettes: the authored
// custom ramps and the names of externally sampled (matplotlib style)
// colormaps.
package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jnwhnr/data-on-the-sphere/pkg/colorspace"
)

// Registry errors.
var (
	ErrNotFound    = errors.New("palette not found")
	ErrInvalidRamp = errors.New("invalid palette ramp")
	ErrDuplicate   = errors.New("palette already registered")
)

// ReverseSuffix marks the reversed variant of an external colormap.
const ReverseSuffix = "_r"

// Stop is one authored (position, colour) pair. Colours are sRGB encoded.
type Stop struct {
	Position float64         `yaml:"position"`
	Color    colorspace.RGBA `yaml:"color"`
}

// Kind tags where a palette name resolves.
type Kind int

// Palette kinds.
const (
	Unknown Kind = iota
	Custom
	External
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Custom:
		return "custom"
	case External:
		return "external"
	default:
		return "unknown"
	}
}

// MarshalYAML writes the kind as its name.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML reads a kind name written by MarshalYAML.
func (k *Kind) UnmarshalYAML(n *yaml.Node) error {
	var name string
	if err := n.Decode(&name); err != nil {
		return err
	}
	switch name {
	case "custom":
		*k = Custom
	case "external":
		*k = External
	case "unknown", "":
		*k = Unknown
	default:
		return fmt.Errorf("unknown palette kind %q", name)
	}
	return nil
}

// Source is the result of classifying a palette name. Stops is set only for
// Custom sources.
type Source struct {
	Name  string
	Kind  Kind
	Stops []Stop
}

// Registry holds custom ramps and external colormap names. Register and
// RegisterExternal must complete before the registry is shared; lookups are
// safe for concurrent use afterwards.
type Registry struct {
	custom   map[string][]Stop
	order    []string
	external map[string]struct{}
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		custom:   make(map[string][]Stop),
		external: make(map[string]struct{}),
	}
}

// Default returns a registry with the built-in ramps and external names.
func Default() *Registry {
	r := New()
	for _, c := range builtinCustom {
		if err := r.Register(c.name, c.stops); err != nil {
			panic(fmt.Sprintf("palette: built-in ramp: %v", err))
		}
	}
	for _, name := range externalNames {
		r.RegisterExternal(name)
	}
	return r
}

// Register adds a custom ramp. The ramp must start at 0, end at 1, have
// strictly increasing positions and channels within [0, 1].
func (r *Registry) Register(name string, stops []Stop) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRamp)
	}
	if _, ok := r.custom[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	if err := ValidateStops(stops); err != nil {
		return fmt.Errorf("ramp %s: %w", name, err)
	}
	r.custom[name] = append([]Stop(nil), stops...)
	r.order = append(r.order, name)
	return nil
}

// RegisterExternal marks name as sampled from the external provider.
func (r *Registry) RegisterExternal(name string) {
	r.external[name] = struct{}{}
}

// IsCustom reports whether name is an authored ramp.
func (r *Registry) IsCustom(name string) bool {
	_, ok := r.custom[name]
	return ok
}

// IsExternal reports whether name is an external colormap or the reversed
// variant of one.
func (r *Registry) IsExternal(name string) bool {
	if _, ok := r.external[name]; ok {
		return true
	}
	if base, ok := strings.CutSuffix(name, ReverseSuffix); ok {
		_, found := r.external[base]
		return found
	}
	return false
}

// Custom returns a copy of the authored stops of a custom ramp.
func (r *Registry) Custom(name string) ([]Stop, error) {
	stops, ok := r.custom[name]
	if !ok {
		return nil, fmt.Errorf("%w: custom %q", ErrNotFound, name)
	}
	return append([]Stop(nil), stops...), nil
}

// Classify resolves name once into a tagged Source. Custom ramps win over
// external names.
func (r *Registry) Classify(name string) Source {
	if stops, err := r.Custom(name); err == nil {
		return Source{Name: name, Kind: Custom, Stops: stops}
	}
	if r.IsExternal(name) {
		return Source{Name: name, Kind: External}
	}
	return Source{Name: name, Kind: Unknown}
}

// CustomNames returns custom ramp names in registration order.
func (r *Registry) CustomNames() []string {
	return append([]string(nil), r.order...)
}

// ExternalNames returns the external colormap names, sorted.
func (r *Registry) ExternalNames() []string {
	names := make([]string, 0, len(r.external))
	for name := range r.external {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateStops checks an authored ramp. Duplicate or unordered positions are
// rejected rather than reordered.
func ValidateStops(stops []Stop) error {
	if len(stops) < 2 {
		return fmt.Errorf("%w: need at least 2 stops, got %d", ErrInvalidRamp, len(stops))
	}
	if stops[0].Position != 0 {
		return fmt.Errorf("%w: first stop at %v, want 0", ErrInvalidRamp, stops[0].Position)
	}
	if last := stops[len(stops)-1].Position; last != 1 {
		return fmt.Errorf("%w: last stop at %v, want 1", ErrInvalidRamp, last)
	}
	for i, s := range stops {
		if i > 0 && s.Position <= stops[i-1].Position {
			return fmt.Errorf("%w: stop %d at %v does not follow %v",
				ErrInvalidRamp, i, s.Position, stops[i-1].Position)
		}
		c := s.Color
		for _, v := range []float64{c.R, c.G, c.B, c.A} {
			if v < 0 || v > 1 || v != v {
				return fmt.Errorf("%w: stop %d colour %v out of range", ErrInvalidRamp, i, c)
			}
		}
	}
	return nil
}

func rgba(r, g, b, a float64) colorspace.RGBA {
	return colorspace.RGBA{R: r, G: g, B: b, A: a}
}
