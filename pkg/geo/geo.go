// Package geo holds the named geographic positions a globe can be viewed from.
package geo

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownLocation is returned when a name is not in the catalog.
var ErrUnknownLocation = errors.New("unknown location")

// Position is a named latitude/longitude pair in degrees.
type Position struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

// Valid reports whether Lat is in [-90, 90] and Lon in [-180, 180].
func (p Position) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Label returns a display form of the name: "North_America" becomes
// "North America".
func (p Position) Label() string {
	return DisplayName(p.Name)
}

// DisplayName turns a catalog key into a human readable label.
func DisplayName(name string) string {
	// Casers are stateful, so each call gets its own.
	return cases.Title(language.English, cases.NoLower).String(strings.ReplaceAll(name, "_", " "))
}

// Continents are the default whole-continent views.
var Continents = []Position{
	{"Africa", 0, 20},
	{"Europe", 50, 10},
	{"Asia", 30, 90},
	{"North_America", 45, -100},
	{"South_America", -15, -60},
	{"Australia", -25, 135},
	{"Arctic", 75, 0},
	{"Antarctica", -90, 0},
}

// PointsOfInterest are close-up views of specific regions.
var PointsOfInterest = []Position{
	{"Marrakech_Atlas", 31.6, -8.0},
	{"Congo_River", 0, 18},
	{"Himalayas", 28, 87},
	{"Bremen", 53.08, 8.80},
}

// Catalog is an ordered set of positions keyed by name.
type Catalog struct {
	order []string
	byKey map[string]Position
}

// NewCatalog returns a catalog holding positions in order. Later entries
// replace earlier ones of the same name, keeping the original slot.
func NewCatalog(positions ...Position) *Catalog {
	c := &Catalog{byKey: make(map[string]Position)}
	for _, p := range positions {
		c.Add(p)
	}
	return c
}

// DefaultCatalog returns continents followed by points of interest.
func DefaultCatalog() *Catalog {
	return NewCatalog(append(append([]Position(nil), Continents...), PointsOfInterest...)...)
}

// Add inserts or replaces a position.
func (c *Catalog) Add(p Position) {
	if _, ok := c.byKey[p.Name]; !ok {
		c.order = append(c.order, p.Name)
	}
	c.byKey[p.Name] = p
}

// Len returns the number of positions.
func (c *Catalog) Len() int { return len(c.order) }

// Names returns the position names in catalog order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// All returns every position in catalog order.
func (c *Catalog) All() []Position {
	out := make([]Position, len(c.order))
	for i, name := range c.order {
		out[i] = c.byKey[name]
	}
	return out
}

// Lookup returns the named position.
func (c *Catalog) Lookup(name string) (Position, error) {
	p, ok := c.byKey[name]
	if !ok {
		return Position{}, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
	}
	return p, nil
}

// Select returns the named positions in catalog order. An empty or "all"
// selection returns every position. Unknown names are an error.
func (c *Catalog) Select(names []string) ([]Position, error) {
	if len(names) == 0 || (len(names) == 1 && strings.EqualFold(names[0], "all")) {
		return c.All(), nil
	}
	want := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := c.byKey[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
		}
		want[name] = true
	}
	out := make([]Position, 0, len(want))
	for _, name := range c.order {
		if want[name] {
			out = append(out, c.byKey[name])
		}
	}
	return out, nil
}
