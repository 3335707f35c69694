package palette

import "strings"

// externalNames are the colormaps sampled through the external provider.
var externalNames = []string{
	// Sequential (single hue)
	"viridis", "plasma", "inferno", "magma", "cividis",

	// Sequential (multi-hue)
	"Blues", "BuGn", "BuPu", "GnBu", "Greens", "Greys", "Oranges",
	"OrRd", "PuBu", "PuBuGn", "PuRd", "Purples", "RdPu", "Reds",
	"YlGn", "YlGnBu", "YlOrBr", "YlOrRd",

	// Diverging
	"coolwarm", "bwr", "seismic", "RdBu", "RdGy", "RdYlBu",
	"RdYlGn", "Spectral", "BrBG", "PiYG", "PRGn", "PuOr",

	// Cyclic
	"twilight", "twilight_shifted", "hsv",

	// Miscellaneous
	"flag", "prism", "ocean", "gist_earth", "terrain", "gist_stern",
	"gnuplot", "gnuplot2", "CMRmap", "cubehelix", "brg", "gist_rainbow",
	"rainbow", "jet", "nipy_spectral", "gist_ncar",
}

var recommended = map[string][]string{
	"sequential":    {"viridis", "plasma", "inferno", "cividis", "Blues", "Oranges"},
	"diverging":     {"coolwarm", "RdBu_r", "RdYlBu", "seismic", "Spectral_r", "bwr"},
	"precipitation": {"Blues", "BuGn", "precipitation", "jw_precip"},
	"temperature":   {"coolwarm", "RdYlBu_r", "temperature", "fire", "jw_temp"},
	"elevation":     {"terrain", "gist_earth", "earth_tones", "ocean_depth"},
}

var colorblindSafe = set(
	"viridis", "plasma", "inferno", "magma", "cividis",
	"coolwarm", "RdYlBu", "Blues", "Oranges", "Greens",
)

var highContrast = set(
	"plasma", "inferno", "magma",
	"seismic", "coolwarm", "bwr",
	"Spectral", "RdYlBu",
)

// DataKinds lists the data kinds Recommendations knows about.
func DataKinds() []string {
	return []string{"sequential", "diverging", "precipitation", "temperature", "elevation"}
}

// Recommendations returns palette names suited to a kind of data. Unknown
// kinds get the sequential list; the bool reports whether kind was known.
func Recommendations(kind string) ([]string, bool) {
	names, ok := recommended[strings.ToLower(kind)]
	if !ok {
		names = recommended["sequential"]
	}
	return append([]string(nil), names...), ok
}

// ColorblindSafe reports whether name is considered colourblind friendly.
func ColorblindSafe(name string) bool {
	_, ok := colorblindSafe[name]
	return ok
}

// HighContrast reports whether name has a high dynamic range.
func HighContrast(name string) bool {
	_, ok := highContrast[name]
	return ok
}

func set(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}
