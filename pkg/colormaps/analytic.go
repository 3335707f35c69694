package colormaps

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// gnuplot returns one of the gnuplot palette formulae by number.
func gnuplot(n int) func(x float64) float64 {
	switch n {
	case 3:
		return func(x float64) float64 { return x }
	case 5:
		return func(x float64) float64 { return x * x * x }
	case 7:
		return math.Sqrt
	case 10:
		return func(x float64) float64 { return math.Cos(x * math.Pi / 2) }
	case 13:
		return func(x float64) float64 { return math.Sin(x * math.Pi) }
	case 15:
		return func(x float64) float64 { return math.Sin(2 * math.Pi * x) }
	case 23:
		return func(x float64) float64 { return 3*x - 2 }
	case 28:
		return func(x float64) float64 { return math.Abs((3*x - 1) / 2) }
	case 30:
		return func(x float64) float64 { return x/0.32 - 0.78125 }
	case 31:
		return func(x float64) float64 { return 2*x - 0.84 }
	case 32:
		return func(x float64) float64 {
			switch {
			case x < 0.25:
				return 4 * x
			case x < 0.42:
				return 1
			case x < 0.92:
				return -2*x + 1.84
			default:
				return x/0.08 - 11.5
			}
		}
	case 33:
		return func(x float64) float64 { return math.Abs(2*x - 0.5) }
	}
	panic("colormaps: unsupported gnuplot formula")
}

func formula(r, g, b int) Func {
	fr, fg, fb := gnuplot(r), gnuplot(g), gnuplot(b)
	return func(x float64) colorful.Color {
		return colorful.Color{R: clamp01(fr(x)), G: clamp01(fg(x)), B: clamp01(fb(x))}
	}
}

// cubehelix is Green's scheme with matplotlib's default parameters.
func cubehelix(x float64) colorful.Color {
	const (
		gamma = 1.0
		s     = 0.5
		r     = -1.5
		h     = 1.0
	)
	xg := math.Pow(x, gamma)
	a := h * xg * (1 - xg) / 2
	phi := 2 * math.Pi * (s/3 + r*x)
	cos, sin := math.Cos(phi), math.Sin(phi)
	return colorful.Color{
		R: clamp01(xg + a*(-0.14861*cos+1.78277*sin)),
		G: clamp01(xg + a*(-0.29227*cos-0.90649*sin)),
		B: clamp01(xg + a*(1.97294*cos)),
	}
}

func flag(x float64) colorful.Color {
	return colorful.Color{
		R: clamp01(0.75*math.Sin((x*31.5+0.25)*math.Pi) + 0.5),
		G: clamp01(math.Sin(x * 31.5 * math.Pi)),
		B: clamp01(0.75*math.Sin((x*31.5-0.25)*math.Pi) + 0.5),
	}
}

func prism(x float64) colorful.Color {
	return colorful.Color{
		R: clamp01(0.75*math.Sin((x*20.9+0.25)*math.Pi) + 0.67),
		G: clamp01(0.75*math.Sin((x*20.9-0.25)*math.Pi) + 0.33),
		B: clamp01(-1.1 * math.Sin(x*20.9*math.Pi)),
	}
}

// hsv walks the hue circle at full saturation and value, red at both ends.
func hsv(x float64) colorful.Color {
	return colorful.Hsv(math.Mod(360*x, 360), 1, 1)
}

var analytic = map[string]Func{
	"gnuplot":   formula(7, 5, 15),
	"gnuplot2":  formula(30, 31, 32),
	"ocean":     formula(23, 28, 3),
	"rainbow":   formula(33, 13, 10),
	"cubehelix": cubehelix,
	"flag":      flag,
	"prism":     prism,
	"hsv":       hsv,
}
