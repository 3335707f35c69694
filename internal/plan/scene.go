package plan

import (
	"github.com/jnwhnr/data-on-the-sphere/pkg/math"
	"github.com/jnwhnr/data-on-the-sphere/pkg/valuerange"
)

// Render describes the output image and sampler.
type Render struct {
	Engine          string `yaml:"engine"`
	Format          string `yaml:"format"`
	ColorMode       string `yaml:"color_mode"`
	FilmTransparent bool   `yaml:"film_transparent"`
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	Percentage      int    `yaml:"percentage"`
	Samples         int    `yaml:"samples"`
}

// Render resolutions.
const (
	SphereSize      = 2000
	SphereSizeLow   = 200
	RobinsonWidth   = 4000
	SamplesHigh     = 256
	SamplesStandard = 128
	SamplesLow      = 32
)

// RenderFor picks resolution and sample count. Depth of field and enhanced
// mode need more samples; low resolution overrides both.
func RenderFor(s Settings) Render {
	r := Render{
		Engine:          "CYCLES",
		Format:          "PNG",
		ColorMode:       "RGBA",
		FilmTransparent: true,
		Percentage:      100,
		Samples:         SamplesStandard,
	}
	switch {
	case s.Object == Robinson:
		r.Width, r.Height = RobinsonWidth, RobinsonWidth/2
	case s.LowRes:
		r.Width, r.Height = SphereSizeLow, SphereSizeLow
	default:
		r.Width, r.Height = SphereSize, SphereSize
	}
	if s.Camera.DepthOfField || s.Enhanced {
		r.Samples = SamplesHigh
	}
	if s.LowRes {
		r.Samples = SamplesLow
	}
	return r
}

// Light is a sun lamp. Angles are in degrees.
type Light struct {
	Name     string    `yaml:"name"`
	Type     string    `yaml:"type"`
	Location math.Vec3 `yaml:"location"`
	Energy   float64   `yaml:"energy"`
	Angle    float64   `yaml:"angle,omitempty"`
	Rotation math.Vec3 `yaml:"rotation"`
}

// LightsFor returns the scene lights. Flat maps outside enhanced mode rely on
// world light only.
func LightsFor(s Settings) []Light {
	sunAt := math.Vec3{X: 5, Y: 5, Z: 10}
	switch {
	case s.Object == Robinson && s.Enhanced:
		return []Light{{
			Name:     "robinson_displacement_light",
			Type:     "SUN",
			Location: math.Vec3{X: 8, Y: 2, Z: 4},
			Energy:   0.5,
			Angle:    30,
			Rotation: math.Vec3{X: 45, Y: 20},
		}}
	case s.Object == Robinson:
		return nil
	case s.Enhanced:
		return []Light{
			{Name: "sun_light_1", Type: "SUN", Location: sunAt, Energy: 0.5, Angle: 65},
			{Name: "sun_light_2", Type: "SUN", Location: sunAt, Energy: 0.5, Angle: 65, Rotation: math.Vec3{Y: 180}},
		}
	default:
		return []Light{{Name: "sun_light", Type: "SUN", Location: sunAt, Energy: 0.5}}
	}
}

// Modifier is a subdivision surface modifier.
type Modifier struct {
	Type         string `yaml:"type"`
	Simple       bool   `yaml:"simple,omitempty"`
	Levels       int    `yaml:"levels"`
	RenderLevels int    `yaml:"render_levels"`
}

// Mesh is the primitive the data is draped on.
type Mesh struct {
	Name         string    `yaml:"name"`
	Primitive    string    `yaml:"primitive"`
	Size         float64   `yaml:"size"`
	Scale        math.Vec3 `yaml:"scale"`
	Subdivisions int       `yaml:"subdivisions,omitempty"`
	Modifier     Modifier  `yaml:"modifier"`
	ShadeSmooth  bool      `yaml:"shade_smooth"`
}

// MeshFor returns the globe sphere or the 2:1 map plane.
func MeshFor(s Settings) Mesh {
	if s.Object == Robinson {
		return Mesh{
			Name:         "robinson_projection",
			Primitive:    "plane",
			Size:         2,
			Scale:        math.Vec3{X: 2, Y: 1, Z: 1},
			Subdivisions: 4,
			Modifier:     Modifier{Type: "SUBSURF", Simple: true, Levels: 3, RenderLevels: 3},
			ShadeSmooth:  true,
		}
	}
	return Mesh{
		Name:        "climate_sphere",
		Primitive:   "uv_sphere",
		Size:        1,
		Scale:       math.Vec3{X: 2, Y: 2, Z: 2},
		Modifier:    Modifier{Type: "SUBSURF", Levels: 3, RenderLevels: 6},
		ShadeSmooth: true,
	}
}

// Texture is an image input of the material. Data rasters are never colour
// managed.
type Texture struct {
	Path       string    `yaml:"path"`
	Projection string    `yaml:"projection"`
	ColorSpace string    `yaml:"colorspace"`
	Rotation   math.Vec3 `yaml:"rotation,omitempty"`
	Scale      math.Vec3 `yaml:"scale,omitempty"`
}

// Material is the surface shader setup around the colour ramp.
type Material struct {
	Name                 string           `yaml:"name"`
	Data                 Texture          `yaml:"data"`
	Mask                 *Texture         `yaml:"mask,omitempty"`
	Range                valuerange.Range `yaml:"range"`
	Roughness            float64          `yaml:"roughness"`
	BumpStrength         float64          `yaml:"bump_strength"`
	BumpDistance         float64          `yaml:"bump_distance"`
	DisplacementScale    float64          `yaml:"displacement_scale"`
	DisplacementMidlevel float64          `yaml:"displacement_midlevel"`
	EmissionPower        float64          `yaml:"emission_power,omitempty"`
	EmissionStrength     float64          `yaml:"emission_strength,omitempty"`
}

// MaterialFor builds the material. Enhanced mode adds displacement and drives
// emission by a power of the ramp colour instead of a constant strength.
func MaterialFor(s Settings, maskPath string) Material {
	m := Material{
		Name:         "climate_material",
		Range:        s.Range,
		Roughness:    0.95,
		BumpStrength: 0.3,
		BumpDistance: 3.0,
	}
	if s.Enhanced {
		m.Roughness = 0.6
		m.DisplacementScale = 0.02
		m.EmissionPower = 0.001
	} else {
		m.EmissionStrength = 1.0
	}

	if s.Object == Robinson {
		m.Name = "robinson_material"
		m.Data = Texture{Path: s.Input, Projection: "uv", ColorSpace: "Non-Color"}
		if maskPath != "" {
			m.Mask = &Texture{Path: maskPath, Projection: "uv", ColorSpace: "Non-Color"}
		}
		return m
	}
	m.Data = Texture{
		Path:       s.Input,
		Projection: "equirectangular",
		ColorSpace: "Non-Color",
		Rotation:   s.RotationOffset,
		Scale:      math.Vec3{X: 1, Y: -1, Z: 1},
	}
	return m
}
