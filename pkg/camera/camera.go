// Package camera places render cameras around a globe from geographic
// positions.
package camera

import (
	gomath "math"

	"github.com/jnwhnr/data-on-the-sphere/pkg/geo"
	"github.com/jnwhnr/data-on-the-sphere/pkg/math"
)

// SphereRadius is the radius of the rendered globe in scene units.
const SphereRadius = 2.0

// Projection is the camera lens type.
type Projection string

// Projections.
const (
	Perspective  Projection = "perspective"
	Orthographic Projection = "orthographic"
)

// Config holds the lens and orbit settings shared by every placed camera.
type Config struct {
	FocalLengthMM float64 `yaml:"focal_length"`
	ZoomLevel     float64 `yaml:"zoom"`
	Distance      float64 `yaml:"distance"`
	DepthOfField  bool    `yaml:"dof"`
	ApertureFStop float64 `yaml:"fstop"`
}

// DefaultConfig returns a 50mm lens six units from the globe centre.
func DefaultConfig() Config {
	return Config{
		FocalLengthMM: 50,
		ZoomLevel:     0,
		Distance:      6,
		DepthOfField:  false,
		ApertureFStop: 0.7,
	}
}

// EffectiveFocalLength is the focal length after zoom.
func (c Config) EffectiveFocalLength() float64 {
	return c.FocalLengthMM * (1 + c.ZoomLevel)
}

// DOF describes depth of field. FocusDistance is measured from the camera.
type DOF struct {
	Enabled       bool    `yaml:"enabled"`
	FocusDistance float64 `yaml:"focus_distance,omitempty"`
	FStop         float64 `yaml:"fstop,omitempty"`
}

// Pose is a fully placed camera.
type Pose struct {
	Name          string     `yaml:"name"`
	Lat           float64    `yaml:"lat"`
	Lon           float64    `yaml:"lon"`
	Position      math.Vec3  `yaml:"position"`
	Rotation      math.Quat  `yaml:"rotation"`
	Euler         math.Vec3  `yaml:"rotation_euler"`
	View          math.Mat4  `yaml:"-"`
	Projection    Projection `yaml:"projection"`
	FocalLengthMM float64    `yaml:"focal_length"`
	OrthoScale    float64    `yaml:"ortho_scale,omitempty"`
	DOF           DOF        `yaml:"dof"`
}

// Forward returns the viewing direction, the camera's -Z axis in world space.
func (p Pose) Forward() math.Vec3 {
	return p.Rotation.Rotate(math.Vec3{Z: -1})
}

// Up returns the camera's +Y axis in world space.
func (p Pose) Up() math.Vec3 {
	return p.Rotation.Rotate(math.UnitY)
}

// Position converts latitude and longitude in degrees to a point at distance
// from the globe centre. Longitude 0 on the equator lies on -Y and the north
// pole on +Z.
func Position(lat, lon, distance float64) math.Vec3 {
	phi := lat * gomath.Pi / 180
	lambda := lon * gomath.Pi / 180
	return math.Vec3{
		X: distance * gomath.Cos(phi) * gomath.Sin(lambda),
		Y: -distance * gomath.Cos(phi) * gomath.Cos(lambda),
		Z: distance * gomath.Sin(phi),
	}
}

// poleEpsilon bounds how close to the Z axis the view may get before north
// can no longer serve as the up reference.
const poleEpsilon = 1e-9

// Orient returns the rotation of a camera at eye looking at the globe centre
// with north up, and the matching view matrix. Looking straight along the Z
// axis, world +Y takes over as the up reference.
func Orient(eye math.Vec3) (math.Quat, math.Mat4) {
	forward := eye.Negate().Normalize()
	if eye.Length() == 0 {
		forward = math.UnitY
	}
	worldUp := math.UnitZ
	if forward.Cross(worldUp).Length() < poleEpsilon {
		worldUp = math.UnitY
	}
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward)

	rot := math.QuatFromMat4(math.FromBasis(right, up, forward.Negate()))
	view := math.LookAt(eye, eye.Add(forward), up)
	return rot, view
}

// Place computes the pose for one position. Enhanced renders always get depth
// of field. Out of range coordinates still produce a pose.
func Place(p geo.Position, cfg Config, enhanced bool) Pose {
	eye := Position(p.Lat, p.Lon, cfg.Distance)
	rot, view := Orient(eye)
	pose := Pose{
		Name:          p.Name,
		Lat:           p.Lat,
		Lon:           p.Lon,
		Position:      eye,
		Rotation:      rot,
		Euler:         rot.Euler(),
		View:          view,
		Projection:    Perspective,
		FocalLengthMM: cfg.EffectiveFocalLength(),
	}
	if cfg.DepthOfField || enhanced {
		pose.DOF = DOF{
			Enabled:       true,
			FocusDistance: cfg.Distance - SphereRadius,
			FStop:         cfg.ApertureFStop,
		}
	}
	return pose
}

// PlaceAll places a camera for each position, in order.
func PlaceAll(positions []geo.Position, cfg Config, enhanced bool) []Pose {
	poses := make([]Pose, len(positions))
	for i, p := range positions {
		poses[i] = Place(p, cfg, enhanced)
	}
	return poses
}

// Robinson camera constants for flat map renders.
const (
	RobinsonHeight     = 5.0
	RobinsonOrthoScale = 4.0
	RobinsonFocal      = 50.0
)

// RobinsonView names the single flat map camera.
const RobinsonView = "TopView"

// Robinson returns the orthographic camera looking straight down at a flat
// map plane centred on the origin.
func Robinson() Pose {
	eye := math.Vec3{Z: RobinsonHeight}
	rot, view := Orient(eye)
	return Pose{
		Name:          RobinsonView,
		Position:      eye,
		Rotation:      rot,
		Euler:         rot.Euler(),
		View:          view,
		Projection:    Orthographic,
		FocalLengthMM: RobinsonFocal,
		OrthoScale:    RobinsonOrthoScale,
	}
}
