// Package gzmath holds the native math types that messages convert to and
// from. They are plain values with no wire representation of their own.
package gzmath

import "math"

// Vector2d is a two-dimensional vector.
type Vector2d struct {
	X, Y float64
}

// Vector3d is a three-dimensional vector.
type Vector3d struct {
	X, Y, Z float64
}

// Length returns the Euclidean norm of v.
func (v Vector3d) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Quaterniond is a rotation quaternion stored as (W, X, Y, Z).
type Quaterniond struct {
	W, X, Y, Z float64
}

// IdentityQuaternion is the rotation that leaves vectors unchanged.
var IdentityQuaternion = Quaterniond{W: 1}

// Pose3d combines a position and an orientation.
type Pose3d struct {
	Position Vector3d
	Rotation Quaterniond
}

// NewPose3d returns a pose at pos with identity rotation.
func NewPose3d(pos Vector3d) Pose3d {
	return Pose3d{Position: pos, Rotation: IdentityQuaternion}
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Planed is a plane with normal, visual size and offset from the origin.
type Planed struct {
	Normal Vector3d
	Size   Vector2d
	Offset float64
}

// AxisAlignedBox is a box bounded by its minimum and maximum corners.
type AxisAlignedBox struct {
	Min, Max Vector3d
}

// Size returns the box extent along each axis.
func (b AxisAlignedBox) Size() Vector3d {
	return Vector3d{X: b.Max.X - b.Min.X, Y: b.Max.Y - b.Min.Y, Z: b.Max.Z - b.Min.Z}
}

// MassMatrix3d stores mass and the six independent moments of inertia.
type MassMatrix3d struct {
	Mass          float64
	Ixx, Iyy, Izz float64
	Ixy, Ixz, Iyz float64
}

// Matrix6d is a dense 6x6 matrix in row-major order.
type Matrix6d [6][6]float64

// Symmetric reports whether m equals its transpose.
func (m Matrix6d) Symmetric() bool {
	for i := range 6 {
		for j := i + 1; j < 6; j++ {
			if m[i][j] != m[j][i] {
				return false
			}
		}
	}
	return true
}

// Inertiald describes the inertia of a rigid body: its mass matrix, the
// pose of the inertial frame and an optional fluid added mass matrix.
type Inertiald struct {
	MassMatrix     MassMatrix3d
	Pose           Pose3d
	FluidAddedMass *Matrix6d
}

// SurfaceType names the reference body a SphericalCoordinates is taken on.
type SurfaceType int

const (
	EarthWGS84 SurfaceType = iota
	MoonSCS
	CustomSurface
)

// Axes returns the equatorial and polar semi-axes of a named surface in
// meters. CustomSurface has no fixed axes and reports ok=false.
func (s SurfaceType) Axes() (equatorial, polar float64, ok bool) {
	switch s {
	case EarthWGS84:
		return 6378137.0, 6356752.314245, true
	case MoonSCS:
		return 1738100.0, 1736000.0, true
	}
	return 0, 0, false
}

// CoordinateType is a frame spherical coordinates can be transformed into.
type CoordinateType int

const (
	Spherical CoordinateType = iota
	ECEF
	Global
	Local
	Local2
)

// SphericalCoordinates places a local frame on the surface of a body.
type SphericalCoordinates struct {
	Surface        SurfaceType
	AxisEquatorial float64
	AxisPolar      float64
	LatitudeDeg    float64
	LongitudeDeg   float64
	Elevation      float64
	HeadingDeg     float64
}

// SetSurface selects the reference surface. The axes are only used for
// CustomSurface; a named surface always takes its own.
func (c *SphericalCoordinates) SetSurface(s SurfaceType, equatorial, polar float64) {
	c.Surface = s
	if e, p, ok := s.Axes(); ok {
		equatorial, polar = e, p
	}
	c.AxisEquatorial = equatorial
	c.AxisPolar = polar
}
