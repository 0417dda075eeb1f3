package convert

import (
	"github.com/gazebosim/gz-msgs/gzmath"
	"github.com/gazebosim/gz-msgs/msgs"
)

// Math type codecs.
var (
	Vector2d             = For[msgs.Vector2D, gzmath.Vector2d](vector2dConverter{})
	Vector3d             = For[msgs.Vector3D, gzmath.Vector3d](vector3dConverter{})
	Quaternion           = For[msgs.Quaternion, gzmath.Quaterniond](quaternionConverter{})
	Pose                 = For[msgs.Pose, gzmath.Pose3d](poseConverter{})
	Color                = For[msgs.Color, gzmath.Color](colorConverter{})
	Plane                = For[msgs.PlaneGeom, gzmath.Planed](planeConverter{})
	AxisAlignedBox       = For[msgs.AxisAlignedBox, gzmath.AxisAlignedBox](axisAlignedBoxConverter{})
	MassMatrix           = For[msgs.Inertial, gzmath.MassMatrix3d](massMatrixConverter{})
	Inertial             = For[msgs.Inertial, gzmath.Inertiald](inertialConverter{})
	SphericalCoordinates = For[msgs.SphericalCoordinates, gzmath.SphericalCoordinates](sphericalCoordinatesConverter{})
)

type vector2dConverter struct{}

func (vector2dConverter) SetWire(w *msgs.Vector2D, n gzmath.Vector2d) {
	w.X = n.X
	w.Y = n.Y
}

func (vector2dConverter) SetNative(n *gzmath.Vector2d, w *msgs.Vector2D) {
	*n = gzmath.Vector2d{X: w.GetX(), Y: w.GetY()}
}

type vector3dConverter struct{}

func (vector3dConverter) SetWire(w *msgs.Vector3D, n gzmath.Vector3d) {
	w.X = n.X
	w.Y = n.Y
	w.Z = n.Z
}

func (vector3dConverter) SetNative(n *gzmath.Vector3d, w *msgs.Vector3D) {
	*n = gzmath.Vector3d{X: w.GetX(), Y: w.GetY(), Z: w.GetZ()}
}

type quaternionConverter struct{}

func (quaternionConverter) SetWire(w *msgs.Quaternion, n gzmath.Quaterniond) {
	w.W = n.W
	w.X = n.X
	w.Y = n.Y
	w.Z = n.Z
}

func (quaternionConverter) SetNative(n *gzmath.Quaterniond, w *msgs.Quaternion) {
	*n = gzmath.Quaterniond{W: w.GetW(), X: w.GetX(), Y: w.GetY(), Z: w.GetZ()}
}

// poseConverter leaves the wire name and id alone.
type poseConverter struct{}

func (poseConverter) SetWire(w *msgs.Pose, n gzmath.Pose3d) {
	w.Position = Vector3d.ToWire(n.Position)
	w.Orientation = Quaternion.ToWire(n.Rotation)
}

func (poseConverter) SetNative(n *gzmath.Pose3d, w *msgs.Pose) {
	Vector3d.SetNative(&n.Position, w.GetPosition())
	Quaternion.SetNative(&n.Rotation, w.GetOrientation())
}

type colorConverter struct{}

func (colorConverter) SetWire(w *msgs.Color, n gzmath.Color) {
	w.R = n.R
	w.G = n.G
	w.B = n.B
	w.A = n.A
}

func (colorConverter) SetNative(n *gzmath.Color, w *msgs.Color) {
	*n = gzmath.Color{R: w.GetR(), G: w.GetG(), B: w.GetB(), A: w.GetA()}
}

type planeConverter struct{}

func (planeConverter) SetWire(w *msgs.PlaneGeom, n gzmath.Planed) {
	w.Normal = Vector3d.ToWire(n.Normal)
	w.Size = Vector2d.ToWire(n.Size)
	w.D = n.Offset
}

func (planeConverter) SetNative(n *gzmath.Planed, w *msgs.PlaneGeom) {
	*n = gzmath.Planed{
		Normal: Vector3d.ToNative(w.GetNormal()),
		Size:   Vector2d.ToNative(w.GetSize()),
		Offset: w.GetD(),
	}
}

type axisAlignedBoxConverter struct{}

func (axisAlignedBoxConverter) SetWire(w *msgs.AxisAlignedBox, n gzmath.AxisAlignedBox) {
	w.MinCorner = Vector3d.ToWire(n.Min)
	w.MaxCorner = Vector3d.ToWire(n.Max)
}

func (axisAlignedBoxConverter) SetNative(n *gzmath.AxisAlignedBox, w *msgs.AxisAlignedBox) {
	*n = gzmath.AxisAlignedBox{
		Min: Vector3d.ToNative(w.GetMinCorner()),
		Max: Vector3d.ToNative(w.GetMaxCorner()),
	}
}

// massMatrixConverter carries only mass and moments. The wire pose is set
// to the identity orientation since a mass matrix has no frame of its own.
type massMatrixConverter struct{}

func (massMatrixConverter) SetWire(w *msgs.Inertial, n gzmath.MassMatrix3d) {
	w.Mass = n.Mass
	w.Ixx = n.Ixx
	w.Iyy = n.Iyy
	w.Izz = n.Izz
	w.Ixy = n.Ixy
	w.Ixz = n.Ixz
	w.Iyz = n.Iyz
	w.Pose = &msgs.Pose{Orientation: &msgs.Quaternion{W: 1}}
}

func (massMatrixConverter) SetNative(n *gzmath.MassMatrix3d, w *msgs.Inertial) {
	*n = gzmath.MassMatrix3d{
		Mass: w.GetMass(),
		Ixx:  w.GetIxx(),
		Iyy:  w.GetIyy(),
		Izz:  w.GetIzz(),
		Ixy:  w.GetIxy(),
		Ixz:  w.GetIxz(),
		Iyz:  w.GetIyz(),
	}
}

// fluidAddedMassLen is the number of upper-triangular entries of a 6x6 matrix.
const fluidAddedMassLen = 21

type inertialConverter struct{}

func (inertialConverter) SetWire(w *msgs.Inertial, n gzmath.Inertiald) {
	MassMatrix.SetWire(w, n.MassMatrix)
	Pose.SetWire(w.Pose, n.Pose)

	w.FluidAddedMass = nil
	if n.FluidAddedMass == nil {
		return
	}
	w.FluidAddedMass = make([]float64, 0, fluidAddedMassLen)
	for i := range 6 {
		for j := i; j < 6; j++ {
			w.FluidAddedMass = append(w.FluidAddedMass, n.FluidAddedMass[i][j])
		}
	}
}

func (inertialConverter) SetNative(n *gzmath.Inertiald, w *msgs.Inertial) {
	MassMatrix.SetNative(&n.MassMatrix, w)
	Pose.SetNative(&n.Pose, w.GetPose())

	// Anything other than a full upper triangle leaves the matrix untouched.
	added := w.GetFluidAddedMass()
	if len(added) != fluidAddedMassLen {
		return
	}
	var m gzmath.Matrix6d
	k := 0
	for i := range 6 {
		for j := i; j < 6; j++ {
			m[i][j] = added[k]
			m[j][i] = added[k]
			k++
		}
	}
	n.FluidAddedMass = &m
}

var surfaceModels = map[gzmath.SurfaceType]msgs.SphericalCoordinates_SurfaceModel{
	gzmath.EarthWGS84:    msgs.SphericalCoordinates_EARTH_WGS84,
	gzmath.MoonSCS:       msgs.SphericalCoordinates_MOON_SCS,
	gzmath.CustomSurface: msgs.SphericalCoordinates_CUSTOM_SURFACE,
}

var surfaceTypes = invert(surfaceModels)

// sphericalCoordinatesConverter writes the surface axes only for a custom
// surface; the named surfaces imply theirs.
type sphericalCoordinatesConverter struct{}

func (sphericalCoordinatesConverter) SetWire(w *msgs.SphericalCoordinates, n gzmath.SphericalCoordinates) {
	// an unknown surface leaves the wire model as it was
	if model, ok := surfaceModels[n.Surface]; ok {
		w.SurfaceModel = model
	}
	w.SurfaceAxisEquatorial = 0
	w.SurfaceAxisPolar = 0
	if n.Surface == gzmath.CustomSurface {
		w.SurfaceAxisEquatorial = n.AxisEquatorial
		w.SurfaceAxisPolar = n.AxisPolar
	}
	w.LatitudeDeg = n.LatitudeDeg
	w.LongitudeDeg = n.LongitudeDeg
	w.Elevation = n.Elevation
	w.HeadingDeg = n.HeadingDeg
}

func (sphericalCoordinatesConverter) SetNative(n *gzmath.SphericalCoordinates, w *msgs.SphericalCoordinates) {
	if surface, ok := surfaceTypes[w.GetSurfaceModel()]; ok {
		n.SetSurface(surface, w.GetSurfaceAxisEquatorial(), w.GetSurfaceAxisPolar())
	}
	n.LatitudeDeg = w.GetLatitudeDeg()
	n.LongitudeDeg = w.GetLongitudeDeg()
	n.Elevation = w.GetElevation()
	n.HeadingDeg = w.GetHeadingDeg()
}
