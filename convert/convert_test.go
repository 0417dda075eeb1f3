package convert

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/gazebosim/gz-msgs/gzmath"
	"github.com/gazebosim/gz-msgs/msgs"
)

func upperTriangle() []float64 {
	out := make([]float64, fluidAddedMassLen)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

// wireSamples holds, per pair name, a wire message in the exact shape the
// pair's SetWire produces, so converting it to native and back must give an
// equal message.
var wireSamples = map[string]proto.Message{
	"Vector2d":   &msgs.Vector2D{X: -1, Y: 4},
	"Vector3d":   &msgs.Vector3D{X: 1, Y: -2, Z: 3.5},
	"Quaternion": &msgs.Quaternion{W: 0.7071, X: 0, Y: 0.7071, Z: 0},
	"Pose": &msgs.Pose{
		Position:    &msgs.Vector3D{X: 1, Y: 2, Z: 3},
		Orientation: &msgs.Quaternion{W: 1},
	},
	"Color": &msgs.Color{R: 0.1, G: 0.2, B: 0.3, A: 1},
	"Plane": &msgs.PlaneGeom{
		Normal: &msgs.Vector3D{Z: 1},
		Size:   &msgs.Vector2D{X: 10, Y: 20},
		D:      0.5,
	},
	"AxisAlignedBox": &msgs.AxisAlignedBox{
		MinCorner: &msgs.Vector3D{X: -1, Y: -2, Z: -3},
		MaxCorner: &msgs.Vector3D{X: 1, Y: 2, Z: 3},
	},
	"MassMatrix": &msgs.Inertial{
		Mass: 2, Ixx: 1, Iyy: 2, Izz: 3, Ixy: 0.1, Ixz: 0.2, Iyz: 0.3,
		Pose: &msgs.Pose{Orientation: &msgs.Quaternion{W: 1}},
	},
	"Inertial": &msgs.Inertial{
		Mass: 5, Ixx: 1, Iyy: 1, Izz: 1,
		Pose: &msgs.Pose{
			Position:    &msgs.Vector3D{X: 0.5},
			Orientation: &msgs.Quaternion{W: 1},
		},
		FluidAddedMass: upperTriangle(),
	},
	"SphericalCoordinates": &msgs.SphericalCoordinates{
		SurfaceModel:          msgs.SphericalCoordinates_CUSTOM_SURFACE,
		LatitudeDeg:           -22.9,
		LongitudeDeg:          -43.2,
		Elevation:             11,
		HeadingDeg:            90,
		SurfaceAxisEquatorial: 3396190,
		SurfaceAxisPolar:      3376200,
	},
	"Time":    &msgs.Time{Sec: -1, Nsec: -500_000_000},
	"String":  &msgs.StringMsg{Data: "hello"},
	"Bool":    &msgs.Boolean{Data: true},
	"Int32":   &msgs.Int32{Data: math.MinInt32},
	"UInt32":  &msgs.UInt32{Data: math.MaxUint32},
	"Int64":   &msgs.Int64{Data: math.MinInt64},
	"UInt64":  &msgs.UInt64{Data: math.MaxUint64},
	"Float32": &msgs.Float{Data: 1.25},
	"Float64": &msgs.Double{Data: -2.5},
}

func TestPairs_WireRoundTrip(t *testing.T) {
	for _, p := range Pairs() {
		t.Run(p.Name, func(t *testing.T) {
			sample, ok := wireSamples[p.Name]
			require.True(t, ok, "no wire sample for %s", p.Name)
			require.Equal(t, reflect.PointerTo(p.Wire), reflect.TypeOf(sample))

			native, err := p.ToNative(sample)
			require.NoError(t, err)
			require.Equal(t, p.Native, reflect.TypeOf(native))

			back, err := p.ToWire(native)
			require.NoError(t, err)
			assert.True(t, proto.Equal(sample, back),
				"round trip changed the message:\nwant %s\ngot  %s", spew.Sdump(sample), spew.Sdump(back))
		})
	}
	assert.Len(t, wireSamples, len(Pairs()), "every sample should name a pair")
}

func TestPair_WrongTypes(t *testing.T) {
	p, err := Find(reflect.TypeFor[msgs.Vector3D](), reflect.TypeFor[gzmath.Vector3d]())
	require.NoError(t, err)

	_, err = p.ToNative(&msgs.Vector2D{})
	assert.ErrorContains(t, err, "Vector3d")

	_, err = p.ToWire(gzmath.Vector2d{})
	assert.ErrorContains(t, err, "gzmath.Vector3d")
}

func TestVector3d_ToWire(t *testing.T) {
	w := Vector3d.ToWire(gzmath.Vector3d{X: 1, Y: 2, Z: 3})
	assert.True(t, proto.Equal(&msgs.Vector3D{X: 1, Y: 2, Z: 3}, w))

	n := Vector3d.ToNative(&msgs.Vector3D{X: 1, Y: 2, Z: 3})
	assert.Equal(t, gzmath.Vector3d{X: 1, Y: 2, Z: 3}, n)

	assert.Equal(t, gzmath.Vector3d{}, Vector3d.ToNative(nil))
}

func TestGenericHelpers(t *testing.T) {
	w := ToWire[msgs.Vector2D](Vector2d, gzmath.Vector2d{X: -1, Y: 4})
	assert.Equal(t, -1.0, w.GetX())
	assert.Equal(t, 4.0, w.GetY())

	n := ToNative[msgs.Vector2D, gzmath.Vector2d](Vector2d, w)
	assert.Equal(t, gzmath.Vector2d{X: -1, Y: 4}, n)
}

func TestSetWireOverwrites(t *testing.T) {
	w := &msgs.Vector3D{X: 9, Y: 9, Z: 9}
	Vector3d.SetWire(w, gzmath.Vector3d{X: 1})
	assert.True(t, proto.Equal(&msgs.Vector3D{X: 1}, w))
}

func TestPose_KeepsNameAndID(t *testing.T) {
	w := &msgs.Pose{Name: "base_link", Id: 7}
	Pose.SetWire(w, gzmath.NewPose3d(gzmath.Vector3d{Z: 1}))
	assert.Equal(t, "base_link", w.GetName())
	assert.Equal(t, uint32(7), w.GetId())
	assert.Equal(t, 1.0, w.GetPosition().GetZ())
	assert.Equal(t, 1.0, w.GetOrientation().GetW())
}

func TestPose_MissingSubmessages(t *testing.T) {
	assert.Equal(t, gzmath.Pose3d{}, Pose.ToNative(&msgs.Pose{}))
	assert.Equal(t, gzmath.Pose3d{}, Pose.ToNative(nil))
}

func TestMassMatrix(t *testing.T) {
	m := gzmath.MassMatrix3d{Mass: 2, Ixx: 1, Iyy: 2, Izz: 3, Ixy: 0.1, Ixz: 0.2, Iyz: 0.3}

	w := MassMatrix.ToWire(m)
	assert.Equal(t, 2.0, w.GetMass())
	assert.Equal(t, 0.3, w.GetIyz())
	require.NotNil(t, w.GetPose())
	assert.Equal(t, 1.0, w.GetPose().GetOrientation().GetW())

	assert.Equal(t, m, MassMatrix.ToNative(w))
}

func TestInertial_FluidAddedMass(t *testing.T) {
	var added gzmath.Matrix6d
	v := 1.0
	for i := range 6 {
		for j := i; j < 6; j++ {
			added[i][j] = v
			added[j][i] = v
			v++
		}
	}

	in := gzmath.Inertiald{
		MassMatrix:     gzmath.MassMatrix3d{Mass: 5, Ixx: 1, Iyy: 1, Izz: 1},
		Pose:           gzmath.NewPose3d(gzmath.Vector3d{X: 0.5}),
		FluidAddedMass: &added,
	}

	w := Inertial.ToWire(in)
	require.Len(t, w.GetFluidAddedMass(), 21)
	assert.Equal(t, 1.0, w.GetFluidAddedMass()[0])
	assert.Equal(t, 7.0, w.GetFluidAddedMass()[6])
	assert.Equal(t, 21.0, w.GetFluidAddedMass()[20])
	assert.Equal(t, 0.5, w.GetPose().GetPosition().GetX())

	back := Inertial.ToNative(w)
	require.NotNil(t, back.FluidAddedMass)
	assert.True(t, back.FluidAddedMass.Symmetric())
	assert.Equal(t, in, back)
}

func TestInertial_PartialFluidAddedMassIgnored(t *testing.T) {
	n := Inertial.ToNative(&msgs.Inertial{Mass: 1, FluidAddedMass: []float64{1, 2, 3}})
	assert.Nil(t, n.FluidAddedMass)
	assert.Equal(t, 1.0, n.MassMatrix.Mass)

	w := Inertial.ToWire(gzmath.Inertiald{})
	assert.Nil(t, w.GetFluidAddedMass())
}

func TestSphericalCoordinates_NamedSurfaces(t *testing.T) {
	tests := []struct {
		name       string
		model      msgs.SphericalCoordinates_SurfaceModel
		surface    gzmath.SurfaceType
		equatorial float64
		polar      float64
	}{
		{"earth", msgs.SphericalCoordinates_EARTH_WGS84, gzmath.EarthWGS84, 6378137.0, 6356752.314245},
		{"moon", msgs.SphericalCoordinates_MOON_SCS, gzmath.MoonSCS, 1738100.0, 1736000.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// axes on the wire are ignored for a named surface
			n := SphericalCoordinates.ToNative(&msgs.SphericalCoordinates{
				SurfaceModel:          tt.model,
				LatitudeDeg:           45,
				SurfaceAxisEquatorial: 1,
				SurfaceAxisPolar:      1,
			})
			assert.Equal(t, tt.surface, n.Surface)
			assert.Equal(t, tt.equatorial, n.AxisEquatorial)
			assert.Equal(t, tt.polar, n.AxisPolar)
			assert.Equal(t, 45.0, n.LatitudeDeg)

			w := SphericalCoordinates.ToWire(n)
			assert.Equal(t, tt.model, w.GetSurfaceModel())
			assert.Zero(t, w.GetSurfaceAxisEquatorial())
			assert.Zero(t, w.GetSurfaceAxisPolar())
		})
	}
}

func TestSphericalCoordinates_Custom(t *testing.T) {
	var n gzmath.SphericalCoordinates
	n.SetSurface(gzmath.CustomSurface, 3396190, 3376200)
	n.HeadingDeg = 12

	w := SphericalCoordinates.ToWire(n)
	assert.Equal(t, msgs.SphericalCoordinates_CUSTOM_SURFACE, w.GetSurfaceModel())
	assert.Equal(t, 3396190.0, w.GetSurfaceAxisEquatorial())
	assert.Equal(t, 3376200.0, w.GetSurfaceAxisPolar())
	assert.Equal(t, n, SphericalCoordinates.ToNative(w))
}

func TestTime(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		sec  int64
		nsec int32
	}{
		{"zero", 0, 0, 0},
		{"whole seconds", 3 * time.Second, 3, 0},
		{"fractional", 1500 * time.Millisecond, 1, 500_000_000},
		{"nanoseconds only", 42, 0, 42},
		{"negative fractional", -1500 * time.Millisecond, -1, -500_000_000},
		{"negative whole seconds", -2 * time.Second, -2, 0},
		{"negative below a second", -250 * time.Millisecond, 0, -250_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Time.ToWire(tt.d)
			assert.Equal(t, tt.sec, w.GetSec())
			assert.Equal(t, tt.nsec, w.GetNsec())
			assert.Equal(t, tt.d, Time.ToNative(w))
		})
	}
}

func TestTime_FromWire(t *testing.T) {
	assert.Equal(t, -1500*time.Millisecond, Time.ToNative(&msgs.Time{Sec: -1, Nsec: -500_000_000}))
	// mixed signs are summed as given
	assert.Equal(t, -500*time.Millisecond, Time.ToNative(&msgs.Time{Sec: -1, Nsec: 500_000_000}))
}

func TestScalars(t *testing.T) {
	assert.Equal(t, "hello", String.ToNative(String.ToWire("hello")))
	assert.True(t, Bool.ToNative(Bool.ToWire(true)))
	assert.Equal(t, int32(math.MinInt32), Int32.ToNative(Int32.ToWire(math.MinInt32)))
	assert.Equal(t, uint32(math.MaxUint32), UInt32.ToNative(UInt32.ToWire(math.MaxUint32)))
	assert.Equal(t, int64(-7), Int64.ToNative(Int64.ToWire(-7)))
	assert.Equal(t, uint64(math.MaxUint64), UInt64.ToNative(UInt64.ToWire(math.MaxUint64)))
	assert.Equal(t, float32(1.25), Float32.ToNative(Float32.ToWire(1.25)))
	assert.Equal(t, 2.5, Float64.ToNative(Float64.ToWire(2.5)))

	assert.True(t, proto.Equal(&msgs.StringMsg{Data: "x"}, String.ToWire("x")))
}

func TestGeometryType(t *testing.T) {
	names := []string{"box", "capsule", "cylinder", "ellipsoid", "sphere", "plane", "image", "heightmap", "mesh", "polyline"}
	for _, name := range names {
		gt, ok := GeometryTypeFromString(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, GeometryTypeString(gt))
	}

	gt, ok := GeometryTypeFromString("dodecahedron")
	assert.False(t, ok)
	assert.Equal(t, msgs.Geometry_BOX, gt)

	assert.Equal(t, "unknown", GeometryTypeString(msgs.Geometry_TRIANGLE_FAN))
	assert.Equal(t, "unknown", GeometryTypeString(msgs.Geometry_Type(99)))
}

func TestJointType(t *testing.T) {
	jt, ok := JointTypeFromString("prismatic")
	assert.True(t, ok)
	assert.Equal(t, msgs.Joint_PRISMATIC, jt)
	assert.Equal(t, "continuous", JointTypeString(msgs.Joint_CONTINUOUS))

	jt, ok = JointTypeFromString("hinge")
	assert.False(t, ok)
	assert.Equal(t, msgs.Joint_REVOLUTE, jt)
	assert.Equal(t, "unknown", JointTypeString(msgs.Joint_Type(-1)))
}

func TestShaderType(t *testing.T) {
	for _, name := range []string{"vertex", "pixel", "normal_map_object_space", "normal_map_tangent_space"} {
		st, ok := ShaderTypeFromString(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, ShaderTypeString(st))
	}

	st, ok := ShaderTypeFromString("geometry")
	assert.False(t, ok)
	assert.Equal(t, msgs.Material_VERTEX, st)
	assert.Equal(t, "unknown", ShaderTypeString(msgs.Material_ShaderType(12)))
}

func TestPixelFormatType(t *testing.T) {
	pf, ok := PixelFormatTypeFromString("RGB_INT8")
	assert.True(t, ok)
	assert.Equal(t, msgs.PixelFormatType_RGB_INT8, pf)
	assert.Equal(t, "BAYER_GRBG8", PixelFormatTypeString(msgs.PixelFormatType_BAYER_GRBG8))

	pf, ok = PixelFormatTypeFromString("YUV420")
	assert.False(t, ok)
	assert.Equal(t, msgs.PixelFormatType_UNKNOWN_PIXEL_FORMAT, pf)
	assert.Equal(t, "UNKNOWN_PIXEL_FORMAT", PixelFormatTypeString(msgs.PixelFormatType(200)))
}

func TestDiscoveryType(t *testing.T) {
	dt, ok := DiscoveryTypeFromString("SUBSCRIBERS_REP")
	assert.True(t, ok)
	assert.Equal(t, msgs.Discovery_SUBSCRIBERS_REP, dt)
	assert.Equal(t, "HEARTBEAT", DiscoveryTypeString(msgs.Discovery_HEARTBEAT))

	dt, ok = DiscoveryTypeFromString("advertise")
	assert.False(t, ok)
	assert.Equal(t, msgs.Discovery_UNINITIALIZED, dt)
	assert.Equal(t, "UNINITIALIZED", DiscoveryTypeString(msgs.Discovery_Type(42)))
}

func TestCoordinateType(t *testing.T) {
	for _, ct := range []gzmath.CoordinateType{gzmath.Spherical, gzmath.ECEF, gzmath.Global, gzmath.Local, gzmath.Local2} {
		assert.Equal(t, ct, CoordinateTypeFromWire(CoordinateTypeToWire(ct)))
	}
	assert.Equal(t, msgs.SphericalCoordinatesType_ECEF, CoordinateTypeToWire(gzmath.ECEF))
	assert.Equal(t, msgs.SphericalCoordinatesType_LOCAL2, CoordinateTypeToWire(gzmath.CoordinateType(9)))
	assert.Equal(t, gzmath.Local2, CoordinateTypeFromWire(msgs.SphericalCoordinatesType(9)))
}

func TestPairs_Unique(t *testing.T) {
	seen := make(map[[2]reflect.Type]string)
	for _, p := range Pairs() {
		key := [2]reflect.Type{p.Wire, p.Native}
		if prev, dup := seen[key]; dup {
			t.Fatalf("pair %v/%v registered twice (%s and %s)", p.Wire, p.Native, prev, p.Name)
		}
		seen[key] = p.Name
	}
}

func TestFind(t *testing.T) {
	p, err := Find(reflect.TypeFor[msgs.Vector3D](), reflect.TypeFor[gzmath.Vector3d]())
	require.NoError(t, err)
	assert.Equal(t, "Vector3d", p.Name)

	_, err = Find(reflect.TypeFor[msgs.Vector3D](), reflect.TypeFor[gzmath.Vector2d]())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingSpecialization))

	var missing *MissingSpecializationError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, reflect.TypeFor[gzmath.Vector2d](), missing.Native)
}

func TestNativesOf(t *testing.T) {
	natives := NativesOf(reflect.TypeFor[msgs.Inertial]())
	require.Len(t, natives, 2)
	assert.Equal(t, "MassMatrix", natives[0].Name)
	assert.Equal(t, "Inertial", natives[1].Name)

	assert.Empty(t, NativesOf(reflect.TypeFor[msgs.Joint]()))
}
