package convert

import (
	"github.com/gazebosim/gz-msgs/gzmath"
	"github.com/gazebosim/gz-msgs/msgs"
)

var geometryTypeNames = map[msgs.Geometry_Type]string{
	msgs.Geometry_BOX:       "box",
	msgs.Geometry_CAPSULE:   "capsule",
	msgs.Geometry_CYLINDER:  "cylinder",
	msgs.Geometry_ELLIPSOID: "ellipsoid",
	msgs.Geometry_SPHERE:    "sphere",
	msgs.Geometry_PLANE:     "plane",
	msgs.Geometry_IMAGE:     "image",
	msgs.Geometry_HEIGHTMAP: "heightmap",
	msgs.Geometry_MESH:      "mesh",
	msgs.Geometry_POLYLINE:  "polyline",
}

var geometryTypesByName = invert(geometryTypeNames)

// GeometryTypeFromString maps a shape name such as "sphere" to its enum.
// Unrecognized names map to Geometry_BOX and report ok=false.
func GeometryTypeFromString(s string) (t msgs.Geometry_Type, ok bool) {
	t, ok = geometryTypesByName[s]
	if !ok {
		return msgs.Geometry_BOX, false
	}
	return t, true
}

// GeometryTypeString maps a geometry enum to its shape name. Values with
// no name, including the triangle fan and line strip, map to "unknown".
func GeometryTypeString(t msgs.Geometry_Type) string {
	if s, ok := geometryTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

var jointTypeNames = map[msgs.Joint_Type]string{
	msgs.Joint_REVOLUTE:   "revolute",
	msgs.Joint_REVOLUTE2:  "revolute2",
	msgs.Joint_PRISMATIC:  "prismatic",
	msgs.Joint_UNIVERSAL:  "universal",
	msgs.Joint_BALL:       "ball",
	msgs.Joint_SCREW:      "screw",
	msgs.Joint_GEARBOX:    "gearbox",
	msgs.Joint_FIXED:      "fixed",
	msgs.Joint_CONTINUOUS: "continuous",
}

var jointTypesByName = invert(jointTypeNames)

// JointTypeFromString maps a joint name such as "prismatic" to its enum.
// Unrecognized names map to Joint_REVOLUTE and report ok=false.
func JointTypeFromString(s string) (t msgs.Joint_Type, ok bool) {
	t, ok = jointTypesByName[s]
	if !ok {
		return msgs.Joint_REVOLUTE, false
	}
	return t, true
}

// JointTypeString maps a joint enum to its name, or "unknown".
func JointTypeString(t msgs.Joint_Type) string {
	if s, ok := jointTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

var shaderTypeNames = map[msgs.Material_ShaderType]string{
	msgs.Material_VERTEX:                   "vertex",
	msgs.Material_PIXEL:                    "pixel",
	msgs.Material_NORMAL_MAP_OBJECT_SPACE:  "normal_map_object_space",
	msgs.Material_NORMAL_MAP_TANGENT_SPACE: "normal_map_tangent_space",
}

var shaderTypesByName = invert(shaderTypeNames)

// ShaderTypeFromString maps a shader name such as "pixel" to its enum.
// Unrecognized names map to Material_VERTEX and report ok=false.
func ShaderTypeFromString(s string) (t msgs.Material_ShaderType, ok bool) {
	t, ok = shaderTypesByName[s]
	if !ok {
		return msgs.Material_VERTEX, false
	}
	return t, true
}

// ShaderTypeString maps a shader enum to its name, or "unknown".
func ShaderTypeString(t msgs.Material_ShaderType) string {
	if s, ok := shaderTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

// PixelFormatTypeFromString maps an enum name such as "RGB_INT8" to its
// value. Unrecognized names map to UNKNOWN_PIXEL_FORMAT.
func PixelFormatTypeFromString(s string) (t msgs.PixelFormatType, ok bool) {
	v, ok := msgs.PixelFormatType_value[s]
	if !ok {
		return msgs.PixelFormatType_UNKNOWN_PIXEL_FORMAT, false
	}
	return msgs.PixelFormatType(v), true
}

// PixelFormatTypeString returns the enum name, or "UNKNOWN_PIXEL_FORMAT"
// for values outside the enum.
func PixelFormatTypeString(t msgs.PixelFormatType) string {
	if s, ok := msgs.PixelFormatType_name[int32(t)]; ok {
		return s
	}
	return msgs.PixelFormatType_UNKNOWN_PIXEL_FORMAT.String()
}

// DiscoveryTypeFromString maps an enum name such as "ADVERTISE" to its
// value. Unrecognized names map to UNINITIALIZED.
func DiscoveryTypeFromString(s string) (t msgs.Discovery_Type, ok bool) {
	v, ok := msgs.Discovery_Type_value[s]
	if !ok {
		return msgs.Discovery_UNINITIALIZED, false
	}
	return msgs.Discovery_Type(v), true
}

// DiscoveryTypeString returns the enum name, or "UNINITIALIZED" for values
// outside the enum.
func DiscoveryTypeString(t msgs.Discovery_Type) string {
	if s, ok := msgs.Discovery_Type_name[int32(t)]; ok {
		return s
	}
	return msgs.Discovery_UNINITIALIZED.String()
}

var coordinateTypes = map[gzmath.CoordinateType]msgs.SphericalCoordinatesType{
	gzmath.Spherical: msgs.SphericalCoordinatesType_SPHERICAL,
	gzmath.ECEF:      msgs.SphericalCoordinatesType_ECEF,
	gzmath.Global:    msgs.SphericalCoordinatesType_GLOBAL,
	gzmath.Local:     msgs.SphericalCoordinatesType_LOCAL,
	gzmath.Local2:    msgs.SphericalCoordinatesType_LOCAL2,
}

var coordinateTypesByWire = invert(coordinateTypes)

// CoordinateTypeToWire maps a native coordinate frame to its enum. Unknown
// frames map to LOCAL2.
func CoordinateTypeToWire(t gzmath.CoordinateType) msgs.SphericalCoordinatesType {
	if w, ok := coordinateTypes[t]; ok {
		return w
	}
	return msgs.SphericalCoordinatesType_LOCAL2
}

// CoordinateTypeFromWire maps a wire coordinate frame to its native value.
// Unknown values map to Local2.
func CoordinateTypeFromWire(t msgs.SphericalCoordinatesType) gzmath.CoordinateType {
	if n, ok := coordinateTypesByWire[t]; ok {
		return n
	}
	return gzmath.Local2
}

func invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
