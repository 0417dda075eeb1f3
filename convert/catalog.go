package convert

import (
	"errors"
	"fmt"
	"reflect"

	"google.golang.org/protobuf/proto"
)

// ErrMissingSpecialization is returned when no converter exists for a pair.
var ErrMissingSpecialization = errors.New("convert: missing specialization")

// MissingSpecializationError names the pair that has no converter.
type MissingSpecializationError struct {
	Wire   reflect.Type
	Native reflect.Type
}

// Error returns the error string.
func (e *MissingSpecializationError) Error() string {
	return fmt.Sprintf("convert: no converter between %v and %v", e.Wire, e.Native)
}

// Is reports whether the target error matches MissingSpecializationError.
func (e *MissingSpecializationError) Is(err error) bool {
	return err == ErrMissingSpecialization
}

// Pair describes one registered specialization. Wire is the message struct
// type; conversions take and return pointers to it.
type Pair struct {
	Name   string
	Wire   reflect.Type
	Native reflect.Type

	toNative func(proto.Message) (any, error)
	toWire   func(any) (proto.Message, error)
}

// ToNative converts a wire message of the pair's type.
func (p Pair) ToNative(m proto.Message) (any, error) { return p.toNative(m) }

// ToWire converts a native value of the pair's type.
func (p Pair) ToWire(v any) (proto.Message, error) { return p.toWire(v) }

func pair[W any, N any, PW interface {
	*W
	proto.Message
}](name string, c Codec[W, N]) Pair {
	p := Pair{
		Name:   name,
		Wire:   reflect.TypeFor[W](),
		Native: reflect.TypeFor[N](),
	}
	p.toNative = func(m proto.Message) (any, error) {
		w, ok := m.(PW)
		if !ok {
			return nil, fmt.Errorf("convert: %s: got %T, want %v", name, m, reflect.PointerTo(p.Wire))
		}
		return c.ToNative(w), nil
	}
	p.toWire = func(v any) (proto.Message, error) {
		n, ok := v.(N)
		if !ok {
			return nil, fmt.Errorf("convert: %s: got %T, want %v", name, v, p.Native)
		}
		return PW(c.ToWire(n)), nil
	}
	return p
}

// Pairs lists every specialization this package provides.
func Pairs() []Pair {
	return []Pair{
		pair("Vector2d", Vector2d),
		pair("Vector3d", Vector3d),
		pair("Quaternion", Quaternion),
		pair("Pose", Pose),
		pair("Color", Color),
		pair("Plane", Plane),
		pair("AxisAlignedBox", AxisAlignedBox),
		pair("MassMatrix", MassMatrix),
		pair("Inertial", Inertial),
		pair("SphericalCoordinates", SphericalCoordinates),
		pair("Time", Time),
		pair("String", String),
		pair("Bool", Bool),
		pair("Int32", Int32),
		pair("UInt32", UInt32),
		pair("Int64", Int64),
		pair("UInt64", UInt64),
		pair("Float32", Float32),
		pair("Float64", Float64),
	}
}

// Find returns the specialization for an exact (wire, native) pair.
func Find(wire, native reflect.Type) (Pair, error) {
	for _, p := range Pairs() {
		if p.Wire == wire && p.Native == native {
			return p, nil
		}
	}
	return Pair{}, &MissingSpecializationError{Wire: wire, Native: native}
}

// NativesOf returns every specialization whose wire side is wire.
func NativesOf(wire reflect.Type) []Pair {
	var out []Pair
	for _, p := range Pairs() {
		if p.Wire == wire {
			out = append(out, p)
		}
	}
	return out
}
