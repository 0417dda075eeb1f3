// Package convert translates between wire messages and native value types.
//
// A Converter for the ordered pair (W, N) supplies the two in-place
// setters. Codec derives the value-returning conversions from them, so a
// specialization only ever writes SetWire and SetNative:
//
//	w := convert.Vector3d.ToWire(gzmath.Vector3d{X: 1, Y: 2, Z: 3})
//	v := convert.Vector3d.ToNative(w)
//
// Wire messages are always handled by pointer. A nil message converts like
// an empty one.
//
// A type missing either setter does not satisfy Converter[W, N], so an
// incomplete specialization is rejected at compile time.
package convert

// Converter fills a wire message from a native value and back.
type Converter[W, N any] interface {
	SetWire(w *W, n N)
	SetNative(n *N, w *W)
}

// Codec wraps a Converter with the derived conversions.
type Codec[W, N any] struct {
	c Converter[W, N]
}

// For builds the Codec for a converter.
func For[W, N any](c Converter[W, N]) Codec[W, N] {
	return Codec[W, N]{c: c}
}

// SetWire overwrites the fields of w that n carries.
func (k Codec[W, N]) SetWire(w *W, n N) {
	k.c.SetWire(w, n)
}

// SetNative overwrites n with the native form of w.
func (k Codec[W, N]) SetNative(n *N, w *W) {
	k.c.SetNative(n, w)
}

// ToWire returns a new wire message holding n.
func (k Codec[W, N]) ToWire(n N) *W {
	w := new(W)
	k.c.SetWire(w, n)
	return w
}

// ToNative returns the native form of w.
func (k Codec[W, N]) ToNative(w *W) N {
	var n N
	k.c.SetNative(&n, w)
	return n
}

// ToWire converts n with c.
func ToWire[W, N any](c Converter[W, N], n N) *W {
	return For(c).ToWire(n)
}

// ToNative converts w with c.
func ToNative[W, N any](c Converter[W, N], w *W) N {
	return For(c).ToNative(w)
}
