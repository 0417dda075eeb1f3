package convert

import (
	"time"

	"github.com/gazebosim/gz-msgs/msgs"
)

// Standard type codecs.
var (
	Time    = For[msgs.Time, time.Duration](timeConverter{})
	String  = For[msgs.StringMsg, string](stringConverter{})
	Bool    = For[msgs.Boolean, bool](boolConverter{})
	Int32   = For[msgs.Int32, int32](int32Converter{})
	UInt32  = For[msgs.UInt32, uint32](uint32Converter{})
	Int64   = For[msgs.Int64, int64](int64Converter{})
	UInt64  = For[msgs.UInt64, uint64](uint64Converter{})
	Float32 = For[msgs.Float, float32](float32Converter{})
	Float64 = For[msgs.Double, float64](float64Converter{})
)

// timeConverter splits a duration into whole seconds and the remainder.
// Both parts carry the sign of the duration, so -1.5s is (-1, -500000000).
type timeConverter struct{}

func (timeConverter) SetWire(w *msgs.Time, n time.Duration) {
	w.Sec = int64(n / time.Second)
	w.Nsec = int32(n % time.Second)
}

func (timeConverter) SetNative(n *time.Duration, w *msgs.Time) {
	*n = time.Duration(w.GetSec())*time.Second + time.Duration(w.GetNsec())
}

type stringConverter struct{}

func (stringConverter) SetWire(w *msgs.StringMsg, n string)    { w.Data = n }
func (stringConverter) SetNative(n *string, w *msgs.StringMsg) { *n = w.GetData() }

type boolConverter struct{}

func (boolConverter) SetWire(w *msgs.Boolean, n bool)    { w.Data = n }
func (boolConverter) SetNative(n *bool, w *msgs.Boolean) { *n = w.GetData() }

type int32Converter struct{}

func (int32Converter) SetWire(w *msgs.Int32, n int32)    { w.Data = n }
func (int32Converter) SetNative(n *int32, w *msgs.Int32) { *n = w.GetData() }

type uint32Converter struct{}

func (uint32Converter) SetWire(w *msgs.UInt32, n uint32)    { w.Data = n }
func (uint32Converter) SetNative(n *uint32, w *msgs.UInt32) { *n = w.GetData() }

type int64Converter struct{}

func (int64Converter) SetWire(w *msgs.Int64, n int64)    { w.Data = n }
func (int64Converter) SetNative(n *int64, w *msgs.Int64) { *n = w.GetData() }

type uint64Converter struct{}

func (uint64Converter) SetWire(w *msgs.UInt64, n uint64)    { w.Data = n }
func (uint64Converter) SetNative(n *uint64, w *msgs.UInt64) { *n = w.GetData() }

type float32Converter struct{}

func (float32Converter) SetWire(w *msgs.Float, n float32)    { w.Data = n }
func (float32Converter) SetNative(n *float32, w *msgs.Float) { *n = w.GetData() }

type float64Converter struct{}

func (float64Converter) SetWire(w *msgs.Double, n float64)    { w.Data = n }
func (float64Converter) SetNative(n *float64, w *msgs.Double) { *n = w.GetData() }
