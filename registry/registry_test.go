package registry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func newString() Message { return new(wrapperspb.StringValue) }
func newVector() Message { return new(wrapperspb.DoubleValue) }

func TestRegistry_CreateRegistered(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("gz.msgs.Vector3d", newVector))

	msg, err := r.Create("gz.msgs.Vector3d")
	require.NoError(t, err)
	assert.IsType(t, &wrapperspb.DoubleValue{}, msg)
	assert.Zero(t, msg.(*wrapperspb.DoubleValue).GetValue())
}

func TestRegistry_ZeroValueIsUsable(t *testing.T) {
	var r Registry

	assert.Empty(t, r.Types())
	assert.Zero(t, r.Len())
	assert.False(t, r.Lookup("gz.msgs.Vector3d"))

	_, err := r.Create("gz.msgs.Vector3d")
	assert.True(t, IsNotFound(err))

	require.NoError(t, r.Register("gz.msgs.Vector3d", newVector))
	msg, err := r.Create("gz.msgs.Vector3d")
	require.NoError(t, err)
	assert.IsType(t, &wrapperspb.DoubleValue{}, msg)
	assert.Equal(t, []string{"gz.msgs.Vector3d"}, r.Types())
}

func TestRegistry_CreateReturnsFreshInstances(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("gz.msgs.StringMsg", newString))

	first, err := r.Create("gz.msgs.StringMsg")
	require.NoError(t, err)
	first.(*wrapperspb.StringValue).Value = "changed"

	second, err := r.Create("gz.msgs.StringMsg")
	require.NoError(t, err)
	assert.Empty(t, second.(*wrapperspb.StringValue).GetValue())
	assert.NotSame(t, first, second)
}

func TestRegistry_NotFound(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("gz.msgs.Vector3d", newVector))

	tests := []struct {
		name string
		key  string
	}{
		{"unknown type", "gz.msgs.DoesNotExist"},
		{"case differs", "gz.msgs.vector3d"},
		{"unqualified name", "Vector3d"},
		{"empty key", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := r.Create(tt.key)
			require.Error(t, err)
			assert.Nil(t, msg)
			assert.True(t, errors.Is(err, ErrNotFound))
			assert.True(t, IsNotFound(err))

			var nf *NotFoundError
			require.ErrorAs(t, err, &nf)
			assert.Equal(t, tt.key, nf.Key)
		})
	}
}

func TestRegistry_DuplicateKeepsFirst(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("gz.msgs.Thing", newString))

	err := r.Register("gz.msgs.Thing", newVector)
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))
	assert.Contains(t, err.Error(), "gz.msgs.Thing")

	msg, err := r.Create("gz.msgs.Thing")
	require.NoError(t, err)
	assert.IsType(t, &wrapperspb.StringValue{}, msg)
}

func TestRegistry_RejectsInvalidRegistration(t *testing.T) {
	r := New()
	assert.Error(t, r.Register("", newString))
	assert.Error(t, r.Register("gz.msgs.Nil", nil))
	assert.Zero(t, r.Len())
}

func TestRegistry_TypesSorted(t *testing.T) {
	r := New()
	n, err := r.RegisterEntries([]Entry{
		{Key: "gz.msgs.Vector3d", New: newVector},
		{Key: "gz.msgs.Boolean", New: newString},
		{Key: "gz.msgs.StringMsg", New: newString},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, []string{"gz.msgs.Boolean", "gz.msgs.StringMsg", "gz.msgs.Vector3d"}, r.Types())
	assert.True(t, r.Lookup("gz.msgs.Boolean"))
	assert.False(t, r.Lookup("gz.msgs.Missing"))
}

func TestRegistry_RegisterEntriesStopsAtDuplicate(t *testing.T) {
	r := New()
	n, err := r.RegisterEntries([]Entry{
		{Key: "a.A", New: newString},
		{Key: "a.A", New: newString},
		{Key: "a.B", New: newString},
	})
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, r.Lookup("a.B"))
}

func TestRegistry_CreateFromText(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("gz.msgs.Vector3d", newVector))

	msg, err := r.CreateFromText("gz.msgs.Vector3d", "value: 1.5")
	require.NoError(t, err)
	assert.True(t, proto.Equal(wrapperspb.Double(1.5), msg))

	_, err = r.CreateFromText("gz.msgs.Vector3d", "value: [not a number")
	assert.Error(t, err)

	_, err = r.CreateFromText("gz.msgs.Vector3d", "nope: 1")
	assert.Error(t, err)

	_, err = r.CreateFromText("gz.msgs.Missing", "value: 1")
	assert.True(t, IsNotFound(err))
}

func TestRegistry_EncodeDecode(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("gz.msgs.Vector3d", newVector))

	data, err := Encode(wrapperspb.Double(-2.5))
	require.NoError(t, err)

	msg, err := r.Decode("gz.msgs.Vector3d", data)
	require.NoError(t, err)
	assert.True(t, proto.Equal(wrapperspb.Double(-2.5), msg))

	_, err = r.Decode("gz.msgs.Vector3d", []byte{0xff, 0xff})
	assert.Error(t, err)

	_, err = Encode(nil)
	assert.Error(t, err)
}

func TestCreateAs(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("gz.msgs.Vector3d", newVector))

	v, err := CreateAs[*wrapperspb.DoubleValue](r, "gz.msgs.Vector3d")
	require.NoError(t, err)
	assert.NotNil(t, v)

	_, err = CreateAs[*wrapperspb.StringValue](r, "gz.msgs.Vector3d")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestRegistry_ConcurrentReadsDuringRegistration(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("gz.msgs.Base", newString))

	var g errgroup.Group
	for i := range 8 {
		g.Go(func() error {
			return r.Register(fmt.Sprintf("gz.msgs.Type%d", i), newVector)
		})
	}
	for range 32 {
		g.Go(func() error {
			msg, err := r.Create("gz.msgs.Base")
			if err != nil {
				return err
			}
			if msg == nil {
				return errors.New("nil message")
			}
			_ = r.Types()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 9, r.Len())
}
