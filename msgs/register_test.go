package msgs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/gazebosim/gz-msgs/internal/config"
	"github.com/gazebosim/gz-msgs/internal/generator"
	"github.com/gazebosim/gz-msgs/internal/logger"
	"github.com/gazebosim/gz-msgs/internal/pipeline"
	"github.com/gazebosim/gz-msgs/registry"
)

func TestRegisterAll(t *testing.T) {
	r := registry.New()
	n, err := RegisterAll(r)
	require.NoError(t, err)
	assert.Equal(t, len(MessageTypes()), n)
	assert.Equal(t, MessageTypes(), r.Types())

	for _, key := range MessageTypes() {
		msg, err := r.Create(key)
		require.NoError(t, err, key)
		assert.Equal(t, key, string(msg.ProtoReflect().Descriptor().FullName()))
	}

	_, err = RegisterAll(r)
	assert.True(t, registry.IsDuplicate(err))
}

func TestInitDefault(t *testing.T) {
	n, err := InitDefault()
	require.NoError(t, err)
	assert.Equal(t, 24, n)

	again, err := InitDefault()
	require.NoError(t, err)
	assert.Equal(t, n, again)

	msg, err := registry.Create("gz.msgs.Vector3d")
	require.NoError(t, err)
	assert.IsType(t, &Vector3D{}, msg)
}

func TestCreateFromText(t *testing.T) {
	r := registry.New()
	_, err := RegisterAll(r)
	require.NoError(t, err)

	msg, err := r.CreateFromText("gz.msgs.Pose", `name: "base" position: {x: 1 y: 2 z: 3}`)
	require.NoError(t, err)
	pose := msg.(*Pose)
	assert.Equal(t, "base", pose.GetName())
	assert.Equal(t, 2.0, pose.GetPosition().GetY())

	_, err = r.CreateFromText("gz.msgs.Pose", "position: {w: 1}")
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	r := registry.New()
	_, err := RegisterAll(r)
	require.NoError(t, err)

	in := &Inertial{
		Mass:           2.5,
		Pose:           &Pose{Position: &Vector3D{X: 1}},
		Ixx:            1,
		FluidAddedMass: []float64{1, 2, 3},
	}
	data, err := registry.Encode(in)
	require.NoError(t, err)

	out, err := r.Decode("gz.msgs.Inertial", data)
	require.NoError(t, err)
	assert.True(t, proto.Equal(in, out))
}

func TestString(t *testing.T) {
	s := (&Vector3D{X: 1.5, Z: -2}).String()
	assert.Contains(t, s, "x:")
	assert.Contains(t, s, "1.5")
	assert.Contains(t, s, "z:")
	assert.NotContains(t, s, "y:")

	nested := (&Geometry{Type: Geometry_SPHERE, Plane: &PlaneGeom{D: 2}}).String()
	assert.Contains(t, nested, "SPHERE")
	assert.Contains(t, nested, "plane")
	assert.Contains(t, nested, "d:")
}

func TestArtifactsMatchSchemas(t *testing.T) {
	t.Chdir("..")

	p := pipeline.New(config.Default(), logger.NewSilentLogger(), nil)
	table, err := p.Table(false)
	require.NoError(t, err)
	assert.Equal(t, MessageTypes(), table.Keys())

	artifacts, err := p.Artifacts(table)
	require.NoError(t, err)
	stale, err := generator.Stale(artifacts)
	require.NoError(t, err)
	for _, a := range stale {
		t.Errorf("%s differs from a fresh render; run go generate ./msgs", a.Path)
	}

	assert.NoError(t, p.CheckCompiled(table, artifacts))
}
