package relocate

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazebosim/gz-msgs/internal/generator"
)

const compilerOutput = "// Generated by the protocol buffer compiler.\nclass Vector3d;\n"

func setup(t *testing.T) (string, Plan) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "gz", "msgs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	p := Plan{
		Primary:   filepath.Join(dir, "vector3d.pb.h"),
		Extension: filepath.Join(dir, "vector3d.gz.h"),
	}
	require.NoError(t, os.WriteFile(p.Primary, []byte(compilerOutput), 0o644))
	require.NoError(t, os.WriteFile(p.Extension, []byte("#pragma once\n"), 0o644))
	return dir, p
}

func read(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

const wantPublic = "// " + DefaultMarker + "\n" +
	"#include \"details/vector3d.pb.h\"\n" +
	"#include \"vector3d.gz.h\"\n"

func TestRelocate(t *testing.T) {
	dir, p := setup(t)

	require.NoError(t, Relocate(context.Background(), p))

	assert.Equal(t, compilerOutput, read(t, filepath.Join(dir, "details", "vector3d.pb.h")))
	assert.Equal(t, wantPublic, read(t, p.Primary))
	assert.Equal(t, "#pragma once\n", read(t, p.Extension))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".relocate-", "temp file left behind")
	}
}

func TestRelocate_Idempotent(t *testing.T) {
	dir, p := setup(t)
	require.NoError(t, Relocate(context.Background(), p))
	require.NoError(t, Relocate(context.Background(), p))

	assert.Equal(t, compilerOutput, read(t, filepath.Join(dir, "details", "vector3d.pb.h")))
	assert.Equal(t, wantPublic, read(t, p.Primary))
}

func TestRelocate_ReplacesStaleDetail(t *testing.T) {
	dir, p := setup(t)
	detail := filepath.Join(dir, "details", "vector3d.pb.h")
	require.NoError(t, os.MkdirAll(filepath.Dir(detail), 0o755))
	require.NoError(t, os.WriteFile(detail, []byte("old compiler output\n"), 0o644))

	require.NoError(t, Relocate(context.Background(), p))
	assert.Equal(t, compilerOutput, read(t, detail))
}

func TestRelocate_RecoversInterruptedRun(t *testing.T) {
	dir, p := setup(t)
	detail := filepath.Join(dir, "details", "vector3d.pb.h")
	require.NoError(t, os.MkdirAll(filepath.Dir(detail), 0o755))
	require.NoError(t, os.Rename(p.Primary, detail))

	state, err := p.Inspect()
	require.NoError(t, err)
	assert.Equal(t, Interrupted, state)

	require.NoError(t, Relocate(context.Background(), p))
	assert.Equal(t, compilerOutput, read(t, detail))
	assert.Equal(t, wantPublic, read(t, p.Primary))
}

func TestRelocate_Missing(t *testing.T) {
	_, p := setup(t)
	require.NoError(t, os.Remove(p.Primary))

	err := Relocate(context.Background(), p)
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrArtifactIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var ioErr *generator.ArtifactIOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, p.Primary, ioErr.Path)
}

func TestRelocate_MissingExtensionLeavesPrimary(t *testing.T) {
	_, p := setup(t)
	require.NoError(t, os.Remove(p.Extension))

	err := Relocate(context.Background(), p)
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrArtifactIO)
	assert.Equal(t, compilerOutput, read(t, p.Primary))
}

func TestRelocate_Cancelled(t *testing.T) {
	_, p := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, Relocate(ctx, p), context.Canceled)
	assert.Equal(t, compilerOutput, read(t, p.Primary))
}

func TestCompose_CustomFormat(t *testing.T) {
	p := Plan{
		Primary:       filepath.Join("out", "gz", "msgs", "pose.pb.h"),
		Extension:     filepath.Join("ext", "pose.gz.h"),
		DetailDir:     "impl",
		IncludeFormat: "#include <%s>",
		CommentPrefix: "///",
		Marker:        "public",
	}
	got, err := p.Compose()
	require.NoError(t, err)
	assert.Equal(t, "/// public\n#include <impl/pose.pb.h>\n#include <../../../ext/pose.gz.h>\n", string(got))
	assert.Equal(t, filepath.Join("out", "gz", "msgs", "impl", "pose.pb.h"), p.Detail())
}

func TestOp(t *testing.T) {
	dir, p := setup(t)
	op := NewOp(p)

	require.NoError(t, op.Validate(context.Background(), false))
	assert.Equal(t, []string{p.Primary, filepath.Join(dir, "details", "vector3d.pb.h")}, op.Paths())
	assert.Contains(t, op.Description(), "Relocate")

	var out bytes.Buffer
	require.NoError(t, generator.Execute(context.Background(), []generator.Operation{op}, generator.ExecuteOptions{Writer: &out}))
	assert.Equal(t, wantPublic, read(t, p.Primary))
	assert.Contains(t, out.String(), "✓ Relocate")
}

func TestOp_DryRunTouchesNothing(t *testing.T) {
	_, p := setup(t)

	var out bytes.Buffer
	err := generator.Execute(context.Background(), []generator.Operation{NewOp(p)}, generator.ExecuteOptions{DryRun: true, Writer: &out})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[DRY RUN] Relocate")
	assert.Equal(t, compilerOutput, read(t, p.Primary))
}

func TestOp_Validate(t *testing.T) {
	_, p := setup(t)

	assert.Error(t, NewOp(Plan{Primary: p.Primary}).Validate(context.Background(), false))
	assert.Error(t, NewOp(Plan{Primary: p.Primary, Extension: p.Primary}).Validate(context.Background(), false))

	require.NoError(t, os.Remove(p.Primary))
	assert.ErrorContains(t, NewOp(p).Validate(context.Background(), false), "nothing to relocate")
}

func TestOp_RollbackRestoresFiles(t *testing.T) {
	dir, p := setup(t)

	ops := []generator.Operation{NewOp(p), failingOp{}}
	err := generator.Execute(context.Background(), ops, generator.ExecuteOptions{Force: true, Writer: &bytes.Buffer{}})
	require.Error(t, err)

	assert.Equal(t, compilerOutput, read(t, p.Primary))
	_, statErr := os.Stat(filepath.Join(dir, "details", "vector3d.pb.h"))
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
}

type failingOp struct{}

func (failingOp) Validate(context.Context, bool) error { return nil }
func (failingOp) Execute(context.Context) error        { return errors.New("disk full") }
func (failingOp) Description() string                  { return "fail" }

func TestDiscover(t *testing.T) {
	dir, p := setup(t)
	// extension without compiler output
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orphan.gz.h"), nil, 0o644))
	root := filepath.Dir(filepath.Dir(dir))

	plans, err := Discover(root, DefaultSuffixes, Plan{Marker: "m"})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, p.Primary, plans[0].Primary)
	assert.Equal(t, p.Extension, plans[0].Extension)
	assert.Equal(t, "m", plans[0].Marker)

	require.NoError(t, generator.Execute(context.Background(), Ops(plans), generator.ExecuteOptions{Writer: &bytes.Buffer{}}))

	// the relocated copy under details/ is not picked up again
	plans, err = Discover(root, DefaultSuffixes, Plan{Marker: "m"})
	require.NoError(t, err)
	require.Len(t, plans, 1)
}
