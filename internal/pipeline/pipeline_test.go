package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazebosim/gz-msgs/internal/config"
	"github.com/gazebosim/gz-msgs/internal/exec"
	"github.com/gazebosim/gz-msgs/internal/logger"
	"github.com/gazebosim/gz-msgs/registry"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// newProject lays out a module with two schema files and chdirs into it.
func newProject(t *testing.T) (*Pipeline, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	write(t, "go.mod", "module example.com/robots\n\ngo 1.25\n")
	write(t, "proto/gz/msgs/vector3d.proto", "syntax = \"proto3\";\npackage gz.msgs;\n\nmessage Vector3d\n{\n  double x = 1;\n}\n")
	write(t, "proto/gz/msgs/pose.proto", "syntax = \"proto3\";\npackage gz.msgs;\n\nmessage Pose {\n  Vector3d position = 1;\n}\n")
	write(t, "proto/other/thing.proto", "package other;\nmessage Thing {\n}\n")
	write(t, "msgs/types.pb.go", "package msgs\n\ntype Vector3D struct{}\ntype Pose struct{}\n")

	var out bytes.Buffer
	return New(config.Default(), logger.NewSilentLogger(), &out), &out
}

func TestTable(t *testing.T) {
	p, _ := newProject(t)

	table, err := p.Table(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"gz.msgs.Pose", "gz.msgs.Vector3d"}, table.Keys())
	assert.Equal(t, []string{"gz/msgs/pose.proto", "gz/msgs/vector3d.proto"}, table.Sources)
}

func TestTable_NoSchemas(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.Mkdir("proto", 0o755))

	_, err := New(config.Default(), nil, nil).Table(false)
	assert.ErrorContains(t, err, "no schema files found")
}

func TestTable_Duplicate(t *testing.T) {
	p, _ := newProject(t)
	write(t, "proto/gz/msgs/again.proto", "package gz.msgs;\nmessage Pose {\n")

	_, err := p.Table(false)
	require.Error(t, err)
	assert.True(t, registry.IsDuplicate(err))
	assert.Contains(t, err.Error(), "gz/msgs/again.proto:2")
}

func TestRenderOptions_ImportPath(t *testing.T) {
	p, _ := newProject(t)
	opts := p.RenderOptions()
	assert.Equal(t, "example.com/robots/msgs", opts.ImportPath)
	assert.Equal(t, "msgs", opts.Package)
	assert.Nil(t, opts.CompatNamespace)
}

func TestGenerate(t *testing.T) {
	p, out := newProject(t)
	ctx := context.Background()

	res, err := p.Generate(ctx, GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Messages)
	assert.Equal(t, []string{filepath.Join("msgs", "message_types.gen.go"), filepath.Join("msgs", "register.gen.go")}, res.Written)
	assert.Contains(t, out.String(), "✓ Write msgs/register.gen.go")

	decl, err := os.ReadFile(filepath.Join("msgs", "message_types.gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(decl), `"gz.msgs.Vector3d"`)
	assert.NotContains(t, string(decl), "Thing")

	// second run changes nothing
	res, err = p.Generate(ctx, GenerateOptions{})
	require.NoError(t, err)
	assert.Empty(t, res.Written)
	assert.Len(t, res.Unchanged, 2)

	res, err = p.Generate(ctx, GenerateOptions{Check: true})
	require.NoError(t, err)
	assert.Len(t, res.Unchanged, 2)
}

func TestGenerate_CheckReportsStale(t *testing.T) {
	p, out := newProject(t)
	ctx := context.Background()
	_, err := p.Generate(ctx, GenerateOptions{})
	require.NoError(t, err)

	write(t, "proto/gz/msgs/color.proto", "package gz.msgs;\nmessage Color {\n")
	out.Reset()

	_, err = p.Generate(ctx, GenerateOptions{Check: true, Diff: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStale)

	var stale *StaleError
	require.True(t, errors.As(err, &stale))
	assert.Len(t, stale.Paths, 2)
	assert.Contains(t, out.String(), `gz.msgs.Color`)

	// check never writes
	decl, err := os.ReadFile(filepath.Join("msgs", "message_types.gen.go"))
	require.NoError(t, err)
	assert.NotContains(t, string(decl), "Color")
}

func TestGenerate_RefusesUncompiledTypes(t *testing.T) {
	p, _ := newProject(t)
	write(t, "proto/gz/msgs/color.proto", "package gz.msgs;\nmessage Color {\n")

	_, err := p.Generate(context.Background(), GenerateOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUncompiled)
	assert.Contains(t, err.Error(), "gzmsgs compile")

	var unc *UncompiledError
	require.True(t, errors.As(err, &unc))
	assert.Equal(t, []string{"Color"}, unc.Types)
	assert.Equal(t, "msgs", unc.Dir)

	_, err = os.Stat(filepath.Join("msgs", "register.gen.go"))
	assert.True(t, os.IsNotExist(err))

	write(t, "msgs/color.pb.go", "package msgs\n\ntype (\n\tColor struct{}\n)\n")
	_, err = p.Generate(context.Background(), GenerateOptions{})
	assert.NoError(t, err)
}

func TestGenerate_IgnoresTypesOnlyInTestsAndArtifacts(t *testing.T) {
	p, _ := newProject(t)
	write(t, "proto/gz/msgs/color.proto", "package gz.msgs;\nmessage Color {\n")
	write(t, "msgs/color_test.go", "package msgs\n\ntype Color struct{}\n")
	write(t, "msgs/register.gen.go", "package msgs\n\ntype Color struct{}\n")

	_, err := p.Generate(context.Background(), GenerateOptions{})
	assert.ErrorIs(t, err, ErrUncompiled)
}

func TestGenerate_DryRun(t *testing.T) {
	p, out := newProject(t)

	res, err := p.Generate(context.Background(), GenerateOptions{DryRun: true})
	require.NoError(t, err)
	assert.Empty(t, res.Written)
	assert.Contains(t, out.String(), "[DRY RUN] Write msgs/message_types.gen.go")

	_, err = os.Stat(filepath.Join("msgs", "message_types.gen.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerate_SkipKeepsExisting(t *testing.T) {
	p, _ := newProject(t)
	write(t, "msgs/register.gen.go", "package msgs\n")

	res, err := p.Generate(context.Background(), GenerateOptions{Skip: true})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("msgs", "message_types.gen.go")}, res.Written)
	assert.Equal(t, []string{filepath.Join("msgs", "register.gen.go")}, res.Unchanged)
}

func TestGenerate_Compat(t *testing.T) {
	p, _ := newProject(t)
	p.Config.Compat.Package = "ignition.msgs"

	res, err := p.Generate(context.Background(), GenerateOptions{})
	require.NoError(t, err)
	assert.Len(t, res.Written, 3)

	compat, err := os.ReadFile(filepath.Join("msgs", "compat.gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(compat), `"ignition.msgs.Pose"`)
}

func TestCrossCheck(t *testing.T) {
	p, _ := newProject(t)
	p.Config.Schema.IndexDir = "build"
	write(t, "build/gz_msgs_vector3d.pb_index", "Vector3d\n")
	write(t, "build/gz_msgs_pose.pb_index", "Pose\nPoseStamped\n")
	write(t, "build/other_thing.pb_index", "Thing\n")

	_, err := p.Table(false)
	require.NoError(t, err)

	_, err = p.Table(true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIndexMismatch)
	assert.Contains(t, err.Error(), "PoseStamped")
}

func TestCrossCheck_MissingIndexWarns(t *testing.T) {
	p, _ := newProject(t)
	var logs bytes.Buffer
	p.Log = logger.NewLogger(logger.LevelWarn, &logs)
	p.Config.Schema.IndexDir = "build"

	_, err := p.Table(false)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "no compiler index for schema")
}

func TestCompiler(t *testing.T) {
	p, _ := newProject(t)

	c, err := p.Compiler()
	require.NoError(t, err)
	assert.Equal(t, "protoc", c.Name())

	p.Config.Compiler.Preset = "custom"
	p.Config.Compiler.Command = "gz-protoc"
	p.Config.Compiler.Args = []string{"--out={out}", "{files}"}
	c, err = p.Compiler()
	require.NoError(t, err)

	req, err := p.CompileRequest()
	require.NoError(t, err)
	assert.Equal(t, []string{"proto"}, req.ProtoPaths)
	assert.Len(t, req.Files, 3)

	name, args := c.Command(req)
	assert.Equal(t, "gz-protoc", name)
	assert.Equal(t, "--out=.", args[0])
	assert.Len(t, args, 4)
	assert.Equal(t, "example.com/robots", req.GoModule)
}

func TestCompileRequest_ProtocPlacesByGoPackage(t *testing.T) {
	p, _ := newProject(t)

	c, err := p.Compiler()
	require.NoError(t, err)
	req, err := p.CompileRequest()
	require.NoError(t, err)

	_, args := c.Command(req)
	assert.Contains(t, args, "--go_out=.")
	assert.Contains(t, args, "--go_opt=module=example.com/robots")
	assert.NotContains(t, args, "--go_opt=paths=source_relative")
}

func TestCompile_CommandMissing(t *testing.T) {
	p, _ := newProject(t)
	p.Config.Compiler.Preset = "custom"
	p.Config.Compiler.Command = "gzmsgs-no-such-compiler-xyz"
	p.Config.Compiler.Spinner = false

	err := p.Compile(context.Background(), exec.NewExecutor(&exec.Options{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}))
	assert.ErrorContains(t, err, "not found")
}

func TestRelocate(t *testing.T) {
	p, out := newProject(t)
	p.Config.Relocate.Dir = "msgs"
	write(t, "msgs/gz/msgs/pose.pb.h", "class Pose;\n")
	write(t, "msgs/gz/msgs/pose.gz.h", "#pragma once\n")

	require.NoError(t, p.Relocate(context.Background(), "", "", false))
	assert.Contains(t, out.String(), "Relocate")

	detail, err := os.ReadFile(filepath.Join("msgs", "gz", "msgs", "details", "pose.pb.h"))
	require.NoError(t, err)
	assert.Equal(t, "class Pose;\n", string(detail))

	public, err := os.ReadFile(filepath.Join("msgs", "gz", "msgs", "pose.pb.h"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(public), "// "+p.Config.Relocate.Marker))

	// explicit pair, already installed
	require.NoError(t, p.Relocate(context.Background(),
		filepath.Join("msgs", "gz", "msgs", "pose.pb.h"),
		filepath.Join("msgs", "gz", "msgs", "pose.gz.h"), false))
}

func TestRelocate_DisabledByDefault(t *testing.T) {
	p, _ := newProject(t)
	write(t, "msgs/gz/msgs/pose.pb.h", "class Pose;\n")
	write(t, "msgs/gz/msgs/pose.gz.h", "#pragma once\n")

	err := p.Relocate(context.Background(), "", "", false)
	require.ErrorIs(t, err, ErrRelocateDisabled)
	assert.Contains(t, err.Error(), "relocate.dir")
	assert.Contains(t, err.Error(), ".pb.h")

	// nothing moved
	_, err = os.Stat(filepath.Join("msgs", "gz", "msgs", "details", "pose.pb.h"))
	assert.True(t, os.IsNotExist(err))
}

func TestRelocate_ConfiguredSuffixes(t *testing.T) {
	p, _ := newProject(t)
	p.Config.Relocate.Dir = "include"
	p.Config.Relocate.Primary = ".pb.hh"
	p.Config.Relocate.Extension = ".ext.hh"
	write(t, "include/gz/msgs/pose.pb.hh", "class Pose;\n")
	write(t, "include/gz/msgs/pose.ext.hh", "#pragma once\n")
	write(t, "include/gz/msgs/color.pb.h", "class Color;\n")
	write(t, "include/gz/msgs/color.gz.h", "#pragma once\n")

	require.NoError(t, p.Relocate(context.Background(), "", "", false))

	_, err := os.Stat(filepath.Join("include", "gz", "msgs", "details", "pose.pb.hh"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join("include", "gz", "msgs", "details", "color.pb.h"))
	assert.True(t, os.IsNotExist(err))
}

func TestRelocate_NothingFound(t *testing.T) {
	p, out := newProject(t)
	p.Config.Relocate.Dir = "msgs"
	require.NoError(t, os.MkdirAll("msgs", 0o755))
	require.NoError(t, p.Relocate(context.Background(), "", "", false))
	assert.Empty(t, out.String())
}

func TestWatch(t *testing.T) {
	p, _ := newProject(t)

	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- p.Watch(ctx, 20*time.Millisecond, func(context.Context) error {
			runs.Add(1)
			return nil
		})
	}()

	require.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	write(t, "proto/gz/msgs/color.proto", "package gz.msgs;\nmessage Color {\n")
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestDescriptors(t *testing.T) {
	t.Chdir(t.TempDir())
	write(t, "proto/gz/msgs/vector3d.proto", "syntax = \"proto3\";\npackage gz.msgs;\n\nmessage Vector3d {\n  double x = 1;\n  double y = 2;\n}\n")
	write(t, "proto/gz/msgs/pose.proto", "syntax = \"proto3\";\npackage gz.msgs;\nimport \"gz/msgs/vector3d.proto\";\n\nmessage Pose {\n  string name = 1;\n  Vector3d position = 2;\n}\n")
	p := New(config.Default(), nil, nil)

	files, err := p.Descriptors(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 2)

	r := registry.New()
	require.NoError(t, r.AddFiles(files...))
	assert.Equal(t, []string{"gz.msgs.Pose", "gz.msgs.Vector3d"}, r.Types())

	msg, err := r.CreateFromText("gz.msgs.Pose", `name: "base" position: {x: 1 y: 2}`)
	require.NoError(t, err)
	md := msg.ProtoReflect().Descriptor()
	assert.Equal(t, "gz/msgs/pose.proto", md.ParentFile().Path())
	assert.Equal(t, "gz.msgs.Vector3d", string(md.Fields().ByName("position").Message().FullName()))
}

func TestDescriptors_SyntaxError(t *testing.T) {
	t.Chdir(t.TempDir())
	write(t, "proto/gz/msgs/broken.proto", "syntax = \"proto3\";\npackage gz.msgs;\nmessage Broken {\n  double = 1;\n}\n")

	_, err := New(config.Default(), nil, nil).Descriptors(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.proto")
}
