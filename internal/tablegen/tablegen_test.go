package tablegen

import (
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazebosim/gz-msgs/internal/scanner"
	"github.com/gazebosim/gz-msgs/registry"
)

func loc(path string, line int, name string, pkg ...string) scanner.Located {
	return scanner.Located{
		MessageDescriptor: scanner.MessageDescriptor{Package: pkg, Name: name},
		Path:              path,
		Line:              line,
	}
}

func gzmsgs(path string, line int, name string) scanner.Located {
	return loc(path, line, name, "gz", "msgs")
}

func defaultOptions() RenderOptions {
	return RenderOptions{
		Package:      "msgs",
		ImportPath:   "github.com/gazebosim/gz-msgs/msgs",
		Declarations: "message_types.gen.go",
		Definitions:  "register.gen.go",
		Compat:       "compat.gen.go",
	}
}

func TestBuild_SortsAndDeduplicatesSources(t *testing.T) {
	root := filepath.Join("/work", "proto")
	table, err := Build([]scanner.Located{
		gzmsgs(filepath.Join(root, "gz/msgs/vector3d.proto"), 4, "Vector3d"),
		gzmsgs(filepath.Join(root, "gz/msgs/geometry.proto"), 4, "PlaneGeom"),
		gzmsgs(filepath.Join(root, "gz/msgs/geometry.proto"), 20, "Geometry"),
	}, Options{Namespace: []string{"gz", "msgs"}, SourceRoot: root})
	require.NoError(t, err)

	assert.Equal(t, []string{"gz.msgs.Geometry", "gz.msgs.PlaneGeom", "gz.msgs.Vector3d"}, table.Keys())
	assert.Equal(t, []string{"Geometry", "PlaneGeom", "Vector3d"}, table.Names())
	assert.Equal(t, []string{"gz/msgs/geometry.proto", "gz/msgs/vector3d.proto"}, table.Sources)
	assert.Equal(t, "PlaneGeom", table.Entries[1].GoType)
}

func TestBuild_FiltersNamespace(t *testing.T) {
	table, err := Build([]scanner.Located{
		gzmsgs("a.proto", 1, "A"),
		loc("b.proto", 1, "B", "ignition", "msgs"),
		loc("c.proto", 1, "C"),
	}, Options{Namespace: []string{"gz", "msgs"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"gz.msgs.A"}, table.Keys())
	assert.Equal(t, []string{"a.proto"}, table.Sources)
}

func TestBuild_NoNamespaceKeepsAll(t *testing.T) {
	table, err := Build([]scanner.Located{
		gzmsgs("a.proto", 1, "A"),
		loc("c.proto", 1, "C"),
	}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "gz.msgs.A"}, table.Keys())
}

func TestBuild_Duplicate(t *testing.T) {
	_, err := Build([]scanner.Located{
		gzmsgs("proto/a.proto", 3, "Pose"),
		gzmsgs("proto/b.proto", 9, "Pose"),
	}, Options{SourceRoot: "proto"})
	require.Error(t, err)
	assert.True(t, registry.IsDuplicate(err))

	var dup *registry.DuplicateRegistrationError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "gz.msgs.Pose", dup.Key)
	assert.Equal(t, "a.proto:3", dup.First)
	assert.Equal(t, "b.proto:9", dup.Second)
}

func TestBuild_GoTypeClash(t *testing.T) {
	_, err := Build([]scanner.Located{
		gzmsgs("a.proto", 1, "Pose"),
		loc("b.proto", 1, "Pose", "ignition", "msgs"),
	}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both generate Go type Pose")
}

func TestBuild_Empty(t *testing.T) {
	table, err := Build(nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, table.Entries)
	assert.Empty(t, table.Keys())
}

func sampleTable(t *testing.T) *Table {
	t.Helper()
	table, err := Build([]scanner.Located{
		gzmsgs("proto/gz/msgs/vector3d.proto", 4, "Vector3d"),
		gzmsgs("proto/gz/msgs/pose.proto", 4, "Pose"),
	}, Options{SourceRoot: "proto"})
	require.NoError(t, err)
	return table
}

func assertParses(t *testing.T, name string, src []byte) {
	t.Helper()
	_, err := parser.ParseFile(token.NewFileSet(), name, src, parser.ParseComments)
	require.NoError(t, err, string(src))
}

func TestDeclarations(t *testing.T) {
	src, err := sampleTable(t).Declarations(defaultOptions())
	require.NoError(t, err)
	assertParses(t, "message_types.gen.go", src)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by gzmsgs. DO NOT EDIT.\n"))
	assert.Contains(t, out, "//   - gz/msgs/pose.proto\n//   - gz/msgs/vector3d.proto\n")
	assert.Contains(t, out, `package msgs // import "github.com/gazebosim/gz-msgs/msgs"`)
	assert.Contains(t, out, "\t\t\"gz.msgs.Pose\",\n\t\t\"gz.msgs.Vector3d\",\n")
	assert.Contains(t, out, "_ registry.Message = (*Pose)(nil)")
	assert.Contains(t, out, "_ registry.Message = (*Vector3D)(nil)")
	assert.Contains(t, out, "var _ Registrar = RegisterAll")
	assert.NotContains(t, out, "RegisterCompat")
	assert.NotContains(t, out, "/proto/")
}

func TestDeclarations_Deterministic(t *testing.T) {
	a, err := sampleTable(t).Declarations(defaultOptions())
	require.NoError(t, err)
	b, err := sampleTable(t).Declarations(defaultOptions())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDeclarations_EmptyTable(t *testing.T) {
	table, err := Build(nil, Options{})
	require.NoError(t, err)

	opts := defaultOptions()
	opts.ImportPath = ""
	src, err := table.Declarations(opts)
	require.NoError(t, err)
	assertParses(t, "message_types.gen.go", src)
	assert.Contains(t, string(src), "func MessageTypes() []string")
	assert.NotContains(t, string(src), "registry.Message =")
	assert.NotContains(t, string(src), "Schema sources")
}

func TestDeclarations_CustomTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("package {{.Package}}\n\nconst Count = {{len .Entries}}\n"), 0o644))

	opts := defaultOptions()
	opts.Template = path
	src, err := sampleTable(t).Declarations(opts)
	require.NoError(t, err)
	assert.Equal(t, "package msgs\n\nconst Count = 2\n", string(src))
}

func TestDefinitions(t *testing.T) {
	src, err := sampleTable(t).Definitions(defaultOptions())
	require.NoError(t, err)
	assertParses(t, "register.gen.go", src)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by gzmsgs. DO NOT EDIT.\n"))
	assert.Contains(t, out, "package msgs")
	assert.Contains(t, out, "import (\n\t\"github.com/gazebosim/gz-msgs/registry\"\n\t\"sync\"\n)\n")
	assert.Contains(t, out, "var messageTable = []registry.Entry{")
	assert.Contains(t, out, `Key: "gz.msgs.Pose"`)
	assert.Contains(t, out, "return new(Vector3D)")
	assert.Contains(t, out, "func RegisterAll(r *registry.Registry) (int, error)")
	assert.Contains(t, out, "return r.RegisterEntries(messageTable)")
	assert.Contains(t, out, "func InitDefault() (int, error)")
	assert.Contains(t, out, "RegisterAll(registry.Default())")
	assert.NotContains(t, out, "func init()")
	assert.Less(t, strings.Index(out, `"gz.msgs.Pose"`), strings.Index(out, `"gz.msgs.Vector3d"`))
}

func TestCompat(t *testing.T) {
	table := sampleTable(t)

	src, err := table.Compat(defaultOptions())
	require.NoError(t, err)
	assert.Nil(t, src)

	opts := defaultOptions()
	opts.CompatNamespace = []string{"ignition", "msgs"}
	src, err = table.Compat(opts)
	require.NoError(t, err)
	assertParses(t, "compat.gen.go", src)
	assert.Contains(t, string(src), `Key: "ignition.msgs.Vector3d"`)
	assert.Contains(t, string(src), "func RegisterCompat(r *registry.Registry) (int, error)")

	decl, err := table.Declarations(opts)
	require.NoError(t, err)
	assert.Contains(t, string(decl), "var _ Registrar = RegisterCompat")
}

func TestArtifacts(t *testing.T) {
	table := sampleTable(t)

	artifacts, err := table.Artifacts("msgs", defaultOptions())
	require.NoError(t, err)
	require.Len(t, artifacts, 2)
	assert.Equal(t, filepath.Join("msgs", "message_types.gen.go"), artifacts[0].Path)
	assert.Equal(t, filepath.Join("msgs", "register.gen.go"), artifacts[1].Path)

	opts := defaultOptions()
	opts.CompatNamespace = []string{"ignition", "msgs"}
	artifacts, err = table.Artifacts("msgs", opts)
	require.NoError(t, err)
	require.Len(t, artifacts, 3)
	assert.Equal(t, filepath.Join("msgs", "compat.gen.go"), artifacts[2].Path)
}
