package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("syntax = \"proto3\";\n"), 0o644))
}

func TestDiscoverSchemas(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "gz/msgs/vector3d.proto"))
	touch(t, filepath.Join(root, "gz/msgs/pose.proto"))
	touch(t, filepath.Join(root, "gz/msgs/README.md"))
	touch(t, filepath.Join(root, "vendor/other.proto"))
	touch(t, filepath.Join(root, ".cache/hidden.proto"))
	touch(t, filepath.Join(root, "gz/msgs/scratch_test.proto"))

	files, err := DiscoverSchemas([]string{root}, WalkOptions{IgnorePatterns: []string{"*_test.proto"}})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "gz/msgs/pose.proto"),
		filepath.Join(root, "gz/msgs/vector3d.proto"),
	}, files)
}

func TestDiscoverSchemas_ExplicitFilesAndDuplicates(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "a.proto")
	touch(t, file)

	files, err := DiscoverSchemas([]string{root, file}, WalkOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{file}, files)
}

func TestDiscoverSchemas_MissingRoot(t *testing.T) {
	_, err := DiscoverSchemas([]string{filepath.Join(t.TempDir(), "nope")}, WalkOptions{})
	assert.Error(t, err)
}

func TestWalk_IncludeHidden(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, ".hidden/a.proto"))

	var seen []string
	err := Walk(root, WalkOptions{IncludeHidden: true}, func(path string) error {
		seen = append(seen, path)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, ".hidden/a.proto")}, seen)
}
