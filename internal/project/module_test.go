package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGoMod(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(content), 0o644))
}

func TestDetectModule(t *testing.T) {
	dir := t.TempDir()
	writeGoMod(t, dir, "module github.com/gazebosim/gz-msgs\n\ngo 1.25.1\n")

	info, err := DetectModule(dir)
	require.NoError(t, err)
	assert.Equal(t, "github.com/gazebosim/gz-msgs", info.Path)
	assert.Equal(t, "1.25.1", info.GoVersion)
	assert.Equal(t, dir, info.Root)
}

func TestDetectModule_Errors(t *testing.T) {
	_, err := DetectModule(t.TempDir())
	assert.ErrorContains(t, err, "go.mod not found")

	dir := t.TempDir()
	writeGoMod(t, dir, "go 1.25\n")
	_, err = DetectModule(dir)
	assert.ErrorContains(t, err, "no module directive")
}

func TestFindModule_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeGoMod(t, root, "module example.com/robots\n")
	nested := filepath.Join(root, "msgs", "gz")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	info, err := FindModule(nested)
	require.NoError(t, err)
	assert.Equal(t, "example.com/robots", info.Path)

	imp, err := info.ImportPath(nested)
	require.NoError(t, err)
	assert.Equal(t, "example.com/robots/msgs/gz", imp)

	imp, err = info.ImportPath(root)
	require.NoError(t, err)
	assert.Equal(t, "example.com/robots", imp)
}

func TestImportPath_Outside(t *testing.T) {
	root := t.TempDir()
	writeGoMod(t, root, "module example.com/robots\n")
	info, err := DetectModule(root)
	require.NoError(t, err)

	_, err = info.ImportPath(filepath.Dir(root))
	assert.ErrorContains(t, err, "outside module")
}
