package generator

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func plain() *DiffOptions { return &DiffOptions{Plain: true} }

func TestDiff_Identical(t *testing.T) {
	assert.Empty(t, Diff("a", "a", []byte("x\ny\n"), []byte("x\ny\n"), plain()))
}

func TestDiff_SingleChange(t *testing.T) {
	got := Diff("old.go", "new.go", []byte("a\nb\nc\n"), []byte("a\nB\nc\n"), plain())

	want := strings.Join([]string{
		"--- old.go",
		"+++ new.go",
		"@@ -1,3 +1,3 @@",
		" a",
		"-b",
		"+B",
		" c",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestDiff_AddToEmpty(t *testing.T) {
	got := Diff("f", "f", nil, []byte("one\ntwo\n"), plain())
	assert.Contains(t, got, "@@ -0,0 +1,2 @@")
	assert.Contains(t, got, "+one\n+two\n")
}

func TestDiff_SeparateHunks(t *testing.T) {
	var oldLines, newLines []string
	for i := 1; i <= 30; i++ {
		oldLines = append(oldLines, fmt.Sprintf("line %d", i))
		newLines = append(newLines, fmt.Sprintf("line %d", i))
	}
	newLines[1] = "changed 2"
	newLines[27] = "changed 28"

	got := Diff("f", "f",
		[]byte(strings.Join(oldLines, "\n")+"\n"),
		[]byte(strings.Join(newLines, "\n")+"\n"),
		plain())

	assert.Equal(t, 2, strings.Count(got, "@@ -"))
	assert.Contains(t, got, "@@ -1,5 +1,5 @@")
	assert.Contains(t, got, "@@ -25,6 +25,6 @@")
	assert.NotContains(t, got, " line 15\n")
}

func TestDiff_Binary(t *testing.T) {
	assert.Equal(t, "Binary files differ\n", Diff("f", "f", []byte{0, 1}, []byte{0, 2}, plain()))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
}
