package scanner

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// IndexExt is the extension of the per-schema message index files written by
// the compiler plugin.
const IndexExt = ".pb_index"

// IndexPath returns where the index for schema lives: its path relative to
// protoRoot, without extension, with directory separators replaced by "_".
func IndexPath(indexDir, protoRoot, schema string) (string, error) {
	rel, err := filepath.Rel(protoRoot, schema)
	if err != nil {
		return "", fmt.Errorf("index path for %s: %w", schema, err)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	name := strings.Join(strings.Split(filepath.ToSlash(rel), "/"), "_")
	return filepath.Join(indexDir, name+IndexExt), nil
}

// ReadIndex reads one message name per line. Blank lines are ignored.
func ReadIndex(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ScanError{Path: path, Err: err}
	}
	defer f.Close()

	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			names = append(names, name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ScanError{Path: path, Err: err}
	}
	return names, nil
}

// Mismatch lists names found on only one side of a cross-check.
type Mismatch struct {
	NotIndexed []string // scanned but absent from the index
	NotScanned []string // indexed but not found by the scanner
}

// Empty reports whether both sides agree.
func (m Mismatch) Empty() bool {
	return len(m.NotIndexed) == 0 && len(m.NotScanned) == 0
}

// CrossCheck compares scanned message names with an index.
func CrossCheck(scanned, indexed []string) Mismatch {
	var m Mismatch
	for _, name := range scanned {
		if !slices.Contains(indexed, name) {
			m.NotIndexed = append(m.NotIndexed, name)
		}
	}
	for _, name := range indexed {
		if !slices.Contains(scanned, name) {
			m.NotScanned = append(m.NotScanned, name)
		}
	}
	slices.Sort(m.NotIndexed)
	slices.Sort(m.NotScanned)
	m.NotIndexed = slices.Compact(m.NotIndexed)
	m.NotScanned = slices.Compact(m.NotScanned)
	return m
}
