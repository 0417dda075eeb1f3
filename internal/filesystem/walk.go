// Package filesystem discovers schema sources on disk.
package filesystem

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultIgnoreDirs are skipped during discovery.
var DefaultIgnoreDirs = []string{
	"vendor", "node_modules", ".git", "build", "bin", "testdata", "_examples",
}

// SchemaExt is the extension of schema source files.
const SchemaExt = ".proto"

// WalkOptions configures directory traversal.
type WalkOptions struct {
	IgnoreDirs     []string // default: DefaultIgnoreDirs
	IgnorePatterns []string // base-name globs, e.g. "*_test.proto"
	IncludeHidden  bool
}

// Walk visits every file under root that survives the ignore rules.
// Directories are never passed to visit.
func Walk(root string, opts WalkOptions, visit func(path string) error) error {
	ignoreDirs := opts.IgnoreDirs
	if len(ignoreDirs) == 0 {
		ignoreDirs = DefaultIgnoreDirs
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()

		if !opts.IncludeHidden && strings.HasPrefix(name, ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && slices.Contains(ignoreDirs, name) {
				return filepath.SkipDir
			}
			return nil
		}

		for _, pattern := range opts.IgnorePatterns {
			if matched, _ := filepath.Match(pattern, name); matched {
				return nil
			}
		}
		return visit(path)
	})
}

// DiscoverSchemas returns the schema files under each root, sorted and
// without duplicates. A root that is itself a file is returned as-is when it
// carries the schema extension.
func DiscoverSchemas(roots []string, opts WalkOptions) ([]string, error) {
	var files []string
	for _, root := range roots {
		root = filepath.Clean(root)
		if filepath.Ext(root) == SchemaExt {
			files = append(files, root)
			continue
		}
		err := Walk(root, opts, func(path string) error {
			if filepath.Ext(path) == SchemaExt {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}
