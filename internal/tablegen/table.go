// Package tablegen turns scanned message declarations into the registration
// table and renders the artifacts that register it at runtime.
package tablegen

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/gazebosim/gz-msgs/internal/generator"
	"github.com/gazebosim/gz-msgs/internal/logger"
	"github.com/gazebosim/gz-msgs/internal/scanner"
	"github.com/gazebosim/gz-msgs/registry"
)

// Entry is one row of the registration table.
type Entry struct {
	Key    string // registry key, e.g. gz.msgs.Vector3d
	Name   string // schema message name
	GoType string // generated Go type
	Source string // schema file relative to the source root, slash separated
	Line   int
}

// Table is the sorted, duplicate-free registration table.
type Table struct {
	Entries []Entry
	Sources []string
}

// Options controls Build.
type Options struct {
	// Namespace keeps only messages whose package equals it. Nil keeps all.
	Namespace []string
	// SourceRoot makes Entry.Source relative so artifacts do not embed
	// machine-specific paths.
	SourceRoot string
	Log        logger.Logger
}

// Build filters, de-duplicates and sorts descs.
func Build(descs []scanner.Located, opts Options) (*Table, error) {
	log := opts.Log
	if log == nil {
		log = logger.NewSilentLogger()
	}

	seen := make(map[string]Entry, len(descs))
	goTypes := make(map[string]Entry, len(descs))
	t := &Table{}
	for _, d := range descs {
		if opts.Namespace != nil && !slices.Equal(d.Package, opts.Namespace) {
			log.Debug("skipping message outside target namespace",
				logger.F("message", d.Key()), logger.F("at", d.Position()))
			continue
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", d.Position(), err)
		}

		e := Entry{
			Key:    d.Key(),
			Name:   d.Name,
			GoType: generator.GoIdent(d.Name),
			Source: relSource(opts.SourceRoot, d.Path),
			Line:   d.Line,
		}
		if first, dup := seen[e.Key]; dup {
			return nil, &registry.DuplicateRegistrationError{
				Key:    e.Key,
				First:  position(first),
				Second: position(e),
			}
		}
		if other, clash := goTypes[e.GoType]; clash {
			return nil, fmt.Errorf("%s and %s both generate Go type %s (set schema.package to select one namespace)",
				other.Key, e.Key, e.GoType)
		}
		seen[e.Key] = e
		goTypes[e.GoType] = e
		t.Entries = append(t.Entries, e)
		if e.Source != "" {
			t.Sources = append(t.Sources, e.Source)
		}
	}

	slices.SortFunc(t.Entries, func(a, b Entry) int { return cmp.Compare(a.Key, b.Key) })
	slices.Sort(t.Sources)
	t.Sources = slices.Compact(t.Sources)
	return t, nil
}

// Keys returns the registry keys in table order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		keys[i] = e.Key
	}
	return keys
}

// Names returns the schema message names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		names[i] = e.Name
	}
	return names
}

func relSource(root, path string) string {
	if path == "" {
		return ""
	}
	if root != "" {
		if rel, err := filepath.Rel(root, path); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(path)
}

func position(e Entry) string {
	if e.Source == "" {
		return fmt.Sprintf("line %d", e.Line)
	}
	return fmt.Sprintf("%s:%d", e.Source, e.Line)
}
