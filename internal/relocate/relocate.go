// Package relocate moves a compiler-generated header aside and installs a
// public header in its place that includes both the moved original and the
// hand-written extension.
//
// Given gz/msgs/vector3d.pb.h and gz/msgs/vector3d.gz.h, the result is
//
//	gz/msgs/details/vector3d.pb.h   the compiler output
//	gz/msgs/vector3d.pb.h           marker, #include details/..., #include vector3d.gz.h
//
// Running it again is safe: a primary that already carries the marker is
// rewritten in place, and a run interrupted between the two renames is
// finished from the detail file.
package relocate

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gazebosim/gz-msgs/internal/generator"
)

// Plan describes one relocation.
type Plan struct {
	Primary   string // compiler output at the public path
	Extension string // hand-written content included after the original

	DetailDir     string // relative to the primary's directory, default "details"
	IncludeFormat string // default `#include "%s"`
	CommentPrefix string // default "//"
	Marker        string // identifies an installed public header
}

// Defaults for unset Plan fields.
const (
	DefaultDetailDir     = "details"
	DefaultIncludeFormat = `#include "%s"`
	DefaultCommentPrefix = "//"
	DefaultMarker        = "Automatically generated public header. Do not edit."
)

func (p Plan) withDefaults() Plan {
	if p.DetailDir == "" {
		p.DetailDir = DefaultDetailDir
	}
	if p.IncludeFormat == "" {
		p.IncludeFormat = DefaultIncludeFormat
	}
	if p.CommentPrefix == "" {
		p.CommentPrefix = DefaultCommentPrefix
	}
	if p.Marker == "" {
		p.Marker = DefaultMarker
	}
	return p
}

// Detail is where the compiler output ends up.
func (p Plan) Detail() string {
	p = p.withDefaults()
	return filepath.Join(filepath.Dir(p.Primary), p.DetailDir, filepath.Base(p.Primary))
}

func (p Plan) markerLine() string {
	return p.CommentPrefix + " " + p.Marker
}

// Compose returns the public header content. Includes are relative to the
// primary's directory and always use forward slashes.
func (p Plan) Compose() ([]byte, error) {
	p = p.withDefaults()
	dir := filepath.Dir(p.Primary)

	detail, err := filepath.Rel(dir, p.Detail())
	if err != nil {
		return nil, fmt.Errorf("relative path to detail: %w", err)
	}
	ext, err := filepath.Rel(dir, p.Extension)
	if err != nil {
		return nil, fmt.Errorf("relative path to extension: %w", err)
	}

	var b bytes.Buffer
	b.WriteString(p.markerLine())
	b.WriteByte('\n')
	fmt.Fprintf(&b, p.IncludeFormat, filepath.ToSlash(detail))
	b.WriteByte('\n')
	fmt.Fprintf(&b, p.IncludeFormat, filepath.ToSlash(ext))
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// Installed reports whether path already starts with the plan's marker line.
func (p Plan) Installed(path string) (bool, error) {
	p = p.withDefaults()
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, generator.IOError("open", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return false, nil
	}
	return strings.TrimRight(sc.Text(), "\r") == p.markerLine(), nil
}

// State is what Relocate will do for a plan.
type State int

const (
	// Fresh: the primary is compiler output and will be moved.
	Fresh State = iota
	// Installed: the primary is already the public header.
	Installed
	// Interrupted: the primary is gone but the detail exists.
	Interrupted
	// Missing: neither the primary nor the detail exists.
	Missing
)

func (s State) String() string {
	switch s {
	case Fresh:
		return "fresh"
	case Installed:
		return "installed"
	case Interrupted:
		return "interrupted"
	default:
		return "missing"
	}
}

// Inspect reports the plan's current state on disk.
func (p Plan) Inspect() (State, error) {
	p = p.withDefaults()
	if _, err := os.Stat(p.Primary); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Missing, generator.IOError("stat", p.Primary, err)
		}
		if _, err := os.Stat(p.Detail()); err == nil {
			return Interrupted, nil
		}
		return Missing, nil
	}
	installed, err := p.Installed(p.Primary)
	if err != nil {
		return Missing, err
	}
	if installed {
		return Installed, nil
	}
	return Fresh, nil
}

// Relocate performs the plan.
func Relocate(ctx context.Context, p Plan) error {
	p = p.withDefaults()
	if err := ctx.Err(); err != nil {
		return err
	}

	state, err := p.Inspect()
	if err != nil {
		return err
	}
	if state == Missing {
		return generator.IOError("relocate", p.Primary, fs.ErrNotExist)
	}
	if _, err := os.Stat(p.Extension); err != nil {
		return generator.IOError("stat", p.Extension, err)
	}

	content, err := p.Compose()
	if err != nil {
		return err
	}

	if state != Fresh {
		return generator.WriteAtomic(p.Primary, content, 0o644)
	}

	dir := filepath.Dir(p.Primary)
	tmp, err := writeTemp(dir, filepath.Base(p.Primary), content)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmp)
		}
	}()

	detail := p.Detail()
	if err := os.MkdirAll(filepath.Dir(detail), 0o755); err != nil {
		return generator.IOError("create directory", filepath.Dir(detail), err)
	}
	if err := os.Remove(detail); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return generator.IOError("remove", detail, err)
	}
	if err := os.Rename(p.Primary, detail); err != nil {
		return generator.IOError("rename", p.Primary, err)
	}
	if err := os.Rename(tmp, p.Primary); err != nil {
		return generator.IOError("rename", tmp, err)
	}
	committed = true
	return nil
}

func writeTemp(dir, base string, content []byte) (string, error) {
	f, err := os.CreateTemp(dir, "."+base+".relocate-*")
	if err != nil {
		return "", generator.IOError("create temp file", dir, err)
	}
	name := f.Name()
	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(name)
		return "", generator.IOError("write", name, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(name)
		return "", generator.IOError("sync", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", generator.IOError("close", name, err)
	}
	if err := os.Chmod(name, 0o644); err != nil {
		os.Remove(name)
		return "", generator.IOError("chmod", name, err)
	}
	return name, nil
}
