// Package project locates the Go module that hosts generated artifacts.
package project

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// ModuleInfo is what generation needs from go.mod.
type ModuleInfo struct {
	Root      string // directory holding go.mod
	Path      string // module path
	GoVersion string
}

// DetectModule reads go.mod in rootPath.
func DetectModule(rootPath string) (*ModuleInfo, error) {
	modPath := filepath.Join(rootPath, "go.mod")
	data, err := os.ReadFile(modPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("go.mod not found in %s", rootPath)
		}
		return nil, fmt.Errorf("failed to read go.mod: %w", err)
	}

	mf, err := modfile.ParseLax(modPath, data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse go.mod: %w", err)
	}
	if mf.Module == nil {
		return nil, fmt.Errorf("%s has no module directive", modPath)
	}

	info := &ModuleInfo{Root: rootPath, Path: mf.Module.Mod.Path}
	if mf.Go != nil {
		info.GoVersion = mf.Go.Version
	}
	return info, nil
}

// FindModule walks up from dir until it finds a go.mod.
func FindModule(dir string) (*ModuleInfo, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for d := abs; ; d = filepath.Dir(d) {
		if _, err := os.Stat(filepath.Join(d, "go.mod")); err == nil {
			return DetectModule(d)
		}
		if filepath.Dir(d) == d {
			return nil, fmt.Errorf("no go.mod found above %s", abs)
		}
	}
}

// ImportPath returns the import path of the package in dir.
func (m *ModuleInfo) ImportPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	root, err := filepath.Abs(m.Root)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside module %s", dir, m.Path)
	}
	if rel == "." {
		return m.Path, nil
	}
	return path.Join(m.Path, filepath.ToSlash(rel)), nil
}
