package pipeline

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gazebosim/gz-msgs/internal/generator"
	"github.com/gazebosim/gz-msgs/internal/logger"
	"github.com/gazebosim/gz-msgs/internal/tablegen"
)

// ErrUncompiled is matched by UncompiledError.
var ErrUncompiled = errors.New("schema messages have no compiled Go type")

// UncompiledError lists table entries whose Go type is not declared in the
// output package. Writing the artifacts anyway would break the build.
type UncompiledError struct {
	Dir   string
	Types []string
}

func (e *UncompiledError) Error() string {
	return fmt.Sprintf("%d message(s) not compiled into %s: %s (run gzmsgs compile first)",
		len(e.Types), e.Dir, strings.Join(e.Types, ", "))
}

func (e *UncompiledError) Is(target error) bool { return target == ErrUncompiled }

// declaredTypes returns the top-level type names declared in dir, skipping
// tests and the files about to be regenerated.
func declaredTypes(dir string, skip []generator.Artifact) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading output directory: %w", err)
	}
	skipped := make(map[string]bool, len(skip))
	for _, a := range skip {
		skipped[filepath.Clean(a.Path)] = true
	}

	types := make(map[string]bool)
	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		path := filepath.Join(dir, name)
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || skipped[path] {
			continue
		}
		f, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		for _, decl := range f.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				types[spec.(*ast.TypeSpec).Name.Name] = true
			}
		}
	}
	return types, nil
}

// CheckCompiled verifies that every entry of table has its Go type declared
// in the output directory, so the artifacts compile once written.
func (p *Pipeline) CheckCompiled(table *tablegen.Table, artifacts []generator.Artifact) error {
	dir := p.Config.Output.Dir
	declared, err := declaredTypes(dir, artifacts)
	if err != nil {
		return err
	}
	var missing []string
	for _, e := range table.Entries {
		if !declared[e.GoType] {
			missing = append(missing, e.GoType)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	p.Log.Warn("registration table names types the output package does not declare",
		logger.F("dir", dir), logger.F("missing", missing))
	return &UncompiledError{Dir: dir, Types: missing}
}
