// Package pipeline runs the generation steps configured in gzmsgs.yml.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gazebosim/gz-msgs/internal/config"
	"github.com/gazebosim/gz-msgs/internal/filesystem"
	"github.com/gazebosim/gz-msgs/internal/generator"
	"github.com/gazebosim/gz-msgs/internal/logger"
	"github.com/gazebosim/gz-msgs/internal/project"
	"github.com/gazebosim/gz-msgs/internal/scanner"
	"github.com/gazebosim/gz-msgs/internal/tablegen"
)

// ErrStale is matched by StaleError.
var ErrStale = errors.New("generated artifacts are out of date")

// StaleError lists artifacts whose content on disk differs from a fresh
// render.
type StaleError struct {
	Paths []string
}

func (e *StaleError) Error() string {
	return fmt.Sprintf("%d generated file(s) out of date: %s (run gzmsgs generate)", len(e.Paths), strings.Join(e.Paths, ", "))
}

func (e *StaleError) Is(target error) bool { return target == ErrStale }

// ErrIndexMismatch is returned under Strict when scanned messages and the
// compiler's index files disagree.
var ErrIndexMismatch = errors.New("schema scan does not match compiler index")

// Pipeline holds what every step needs.
type Pipeline struct {
	Config *config.Config
	Log    logger.Logger
	Out    io.Writer
}

// New creates a pipeline. A nil log is silent and a nil out is stdout.
func New(cfg *config.Config, log logger.Logger, out io.Writer) *Pipeline {
	if log == nil {
		log = logger.NewSilentLogger()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Pipeline{Config: cfg, Log: log, Out: out}
}

// Schemas lists the configured schema files.
func (p *Pipeline) Schemas() ([]string, error) {
	files, err := filesystem.DiscoverSchemas(p.Config.Schema.Paths, filesystem.WalkOptions{
		IgnorePatterns: p.Config.Schema.Ignore,
	})
	if err != nil {
		return nil, fmt.Errorf("discovering schemas: %w", err)
	}
	p.Log.Debug("discovered schemas", logger.F("count", len(files)))
	return files, nil
}

// Scan reads every schema file. Unreadable files are logged and skipped.
func (p *Pipeline) Scan(files []string) []scanner.Located {
	located, skipped := scanner.ScanFiles(files, p.Log)
	if skipped > 0 {
		p.Log.Warn("some schema files were skipped", logger.F("skipped", skipped))
	}
	return located
}

// sourceRoot is the directory schema paths are reported relative to.
func (p *Pipeline) sourceRoot() string {
	if len(p.Config.Schema.Paths) > 0 {
		first := p.Config.Schema.Paths[0]
		if info, err := os.Stat(first); err == nil && info.IsDir() {
			return first
		}
	}
	return "."
}

// rootOf returns the configured schema directory containing file.
func (p *Pipeline) rootOf(file string) string {
	for _, root := range p.Config.Schema.Paths {
		root = filepath.Clean(root)
		if rel, err := filepath.Rel(root, file); err == nil && !strings.HasPrefix(rel, "..") && rel != "." {
			return root
		}
	}
	return filepath.Dir(file)
}

// CrossCheck compares the scanned names of each file with its compiler
// index. It does nothing unless schema.index_dir is set. Mismatches are
// warnings, or an error wrapping ErrIndexMismatch when strict.
func (p *Pipeline) CrossCheck(files []string, located []scanner.Located, strict bool) error {
	dir := p.Config.Schema.IndexDir
	if dir == "" {
		return nil
	}

	byFile := make(map[string][]string)
	for _, l := range located {
		byFile[l.Path] = append(byFile[l.Path], l.Name)
	}

	var problems []string
	for _, file := range files {
		indexPath, err := scanner.IndexPath(dir, p.rootOf(file), file)
		if err != nil {
			return err
		}
		indexed, err := scanner.ReadIndex(indexPath)
		if err != nil {
			p.Log.Warn("no compiler index for schema", logger.F("schema", file), logger.F("index", indexPath))
			problems = append(problems, fmt.Sprintf("%s: missing index %s", file, indexPath))
			continue
		}
		m := scanner.CrossCheck(byFile[file], indexed)
		if m.Empty() {
			continue
		}
		p.Log.Warn("schema scan disagrees with compiler index",
			logger.F("schema", file),
			logger.F("not_indexed", m.NotIndexed),
			logger.F("not_scanned", m.NotScanned))
		problems = append(problems, fmt.Sprintf("%s: not indexed %v, not scanned %v", file, m.NotIndexed, m.NotScanned))
	}

	if strict && len(problems) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrIndexMismatch, strings.Join(problems, "\n  "))
	}
	return nil
}

// Table discovers, scans and builds the registration table.
func (p *Pipeline) Table(strict bool) (*tablegen.Table, error) {
	files, err := p.Schemas()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no schema files found under %s", strings.Join(p.Config.Schema.Paths, ", "))
	}

	located := p.Scan(files)
	if err := p.CrossCheck(files, located, strict); err != nil {
		return nil, err
	}

	table, err := tablegen.Build(located, tablegen.Options{
		Namespace:  p.Config.Namespace(),
		SourceRoot: p.sourceRoot(),
		Log:        p.Log,
	})
	if err != nil {
		return nil, err
	}
	p.Log.Info("built registration table",
		logger.F("messages", len(table.Entries)),
		logger.F("sources", len(table.Sources)))
	return table, nil
}

// RenderOptions derives artifact options from the config and go.mod.
func (p *Pipeline) RenderOptions() tablegen.RenderOptions {
	out := p.Config.Output
	opts := tablegen.RenderOptions{
		Package:         out.Package,
		Declarations:    out.Declarations,
		Definitions:     out.Definitions,
		Compat:          out.Compat,
		CompatNamespace: p.Config.CompatNamespace(),
		Template:        out.Template,
	}

	mod, err := project.FindModule(".")
	if err != nil {
		p.Log.Debug("no go.mod found, omitting import comment", logger.Err(err))
		return opts
	}
	imp, err := mod.ImportPath(out.Dir)
	if err != nil {
		p.Log.Warn("output directory is outside the module", logger.F("dir", out.Dir), logger.Err(err))
		return opts
	}
	opts.ImportPath = imp
	return opts
}

// Artifacts renders the registration artifacts for table.
func (p *Pipeline) Artifacts(table *tablegen.Table) ([]generator.Artifact, error) {
	return table.Artifacts(p.Config.Output.Dir, p.RenderOptions())
}

// GenerateOptions mirrors the generate command's flags.
type GenerateOptions struct {
	DryRun      bool
	Check       bool
	Diff        bool
	Skip        bool
	Interactive bool
	Strict      bool
}

// Result summarizes a generate run.
type Result struct {
	Messages  int
	Written   []string
	Unchanged []string
}

// Generate renders the artifacts and writes those that changed. It refuses
// to write a table naming Go types the output package lacks. With Check
// nothing is written and a *StaleError reports differences.
func (p *Pipeline) Generate(ctx context.Context, opts GenerateOptions) (*Result, error) {
	table, err := p.Table(opts.Strict)
	if err != nil {
		return nil, err
	}
	artifacts, err := p.Artifacts(table)
	if err != nil {
		return nil, err
	}
	res := &Result{Messages: len(table.Entries)}

	if opts.Check {
		stale, err := generator.Stale(artifacts)
		if err != nil {
			return nil, err
		}
		if len(stale) == 0 {
			for _, a := range artifacts {
				res.Unchanged = append(res.Unchanged, a.Path)
			}
			return res, nil
		}
		paths := make([]string, len(stale))
		for i, a := range stale {
			paths[i] = a.Path
			if opts.Diff {
				existing, _ := os.ReadFile(a.Path)
				fmt.Fprint(p.Out, generator.Diff(a.Path, a.Path, existing, a.Content, nil))
			}
		}
		return res, &StaleError{Paths: paths}
	}

	if err := p.CheckCompiled(table, artifacts); err != nil {
		return nil, err
	}

	resolver, err := generator.NewResolver(opts.Skip, opts.Diff, opts.Interactive, p.Out)
	if err != nil {
		return nil, err
	}
	ops, unchanged, err := resolver.Plan(artifacts)
	if err != nil {
		return nil, err
	}
	res.Unchanged = unchanged

	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{DryRun: opts.DryRun, Force: true, Writer: p.Out}); err != nil {
		return nil, err
	}
	if !opts.DryRun {
		for _, op := range ops {
			if w, ok := op.(*generator.WriteFileOp); ok {
				res.Written = append(res.Written, w.Path)
			}
		}
	}
	return res, nil
}
