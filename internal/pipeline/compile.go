package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	"github.com/gazebosim/gz-msgs/internal/exec"
	"github.com/gazebosim/gz-msgs/internal/logger"
	"github.com/gazebosim/gz-msgs/internal/project"
)

// Compiler resolves the configured compiler preset.
func (p *Pipeline) Compiler() (exec.Compiler, error) {
	presets := exec.NewPresets()
	if p.Config.Compiler.Preset == "custom" {
		custom := exec.Custom{Program: p.Config.Compiler.Command, Args: p.Config.Compiler.Args}
		if err := presets.Register(custom); err != nil {
			return nil, err
		}
	}
	return presets.Get(p.Config.Compiler.Preset)
}

// CompileRequest builds the request for every configured schema.
func (p *Pipeline) CompileRequest() (exec.CompileRequest, error) {
	files, err := p.Schemas()
	if err != nil {
		return exec.CompileRequest{}, err
	}
	req := exec.CompileRequest{OutDir: p.Config.Compiler.OutDir, Files: files}
	if mod, err := project.FindModule("."); err == nil {
		req.GoModule = mod.Path
	} else {
		p.Log.Debug("no go.mod found, placing Go output beside schemas", logger.Err(err))
	}
	req.ProtoPaths = p.importPaths()
	return req, nil
}

// importPaths returns the schema roots imports are resolved against: each
// configured directory, or the parent of a configured file.
func (p *Pipeline) importPaths() []string {
	var roots []string
	for _, path := range p.Config.Schema.Paths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			path = filepath.Dir(path)
		}
		if root := filepath.Clean(path); !slices.Contains(roots, root) {
			roots = append(roots, root)
		}
	}
	return roots
}

// Compile runs the external schema compiler over every schema.
func (p *Pipeline) Compile(ctx context.Context, e *exec.Executor) error {
	c, err := p.Compiler()
	if err != nil {
		return err
	}
	req, err := p.CompileRequest()
	if err != nil {
		return err
	}
	name, args := c.Command(req)
	p.Log.Info("running schema compiler", logger.F("command", exec.String(name, args...)))
	return e.Compile(ctx, c, req, p.Config.Compiler.Spinner)
}
