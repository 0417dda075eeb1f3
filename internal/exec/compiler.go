package exec

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// CompileRequest describes one schema compiler invocation.
type CompileRequest struct {
	ProtoPaths []string // include roots
	OutDir     string
	Files      []string
	// GoModule, when set, places Go output by go_package relative to the
	// module root instead of beside each schema.
	GoModule string
}

// Compiler builds the command line for a schema compiler.
type Compiler interface {
	Name() string
	Description() string
	Command(req CompileRequest) (string, []string)
}

// Presets holds the known compiler presets by name.
type Presets struct {
	compilers map[string]Compiler
}

// NewPresets creates a preset table with protoc and buf registered.
func NewPresets() *Presets {
	p := &Presets{compilers: make(map[string]Compiler)}
	_ = p.Register(Protoc{})
	_ = p.Register(Buf{})
	return p
}

// Register adds a compiler preset.
func (p *Presets) Register(c Compiler) error {
	if _, exists := p.compilers[c.Name()]; exists {
		return fmt.Errorf("compiler preset '%s' is already registered", c.Name())
	}
	p.compilers[c.Name()] = c
	return nil
}

// Get retrieves a preset by name.
func (p *Presets) Get(name string) (Compiler, error) {
	c, ok := p.compilers[name]
	if !ok {
		return nil, fmt.Errorf("unknown compiler preset '%s' (available: %s)", name, strings.Join(p.List(), ", "))
	}
	return c, nil
}

// List returns the registered preset names, sorted.
func (p *Presets) List() []string {
	names := make([]string, 0, len(p.compilers))
	for name := range p.compilers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile runs c for req. The spinner is used when spin is set.
func (e *Executor) Compile(ctx context.Context, c Compiler, req CompileRequest, spin bool) error {
	if len(req.Files) == 0 {
		return fmt.Errorf("no schema files to compile")
	}
	name, args := c.Command(req)
	if spin {
		return e.RunWithSpinner(ctx, fmt.Sprintf("Compiling %d schema files with %s", len(req.Files), c.Name()), name, args...)
	}
	return e.Run(ctx, name, args...)
}

// Protoc invokes protoc with the Go plugin.
type Protoc struct{}

func (Protoc) Name() string        { return "protoc" }
func (Protoc) Description() string { return "protoc with --go_out" }

func (Protoc) Command(req CompileRequest) (string, []string) {
	args := make([]string, 0, len(req.ProtoPaths)+len(req.Files)+2)
	for _, p := range req.ProtoPaths {
		args = append(args, "--proto_path="+p)
	}
	args = append(args, "--go_out="+req.OutDir)
	if req.GoModule != "" {
		args = append(args, "--go_opt=module="+req.GoModule)
	} else {
		args = append(args, "--go_opt=paths=source_relative")
	}
	args = append(args, req.Files...)
	return "protoc", args
}

// Buf invokes buf generate, limited to the requested files.
type Buf struct{}

func (Buf) Name() string        { return "buf" }
func (Buf) Description() string { return "buf generate" }

func (Buf) Command(req CompileRequest) (string, []string) {
	args := []string{"generate"}
	if req.OutDir != "" {
		args = append(args, "--output", req.OutDir)
	}
	for _, f := range req.Files {
		args = append(args, "--path", f)
	}
	return "buf", args
}

// Custom runs a user-configured command. Arguments may contain the
// placeholders {out}, {module}, {proto_path} and {files}; {files} expands
// in place to one argument per file.
type Custom struct {
	Program string
	Args    []string
}

func (c Custom) Name() string        { return "custom" }
func (c Custom) Description() string { return "custom: " + c.Program }

func (c Custom) Command(req CompileRequest) (string, []string) {
	var args []string
	for _, a := range c.Args {
		if a == "{files}" {
			args = append(args, req.Files...)
			continue
		}
		a = strings.ReplaceAll(a, "{out}", req.OutDir)
		a = strings.ReplaceAll(a, "{module}", req.GoModule)
		a = strings.ReplaceAll(a, "{proto_path}", strings.Join(req.ProtoPaths, string(filepath.ListSeparator)))
		args = append(args, a)
	}
	return c.Program, args
}
