package tablegen

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dave/jennifer/jen"

	"github.com/gazebosim/gz-msgs/internal/generator"
)

// RegistryImport is the import path of the runtime registry package.
const RegistryImport = "github.com/gazebosim/gz-msgs/registry"

//go:embed templates/*.tmpl
var templates embed.FS

const declarationsTemplate = "templates/message_types.go.tmpl"

const header = "Code generated by gzmsgs. DO NOT EDIT."

// RenderOptions names and places the artifacts.
type RenderOptions struct {
	Package      string // Go package the artifacts belong to
	ImportPath   string // canonical import path, rendered as an import comment
	Declarations string // file name, e.g. message_types.gen.go
	Definitions  string // file name, e.g. register.gen.go
	Compat       string // file name; only written when CompatNamespace is set
	// CompatNamespace re-registers every entry under this package.
	CompatNamespace []string
	// Template overrides the built-in declarations template.
	Template string
}

var (
	rendererOnce sync.Once
	renderer     *generator.Renderer
)

func sharedRenderer() *generator.Renderer {
	rendererOnce.Do(func() { renderer = generator.NewRenderer() })
	return renderer
}

type declarationsData struct {
	Package        string
	ImportPath     string
	RegistryImport string
	Definitions    string
	Compat         bool
	Sources        []string
	Entries        []Entry
}

// Declarations renders the artifact listing the generated message types.
func (t *Table) Declarations(opts RenderOptions) ([]byte, error) {
	data := declarationsData{
		Package:        opts.Package,
		ImportPath:     opts.ImportPath,
		RegistryImport: RegistryImport,
		Definitions:    opts.Definitions,
		Compat:         len(opts.CompatNamespace) > 0,
		Sources:        t.Sources,
		Entries:        t.Entries,
	}

	var (
		src []byte
		err error
	)
	if opts.Template != "" {
		src, err = sharedRenderer().RenderFile(opts.Template, data)
	} else {
		src, err = sharedRenderer().RenderFS(templates, declarationsTemplate, data)
	}
	if err != nil {
		return nil, err
	}
	return generator.FormatGo(opts.Declarations, src)
}

// Definitions renders the registration table and its entry points.
func (t *Table) Definitions(opts RenderOptions) ([]byte, error) {
	f := jen.NewFile(opts.Package)
	f.HeaderComment(header)
	f.ImportName(RegistryImport, "registry")

	f.Comment("messageTable holds one factory per generated message, sorted by key.")
	f.Var().Id("messageTable").Op("=").Add(entryTable(t.Entries, func(e Entry) string { return e.Key }))
	f.Line()

	f.Comment("RegisterAll registers every generated message with r. It returns the")
	f.Comment("number registered before the first failure.")
	f.Func().Id("RegisterAll").
		Params(jen.Id("r").Op("*").Qual(RegistryImport, "Registry")).
		Params(jen.Int(), jen.Error()).
		Block(jen.Return(jen.Id("r").Dot("RegisterEntries").Call(jen.Id("messageTable"))))
	f.Line()

	f.Var().Defs(
		jen.Id("initOnce").Qual("sync", "Once"),
		jen.Id("initCount").Int(),
		jen.Id("initErr").Error(),
	)
	f.Line()

	f.Comment("InitDefault registers every generated message with registry.Default().")
	f.Comment("Only the first call registers; later calls return the first result.")
	f.Func().Id("InitDefault").Params().Params(jen.Int(), jen.Error()).Block(
		jen.Id("initOnce").Dot("Do").Call(jen.Func().Params().Block(
			jen.List(jen.Id("initCount"), jen.Id("initErr")).Op("=").
				Id("RegisterAll").Call(jen.Qual(RegistryImport, "Default").Call()),
		)),
		jen.Return(jen.Id("initCount"), jen.Id("initErr")),
	)

	return render(f, opts.Definitions)
}

// Compat renders RegisterCompat, which registers every entry again under
// opts.CompatNamespace. It returns nil when no compat namespace is set.
func (t *Table) Compat(opts RenderOptions) ([]byte, error) {
	if len(opts.CompatNamespace) == 0 {
		return nil, nil
	}
	ns := strings.Join(opts.CompatNamespace, ".")

	f := jen.NewFile(opts.Package)
	f.HeaderComment(header)
	f.ImportName(RegistryImport, "registry")

	f.Commentf("compatTable mirrors messageTable under the %s namespace.", ns)
	f.Var().Id("compatTable").Op("=").Add(entryTable(t.Entries, func(e Entry) string { return ns + "." + e.Name }))
	f.Line()

	f.Commentf("RegisterCompat registers every generated message with r under %s.", ns)
	f.Func().Id("RegisterCompat").
		Params(jen.Id("r").Op("*").Qual(RegistryImport, "Registry")).
		Params(jen.Int(), jen.Error()).
		Block(jen.Return(jen.Id("r").Dot("RegisterEntries").Call(jen.Id("compatTable"))))

	return render(f, opts.Compat)
}

func entryTable(entries []Entry, key func(Entry) string) *jen.Statement {
	return jen.Index().Qual(RegistryImport, "Entry").ValuesFunc(func(g *jen.Group) {
		for _, e := range entries {
			g.Values(jen.Dict{
				jen.Id("Key"): jen.Lit(key(e)),
				jen.Id("New"): jen.Func().Params().Qual(RegistryImport, "Message").Block(
					jen.Return(jen.New(jen.Id(e.GoType))),
				),
			})
		}
	})
}

func render(f *jen.File, filename string) ([]byte, error) {
	var buf strings.Builder
	if err := f.Render(&buf); err != nil {
		return nil, &generator.FormatError{Filename: filename, Err: err}
	}
	return []byte(buf.String()), nil
}

// Artifacts renders every artifact into dir.
func (t *Table) Artifacts(dir string, opts RenderOptions) ([]generator.Artifact, error) {
	decl, err := t.Declarations(opts)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", opts.Declarations, err)
	}
	defs, err := t.Definitions(opts)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", opts.Definitions, err)
	}
	artifacts := []generator.Artifact{
		{Path: filepath.Join(dir, opts.Declarations), Content: decl},
		{Path: filepath.Join(dir, opts.Definitions), Content: defs},
	}

	compat, err := t.Compat(opts)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", opts.Compat, err)
	}
	if compat != nil {
		artifacts = append(artifacts, generator.Artifact{Path: filepath.Join(dir, opts.Compat), Content: compat})
	}
	return artifacts, nil
}
