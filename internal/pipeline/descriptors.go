package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bufbuild/protocompile"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/gazebosim/gz-msgs/internal/logger"
)

// Descriptors parses and links every configured schema in process, without
// an external compiler, so tools can describe messages that have not been
// compiled to Go yet.
func (p *Pipeline) Descriptors(ctx context.Context) ([]protoreflect.FileDescriptor, error) {
	files, err := p.Schemas()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	names := make([]string, len(files))
	for i, file := range files {
		rel, err := filepath.Rel(p.rootOf(file), file)
		if err != nil {
			return nil, err
		}
		names[i] = filepath.ToSlash(rel)
	}

	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			ImportPaths: p.importPaths(),
		}),
	}
	linked, err := compiler.Compile(ctx, names...)
	if err != nil {
		return nil, fmt.Errorf("parsing schemas: %w", err)
	}

	out := make([]protoreflect.FileDescriptor, len(linked))
	for i, f := range linked {
		out[i] = f
	}
	p.Log.Debug("parsed schema descriptors", logger.F("files", len(out)))
	return out, nil
}
