// Package generator writes and moves generated artifacts.
//
// Work is expressed as Operations that are validated as a batch before any
// of them touches the disk. Execute journals every path an operation
// declares, so a failure part way through restores the files that earlier
// operations already replaced:
//
//	ops := []generator.Operation{
//	    &generator.WriteFileOp{Path: "msgs/register.gen.go", Content: src, Mode: 0o644},
//	    relocate.NewOp(plan),
//	}
//	err := generator.Execute(ctx, ops, generator.ExecuteOptions{Force: true})
//
// Renderer, FormatGo and the diff and conflict helpers support building
// those operations from templates and comparing them against what is
// already on disk.
package generator
