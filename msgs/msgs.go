// Package msgs contains the compiled wire message types of the gz.msgs
// schema namespace together with their generated registration table.
//
// The *.pb.go files are protoc-gen-go output for the schemas under
// ../proto; message_types.gen.go and register.gen.go are written by
// gzmsgs generate from the same schemas. Regenerate both, in that order,
// after adding or changing a schema:
//
//	go generate ./msgs
package msgs

//go:generate go run ../cmd/gzmsgs -C .. compile
//go:generate go run ../cmd/gzmsgs -C .. generate
