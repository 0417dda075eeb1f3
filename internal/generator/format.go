package generator

import (
	"fmt"

	"golang.org/x/tools/imports"
)

// FormatError reports generated Go source that does not parse. Source holds
// the unformatted text so callers can show or save it for debugging.
type FormatError struct {
	Filename string
	Source   []byte
	Err      error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format %s: %v", e.Filename, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// FormatGo runs goimports over generated source. filename is only used to
// resolve the package for import grouping; nothing is read from disk.
func FormatGo(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, &FormatError{Filename: filename, Source: src, Err: err}
	}
	return out, nil
}
