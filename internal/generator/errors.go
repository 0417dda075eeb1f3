package generator

import (
	"errors"
	"fmt"
)

// ErrArtifactIO is the sentinel matched by every ArtifactIOError.
var ErrArtifactIO = errors.New("generator: artifact I/O failed")

// ArtifactIOError reports a filesystem failure while writing or moving an
// artifact. Path is the file the failing step was acting on.
type ArtifactIOError struct {
	Op   string
	Path string
	Err  error
}

// Error returns the error string.
func (e *ArtifactIOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *ArtifactIOError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches ArtifactIOError.
func (e *ArtifactIOError) Is(err error) bool {
	return err == ErrArtifactIO
}

// IOError wraps err as an ArtifactIOError, or returns nil if err is nil.
func IOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &ArtifactIOError{Op: op, Path: path, Err: err}
}
