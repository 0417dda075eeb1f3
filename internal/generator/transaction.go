package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Transaction journals the prior state of files so a batch of writes and
// moves can be undone.
type Transaction struct {
	snapshots []snapshot
	seen      map[string]bool
	done      bool
}

// snapshot is the state of one path before the transaction touched it.
type snapshot struct {
	path    string
	existed bool
	content []byte
	mode    fs.FileMode
}

// NewTransaction creates an empty transaction.
func NewTransaction() *Transaction {
	return &Transaction{seen: make(map[string]bool)}
}

// Track records the current state of path. Tracking the same path twice
// keeps the first snapshot.
func (t *Transaction) Track(path string) error {
	if t.done {
		return fmt.Errorf("transaction already finished")
	}
	if t.seen[path] {
		return nil
	}

	s := snapshot{path: path}
	info, err := os.Stat(path)
	switch {
	case err == nil:
		content, err := os.ReadFile(path)
		if err != nil {
			return IOError("snapshot", path, err)
		}
		s.existed = true
		s.content = content
		s.mode = info.Mode().Perm()
	case errors.Is(err, fs.ErrNotExist):
	default:
		return IOError("stat", path, err)
	}

	t.seen[path] = true
	t.snapshots = append(t.snapshots, s)
	return nil
}

// Commit discards the journal. Rollback after Commit does nothing.
func (t *Transaction) Commit() {
	t.done = true
	t.snapshots = nil
}

// Rollback restores every tracked path in reverse order. It keeps going
// after a failure and returns all errors joined.
func (t *Transaction) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true

	var errs []error
	for i := len(t.snapshots) - 1; i >= 0; i-- {
		s := t.snapshots[i]
		if !s.existed {
			if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, IOError("remove", s.path, err))
			}
			continue
		}
		if err := WriteAtomic(s.path, s.content, s.mode); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
