package generator

import (
	"bytes"
	"errors"
	"os"
)

// Stale returns the artifacts whose on-disk content is missing or differs
// from the generated content.
func Stale(artifacts []Artifact) ([]Artifact, error) {
	var stale []Artifact
	for _, a := range artifacts {
		existing, err := os.ReadFile(a.Path)
		if errors.Is(err, os.ErrNotExist) {
			stale = append(stale, a)
			continue
		}
		if err != nil {
			return nil, IOError("read", a.Path, err)
		}
		if !bytes.Equal(existing, a.Content) {
			stale = append(stale, a)
		}
	}
	return stale, nil
}
