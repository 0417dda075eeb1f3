package scanner

import (
	"errors"
	"fmt"
	"strings"
)

// MessageDescriptor identifies one top-level message declaration.
type MessageDescriptor struct {
	Package []string
	Name    string
}

// Dotted joins the package segments with ".".
func (d MessageDescriptor) Dotted() string {
	return strings.Join(d.Package, ".")
}

// Scoped joins the package segments and the name with sep.
func (d MessageDescriptor) Scoped(sep string) string {
	if len(d.Package) == 0 {
		return d.Name
	}
	return strings.Join(d.Package, sep) + sep + d.Name
}

// Key is the fully-qualified registry key, e.g. "gz.msgs.Vector3d".
func (d MessageDescriptor) Key() string {
	return d.Scoped(".")
}

// Validate reports an empty name or an empty package segment.
func (d MessageDescriptor) Validate() error {
	var errs []error
	if d.Name == "" {
		errs = append(errs, errors.New("message name is empty"))
	}
	for i, seg := range d.Package {
		if seg == "" {
			errs = append(errs, fmt.Errorf("package segment %d is empty", i))
		}
	}
	return errors.Join(errs...)
}

func (d MessageDescriptor) String() string {
	return d.Key()
}

// Located is a descriptor plus where it was declared.
type Located struct {
	MessageDescriptor
	Path string
	Line int
}

func (l Located) Position() string {
	if l.Path == "" {
		return fmt.Sprintf("line %d", l.Line)
	}
	return fmt.Sprintf("%s:%d", l.Path, l.Line)
}
