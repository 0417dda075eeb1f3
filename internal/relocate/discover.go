package relocate

import (
	"os"
	"strings"

	"github.com/gazebosim/gz-msgs/internal/filesystem"
	"github.com/gazebosim/gz-msgs/internal/generator"
)

// Suffixes pairs compiler output with its extension by file name.
type Suffixes struct {
	Primary   string // e.g. ".pb.h"
	Extension string // e.g. ".gz.h"
}

// DefaultSuffixes matches the C++ compiler plugin's outputs. Go output
// from protoc-gen-go has no extension file and is never relocated.
var DefaultSuffixes = Suffixes{Primary: ".pb.h", Extension: ".gz.h"}

// Discover returns a plan for every extension under root that has a
// matching primary next to it. Detail directories are not searched. The
// template's Primary and Extension are ignored.
func Discover(root string, sfx Suffixes, template Plan) ([]Plan, error) {
	template = template.withDefaults()
	opts := filesystem.WalkOptions{
		IgnoreDirs: append([]string{template.DetailDir}, filesystem.DefaultIgnoreDirs...),
	}

	var plans []Plan
	err := filesystem.Walk(root, opts, func(path string) error {
		if !strings.HasSuffix(path, sfx.Extension) {
			return nil
		}
		primary := strings.TrimSuffix(path, sfx.Extension) + sfx.Primary
		p := template
		p.Primary = primary
		p.Extension = path

		if _, err := os.Stat(primary); err != nil {
			// an interrupted run leaves only the detail behind
			if _, derr := os.Stat(p.Detail()); derr != nil {
				return nil
			}
		}
		plans = append(plans, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// Ops wraps plans as generator operations.
func Ops(plans []Plan) []generator.Operation {
	ops := make([]generator.Operation, len(plans))
	for i, p := range plans {
		ops[i] = NewOp(p)
	}
	return ops
}
