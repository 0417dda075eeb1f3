package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/gazebosim/gz-msgs/internal/generator"
	"github.com/gazebosim/gz-msgs/internal/relocate"
)

// ErrRelocateDisabled is returned when relocation is asked to discover
// pairs but relocate.dir is unset.
var ErrRelocateDisabled = errors.New("relocation is disabled")

// PlanTemplate carries the configured relocation settings.
func (p *Pipeline) PlanTemplate() relocate.Plan {
	r := p.Config.Relocate
	return relocate.Plan{
		DetailDir:     r.DetailDir,
		IncludeFormat: r.IncludeFormat,
		CommentPrefix: r.CommentPrefix,
		Marker:        r.Marker,
	}
}

// Suffixes returns the configured primary/extension file suffixes.
func (p *Pipeline) Suffixes() relocate.Suffixes {
	return relocate.Suffixes{Primary: p.Config.Relocate.Primary, Extension: p.Config.Relocate.Extension}
}

// Relocate relocates one primary/extension pair, or every pair found under
// relocate.dir when both are empty.
func (p *Pipeline) Relocate(ctx context.Context, primary, extension string, dryRun bool) error {
	var plans []relocate.Plan
	if primary != "" || extension != "" {
		plan := p.PlanTemplate()
		plan.Primary = primary
		plan.Extension = extension
		plans = append(plans, plan)
	} else {
		dir := p.Config.Relocate.Dir
		if dir == "" {
			sfx := p.Suffixes()
			return fmt.Errorf("%w: set relocate.dir to the directory a C++ compiler plugin writes %s and %s headers to",
				ErrRelocateDisabled, sfx.Primary, sfx.Extension)
		}
		found, err := relocate.Discover(dir, p.Suffixes(), p.PlanTemplate())
		if err != nil {
			return err
		}
		plans = found
	}

	if len(plans) == 0 {
		p.Log.Info("nothing to relocate")
		return nil
	}
	return generator.Execute(ctx, relocate.Ops(plans), generator.ExecuteOptions{DryRun: dryRun, Force: true, Writer: p.Out})
}
