package relocate

import (
	"context"
	"fmt"
	"os"

	"github.com/gazebosim/gz-msgs/internal/generator"
)

// Op runs a Plan as a generator.Operation.
type Op struct {
	Plan Plan

	state     State
	inspected bool
}

// NewOp wraps p.
func NewOp(p Plan) *Op {
	return &Op{Plan: p.withDefaults()}
}

func (op *Op) Validate(ctx context.Context, force bool) error {
	if op.Plan.Primary == "" || op.Plan.Extension == "" {
		return fmt.Errorf("relocate needs both a primary and an extension path")
	}
	if op.Plan.Primary == op.Plan.Extension {
		return fmt.Errorf("primary and extension are the same file: %s", op.Plan.Primary)
	}
	if _, err := os.Stat(op.Plan.Extension); err != nil {
		return generator.IOError("stat", op.Plan.Extension, err)
	}
	state, err := op.Plan.Inspect()
	if err != nil {
		return err
	}
	op.state, op.inspected = state, true
	if state == Missing {
		return fmt.Errorf("nothing to relocate: neither %s nor %s exists", op.Plan.Primary, op.Plan.Detail())
	}
	return nil
}

func (op *Op) Execute(ctx context.Context) error {
	return Relocate(ctx, op.Plan)
}

// Description reflects the state seen by Validate, so it reads the same
// before and after Execute.
func (op *Op) Description() string {
	if !op.inspected {
		op.state, _ = op.Plan.Inspect()
		op.inspected = true
	}
	switch op.state {
	case Installed:
		return fmt.Sprintf("Refresh %s", op.Plan.Primary)
	case Interrupted:
		return fmt.Sprintf("Restore %s from %s", op.Plan.Primary, op.Plan.Detail())
	default:
		return fmt.Sprintf("Relocate %s -> %s", op.Plan.Primary, op.Plan.Detail())
	}
}

// Paths lists the files Relocate may replace.
func (op *Op) Paths() []string {
	return []string{op.Plan.Primary, op.Plan.Detail()}
}
