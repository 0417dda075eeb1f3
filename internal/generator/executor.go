package generator

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	DryRun bool
	Force  bool
	Writer io.Writer // Where to write output (defaults to os.Stdout)
}

// Execute validates every operation, then runs them in order.
//
// Paths reported by Tracked operations are journaled before each operation
// runs. If any operation fails, the journal is rolled back so the tree is
// left as it was before Execute started.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	for _, op := range ops {
		if err := op.Validate(ctx, opts.Force); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	if opts.DryRun {
		for _, op := range ops {
			fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s\n", op.Description())
		}
		return nil
	}

	tx := NewTransaction()
	for _, op := range ops {
		if tracked, ok := op.(Tracked); ok {
			for _, p := range tracked.Paths() {
				if err := tx.Track(p); err != nil {
					return rollback(tx, fmt.Errorf("execution failed: %w", err))
				}
			}
		}
		if err := op.Execute(ctx); err != nil {
			return rollback(tx, fmt.Errorf("execution failed: %w", err))
		}
		fmt.Fprintf(opts.Writer, "✓ %s\n", op.Description())
	}
	tx.Commit()
	return nil
}

func rollback(tx *Transaction, cause error) error {
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("%w (rollback: %v)", cause, err)
	}
	return cause
}
