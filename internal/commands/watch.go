package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gazebosim/gz-msgs/internal/output"
	"github.com/gazebosim/gz-msgs/internal/pipeline"
)

// WatchCmd creates the 'watch' command.
func WatchCmd() *cobra.Command {
	var debounce time.Duration
	var strict bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever a schema file changes",
		Long: `Run generate once, then again every time a schema file under the
configured paths is written, created, removed or renamed. Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := setup(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			output.Info("Watching for schema changes (Ctrl-C to stop)")
			return p.Watch(ctx, debounce, func(ctx context.Context) error {
				res, err := p.Generate(ctx, pipeline.GenerateOptions{Strict: strict})
				if err != nil {
					output.Error(err.Error())
					return err
				}
				if len(res.Written) > 0 {
					output.Success(fmt.Sprintf("Regenerated %d message registrations", res.Messages))
				}
				return nil
			})
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", pipeline.DefaultDebounce, "Wait this long after the last change before regenerating")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the scan disagrees with the compiler's .pb_index files")
	return cmd
}
