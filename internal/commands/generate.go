package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gazebosim/gz-msgs/internal/output"
	"github.com/gazebosim/gz-msgs/internal/pipeline"
)

// GenerateCmd creates the 'generate' command.
func GenerateCmd() *cobra.Command {
	var opts pipeline.GenerateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the message registration table",
		Long: `Scan the configured schema files and write the registration artifacts:

  message_types.gen.go   MessageTypes(), type assertions, entry point contract
  register.gen.go        the registration table, RegisterAll and InitDefault
  compat.gen.go          RegisterCompat, only when compat.package is set

Files whose content would not change are left alone. When an existing file
differs it is overwritten unless --skip, --diff or --interactive say otherwise.

Examples:
  gzmsgs generate
  gzmsgs generate --dry-run
  gzmsgs generate --check --diff     # CI: fail if the artifacts are stale
  gzmsgs generate --strict           # fail when .pb_index files disagree`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Check && (opts.DryRun || opts.Skip || opts.Interactive) {
				return fmt.Errorf("--check cannot be combined with --dry-run, --skip or --interactive")
			}

			p, err := setup(cmd)
			if err != nil {
				return err
			}

			output.Verbose(fmt.Sprintf("Generating into %s (dry-run=%v, check=%v)", p.Config.Output.Dir, opts.DryRun, opts.Check))

			res, err := p.Generate(cmd.Context(), opts)
			if err != nil {
				return err
			}

			switch {
			case opts.Check:
				output.Success(fmt.Sprintf("Generated artifacts are up to date (%d messages)", res.Messages))
			case opts.DryRun:
				output.Info(fmt.Sprintf("Dry run: %d messages, nothing written", res.Messages))
			case len(res.Written) == 0:
				output.Success(fmt.Sprintf("Nothing to do, %d messages already registered", res.Messages))
			default:
				output.Success(fmt.Sprintf("Generated %d message registrations", res.Messages))
				for _, path := range res.Written {
					output.Step(path)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show what would be written without writing")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Fail if any artifact is out of date; write nothing")
	cmd.Flags().BoolVar(&opts.Diff, "diff", false, "Show a diff for artifacts that change")
	cmd.Flags().BoolVar(&opts.Skip, "skip", false, "Keep existing artifacts that differ")
	cmd.Flags().BoolVarP(&opts.Interactive, "interactive", "i", false, "Ask before overwriting artifacts that differ")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when the scan disagrees with the compiler's .pb_index files")

	return cmd
}
