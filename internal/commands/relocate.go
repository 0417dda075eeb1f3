package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gazebosim/gz-msgs/internal/output"
)

var errRelocateFlags = errors.New("--primary and --extension must be given together")

// RelocateCmd creates the 'relocate' command.
func RelocateCmd() *cobra.Command {
	var primary, extension string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "relocate",
		Short: "Install public headers over C++ compiler output",
		Long: `Move a compiler-generated C++ header into the detail directory and install
a public header in its place that includes the original and then the
hand-written extension. Go output is never relocated.

Without --primary and --extension every relocate.extension file (*.gz.h)
under relocate.dir that has a matching relocate.primary file (*.pb.h) is
relocated. relocate.dir is unset by default, so discovery is opt-in.
Running it twice is safe.

Examples:
  gzmsgs relocate
  gzmsgs relocate --primary gz/msgs/vector3d.pb.h --extension gz/msgs/vector3d.gz.h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (primary == "") != (extension == "") {
				return errRelocateFlags
			}
			p, err := setup(cmd)
			if err != nil {
				return err
			}
			if err := p.Relocate(cmd.Context(), primary, extension, dryRun); err != nil {
				return err
			}
			if !dryRun {
				output.Success("Headers relocated")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&primary, "primary", "", "Compiler output at the public path")
	cmd.Flags().StringVar(&extension, "extension", "", "Hand-written header included after the original")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be moved without moving")
	return cmd
}
