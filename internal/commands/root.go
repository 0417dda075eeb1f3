// Package commands implements the gzmsgs command line.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	gzmsgs "github.com/gazebosim/gz-msgs"
	"github.com/gazebosim/gz-msgs/internal/output"
)

// RootCmd creates the root command. Subcommands are added by main.
func RootCmd() *cobra.Command {
	var (
		verbose bool
		chdir   string
	)

	cmd := &cobra.Command{
		Use:   "gzmsgs",
		Short: "Message registry and conversion code generator",
		Long: `gzmsgs scans schema files for message declarations and generates the
registration table that lets a program create any message from its
fully-qualified type name.

Typical workflow:
  gzmsgs compile     # run protoc; writes the *.pb.go message types
  gzmsgs generate    # write message_types.gen.go and register.gen.go

generate refuses to register a message whose Go type compile has not
produced yet. Projects that also build C++ headers can set relocate.dir
and run "gzmsgs relocate" to install public headers over the .pb.h files;
Go-only projects never need it.

Settings are read from gzmsgs.yml in the working directory and can be
overridden with GZMSGS_* environment variables (GZMSGS_OUTPUT_DIR=gen).
Use -C to run from another directory, as go:generate does:
  //go:generate go run ../cmd/gzmsgs -C .. generate`,
		Version:       gzmsgs.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			output.SetVerbose(verbose)
			if chdir != "" {
				if err := os.Chdir(chdir); err != nil {
					return fmt.Errorf("-C %s: %w", chdir, err)
				}
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().StringVarP(&chdir, "chdir", "C", "", "Change to this directory before doing anything")
	cmd.PersistentFlags().String("config", "", "Config file (default ./gzmsgs.yml)")
	cmd.PersistentFlags().String("log-level", "", "Override log.level (debug, info, warn, error, silent)")

	return cmd
}

// All returns every subcommand.
func All() []*cobra.Command {
	return []*cobra.Command{
		GenerateCmd(),
		ScanCmd(),
		CompileCmd(),
		RelocateCmd(),
		ListCmd(),
		InfoCmd(),
		WatchCmd(),
		ConfigCmd(),
		VersionCmd(),
	}
}
