package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	gzmsgs "github.com/gazebosim/gz-msgs"
)

// VersionCmd creates the 'version' command.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gzmsgs version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gzmsgs %s (%s %s/%s)\n", gzmsgs.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
