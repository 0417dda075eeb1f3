package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gazebosim/gz-msgs/internal/output"
)

// ScanCmd creates the 'scan' command.
func ScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [files...]",
		Short: "List the message declarations found in schema files",
		Long: `Print every top-level message declaration with its registry key and
location. Without arguments the configured schema paths are scanned.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := setup(cmd)
			if err != nil {
				return err
			}

			files := args
			if len(files) == 0 {
				if files, err = p.Schemas(); err != nil {
					return err
				}
			}

			located := p.Scan(files)
			w := cmd.OutOrStdout()
			for _, l := range located {
				fmt.Fprintf(w, "%-40s %s\n", l.Key(), l.Position())
			}
			output.Verbose(fmt.Sprintf("%d messages in %d files", len(located), len(files)))
			return nil
		},
	}
	return cmd
}
