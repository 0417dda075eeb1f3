package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gazebosim/gz-msgs/internal/exec"
	"github.com/gazebosim/gz-msgs/internal/output"
)

// CompileCmd creates the 'compile' command.
func CompileCmd() *cobra.Command {
	var noSpinner bool

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Run the schema compiler over every schema file",
		Long: `Run the compiler selected by compiler.preset (protoc, buf or custom).

A custom compiler is configured with compiler.command and compiler.args;
the arguments may use {out}, {proto_path} and {files}.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := setup(cmd)
			if err != nil {
				return err
			}
			if noSpinner {
				p.Config.Compiler.Spinner = false
			}

			stderr := exec.NewPrefixWriter(cmd.ErrOrStderr(), fmt.Sprintf("[%s] ", p.Config.Compiler.Preset))
			defer stderr.Flush()

			e := exec.NewExecutor(&exec.Options{Stdout: cmd.OutOrStdout(), Stderr: stderr})
			if err := p.Compile(cmd.Context(), e); err != nil {
				return fmt.Errorf("schema compiler failed: %w", err)
			}
			output.Success("Schema compiler finished")
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSpinner, "no-spinner", false, "Stream compiler output instead of showing a spinner")
	return cmd
}
