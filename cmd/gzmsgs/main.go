package main

import (
	"os"

	"github.com/gazebosim/gz-msgs/internal/commands"
	"github.com/gazebosim/gz-msgs/internal/output"
)

func main() {
	rootCmd := commands.RootCmd()
	rootCmd.AddCommand(commands.All()...)

	if err := rootCmd.Execute(); err != nil {
		output.SetWriter(os.Stderr)
		output.Error(err.Error())
		os.Exit(1)
	}
}
