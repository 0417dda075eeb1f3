package commands

import (
	"github.com/spf13/cobra"

	"github.com/gazebosim/gz-msgs/internal/config"
)

// ConfigCmd creates the 'config' command.
func ConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, gzmsgs.yml and GZMSGS_*
environment overrides are applied. The output is valid gzmsgs.yml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
