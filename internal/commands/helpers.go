package commands

import (
	"github.com/spf13/cobra"

	"github.com/gazebosim/gz-msgs/internal/config"
	"github.com/gazebosim/gz-msgs/internal/logger"
	"github.com/gazebosim/gz-msgs/internal/pipeline"
)

// loadConfig reads the file named by --config, or gzmsgs.yml.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// newLogger builds the logger for cfg. --verbose forces debug and
// --log-level overrides the config.
func newLogger(cmd *cobra.Command, cfg *config.Config) (logger.Logger, error) {
	levelName := cfg.Log.Level
	if override, _ := cmd.Flags().GetString("log-level"); override != "" {
		levelName = override
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = logger.LevelDebug
	}
	log := logger.NewLogger(level, cmd.ErrOrStderr())
	logger.SetDefault(log)
	return log, nil
}

// setup loads config and returns a pipeline writing to the command's output.
func setup(cmd *cobra.Command) (*pipeline.Pipeline, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.File != "" {
		log.Debug("loaded config", logger.F("file", cfg.File))
	}
	return pipeline.New(cfg, log, cmd.OutOrStdout()), nil
}
