// Package commands provides the command-line interface for the gostego tool.
//
// It implements commands for:
//   - embedding a message into a WAV carrier
//   - extracting messages from carriers
//   - reporting carrier capacity
//   - generating a test tone carrier
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gostego/internal/config"
)

// preRun returns a PreRunE handler that stores positional args into cfg.Files
// and validates the configuration.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Files = args

		return cfg.Validate()
	}
}
