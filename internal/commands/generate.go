package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gostego/internal/config"
	"github.com/idelchi/gostego/internal/logic"
)

// NewGenerateCommand creates a new cobra command for the generate subcommand.
func NewGenerateCommand(cfg *config.Config, runner *logic.Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate [flags] output.wav",
		Aliases: []string{"gen"},
		Short:   "Write a 440 Hz mono test tone",
		Args:    cobra.ExactArgs(1),
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return runner.RunGenerate(cfg)
		},
	}

	cmd.Flags().IntP("seconds", "s", 10, "Length of the tone in seconds")

	return cmd
}
