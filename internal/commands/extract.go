package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gostego/internal/config"
	"github.com/idelchi/gostego/internal/logic"
)

// NewExtractCommand creates a new cobra command for the extract subcommand.
func NewExtractCommand(cfg *config.Config, runner *logic.Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "extract [flags] files...",
		Aliases: []string{"x"},
		Short:   "Recover hidden messages from WAV files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return runner.RunExtract(cfg)
		},
	}

	cmd.Flags().StringP("output", "o", "", "Write the message to this file (single input only)")

	return cmd
}
