package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gostego/internal/config"
	"github.com/idelchi/gostego/internal/logic"
)

// NewCapacityCommand creates a new cobra command for the capacity subcommand.
func NewCapacityCommand(cfg *config.Config, runner *logic.Runner) *cobra.Command {
	return &cobra.Command{
		Use:     "capacity [flags] files...",
		Aliases: []string{"cap"},
		Short:   "Show how many payload bytes each WAV file can hold",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return runner.RunCapacity(cfg)
		},
	}
}
