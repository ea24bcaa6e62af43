package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gostego/internal/config"
	"github.com/idelchi/gostego/internal/logic"
)

// NewEmbedCommand creates a new cobra command for the embed subcommand.
func NewEmbedCommand(cfg *config.Config, runner *logic.Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "embed [flags] carrier.wav",
		Short: "Hide a message in a WAV file",
		Long: `Hide a message in a WAV file.
The message is taken from --message, --message-file, or standard input.
The result is written to <name><suffix>.wav next to the carrier, or to --output.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return runner.RunEmbed(cfg)
		},
	}

	cmd.Flags().StringP("message", "m", "", "Message to hide")
	cmd.Flags().String("message-file", "", "Path to a file holding the message")
	cmd.Flags().StringP("output", "o", "", "Output path, defaults to the carrier name with the suffix")
	cmd.Flags().String("suffix", ".stego", "Suffix inserted before the extension of the output file")

	return cmd
}
