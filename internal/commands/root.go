package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/gostego/internal/config"
	"github.com/idelchi/gostego/internal/encryption"
	"github.com/idelchi/gostego/internal/logic"
)

const (
	// EnvPrefix is the prefix of environment variables that override flags.
	EnvPrefix = "GOSTEGO"

	defaultLogLevel = "warn"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, runner *logic.Runner, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "gostego [flags] command [flags]"
	root.Short = "Audio steganography utility"
	root.Long = `Hides messages in the least significant bits of 16-bit PCM WAV files.
The passphrase selects which samples carry the message, and optionally encrypts it.`
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := bind(cmd, cfg); err != nil {
			return err
		}

		runner.Stdin = cmd.InOrStdin()
		runner.Stdout = cmd.OutOrStdout()
		runner.Stderr = cmd.ErrOrStderr()

		return configureLogging(cmd, cfg.LogLevel)
	}

	root.SetVersionTemplate("{{.Version}}\n")

	variants := make([]string, 0, len(encryption.Variants()))
	for _, v := range encryption.Variants() {
		variants = append(variants, string(v))
	}

	flags := root.PersistentFlags()

	flags.StringP("passphrase", "p", "", "Passphrase selecting the sample order and encryption key")
	flags.String("passphrase-file", "", "Path to a file containing the passphrase")
	flags.StringP("cipher", "c", string(encryption.VariantAESSIV),
		fmt.Sprintf("Payload encryption (%s)", strings.Join(variants, ", ")))
	flags.Bool("text", false, "Store ciphertext as base64url text")
	flags.Bool("hkdf", false, "Derive the AES-SIV key with HKDF instead of the duplicated digest")
	flags.Bool("legacy", false, "Use null-terminated framing with decoy fill")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.Bool("stats", false, "Print statistics to stderr when done")
	flags.String("log-level", defaultLogLevel, "Log level (panic, fatal, error, warn, info, debug, trace)")

	root.AddCommand(
		NewEmbedCommand(cfg, runner),
		NewExtractCommand(cfg, runner),
		NewCapacityCommand(cfg, runner),
		NewGenerateCommand(cfg, runner),
	)

	return root
}

// bind loads flags and GOSTEGO_* environment variables into cfg.
func bind(cmd *cobra.Command, cfg *config.Config) error {
	v := viper.New()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return nil
}

func configureLogging(cmd *cobra.Command, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}

	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(lvl)

	return nil
}
