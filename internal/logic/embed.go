package logic

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/idelchi/gostego/internal/config"
	"github.com/idelchi/gostego/internal/fileutil"
	"github.com/idelchi/gostego/internal/stego"
)

// RunEmbed hides the message in the carrier named by cfg.Files[0] and writes the
// modified container next to it, or to --output.
func (r *Runner) RunEmbed(cfg *config.Config) error {
	s := newStats(len(cfg.Files))

	err := r.embed(cfg, &s)
	if err != nil {
		s.errored++
	}

	if cfg.Stats {
		r.printStats(s)
	}

	if err != nil {
		return fmt.Errorf("embedding: %w", err)
	}

	return nil
}

func (r *Runner) embed(cfg *config.Config, s *stats) error {
	passphrase, err := r.passphrase(cfg)
	if err != nil {
		return err
	}

	payload, err := r.message(cfg)
	if err != nil {
		return err
	}

	opts, err := r.options(cfg)
	if err != nil {
		return err
	}

	input := cfg.Files[0]

	carrier, err := r.load(input)
	if err != nil {
		return err
	}

	out, err := stego.EmbedWAV(carrier, payload, passphrase, opts...)
	if err != nil {
		return fmt.Errorf("embedding into %q: %w", input, err)
	}

	outPath := outputPath(input, cfg)

	size, err := fileutil.WriteAtomic(r.Fs, outPath, out.Bytes())
	if err != nil {
		return fmt.Errorf("writing %q: %w", outPath, err)
	}

	r.Log.WithFields(logrus.Fields{
		"function": "RunEmbed",
		"payload":  len(payload),
		"size":     size,
	}).Debug("wrote carrier")

	s.processed++
	s.size += size

	if !cfg.Quiet {
		fmt.Fprintf(r.Stdout, "Processed %q -> %q\n", input, outPath)
	}

	return nil
}

// message returns the payload from --message, --message-file, or standard input.
func (r *Runner) message(cfg *config.Config) ([]byte, error) {
	switch {
	case cfg.Message != "":
		return []byte(cfg.Message), nil
	case cfg.MessageFile != "":
		data, err := afero.ReadFile(r.Fs, cfg.MessageFile)
		if err != nil {
			return nil, fmt.Errorf("reading message file: %w", err)
		}

		return data, nil
	default:
		data, err := io.ReadAll(r.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading message from stdin: %w", err)
		}

		return data, nil
	}
}
