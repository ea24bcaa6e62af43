package logic

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gostego/internal/config"
	"github.com/idelchi/gostego/internal/encryption"
	"github.com/idelchi/gostego/internal/fileutil"
	"github.com/idelchi/gostego/internal/stego"
)

// RunExtract recovers the payload of every file in cfg.Files concurrently.
// Payloads are printed as quoted strings, or written to --output for a single file.
//
//nolint:cyclop,gocognit // parallel processing pipeline with printer goroutine
func (r *Runner) RunExtract(cfg *config.Config) error {
	if cfg.Output != "" && len(cfg.Files) != 1 {
		return ErrOutputMultiple
	}

	passphrase, err := r.passphrase(cfg)
	if err != nil {
		return err
	}

	opts, err := r.options(cfg)
	if err != nil {
		return err
	}

	s := newStats(len(cfg.Files))

	type result struct {
		input   string
		payload []byte
		status  encryption.Status
		err     error
	}

	results := make(chan result, len(cfg.Files))

	group := errgroup.Group{}
	group.SetLimit(cfg.Parallel)

	printed := make(chan struct{})

	go func() {
		defer close(printed)

		for res := range results {
			if res.err != nil {
				s.errored++

				fmt.Fprintf(r.Stderr, "Error processing %q: %v\n", res.input, res.err)

				continue
			}

			if !res.status.OK() {
				r.Log.WithFields(logrus.Fields{
					"file":   res.input,
					"status": res.status,
				}).Warn("payload did not open, output is fallback bytes")
			}

			if cfg.Output != "" {
				size, err := fileutil.WriteAtomic(r.Fs, cfg.Output, res.payload)
				if err != nil {
					s.errored++

					fmt.Fprintf(r.Stderr, "Error writing %q: %v\n", cfg.Output, err)

					continue
				}

				s.processed++
				s.size += size

				if !cfg.Quiet {
					fmt.Fprintf(r.Stdout, "Processed %q -> %q\n", res.input, cfg.Output)
				}

				continue
			}

			s.processed++
			s.size += int64(len(res.payload))

			if !cfg.Quiet {
				fmt.Fprintf(r.Stdout, "%q: %q\n", res.input, res.payload)
			}
		}
	}()

	for _, file := range cfg.Files {
		group.Go(func() error {
			carrier, err := r.load(file)
			if err != nil {
				results <- result{input: file, err: err}

				return err
			}

			payload, status, err := stego.ExtractWAV(carrier, passphrase, opts...)
			if err != nil {
				results <- result{input: file, err: err}

				return err
			}

			results <- result{input: file, payload: payload, status: status}

			return nil
		})
	}

	err = group.Wait()

	close(results)

	<-printed

	if cfg.Stats {
		r.printStats(s)
	}

	if err != nil {
		return fmt.Errorf("extracting: %w", err)
	}

	if s.errored > 0 {
		return fmt.Errorf("extracting: %d file(s) failed", s.errored)
	}

	return nil
}
