package logic

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gostego/internal/config"
	"github.com/idelchi/gostego/internal/stego"
)

// RunCapacity prints the sample count and payload capacity of every file.
func (r *Runner) RunCapacity(cfg *config.Config) error {
	s := newStats(len(cfg.Files))

	opts := []stego.Option{stego.WithFraming(cfg.Framing()), stego.WithLogger(r.Log)}

	type result struct {
		input    string
		samples  int
		capacity int
		err      error
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

			s.processed++
			s.size += int64(res.capacity)

			if !cfg.Quiet {
				fmt.Fprintf(r.Stdout, "%q: %s samples, %s (%d bytes) capacity\n",
					res.input,
					humanize.Comma(int64(res.samples)),
					humanize.IBytes(uint64(res.capacity)), //nolint:gosec // capacity is never negative
					res.capacity,
				)
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

			samples, capacity, err := stego.CapacityWAV(carrier, opts...)
			if err != nil {
				results <- result{input: file, err: err}

				return err
			}

			results <- result{input: file, samples: samples, capacity: capacity}

			return nil
		})
	}

	err := group.Wait()

	close(results)

	<-printed

	if cfg.Stats {
		r.printStats(s)
	}

	if err != nil {
		return fmt.Errorf("computing capacity: %w", err)
	}

	return nil
}
