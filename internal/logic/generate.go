package logic

import (
	"fmt"

	"github.com/idelchi/gostego/internal/config"
	"github.com/idelchi/gostego/internal/fileutil"
	"github.com/idelchi/gostego/internal/wavbuf"
)

// RunGenerate writes cfg.Seconds of the 440 Hz test tone to cfg.Files[0].
func (r *Runner) RunGenerate(cfg *config.Config) error {
	buf, err := wavbuf.Sine(cfg.Seconds)
	if err != nil {
		return fmt.Errorf("generating sine: %w", err)
	}

	out := cfg.Files[0]

	if _, err := fileutil.WriteAtomic(r.Fs, out, buf.Bytes()); err != nil {
		return fmt.Errorf("writing %q: %w", out, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(r.Stdout, "Generated %q (%d s at %d Hz)\n", out, cfg.Seconds, wavbuf.SineRate)
	}

	return nil
}
