// Package logic implements the file-level workflows behind the commands.
package logic

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/idelchi/gostego/internal/config"
	"github.com/idelchi/gostego/internal/stego"
	"github.com/idelchi/gostego/internal/wavbuf"
)

var (
	// ErrEmptyPassphraseFile is returned when the passphrase file holds no passphrase.
	ErrEmptyPassphraseFile = errors.New("passphrase file is empty")
	// ErrOutputMultiple is returned when --output is combined with several input files.
	ErrOutputMultiple = errors.New("--output requires exactly one input file")
)

// Runner executes workflows against a file system and a pair of output streams.
type Runner struct {
	Fs     afero.Fs
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Log    logrus.FieldLogger
}

// New returns a Runner over the OS file system and the process streams.
func New() *Runner {
	return &Runner{
		Fs:     afero.NewOsFs(),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Log:    logrus.StandardLogger(),
	}
}

// stats collects the counters printed by --stats.
type stats struct {
	scanned   int
	processed int
	errored   int
	size      int64
	start     time.Time
}

func newStats(scanned int) stats {
	return stats{scanned: scanned, start: time.Now()}
}

func (r *Runner) printStats(s stats) {
	fmt.Fprintf(r.Stderr, "\nStats\n")
	fmt.Fprintf(r.Stderr, "  Scanned:   %d\n", s.scanned)
	fmt.Fprintf(r.Stderr, "  Processed: %d\n", s.processed)
	fmt.Fprintf(r.Stderr, "  Errors:    %d\n", s.errored)
	//nolint:gosec // size is always non-negative (sum of byte counts)
	fmt.Fprintf(r.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, s.size))))
	fmt.Fprintf(r.Stderr, "  Duration:  %s\n", time.Since(s.start).Round(time.Millisecond))
}

// passphrase resolves the passphrase from the flag or the passphrase file.
// A single trailing newline in the file is ignored.
func (r *Runner) passphrase(cfg *config.Config) (string, error) {
	if err := cfg.RequirePassphrase(); err != nil {
		return "", err
	}

	if cfg.PassphraseFile == "" {
		return cfg.Passphrase, nil
	}

	data, err := afero.ReadFile(r.Fs, cfg.PassphraseFile)
	if err != nil {
		return "", fmt.Errorf("reading passphrase file: %w", err)
	}

	passphrase := strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
	if passphrase == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyPassphraseFile, cfg.PassphraseFile)
	}

	return passphrase, nil
}

// options builds the engine options for cfg.
func (r *Runner) options(cfg *config.Config) ([]stego.Option, error) {
	cipher, err := cfg.NewCipher()
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	return []stego.Option{
		stego.WithCipher(cipher),
		stego.WithFraming(cfg.Framing()),
		stego.WithLogger(r.Log),
	}, nil
}

// load reads and wraps a WAV container.
func (r *Runner) load(path string) (*wavbuf.Buffer, error) {
	file, err := r.Fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer file.Close()

	buf, err := wavbuf.Read(file)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}

	return buf, nil
}

// outputPath returns <dir>/<name><suffix><ext> for filename, or cfg.Output when set.
func outputPath(filename string, cfg *config.Config) string {
	if cfg.Output != "" {
		return cfg.Output
	}

	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)

	return filepath.Join(filepath.Dir(filename), base+cfg.Suffix+ext)
}
