// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const ownerReadWrite = 0o600

// TempContext holds state for an atomic file write operation.
type TempContext struct {
	Fs      afero.Fs
	TmpFile afero.File
	TmpName string
}

// NewTempContext creates a temp file next to outPath for atomic writing.
// Caller must defer CleanupOnError.
func NewTempContext(fs afero.Fs, outPath string) (*TempContext, error) {
	tmpFile, err := afero.TempFile(fs, filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &TempContext{
		Fs:      fs,
		TmpFile: tmpFile,
		TmpName: tmpFile.Name(),
	}, nil
}

// CleanupOnError closes the temp file and removes it if the write failed.
func (tc *TempContext) CleanupOnError(errp *error) {
	tc.TmpFile.Close() //nolint:errcheck,gosec // best-effort cleanup

	if *errp != nil {
		tc.Fs.Remove(tc.TmpName) //nolint:errcheck,gosec // best-effort cleanup
	}
}

// WriteAtomic writes data to outPath through a temp file and a rename, and returns
// the size of the result.
func WriteAtomic(fs afero.Fs, outPath string, data []byte) (size int64, err error) {
	tc, err := NewTempContext(fs, outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	if _, err = tc.TmpFile.Write(data); err != nil {
		return 0, fmt.Errorf("writing content: %w", err)
	}

	if err = fs.Chmod(tc.TmpName, os.FileMode(ownerReadWrite)); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err = tc.TmpFile.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err = fs.Rename(tc.TmpName, outPath); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	return FinalizeOutput(fs, outPath)
}

// FinalizeOutput returns the output file size.
func FinalizeOutput(fs afero.Fs, outPath string) (int64, error) {
	outInfo, err := fs.Stat(outPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", outPath, err)
	}

	return outInfo.Size(), nil
}
