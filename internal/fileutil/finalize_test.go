package fileutil_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gostego/internal/fileutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("out", 0o750))

	size, err := fileutil.WriteAtomic(fs, "out/stego.wav", []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), size)

	data, err := afero.ReadFile(fs, "out/stego.wav")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	entries, err := afero.ReadDir(fs, "out")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestWriteAtomicOverwrites(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "file.wav", []byte("old contents"), 0o600))

	_, err := fileutil.WriteAtomic(fs, "file.wav", []byte("new"))
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "file.wav")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCleanupOnError(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	tc, err := fileutil.NewTempContext(fs, "result.wav")
	require.NoError(t, err)

	failure := assert.AnError
	tc.CleanupOnError(&failure)

	exists, err := afero.Exists(fs, tc.TmpName)
	require.NoError(t, err)
	assert.False(t, exists)
}
