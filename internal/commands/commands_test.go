package commands_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gostego/internal/commands"
	"github.com/idelchi/gostego/internal/config"
	"github.com/idelchi/gostego/internal/logic"
)

type cli struct {
	fs     afero.Fs
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newCLI() *cli {
	return &cli{fs: afero.NewMemMapFs()}
}

// run executes a fresh root command, as each process invocation would.
func (c *cli) run(stdin string, args ...string) error {
	c.stdout.Reset()
	c.stderr.Reset()

	logger, _ := test.NewNullLogger()

	runner := &logic.Runner{Fs: c.fs, Log: logger}

	root := commands.NewRootCommand(&config.Config{}, runner, "v0.0.0-test")
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&c.stdout)
	root.SetErr(&c.stderr)

	return root.Execute()
}

func TestRoundTrip(t *testing.T) {
	c := newCLI()

	require.NoError(t, c.run("", "generate", "--seconds", "1", "tone.wav"))
	assert.Contains(t, c.stdout.String(), "Generated \"tone.wav\"")

	require.NoError(t, c.run("", "embed", "-p", "super_secret_passphrase", "-m", "meet at dawn", "tone.wav"))
	assert.Equal(t, "Processed \"tone.wav\" -> \"tone.stego.wav\"\n", c.stdout.String())

	require.NoError(t, c.run("", "extract", "-p", "super_secret_passphrase", "tone.stego.wav"))
	assert.Equal(t, "\"tone.stego.wav\": \"meet at dawn\"\n", c.stdout.String())

	require.NoError(t, c.run("", "extract", "-p", "wrong_keyzz", "tone.stego.wav"))
	assert.NotContains(t, c.stdout.String(), "meet at dawn")
}

func TestFlagsOverrideDefaults(t *testing.T) {
	c := newCLI()

	require.NoError(t, c.run("", "gen", "-s", "1", "tone.wav"))

	args := []string{"--cipher", "aes-siv", "--hkdf", "--legacy", "-p", "key"}

	require.NoError(t, c.run("from stdin", append([]string{"embed", "-o", "out.wav", "tone.wav"}, args...)...))
	require.NoError(t, c.run("", append([]string{"x", "out.wav"}, args...)...))
	assert.Equal(t, "\"out.wav\": \"from stdin\"\n", c.stdout.String())
}

func TestEnvironment(t *testing.T) {
	c := newCLI()

	t.Setenv("GOSTEGO_PASSPHRASE", "from the environment")
	t.Setenv("GOSTEGO_CIPHER", "none")

	require.NoError(t, c.run("", "generate", "--seconds", "1", "tone.wav"))
	require.NoError(t, c.run("", "embed", "-m", "env", "tone.wav"))
	require.NoError(t, c.run("", "extract", "tone.stego.wav"))
	assert.Equal(t, "\"tone.stego.wav\": \"env\"\n", c.stdout.String())

	require.NoError(t, c.run("", "extract", "--cipher", "aes-siv", "tone.stego.wav"))
	assert.NotEqual(t, "\"tone.stego.wav\": \"env\"\n", c.stdout.String())
}

func TestCapacityCommand(t *testing.T) {
	c := newCLI()

	require.NoError(t, c.run("", "generate", "--seconds", "1", "tone.wav"))
	require.NoError(t, c.run("", "cap", "--stats", "tone.wav"))
	assert.Contains(t, c.stdout.String(), "44,100 samples")
	assert.Contains(t, c.stderr.String(), "Processed: 1")
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown cipher", args: []string{"extract", "-p", "k", "--cipher", "rot13", "a.wav"}},
		{name: "both passphrase sources", args: []string{"extract", "-p", "k", "--passphrase-file", "k.txt", "a.wav"}},
		{name: "both message sources", args: []string{"embed", "-p", "k", "-m", "x", "--message-file", "m.txt", "a.wav"}},
		{name: "zero workers", args: []string{"capacity", "-j", "0", "a.wav"}},
		{name: "bad log level", args: []string{"capacity", "--log-level", "loud", "a.wav"}},
		{name: "negative seconds", args: []string{"generate", "-s", "-1", "a.wav"}},
		{name: "legacy xchacha", args: []string{"extract", "-p", "k", "--legacy", "--cipher", "xchacha", "a.wav"}},
		{name: "hkdf without aes-siv", args: []string{"extract", "-p", "k", "--cipher", "none", "--hkdf", "a.wav"}},
		{name: "text without aes-siv", args: []string{"extract", "-p", "k", "--cipher", "xchacha", "--text", "a.wav"}},
		{name: "missing files", args: []string{"extract", "-p", "k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCLI()

			require.Error(t, c.run("", tt.args...))
		})
	}
}

func TestDefaultFlagsValidate(t *testing.T) {
	c := newCLI()

	require.NoError(t, c.run("", "generate", "tone.wav"))
	require.NoError(t, c.run("", "capacity", "tone.wav"))
	assert.Contains(t, c.stdout.String(), "441,000 samples")
}

func TestMissingPassphrase(t *testing.T) {
	c := newCLI()

	require.NoError(t, c.run("", "generate", "--seconds", "1", "tone.wav"))
	require.ErrorIs(t, c.run("", "extract", "tone.wav"), config.ErrMissingPassphrase)
}

func TestVersion(t *testing.T) {
	c := newCLI()

	require.NoError(t, c.run("", "--version"))
	assert.Equal(t, "v0.0.0-test\n", c.stdout.String())
}
