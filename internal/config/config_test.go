package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gostego/internal/config"
	"github.com/idelchi/gostego/internal/encryption"
	"github.com/idelchi/gostego/internal/stego"
)

func valid() config.Config {
	return config.Config{
		Passphrase: "secret",
		Cipher:     "aes-siv",
		Parallel:   2,
		LogLevel:   "warn",
		Files:      []string{"carrier.wav"},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "passphrase and file", mutate: func(c *config.Config) { c.PassphraseFile = "key.txt" }, wantErr: true},
		{name: "message and file", mutate: func(c *config.Config) {
			c.Message = "hi"
			c.MessageFile = "msg.txt"
		}, wantErr: true},
		{name: "unknown cipher", mutate: func(c *config.Config) { c.Cipher = "rot13" }, wantErr: true},
		{name: "no files", mutate: func(c *config.Config) { c.Files = nil }, wantErr: true},
		{name: "zero workers", mutate: func(c *config.Config) { c.Parallel = 0 }, wantErr: true},
		{name: "bad log level", mutate: func(c *config.Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "negative seconds", mutate: func(c *config.Config) { c.Seconds = -1 }, wantErr: true},
		{name: "legacy xchacha", mutate: func(c *config.Config) {
			c.Legacy = true
			c.Cipher = "xchacha"
		}, wantErr: true},
		{name: "legacy aes-siv", mutate: func(c *config.Config) { c.Legacy = true }},
		{name: "warning log level", mutate: func(c *config.Config) { c.LogLevel = "warning" }},
		{name: "text aes-siv", mutate: func(c *config.Config) { c.Text = true }},
		{name: "hkdf aes-siv", mutate: func(c *config.Config) { c.HKDF = true }},
		{name: "text none", mutate: func(c *config.Config) {
			c.Text = true
			c.Cipher = "none"
		}, wantErr: true},
		{name: "hkdf xchacha", mutate: func(c *config.Config) {
			c.HKDF = true
			c.Cipher = "xchacha"
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, config.ErrInvalid)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateMessages(t *testing.T) {
	t.Parallel()

	cfg := valid()
	cfg.PassphraseFile = "key.txt"
	cfg.Cipher = "rot13"
	cfg.Files = nil

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--passphrase and --passphrase-file are mutually exclusive")
	assert.Contains(t, err.Error(), `--cipher must be one of [none aes-siv xchacha], got "rot13"`)
	assert.Contains(t, err.Error(), "at least 1 files required")

	cfg = valid()
	cfg.Legacy = true
	cfg.Cipher = "xchacha"
	require.ErrorIs(t, cfg.Validate(), config.ErrLegacyCipher)

	for _, cipher := range []string{"none", "xchacha"} {
		cfg = valid()
		cfg.Cipher = cipher
		cfg.HKDF = true
		require.ErrorIs(t, cfg.Validate(), config.ErrCipherOption, cipher)

		cfg.HKDF = false
		cfg.Text = true
		require.ErrorIs(t, cfg.Validate(), config.ErrCipherOption, cipher)
	}
}

func TestRequirePassphrase(t *testing.T) {
	t.Parallel()

	cfg := valid()
	require.NoError(t, cfg.RequirePassphrase())

	cfg.Passphrase = ""
	require.ErrorIs(t, cfg.RequirePassphrase(), config.ErrMissingPassphrase)

	cfg.PassphraseFile = "key.txt"
	require.NoError(t, cfg.RequirePassphrase())
}

func TestNewCipher(t *testing.T) {
	t.Parallel()

	cfg := valid()

	c, err := cfg.NewCipher()
	require.NoError(t, err)
	assert.IsType(t, &encryption.AESSIV{}, c)

	cfg.Cipher = "none"
	c, err = cfg.NewCipher()
	require.NoError(t, err)
	assert.IsType(t, encryption.None{}, c)

	cfg.Cipher = "bogus"
	_, err = cfg.NewCipher()
	require.ErrorIs(t, err, encryption.ErrUnknownVariant)
}

func TestLegacyForcesTextEncoding(t *testing.T) {
	t.Parallel()

	cfg := valid()
	cfg.Legacy = true
	assert.Equal(t, stego.FramingLegacy, cfg.Framing())

	c, err := cfg.NewCipher()
	require.NoError(t, err)

	sealed, err := c.Seal([]byte{0, 1, 2, 0xFF}, cfg.Passphrase)
	require.NoError(t, err)

	for _, b := range sealed {
		require.NotZero(t, b)
		require.Less(t, b, byte(0x80))
	}
}
