// Package config holds the command-line configuration shared by all commands.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gostego/internal/encryption"
	"github.com/idelchi/gostego/internal/stego"
)

// Config is populated by viper from flags and GOSTEGO_* environment variables.
type Config struct {
	// Common flags
	Passphrase     string `mapstructure:"passphrase"      validate:"exclusive=PassphraseFile"`
	PassphraseFile string `mapstructure:"passphrase-file"`
	Cipher         string `mapstructure:"cipher"          validate:"oneof=none aes-siv xchacha"`
	Text           bool   `mapstructure:"text"`
	HKDF           bool   `mapstructure:"hkdf"`
	Legacy         bool   `mapstructure:"legacy"`
	Parallel       int    `mapstructure:"parallel"        validate:"min=1"`
	Quiet          bool   `mapstructure:"quiet"`
	Stats          bool   `mapstructure:"stats"`
	LogLevel       string `mapstructure:"log-level"       validate:"oneof=panic fatal error warn warning info debug trace"`

	// Command-specific flags
	Output      string `mapstructure:"output"`
	Suffix      string `mapstructure:"suffix"`
	Message     string `mapstructure:"message"      validate:"exclusive=MessageFile"`
	MessageFile string `mapstructure:"message-file"`
	Seconds     int    `mapstructure:"seconds"      validate:"min=0"`

	// Positional arguments
	Files []string `validate:"min=1"`
}

var (
	// ErrMissingPassphrase is returned when neither passphrase source is set.
	ErrMissingPassphrase = errors.New("a passphrase or passphrase file is required")
	// ErrLegacyCipher is returned when legacy framing is combined with a binary-only cipher.
	ErrLegacyCipher = errors.New("legacy framing carries text only")
	// ErrCipherOption is returned when an AES-SIV-only flag is set for another cipher.
	ErrCipherOption = errors.New("option only applies to the aes-siv cipher")
)

// Validate validates the configuration against the struct tags.
func (c *Config) Validate() error {
	validate, err := newValidator()
	if err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return describe(err)
	}

	if c.Legacy && c.Cipher == string(encryption.VariantXChaCha) {
		return fmt.Errorf("%w: %w: cipher %q", ErrInvalid, ErrLegacyCipher, c.Cipher)
	}

	if c.Cipher != string(encryption.VariantAESSIV) {
		switch {
		case c.Text:
			return fmt.Errorf("%w: %w: --text with cipher %q", ErrInvalid, ErrCipherOption, c.Cipher)
		case c.HKDF:
			return fmt.Errorf("%w: %w: --hkdf with cipher %q", ErrInvalid, ErrCipherOption, c.Cipher)
		}
	}

	return nil
}

// RequirePassphrase checks that a passphrase source was given.
func (c *Config) RequirePassphrase() error {
	if c.Passphrase == "" && c.PassphraseFile == "" {
		return ErrMissingPassphrase
	}

	return nil
}

// NewCipher builds the configured cipher.
func (c *Config) NewCipher() (encryption.Cipher, error) {
	variant, err := encryption.ParseVariant(c.Cipher)
	if err != nil {
		return nil, err
	}

	var opts []encryption.Option

	if c.Text || c.Legacy {
		opts = append(opts, encryption.WithTextEncoding())
	}

	if c.HKDF {
		opts = append(opts, encryption.WithKeyDerivation(encryption.KeyDerivationHKDF))
	}

	return encryption.New(variant, opts...)
}

// Framing returns the configured framing.
func (c *Config) Framing() stego.Framing {
	if c.Legacy {
		return stego.FramingLegacy
	}

	return stego.FramingLengthPrefixed
}
