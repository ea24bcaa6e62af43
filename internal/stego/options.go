package stego

import (
	"github.com/sirupsen/logrus"

	"github.com/idelchi/gostego/internal/encryption"
)

// Framing selects the bit framing.
type Framing byte

const (
	// FramingLengthPrefixed writes a 16-bit length before the payload and fails when
	// the carrier is too small.
	FramingLengthPrefixed Framing = iota
	// FramingLegacy writes the payload and a zero terminator, truncates to the carrier
	// and fills every remaining slot with decoy bits. Payloads must not contain zero
	// bytes or bytes above 0x7F; use text encoding when sealing.
	FramingLegacy
)

func (f Framing) String() string {
	if f == FramingLegacy {
		return "legacy"
	}

	return "length-prefixed"
}

type options struct {
	cipher  encryption.Cipher
	framing Framing
	logger  logrus.FieldLogger
}

// Option configures Embed, Extract and Capacity.
type Option func(*options)

// WithCipher sets the payload cipher. The default is encryption.None.
func WithCipher(c encryption.Cipher) Option {
	return func(o *options) {
		if c != nil {
			o.cipher = c
		}
	}
}

// WithLegacyFraming selects FramingLegacy.
func WithLegacyFraming() Option {
	return WithFraming(FramingLegacy)
}

// WithFraming selects the framing.
func WithFraming(f Framing) Option {
	return func(o *options) {
		o.framing = f
	}
}

// WithLogger sets the logger. The default is the logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		cipher:  encryption.None{},
		framing: FramingLengthPrefixed,
		logger:  logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
