package stego

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/idelchi/gostego/internal/encryption"
	"github.com/idelchi/gostego/internal/frame"
	"github.com/idelchi/gostego/internal/lsb"
	"github.com/idelchi/gostego/pkg/keyed"
)

// Embed returns a copy of samples carrying payload under passphrase.
// Only the least-significant bit of selected samples differs from the input.
func Embed(samples []int16, payload []byte, passphrase string, opts ...Option) ([]int16, error) {
	o := newOptions(opts)

	sealed, err := o.cipher.Seal(payload, passphrase)
	if err != nil {
		return nil, fmt.Errorf("sealing payload: %w", err)
	}

	var bits frame.Bits

	switch o.framing {
	case FramingLegacy:
		bits = frame.EncodeLegacy(sealed)
	default:
		bits, err = frame.Encode(sealed)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCapacity, err)
		}

		if len(bits) > len(samples) {
			return nil, fmt.Errorf("%w: need %d samples, have %d", ErrCapacity, len(bits), len(samples))
		}
	}

	rng := keyed.NewRand(keyed.Seed(passphrase))
	order := keyed.Permute(rng, len(samples))

	out := make([]int16, len(samples))
	copy(out, samples)

	truncated := len(bits) > len(order)
	if truncated {
		bits = bits[:len(order)]
	}

	lsb.Write(out, order, bits)

	if o.framing == FramingLegacy {
		lsb.WriteDecoys(out, order[len(bits):], rng.Printable)
	}

	o.logger.WithFields(logrus.Fields{
		"function":  "Embed",
		"samples":   len(samples),
		"payload":   len(payload),
		"sealed":    len(sealed),
		"bits":      len(bits),
		"framing":   o.framing.String(),
		"truncated": truncated,
	}).Debug("Embedded payload")

	return out, nil
}

// Extract recovers the payload hidden under passphrase. It never fails; see
// ExtractWithStatus for the authentication outcome.
func Extract(samples []int16, passphrase string, opts ...Option) []byte {
	payload, _ := ExtractWithStatus(samples, passphrase, opts...)

	return payload
}

// ExtractWithStatus is Extract that also reports how the cipher opened the payload.
func ExtractWithStatus(samples []int16, passphrase string, opts ...Option) ([]byte, encryption.Status) {
	o := newOptions(opts)

	order := keyed.Permutation(keyed.Seed(passphrase), len(samples))
	reader := lsb.NewReader(samples, order)

	var sealed []byte

	switch o.framing {
	case FramingLegacy:
		sealed = frame.DecodeLegacy(reader)
	default:
		sealed = frame.Decode(reader)
	}

	payload, status := o.cipher.Open(sealed, passphrase)

	o.logger.WithFields(logrus.Fields{
		"function": "Extract",
		"samples":  len(samples),
		"sealed":   len(sealed),
		"payload":  len(payload),
		"framing":  o.framing.String(),
		"status":   status.String(),
	}).Debug("Extracted payload")

	return payload, status
}

// Capacity returns the largest framed message, in bytes, that n samples can carry.
// Sealing overhead is not included: a cipher adds its own bytes (and text encoding
// grows them) before framing.
func Capacity(n int, opts ...Option) int {
	o := newOptions(opts)

	const bitsPerByte = 8

	switch o.framing {
	case FramingLegacy:
		return max(n/bitsPerByte-1, 0)
	default:
		return min(max((n-frame.LengthBits)/bitsPerByte, 0), frame.MaxPayload)
	}
}
