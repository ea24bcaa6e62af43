package stego

import (
	"fmt"

	"github.com/idelchi/gostego/internal/encryption"
	"github.com/idelchi/gostego/internal/wavbuf"
)

// EmbedWAV embeds payload into the samples of carrier and returns a new container
// with the same spec. The carrier is not modified.
func EmbedWAV(carrier *wavbuf.Buffer, payload []byte, passphrase string, opts ...Option) (*wavbuf.Buffer, error) {
	spec, err := carrier.Spec()
	if err != nil {
		return nil, fmt.Errorf("reading carrier spec: %w", err)
	}

	samples, err := carrier.Samples()
	if err != nil {
		return nil, fmt.Errorf("reading carrier samples: %w", err)
	}

	modified, err := Embed(samples, payload, passphrase, opts...)
	if err != nil {
		return nil, err
	}

	out, err := wavbuf.FromSamples(modified, spec)
	if err != nil {
		return nil, fmt.Errorf("writing carrier: %w", err)
	}

	return out, nil
}

// ExtractWAV extracts the payload from the samples of carrier. The only errors are
// container errors.
func ExtractWAV(carrier *wavbuf.Buffer, passphrase string, opts ...Option) ([]byte, encryption.Status, error) {
	samples, err := carrier.Samples()
	if err != nil {
		return nil, 0, fmt.Errorf("reading carrier samples: %w", err)
	}

	payload, status := ExtractWithStatus(samples, passphrase, opts...)

	return payload, status, nil
}

// CapacityWAV returns the sample count of carrier and its Capacity.
func CapacityWAV(carrier *wavbuf.Buffer, opts ...Option) (samples, capacity int, err error) {
	decoded, err := carrier.Samples()
	if err != nil {
		return 0, 0, fmt.Errorf("reading carrier samples: %w", err)
	}

	return len(decoded), Capacity(len(decoded), opts...), nil
}
