package encryption

import "fmt"

// Cipher transforms a payload before embedding and reverses it after extraction.
type Cipher interface {
	// Seal protects message under passphrase.
	Seal(message []byte, passphrase string) ([]byte, error)
	// Open reverses Seal. It never fails; see Status.
	Open(blob []byte, passphrase string) ([]byte, Status)
}

// Status reports how Open produced its result.
type Status byte

const (
	// Opened means the blob was decoded and, where applicable, authenticated.
	Opened Status = iota
	// FallbackUndecodable means the text encoding was invalid and the result is
	// deterministic printable noise of the same length.
	FallbackUndecodable
	// FallbackTooShort means the blob could not hold a nonce and is returned as is.
	FallbackTooShort
	// FallbackUnauthenticated means authentication failed and the raw ciphertext is
	// returned.
	FallbackUnauthenticated
)

// OK reports whether s is Opened.
func (s Status) OK() bool {
	return s == Opened
}

func (s Status) String() string {
	switch s {
	case Opened:
		return "opened"
	case FallbackUndecodable:
		return "undecodable"
	case FallbackTooShort:
		return "too short"
	case FallbackUnauthenticated:
		return "unauthenticated"
	default:
		return fmt.Sprintf("status(%d)", byte(s))
	}
}

// None passes payloads through unchanged.
type None struct{}

// Seal returns a copy of message.
func (None) Seal(message []byte, _ string) ([]byte, error) {
	return append([]byte{}, message...), nil
}

// Open returns a copy of blob.
func (None) Open(blob []byte, _ string) ([]byte, Status) {
	return append([]byte{}, blob...), Opened
}

// SealFunc and OpenFunc are the caller-supplied halves of a Custom cipher.
type (
	SealFunc func(message []byte, passphrase string) ([]byte, error)
	OpenFunc func(blob []byte, passphrase string) []byte
)

// Custom delegates to caller-supplied functions.
type Custom struct {
	seal SealFunc
	open OpenFunc
}

// NewCustom wraps seal and open. A nil function behaves like None.
func NewCustom(seal SealFunc, open OpenFunc) Custom {
	return Custom{seal: seal, open: open}
}

// Seal calls the supplied seal function.
func (c Custom) Seal(message []byte, passphrase string) ([]byte, error) {
	if c.seal == nil {
		return None{}.Seal(message, passphrase)
	}

	sealed, err := c.seal(message, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeal, err)
	}

	return sealed, nil
}

// Open calls the supplied open function. Custom transforms carry no status of their
// own, so the result is always reported as Opened.
func (c Custom) Open(blob []byte, passphrase string) ([]byte, Status) {
	if c.open == nil {
		return None{}.Open(blob, passphrase)
	}

	return c.open(blob, passphrase), Opened
}
