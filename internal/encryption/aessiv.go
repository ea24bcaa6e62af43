package encryption

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/tink-crypto/tink-go/v2/daead"
	"github.com/tink-crypto/tink-go/v2/insecurecleartextkeyset"
	"github.com/tink-crypto/tink-go/v2/keyset"
	aes_sivpb "github.com/tink-crypto/tink-go/v2/proto/aes_siv_go_proto"
	tinkpb "github.com/tink-crypto/tink-go/v2/proto/tink_go_proto"
	"github.com/tink-crypto/tink-go/v2/tink"
	"google.golang.org/protobuf/proto"

	"github.com/idelchi/gostego/pkg/keyed"
)

// NonceSize is the length of the random prefix of an AES-SIV blob.
const NonceSize = 16

//nolint:gochecknoglobals
var textEncoding = base64.RawURLEncoding

// AESSIV is the default authenticated cipher. Each Seal draws a fresh 16-byte nonce,
// passes it to AES-SIV as associated data and prepends it to the ciphertext.
type AESSIV struct {
	text       bool
	derivation KeyDerivation
	nonces     io.Reader
}

// Option configures an AESSIV cipher.
type Option func(*AESSIV)

// WithTextEncoding makes Seal emit, and Open expect, unpadded URL-safe base64.
func WithTextEncoding() Option {
	return func(c *AESSIV) {
		c.text = true
	}
}

// WithKeyDerivation selects the passphrase-to-key derivation.
func WithKeyDerivation(d KeyDerivation) Option {
	return func(c *AESSIV) {
		c.derivation = d
	}
}

// WithNonceSource replaces crypto/rand as the nonce source.
func WithNonceSource(r io.Reader) Option {
	return func(c *AESSIV) {
		c.nonces = r
	}
}

// NewAESSIV returns an AES-SIV cipher using KeyDerivationDuplicate and binary output
// unless options say otherwise.
func NewAESSIV(opts ...Option) *AESSIV {
	c := &AESSIV{
		derivation: KeyDerivationDuplicate,
		nonces:     rand.Reader,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Seal encrypts message and returns nonce || ciphertext, text-encoded if configured.
func (c *AESSIV) Seal(message []byte, passphrase string) ([]byte, error) {
	primitive, err := c.primitive(passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeal, err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.nonces, nonce); err != nil {
		return nil, fmt.Errorf("%w: generating nonce: %w", ErrSeal, err)
	}

	ciphertext, err := primitive.EncryptDeterministically(message, nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: encrypting: %w", ErrSeal, err)
	}

	blob := append(nonce, ciphertext...)

	logrus.WithFields(logrus.Fields{
		"function":   "AESSIV.Seal",
		"plaintext":  len(message),
		"blob":       len(blob),
		"derivation": c.derivation.String(),
		"text":       c.text,
	}).Debug("Sealed payload")

	if !c.text {
		return blob, nil
	}

	encoded := make([]byte, textEncoding.EncodedLen(len(blob)))
	textEncoding.Encode(encoded, blob)

	return encoded, nil
}

// Open decrypts a blob produced by Seal. Failures fall back as described on Status:
// undecodable text yields printable noise seeded from the passphrase, a blob shorter
// than a nonce is returned unchanged, and a blob that fails authentication yields the
// bytes after the nonce.
func (c *AESSIV) Open(blob []byte, passphrase string) ([]byte, Status) {
	data := blob

	if c.text {
		decoded := make([]byte, textEncoding.DecodedLen(len(blob)))

		n, err := textEncoding.Decode(decoded, blob)
		if err != nil {
			c.logFallback(FallbackUndecodable, len(blob))

			return Garbage(passphrase, len(blob)), FallbackUndecodable
		}

		data = decoded[:n]
	}

	if len(data) < NonceSize {
		c.logFallback(FallbackTooShort, len(data))

		return bytes.Clone(data), FallbackTooShort
	}

	nonce, ciphertext := data[:NonceSize], data[NonceSize:]

	primitive, err := c.primitive(passphrase)
	if err != nil {
		c.logFallback(FallbackUnauthenticated, len(data))

		return bytes.Clone(ciphertext), FallbackUnauthenticated
	}

	plaintext, err := primitive.DecryptDeterministically(ciphertext, nonce)
	if err != nil {
		c.logFallback(FallbackUnauthenticated, len(data))

		return bytes.Clone(ciphertext), FallbackUnauthenticated
	}

	return plaintext, Opened
}

func (c *AESSIV) logFallback(status Status, size int) {
	logrus.WithFields(logrus.Fields{
		"function": "AESSIV.Open",
		"status":   status.String(),
		"size":     size,
	}).Debug("Open fell back")
}

// primitive builds a fresh deterministic AEAD for passphrase.
func (c *AESSIV) primitive(passphrase string) (tink.DeterministicAEAD, error) {
	key, err := deriveKey(passphrase, c.derivation)
	if err != nil {
		return nil, err
	}

	handle, err := keysetFor(key)
	if err != nil {
		return nil, fmt.Errorf("creating keyset handle: %w", err)
	}

	primitive, err := daead.New(handle)
	if err != nil {
		return nil, fmt.Errorf("creating DeterministicAEAD: %w", err)
	}

	return primitive, nil
}

// Garbage returns n printable bytes from the generator seeded by the passphrase.
// The same inputs always give the same bytes.
func Garbage(passphrase string, n int) []byte {
	out := make([]byte, n)
	keyed.NewRand(keyed.Seed(passphrase)).Fill(out)

	return out
}

// sivKeyTypeURL identifies AES-SIV key material inside a Tink keyset.
const sivKeyTypeURL = "type.googleapis.com/google.crypto.tink.AesSivKey"

// keysetFor wraps key in a single-key cleartext keyset. The key uses the RAW output
// prefix, so a blob is exactly nonce || SIV || ciphertext with no Tink key-id header.
func keysetFor(key []byte) (*keyset.Handle, error) {
	material, err := proto.Marshal(&aes_sivpb.AesSivKey{KeyValue: key})
	if err != nil {
		return nil, fmt.Errorf("serializing AES-SIV key: %w", err)
	}

	const keyID = 1

	serialized, err := proto.Marshal(&tinkpb.Keyset{
		PrimaryKeyId: keyID,
		Key: []*tinkpb.Keyset_Key{{
			KeyId:            keyID,
			Status:           tinkpb.KeyStatusType_ENABLED,
			OutputPrefixType: tinkpb.OutputPrefixType_RAW,
			KeyData: &tinkpb.KeyData{
				TypeUrl:         sivKeyTypeURL,
				Value:           material,
				KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
			},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("serializing keyset: %w", err)
	}

	return insecurecleartextkeyset.Read(keyset.NewBinaryReader(bytes.NewReader(serialized)))
}
