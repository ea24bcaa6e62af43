package encryption

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Argon2id parameters for XChaCha. Changing them breaks existing blobs.
const (
	argonTime    = 1
	argonMemory  = 19 * 1024
	argonThreads = 1
	argonSaltLen = 16
)

// XChaCha seals with XChaCha20-Poly1305 under an Argon2id key.
// Blob layout: salt (16) || nonce (24) || ciphertext.
type XChaCha struct {
	random io.Reader
}

// NewXChaCha returns an XChaCha cipher reading salts and nonces from crypto/rand.
func NewXChaCha() *XChaCha {
	return &XChaCha{random: rand.Reader}
}

func (x *XChaCha) headerSize() int {
	return argonSaltLen + chacha20poly1305.NonceSizeX
}

// Seal encrypts message under a key derived from passphrase and a fresh salt.
func (x *XChaCha) Seal(message []byte, passphrase string) ([]byte, error) {
	header := make([]byte, x.headerSize())
	if _, err := io.ReadFull(x.random, header); err != nil {
		return nil, fmt.Errorf("%w: generating salt and nonce: %w", ErrSeal, err)
	}

	salt, nonce := header[:argonSaltLen], header[argonSaltLen:]

	aead, err := chacha20poly1305.NewX(deriveArgonKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("%w: creating cipher: %w", ErrSeal, err)
	}

	return aead.Seal(header, nonce, message, nil), nil
}

// Open decrypts a blob produced by Seal, falling back like AESSIV.Open.
func (x *XChaCha) Open(blob []byte, passphrase string) ([]byte, Status) {
	if len(blob) < x.headerSize() {
		return bytes.Clone(blob), FallbackTooShort
	}

	salt := blob[:argonSaltLen]
	nonce := blob[argonSaltLen:x.headerSize()]
	ciphertext := blob[x.headerSize():]

	aead, err := chacha20poly1305.NewX(deriveArgonKey(passphrase, salt))
	if err != nil {
		return bytes.Clone(ciphertext), FallbackUnauthenticated
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "XChaCha.Open",
			"size":     len(blob),
		}).Debug("Authentication failed")

		return bytes.Clone(ciphertext), FallbackUnauthenticated
	}

	return plaintext, Opened
}

func deriveArgonKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, chacha20poly1305.KeySize)
}
