package encryption

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// KeyDerivation selects how a passphrase becomes the 64-byte AES-SIV key.
type KeyDerivation byte

const (
	// KeyDerivationDuplicate hashes the passphrase once and repeats the 32-byte digest
	// to fill both key halves. The key space is therefore only 256 bits and the CMAC
	// and CTR halves share a key. It is the default because existing embeddings were
	// produced with it.
	KeyDerivationDuplicate KeyDerivation = iota
	// KeyDerivationHKDF expands the passphrase with HKDF-SHA256 into two independent
	// halves. Blobs sealed this way cannot be opened with KeyDerivationDuplicate.
	KeyDerivationHKDF
)

const (
	// AESSIVKeySize is the key size for AES-256-SIV.
	AESSIVKeySize = 64

	hkdfInfo = "gostego/aes-siv"
)

func (d KeyDerivation) String() string {
	switch d {
	case KeyDerivationDuplicate:
		return "duplicate"
	case KeyDerivationHKDF:
		return "hkdf"
	default:
		return fmt.Sprintf("derivation(%d)", byte(d))
	}
}

// deriveKey returns the AES-SIV key for passphrase.
func deriveKey(passphrase string, derivation KeyDerivation) ([]byte, error) {
	switch derivation {
	case KeyDerivationDuplicate:
		sum := sha256.Sum256([]byte(passphrase))

		key := make([]byte, 0, AESSIVKeySize)
		key = append(key, sum[:]...)

		return append(key, sum[:]...), nil
	case KeyDerivationHKDF:
		reader := hkdf.New(sha256.New, []byte(passphrase), nil, []byte(hkdfInfo))
		key := make([]byte, AESSIVKeySize)

		if _, err := io.ReadFull(reader, key); err != nil {
			return nil, fmt.Errorf("deriving key: %w", err)
		}

		return key, nil
	default:
		return nil, fmt.Errorf("unsupported key derivation %d", derivation)
	}
}
