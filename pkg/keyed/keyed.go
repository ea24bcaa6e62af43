// Package keyed turns a passphrase into the deterministic sample order shared by
// embedder and extractor.
//
// Every step is pinned so that independent implementations agree bit for bit:
//   - Seed: SHA-256 of the passphrase, first 8 bytes read little-endian
//   - Rand: SplitMix64 seeded with that value
//   - IntN: Lemire multiply-shift with rejection
//   - Permutation: Fisher-Yates from the last index down to 1
//
// Nothing here depends on math/rand, whose algorithms are free to change between
// Go releases.
package keyed

import (
	"crypto/sha256"
	"encoding/binary"
)

// Seed derives the 64-bit generator seed from a passphrase.
func Seed(passphrase string) uint64 {
	sum := sha256.Sum256([]byte(passphrase))

	return binary.LittleEndian.Uint64(sum[:8])
}
