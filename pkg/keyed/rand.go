package keyed

import "math/bits"

const (
	splitMixGamma = 0x9E3779B97F4A7C15
	splitMixMul1  = 0xBF58476D1CE4E5B9
	splitMixMul2  = 0x94D049BB133111EB
)

// Printable ASCII range used for decoy and fallback bytes: [32, 126].
const (
	printableLow   = 32
	printableCount = 95
)

// Rand is a SplitMix64 generator. It is not safe for concurrent use and is meant to
// live for a single embed or extract call.
type Rand struct {
	state uint64
}

// NewRand returns a generator whose state starts at seed.
func NewRand(seed uint64) *Rand {
	return &Rand{state: seed}
}

// Uint64 returns the next value of the stream.
func (r *Rand) Uint64() uint64 {
	r.state += splitMixGamma

	z := r.state
	z = (z ^ (z >> 30)) * splitMixMul1
	z = (z ^ (z >> 27)) * splitMixMul2

	return z ^ (z >> 31)
}

// IntN returns a uniform value in [0, n). It panics if n <= 0.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		panic("keyed: invalid argument to IntN")
	}

	bound := uint64(n)

	hi, lo := bits.Mul64(r.Uint64(), bound)
	if lo < bound {
		threshold := -bound % bound
		for lo < threshold {
			hi, lo = bits.Mul64(r.Uint64(), bound)
		}
	}

	return int(hi) //nolint:gosec // hi < bound which came from an int
}

// Printable returns a byte in the printable ASCII range.
func (r *Rand) Printable() byte {
	return byte(printableLow + r.IntN(printableCount))
}

// Fill writes len(buf) printable bytes into buf.
func (r *Rand) Fill(buf []byte) {
	for i := range buf {
		buf[i] = r.Printable()
	}
}
