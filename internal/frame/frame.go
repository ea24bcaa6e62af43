package frame

import (
	"fmt"
	"math"
)

const (
	// LengthBits is the size of the length prefix.
	LengthBits = 16
	// MaxPayload is the largest payload the length prefix can describe.
	MaxPayload = math.MaxUint16

	bitsPerByte = 8
)

// Bits is a sequence of single bits, one per element, each 0 or 1.
type Bits []uint8

// BitReader yields bits in order. ok is false once the source is exhausted.
type BitReader interface {
	ReadBit() (bit uint8, ok bool)
}

// Size returns the number of bits Encode produces for a payload of n bytes.
func Size(n int) int {
	return LengthBits + bitsPerByte*n
}

// Encode frames payload with a 16-bit length prefix.
func Encode(payload []byte) (Bits, error) {
	if len(payload) > MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes, maximum %d", ErrPayloadTooLarge, len(payload), MaxPayload)
	}

	bits := make(Bits, 0, Size(len(payload)))

	length := uint16(len(payload)) //nolint:gosec // bounded above
	for i := LengthBits - 1; i >= 0; i-- {
		bits = append(bits, uint8(length>>i)&1)
	}

	return appendBytes(bits, payload), nil
}

// Decode reads a length-prefixed frame. It never fails: a length that runs past the
// end of src yields the whole bytes that could be read, and a source shorter than the
// prefix yields an empty slice.
func Decode(src BitReader) []byte {
	var length int

	for range LengthBits {
		bit, ok := src.ReadBit()
		if !ok {
			return []byte{}
		}

		length = length<<1 | int(bit)
	}

	out := make([]byte, 0, length)

	for range length {
		b, ok := readByte(src)
		if !ok {
			break
		}

		out = append(out, b)
	}

	return out
}

// readByte assembles eight bits MSB first. ok is false if src ran out mid-byte.
func readByte(src BitReader) (byte, bool) {
	var b byte

	for range bitsPerByte {
		bit, ok := src.ReadBit()
		if !ok {
			return 0, false
		}

		b = b<<1 | bit
	}

	return b, true
}

func appendBytes(bits Bits, data []byte) Bits {
	for _, b := range data {
		for i := bitsPerByte - 1; i >= 0; i-- {
			bits = append(bits, (b>>i)&1)
		}
	}

	return bits
}

// SliceReader reads from an in-memory bit sequence.
type SliceReader struct {
	bits Bits
	pos  int
}

// NewSliceReader returns a BitReader over bits.
func NewSliceReader(bits Bits) *SliceReader {
	return &SliceReader{bits: bits}
}

// ReadBit implements BitReader.
func (r *SliceReader) ReadBit() (uint8, bool) {
	if r.pos >= len(r.bits) {
		return 0, false
	}

	bit := r.bits[r.pos]
	r.pos++

	return bit, true
}
