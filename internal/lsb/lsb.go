// Package lsb reads and writes single bits in the least-significant bit of 16-bit
// PCM samples, visiting samples in a caller-supplied order.
package lsb

// Write stores bits[i] in the LSB of samples[order[i]].
// It panics if bits is longer than order.
func Write(samples []int16, order []int, bits []uint8) {
	if len(bits) > len(order) {
		panic("lsb: more bits than carrier slots")
	}

	for i, bit := range bits {
		idx := order[i]
		samples[idx] = samples[idx]&^1 | int16(bit&1)
	}
}

// WriteDecoys sets the LSB of every sample in order from the low bit of next().
func WriteDecoys(samples []int16, order []int, next func() byte) {
	for _, idx := range order {
		samples[idx] = samples[idx]&^1 | int16(next()&1)
	}
}

// Reader yields the LSBs of samples in the given order.
type Reader struct {
	samples []int16
	order   []int
	pos     int
}

// NewReader returns a Reader over samples visited in order.
func NewReader(samples []int16, order []int) *Reader {
	return &Reader{samples: samples, order: order}
}

// ReadBit returns the next LSB. ok is false when every slot has been read.
func (r *Reader) ReadBit() (uint8, bool) {
	if r.pos >= len(r.order) {
		return 0, false
	}

	bit := uint8(r.samples[r.order[r.pos]] & 1) //nolint:gosec // masked to one bit
	r.pos++

	return bit, true
}

// Remaining returns the number of unread slots.
func (r *Reader) Remaining() int {
	return len(r.order) - r.pos
}
