// Package frame converts payload bytes into the self-delimiting bit sequence written
// into carrier LSBs, and back.
//
// Two framings exist:
//   - length-prefixed (default): 16-bit big-endian byte count, then the payload
//   - legacy: the payload followed by a single zero byte, no length
//
// Bits are emitted most-significant first within every byte.
package frame
