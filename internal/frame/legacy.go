package frame

const asciiLimit = 0x80

// EncodeLegacy frames payload as its bytes followed by a zero terminator.
// There is no length limit; the caller truncates to the carrier size.
func EncodeLegacy(payload []byte) Bits {
	bits := make(Bits, 0, bitsPerByte*(len(payload)+1))

	return appendBytes(bits, append(payload[:len(payload):len(payload)], 0))
}

// DecodeLegacy reads bytes until the first zero byte, skipping bytes outside the
// ASCII range. A trailing group shorter than eight bits is folded as it is.
// The result never contains a zero byte.
func DecodeLegacy(src BitReader) []byte {
	out := []byte{}

	for {
		var (
			b     byte
			count int
		)

		for count < bitsPerByte {
			bit, ok := src.ReadBit()
			if !ok {
				break
			}

			b = b<<1 | bit
			count++
		}

		if count == 0 {
			return out
		}

		switch {
		case b >= asciiLimit:
		case b == 0:
			return out
		default:
			out = append(out, b)
		}

		if count < bitsPerByte {
			return out
		}
	}
}
