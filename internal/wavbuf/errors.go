package wavbuf

import "errors"

var (
	// ErrContainer is returned when the bytes are not a readable WAV container.
	ErrContainer = errors.New("invalid wav container")
	// ErrUnsupportedFormat is returned for containers that are not 16-bit integer PCM.
	ErrUnsupportedFormat = errors.New("unsupported wav format")
)
