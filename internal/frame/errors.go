package frame

import "errors"

// ErrPayloadTooLarge is returned when a payload does not fit the 16-bit length field.
var ErrPayloadTooLarge = errors.New("payload too large for length prefix")
