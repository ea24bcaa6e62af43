package stego

import "errors"

// ErrCapacity is returned when the framed payload needs more samples than the
// carrier has.
var ErrCapacity = errors.New("payload exceeds carrier capacity")
