package encryption

import "errors"

var (
	// ErrUnknownVariant is returned when a cipher name does not match any Variant.
	ErrUnknownVariant = errors.New("unknown cipher variant")
	// ErrSeal is returned when a message cannot be sealed.
	ErrSeal = errors.New("sealing message")
)
