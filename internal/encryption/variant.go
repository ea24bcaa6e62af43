package encryption

import (
	"fmt"
	"strings"
)

// Variant names a built-in cipher.
type Variant string

const (
	// VariantNone selects None.
	VariantNone Variant = "none"
	// VariantAESSIV selects AESSIV.
	VariantAESSIV Variant = "aes-siv"
	// VariantXChaCha selects XChaCha.
	VariantXChaCha Variant = "xchacha"
)

// Variants lists the names accepted by ParseVariant.
func Variants() []Variant {
	return []Variant{VariantNone, VariantAESSIV, VariantXChaCha}
}

// ParseVariant matches name case-insensitively against Variants.
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants() {
		if strings.EqualFold(name, string(v)) {
			return v, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// New builds the cipher for v. opts only apply to VariantAESSIV.
func New(v Variant, opts ...Option) (Cipher, error) {
	switch v {
	case VariantNone:
		return None{}, nil
	case VariantAESSIV:
		return NewAESSIV(opts...), nil
	case VariantXChaCha:
		return NewXChaCha(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
}
