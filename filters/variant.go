// SPDX-License-Identifier: MIT

package filters

import "fmt"

// Variant selects which Meyer response a kernel computes.
type Variant int

const (
	// ScalingFunction is the low-pass Meyer scaling function.
	ScalingFunction Variant = iota + 1
	// Wavelet is the band-pass Meyer wavelet.
	Wavelet
)

// String returns "scaling", "wavelet" or "Variant(n)" for unknown tags.
func (v Variant) String() string {
	switch v {
	case ScalingFunction:
		return "scaling"
	case Wavelet:
		return "wavelet"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Valid reports whether v is ScalingFunction or Wavelet.
func (v Variant) Valid() bool {
	return v == ScalingFunction || v == Wavelet
}

// ParseVariant maps a textual tag to a Variant. It accepts "scaling" and
// its short form "sf", and "wavelet".
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "scaling", "sf":
		return ScalingFunction, nil
	case "wavelet":
		return Wavelet, nil
	default:
		return 0, fmt.Errorf("ParseVariant(%q): %w", s, ErrInvalidKernelVariant)
	}
}
