// Package half provides IEEE 754 binary16 half-precision floating-point numbers.
//
// Half-precision floats use 16 bits with the following layout:
//   - 1 bit sign
//   - 5 bits exponent (bias of 15)
//   - 10 bits mantissa (implicit leading 1 for normalized values)
//
// The img2raw 16-bit data formats (R16F, RG16F, RGBA16F, PackedR16F) store
// each channel as a little-endian binary16 bit pattern. Because HDR samples
// routinely exceed the binary16 range, the codec clamps to the largest
// finite magnitude (±65504) before conversion; FromFloat64Clamped implements
// that policy.
package half

import (
	"math"
)

// Half represents an IEEE 754 binary16 half-precision floating-point number.
// The underlying storage is a uint16.
type Half uint16

// Constants for half-precision floating-point.
const (
	// Bit layout constants
	signBit      = 0x8000
	exponentMask = 0x7C00
	mantissaMask = 0x03FF

	// Exponent values
	exponentBias = 15
	maxExponent  = 31

	// Special values
	posInf = Half(0x7C00) // +Infinity
	negInf = Half(0xFC00) // -Infinity
	nan    = Half(0x7E00) // Quiet NaN (one of many valid NaN representations)

	// Limits
	maxHalf = Half(0x7BFF) // Largest positive finite value (~65504)
	minHalf = Half(0xFBFF) // Most negative finite value (~-65504)
)

// MaxValue is the largest finite value representable as a Half.
const MaxValue = 65504.0

// Common constant values
var (
	// Inf is positive infinity.
	Inf = posInf
	// NegInf is negative infinity.
	NegInf = negInf
	// NaN is a quiet NaN value.
	NaN = nan
	// Max is the largest finite positive half-precision value (~65504).
	Max = maxHalf
	// Min is the most negative finite half-precision value (~-65504).
	Min = minHalf
)

// FromFloat32 converts a float32 to a Half using round-to-nearest-even.
func FromFloat32(f float32) Half {
	bits := math.Float32bits(f)
	return fromFloat32Bits(bits)
}

// fromFloat32Bits converts float32 bits to Half.
func fromFloat32Bits(bits uint32) Half {
	sign := uint16((bits >> 16) & signBit)
	exp := int((bits >> 23) & 0xFF)
	mantissa := bits & 0x007FFFFF

	// Handle special cases
	switch {
	case exp == 0xFF: // Inf or NaN
		if mantissa == 0 {
			return Half(sign | uint16(exponentMask))
		}
		// NaN - preserve some mantissa bits
		return Half(sign | uint16(exponentMask) | uint16(mantissa>>13))

	case exp == 0: // Zero or subnormal float32
		// These become zero in half (float32 subnormals are way smaller than half can represent)
		return Half(sign)
	}

	// Adjust exponent from float32 bias (127) to half bias (15)
	exp = exp - 127 + exponentBias

	// Check for overflow
	if exp >= maxExponent {
		return Half(sign | uint16(exponentMask)) // Infinity
	}

	// Check for underflow to zero
	if exp < -10 {
		return Half(sign)
	}

	// Check for subnormal half
	if exp <= 0 {
		// Subnormal: add implicit leading bit and shift right
		mantissa = mantissa | 0x00800000
		shift := uint(14 - exp)
		if shift > 24 {
			return Half(sign)
		}

		// Round to nearest even
		halfMantissa := mantissa >> shift
		round := mantissa >> (shift - 1) & 1
		sticky := mantissa & ((1 << (shift - 1)) - 1)

		if round != 0 && (sticky != 0 || (halfMantissa&1) != 0) {
			halfMantissa++
		}

		return Half(sign | uint16(halfMantissa&mantissaMask))
	}

	// Normalized value
	// Round mantissa from 23 bits to 10 bits using round-to-nearest-even
	halfMantissa := mantissa >> 13
	round := (mantissa >> 12) & 1
	sticky := mantissa & 0x0FFF

	if round != 0 && (sticky != 0 || (halfMantissa&1) != 0) {
		halfMantissa++
		// Check for mantissa overflow
		if halfMantissa > mantissaMask {
			halfMantissa = 0
			exp++
			if exp >= maxExponent {
				return Half(sign | uint16(exponentMask)) // Overflow to infinity
			}
		}
	}

	return Half(sign | uint16(exp<<10) | uint16(halfMantissa&mantissaMask))
}

// Float32 converts a Half to a float32.
func (h Half) Float32() float32 {
	bits := h.float32Bits()
	return math.Float32frombits(bits)
}

// float32Bits converts Half to float32 bit representation.
func (h Half) float32Bits() uint32 {
	sign := uint32(h&signBit) << 16
	exp := int((h >> 10) & 0x1F)
	mantissa := uint32(h & mantissaMask)

	switch {
	case exp == 0: // Zero or subnormal
		if mantissa == 0 {
			return sign // Preserve sign of zero
		}
		// Subnormal half to normalized float32
		// Find the leading 1 bit
		for mantissa&0x0400 == 0 {
			mantissa <<= 1
			exp--
		}
		exp++
		mantissa &= mantissaMask
		exp = exp - exponentBias + 127
		return sign | uint32(exp<<23) | (mantissa << 13)

	case exp == maxExponent: // Inf or NaN
		if mantissa == 0 {
			return sign | 0x7F800000 // Infinity
		}
		// NaN - set quiet bit and preserve some mantissa
		return sign | 0x7F800000 | (mantissa << 13) | 0x00400000

	default: // Normalized
		exp = exp - exponentBias + 127
		return sign | uint32(exp<<23) | (mantissa << 13)
	}
}

// FromFloat64 converts a float64 to a Half using round-to-nearest-even.
func FromFloat64(f float64) Half {
	// Convert to float32 first, then to half
	// This is correct because float64 -> float32 -> half rounds correctly
	return FromFloat32(float32(f))
}

// FromFloat64Clamped converts a float64 to a Half after clamping it to the
// finite binary16 range [-65504, 65504]. Out-of-range values saturate to the
// finite limits instead of becoming infinity; NaN is preserved.
func FromFloat64Clamped(f float64) Half {
	if f > MaxValue {
		f = MaxValue
	} else if f < -MaxValue {
		f = -MaxValue
	}
	return FromFloat32(float32(f))
}

// Float64 converts a Half to a float64.
func (h Half) Float64() float64 {
	return float64(h.Float32())
}

// IsNaN returns true if h is a NaN value.
func (h Half) IsNaN() bool {
	return h&exponentMask == exponentMask && h&mantissaMask != 0
}

// IsInf returns true if h is positive or negative infinity.
func (h Half) IsInf() bool {
	return h&0x7FFF == exponentMask
}

// IsZero returns true if h is positive or negative zero.
func (h Half) IsZero() bool {
	return h&0x7FFF == 0
}

// IsFinite returns true if h is not Inf or NaN.
func (h Half) IsFinite() bool {
	return h&exponentMask != exponentMask
}

// Neg returns the negation of h.
func (h Half) Neg() Half {
	return h ^ signBit
}

// Abs returns the absolute value of h.
func (h Half) Abs() Half {
	return h &^ signBit
}

// Bits returns the IEEE 754 binary16 representation of h.
func (h Half) Bits() uint16 {
	return uint16(h)
}

// FromBits creates a Half from its IEEE 754 binary16 bit representation.
func FromBits(bits uint16) Half {
	return Half(bits)
}
