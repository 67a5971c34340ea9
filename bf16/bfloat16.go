// Copyright 2025 go-bfloat16 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bf16 implements the bfloat16 (Brain Float 16) number format.
//
// BFloat16 keeps the full exponent range of float32 but truncates the
// mantissa to 7 bits, which makes it a drop-in compact storage format for
// ML pipelines where dynamic range matters more than precision. Because
// bfloat16 is simply the upper half of a float32 bit pattern, widening is
// a bit shift and narrowing is a shift with a rounding nudge.
//
// Arithmetic follows the promote-compute-demote pattern: operands widen to
// float32, the operation runs in float32 (inheriting IEEE 754 behavior for
// overflow and invalid operations), and the result narrows back.
package bf16

import (
	"math"
	"strconv"
)

// BFloat16 represents a Brain Float 16 (bfloat16) number.
//
// Format: Sign (1 bit) | Exponent (8 bits) | Mantissa (7 bits)
//
//	S | EEEEEEEE | MMMMMMM
//
// Properties:
//   - Total bits: 16
//   - Exponent bits: 8 (same as float32, bias: 127)
//   - Mantissa bits: 7
//   - Max value: ~3.39e38 (same range as float32)
//   - Min positive normal: ~1.18e-38
//   - Precision: ~2.4 decimal digits
//
// Because the underlying type is uint16, the built-in ==, < and >
// operators compare raw bit patterns, not numeric values. This is the
// intended ordering for this type: +0 and -0 are distinct, and NaN
// patterns participate in a total order. See Cmp for details.
type BFloat16 uint16

// BFloat16 constants for special values. The representable-range limits
// live in limits.go.
const (
	Zero    BFloat16 = 0x0000 // Positive zero
	NegZero BFloat16 = 0x8000 // Negative zero
	One     BFloat16 = 0x3F80 // 1.0
	NegOne  BFloat16 = 0xBF80 // -1.0
	PosInf  BFloat16 = 0x7F80 // Positive infinity
	NegInf  BFloat16 = 0xFF80 // Negative infinity
	QNaN    BFloat16 = 0x7F81 // Quiet NaN
)

// Internal field layout constants (exponent bias and width match float32).
const (
	signMask     = 0x8000
	expMask      = 0x7F80
	mantMask     = 0x007F
	expShift     = 7
	expBias      = 127
	expFieldMask = 0xFF
)

// FromFloat32 converts a float32 to BFloat16, rounding to the nearest
// representable value.
//
// The rounding rule adds the fixed constant 0x7FFF (half a unit in the
// last retained bit) to the float32 bit pattern before truncating to the
// upper 16 bits. Exact ties round up rather than to even. A carry out of
// the mantissa may increment the exponent field; for values just below
// the top of the range this rounds up into infinity, which is intended.
//
// Values whose low 16 mantissa bits are already zero convert losslessly,
// including zeros and infinities.
func FromFloat32(f float32) BFloat16 {
	bits := math.Float32bits(f)
	bits += 0x7FFF
	return BFloat16(bits >> 16)
}

// FromFloat64 converts a float64 to BFloat16 through float32.
func FromFloat64(f float64) BFloat16 {
	return FromFloat32(float32(f))
}

// FromBits creates a BFloat16 from a raw 16-bit pattern, bypassing the
// rounding path. This is the escape hatch for bit-level interop such as
// reading the 2-byte wire format.
func FromBits(bits uint16) BFloat16 {
	return BFloat16(bits)
}

// Bits returns the raw uint16 representation.
func (b BFloat16) Bits() uint16 {
	return uint16(b)
}

// Float32 widens b to float32 by placing its bits in the upper half of a
// 32-bit word and zero-filling the rest. The conversion is exact and
// never fails.
func (b BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(b) << 16)
}

// Float64 widens b to float64.
func (b BFloat16) Float64() float64 {
	return float64(b.Float32())
}

// IsNaN returns true if b is a NaN value (exponent field all ones,
// nonzero mantissa).
func (b BFloat16) IsNaN() bool {
	return b&expMask == expMask && b&mantMask != 0
}

// IsInf returns true if b is positive or negative infinity.
func (b BFloat16) IsInf() bool {
	return b&expMask == expMask && b&mantMask == 0
}

// IsZero returns true if b is positive or negative zero.
func (b BFloat16) IsZero() bool {
	return b&^BFloat16(signMask) == 0
}

// IsNegative returns true if the sign bit is set, including for negative
// zero and negative NaN patterns.
func (b BFloat16) IsNegative() bool {
	return b&signMask != 0
}

// Signbit reports whether the sign bit is set. It is an alias for
// IsNegative matching the math package naming.
func (b BFloat16) Signbit() bool {
	return b.IsNegative()
}

// IsDenormal returns true if b is a denormalized number (zero exponent
// field, nonzero mantissa).
func (b BFloat16) IsDenormal() bool {
	return b&expMask == 0 && b&mantMask != 0
}

// Exponent returns the unbiased exponent of b. It returns 0 for zero
// values and math.MaxInt16 as a sentinel for NaN and infinity.
func (b BFloat16) Exponent() int {
	if b.IsZero() {
		return 0
	}
	if b&expMask == expMask {
		return math.MaxInt16
	}
	return int((b>>expShift)&expFieldMask) - expBias
}

// Mantissa returns the raw 7-bit mantissa field, unmodified.
func (b BFloat16) Mantissa() uint16 {
	return uint16(b & mantMask)
}

// Inf returns an infinity with the given sign: positive infinity for
// sign >= 0, negative infinity for sign < 0.
func Inf(sign int) BFloat16 {
	if sign < 0 {
		return NegInf
	}
	return PosInf
}

// NaN returns the quiet NaN bit pattern 0x7F81.
func NaN() BFloat16 {
	return QNaN
}

// String renders the widened float32 representation of b in shortest
// decimal form. It implements fmt.Stringer.
func (b BFloat16) String() string {
	return strconv.FormatFloat(float64(b.Float32()), 'g', -1, 32)
}
