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

package bf16

// Numeric limits for BFloat16.
//
// These are opaque bit-exact constants matching the conventional bfloat16
// representable range. Downstream code may depend on bit-exact equality
// with reference implementations, so they are stated as literal patterns
// rather than derived at runtime.
const (
	// Max is the largest finite value, ~3.3895e38.
	Max BFloat16 = 0x7F7F

	// Lowest is the most negative finite value, -Max.
	Lowest BFloat16 = 0xFF7F

	// MinNormal is the smallest positive normal value, ~1.1755e-38.
	MinNormal BFloat16 = 0x0080

	// SmallestNonzero is the smallest positive denormal value,
	// ~9.1835e-41. It is the bfloat16 analogue of
	// math.SmallestNonzeroFloat32.
	SmallestNonzero BFloat16 = 0x0001

	// Epsilon is the difference between 1.0 and the next representable
	// value above it: 2**-7 = 0.0078125.
	Epsilon BFloat16 = 0x3C00

	// RoundError is the maximum rounding error, 0.5.
	RoundError BFloat16 = 0x3F00
)

// Descriptive traits of the format, mirroring a float32-like numeric
// traits surface.
const (
	SignBits     = 1
	ExponentBits = 8
	MantissaBits = 7
	ExponentBias = 127

	// Digits is the mantissa precision in bits, counting the implicit
	// leading one.
	Digits      = 8
	Digits10    = 2
	MaxDigits10 = 4
	Radix       = 2

	// MinExponent and MaxExponent bound the unbiased exponent of normal
	// values; identical to float32 since the exponent field is shared.
	MinExponent   = -126
	MaxExponent   = 127
	MinExponent10 = -38
	MaxExponent10 = 38

	IsSigned        = true
	IsInteger       = false
	IsExact         = false
	IsBounded       = true
	IsIEC559        = false
	HasInf          = true
	HasQuietNaN     = true
	HasSignalingNaN = false
	HasDenorm       = true
)
