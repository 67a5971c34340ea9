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

// This file provides scalar BFloat16 arithmetic using the
// promote-compute-demote pattern: widen both operands to float32, compute
// there, and narrow the result with rounding. Overflow produces infinity
// and invalid operations produce NaN, exactly as in float32 arithmetic.
//
// Go has no operator overloading, so the compound-assignment forms of the
// source format are written as ordinary reassignment: a = a.Add(b).

// Add returns b + o.
func (b BFloat16) Add(o BFloat16) BFloat16 {
	return FromFloat32(b.Float32() + o.Float32())
}

// Sub returns b - o.
func (b BFloat16) Sub(o BFloat16) BFloat16 {
	return FromFloat32(b.Float32() - o.Float32())
}

// Mul returns b * o.
func (b BFloat16) Mul(o BFloat16) BFloat16 {
	return FromFloat32(b.Float32() * o.Float32())
}

// Div returns b / o.
func (b BFloat16) Div(o BFloat16) BFloat16 {
	return FromFloat32(b.Float32() / o.Float32())
}

// Neg returns b with the sign bit flipped. No float32 round trip is
// involved, so every other field is preserved exactly, including for NaN
// and infinity operands.
func (b BFloat16) Neg() BFloat16 {
	return b ^ signMask
}

// Cmp compares raw bit patterns and returns -1, 0 or +1.
//
// This is NOT a semantic float comparison: +0 (0x0000) and -0 (0x8000)
// are unequal, negative values order above positive ones, and NaN bit
// patterns participate in the total order instead of comparing unordered.
// Callers that need numeric comparison should widen with Float32 first.
// The built-in ==, < and > operators on BFloat16 behave the same way.
func (b BFloat16) Cmp(o BFloat16) int {
	switch {
	case b < o:
		return -1
	case b > o:
		return 1
	}
	return 0
}

// Equal reports whether b and o hold identical bit patterns. It is the
// method form of == and shares its divergence from float semantics: two
// equal NaN patterns compare equal, and +0 does not equal -0.
func (b BFloat16) Equal(o BFloat16) bool {
	return b == o
}
