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

import "math"

// Math functions for BFloat16 using the promote-compute-demote pattern:
// promote to float32, call the standard math package, demote the result
// with rounding. Abs is the one exception, operating on bits directly.

// Abs returns b with the sign bit cleared. No float32 round trip is
// involved, so NaN payloads and infinities pass through exactly.
func Abs(b BFloat16) BFloat16 {
	return b &^ BFloat16(signMask)
}

// Sqrt computes the square root of b.
func Sqrt(b BFloat16) BFloat16 {
	return FromFloat32(float32(math.Sqrt(b.Float64())))
}

// Exp computes e**b.
func Exp(b BFloat16) BFloat16 {
	return FromFloat32(float32(math.Exp(b.Float64())))
}

// Log computes the natural logarithm of b.
func Log(b BFloat16) BFloat16 {
	return FromFloat32(float32(math.Log(b.Float64())))
}

// Sin computes the sine of b (in radians).
func Sin(b BFloat16) BFloat16 {
	return FromFloat32(float32(math.Sin(b.Float64())))
}

// Cos computes the cosine of b (in radians).
func Cos(b BFloat16) BFloat16 {
	return FromFloat32(float32(math.Cos(b.Float64())))
}

// Tan computes the tangent of b (in radians).
func Tan(b BFloat16) BFloat16 {
	return FromFloat32(float32(math.Tan(b.Float64())))
}

// Pow computes x**y.
func Pow(x, y BFloat16) BFloat16 {
	return FromFloat32(float32(math.Pow(x.Float64(), y.Float64())))
}
