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

// Element-wise operations over BFloat16 slices, the bulk counterpart of
// the scalar arithmetic. Each lane promotes to float32, computes, and
// demotes. Binary operations process min(len(a), len(b)) elements.
//
// Reductions accumulate and compare in float32. The common ML pattern is
// to keep storage in bfloat16 and accumulate in higher precision.

// AddSlice returns the element-wise sum of a and b.
func AddSlice(a, b []BFloat16) []BFloat16 {
	n := min(len(a), len(b))
	result := make([]BFloat16, n)
	for i := 0; i < n; i++ {
		result[i] = FromFloat32(a[i].Float32() + b[i].Float32())
	}
	return result
}

// SubSlice returns the element-wise difference of a and b.
func SubSlice(a, b []BFloat16) []BFloat16 {
	n := min(len(a), len(b))
	result := make([]BFloat16, n)
	for i := 0; i < n; i++ {
		result[i] = FromFloat32(a[i].Float32() - b[i].Float32())
	}
	return result
}

// MulSlice returns the element-wise product of a and b.
func MulSlice(a, b []BFloat16) []BFloat16 {
	n := min(len(a), len(b))
	result := make([]BFloat16, n)
	for i := 0; i < n; i++ {
		result[i] = FromFloat32(a[i].Float32() * b[i].Float32())
	}
	return result
}

// DivSlice returns the element-wise quotient of a and b.
func DivSlice(a, b []BFloat16) []BFloat16 {
	n := min(len(a), len(b))
	result := make([]BFloat16, n)
	for i := 0; i < n; i++ {
		result[i] = FromFloat32(a[i].Float32() / b[i].Float32())
	}
	return result
}

// Dot computes the dot product of a and b, accumulating in float32.
func Dot(a, b []BFloat16) float32 {
	n := min(len(a), len(b))
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i].Float32() * b[i].Float32()
	}
	return sum
}

// ReduceSum adds all elements, accumulating in float32.
func ReduceSum(v []BFloat16) float32 {
	var sum float32
	for _, b := range v {
		sum += b.Float32()
	}
	return sum
}

// ReduceMin returns the numerically smallest element, comparing as
// float32. It returns PosInf for an empty slice.
func ReduceMin(v []BFloat16) BFloat16 {
	if len(v) == 0 {
		return PosInf
	}
	best := v[0]
	bestF := best.Float32()
	for _, b := range v[1:] {
		if f := b.Float32(); f < bestF {
			best, bestF = b, f
		}
	}
	return best
}

// ReduceMax returns the numerically largest element, comparing as
// float32. It returns NegInf for an empty slice.
func ReduceMax(v []BFloat16) BFloat16 {
	if len(v) == 0 {
		return NegInf
	}
	best := v[0]
	bestF := best.Float32()
	for _, b := range v[1:] {
		if f := b.Float32(); f > bestF {
			best, bestF = b, f
		}
	}
	return best
}

// FromFloat32s converts a float32 slice to BFloat16, rounding each
// element.
func FromFloat32s(src []float32) []BFloat16 {
	result := make([]BFloat16, len(src))
	for i, f := range src {
		result[i] = FromFloat32(f)
	}
	return result
}

// ToFloat32s widens a BFloat16 slice to float32. Exact.
func ToFloat32s(src []BFloat16) []float32 {
	result := make([]float32, len(src))
	for i, b := range src {
		result[i] = b.Float32()
	}
	return result
}
