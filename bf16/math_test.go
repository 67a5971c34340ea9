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

import (
	"math"
	"testing"
)

// TestAbs tests absolute value via sign-bit clearing.
func TestAbs(t *testing.T) {
	approxEqual(t, Abs(FromFloat32(-3.5)), 3.5)
	approxEqual(t, Abs(FromFloat32(3.5)), 3.5)

	if Abs(NegZero) != Zero {
		t.Error("Abs(-0) should be +0")
	}
	if Abs(NegInf) != PosInf {
		t.Error("Abs(-Inf) should be +Inf")
	}
	// No float32 round trip: the NaN payload survives bit for bit.
	if Abs(FromBits(0xFF81)) != QNaN {
		t.Error("Abs of a negative NaN should clear only the sign bit")
	}
}

// TestSqrt tests square root.
func TestSqrt(t *testing.T) {
	approxEqual(t, Sqrt(FromFloat32(16.0)), 4.0)
	approxEqual(t, Sqrt(FromFloat32(2.0)), float32(math.Sqrt2))

	if !Sqrt(NegOne).IsNaN() {
		t.Error("Sqrt(-1) should be NaN")
	}
	if !Sqrt(PosInf).IsInf() {
		t.Error("Sqrt(+Inf) should be +Inf")
	}
}

// TestTrig tests the trigonometric functions at simple points.
func TestTrig(t *testing.T) {
	zero := Zero

	approxEqual(t, Sin(zero), 0.0)
	approxEqual(t, Cos(zero), 1.0)
	approxEqual(t, Tan(zero), 0.0)

	quarterPi := FromFloat64(math.Pi / 4)
	approxEqual(t, Tan(quarterPi), 1.0)
}

// TestExpLog tests the exponential and logarithm.
func TestExpLog(t *testing.T) {
	approxEqual(t, Exp(One), float32(math.E))
	approxEqual(t, Exp(Zero), 1.0)
	approxEqual(t, Log(One), 0.0)
	approxEqual(t, Log(Exp(One)), 1.0)

	if !Log(NegOne).IsNaN() {
		t.Error("Log(-1) should be NaN")
	}
	if !Log(Zero).IsInf() || !Log(Zero).IsNegative() {
		t.Error("Log(0) should be -Inf")
	}
}

// TestPow tests the power function.
func TestPow(t *testing.T) {
	approxEqual(t, Pow(FromFloat32(2.0), FromFloat32(3.0)), 8.0)
	approxEqual(t, Pow(FromFloat32(9.0), FromFloat32(0.5)), 3.0)
	approxEqual(t, Pow(FromFloat32(5.0), Zero), 1.0)
}
