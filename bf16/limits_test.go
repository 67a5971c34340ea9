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

import "testing"

// TestLimitBitPatterns verifies the published bfloat16 limit patterns
// bit for bit. Downstream code may depend on exact equality with
// reference implementations.
func TestLimitBitPatterns(t *testing.T) {
	tests := []struct {
		name  string
		value BFloat16
		bits  uint16
	}{
		{"MinNormal", MinNormal, 0x0080},
		{"Lowest", Lowest, 0xFF7F},
		{"Max", Max, 0x7F7F},
		{"Epsilon", Epsilon, 0x3C00},
		{"SmallestNonzero", SmallestNonzero, 0x0001},
		{"Inf", PosInf, 0x7F80},
		{"QuietNaN", QNaN, 0x7F81},
		{"RoundError", RoundError, 0x3F00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value.Bits() != tt.bits {
				t.Errorf("%s: got 0x%04X, want 0x%04X", tt.name, tt.value.Bits(), tt.bits)
			}
		})
	}
}

// TestLimitsSanity tests the ordering relations between the limits.
func TestLimitsSanity(t *testing.T) {
	if MinNormal.Float32() <= 0 {
		t.Error("MinNormal should be positive")
	}
	if Max.Float32() <= MinNormal.Float32() {
		t.Error("Max should exceed MinNormal")
	}
	if Lowest.Float32() != -Max.Float32() {
		t.Error("Lowest should be -Max")
	}
	if SmallestNonzero.Float32() <= 0 || SmallestNonzero.Float32() >= MinNormal.Float32() {
		t.Error("SmallestNonzero should sit between 0 and MinNormal")
	}
	if RoundError != FromFloat32(0.5) {
		t.Error("RoundError should be the narrowed value of 0.5")
	}
}

// TestEpsilon tests that Epsilon is the gap to the next value above 1.0.
func TestEpsilon(t *testing.T) {
	eps := Epsilon.Float32()
	if eps <= 0 {
		t.Error("Epsilon should be positive")
	}
	if One.Add(Epsilon).Float32() <= 1.0 {
		t.Error("1.0 + Epsilon should exceed 1.0")
	}
	// Next representable pattern above One differs by exactly Epsilon.
	next := FromBits(One.Bits() + 1)
	if next.Float32()-One.Float32() != eps {
		t.Errorf("ULP at 1.0: got %v, want %v", next.Float32()-One.Float32(), eps)
	}
}

// TestTraits spot-checks the descriptive trait constants against the
// format layout.
func TestTraits(t *testing.T) {
	if SignBits+ExponentBits+MantissaBits != 16 {
		t.Error("field widths should sum to 16 bits")
	}
	if Digits != MantissaBits+1 {
		t.Error("Digits should count the implicit leading one")
	}
	if ExponentBias != 127 || MinExponent != -126 || MaxExponent != 127 {
		t.Error("exponent range should match float32")
	}
}
