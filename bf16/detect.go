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
	"os"
	"strconv"
)

// Hardware bfloat16 capability reporting. The conversion and arithmetic
// in this package are always the portable scalar paths; these probes let
// callers (and the bf16 CLI) discover whether the host CPU additionally
// carries native bfloat16 instructions worth dispatching to in vectorized
// code built on top of this package.

// hasNativeBF16 is set by init() in detect_*.go files.
var hasNativeBF16 bool

// HasNativeBF16 returns true if the host CPU exposes native bfloat16
// instructions (AVX-512 BF16 on x86, the BF16 extension on ARM64).
// Setting the BF16_NO_NATIVE environment variable forces false.
func HasNativeBF16() bool {
	return hasNativeBF16 && !noNativeEnv()
}

// noNativeEnv checks the BF16_NO_NATIVE environment variable, useful for
// testing and debugging dispatch decisions in dependent code.
func noNativeEnv() bool {
	val := os.Getenv("BF16_NO_NATIVE")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
