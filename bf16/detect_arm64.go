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

//go:build arm64

package bf16

import "golang.org/x/sys/cpu"

func init() {
	// The ARMv8.6 BF16 extension (BFDOT, BFMMLA) is present on recent
	// server cores and Apple M2+.
	hasNativeBF16 = cpu.ARM64.HasBF16
}
