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
	"encoding/binary"
	"fmt"
)

// Wire format: the canonical serialization of a BFloat16 is its raw
// 2-byte bit pattern, little-endian. No other persisted state exists.

// Size is the wire size of one BFloat16 in bytes.
const Size = 2

// AppendBytes appends the 2-byte little-endian encoding of b to dst and
// returns the extended slice.
func AppendBytes(dst []byte, b BFloat16) []byte {
	return binary.LittleEndian.AppendUint16(dst, uint16(b))
}

// FromBytes decodes a BFloat16 from the first two bytes of buf.
// It panics if buf is shorter than Size, like binary.LittleEndian.
func FromBytes(buf []byte) BFloat16 {
	return BFloat16(binary.LittleEndian.Uint16(buf))
}

// EncodeSlice encodes v into its packed little-endian wire form,
// 2 bytes per element.
func EncodeSlice(v []BFloat16) []byte {
	out := make([]byte, 0, len(v)*Size)
	for _, b := range v {
		out = AppendBytes(out, b)
	}
	return out
}

// DecodeSlice decodes a packed little-endian buffer into BFloat16
// values. The buffer length must be a multiple of Size.
func DecodeSlice(buf []byte) ([]BFloat16, error) {
	if len(buf)%Size != 0 {
		return nil, fmt.Errorf("bf16: buffer length %d is not a multiple of %d", len(buf), Size)
	}
	out := make([]BFloat16, len(buf)/Size)
	for i := range out {
		out[i] = FromBytes(buf[i*Size:])
	}
	return out, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b BFloat16) MarshalBinary() ([]byte, error) {
	return AppendBytes(nil, b), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *BFloat16) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return fmt.Errorf("bf16: invalid encoding length %d, want %d", len(data), Size)
	}
	*b = FromBytes(data)
	return nil
}
