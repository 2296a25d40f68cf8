// Copyright 2025 gosimd Authors
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

package kernel

import (
	"unsafe"

	"github.com/gosimd/simdkernel/simd"
)

// hammingB8 returns the bit-level disagreement count between two packed
// bit vectors, with no further normalization. n counts bytes, not bits.
func hammingB8(_ int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		av := byteSlice(a, n)
		bv := byteSlice(b, n)
		*out = float64(simd.XorPopCountBytes(av, bv))
	}
}
