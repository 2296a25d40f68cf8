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
	"math"
	"unsafe"

	"github.com/gosimd/simdkernel/simd"
)

// klTerm is one a_i*ln(a_i/b_i) summand: zero probability on the left
// contributes zero regardless of the right side; a zero right with
// nonzero left diverges to +Inf.
func klTerm(ai, bi float64) float64 {
	if ai == 0 {
		return 0
	}
	if bi == 0 {
		return math.Inf(1)
	}
	return ai * math.Log(ai/bi)
}

func klF64(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = sum64(n, width, func(i uintptr) float64 {
			return klTerm(f64At(a, i), f64At(b, i))
		})
	}
}

func klF32(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = sum64(n, width, func(i uintptr) float64 {
			return klTerm(float64(f32At(a, i)), float64(f32At(b, i)))
		})
	}
}

func klF16(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = sum64(n, width, func(i uintptr) float64 {
			return klTerm(float64(f16At(a, i).Float32()), float64(f16At(b, i).Float32()))
		})
	}
}
