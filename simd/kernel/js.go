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

// jsTerm returns the per-element contribution to ½·KL(a‖m) + ½·KL(b‖m)
// where m = (a+b)/2.
func jsTerm(ai, bi float64) float64 {
	m := (ai + bi) / 2
	return 0.5*klTerm(ai, m) + 0.5*klTerm(bi, m)
}

func jsF64(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = sum64(n, width, func(i uintptr) float64 {
			return jsTerm(f64At(a, i), f64At(b, i))
		})
	}
}

func jsF32(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = sum64(n, width, func(i uintptr) float64 {
			return jsTerm(float64(f32At(a, i)), float64(f32At(b, i)))
		})
	}
}

func jsF16(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = sum64(n, width, func(i uintptr) float64 {
			return jsTerm(float64(f16At(a, i).Float32()), float64(f16At(b, i).Float32()))
		})
	}
}
