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

// l2sqF64/F32/F16/I8 compute the squared Euclidean distance Σ(a[i]-b[i])²,
// with no square root taken.

func l2sqF64(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = sum64(n, width, func(i uintptr) float64 {
			d := f64At(a, i) - f64At(b, i)
			return d * d
		})
	}
}

func l2sqF32(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = sum64(n, width, func(i uintptr) float64 {
			d := float64(f32At(a, i)) - float64(f32At(b, i))
			return d * d
		})
	}
}

func l2sqF16(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = sum64(n, width, func(i uintptr) float64 {
			d := float64(f16At(a, i).Float32()) - float64(f16At(b, i).Float32())
			return d * d
		})
	}
}

func l2sqI8(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		sum := sumI32(n, width, func(i uintptr) int64 {
			d := int64(i8At(a, i)) - int64(i8At(b, i))
			return d * d
		})
		*out = float64(sum)
	}
}
