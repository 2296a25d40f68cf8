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

// dotF64 computes Σ a[i]*b[i] over f64 operands.
func dotF64(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = sum64(n, width, func(i uintptr) float64 {
			return f64At(a, i) * f64At(b, i)
		})
	}
}

func dotF32(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = sum64(n, width, func(i uintptr) float64 {
			return float64(f32At(a, i)) * float64(f32At(b, i))
		})
	}
}

// dotF16 multiplies in f32 and accumulates the products in f64, wider
// than the f32 minimum of the mixed-width-accumulation invariant.
func dotF16(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = sum64(n, width, func(i uintptr) float64 {
			av := f16At(a, i).Float32()
			bv := f16At(b, i).Float32()
			return float64(av * bv)
		})
	}
}

// dotI8 accumulates into int64, a superset of the required int32 minimum -
// a genuine integer dot product, kept distinct from cosI8's finalization.
func dotI8(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		sum := sumI32(n, width, func(i uintptr) int64 {
			return int64(i8At(a, i)) * int64(i8At(b, i))
		})
		*out = float64(sum)
	}
}

// dotF64C, dotF32C, dotF16C compute the unconjugated complex inner product:
// real = Σ(aᵣbᵣ − aᵢbᵢ), imag = Σ(aᵣbᵢ + aᵢbᵣ).

func dotF64C(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		re, im, _ := sum64Triple(n, width, func(i uintptr) (float64, float64, float64) {
			ar, ai := f64cAt(a, i)
			br, bi := f64cAt(b, i)
			return ar*br - ai*bi, ar*bi + ai*br, 0
		})
		simd.WriteComplex(out, re, im)
	}
}

func dotF32C(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		re, im, _ := sum64Triple(n, width, func(i uintptr) (float64, float64, float64) {
			ar, ai := f32cAt(a, i)
			br, bi := f32cAt(b, i)
			far, fai := float64(ar), float64(ai)
			fbr, fbi := float64(br), float64(bi)
			return far*fbr - fai*fbi, far*fbi + fai*fbr, 0
		})
		simd.WriteComplex(out, re, im)
	}
}

func dotF16C(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		re, im, _ := sum64Triple(n, width, func(i uintptr) (float64, float64, float64) {
			ar, ai := f16cAt(a, i)
			br, bi := f16cAt(b, i)
			far, fai := float64(ar.Float32()), float64(ai.Float32())
			fbr, fbi := float64(br.Float32()), float64(bi.Float32())
			return far*fbr - fai*fbi, far*fbi + fai*fbr, 0
		})
		simd.WriteComplex(out, re, im)
	}
}
