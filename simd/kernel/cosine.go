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

// finalizeCos applies the cos finalization: 1 - Σab/sqrt(Σa²·Σb²), returning
// 1 if either norm is zero.
func finalizeCos(sumAB, sumA2, sumB2 float64) float64 {
	if sumA2 == 0 || sumB2 == 0 {
		return 1
	}
	return 1 - sumAB/math.Sqrt(sumA2*sumB2)
}

// finalizeCosFast is finalizeCos's half/single-precision path: the
// Kadlec-constant rsqrt fast path is only accurate to >=15 bits, so it is
// reserved for f32/f16/i8 accumulators where that precision already
// exceeds the input's, and is never used for cosF64 - routing an f64
// input through a float32 reciprocal both caps accuracy and risks
// overflowing to Inf for large norms. A single f64 Newton step on top of
// the rsqrt keeps the normalization error from compounding further.
func finalizeCosFast(sumAB, sumA2, sumB2 float64) float64 {
	if sumA2 == 0 || sumB2 == 0 {
		return 1
	}
	denom := float32(sumA2 * sumB2)
	r := float64(simd.FastRSqrt32(denom))
	r = r * (1.5 - 0.5*float64(denom)*r*r)
	return 1 - sumAB*r
}

func cosF64(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		sumAB, sumA2, sumB2 := sum64Triple(n, width, func(i uintptr) (float64, float64, float64) {
			av, bv := f64At(a, i), f64At(b, i)
			return av * bv, av * av, bv * bv
		})
		*out = finalizeCos(sumAB, sumA2, sumB2)
	}
}

func cosF32(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		sumAB, sumA2, sumB2 := sum64Triple(n, width, func(i uintptr) (float64, float64, float64) {
			av, bv := float64(f32At(a, i)), float64(f32At(b, i))
			return av * bv, av * av, bv * bv
		})
		*out = finalizeCosFast(sumAB, sumA2, sumB2)
	}
}

func cosF16(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		sumAB, sumA2, sumB2 := sum64Triple(n, width, func(i uintptr) (float64, float64, float64) {
			av, bv := float64(f16At(a, i).Float32()), float64(f16At(b, i).Float32())
			return av * bv, av * av, bv * bv
		})
		*out = finalizeCosFast(sumAB, sumA2, sumB2)
	}
}

func cosI8(width int) simd.Kernel {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		var sumAB, sumA2, sumB2 int64
		width = clampWidth(width)
		var accArr [maxAccumWidth][3]int64
		acc := accArr[:width]
		w := uintptr(width)
		var i uintptr
		for ; i+w <= n; i += w {
			for j := uintptr(0); j < w; j++ {
				av, bv := int64(i8At(a, i+j)), int64(i8At(b, i+j))
				acc[j][0] += av * bv
				acc[j][1] += av * av
				acc[j][2] += bv * bv
			}
		}
		for _, v := range acc {
			sumAB += v[0]
			sumA2 += v[1]
			sumB2 += v[2]
		}
		for ; i < n; i++ {
			av, bv := int64(i8At(a, i)), int64(i8At(b, i))
			sumAB += av * bv
			sumA2 += av * av
			sumB2 += bv * bv
		}
		*out = finalizeCosFast(float64(sumAB), float64(sumA2), float64(sumB2))
	}
}
