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

import "github.com/gosimd/simdkernel/simd"

// accumWidth picks how many parallel float64 accumulators a tier's
// reduction tree uses. Widening the accumulator count changes summation
// order and therefore rounding, which is how tiers produce distinct,
// reproducible results without any tier owning hand-written vector code
// of its own.
func accumWidth(t simd.Tier) int {
	switch {
	case t&simd.TierSapphire != 0:
		return 16
	case t&simd.TierIce != 0:
		return 8
	case t&simd.TierSkylake != 0:
		return 8
	case t&simd.TierHaswell != 0:
		return 4
	case t&simd.TierSVE2 != 0:
		return 4
	case t&simd.TierSVE != 0:
		return 2
	case t&simd.TierNEON != 0:
		return 2
	default:
		return 1
	}
}

// maxAccumWidth is the widest accumulator count accumWidth ever returns
// (the Sapphire tier); every fixed-size backing array below is sized to
// this bound so the reduction stays on the stack regardless of tier.
const maxAccumWidth = 16

// clampWidth keeps width within [1, maxAccumWidth] so every caller below
// can index a maxAccumWidth-sized stack array without a bounds check.
func clampWidth(width int) int {
	if width < 1 {
		return 1
	}
	if width > maxAccumWidth {
		return maxAccumWidth
	}
	return width
}

// sum64 reduces n terms using width parallel accumulators, combining them
// left to right at the end, then finishes any remainder serially. term is
// called with indices in [0, n).
func sum64(n uintptr, width int, term func(i uintptr) float64) float64 {
	width = clampWidth(width)
	var accArr [maxAccumWidth]float64
	acc := accArr[:width]
	w := uintptr(width)

	var i uintptr
	for ; i+w <= n; i += w {
		for j := uintptr(0); j < w; j++ {
			acc[j] += term(i + j)
		}
	}

	var total float64
	for _, v := range acc {
		total += v
	}
	for ; i < n; i++ {
		total += term(i)
	}
	return total
}

// sum64Triple is sum64 specialized for finalization steps that need three
// co-indexed running sums (e.g. cos's Σab alongside Σa², Σb²) reduced with
// the same tier-dependent reduction tree shape.
func sum64Triple(n uintptr, width int, term func(i uintptr) (float64, float64, float64)) (float64, float64, float64) {
	width = clampWidth(width)
	var acc0Arr, acc1Arr, acc2Arr [maxAccumWidth]float64
	acc0, acc1, acc2 := acc0Arr[:width], acc1Arr[:width], acc2Arr[:width]
	w := uintptr(width)

	var i uintptr
	for ; i+w <= n; i += w {
		for j := uintptr(0); j < w; j++ {
			t0, t1, t2 := term(i + j)
			acc0[j] += t0
			acc1[j] += t1
			acc2[j] += t2
		}
	}

	var s0, s1, s2 float64
	for j := 0; j < width; j++ {
		s0 += acc0[j]
		s1 += acc1[j]
		s2 += acc2[j]
	}
	for ; i < n; i++ {
		t0, t1, t2 := term(i)
		s0 += t0
		s1 += t1
		s2 += t2
	}
	return s0, s1, s2
}

// sumI32 is the i8-dot accumulation path: mixed-width accumulation requires
// int32-or-wider partial sums, so the reduction tree itself runs in int64
// to stay exact for any n up to the kernel's contract, only converting to
// float64 once at the very end.
func sumI32(n uintptr, width int, term func(i uintptr) int64) int64 {
	width = clampWidth(width)
	var accArr [maxAccumWidth]int64
	acc := accArr[:width]
	w := uintptr(width)

	var i uintptr
	for ; i+w <= n; i += w {
		for j := uintptr(0); j < w; j++ {
			acc[j] += term(i + j)
		}
	}

	var total int64
	for _, v := range acc {
		total += v
	}
	for ; i < n; i++ {
		total += term(i)
	}
	return total
}
