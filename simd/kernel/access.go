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

// Scalar element accessors. Numeric kernels never hold a Go slice over the
// raw pointers they are handed (only the b8 kernels view their n bytes
// through byteSlice) - the caller-contract (simd.Kernel's doc comment)
// guarantees at least n valid elements of the declared dtype, and the
// batch driver is the only place that validates shapes, so kernels index
// with unsafe.Add and trust the contract - no bounds checks inside the
// hot loop.

func f64At(p unsafe.Pointer, i uintptr) float64 {
	return *(*float64)(unsafe.Add(p, i*8))
}

func f32At(p unsafe.Pointer, i uintptr) float32 {
	return *(*float32)(unsafe.Add(p, i*4))
}

func f16At(p unsafe.Pointer, i uintptr) simd.Float16 {
	return *(*simd.Float16)(unsafe.Add(p, i*2))
}

func i8At(p unsafe.Pointer, i uintptr) int8 {
	return *(*int8)(unsafe.Add(p, i))
}

func byteSlice(p unsafe.Pointer, n uintptr) []byte {
	return unsafe.Slice((*byte)(p), n)
}

// Complex accessors: a complex element at logical index i occupies two
// consecutive real scalars starting at byte offset i*2*scalarSize.

func f64cAt(p unsafe.Pointer, i uintptr) (re, im float64) {
	base := unsafe.Add(p, i*16)
	return *(*float64)(base), *(*float64)(unsafe.Add(base, 8))
}

func f32cAt(p unsafe.Pointer, i uintptr) (re, im float32) {
	base := unsafe.Add(p, i*8)
	return *(*float32)(base), *(*float32)(unsafe.Add(base, 4))
}

func f16cAt(p unsafe.Pointer, i uintptr) (re, im simd.Float16) {
	base := unsafe.Add(p, i*4)
	return *(*simd.Float16)(base), *(*simd.Float16)(unsafe.Add(base, 2))
}
