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

// Package batch is the batch driver: the thin orchestration that applies a
// resolved simd.Kernel across row collections in one-to-one, one-to-many
// (broadcast), many-to-many (paired), and all-pairs modes.
package batch

import (
	"unsafe"

	"github.com/gosimd/simdkernel/simd/dispatch"
)

// Matrix is a caller-owned view over Rows vectors of N elements each. Rows
// need not be contiguous: Stride is the byte distance between the start of
// consecutive rows, so a Matrix can describe a row-major slab, a strided
// submatrix, or a single row (Rows == 1).
type Matrix struct {
	Data   unsafe.Pointer
	Rows   int
	Stride uintptr // bytes between consecutive row starts
	N      uintptr // elements per row, in the dtype's logical element count
}

// Row returns a pointer to the start of row r. Callers must ensure
// 0 <= r < Rows.
func (m Matrix) Row(r int) unsafe.Pointer {
	return unsafe.Add(m.Data, uintptr(r)*m.Stride)
}

// validatePaired checks the shape invariants paired (N×N) mode requires:
// equal inner dimension, equal outer dimension.
func validatePaired(a, b Matrix) error {
	if a.N != b.N {
		return dispatch.ErrShapeMismatch
	}
	if a.Rows != b.Rows {
		return dispatch.ErrShapeMismatch
	}
	return nil
}

// validateInner checks the shared inner-dimension invariant used by
// broadcast and all-pairs mode, where outer dimensions are allowed to
// differ.
func validateInner(a, b Matrix) error {
	if a.N != b.N {
		return dispatch.ErrShapeMismatch
	}
	return nil
}
