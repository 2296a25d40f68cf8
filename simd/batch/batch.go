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

package batch

import (
	"context"
	"runtime"
	"unsafe"

	"golang.org/x/sync/errgroup"

	"github.com/gosimd/simdkernel/simd"
	"github.com/gosimd/simdkernel/simd/dispatch"
)

// One computes a single 1×1 kernel call directly, with no worker pool
// involved.
func One(k simd.Kernel, a, b unsafe.Pointer, n uintptr) (float64, error) {
	if k == nil {
		return 0, dispatch.ErrNilKernel
	}
	var out float64
	k(a, b, n, &out)
	return out, nil
}

// OneC is One for a complex-valued metric, returning both components
// written through simd.WriteComplex.
func OneC(k simd.Kernel, a, b unsafe.Pointer, n uintptr) (re, im float64, err error) {
	if k == nil {
		return 0, 0, dispatch.ErrNilKernel
	}
	var out [2]float64
	k(a, b, n, &out[0])
	re, im = simd.ReadComplex(&out[0])
	return re, im, nil
}

// Broadcast computes 1×M mode: the single row query against every row of
// data, writing data.Rows distances into out. out must have length
// >= data.Rows.
func Broadcast(k simd.Kernel, query unsafe.Pointer, queryN uintptr, data Matrix, out []float64, threads int) error {
	if k == nil {
		return dispatch.ErrNilKernel
	}
	if queryN != data.N {
		return dispatch.ErrShapeMismatch
	}
	if len(out) < data.Rows {
		return dispatch.ErrShapeMismatch
	}

	p := newPool(threads)
	defer p.close()

	p.parallelFor(data.Rows, func(start, end int) {
		for r := start; r < end; r++ {
			var o float64
			k(query, data.Row(r), data.N, &o)
			out[r] = o
		}
	})
	return nil
}

// Pairwise computes N×N paired mode: row r of a against row r of b, for
// every r, writing Rows distances into out.
func Pairwise(k simd.Kernel, a, b Matrix, out []float64, threads int) error {
	if k == nil {
		return dispatch.ErrNilKernel
	}
	if err := validatePaired(a, b); err != nil {
		return err
	}
	if len(out) < a.Rows {
		return dispatch.ErrShapeMismatch
	}

	p := newPool(threads)
	defer p.close()

	p.parallelFor(a.Rows, func(start, end int) {
		for r := start; r < end; r++ {
			var o float64
			k(a.Row(r), b.Row(r), a.N, &o)
			out[r] = o
		}
	})
	return nil
}

// CDist computes all-pairs mode: output shape (a.Rows, b.Rows), cell (i, j)
// holding k(a.Row(i), b.Row(j), n). out is row-major with a.Rows*b.Rows
// elements: out[i*b.Rows+j].
//
// Row blocks of a fan out across an errgroup, each block computing its
// full row of b.Rows outputs sequentially - a distinct concurrency shape
// from Pairwise/Broadcast's flat worker pool, since an all-pairs job's
// per-row work (an entire b.Rows-length scan) is large enough that
// bounding fan-out concurrency with SetLimit is the more natural fit than
// splitting single rows further.
func CDist(k simd.Kernel, a, b Matrix, out []float64, threads int) error {
	if k == nil {
		return dispatch.ErrNilKernel
	}
	if err := validateInner(a, b); err != nil {
		return err
	}
	if len(out) < a.Rows*b.Rows {
		return dispatch.ErrShapeMismatch
	}
	if a.Rows == 0 || b.Rows == 0 {
		return nil
	}

	g, _ := errgroup.WithContext(context.Background())
	switch {
	case threads == 1:
		g.SetLimit(1)
	case threads > 1:
		g.SetLimit(threads)
	default: // threads == 0: hardware concurrency
		g.SetLimit(runtime.GOMAXPROCS(0))
	}

	for i := 0; i < a.Rows; i++ {
		i := i
		g.Go(func() error {
			ai := a.Row(i)
			rowOut := out[i*b.Rows : (i+1)*b.Rows]
			for j := 0; j < b.Rows; j++ {
				var o float64
				k(ai, b.Row(j), a.N, &o)
				rowOut[j] = o
			}
			return nil
		})
	}
	return g.Wait()
}
