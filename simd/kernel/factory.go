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

// Package kernel is the kernel family: the (metric × dtype × tier) matrix
// of micro-kernels. Every cell is constructed by Make; cells absent from
// the matrix (e.g. jaccard on f32) are reported by Supported, and Make
// returns ok=false for them rather than a sentinel kernel.
package kernel

import "github.com/gosimd/simdkernel/simd"

// factory builds a simd.Kernel for one tier's accumulator width.
type factory func(width int) simd.Kernel

// table[metric][dtype] holds the factory for that cell, or is absent when
// the combination has no kernel: inapplicable cells simply do not exist
// in the table, rather than pointing at a stub that errors at call time.
var table = map[simd.Metric]map[simd.DType]factory{
	simd.MetricDot: {
		simd.DTypeF64:  dotF64,
		simd.DTypeF32:  dotF32,
		simd.DTypeF16:  dotF16,
		simd.DTypeI8:   dotI8,
		simd.DTypeF64C: dotF64C,
		simd.DTypeF32C: dotF32C,
		simd.DTypeF16C: dotF16C,
	},
	simd.MetricVDot: {
		simd.DTypeF64C: vdotF64C,
		simd.DTypeF32C: vdotF32C,
		simd.DTypeF16C: vdotF16C,
	},
	simd.MetricCos: {
		simd.DTypeF64: cosF64,
		simd.DTypeF32: cosF32,
		simd.DTypeF16: cosF16,
		simd.DTypeI8:  cosI8,
	},
	simd.MetricL2Sq: {
		simd.DTypeF64: l2sqF64,
		simd.DTypeF32: l2sqF32,
		simd.DTypeF16: l2sqF16,
		simd.DTypeI8:  l2sqI8,
	},
	simd.MetricHamming: {
		simd.DTypeB8: hammingB8,
	},
	simd.MetricJaccard: {
		simd.DTypeB8: jaccardB8,
	},
	simd.MetricKL: {
		simd.DTypeF64: klF64,
		simd.DTypeF32: klF32,
		simd.DTypeF16: klF16,
	},
	simd.MetricJS: {
		simd.DTypeF64: jsF64,
		simd.DTypeF32: jsF32,
		simd.DTypeF16: jsF16,
	},
}

// Supported reports whether the (metric, dtype) cell exists in the matrix,
// independent of any tier.
func Supported(metric simd.Metric, dtype simd.DType) bool {
	byDtype, ok := table[metric]
	if !ok {
		return false
	}
	_, ok = byDtype[dtype]
	return ok
}

// Make builds the kernel for (metric, dtype) shaped by tier's reduction
// width. ok is false when the cell does not exist.
func Make(metric simd.Metric, dtype simd.DType, tier simd.Tier) (simd.Kernel, bool) {
	byDtype, ok := table[metric]
	if !ok {
		return nil, false
	}
	f, ok := byDtype[dtype]
	if !ok {
		return nil, false
	}
	return f(accumWidth(tier)), true
}

// Metrics returns every metric that has at least one supported dtype,
// for table-construction glue in simd/dispatch.
func Metrics() []simd.Metric {
	out := make([]simd.Metric, 0, len(table))
	for m := range table {
		out = append(out, m)
	}
	return out
}

// DTypes returns every dtype supported for metric.
func DTypes(metric simd.Metric) []simd.DType {
	byDtype, ok := table[metric]
	if !ok {
		return nil
	}
	out := make([]simd.DType, 0, len(byDtype))
	for d := range byDtype {
		out = append(out, d)
	}
	return out
}
