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

// Package dispatch resolves a (metric, dtype, allowed-tier-mask) request to
// a concrete kernel pointer and the tier that produced it.
package dispatch

import "errors"

// The three error kinds used at the dispatch/driver boundary. Kernels
// themselves never return or raise errors.
var (
	// ErrShapeMismatch is returned by the batch driver, never by Resolve,
	// when caller-supplied inputs have unequal inner or outer dimensions.
	ErrShapeMismatch = errors.New("simd: shape mismatch")

	// ErrUnsupportedCombination is returned by Resolve when no tier - not
	// even serial - has an entry for (metric, dtype).
	ErrUnsupportedCombination = errors.New("simd: unsupported metric/dtype combination")

	// ErrNilKernel is returned by batch driver entry points given a nil
	// kernel pointer, e.g. one obtained from a failed Resolve call that
	// the caller did not check.
	ErrNilKernel = errors.New("simd: nil kernel")
)
