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

package dispatch

import (
	"github.com/samber/lo"

	"github.com/gosimd/simdkernel/simd"
	"github.com/gosimd/simdkernel/simd/kernel"
)

// Resolve binds (metric, dtype, allowed) to a concrete kernel pointer and
// the tier that produced it. allowed is typically cpufeat.Capabilities(),
// optionally narrowed by the caller; the SIMDKERNEL_DISABLE_TIERS
// environment variable further narrows it here.
//
// viable = supported(metric,dtype) ∧ allowed ∧ ¬disabled is walked in
// simd.TierPriority order (Sapphire down to serial); the first tier with
// an entry wins. If no tier has one - not even serial - k is nil, tier
// is 0 and err is ErrUnsupportedCombination. Resolve reads the
// environment variable on every call and builds a fresh kernel closure
// for the chosen tier, so it is not allocation-free; callers are expected
// to resolve once per (metric, dtype) and reuse the returned kernel.
func Resolve(metric simd.Metric, dtype simd.DType, allowed simd.Tier) (k simd.Kernel, tier simd.Tier, err error) {
	if !kernel.Supported(metric, dtype) {
		return nil, 0, ErrUnsupportedCombination
	}

	viable := allowed &^ disabledMask()

	for _, t := range simd.TierPriority {
		if viable&t == 0 {
			continue
		}
		if k, ok := kernel.Make(metric, dtype, t); ok {
			return k, t, nil
		}
	}

	// Every table cell we build applies uniformly to every tier (the
	// matrix is keyed on metric/dtype only; tiers differ in accumulator
	// width, not in which cells exist), so this is reachable only when
	// allowed carries no usable bit at all, e.g. all tiers were masked
	// out by SIMDKERNEL_DISABLE_TIERS including serial.
	return nil, 0, ErrUnsupportedCombination
}

// Capabilities reports every (metric, dtype) pair with at least one
// implementing cell, for introspection and resolver-totality tests.
func Capabilities() map[simd.Metric][]simd.DType {
	return lo.SliceToMap(kernel.Metrics(), func(m simd.Metric) (simd.Metric, []simd.DType) {
		return m, kernel.DTypes(m)
	})
}
