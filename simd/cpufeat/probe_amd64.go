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

//go:build amd64

package cpufeat

import (
	"github.com/klauspost/cpuid/v2"

	"github.com/gosimd/simdkernel/simd"
)

// detect decodes x86-64 feature flags from cpuid.CPU into the Tier bitmask.
// Tiers are cumulative by microarchitecture generation: a host reporting
// Sapphire-class features also reports Ice/Skylake/Haswell bits, since each
// later generation's instruction set is a superset for our purposes.
//
//   - haswell: AVX2 + FMA + F16C.
//   - skylake: AVX-512 foundation.
//   - ice: AVX-512 + VNNI + IFMA + BITALG + VBMI2 + VPOPCNTDQ.
//   - sapphire: AVX-512 + FP16.
func detect() simd.Tier {
	var t simd.Tier

	if cpuid.CPU.Supports(cpuid.AVX2, cpuid.FMA3, cpuid.F16C) {
		t |= simd.TierHaswell
	}
	if cpuid.CPU.Supports(cpuid.AVX512F) {
		t |= simd.TierSkylake
	}
	if cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512VNNI, cpuid.AVX512IFMA,
		cpuid.AVX512BITALG, cpuid.AVX512VBMI2, cpuid.AVX512VPOPCNTDQ) {
		t |= simd.TierIce
	}
	if cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512FP16) {
		t |= simd.TierSapphire
	}

	return t
}
