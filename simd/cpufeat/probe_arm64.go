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

//go:build arm64

package cpufeat

import (
	"golang.org/x/sys/cpu"

	"github.com/gosimd/simdkernel/simd"
)

// detect decodes ARM64 feature flags via golang.org/x/sys/cpu. NEON (ASIMD)
// is part of the ARMv8-A base architecture and is always present on arm64;
// SVE and SVE2 are reported only on server-class cores (Neoverse V1/V2,
// Fujitsu A64FX, and similar ARMv8.2-A+ implementations).
func detect() simd.Tier {
	var t simd.Tier

	if cpu.ARM64.HasASIMD {
		t |= simd.TierNEON
	}
	if cpu.ARM64.HasSVE {
		t |= simd.TierSVE
	}
	if cpu.ARM64.HasSVE2 {
		t |= simd.TierSVE2
	}

	return t
}
