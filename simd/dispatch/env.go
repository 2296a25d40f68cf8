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
	"os"
	"strconv"
	"strings"

	"github.com/gosimd/simdkernel/simd"
)

const disableTiersEnv = "SIMDKERNEL_DISABLE_TIERS"

// disabledMask reads SIMDKERNEL_DISABLE_TIERS, a single opt-in debugging
// variable that masks specific tiers out of dispatch rather than
// disabling acceleration wholesale. The value is either a comma-separated
// list of tier names
// ("neon,sve2") or a single hex bitmask ("0x00400000"). Unknown or
// unparsable content is ignored rather than treated as a fatal error -
// this is a debugging knob, not part of the load-bearing API.
func disabledMask() simd.Tier {
	raw := strings.TrimSpace(os.Getenv(disableTiersEnv))
	if raw == "" {
		return 0
	}

	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		v, err := strconv.ParseUint(raw[2:], 16, 32)
		if err != nil {
			return 0
		}
		return simd.Tier(v)
	}

	var mask simd.Tier
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if t, ok := simd.ParseTier(name); ok {
			mask |= t
		}
	}
	return mask
}
