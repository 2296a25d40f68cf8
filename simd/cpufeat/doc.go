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

// Package cpufeat is the capability probe: a one-shot host-CPU feature
// inspector yielding a bitmask of available simd.Tier bits. The result is
// pure, idempotent, and safe to cache process-wide (§4.3).
package cpufeat
