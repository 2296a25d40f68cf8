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

// Package simd defines the ABI-stable vocabulary shared by the kernel,
// dispatch, and batch layers of this library: the scalar type tags
// (DType), metric tags (Metric), capability tiers (Tier) and the kernel
// call signature (Kernel) that every micro-kernel implements.
//
// Kernels are pure and stateless: they read two equal-length borrowed
// buffers and write a scalar (or, for complex metrics, a pair of scalars)
// through an output pointer. Nothing in this package allocates on the
// call path.
package simd
