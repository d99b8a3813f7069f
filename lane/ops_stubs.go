// Copyright 2025 go-linmath Authors
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

//go:build !amd64 || !goexperiment.simd || nosimd

package lane

// Without the AVX kernels compiled in, useSIMD is a constant so the dispatch
// branches fold away.
const useSIMD = false

func addAVX(a, b F32x4) F32x4 { panic("lane: AVX kernels not available") }
func subAVX(a, b F32x4) F32x4 { panic("lane: AVX kernels not available") }
func mulAVX(a, b F32x4) F32x4 { panic("lane: AVX kernels not available") }
func divAVX(a, b F32x4) F32x4 { panic("lane: AVX kernels not available") }
func sqrtAVX(a F32x4) F32x4 { panic("lane: AVX kernels not available") }
func minAVX(a, b F32x4) F32x4 { panic("lane: AVX kernels not available") }
func maxAVX(a, b F32x4) F32x4 { panic("lane: AVX kernels not available") }
