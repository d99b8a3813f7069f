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

//go:build amd64 && goexperiment.simd && !nosimd

package lane

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

func init() {
	detectCPUFeatures()

	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
	} else if archsimd.X86.AVX() {
		currentLevel = DispatchAVX
		useSIMD = true
	} else {
		setScalarMode()
	}
	logDispatch()
}

func setScalarMode() {
	currentLevel = DispatchScalar
	useSIMD = false
}

func detectCPUFeatures() {
	cpuFeatures = cpuFeatures[:0]
	if cpu.X86.HasSSE2 {
		cpuFeatures = append(cpuFeatures, "sse2")
	}
	if cpu.X86.HasSSE41 {
		cpuFeatures = append(cpuFeatures, "sse4.1")
	}
	if cpu.X86.HasAVX {
		cpuFeatures = append(cpuFeatures, "avx")
	}
	if cpu.X86.HasAVX2 {
		cpuFeatures = append(cpuFeatures, "avx2")
	}
	if cpu.X86.HasFMA {
		cpuFeatures = append(cpuFeatures, "fma")
	}
}
