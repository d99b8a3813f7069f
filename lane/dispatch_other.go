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

//go:build !amd64

package lane

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func init() {
	// Non-amd64 architectures run the pure Go kernels. On arm64 the compiler
	// still keeps an F32x4 in registers; ASIMD is reported for Info.
	cpuFeatures = cpuFeatures[:0]
	if runtime.GOARCH == "arm64" && cpu.ARM64.HasASIMD {
		cpuFeatures = append(cpuFeatures, "asimd")
	}
	currentLevel = DispatchScalar
	logDispatch()
}
