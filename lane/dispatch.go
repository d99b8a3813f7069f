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

package lane

import (
	"log/slog"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/viterin/vek/vek32"
)

// DispatchLevel represents the instruction set the lane kernels run on.
type DispatchLevel int

const (
	// DispatchScalar indicates pure Go lane arithmetic.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX indicates VEX-encoded 128-bit kernels through simd/archsimd.
	// Only selected on amd64 builds with GOEXPERIMENT=simd.
	DispatchAVX
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX:
		return "avx"
	default:
		return "unknown"
	}
}

// registerWidth is the width in bytes of F32x4. The core never uses wider
// registers, even on AVX2/AVX-512 machines.
const registerWidth = 16

// currentLevel is the detected dispatch level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// cpuFeatures lists the CPU features detected by the dispatch_*.go files.
var cpuFeatures []string

// CurrentLevel returns the instruction set the lane kernels are using.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current dispatch level.
func CurrentName() string {
	return currentLevel.String()
}

// CurrentWidth returns the register width in bytes. Always 16.
func CurrentWidth() int {
	return registerWidth
}

// NoSimdEnv checks if the LINMATH_NO_SIMD environment variable is set.
// When set, the lane kernels use the pure Go path regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	return parseNoSimd(os.Getenv("LINMATH_NO_SIMD"))
}

func parseNoSimd(val string) bool {
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// RuntimeInfo describes the active lane implementation.
type RuntimeInfo struct {
	// Level is the dispatch level of the F32x4 kernels.
	Level DispatchLevel
	// Features lists the CPU features detected at startup.
	Features []string
	// BatchAccelerated reports whether the batch kernels run on vek's SIMD
	// assembly rather than its pure Go fallback.
	BatchAccelerated bool
}

// Info returns information about the active lane implementation.
func Info() RuntimeInfo {
	vi := vek32.Info()
	features := make([]string, 0, len(cpuFeatures)+len(vi.CPUFeatures))
	features = append(features, cpuFeatures...)
	for _, f := range vi.CPUFeatures {
		if !contains(features, f) {
			features = append(features, f)
		}
	}
	return RuntimeInfo{
		Level:            currentLevel,
		Features:         features,
		BatchAccelerated: vi.Acceleration,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

var logger atomic.Pointer[slog.Logger]

// Logger returns the package logger, slog.Default() unless SetLogger was
// called.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// SetLogger replaces the package logger and reports the dispatch decision on
// it at debug level. A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) {
	logger.Store(l)
	logDispatch()
}

func logDispatch() {
	Logger().Debug("linmath: lane dispatch",
		"dispatch", currentLevel.String(),
		"width", registerWidth,
		"features", cpuFeatures,
	)
}
