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

// Package lane provides the packed four-lane float32 register that backs the
// 4-wide vector, quaternion and matrix-row types of linmath.
//
// F32x4 plays the role of a 128-bit SIMD register. Every operation has a pure
// Go implementation; on amd64 builds with GOEXPERIMENT=simd the arithmetic
// kernels are routed through simd/archsimd when the CPU supports AVX. All
// paths round every product separately and reduce lanes in index order, so the
// scalar and SIMD results are bit-identical.
//
// Basic usage:
//
//	a := lane.Of(1, 2, 3, 4)
//	b := lane.Set(2)
//	sum := lane.Add(a, b)     // [3 4 5 6]
//	dot := lane.Dot(a, b)     // 20
//	lane.Store(sum, out[:])
package lane

// F32x4 is four float32 lanes, the Go stand-in for an SSE/NEON register.
//
// Any [4]float32-based type converts to F32x4 directly, which is how
// vec.Vec4, quat.Quat and the rows of mat.Mat4 reach the lane kernels without
// copying through an intermediate representation.
type F32x4 [4]float32

// Mask is the result of a lane-wise comparison. Bit i is set when lane i
// compared true.
type Mask uint8

const (
	// MaskXY selects lanes 0 and 1.
	MaskXY Mask = 0b0011
	// MaskXYZ selects lanes 0..2.
	MaskXYZ Mask = 0b0111
	// MaskAll selects all four lanes.
	MaskAll Mask = 0b1111
)

// AllTrue reports whether all four lanes are set.
func (m Mask) AllTrue() bool {
	return m&MaskAll == MaskAll
}

// AnyTrue reports whether at least one lane is set.
func (m Mask) AnyTrue() bool {
	return m&MaskAll != 0
}

// Covers reports whether every lane selected by sel is set in m.
func (m Mask) Covers(sel Mask) bool {
	return m&sel == sel
}

// CountTrue returns the number of set lanes.
func (m Mask) CountTrue() int {
	n := 0
	for i := 0; i < 4; i++ {
		if m&(1<<i) != 0 {
			n++
		}
	}
	return n
}

// GetBit returns whether lane i is set.
func (m Mask) GetBit(i int) bool {
	if i < 0 || i >= 4 {
		return false
	}
	return m&(1<<i) != 0
}

// Bits returns the raw lane bits.
func (m Mask) Bits() uint8 {
	return uint8(m & MaskAll)
}
