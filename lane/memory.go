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

import "unsafe"

// Alignment is the byte alignment required by aligned 4-lane loads and stores.
const Alignment = 16

// AlignedSize rounds size up to the next multiple of 4 lanes.
func AlignedSize(size int) int {
	return ((size + 3) / 4) * 4
}

// IsAligned returns true if size is a multiple of 4 lanes.
func IsAligned(size int) bool {
	return size%4 == 0
}

// IsAligned16 reports whether the first element of buf sits on a 16-byte
// boundary. An empty slice is never aligned.
func IsAligned16(buf []float32) bool {
	if len(buf) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&buf[0]))%Alignment == 0
}

// AlignedFloats returns a slice of n float32 whose first element is 16-byte
// aligned. Use it for export buffers handed to code that issues aligned
// stores.
func AlignedFloats(n int) []float32 {
	if n <= 0 {
		return nil
	}
	// Over-allocate by one register and slice at the first aligned offset.
	buf := make([]float32, n+4)
	off := 0
	for !IsAligned16(buf[off:]) {
		off++
	}
	return buf[off : off+n : off+n]
}

// LoadInterleaved4 deinterleaves four registers of quads.
// This converts Array-of-Structures (AoS) format to Structure-of-Arrays (SoA).
//
// Input memory layout:
//
//	[x0, y0, z0, w0, x1, y1, z1, w1, x2, ..., w3]
//
// Output registers:
//
//	xs = [x0, x1, x2, x3]
//	ys = [y0, y1, y2, y3]
//	...
//
// Panics if src is shorter than 16 elements.
func LoadInterleaved4(src []float32) (xs, ys, zs, ws F32x4) {
	if len(src) < 16 {
		panic("lane: src is too short")
	}
	return Transpose4x4(Load(src), Load(src[4:]), Load(src[8:]), Load(src[12:]))
}

// StoreInterleaved4 is the inverse of LoadInterleaved4, converting SoA
// registers back to AoS memory layout.
// Panics if dst is shorter than 16 elements.
func StoreInterleaved4(xs, ys, zs, ws F32x4, dst []float32) {
	if len(dst) < 16 {
		panic("lane: dst is too short")
	}
	r0, r1, r2, r3 := Transpose4x4(xs, ys, zs, ws)
	Store(r0, dst)
	Store(r1, dst[4:])
	Store(r2, dst[8:])
	Store(r3, dst[12:])
}
