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

// This file provides shuffle and permutation operations on F32x4.
// They are the building blocks of the 4x4 transpose used by matrix
// multiplication.

// Broadcast copies lane i to all lanes.
// Panics if i is outside [0, 4).
func Broadcast(v F32x4, i int) F32x4 {
	return Set(v[i])
}

// InterleaveLower interleaves the lower halves of two registers.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
func InterleaveLower(a, b F32x4) F32x4 {
	return F32x4{a[0], b[0], a[1], b[1]}
}

// InterleaveUpper interleaves the upper halves of two registers.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
func InterleaveUpper(a, b F32x4) F32x4 {
	return F32x4{a[2], b[2], a[3], b[3]}
}

// ConcatLowerLower concatenates the lower halves of two registers.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,a1,b0,b1]
func ConcatLowerLower(a, b F32x4) F32x4 {
	return F32x4{a[0], a[1], b[0], b[1]}
}

// ConcatUpperUpper concatenates the upper halves of two registers.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,a3,b2,b3]
func ConcatUpperUpper(a, b F32x4) F32x4 {
	return F32x4{a[2], a[3], b[2], b[3]}
}

// Transpose4x4 returns the columns of the 4x4 block whose rows are r0..r3.
//
// It is the unpack/move sequence of the classic SSE transpose:
//
//	t0 = InterleaveLower(r0, r1)   [r00 r10 r01 r11]
//	t1 = InterleaveLower(r2, r3)   [r20 r30 r21 r31]
//	t2 = InterleaveUpper(r0, r1)   [r02 r12 r03 r13]
//	t3 = InterleaveUpper(r2, r3)   [r22 r32 r23 r33]
//	c0 = ConcatLowerLower(t0, t1)  [r00 r10 r20 r30]
//	...
func Transpose4x4(r0, r1, r2, r3 F32x4) (c0, c1, c2, c3 F32x4) {
	t0 := InterleaveLower(r0, r1)
	t1 := InterleaveLower(r2, r3)
	t2 := InterleaveUpper(r0, r1)
	t3 := InterleaveUpper(r2, r3)
	c0 = ConcatLowerLower(t0, t1)
	c1 = ConcatUpperUpper(t0, t1)
	c2 = ConcatLowerLower(t2, t3)
	c3 = ConcatUpperUpper(t2, t3)
	return c0, c1, c2, c3
}
