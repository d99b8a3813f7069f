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

package vec

import (
	"unsafe"

	"github.com/go-linmath/linmath/lane"
)

// Flatten4 copies vs into dst as x0, y0, z0, w0, x1, ... and returns the
// number of floats written. Panics if dst holds fewer than 4*len(vs) floats.
// Pair it with lane.AlignedFloats for buffers that need 16-byte alignment.
func Flatten4(dst []float32, vs []Vec4) int {
	n := 4 * len(vs)
	if len(dst) < n {
		panic("vec: dst is too short")
	}
	copy(dst, floats4(vs))
	return n
}

// NormalizeAll4 normalizes every vector of vs in place with the same zero
// guard as Vec4.Normalize, using the lane batch kernels.
func NormalizeAll4(vs []Vec4) {
	lane.NormalizeQuads(floats4(vs), eps)
}

// DotAll4 writes a[i].Dot(b[i]) to out[i].
// Panics if a and b differ in length or out is too short.
func DotAll4(out []float32, a, b []Vec4) {
	lane.Dots4(floats4(a), floats4(b), out)
}

// DotSum4 returns the sum of a[i].Dot(b[i]) over all i, computed in one pass
// by the batch kernel. The summation order differs from adding DotAll4 results.
// Panics if a and b differ in length.
func DotSum4(a, b []Vec4) float32 {
	return lane.DotBatch(floats4(a), floats4(b))
}

// ScaleAll4 multiplies every vector of vs by s in place.
func ScaleAll4(vs []Vec4, s float32) {
	lane.ScaleBatch(floats4(vs), s)
}

// AddAll4 adds src[i] into dst[i] in place.
// Panics if dst and src differ in length.
func AddAll4(dst, src []Vec4) {
	lane.AddBatch(floats4(dst), floats4(src))
}

// floats4 views vs as a flat float slice without copying.
func floats4(vs []Vec4) []float32 {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&vs[0])), 4*len(vs))
}
