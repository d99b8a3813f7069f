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
	"github.com/chewxy/math32"
	"github.com/viterin/vek/vek32"
)

// Batch kernels operate on flat float32 slices through vek, which carries its
// own AVX2/NEON assembly with a pure Go fallback. Summation order inside vek
// differs from ReduceSum, so batch results may differ from the per-register
// path in the last bits.

// DotBatch returns the dot product of two equal-length slices.
// Panics if the lengths differ.
func DotBatch(a, b []float32) float32 {
	if len(a) != len(b) {
		panic("lane: slice lengths differ")
	}
	if len(a) == 0 {
		return 0
	}
	return vek32.Dot(a, b)
}

// NormBatch returns the Euclidean norm of v.
func NormBatch(v []float32) float32 {
	if len(v) == 0 {
		return 0
	}
	return vek32.Norm(v)
}

// ScaleBatch multiplies every element of v by s in place.
func ScaleBatch(v []float32, s float32) {
	if len(v) == 0 {
		return
	}
	vek32.MulNumber_Inplace(v, s)
}

// AddBatch adds src into dst element-wise.
// Panics if the lengths differ.
func AddBatch(dst, src []float32) {
	if len(dst) != len(src) {
		panic("lane: slice lengths differ")
	}
	if len(dst) == 0 {
		return
	}
	vek32.Add_Inplace(dst, src)
}

// Dots4 computes one dot product per quad: out[i] is the dot product of
// a[4i:4i+4] and b[4i:4i+4]. The per-quad sum uses ReduceSum order, so each
// result matches Dot on the same lanes.
// Panics if the lengths differ, are not a multiple of 4, or out is too short.
func Dots4(a, b, out []float32) {
	if len(a) != len(b) {
		panic("lane: slice lengths differ")
	}
	if !IsAligned(len(a)) {
		panic("lane: length is not a multiple of 4")
	}
	n := len(a) / 4
	if len(out) < n {
		panic("lane: dst is too short")
	}
	if n == 0 {
		return
	}
	prod := vek32.Mul(a, b)
	for i := range n {
		out[i] = ReduceSum(F32x4(prod[4*i : 4*i+4]))
	}
}

// NormalizeQuads scales every quad of v to unit length in place. Quads whose
// length is not greater than eps are left unchanged. Each quad gets the same
// bits as dividing it by the square root of Dot with itself.
// Panics if len(v) is not a multiple of 4.
func NormalizeQuads(v []float32, eps float32) {
	if !IsAligned(len(v)) {
		panic("lane: length is not a multiple of 4")
	}
	n := len(v) / 4
	if n == 0 {
		return
	}
	lengths := make([]float32, n)
	Dots4(v, v, lengths)
	for i, l2 := range lengths {
		l := math32.Sqrt(l2)
		if l <= eps {
			continue
		}
		q := v[4*i : 4*i+4]
		Store(Div(Load(q), Set(l)), q)
	}
}
