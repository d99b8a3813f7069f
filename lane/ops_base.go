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

import "github.com/chewxy/math32"

// This file provides the pure Go implementations of the lane operations.
// When the AVX kernels are compiled in (ops_amd64_simd.go) and selected at
// init, the exported functions route through them instead. Both paths round
// every intermediate product to float32, so results are bit-identical.

// Load creates a register from the first 4 elements of src.
// Panics if src is shorter than 4 elements.
func Load(src []float32) F32x4 {
	if len(src) < 4 {
		panic("lane: src is too short")
	}
	return F32x4{src[0], src[1], src[2], src[3]}
}

// Store writes all 4 lanes of v into dst.
// Panics if dst is shorter than 4 elements.
func Store(v F32x4, dst []float32) {
	if len(dst) < 4 {
		panic("lane: dst is too short")
	}
	dst[0], dst[1], dst[2], dst[3] = v[0], v[1], v[2], v[3]
}

// Set creates a register with all lanes set to the same value.
func Set(value float32) F32x4 {
	return F32x4{value, value, value, value}
}

// Zero returns a register with all lanes set to zero.
func Zero() F32x4 {
	return F32x4{}
}

// Of creates a register from 4 lane values.
func Of(x, y, z, w float32) F32x4 {
	return F32x4{x, y, z, w}
}

// Add performs element-wise addition.
func Add(a, b F32x4) F32x4 {
	if useSIMD {
		return addAVX(a, b)
	}
	return addBase(a, b)
}

// Sub performs element-wise subtraction.
func Sub(a, b F32x4) F32x4 {
	if useSIMD {
		return subAVX(a, b)
	}
	return subBase(a, b)
}

// Mul performs element-wise multiplication.
func Mul(a, b F32x4) F32x4 {
	if useSIMD {
		return mulAVX(a, b)
	}
	return mulBase(a, b)
}

// Div performs element-wise division. Division by zero follows IEEE 754.
func Div(a, b F32x4) F32x4 {
	if useSIMD {
		return divAVX(a, b)
	}
	return divBase(a, b)
}

// Scale multiplies every lane by s.
func Scale(a F32x4, s float32) F32x4 {
	return Mul(a, Set(s))
}

// Neg negates all lanes.
func Neg(a F32x4) F32x4 {
	return F32x4{-a[0], -a[1], -a[2], -a[3]}
}

// Abs computes the absolute value of each lane.
func Abs(a F32x4) F32x4 {
	return F32x4{math32.Abs(a[0]), math32.Abs(a[1]), math32.Abs(a[2]), math32.Abs(a[3])}
}

// Sqrt computes the square root of each lane.
func Sqrt(a F32x4) F32x4 {
	if useSIMD {
		return sqrtAVX(a)
	}
	return sqrtBase(a)
}

// Min returns the element-wise minimum. For NaN inputs the result is
// unspecified.
func Min(a, b F32x4) F32x4 {
	if useSIMD {
		return minAVX(a, b)
	}
	return minBase(a, b)
}

// Max returns the element-wise maximum. For NaN inputs the result is
// unspecified.
func Max(a, b F32x4) F32x4 {
	if useSIMD {
		return maxAVX(a, b)
	}
	return maxBase(a, b)
}

// MulAdd computes a*b + c. The product is rounded before the addition; this
// is not a fused multiply-add.
func MulAdd(a, b, c F32x4) F32x4 {
	return Add(Mul(a, b), c)
}

// ReduceSum returns ((v[0] + v[1]) + v[2]) + v[3].
func ReduceSum(v F32x4) float32 {
	return ((v[0] + v[1]) + v[2]) + v[3]
}

// Dot returns the dot product of all 4 lanes.
func Dot(a, b F32x4) float32 {
	return ReduceSum(Mul(a, b))
}

// Dot3 returns the dot product of the first 3 lanes. Lane 3 is ignored.
func Dot3(a, b F32x4) float32 {
	p := Mul(a, b)
	return (p[0] + p[1]) + p[2]
}

// LessThan returns a mask with bit i set when a[i] < b[i].
func LessThan(a, b F32x4) Mask {
	var m Mask
	for i := range 4 {
		if a[i] < b[i] {
			m |= 1 << i
		}
	}
	return m
}

// NearMask returns a mask with bit i set when |a[i]-b[i]| < eps.
func NearMask(a, b F32x4, eps float32) Mask {
	return LessThan(Abs(Sub(a, b)), Set(eps))
}

// AllNear reports whether every lane of a is within eps of b.
func AllNear(a, b F32x4, eps float32) bool {
	return NearMask(a, b, eps).AllTrue()
}

// Near3 reports whether the first 3 lanes of a are within eps of b.
func Near3(a, b F32x4, eps float32) bool {
	return NearMask(a, b, eps).Covers(MaskXYZ)
}

// ============================================================================
// Pure Go kernels
// ============================================================================

func addBase(a, b F32x4) F32x4 {
	return F32x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func subBase(a, b F32x4) F32x4 {
	return F32x4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func mulBase(a, b F32x4) F32x4 {
	return F32x4{
		float32(a[0] * b[0]),
		float32(a[1] * b[1]),
		float32(a[2] * b[2]),
		float32(a[3] * b[3]),
	}
}

func divBase(a, b F32x4) F32x4 {
	return F32x4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

func sqrtBase(a F32x4) F32x4 {
	return F32x4{math32.Sqrt(a[0]), math32.Sqrt(a[1]), math32.Sqrt(a[2]), math32.Sqrt(a[3])}
}

func minBase(a, b F32x4) F32x4 {
	var r F32x4
	for i := range 4 {
		if a[i] < b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

func maxBase(a, b F32x4) F32x4 {
	var r F32x4
	for i := range 4 {
		if a[i] > b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}
