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

package mat

import (
	"fmt"
	"unsafe"

	"github.com/go-linmath/linmath/internal/debug"
	"github.com/go-linmath/linmath/scalar"
	"github.com/go-linmath/linmath/vec"
	"golang.org/x/image/math/f32"
)

// Mat3 is a 3x3 matrix of three row vectors.
type Mat3 [3]vec.Vec3

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// FromRows3 builds a matrix from its rows.
func FromRows3(r0, r1, r2 vec.Vec3) Mat3 {
	return Mat3{r0, r1, r2}
}

// FromRowMajor3 reads 9 floats in row-major order.
func FromRowMajor3(src []float32) Mat3 {
	checkLen(src, 9, "src")
	var m Mat3
	copy(m.Data()[:], src)
	return m
}

// FromColumnMajor3 reads 9 floats in column-major order.
func FromColumnMajor3(src []float32) Mat3 {
	checkLen(src, 9, "src")
	var m Mat3
	for i := range 3 {
		for j := range 3 {
			m[i][j] = src[j*3+i]
		}
	}
	return m
}

// FromF32Mat3 converts an f32.Mat3, which is also row-major.
func FromF32Mat3(a f32.Mat3) Mat3 {
	return FromRowMajor3(a[:])
}

// F32 returns m as an f32.Mat3.
func (m Mat3) F32() f32.Mat3 {
	return f32.Mat3(*m.Data())
}

// Row returns row i.
func (m Mat3) Row(i int) vec.Vec3 {
	debug.AssertIndex(i, 3)
	return m[i]
}

// Col returns column j.
func (m Mat3) Col(j int) vec.Vec3 {
	debug.AssertIndex(j, 3)
	return vec.Vec3{m[0][j], m[1][j], m[2][j]}
}

// At returns the element at row i, column j.
func (m Mat3) At(i, j int) float32 {
	debug.AssertIndex(i, 3)
	debug.AssertIndex(j, 3)
	return m[i][j]
}

// Set writes the element at row i, column j.
func (m *Mat3) Set(i, j int, v float32) {
	debug.AssertIndex(i, 3)
	debug.AssertIndex(j, 3)
	m[i][j] = v
}

// Data returns the 9 elements in row-major order, aliasing m.
func (m *Mat3) Data() *[9]float32 {
	return (*[9]float32)(unsafe.Pointer(m))
}

// MulVec returns the column vector m * v.
func (m Mat3) MulVec(v vec.Vec3) vec.Vec3 {
	return vec.Vec3{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// Mul returns the matrix product m * o.
func (m Mat3) Mul(o Mat3) Mat3 {
	t := o.Transposed()
	var r Mat3
	for i := range 3 {
		r[i] = vec.Vec3{m[i].Dot(t[0]), m[i].Dot(t[1]), m[i].Dot(t[2])}
	}
	return r
}

// Add returns the elementwise sum.
func (m Mat3) Add(o Mat3) Mat3 {
	return Mat3{m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2])}
}

// Sub returns the elementwise difference.
func (m Mat3) Sub(o Mat3) Mat3 {
	return Mat3{m[0].Sub(o[0]), m[1].Sub(o[1]), m[2].Sub(o[2])}
}

// Scale multiplies every element by s.
func (m Mat3) Scale(s float32) Mat3 {
	return Mat3{m[0].Mul(s), m[1].Mul(s), m[2].Mul(s)}
}

// Transposed returns the transpose of m.
func (m Mat3) Transposed() Mat3 {
	return Mat3{m.Col(0), m.Col(1), m.Col(2)}
}

// Transpose3 returns the transpose of m.
func Transpose3(m Mat3) Mat3 {
	return m.Transposed()
}

// Determinant returns the determinant by the rule of Sarrus.
func (m Mat3) Determinant() float32 {
	return scalar.Determinant3x3[float32](m)
}

// Inverse returns the inverse of m without checking the determinant. A
// singular m yields infinities or NaNs; use TryInverse3 when m may be
// singular.
func (m Mat3) Inverse() Mat3 {
	var out Mat3
	scalar.Inverse3x3[float32](m, &out)
	return out
}

// TryInverse3 returns the inverse of m and true, or the zero matrix and false
// when m is singular.
func TryInverse3(m Mat3) (Mat3, bool) {
	var out Mat3
	if !scalar.TryInverse3x3[float32](m, &out) {
		return Mat3{}, false
	}
	return out, true
}

// Equal reports whether every element differs by less than
// scalar.Epsilon32.
func (m Mat3) Equal(o Mat3) bool {
	return m[0].Equal(o[0]) && m[1].Equal(o[1]) && m[2].Equal(o[2])
}

// Store flattens m into dst in the given order.
// Panics if dst holds fewer than 9 floats or a is not a valid Alignment.
func (m Mat3) Store(dst []float32, a Alignment) {
	switch a {
	case RowMajor:
		m.StoreRowMajor(dst)
	case ColumnMajor:
		m.StoreColMajor(dst)
	default:
		panic(invalidAlignment(a))
	}
}

// StoreRowMajor writes m[i][j] to dst[i*3+j].
func (m Mat3) StoreRowMajor(dst []float32) {
	checkLen(dst, 9, "dst")
	copy(dst, m.Data()[:])
}

// StoreColMajor writes m[i][j] to dst[j*3+i].
func (m Mat3) StoreColMajor(dst []float32) {
	checkLen(dst, 9, "dst")
	for i := range 3 {
		for j := range 3 {
			dst[j*3+i] = m[i][j]
		}
	}
}

// String formats m as its rows, [r0 r1 r2].
func (m Mat3) String() string {
	return fmt.Sprintf("[%v %v %v]", m[0], m[1], m[2])
}
