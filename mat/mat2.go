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
)

// Mat2 is a 2x2 matrix of two row vectors.
type Mat2 [2]vec.Vec2

// Identity2 returns the 2x2 identity matrix.
func Identity2() Mat2 {
	return Mat2{{1, 0}, {0, 1}}
}

// FromRows2 builds a matrix from its rows.
func FromRows2(r0, r1 vec.Vec2) Mat2 {
	return Mat2{r0, r1}
}

// FromRowMajor2 reads 4 floats in row-major order.
func FromRowMajor2(src []float32) Mat2 {
	checkLen(src, 4, "src")
	return Mat2{{src[0], src[1]}, {src[2], src[3]}}
}

// FromColumnMajor2 reads 4 floats in column-major order.
func FromColumnMajor2(src []float32) Mat2 {
	checkLen(src, 4, "src")
	return Mat2{{src[0], src[2]}, {src[1], src[3]}}
}

// Row returns row i.
func (m Mat2) Row(i int) vec.Vec2 {
	debug.AssertIndex(i, 2)
	return m[i]
}

// Col returns column j.
func (m Mat2) Col(j int) vec.Vec2 {
	debug.AssertIndex(j, 2)
	return vec.Vec2{m[0][j], m[1][j]}
}

// At returns the element at row i, column j.
func (m Mat2) At(i, j int) float32 {
	debug.AssertIndex(i, 2)
	debug.AssertIndex(j, 2)
	return m[i][j]
}

// Set writes the element at row i, column j.
func (m *Mat2) Set(i, j int, v float32) {
	debug.AssertIndex(i, 2)
	debug.AssertIndex(j, 2)
	m[i][j] = v
}

// Data returns the 4 elements in row-major order, aliasing m.
func (m *Mat2) Data() *[4]float32 {
	return (*[4]float32)(unsafe.Pointer(m))
}

// MulVec returns the column vector m * v.
func (m Mat2) MulVec(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{m[0].Dot(v), m[1].Dot(v)}
}

// Mul returns the matrix product m * o.
func (m Mat2) Mul(o Mat2) Mat2 {
	c0, c1 := o.Col(0), o.Col(1)
	return Mat2{
		{m[0].Dot(c0), m[0].Dot(c1)},
		{m[1].Dot(c0), m[1].Dot(c1)},
	}
}

// Add returns the elementwise sum.
func (m Mat2) Add(o Mat2) Mat2 {
	return Mat2{m[0].Add(o[0]), m[1].Add(o[1])}
}

// Sub returns the elementwise difference.
func (m Mat2) Sub(o Mat2) Mat2 {
	return Mat2{m[0].Sub(o[0]), m[1].Sub(o[1])}
}

// Scale multiplies every element by s.
func (m Mat2) Scale(s float32) Mat2 {
	return Mat2{m[0].Mul(s), m[1].Mul(s)}
}

// Transposed returns the transpose of m.
func (m Mat2) Transposed() Mat2 {
	return Mat2{m.Col(0), m.Col(1)}
}

// Transpose2 returns the transpose of m.
func Transpose2(m Mat2) Mat2 {
	return m.Transposed()
}

// Determinant returns ad - bc.
func (m Mat2) Determinant() float32 {
	return scalar.Determinant2x2[float32](m)
}

// Inverse returns the inverse of m without checking the determinant. A
// singular m yields infinities or NaNs; use TryInverse2 when m may be
// singular.
func (m Mat2) Inverse() Mat2 {
	var out Mat2
	scalar.Inverse2x2[float32](m, &out)
	return out
}

// TryInverse2 returns the inverse of m and true, or the zero matrix and false
// when m is singular.
func TryInverse2(m Mat2) (Mat2, bool) {
	var out Mat2
	if !scalar.TryInverse2x2[float32](m, &out) {
		return Mat2{}, false
	}
	return out, true
}

// Equal reports whether every element differs by less than
// scalar.Epsilon32.
func (m Mat2) Equal(o Mat2) bool {
	return m[0].Equal(o[0]) && m[1].Equal(o[1])
}

// Store flattens m into dst in the given order.
// Panics if dst holds fewer than 4 floats or a is not a valid Alignment.
func (m Mat2) Store(dst []float32, a Alignment) {
	switch a {
	case RowMajor:
		m.StoreRowMajor(dst)
	case ColumnMajor:
		m.StoreColMajor(dst)
	default:
		panic(invalidAlignment(a))
	}
}

// StoreRowMajor writes m[i][j] to dst[i*2+j].
func (m Mat2) StoreRowMajor(dst []float32) {
	checkLen(dst, 4, "dst")
	copy(dst, m.Data()[:])
}

// StoreColMajor writes m[i][j] to dst[j*2+i].
func (m Mat2) StoreColMajor(dst []float32) {
	checkLen(dst, 4, "dst")
	for i := range 2 {
		for j := range 2 {
			dst[j*2+i] = m[i][j]
		}
	}
}

// String formats m as its rows, [r0 r1].
func (m Mat2) String() string {
	return fmt.Sprintf("[%v %v]", m[0], m[1])
}
