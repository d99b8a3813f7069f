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
	"github.com/go-linmath/linmath/lane"
	"github.com/go-linmath/linmath/scalar"
	"github.com/go-linmath/linmath/vec"
	"golang.org/x/image/math/f32"
)

// Mat4 is a 4x4 matrix of four row vectors.
//
// Each row has the layout of a lane.F32x4. Go does not guarantee 16-byte
// alignment for values; use lane.AlignedFloats for flattened buffers that
// need it.
type Mat4 [4]vec.Vec4

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// FromRows4 builds a matrix from its rows.
func FromRows4(r0, r1, r2, r3 vec.Vec4) Mat4 {
	return Mat4{r0, r1, r2, r3}
}

// FromRowMajor4 reads 16 floats in row-major order.
func FromRowMajor4(src []float32) Mat4 {
	checkLen(src, 16, "src")
	return Mat4{
		vec.Vec4(lane.Load(src)),
		vec.Vec4(lane.Load(src[4:])),
		vec.Vec4(lane.Load(src[8:])),
		vec.Vec4(lane.Load(src[12:])),
	}
}

// FromColumnMajor4 reads 16 floats in column-major order.
func FromColumnMajor4(src []float32) Mat4 {
	checkLen(src, 16, "src")
	r0, r1, r2, r3 := lane.LoadInterleaved4(src)
	return Mat4{vec.Vec4(r0), vec.Vec4(r1), vec.Vec4(r2), vec.Vec4(r3)}
}

// FromF32Mat4 converts an f32.Mat4, which is also row-major.
func FromF32Mat4(a f32.Mat4) Mat4 {
	return FromRowMajor4(a[:])
}

// F32 returns m as an f32.Mat4.
func (m Mat4) F32() f32.Mat4 {
	return f32.Mat4(*m.Data())
}

// Row returns row i.
func (m Mat4) Row(i int) vec.Vec4 {
	debug.AssertIndex(i, 4)
	return m[i]
}

// Col returns column j.
func (m Mat4) Col(j int) vec.Vec4 {
	debug.AssertIndex(j, 4)
	return vec.Vec4{m[0][j], m[1][j], m[2][j], m[3][j]}
}

// At returns the element at row i, column j.
func (m Mat4) At(i, j int) float32 {
	debug.AssertIndex(i, 4)
	debug.AssertIndex(j, 4)
	return m[i][j]
}

// Set writes the element at row i, column j.
func (m *Mat4) Set(i, j int, v float32) {
	debug.AssertIndex(i, 4)
	debug.AssertIndex(j, 4)
	m[i][j] = v
}

// Data returns the 16 elements in row-major order, aliasing m.
func (m *Mat4) Data() *[16]float32 {
	return (*[16]float32)(unsafe.Pointer(m))
}

// MulVec returns the column vector m * v: element i is the dot product of
// row i and v.
func (m Mat4) MulVec(v vec.Vec4) vec.Vec4 {
	l := lane.F32x4(v)
	return vec.Vec4{
		lane.Dot(lane.F32x4(m[0]), l),
		lane.Dot(lane.F32x4(m[1]), l),
		lane.Dot(lane.F32x4(m[2]), l),
		lane.Dot(lane.F32x4(m[3]), l),
	}
}

// TransformAll writes m.MulVec(src[i]) to dst[i].
// Panics if dst is shorter than src.
func (m Mat4) TransformAll(dst, src []vec.Vec4) {
	if len(dst) < len(src) {
		panic("mat: dst is too short")
	}
	for i, v := range src {
		dst[i] = m.MulVec(v)
	}
}

// Mul returns the matrix product m * o.
//
// The columns of o are gathered with one 4x4 transpose so every element of
// the result is a single lane dot product of a row of m and a row of the
// transposed o.
func (m Mat4) Mul(o Mat4) Mat4 {
	c0, c1, c2, c3 := lane.Transpose4x4(
		lane.F32x4(o[0]), lane.F32x4(o[1]), lane.F32x4(o[2]), lane.F32x4(o[3]))

	var r Mat4
	for i := range 4 {
		row := lane.F32x4(m[i])
		r[i] = vec.Vec4{
			lane.Dot(row, c0),
			lane.Dot(row, c1),
			lane.Dot(row, c2),
			lane.Dot(row, c3),
		}
	}
	return r
}

// Add returns the elementwise sum.
func (m Mat4) Add(o Mat4) Mat4 {
	return Mat4{m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2]), m[3].Add(o[3])}
}

// Sub returns the elementwise difference.
func (m Mat4) Sub(o Mat4) Mat4 {
	return Mat4{m[0].Sub(o[0]), m[1].Sub(o[1]), m[2].Sub(o[2]), m[3].Sub(o[3])}
}

// Scale multiplies every element by s.
func (m Mat4) Scale(s float32) Mat4 {
	return Mat4{m[0].Mul(s), m[1].Mul(s), m[2].Mul(s), m[3].Mul(s)}
}

// Transposed returns the transpose of m.
func (m Mat4) Transposed() Mat4 {
	c0, c1, c2, c3 := lane.Transpose4x4(
		lane.F32x4(m[0]), lane.F32x4(m[1]), lane.F32x4(m[2]), lane.F32x4(m[3]))
	return Mat4{vec.Vec4(c0), vec.Vec4(c1), vec.Vec4(c2), vec.Vec4(c3)}
}

// Transpose4 returns the transpose of m.
func Transpose4(m Mat4) Mat4 {
	return m.Transposed()
}

// Determinant returns the determinant by cofactor expansion along row 0.
func (m Mat4) Determinant() float32 {
	return scalar.Determinant4x4[float32](m)
}

// Norm returns the Frobenius norm, the square root of the sum of the squared
// elements.
func (m Mat4) Norm() float32 {
	return lane.NormBatch(m.Data()[:])
}

// Inverse returns the inverse of m without checking the determinant. A
// singular m yields infinities or NaNs; use TryInverse4 when m may be
// singular.
func (m Mat4) Inverse() Mat4 {
	var out Mat4
	scalar.Inverse4x4[float32](m, &out)
	return out
}

// TryInverse4 returns the inverse of m and true, or the zero matrix and false
// when m is singular.
func TryInverse4(m Mat4) (Mat4, bool) {
	var out Mat4
	if !scalar.TryInverse4x4[float32](m, &out) {
		return Mat4{}, false
	}
	return out, true
}

// Equal reports whether every element differs by less than
// scalar.Epsilon32.
func (m Mat4) Equal(o Mat4) bool {
	return m[0].Equal(o[0]) && m[1].Equal(o[1]) && m[2].Equal(o[2]) && m[3].Equal(o[3])
}

// Store flattens m into dst in the given order.
// Panics if dst holds fewer than 16 floats or a is not a valid Alignment.
func (m Mat4) Store(dst []float32, a Alignment) {
	switch a {
	case RowMajor:
		m.StoreRowMajor(dst)
	case ColumnMajor:
		m.StoreColMajor(dst)
	default:
		panic(invalidAlignment(a))
	}
}

// StoreRowMajor writes m[i][j] to dst[i*4+j].
func (m Mat4) StoreRowMajor(dst []float32) {
	checkLen(dst, 16, "dst")
	for i := range 4 {
		lane.Store(lane.F32x4(m[i]), dst[i*4:])
	}
}

// StoreColMajor writes m[i][j] to dst[j*4+i].
func (m Mat4) StoreColMajor(dst []float32) {
	checkLen(dst, 16, "dst")
	lane.StoreInterleaved4(lane.F32x4(m[0]), lane.F32x4(m[1]), lane.F32x4(m[2]), lane.F32x4(m[3]), dst)
}

// String formats m as its rows, [r0 r1 r2 r3].
func (m Mat4) String() string {
	return fmt.Sprintf("[%v %v %v %v]", m[0], m[1], m[2], m[3])
}
