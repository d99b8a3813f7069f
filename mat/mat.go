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

// Package mat provides row-major 2x2, 3x3 and 4x4 float32 matrices.
//
// A matrix is an array of row vectors, so m[i][j] is row i, column j. The
// storage order only matters when flattening: Store writes either row-major
// or column-major order depending on its Alignment argument.
//
// Mat4 rows are vec.Vec4 values and its products run on the lane kernels.
// Mat4.Mul transposes the right-hand operand with lane.Transpose4x4 and then
// takes lane dot products, which gives the same bits as the textbook triple
// loop.
//
// Every matrix implements scalar.Grid[float32] through At, and a pointer to
// one implements scalar.MutableGrid[float32], so the generic determinant and
// inverse routines of the scalar package work on them directly.
package mat

import (
	"fmt"

	"github.com/go-linmath/linmath/scalar"
)

var (
	_ scalar.MutableGrid[float32] = (*Mat2)(nil)
	_ scalar.MutableGrid[float32] = (*Mat3)(nil)
	_ scalar.MutableGrid[float32] = (*Mat4)(nil)
)

// Alignment selects the element order used when a matrix is flattened.
type Alignment int

const (
	// RowMajor writes element (i, j) to dst[i*N+j].
	RowMajor Alignment = iota
	// ColumnMajor writes element (i, j) to dst[j*N+i], the order expected by
	// OpenGL-style APIs.
	ColumnMajor
)

// String returns a human-readable name for the alignment.
func (a Alignment) String() string {
	switch a {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

func invalidAlignment(a Alignment) string {
	return fmt.Sprintf("mat: invalid alignment %d", int(a))
}

func checkLen(buf []float32, n int, what string) {
	if len(buf) < n {
		panic("mat: " + what + " is too short")
	}
}
