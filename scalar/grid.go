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

package scalar

// Grid is a square matrix readable by row and column. Any type with an At
// method works, including the matrix types of the mat package and the Array
// adapters below.
type Grid[T Float] interface {
	At(row, col int) T
}

// MutableGrid is a Grid that can also be written.
type MutableGrid[T Float] interface {
	Grid[T]
	Set(row, col int, v T)
}

// Array2 adapts a [2][2] array to Grid. Use a pointer for MutableGrid.
type Array2[T Float] [2][2]T

// At returns the element at row, col.
func (a Array2[T]) At(row, col int) T { return a[row][col] }

// Set writes the element at row, col.
func (a *Array2[T]) Set(row, col int, v T) { a[row][col] = v }

// Array3 adapts a [3][3] array to Grid. Use a pointer for MutableGrid.
type Array3[T Float] [3][3]T

// At returns the element at row, col.
func (a Array3[T]) At(row, col int) T { return a[row][col] }

// Set writes the element at row, col.
func (a *Array3[T]) Set(row, col int, v T) { a[row][col] = v }

// Array4 adapts a [4][4] array to Grid. Use a pointer for MutableGrid.
type Array4[T Float] [4][4]T

// At returns the element at row, col.
func (a Array4[T]) At(row, col int) T { return a[row][col] }

// Set writes the element at row, col.
func (a *Array4[T]) Set(row, col int, v T) { a[row][col] = v }

// minor is the view of g with one row and one column removed.
type minor[T Float, G Grid[T]] struct {
	g        G
	row, col int
}

func (m minor[T, G]) At(row, col int) T {
	if row >= m.row {
		row++
	}
	if col >= m.col {
		col++
	}
	return m.g.At(row, col)
}
