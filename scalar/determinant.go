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

// Products are rounded to T before they are summed so the result does not
// depend on whether the compiler fuses multiply-adds.

// Determinant2x2 returns ad - bc.
func Determinant2x2[T Float, G Grid[T]](m G) T {
	return T(m.At(0, 0)*m.At(1, 1)) - T(m.At(0, 1)*m.At(1, 0))
}

// Determinant3x3 returns the determinant by the rule of Sarrus.
func Determinant3x3[T Float, G Grid[T]](m G) T {
	a, b, c := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	d, e, f := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	g, h, i := m.At(2, 0), m.At(2, 1), m.At(2, 2)

	pos := T(T(a*e)*i) + T(T(b*f)*g) + T(T(c*d)*h)
	neg := T(T(c*e)*g) + T(T(a*f)*h) + T(T(b*d)*i)
	return pos - neg
}

// Determinant4x4 returns the determinant by cofactor expansion along row 0.
func Determinant4x4[T Float, G Grid[T]](m G) T {
	var det T
	for j := range 4 {
		term := T(m.At(0, j) * Determinant3x3[T](minor[T, G]{g: m, row: 0, col: j}))
		if j%2 == 0 {
			det += term
		} else {
			det -= term
		}
	}
	return det
}

// TryInverse2x2 writes the inverse of m to out and reports true, or reports
// false if m is singular. out must not be read after a false result.
func TryInverse2x2[T Float, G Grid[T], O MutableGrid[T]](m G, out O) bool {
	det := Determinant2x2[T](m)
	if IsZero(det) {
		return false
	}
	inverse2x2(m, det, out)
	return true
}

// TryInverse3x3 writes the inverse of m to out and reports true, or reports
// false if m is singular. out must not be read after a false result.
func TryInverse3x3[T Float, G Grid[T], O MutableGrid[T]](m G, out O) bool {
	det := Determinant3x3[T](m)
	if IsZero(det) {
		return false
	}
	inverse3x3(m, det, out)
	return true
}

// TryInverse4x4 writes the inverse of m to out and reports true, or reports
// false if m is singular. out must not be read after a false result.
func TryInverse4x4[T Float, G Grid[T], O MutableGrid[T]](m G, out O) bool {
	det := Determinant4x4[T](m)
	if IsZero(det) {
		return false
	}
	inverse4x4(m, det, out)
	return true
}

// Inverse2x2 writes the inverse of m to out without checking the
// determinant. A singular m yields infinities or NaNs.
func Inverse2x2[T Float, G Grid[T], O MutableGrid[T]](m G, out O) {
	inverse2x2(m, Determinant2x2[T](m), out)
}

// Inverse3x3 writes the inverse of m to out without checking the
// determinant. A singular m yields infinities or NaNs.
func Inverse3x3[T Float, G Grid[T], O MutableGrid[T]](m G, out O) {
	inverse3x3(m, Determinant3x3[T](m), out)
}

// Inverse4x4 writes the inverse of m to out without checking the
// determinant. A singular m yields infinities or NaNs.
func Inverse4x4[T Float, G Grid[T], O MutableGrid[T]](m G, out O) {
	inverse4x4(m, Determinant4x4[T](m), out)
}

// The adjugate is built in a local array first so out may alias m.

func inverse2x2[T Float, G Grid[T], O MutableGrid[T]](m G, det T, out O) {
	inv := 1 / det
	r := [2][2]T{
		{m.At(1, 1) * inv, -m.At(0, 1) * inv},
		{-m.At(1, 0) * inv, m.At(0, 0) * inv},
	}
	for i := range 2 {
		for j := range 2 {
			out.Set(i, j, r[i][j])
		}
	}
}

func inverse3x3[T Float, G Grid[T], O MutableGrid[T]](m G, det T, out O) {
	inv := 1 / det
	var r [3][3]T
	for i := range 3 {
		for j := range 3 {
			// inverse[i][j] = cofactor[j][i] / det
			c := Determinant2x2[T](minor[T, G]{g: m, row: j, col: i})
			if (i+j)%2 != 0 {
				c = -c
			}
			r[i][j] = c * inv
		}
	}
	for i := range 3 {
		for j := range 3 {
			out.Set(i, j, r[i][j])
		}
	}
}

func inverse4x4[T Float, G Grid[T], O MutableGrid[T]](m G, det T, out O) {
	inv := 1 / det
	var r [4][4]T
	for i := range 4 {
		for j := range 4 {
			c := Determinant3x3[T](minor[T, G]{g: m, row: j, col: i})
			if (i+j)%2 != 0 {
				c = -c
			}
			r[i][j] = c * inv
		}
	}
	for i := range 4 {
		for j := range 4 {
			out.Set(i, j, r[i][j])
		}
	}
}
