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

// Package scalar provides the epsilon policy, interpolation, rounding and
// trigonometry helpers shared by the vector, matrix and quaternion packages,
// plus generic determinant and inverse routines for 2x2, 3x3 and 4x4 grids.
//
// Every equality test in linmath goes through IsZero or Equal. Two values are
// equal when their difference is smaller than the epsilon for their width:
// Epsilon32 for float32 and Epsilon64 for float64.
package scalar

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is any floating-point type.
type Float interface {
	constraints.Float
}

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// SignedNumber is any signed integer or floating-point type.
type SignedNumber interface {
	constraints.Signed | constraints.Float
}

const (
	// Epsilon32 is the equality tolerance for float32 values.
	Epsilon32 = 1e-6

	// Epsilon64 is the equality tolerance for float64 values.
	Epsilon64 = 1e-9
)

// Epsilon returns the equality tolerance for T: Epsilon32 for 4-byte floats
// and Epsilon64 otherwise.
func Epsilon[T Float]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(Epsilon32)
	}
	return T(Epsilon64)
}

// IsZero reports whether |x| < Epsilon[T]().
func IsZero[T Float](x T) bool {
	return Abs(x) < Epsilon[T]()
}

// Equal reports whether a and b are equal within Epsilon[T](), computed as
// IsZero(a - b).
func Equal[T Float](a, b T) bool {
	return IsZero(a - b)
}
