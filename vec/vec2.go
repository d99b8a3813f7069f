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
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-linmath/linmath/internal/debug"
	"github.com/go-linmath/linmath/scalar"
)

// Vec2 is a 2 component vector (x, y).
type Vec2 [2]float32

// V2 returns the vector (x, y).
func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// X returns the x component.
func (v Vec2) X() float32 { return v[0] }

// Y returns the y component.
func (v Vec2) Y() float32 { return v[1] }

// SetX sets the x component.
func (v *Vec2) SetX(x float32) { v[0] = x }

// SetY sets the y component.
func (v *Vec2) SetY(y float32) { v[1] = y }

// At returns component i. Out of range indices panic; with the
// linmath_debug tag they are reported before the runtime check.
func (v Vec2) At(i int) float32 {
	debug.AssertIndex(i, 2)
	return v[i]
}

// Set writes component i.
func (v *Vec2) Set(i int, x float32) {
	debug.AssertIndex(i, 2)
	v[i] = x
}

// Data returns a pointer to the underlying storage.
func (v *Vec2) Data() *[2]float32 {
	return (*[2]float32)(v)
}

// Add returns the componentwise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v[0] + o[0], v[1] + o[1]}
}

// Sub returns the componentwise difference.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v[0] - o[0], v[1] - o[1]}
}

// Mul scales the vector by s.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

// Div divides every component by s. s == 0 follows IEEE 754.
func (v Vec2) Div(s float32) Vec2 {
	return Vec2{v[0] / s, v[1] / s}
}

// Neg returns the vector with every component negated.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v[0], -v[1]}
}

// Dot returns the dot product, summed in component order.
func (v Vec2) Dot(o Vec2) float32 {
	return float32(v[0]*o[0]) + float32(v[1]*o[1])
}

// LengthSquared returns the dot product of v with itself.
func (v Vec2) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the Euclidean length.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normalize scales v to unit length in place. Vectors with a length of at
// most scalar.Epsilon32 are left unchanged.
func (v *Vec2) Normalize() {
	if l := v.Length(); l > eps {
		*v = v.Div(l)
	}
}

// Normalized returns v scaled to unit length, or v itself when its length is
// at most scalar.Epsilon32.
func (v Vec2) Normalized() Vec2 {
	v.Normalize()
	return v
}

// Lerp returns v*(1-t) + o*t. t outside [0, 1] extrapolates.
func (v Vec2) Lerp(o Vec2, t float32) Vec2 {
	return v.Mul(1 - t).Add(o.Mul(t))
}

// Equal reports whether every component differs by less than
// scalar.Epsilon32.
func (v Vec2) Equal(o Vec2) bool {
	return scalar.IsZero(v[0]-o[0]) && scalar.IsZero(v[1]-o[1])
}

// NotEqual is the negation of Equal.
func (v Vec2) NotEqual(o Vec2) bool {
	return !v.Equal(o)
}

// Store copies x, y into dst. Panics if dst is too short.
func (v Vec2) Store(dst []float32) {
	if len(dst) < 2 {
		panic("vec: dst is too short")
	}
	dst[0], dst[1] = v[0], v[1]
}

// String formats v as (x, y).
func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v[0], v[1])
}
