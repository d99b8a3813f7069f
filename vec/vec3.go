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
	"github.com/go-linmath/linmath/lane"
)

// Vec3 is a 3 component vector (x, y, z).
type Vec3 [3]float32

// V3 returns the vector (x, y, z).
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// V3FromV2 extends v with the given z.
func V3FromV2(v Vec2, z float32) Vec3 {
	return Vec3{v[0], v[1], z}
}

// X returns the x component.
func (v Vec3) X() float32 { return v[0] }

// Y returns the y component.
func (v Vec3) Y() float32 { return v[1] }

// Z returns the z component.
func (v Vec3) Z() float32 { return v[2] }

// SetX sets the x component.
func (v *Vec3) SetX(x float32) { v[0] = x }

// SetY sets the y component.
func (v *Vec3) SetY(y float32) { v[1] = y }

// SetZ sets the z component.
func (v *Vec3) SetZ(z float32) { v[2] = z }

// XY returns the first two components.
func (v Vec3) XY() Vec2 {
	return Vec2{v[0], v[1]}
}

// At returns component i.
func (v Vec3) At(i int) float32 {
	debug.AssertIndex(i, 3)
	return v[i]
}

// Set writes component i.
func (v *Vec3) Set(i int, x float32) {
	debug.AssertIndex(i, 3)
	v[i] = x
}

// Data returns a pointer to the underlying storage.
func (v *Vec3) Data() *[3]float32 {
	return (*[3]float32)(v)
}

// Add returns the componentwise sum.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns the componentwise difference.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// AddVec2 adds o to the x and y components; z is unchanged.
func (v Vec3) AddVec2(o Vec2) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2]}
}

// SubVec2 subtracts o from the x and y components; z is unchanged.
func (v Vec3) SubVec2(o Vec2) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2]}
}

// Mul scales the vector by s.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Div divides every component by s. s == 0 follows IEEE 754.
func (v Vec3) Div(s float32) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

// Neg returns the vector with every component negated.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Dot returns the dot product, summed in component order.
func (v Vec3) Dot(o Vec3) float32 {
	return lane.Dot3(v.lanes(), o.lanes())
}

// Cross returns the right-handed cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		float32(v[1]*o[2]) - float32(v[2]*o[1]),
		float32(v[2]*o[0]) - float32(v[0]*o[2]),
		float32(v[0]*o[1]) - float32(v[1]*o[0]),
	}
}

// LengthSquared returns the dot product of v with itself.
func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the Euclidean length.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normalize scales v to unit length in place. Vectors with a length of at
// most scalar.Epsilon32 are left unchanged.
func (v *Vec3) Normalize() {
	if l := v.Length(); l > eps {
		*v = v.Div(l)
	}
}

// Normalized returns v scaled to unit length, or v itself when its length is
// at most scalar.Epsilon32.
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

// Lerp returns v*(1-t) + o*t. t outside [0, 1] extrapolates.
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	return v.Mul(1 - t).Add(o.Mul(t))
}

// Equal reports whether every component differs by less than
// scalar.Epsilon32.
func (v Vec3) Equal(o Vec3) bool {
	return lane.Near3(v.lanes(), o.lanes(), eps)
}

// NotEqual is the negation of Equal.
func (v Vec3) NotEqual(o Vec3) bool {
	return !v.Equal(o)
}

// Store copies x, y, z into dst. Panics if dst is too short.
func (v Vec3) Store(dst []float32) {
	if len(dst) < 3 {
		panic("vec: dst is too short")
	}
	dst[0], dst[1], dst[2] = v[0], v[1], v[2]
}

// String formats v as (x, y, z).
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}

// lanes widens v to a register with a zero w lane.
func (v Vec3) lanes() lane.F32x4 {
	return lane.Of(v[0], v[1], v[2], 0)
}
