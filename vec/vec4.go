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

// Vec4 is a 4 component vector (x, y, z, w), also read as an RGBA color.
//
// Vec4 has the memory layout of lane.F32x4, and all of its arithmetic runs on
// the lane kernels. Results are identical whichever kernel is dispatched.
type Vec4 [4]float32

// V4 returns the vector (x, y, z, w).
func V4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 extends v with the given w.
func V4FromV3(v Vec3, w float32) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// V4FromV2 extends v with the given z and w.
func V4FromV2(v Vec2, z, w float32) Vec4 {
	return Vec4{v[0], v[1], z, w}
}

// RGBA returns the color (r, g, b, a).
func RGBA(r, g, b, a float32) Vec4 {
	return Vec4{r, g, b, a}
}

// FromLanes converts a lane register to a Vec4.
func FromLanes(l lane.F32x4) Vec4 {
	return Vec4(l)
}

// Lanes returns v as a lane register.
func (v Vec4) Lanes() lane.F32x4 {
	return lane.F32x4(v)
}

// X returns the x component.
func (v Vec4) X() float32 { return v[0] }

// Y returns the y component.
func (v Vec4) Y() float32 { return v[1] }

// Z returns the z component.
func (v Vec4) Z() float32 { return v[2] }

// W returns the w component.
func (v Vec4) W() float32 { return v[3] }

// R returns the red channel, stored as x.
func (v Vec4) R() float32 { return v[0] }

// G returns the green channel, stored as y.
func (v Vec4) G() float32 { return v[1] }

// B returns the blue channel, stored as z.
func (v Vec4) B() float32 { return v[2] }

// A returns the alpha channel, stored as w.
func (v Vec4) A() float32 { return v[3] }

// SetX sets the x component.
func (v *Vec4) SetX(x float32) { v[0] = x }

// SetY sets the y component.
func (v *Vec4) SetY(y float32) { v[1] = y }

// SetZ sets the z component.
func (v *Vec4) SetZ(z float32) { v[2] = z }

// SetW sets the w component.
func (v *Vec4) SetW(w float32) { v[3] = w }

// XY returns the first two components.
func (v Vec4) XY() Vec2 {
	return Vec2{v[0], v[1]}
}

// XYZ returns the first three components.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// At returns component i.
func (v Vec4) At(i int) float32 {
	debug.AssertIndex(i, 4)
	return v[i]
}

// Set writes component i.
func (v *Vec4) Set(i int, x float32) {
	debug.AssertIndex(i, 4)
	v[i] = x
}

// Data returns a pointer to the underlying storage.
func (v *Vec4) Data() *[4]float32 {
	return (*[4]float32)(v)
}

// Add returns the componentwise sum.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4(lane.Add(lane.F32x4(v), lane.F32x4(o)))
}

// Sub returns the componentwise difference.
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4(lane.Sub(lane.F32x4(v), lane.F32x4(o)))
}

// Mul scales the vector by s.
func (v Vec4) Mul(s float32) Vec4 {
	return Vec4(lane.Scale(lane.F32x4(v), s))
}

// MulVec multiplies componentwise.
func (v Vec4) MulVec(o Vec4) Vec4 {
	return Vec4(lane.Mul(lane.F32x4(v), lane.F32x4(o)))
}

// Div divides every component by s. s == 0 follows IEEE 754.
func (v Vec4) Div(s float32) Vec4 {
	return Vec4(lane.Div(lane.F32x4(v), lane.Set(s)))
}

// Neg returns the vector with every component negated.
func (v Vec4) Neg() Vec4 {
	return Vec4(lane.Neg(lane.F32x4(v)))
}

// Min returns the componentwise minimum.
func (v Vec4) Min(o Vec4) Vec4 {
	return Vec4(lane.Min(lane.F32x4(v), lane.F32x4(o)))
}

// Max returns the componentwise maximum.
func (v Vec4) Max(o Vec4) Vec4 {
	return Vec4(lane.Max(lane.F32x4(v), lane.F32x4(o)))
}

// Dot returns the dot product, summed in component order.
func (v Vec4) Dot(o Vec4) float32 {
	return lane.Dot(lane.F32x4(v), lane.F32x4(o))
}

// LengthSquared returns the dot product of v with itself.
func (v Vec4) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the Euclidean length.
func (v Vec4) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normalize scales v to unit length in place. Vectors with a length of at
// most scalar.Epsilon32 are left unchanged.
func (v *Vec4) Normalize() {
	if l := v.Length(); l > eps {
		*v = v.Div(l)
	}
}

// Normalized returns v scaled to unit length, or v itself when its length is
// at most scalar.Epsilon32.
func (v Vec4) Normalized() Vec4 {
	v.Normalize()
	return v
}

// Lerp returns v*(1-t) + o*t. t outside [0, 1] extrapolates.
func (v Vec4) Lerp(o Vec4, t float32) Vec4 {
	return Vec4(lane.MulAdd(lane.F32x4(v), lane.Set(1-t), lane.Scale(lane.F32x4(o), t)))
}

// Equal reports whether every component differs by less than
// scalar.Epsilon32. It is the four-lane form of scalar.IsZero on the
// difference.
func (v Vec4) Equal(o Vec4) bool {
	return lane.AllNear(lane.F32x4(v), lane.F32x4(o), eps)
}

// NotEqual is the negation of Equal.
func (v Vec4) NotEqual(o Vec4) bool {
	return !v.Equal(o)
}

// Store copies x, y, z, w into dst. Panics if dst is too short.
func (v Vec4) Store(dst []float32) {
	if len(dst) < 4 {
		panic("vec: dst is too short")
	}
	lane.Store(lane.F32x4(v), dst)
}

// String formats v as (x, y, z, w).
func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v[0], v[1], v[2], v[3])
}
