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

// Package quat provides a float32 rotation quaternion backed by the lane
// kernels.
//
// Conventions:
//
//   - A Quat stores (x, y, z, w) with w the scalar part. The zero value is
//     not a rotation; use Identity.
//   - a.Mul(b) is the Hamilton product a⊗b. Rotating by the product applies b
//     first and then a.
//   - Euler angles are pitch about +X, yaw about +Y and roll about +Z. The
//     resulting rotation applies roll, then pitch, then yaw, each about the
//     fixed world axes: FromEulerAngles(p, y, r) equals
//     FromAxisAngle(Up, y).Mul(FromAxisAngle(Right, p)).Mul(FromAxisAngle(Forward, r)).
//   - Lerp is componentwise and does not keep unit length.
//
// Example:
//
//	yaw := quat.FromEulerDegrees(0, 90, 0)
//	v := yaw.RotateVector(vec.Forward3()) // (1, 0, 0)
package quat

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-linmath/linmath/lane"
	"github.com/go-linmath/linmath/scalar"
	"github.com/go-linmath/linmath/vec"
)

const eps = float32(scalar.Epsilon32)

// Quat is a quaternion (x, y, z, w) with the layout of lane.F32x4.
type Quat [4]float32

// Identity returns the identity rotation (0, 0, 0, 1).
func Identity() Quat {
	return Quat{0, 0, 0, 1}
}

// New returns the quaternion (x, y, z, w).
func New(x, y, z, w float32) Quat {
	return Quat{x, y, z, w}
}

// X returns the x component.
func (q Quat) X() float32 { return q[0] }

// Y returns the y component.
func (q Quat) Y() float32 { return q[1] }

// Z returns the z component.
func (q Quat) Z() float32 { return q[2] }

// W returns the w component.
func (q Quat) W() float32 { return q[3] }

// Vector returns the vector part (x, y, z).
func (q Quat) Vector() vec.Vec3 {
	return vec.Vec3{q[0], q[1], q[2]}
}

// Lanes returns q as a lane register.
func (q Quat) Lanes() lane.F32x4 {
	return lane.F32x4(q)
}

// Data returns a pointer to the underlying storage.
func (q *Quat) Data() *[4]float32 {
	return (*[4]float32)(q)
}

// Add returns the componentwise sum.
func (q Quat) Add(o Quat) Quat {
	return Quat(lane.Add(lane.F32x4(q), lane.F32x4(o)))
}

// Scale multiplies every component by s.
func (q Quat) Scale(s float32) Quat {
	return Quat(lane.Scale(lane.F32x4(q), s))
}

// Mul returns the Hamilton product q⊗o.
//
// Each lane of the result is the sum of four products. They are laid out as
// q.w*o plus q.x, q.y and q.z times sign-flipped shuffles of o.
func (q Quat) Mul(o Quat) Quat {
	b := lane.F32x4(o)
	tw := lane.Mul(lane.Broadcast(lane.F32x4(q), 3), b)
	tx := lane.Mul(lane.Broadcast(lane.F32x4(q), 0), lane.Of(b[3], -b[2], b[1], -b[0]))
	ty := lane.Mul(lane.Broadcast(lane.F32x4(q), 1), lane.Of(b[2], b[3], -b[0], -b[1]))
	tz := lane.Mul(lane.Broadcast(lane.F32x4(q), 2), lane.Of(-b[1], b[0], b[3], -b[2]))
	return Quat(lane.Add(lane.Add(lane.Add(tw, tx), ty), tz))
}

var conjugateSigns = lane.Of(-1, -1, -1, 1)

// Conjugated returns (-x, -y, -z, w).
func (q Quat) Conjugated() Quat {
	return Quat(lane.Mul(lane.F32x4(q), conjugateSigns))
}

// Inversed returns the multiplicative inverse, the conjugate divided by the
// squared length. The zero quaternion yields NaNs.
func (q Quat) Inversed() Quat {
	return Quat(lane.Div(lane.F32x4(q.Conjugated()), lane.Set(q.LengthSquared())))
}

// Dot returns the four-component dot product of a and b.
func Dot(a, b Quat) float32 {
	return lane.Dot(lane.F32x4(a), lane.F32x4(b))
}

// LengthSquared returns the dot product of q with itself.
func (q Quat) LengthSquared() float32 {
	return Dot(q, q)
}

// Length returns the norm of q.
func (q Quat) Length() float32 {
	return math32.Sqrt(q.LengthSquared())
}

// Normalize scales q to unit length in place. Quaternions with a length of at
// most scalar.Epsilon32 are left unchanged.
func (q *Quat) Normalize() {
	if l := q.Length(); l > eps {
		*q = Quat(lane.Div(lane.F32x4(*q), lane.Set(l)))
	}
}

// Normalized returns q scaled to unit length, or q itself when its length is
// at most scalar.Epsilon32.
func (q Quat) Normalized() Quat {
	q.Normalize()
	return q
}

// Lerp returns a*(1-t) + b*t componentwise. The result is generally not a
// unit quaternion; normalize it before using it as a rotation.
func Lerp(a, b Quat, t float32) Quat {
	return Quat(lane.MulAdd(lane.F32x4(a), lane.Set(1-t), lane.Scale(lane.F32x4(b), t)))
}

// Equal reports whether every component differs by less than
// scalar.Epsilon32. q and -q represent the same rotation but are not equal.
func (q Quat) Equal(o Quat) bool {
	return lane.AllNear(lane.F32x4(q), lane.F32x4(o), eps)
}

// RotateVector rotates v by q, computed as q⊗(v, 0)⊗q⁻¹. q does not have to
// be unit length.
func (q Quat) RotateVector(v vec.Vec3) vec.Vec3 {
	p := Quat{v[0], v[1], v[2], 0}
	return q.Mul(p).Mul(q.Inversed()).Vector()
}

// String formats q as (x, y, z, w).
func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q[0], q[1], q[2], q[3])
}
