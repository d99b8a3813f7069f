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

package quat

import (
	"github.com/go-linmath/linmath/scalar"
	"github.com/go-linmath/linmath/vec"
)

// FromAxisAngle returns the rotation of rad radians about axis, following the
// right-hand rule. The axis is normalized first; a zero axis gives a
// quaternion with a zero vector part.
func FromAxisAngle(axis vec.Vec3, rad float32) Quat {
	return FromAxisAngleNormalized(axis.Normalized(), rad)
}

// FromAxisAngleNormalized is FromAxisAngle for an axis the caller has already
// normalized.
func FromAxisAngleNormalized(axis vec.Vec3, rad float32) Quat {
	s, c := scalar.SinCos(rad * 0.5)
	return Quat{axis[0] * s, axis[1] * s, axis[2] * s, c}
}

// FromEulerAngles returns the rotation for pitch (about X), yaw (about Y) and
// roll (about Z) in radians, equal to yaw⊗pitch⊗roll.
func FromEulerAngles(pitch, yaw, roll float32) Quat {
	sp, cp := scalar.SinCos(pitch * 0.5)
	sy, cy := scalar.SinCos(yaw * 0.5)
	sr, cr := scalar.SinCos(roll * 0.5)

	// Expanded from (0, sy, 0, cy)⊗(sp, 0, 0, cp)⊗(0, 0, sr, cr).
	return Quat{
		cy*sp*cr + sy*cp*sr,
		sy*cp*cr - cy*sp*sr,
		cy*cp*sr - sy*sp*cr,
		cy*cp*cr + sy*sp*sr,
	}
}

// FromEulerVec is FromEulerAngles(e.X(), e.Y(), e.Z()).
func FromEulerVec(e vec.Vec3) Quat {
	return FromEulerAngles(e[0], e[1], e[2])
}

// FromEulerDegrees is FromEulerAngles with the angles in degrees.
func FromEulerDegrees(pitch, yaw, roll float32) Quat {
	return FromEulerAngles(scalar.ToRadians(pitch), scalar.ToRadians(yaw), scalar.ToRadians(roll))
}

// FromEulerDegreesVec is FromEulerDegrees(e.X(), e.Y(), e.Z()).
func FromEulerDegreesVec(e vec.Vec3) Quat {
	return FromEulerDegrees(e[0], e[1], e[2])
}
