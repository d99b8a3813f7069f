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

// Package vec provides the 2, 3 and 4 component float32 vectors of linmath.
//
// The vectors are plain arrays, so v[i] indexes them and the named accessors
// X, Y, Z and W read the same storage. Vec4 converts to lane.F32x4 at no cost
// and runs its arithmetic on the lane kernels.
//
// Coordinates follow a right-handed, Y-up convention with +Z forward.
//
// Example:
//
//	a := vec.V3(1, 0, 0)
//	b := vec.Up3()
//	n := a.Cross(b)            // (0, 0, 1)
//	d := a.Add(b).Normalized() // (0.7071, 0.7071, 0)
package vec

import (
	"github.com/go-linmath/linmath/scalar"
)

// eps is the equality tolerance and the length at or below which Normalize
// leaves a vector unchanged.
const eps = float32(scalar.Epsilon32)

// Zero2 returns (0, 0).
func Zero2() Vec2 { return Vec2{} }

// One2 returns (1, 1).
func One2() Vec2 { return Vec2{1, 1} }

// Up2 returns (0, 1).
func Up2() Vec2 { return Vec2{0, 1} }

// Down2 returns (0, -1).
func Down2() Vec2 { return Vec2{0, -1} }

// Left2 returns (-1, 0).
func Left2() Vec2 { return Vec2{-1, 0} }

// Right2 returns (1, 0).
func Right2() Vec2 { return Vec2{1, 0} }

// Zero3 returns (0, 0, 0).
func Zero3() Vec3 { return Vec3{} }

// One3 returns (1, 1, 1).
func One3() Vec3 { return Vec3{1, 1, 1} }

// Up3 returns (0, 1, 0).
func Up3() Vec3 { return Vec3{0, 1, 0} }

// Down3 returns (0, -1, 0).
func Down3() Vec3 { return Vec3{0, -1, 0} }

// Left3 returns (-1, 0, 0).
func Left3() Vec3 { return Vec3{-1, 0, 0} }

// Right3 returns (1, 0, 0).
func Right3() Vec3 { return Vec3{1, 0, 0} }

// Forward3 returns (0, 0, 1).
func Forward3() Vec3 { return Vec3{0, 0, 1} }

// Back3 returns (0, 0, -1).
func Back3() Vec3 { return Vec3{0, 0, -1} }

// Zero4 returns (0, 0, 0, 0).
func Zero4() Vec4 { return Vec4{} }

// One4 returns (1, 1, 1, 1).
func One4() Vec4 { return Vec4{1, 1, 1, 1} }
