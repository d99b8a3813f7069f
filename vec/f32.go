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

import "golang.org/x/image/math/f32"

// The f32 vector types share the array layout of Vec2, Vec3 and Vec4, so
// conversion is a plain type conversion.

// F32 returns v as an f32.Vec2.
func (v Vec2) F32() f32.Vec2 { return f32.Vec2(v) }

// F32 returns v as an f32.Vec3.
func (v Vec3) F32() f32.Vec3 { return f32.Vec3(v) }

// F32 returns v as an f32.Vec4.
func (v Vec4) F32() f32.Vec4 { return f32.Vec4(v) }

// FromF32Vec2 converts an f32.Vec2.
func FromF32Vec2(v f32.Vec2) Vec2 { return Vec2(v) }

// FromF32Vec3 converts an f32.Vec3.
func FromF32Vec3(v f32.Vec3) Vec3 { return Vec3(v) }

// FromF32Vec4 converts an f32.Vec4.
func FromF32Vec4(v f32.Vec4) Vec4 { return Vec4(v) }
