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

import "math"

// Untyped angle constants. Use them with either float width.
const (
	Pi       = math.Pi
	TwoPi    = 2 * math.Pi
	HalfPi   = math.Pi / 2
	InvPi    = 1 / math.Pi
	InvTwoPi = 1 / (2 * math.Pi)

	// ToRad converts degrees to radians by multiplication.
	ToRad = math.Pi / 180
	// ToDeg converts radians to degrees by multiplication.
	ToDeg = 180 / math.Pi
)

// float32 versions of the angle constants.
const (
	Pi32       float32 = Pi
	TwoPi32    float32 = TwoPi
	HalfPi32   float32 = HalfPi
	InvPi32    float32 = InvPi
	InvTwoPi32 float32 = InvTwoPi
)
