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

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// is32 reports whether T is a 4-byte float. float32 inputs are evaluated
// with math32 so no precision is lost through a float64 round trip.
func is32[T Float]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// Lerp returns a*(1-t) + b*t. t outside [0, 1] extrapolates.
func Lerp[T Float](a, b, t T) T {
	return T(a*(1-t)) + T(b*t)
}

// LerpInt interpolates between two integers in float32 and truncates the
// result toward zero, so LerpInt(10, 20, 0.3) == 13 and LerpInt(0, 10, 0.99)
// == 9.
func LerpInt[I constraints.Integer](a, b I, t float32) I {
	return I(float32(float32(a)*(1-t)) + float32(float32(b)*t))
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// Clamp limits x to [lo, hi]. The result is unspecified if lo > hi.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Max(lo, Min(x, hi))
}

// Abs returns the absolute value of x.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	if is32[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

// Sign returns 1 if x > 0, -1 if x < 0 and 0 otherwise. The zero test is
// exact.
func Sign[T SignedNumber](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Floor returns the greatest integer not greater than x.
func Floor[T Float](x T) int {
	if is32[T]() {
		return int(math32.Floor(float32(x)))
	}
	return int(math.Floor(float64(x)))
}

// Ceil returns the least integer not less than x.
func Ceil[T Float](x T) int {
	if is32[T]() {
		return int(math32.Ceil(float32(x)))
	}
	return int(math.Ceil(float64(x)))
}

// Round returns the nearest integer to x, rounding half away from zero:
// Round(2.5) == 3 and Round(-2.5) == -3.
func Round[T Float](x T) int {
	if is32[T]() {
		return int(math32.Round(float32(x)))
	}
	return int(math.Round(float64(x)))
}

// WrapPi maps an angle in radians onto [-Pi, Pi), so WrapPi(3*Pi) == -Pi.
func WrapPi[T Float](rad T) T {
	twoPi := T(TwoPi)
	if is32[T]() {
		k := math32.Floor(float32((rad + T(Pi)) / twoPi))
		return rad - T(float32(twoPi)*k)
	}
	k := math.Floor(float64((rad + T(Pi)) / twoPi))
	return rad - T(float64(twoPi)*k)
}

// ToRadians converts degrees to radians.
func ToRadians[T Float](deg T) T {
	return deg * T(ToRad)
}

// ToDegrees converts radians to degrees.
func ToDegrees[T Float](rad T) T {
	return rad * T(ToDeg)
}

// Sin returns the sine of x radians.
func Sin[T Float](x T) T {
	if is32[T]() {
		return T(math32.Sin(float32(x)))
	}
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of x radians.
func Cos[T Float](x T) T {
	if is32[T]() {
		return T(math32.Cos(float32(x)))
	}
	return T(math.Cos(float64(x)))
}

// Tan returns the tangent of x radians.
func Tan[T Float](x T) T {
	if is32[T]() {
		return T(math32.Tan(float32(x)))
	}
	return T(math.Tan(float64(x)))
}

// SinCos returns Sin(x) and Cos(x).
func SinCos[T Float](x T) (sin, cos T) {
	if is32[T]() {
		s, c := math32.Sincos(float32(x))
		return T(s), T(c)
	}
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}
