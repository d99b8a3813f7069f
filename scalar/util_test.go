package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEpsilon(t *testing.T) {
	assert.Equal(t, float32(1e-6), Epsilon[float32]())
	assert.Equal(t, 1e-9, Epsilon[float64]())

	type meters float32
	assert.Equal(t, meters(1e-6), Epsilon[meters]())
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"f32 tiny", IsZero[float32](0.0000001), true},
		{"f32 tiny negative", IsZero[float32](-0.00000005), true},
		{"f32 small", IsZero[float32](0.001), false},
		{"f32 epsilon", IsZero[float32](Epsilon32), false},
		{"f64 tiny", IsZero(0.0000000000001), true},
		{"f64 small", IsZero(0.001), false},
		{"f64 between epsilons", IsZero(1e-7), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	assert.True(t, Equal[float32](0.1+0.2, 0.3))
	assert.False(t, Equal[float32](1, 1.001))
}

func TestLerp(t *testing.T) {
	assert.True(t, Equal(Lerp[float32](10, 20, 0.5), 15))
	assert.True(t, Equal(Lerp(1.0, 3.0, 0.25), 1.5))
	assert.True(t, Equal(Lerp[float32](0, 10, 1.5), 15), "extrapolates")

	// Integer interpolation truncates toward zero.
	assert.Equal(t, 13, LerpInt(10, 20, 0.3))
	assert.Equal(t, int32(9), LerpInt[int32](0, 10, 0.99))
	assert.Equal(t, -9, LerpInt(0, -10, 0.99))
}

func TestAbsMinMaxClamp(t *testing.T) {
	assert.Equal(t, float32(3.5), Abs[float32](-3.5))
	assert.Equal(t, float32(2), Abs[float32](2))
	assert.Equal(t, 1.25, Abs(-1.25))
	assert.Equal(t, 7, Abs(-7))
	assert.Equal(t, 9, Abs(9))

	assert.Equal(t, 4, Min(4, 7))
	assert.Equal(t, 7, Max(4, 7))
	assert.Equal(t, float32(1.5), Min[float32](4.5, 1.5))
	assert.Equal(t, 10.0, Max(4.5, 10.0))
	assert.Equal(t, "a", Min("b", "a"))

	assert.Equal(t, 5, Clamp(5, 1, 10))
	assert.Equal(t, 0, Clamp(-1, 0, 4))
	assert.Equal(t, 10, Clamp(11, 0, 10))
	assert.Equal(t, float32(0.5), Clamp[float32](0.5, 0, 1))
	assert.Equal(t, float32(0), Clamp[float32](-0.5, 0, 1))
	assert.Equal(t, float32(1), Clamp[float32](1.5, 0, 1))
}

func TestSqrt(t *testing.T) {
	assert.True(t, Equal(Sqrt[float32](4), 2))
	assert.True(t, Equal(Sqrt(9.0), 3))
	assert.True(t, math.IsNaN(Sqrt(-1.0)))
}

func TestSign(t *testing.T) {
	assert.Equal(t, float32(1), Sign[float32](5))
	assert.Equal(t, float32(-1), Sign[float32](-3))
	assert.Equal(t, float32(0), Sign[float32](0))
	assert.Equal(t, float32(1), Sign[float32](1e-30), "zero test is exact")

	assert.Equal(t, 1.0, Sign(5.0))
	assert.Equal(t, -1.0, Sign(-3.0))
	assert.Equal(t, 0.0, Sign(0.0))

	assert.Equal(t, 1, Sign(10))
	assert.Equal(t, -1, Sign(-7))
	assert.Equal(t, 0, Sign(0))
}

func TestFloorCeilRound(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"Floor(2.9f)", Floor[float32](2.9), 2},
		{"Floor(-2.1f)", Floor[float32](-2.1), -3},
		{"Floor(3.8)", Floor(3.8), 3},
		{"Floor(-3.2)", Floor(-3.2), -4},
		{"Ceil(2.1f)", Ceil[float32](2.1), 3},
		{"Ceil(-2.9f)", Ceil[float32](-2.9), -2},
		{"Ceil(3.2)", Ceil(3.2), 4},
		{"Ceil(-3.8)", Ceil(-3.8), -3},
		{"Round(2.4f)", Round[float32](2.4), 2},
		{"Round(2.6f)", Round[float32](2.6), 3},
		{"Round(-2.4f)", Round[float32](-2.4), -2},
		{"Round(-2.6f)", Round[float32](-2.6), -3},
		{"Round(2.5f)", Round[float32](2.5), 3},
		{"Round(-2.5f)", Round[float32](-2.5), -3},
		{"Round(2.5)", Round(2.5), 3},
		{"Round(-2.5)", Round(-2.5), -3},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestAngles(t *testing.T) {
	assert.True(t, Equal(ToRadians[float32](180), Pi32))
	assert.True(t, Equal(ToRadians(90.0), HalfPi))
	assert.True(t, Equal(ToDegrees(Pi32), 180))
	assert.True(t, Equal(ToDegrees(float64(HalfPi)), 90))
}

func TestWrapPi(t *testing.T) {
	assert.True(t, Equal(WrapPi(Pi32*3), -Pi32))
	assert.True(t, Equal(WrapPi(-Pi32*3), -Pi32))
	assert.True(t, Equal(WrapPi(Pi*3.0), -Pi))
	assert.True(t, Equal(WrapPi(-Pi*3.0), -Pi))

	assert.True(t, Equal(WrapPi[float32](0.5), 0.5))
	assert.True(t, Equal(WrapPi(TwoPi+1.0), 1.0))
	assert.True(t, Equal(WrapPi(-TwoPi-1.0), -1.0))

	for _, x := range []float64{-100, -7.5, -Pi, 0, 3, Pi - 1e-6, 42} {
		w := WrapPi(x)
		assert.GreaterOrEqual(t, w, -Pi, "x=%v", x)
		assert.Less(t, w, float64(Pi), "x=%v", x)
	}
}

func TestTrigonometry(t *testing.T) {
	assert.True(t, IsZero(Sin[float32](0)))
	assert.True(t, IsZero(Cos(HalfPi32)))
	assert.True(t, IsZero(Tan[float32](0)))

	assert.True(t, IsZero(Sin(0.0)))
	assert.True(t, IsZero(Cos(float64(HalfPi))))
	assert.True(t, IsZero(Tan(0.0)))

	s, c := SinCos(Pi32 / 6)
	assert.True(t, Equal(s, 0.5))
	assert.True(t, Equal(c, Sqrt[float32](3)/2))

	// float64 results keep full precision.
	assert.Equal(t, math.Sin(1), Sin(1.0))
}
