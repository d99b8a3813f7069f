package quat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-linmath/linmath/scalar"
	"github.com/go-linmath/linmath/vec"
)

func TestFromEulerSingleAxis(t *testing.T) {
	assert.True(t, FromEulerAngles(scalar.HalfPi32, 0, 0).Equal(x90))
	assert.True(t, FromEulerAngles(0, scalar.HalfPi32, 0).Equal(y90))
	assert.True(t, FromEulerAngles(0, 0, scalar.HalfPi32).Equal(z90))
	assert.True(t, FromEulerAngles(0, 0, 0).Equal(Identity()))
}

func TestFromEulerYawMapsForwardToRight(t *testing.T) {
	yaw := FromEulerDegrees(0, 90, 0)
	assert.True(t, yaw.RotateVector(vec.Forward3()).Equal(vec.Right3()))
}

func TestFromEulerComposition(t *testing.T) {
	tests := []struct {
		pitch, yaw, roll float32
	}{
		{0.3, -1.1, 2.0},
		{-0.7, 0.4, -0.2},
		{1.2, 2.9, 0.05},
		{scalar.HalfPi32, scalar.HalfPi32, 0},
	}
	for _, tt := range tests {
		q := FromEulerAngles(tt.pitch, tt.yaw, tt.roll)
		want := FromAxisAngle(vec.Up3(), tt.yaw).
			Mul(FromAxisAngle(vec.Right3(), tt.pitch)).
			Mul(FromAxisAngle(vec.Forward3(), tt.roll))
		if !q.Equal(want) {
			t.Errorf("FromEulerAngles(%v, %v, %v): got %v, want %v", tt.pitch, tt.yaw, tt.roll, q, want)
		}
		assert.True(t, scalar.Equal(q.Length(), 1))
	}
}

func TestFromEulerRollAppliedFirst(t *testing.T) {
	// Roll 90 takes +X to +Y, then pitch 90 takes +Y to +Z.
	q := FromEulerDegrees(90, 0, 90)
	assert.True(t, q.RotateVector(vec.Right3()).Equal(vec.Forward3()))
}

func TestFromEulerVariants(t *testing.T) {
	rad := FromEulerAngles(0.1, 0.2, 0.3)
	assert.Equal(t, rad, FromEulerVec(vec.V3(0.1, 0.2, 0.3)))

	deg := FromEulerDegrees(30, 45, 60)
	assert.Equal(t, deg, FromEulerDegreesVec(vec.V3(30, 45, 60)))
	assert.True(t, deg.Equal(FromEulerAngles(scalar.ToRadians[float32](30), scalar.ToRadians[float32](45), scalar.ToRadians[float32](60))))
}
