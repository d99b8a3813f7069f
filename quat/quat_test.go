package quat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-linmath/linmath/lane"
	"github.com/go-linmath/linmath/scalar"
	"github.com/go-linmath/linmath/vec"
)

var (
	x90 = FromAxisAngle(vec.Right3(), scalar.HalfPi32)
	y90 = FromAxisAngle(vec.Up3(), scalar.HalfPi32)
	z90 = FromAxisAngle(vec.Forward3(), scalar.HalfPi32)
)

// hamilton is the textbook product formula.
func hamilton(a, b Quat) Quat {
	ax, ay, az, aw := a[0], a[1], a[2], a[3]
	bx, by, bz, bw := b[0], b[1], b[2], b[3]
	return Quat{
		aw*bx + ax*bw + ay*bz - az*by,
		aw*by - ax*bz + ay*bw + az*bx,
		aw*bz + ax*by - ay*bx + az*bw,
		aw*bw - ax*bx - ay*by - az*bz,
	}
}

func TestIdentity(t *testing.T) {
	id := Identity()
	assert.Equal(t, Quat{0, 0, 0, 1}, id)
	assert.Equal(t, float32(1), id.W())

	q := New(0.1, -0.2, 0.3, 0.9)
	assert.Equal(t, q, id.Mul(q))
	assert.Equal(t, q, q.Mul(id))

	v := vec.V3(1, 2, 3)
	assert.True(t, id.RotateVector(v).Equal(v))
}

func TestAccessors(t *testing.T) {
	q := New(1, 2, 3, 4)
	assert.Equal(t, float32(1), q.X())
	assert.Equal(t, float32(2), q.Y())
	assert.Equal(t, float32(3), q.Z())
	assert.Equal(t, float32(4), q.W())
	assert.Equal(t, vec.V3(1, 2, 3), q.Vector())
	assert.Equal(t, lane.Of(1, 2, 3, 4), q.Lanes())

	q.Data()[3] = 5
	assert.Equal(t, float32(5), q.W())
	assert.Equal(t, "(1, 2, 3, 5)", q.String())
}

func TestArithmetic(t *testing.T) {
	a := New(1, 2, 3, 4)
	b := New(5, 6, 7, 8)

	assert.Equal(t, New(6, 8, 10, 12), a.Add(b))
	assert.Equal(t, New(2, 4, 6, 8), a.Scale(2))
	assert.Equal(t, New(-1, -2, -3, 4), a.Conjugated())
	assert.Equal(t, float32(70), Dot(a, b))
	assert.Equal(t, float32(30), a.LengthSquared())
	assert.True(t, scalar.Equal(New(0, 3, 0, 4).Length(), 5))
	assert.True(t, Lerp(a, b, 0.5).Equal(New(3, 4, 5, 6)))
}

func TestMulMatchesHamiltonFormula(t *testing.T) {
	a := New(0.1, -0.7, 0.3, 0.5)
	b := New(-0.4, 0.2, 0.9, -0.1)

	assert.True(t, a.Mul(b).Equal(hamilton(a, b)))
	assert.True(t, b.Mul(a).Equal(hamilton(b, a)))
	assert.False(t, a.Mul(b).Equal(b.Mul(a)), "the product is not commutative")

	// i*j = k, j*k = i, k*i = j
	i, j, k := New(1, 0, 0, 0), New(0, 1, 0, 0), New(0, 0, 1, 0)
	assert.Equal(t, k, i.Mul(j))
	assert.Equal(t, i, j.Mul(k))
	assert.Equal(t, j, k.Mul(i))
	assert.Equal(t, New(0, 0, 0, -1), i.Mul(i))
}

func TestInversed(t *testing.T) {
	q := New(0.3, -1.2, 0.5, 2)
	assert.True(t, q.Mul(q.Inversed()).Equal(Identity()))
	assert.True(t, q.Inversed().Mul(q).Equal(Identity()))

	u := q.Normalized()
	assert.True(t, u.Inversed().Equal(u.Conjugated()), "unit inverse is the conjugate")
}

func TestNormalize(t *testing.T) {
	q := New(0, 3, 0, 4)
	q.Normalize()
	assert.True(t, q.Equal(New(0, 0.6, 0, 0.8)))
	assert.True(t, scalar.Equal(q.Length(), 1))

	var zero Quat
	zero.Normalize()
	assert.Equal(t, Quat{}, zero)
	assert.Equal(t, Quat{}, Quat{}.Normalized())
}

func TestAxisAngle(t *testing.T) {
	require.True(t, scalar.Equal(x90.Length(), 1))

	tests := []struct {
		name string
		q    Quat
		in   vec.Vec3
		want vec.Vec3
	}{
		{"X90 Y->Z", x90, vec.Up3(), vec.Forward3()},
		{"Y90 Z->X", y90, vec.Forward3(), vec.Right3()},
		{"Z90 X->Y", z90, vec.Right3(), vec.Up3()},
		{"Z90 Y->-X", z90, vec.Up3(), vec.Left3()},
		{"unnormalized axis", FromAxisAngle(vec.V3(0, 0, 5), scalar.HalfPi32), vec.Right3(), vec.Up3()},
		{"half turn", FromAxisAngle(vec.Up3(), scalar.Pi32), vec.V3(1, 2, 3), vec.V3(-1, 2, -3)},
	}
	for _, tt := range tests {
		got := tt.q.RotateVector(tt.in)
		if !got.Equal(tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}

	assert.Equal(t, FromAxisAngleNormalized(vec.Up3(), 1), FromAxisAngle(vec.V3(0, 2, 0), 1))
}

func TestCompositionOrder(t *testing.T) {
	// b is applied first, then a.
	assert.True(t, z90.Mul(x90).RotateVector(vec.Up3()).Equal(vec.Forward3()))
	assert.True(t, x90.Mul(z90).RotateVector(vec.Up3()).Equal(vec.Left3()))

	v := vec.V3(0.3, -1, 2)
	step := z90.RotateVector(x90.RotateVector(v))
	assert.True(t, z90.Mul(x90).RotateVector(v).Equal(step))
}

func TestRotateVectorPreservesLength(t *testing.T) {
	q := FromAxisAngle(vec.V3(1, 2, -0.5), 0.8)
	v := vec.V3(3, -4, 12)
	assert.InDelta(t, 1, q.RotateVector(v).Length()/v.Length(), 1e-5)

	// A scaled quaternion rotates the same way.
	assert.True(t, q.Scale(3).RotateVector(v).Sub(q.RotateVector(v)).Length() < 1e-4)
}
