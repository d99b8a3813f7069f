package scalar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterminant(t *testing.T) {
	m2 := Array2[float32]{
		{4, 7},
		{2, 6},
	}
	assert.True(t, Equal(Determinant2x2[float32](m2), 10))

	m3 := Array3[float32]{
		{3, 0, 2},
		{2, 0, -2},
		{0, 1, 1},
	}
	assert.True(t, Equal(Determinant3x3[float32](m3), 10))

	m4 := Array4[float32]{
		{1, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 3, 0},
		{0, 0, 0, 4},
	}
	assert.True(t, Equal(Determinant4x4[float32](m4), 24))

	seq := Array4[float64]{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	assert.True(t, IsZero(Determinant4x4[float64](seq)))

	full := Array4[float64]{
		{5, 7, 9, 10},
		{2, 3, 3, 8},
		{8, 10, 2, 3},
		{3, 3, 4, 8},
	}
	assert.InDelta(t, -361, Determinant4x4[float64](full), 1e-9)
}

func TestTryInverse(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-5)

	m2 := Array2[float32]{
		{4, 7},
		{2, 6},
	}
	var inv2 Array2[float32]
	require.True(t, TryInverse2x2[float32](m2, &inv2))
	want2 := Array2[float32]{
		{0.6, -0.7},
		{-0.2, 0.4},
	}
	if diff := cmp.Diff(want2, inv2, approx); diff != "" {
		t.Errorf("TryInverse2x2 mismatch (-want +got):\n%s", diff)
	}

	m3 := Array3[float32]{
		{3, 0, 2},
		{2, 0, -2},
		{0, 1, 1},
	}
	var inv3 Array3[float32]
	require.True(t, TryInverse3x3[float32](m3, &inv3))
	want3 := Array3[float32]{
		{0.2, 0.2, 0},
		{-0.2, 0.3, 1},
		{0.2, -0.3, 0},
	}
	if diff := cmp.Diff(want3, inv3, approx); diff != "" {
		t.Errorf("TryInverse3x3 mismatch (-want +got):\n%s", diff)
	}

	m4 := Array4[float32]{
		{1, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 3, 0},
		{0, 0, 0, 4},
	}
	var inv4 Array4[float32]
	require.True(t, TryInverse4x4[float32](m4, &inv4))
	want4 := Array4[float32]{
		{1, 0, 0, 0},
		{0, 0.5, 0, 0},
		{0, 0, 1.0 / 3, 0},
		{0, 0, 0, 0.25},
	}
	if diff := cmp.Diff(want4, inv4, approx); diff != "" {
		t.Errorf("TryInverse4x4 mismatch (-want +got):\n%s", diff)
	}
}

func TestInverseProductIsIdentity(t *testing.T) {
	m := Array4[float32]{
		{5, 7, 9, 10},
		{2, 3, 3, 8},
		{8, 10, 2, 3},
		{3, 3, 4, 8},
	}
	var inv Array4[float32]
	require.True(t, TryInverse4x4[float32](m, &inv))

	var prod Array4[float32]
	for i := range 4 {
		for j := range 4 {
			for k := range 4 {
				prod[i][j] += m[i][k] * inv[k][j]
			}
		}
	}
	ident := Array4[float32]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
	if diff := cmp.Diff(ident, prod, cmpopts.EquateApprox(0, 1e-5)); diff != "" {
		t.Errorf("M * inverse(M) mismatch (-want +got):\n%s", diff)
	}
}

func TestTryInverseSingular(t *testing.T) {
	var out4 Array4[float32]
	seq := Array4[float32]{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	assert.False(t, TryInverse4x4[float32](seq, &out4))

	var out2 Array2[float64]
	assert.False(t, TryInverse2x2[float64](Array2[float64]{{1, 2}, {2, 4}}, &out2))

	var out3 Array3[float32]
	assert.False(t, TryInverse3x3[float32](Array3[float32]{}, &out3))
}

func TestInverseInPlace(t *testing.T) {
	m := Array2[float64]{
		{4, 7},
		{2, 6},
	}
	Inverse2x2[float64](m, &m)
	assert.InDelta(t, 0.6, m[0][0], 1e-12)
	assert.InDelta(t, -0.7, m[0][1], 1e-12)
	assert.InDelta(t, -0.2, m[1][0], 1e-12)
	assert.InDelta(t, 0.4, m[1][1], 1e-12)
}
