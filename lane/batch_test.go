package lane

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon32 = 1e-6

func TestDotBatch(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []float32{9, 8, 7, 6, 5, 4, 3, 2, 1}

	assert.InDelta(t, 165, DotBatch(a, b), epsilon32)
	assert.Equal(t, float32(0), DotBatch(nil, nil))
	assert.Panics(t, func() { DotBatch(a, b[:3]) })
}

func TestNormBatch(t *testing.T) {
	assert.InDelta(t, 5, NormBatch([]float32{3, 0, 4, 0}), epsilon32)
	assert.InDelta(t, 2, NormBatch([]float32{1, 1, 1, 1}), epsilon32)
	assert.Equal(t, float32(0), NormBatch(nil))
}

func TestScaleAndAddBatch(t *testing.T) {
	v := []float32{1, 2, 3, 4, 5}
	ScaleBatch(v, 2)
	assert.Equal(t, []float32{2, 4, 6, 8, 10}, v)

	AddBatch(v, []float32{1, 1, 1, 1, 1})
	assert.Equal(t, []float32{3, 5, 7, 9, 11}, v)
	assert.Panics(t, func() { AddBatch(v, []float32{1}) })
}

func TestDots4(t *testing.T) {
	a := []float32{1, 2, 3, 4, 0.1, 0.2, 0.3, 0.4}
	b := []float32{5, 6, 7, 8, 1.7, -2.3, 3.9, 0.01}
	out := make([]float32, 2)

	Dots4(a, b, out)
	assert.Equal(t, Dot(Load(a), Load(b)), out[0])
	assert.Equal(t, Dot(Load(a[4:]), Load(b[4:])), out[1])

	assert.Panics(t, func() { Dots4(a[:6], b[:6], out) })
	assert.Panics(t, func() { Dots4(a, b, out[:1]) })
}

func TestNormalizeQuads(t *testing.T) {
	v := []float32{
		3, 0, 4, 0,
		0, 0, 0, 0,
		1, 1, 1, 1,
		1e-7, 0, 0, 0,
	}
	NormalizeQuads(v, epsilon32)

	assert.InDeltaSlice(t, []float32{0.6, 0, 0.8, 0}, v[:4], epsilon32)
	assert.Equal(t, []float32{0, 0, 0, 0}, v[4:8])
	assert.InDeltaSlice(t, []float32{0.5, 0.5, 0.5, 0.5}, v[8:12], epsilon32)
	assert.Equal(t, []float32{1e-7, 0, 0, 0}, v[12:], "lengths up to eps are left unchanged")
	assert.Panics(t, func() { NormalizeQuads(v[:5], epsilon32) })
}
