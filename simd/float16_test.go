package simd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat16RoundTrip(t *testing.T) {
	values := []float32{0, 1, -1, 0.5, -0.5, 3.14159, 65504, -65504, 1e-5}
	for _, v := range values {
		h := NewFloat16(v)
		got := h.Float32()
		assert.InDeltaf(t, v, got, math.Abs(float64(v))*0.01+1e-3, "round-trip %v", v)
	}
}

func TestFloat16SpecialValues(t *testing.T) {
	assert.True(t, Float16(Float16NaN).IsNaN())
	assert.False(t, Float16(Float16Inf).IsNaN())
	assert.Equal(t, float32(0), Float16Zero.Float32())

	inf := NewFloat16(float32(math.Inf(1)))
	assert.True(t, math.IsInf(float64(inf.Float32()), 1))

	negInf := NewFloat16(float32(math.Inf(-1)))
	assert.True(t, math.IsInf(float64(negInf.Float32()), -1))

	nan := NewFloat16(float32(math.NaN()))
	assert.True(t, nan.IsNaN())
}

func TestFloat16Denormals(t *testing.T) {
	tiny := float32(5.96e-8) // smallest denormal magnitude
	h := NewFloat16(tiny)
	got := h.Float32()
	assert.Greater(t, got, float32(0))
	assert.Less(t, got, float32(1e-6))
}
