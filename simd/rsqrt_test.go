package simd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFastRSqrt32(t *testing.T) {
	cases := []float32{1, 4, 9, 100, 0.25, 2.5, 1e6}
	for _, x := range cases {
		got := FastRSqrt32(x)
		want := float32(1 / math.Sqrt(float64(x)))
		// correct to >= 15 bits: relative error well under 1e-3
		assert.InEpsilonf(t, want, got, 1e-3, "rsqrt(%v)", x)
	}
}

func TestFastRSqrt32ZeroAndNegative(t *testing.T) {
	assert.Equal(t, float32(0), FastRSqrt32(0))
	assert.Equal(t, float32(0), FastRSqrt32(-1))
}
