package kernel

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosimd/simdkernel/simd"
)

func runF64(t *testing.T, k simd.Kernel, a, b []float64) float64 {
	t.Helper()
	require.Equal(t, len(a), len(b))
	var out float64
	k(unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), uintptr(len(a)), &out)
	return out
}

func TestL2SqConcreteScenario(t *testing.T) {
	k, ok := Make(simd.MetricL2Sq, simd.DTypeF64, simd.TierSerial)
	require.True(t, ok)
	got := runF64(t, k, []float64{1, 2, 3}, []float64{4, 5, 6})
	assert.Equal(t, 27.0, got)
}

func TestCosConcreteScenarios(t *testing.T) {
	k, ok := Make(simd.MetricCos, simd.DTypeF64, simd.TierSerial)
	require.True(t, ok)

	assert.InDelta(t, 1.0, runF64(t, k, []float64{1, 0}, []float64{0, 1}), 1e-3)
	assert.InDelta(t, 0.0, runF64(t, k, []float64{1, 0}, []float64{1, 0}), 1e-3)
	assert.Equal(t, 1.0, runF64(t, k, []float64{0, 0}, []float64{1, 1}))
}

func TestHammingConcreteScenario(t *testing.T) {
	k, ok := Make(simd.MetricHamming, simd.DTypeB8, simd.TierSerial)
	require.True(t, ok)

	a := []byte{0b11110000, 0b00001111, 0b10101010}
	b := []byte{0b11110000, 0b00001111, 0b01010101}
	var out float64
	k(unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), uintptr(len(a)), &out)
	assert.Equal(t, 8.0, out)
}

func TestJaccardConcreteScenarios(t *testing.T) {
	k, ok := Make(simd.MetricJaccard, simd.DTypeB8, simd.TierSerial)
	require.True(t, ok)

	a := []byte{0b11110000}
	b := []byte{0b00001111}
	var out float64
	k(unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), 1, &out)
	assert.Equal(t, 1.0, out)

	zero := []byte{0x00}
	k(unsafe.Pointer(&zero[0]), unsafe.Pointer(&zero[0]), 1, &out)
	assert.Equal(t, 0.0, out)
}

func TestKLConcreteScenarios(t *testing.T) {
	k, ok := Make(simd.MetricKL, simd.DTypeF64, simd.TierSerial)
	require.True(t, ok)

	assert.InDelta(t, 0.0, runF64(t, k, []float64{0.5, 0.5}, []float64{0.5, 0.5}), 1e-12)
	assert.InDelta(t, math.Log(2), runF64(t, k, []float64{1.0, 0.0}, []float64{0.5, 0.5}), 1e-12)
}

func TestJSSelfIsZero(t *testing.T) {
	k, ok := Make(simd.MetricJS, simd.DTypeF64, simd.TierSerial)
	require.True(t, ok)
	assert.InDelta(t, 0.0, runF64(t, k, []float64{0.3, 0.7}, []float64{0.3, 0.7}), 1e-12)
}

func TestVDotConcreteScenario(t *testing.T) {
	k, ok := Make(simd.MetricVDot, simd.DTypeF64C, simd.TierSerial)
	require.True(t, ok)

	a := []float64{1, 2, 3, 4} // (1+2i, 3+4i)
	b := []float64{5, 6, 7, 8} // (5+6i, 7+8i)
	var out [2]float64
	k(unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), 2, &out[0])
	re, im := simd.ReadComplex(&out[0])
	assert.Equal(t, 70.0, re)
	assert.Equal(t, 8.0, im)
}

func TestVDotConjugateSymmetry(t *testing.T) {
	k, ok := Make(simd.MetricVDot, simd.DTypeF64C, simd.TierSerial)
	require.True(t, ok)

	a := []float64{1, 2, 3, 4}
	b := []float64{5, 6, 7, 8}

	var ab, ba [2]float64
	k(unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), 2, &ab[0])
	k(unsafe.Pointer(&b[0]), unsafe.Pointer(&a[0]), 2, &ba[0])

	abRe, abIm := simd.ReadComplex(&ab[0])
	baRe, baIm := simd.ReadComplex(&ba[0])
	// vdot(a,b) = conj(vdot(b,a))
	assert.InDelta(t, abRe, baRe, 1e-9)
	assert.InDelta(t, abIm, -baIm, 1e-9)
}

func TestDotScaledLinearity(t *testing.T) {
	k, ok := Make(simd.MetricDot, simd.DTypeF64, simd.TierSerial)
	require.True(t, ok)

	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}
	base := runF64(t, k, a, b)

	scaled := make([]float64, len(a))
	for i, v := range a {
		scaled[i] = 2 * v
	}
	got := runF64(t, k, scaled, b)
	assert.InDelta(t, 2*base, got, 1e-9)
}

func TestL2SqSymmetry(t *testing.T) {
	k, ok := Make(simd.MetricL2Sq, simd.DTypeF64, simd.TierSerial)
	require.True(t, ok)

	a := []float64{1, 2, 3, 4, 5}
	b := []float64{5, 4, 3, 2, 1}
	assert.Equal(t, runF64(t, k, a, b), runF64(t, k, b, a))
}

func TestDotI8IsGenuineNotAliasedToCosI8(t *testing.T) {
	dotK, ok := Make(simd.MetricDot, simd.DTypeI8, simd.TierSerial)
	require.True(t, ok)
	cosK, ok := Make(simd.MetricCos, simd.DTypeI8, simd.TierSerial)
	require.True(t, ok)

	a := []int8{1, 2, 3}
	b := []int8{4, 5, 6}
	var dotOut, cosOut float64
	dotK(unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), 3, &dotOut)
	cosK(unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), 3, &cosOut)

	assert.Equal(t, 32.0, dotOut)
	assert.NotEqual(t, dotOut, cosOut)
}

func TestUnsupportedCellAbsent(t *testing.T) {
	_, ok := Make(simd.MetricJaccard, simd.DTypeF32, simd.TierSerial)
	assert.False(t, ok)
	assert.False(t, Supported(simd.MetricJaccard, simd.DTypeF32))
}

func TestTierAccumWidthsDifferAcrossTiers(t *testing.T) {
	assert.NotEqual(t, accumWidth(simd.TierSerial), accumWidth(simd.TierHaswell))

	serial, _ := Make(simd.MetricL2Sq, simd.DTypeF32, simd.TierSerial)
	haswell, _ := Make(simd.MetricL2Sq, simd.DTypeF32, simd.TierHaswell)

	n := 37
	a := make([]float32, n)
	b := make([]float32, n)
	for i := range a {
		a[i] = float32(i) * 0.1
		b[i] = float32(n-i) * 0.37
	}

	var outSerial, outHaswell float64
	serial(unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), uintptr(n), &outSerial)
	haswell(unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), uintptr(n), &outHaswell)

	// Both are correct to tolerance but the reduction tree shape differs,
	// so bitwise equality across tiers is not expected or required.
	assert.InDelta(t, outSerial, outHaswell, float64(16)*float64(n)*1e-6)
}
