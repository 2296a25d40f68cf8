package cpufeat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gosimd/simdkernel/simd"
)

func TestCapabilitiesAlwaysIncludesSerial(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	got := Capabilities()
	assert.NotZero(t, got&simd.TierSerial, "serial bit must always be set")
}

func TestCapabilitiesIsMemoized(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first := Capabilities()
	second := Capabilities()
	assert.Equal(t, first, second)
}
