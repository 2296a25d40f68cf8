package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopCountBytes(t *testing.T) {
	assert.Equal(t, 0, PopCountBytes([]byte{0x00}))
	assert.Equal(t, 8, PopCountBytes([]byte{0xFF}))
	assert.Equal(t, 12, PopCountBytes([]byte{0xFF, 0x0F}))
	// exercise the 8-byte word loop and a tail byte
	long := make([]byte, 9)
	for i := range long {
		long[i] = 0x01
	}
	assert.Equal(t, 9, PopCountBytes(long))
}

func TestHammingHelper(t *testing.T) {
	a := []byte{0b11110000, 0b00001111, 0b10101010}
	b := []byte{0b11110000, 0b00001111, 0b01010101}
	assert.Equal(t, 8, XorPopCountBytes(a, b))
}

func TestJaccardHelpers(t *testing.T) {
	a := []byte{0b11110000}
	b := []byte{0b00001111}
	assert.Equal(t, 0, AndPopCountBytes(a, b))
	assert.Equal(t, 8, OrPopCountBytes(a, b))

	zero := []byte{0x00}
	assert.Equal(t, 0, OrPopCountBytes(zero, zero))
}
