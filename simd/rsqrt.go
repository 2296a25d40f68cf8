package simd

import "math"

// kadlecMagic is the 32-bit magic seed (attributed to Jan Kadlec's 2010
// refinement of the Quake III fast inverse square root) used to produce an
// initial bit-hack approximation of 1/sqrt(x) before Newton refinement.
const kadlecMagic uint32 = 0x5F1FFFF9

// FastRSqrt32 computes an approximation of 1/sqrt(x) using the Kadlec
// magic-constant bit manipulation, Kadlec's tuned refinement step, and
// one Newton-Raphson step. The result is correct to at least 15 bits, which
// suffices for the cos kernel: the subsequent multiplication by a dot
// product cannot amplify error beyond the already-limited precision of
// half/single accumulation (§4.1).
//
// x must be finite and non-negative; callers (the cos finalization step)
// only ever invoke this on a sum of squares.
func FastRSqrt32(x float32) float32 {
	if x <= 0 {
		return 0
	}
	i := math.Float32bits(x)
	i = kadlecMagic - (i >> 1)
	y := math.Float32frombits(i)
	// Kadlec's refinement, with coefficients tuned for this seed.
	y = 0.703952253 * y * (2.38924456 - x*y*y)
	// One Newton-Raphson iteration: y = y * (1.5 - 0.5*x*y*y)
	xhalf := 0.5 * x
	y = y * (1.5 - xhalf*y*y)
	return y
}
