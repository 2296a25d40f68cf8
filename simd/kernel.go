package simd

import "unsafe"

// Kernel is the opaque, type-erased micro-kernel call signature: read n
// equal-length elements of the declared dtype from a and b, and write the
// scalar result through out. For complex metrics the callee writes the
// real part to out and the imaginary part to the f64 slot immediately
// following it (via unsafe.Add), never exposing the interleaved layout
// to callers.
//
// Kernels are pure, stateless, and allocate nothing. They do not validate
// their arguments — that is the dispatch/batch layer's responsibility
// (§7) — and they never panic on defined numerical edge cases (zero norm,
// empty union, zero-over-zero), which are finite by definition.
type Kernel func(a, b unsafe.Pointer, n uintptr, out *float64)

// WriteComplex writes a two-component complex result through out, the
// shape every complex-metric Kernel uses to report (real, imag).
func WriteComplex(out *float64, real, imag float64) {
	*out = real
	imagSlot := (*float64)(unsafe.Add(unsafe.Pointer(out), unsafe.Sizeof(float64(0))))
	*imagSlot = imag
}

// ReadComplex reads a two-component complex result written by WriteComplex.
func ReadComplex(out *float64) (real, imag float64) {
	real = *out
	imagSlot := (*float64)(unsafe.Add(unsafe.Pointer(out), unsafe.Sizeof(float64(0))))
	imag = *imagSlot
	return real, imag
}
