package sha256

import (
	"encoding/binary"
	"math/bits"
)

// Logical functions from FIPS 180-4 Section 4.1.2.

func bigSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func bigSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

func smallSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

func smallSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}

func ch(e, f, g uint32) uint32 {
	return (e & f) ^ (^e & g)
}

func maj(a, b, c uint32) uint32 {
	return (a & b) ^ (a & c) ^ (b & c)
}

// block runs the SHA-256 compression function (FIPS 180-4 Section 6.2.2) over
// every 64-byte block in p, updating h in place.
//
// len(p) must be a non-zero multiple of BlockSize. The incremental hasher is the
// only caller and guarantees this.
func block(h *[8]uint32, p []byte) {
	var w [64]uint32

	for len(p) >= BlockSize {
		// Message schedule.
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[i*4:])
		}
		for i := 16; i < 64; i++ {
			w[i] = smallSigma1(w[i-2]) + w[i-7] + smallSigma0(w[i-15]) + w[i-16]
		}

		a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

		for i := 0; i < 64; i++ {
			t1 := hh + bigSigma1(e) + ch(e, f, g) + k[i] + w[i]
			t2 := bigSigma0(a) + maj(a, b, c)

			hh = g
			g = f
			f = e
			e = d + t1
			d = c
			c = b
			b = a
			a = t1 + t2
		}

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e
		h[5] += f
		h[6] += g
		h[7] += hh

		p = p[BlockSize:]
	}
}
