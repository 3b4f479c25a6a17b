//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"math/bits"
)

// Compress runs the 64-round SHA-256 compression function over one
// message schedule and returns the next hash state: the elementwise
// mod-2^32 sum of the input state and the final working variables.
// The input state is passed by value and never modified; threading the
// returned state into the next block's call is the only data
// dependency between blocks.
func Compress(state [8]uint32, w [64]uint32) [8]uint32 {
	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for t := 0; t < 64; t++ {
		t1 := h + bigSigma1(e) + ch(e, f, g) + roundConstants[t] + w[t]
		t2 := bigSigma0(a) + maj(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	return [8]uint32{
		state[0] + a, state[1] + b, state[2] + c, state[3] + d,
		state[4] + e, state[5] + f, state[6] + g, state[7] + h,
	}
}

// ch selects f or g bits according to e.
func ch(e, f, g uint32) uint32 {
	return e&f ^ ^e&g
}

// maj is the bitwise majority of a, b, c.
func maj(a, b, c uint32) uint32 {
	return a&b ^ a&c ^ b&c
}

func bigSigma0(a uint32) uint32 {
	return bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^
		bits.RotateLeft32(a, -22)
}

func bigSigma1(e uint32) uint32 {
	return bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^
		bits.RotateLeft32(e, -25)
}
