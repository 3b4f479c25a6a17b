//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// BlockSize is the SHA-256 block size in bytes.
const BlockSize = 64

// Blocks splits a padded message into its ordered sequence of 64-byte
// blocks, covering the input left to right with no gaps or overlaps.
// The argument must come from Pad; a length that is zero or not a
// multiple of BlockSize is a bug in the caller and panics.
func Blocks(padded []byte) [][BlockSize]byte {
	if len(padded) == 0 || len(padded)%BlockSize != 0 {
		panic(fmt.Sprintf(
			"sha256: padded length %d is not a positive multiple of %d",
			len(padded), BlockSize))
	}

	blocks := make([][BlockSize]byte, len(padded)/BlockSize)
	for idx := range blocks {
		copy(blocks[idx][:], padded[idx*BlockSize:])
	}

	return blocks
}

// Schedule expands one block into the 64-word message schedule W. The
// first 16 words are the block's big-endian 32-bit words; the rest
// follow the FIPS 180-4 recurrence over words t-2, t-7, t-15, t-16.
// All additions wrap mod 2^32.
func Schedule(block [BlockSize]byte) [64]uint32 {
	var w [64]uint32

	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for t := 16; t < 64; t++ {
		w[t] = sigma0(w[t-15]) + w[t-7] + sigma1(w[t-2]) + w[t-16]
	}

	return w
}

// sigma0 and sigma1 are the schedule mixing functions from FIPS 180-4
// Section 4.1.2.

func sigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ x>>3
}

func sigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ x>>10
}
