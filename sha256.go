//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"encoding/binary"
	"encoding/hex"
)

// Size is the size of a SHA-256 digest in bytes.
const Size = 32

// Digest is a SHA-256 digest value.
type Digest [Size]byte

// Bytes returns the digest as a byte slice.
func (d Digest) Bytes() []byte {
	return d[:]
}

// String returns the digest as 64 lowercase hexadecimal digits.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Sum computes the SHA-256 digest of data in one shot: it pads the
// message, splits it into blocks, and folds the compression function
// over the blocks in order, starting from the fixed initial state.
func Sum(data []byte) Digest {
	state := InitialState()
	for _, block := range Blocks(Pad(data)) {
		state = Compress(state, Schedule(block))
	}

	return StateDigest(state)
}

// StateDigest formats a hash state as a digest: each state word as four
// big-endian bytes, words in state order.
func StateDigest(state [8]uint32) Digest {
	var digest Digest
	for idx, word := range state {
		binary.BigEndian.PutUint32(digest[idx*4:], word)
	}

	return digest
}
