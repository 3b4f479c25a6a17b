//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"encoding/binary"
)

// Pad returns data extended with SHA-256 message padding: a 0x80 marker
// byte, zero bytes until the length is 56 mod 64, and the input length
// in bits as a big-endian 64-bit integer. The result is always a
// positive multiple of BlockSize bytes, between 9 and 72 bytes longer
// than the input. The input slice is not modified.
//
// The bit length wraps mod 2^64 for messages of 2^61 bytes or more,
// which is the behavior FIPS 180-4 defines for the length field.
func Pad(data []byte) []byte {
	length := uint64(len(data))

	// Marker plus zero fill up to 56 mod 64.
	var t uint64
	if length%64 < 56 {
		t = 56 - length%64
	} else {
		t = 64 + 56 - length%64
	}

	var tmp [64 + 8]byte
	tmp[0] = 0x80
	binary.BigEndian.PutUint64(tmp[t:], length<<3)

	padded := make([]byte, 0, length+t+8)
	padded = append(padded, data...)
	padded = append(padded, tmp[:t+8]...)

	return padded
}
