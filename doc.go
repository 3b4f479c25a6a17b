// Package sha256 implements the SHA-256 hash algorithm of FIPS 180-4
// as a plain one-shot reference implementation. The pipeline stages are
// exported separately: Pad appends the message padding, Blocks splits
// the padded message into 512-bit blocks, Schedule expands one block
// into the 64-word message schedule, and Compress runs the 64-round
// compression function over one schedule. Sum composes the stages and
// threads the hash state through the blocks in order.
//
// Example:
//
//	digest := sha256.Sum([]byte("abc"))
//	fmt.Println(digest)
//	// Output: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
//
// The package provides no streaming interface: every input is hashed in
// one call. Use crypto/sha256 when incremental writes, HMAC, or
// constant-time guarantees are needed.
package sha256
