package sha256

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// TestBlocksOrder verifies the splitter covers the padded message left
// to right with no gaps or overlaps.
func TestBlocksOrder(t *testing.T) {
	padded := make([]byte, 3*BlockSize)
	for idx := range padded {
		padded[idx] = byte(idx)
	}

	blocks := Blocks(padded)
	if len(blocks) != 3 {
		t.Fatalf("Blocks: %d blocks, want 3", len(blocks))
	}
	for idx, block := range blocks {
		if !bytes.Equal(block[:], padded[idx*BlockSize:(idx+1)*BlockSize]) {
			t.Errorf("block %d does not match its input region", idx)
		}
	}
}

// TestBlocksPrecondition checks that malformed padded lengths fail
// fast instead of being silently tolerated.
func TestBlocksPrecondition(t *testing.T) {
	for _, n := range []int{1, 63, 65, 127} {
		expectPanic(t, n, func() {
			Blocks(make([]byte, n))
		})
	}
	expectPanic(t, 0, func() {
		Blocks(nil)
	})
}

func expectPanic(t *testing.T, n int, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("Blocks(%d bytes) did not panic", n)
		}
	}()
	f()
}

// TestScheduleInputWords verifies words 0-15 are the block's big-endian
// words in order.
func TestScheduleInputWords(t *testing.T) {
	var block [BlockSize]byte
	for idx := range block {
		block[idx] = byte(idx * 7)
	}

	w := Schedule(block)
	for i := 0; i < 16; i++ {
		want := binary.BigEndian.Uint32(block[i*4:])
		if w[i] != want {
			t.Errorf("W[%d]: have %08x, want %08x", i, w[i], want)
		}
	}
}

// TestScheduleRecurrence recomputes the expansion recurrence
// independently and compares every expanded word.
func TestScheduleRecurrence(t *testing.T) {
	var block [BlockSize]byte
	copy(block[:], "schedule expansion recurrence test block")

	rotr := func(x uint32, n uint) uint32 {
		return x>>n | x<<(32-n)
	}

	w := Schedule(block)
	for i := 16; i < 64; i++ {
		s0 := rotr(w[i-15], 7) ^ rotr(w[i-15], 18) ^ w[i-15]>>3
		s1 := rotr(w[i-2], 17) ^ rotr(w[i-2], 19) ^ w[i-2]>>10
		want := s0 + w[i-7] + s1 + w[i-16]
		if w[i] != want {
			t.Errorf("W[%d]: have %08x, want %08x", i, w[i], want)
		}
	}
}
