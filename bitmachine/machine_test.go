package bitmachine

import (
	"bytes"
	"math/rand"
	"testing"
)

// packBits packs a slice of bools into big-endian bytes, padding the final
// byte with zero bits (mirrors spec.md §8's pack/write_bytes roundtrip
// property).
func packBits(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

func TestFrameRoundtripAllAlignments(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for align := 0; align < 8; align++ {
		// The frame starts with align skipped bits, so the 64 data bits are
		// written and read at cursor offset align.
		n := align + 64
		bits := make([]bool, 64)
		for i := range bits {
			bits[i] = rng.Intn(2) == 1
		}
		m := New(0)
		if err := m.NewFrame(n); err != nil {
			t.Fatalf("align %d: NewFrame: %v", align, err)
		}
		if err := m.Skip(align); err != nil {
			t.Fatalf("align %d: Skip: %v", align, err)
		}
		packed := packBits(bits)
		if err := m.WriteBytes(packed); err != nil {
			t.Fatalf("align %d: WriteBytes: %v", align, err)
		}
		if err := m.MoveFrame(); err != nil {
			t.Fatalf("align %d: MoveFrame: %v", align, err)
		}
		if err := m.Fwd(align); err != nil {
			t.Fatalf("align %d: Fwd: %v", align, err)
		}
		got, err := m.ReadBytes(len(packed))
		if err != nil {
			t.Fatalf("align %d: ReadBytes: %v", align, err)
		}
		if !bytes.Equal(got, packed) {
			t.Fatalf("align %d: roundtrip mismatch: got %x want %x", align, got, packed)
		}
	}
}

func TestIntegerEndiannessRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	t.Run("u8", func(t *testing.T) {
		for i := 0; i < 64; i++ {
			x := uint8(rng.Intn(256))
			m := New(0)
			must(t, m.NewFrame(8))
			must(t, m.WriteU8(x))
			must(t, m.MoveFrame())
			got, err := m.ReadU8()
			if err != nil || got != x {
				t.Fatalf("u8 %d: got %d,%v want %d", x, got, err, x)
			}
		}
	})
	t.Run("u16", func(t *testing.T) {
		for i := 0; i < 64; i++ {
			x := uint16(rng.Intn(1 << 16))
			m := New(0)
			must(t, m.NewFrame(16))
			must(t, m.WriteU16(x))
			must(t, m.MoveFrame())
			got, err := m.ReadU16()
			if err != nil || got != x {
				t.Fatalf("u16 %d: got %d,%v want %d", x, got, err, x)
			}
		}
	})
	t.Run("u32", func(t *testing.T) {
		for i := 0; i < 64; i++ {
			x := rng.Uint32()
			m := New(0)
			must(t, m.NewFrame(32))
			must(t, m.WriteU32(x))
			must(t, m.MoveFrame())
			got, err := m.ReadU32()
			if err != nil || got != x {
				t.Fatalf("u32 %d: got %d,%v want %d", x, got, err, x)
			}
		}
	})
	t.Run("u64", func(t *testing.T) {
		for i := 0; i < 64; i++ {
			x := rng.Uint64()
			m := New(0)
			must(t, m.NewFrame(64))
			must(t, m.WriteU64(x))
			must(t, m.MoveFrame())
			got, err := m.ReadU64()
			if err != nil || got != x {
				t.Fatalf("u64 %d: got %d,%v want %d", x, got, err, x)
			}
		}
	})
}

func TestSkipPreservesAlignment(t *testing.T) {
	// Two sequences that end with the same cursor must produce the same
	// frame width regardless of skip/write choices (spec.md §8).
	m1 := New(0)
	must(t, m1.NewFrame(16))
	must(t, m1.Skip(8))
	must(t, m1.WriteU8(0xAB))

	m2 := New(0)
	must(t, m2.NewFrame(16))
	must(t, m2.WriteU8(0x00))
	must(t, m2.Skip(0))
	must(t, m2.WriteU8(0xAB))

	must(t, m1.MoveFrame())
	must(t, m2.MoveFrame())

	b1, err := m1.ReadBytes(2)
	must(t, err)
	b2, err := m2.ReadBytes(2)
	must(t, err)
	if b1[1] != b2[1] {
		t.Fatalf("written tail diverged: %x vs %x", b1, b2)
	}
}

func TestOutOfBoundsOnOverflow(t *testing.T) {
	m := New(0)
	must(t, m.NewFrame(4))
	if err := m.WriteU8(1); err == nil {
		t.Fatal("expected OutOfBounds writing 8 bits into a 4-bit frame")
	}
}

func TestMoveFrameRequiresFullyWritten(t *testing.T) {
	m := New(0)
	must(t, m.NewFrame(8))
	must(t, m.WriteBit(true))
	if err := m.MoveFrame(); err == nil {
		t.Fatal("expected error moving a partially written frame")
	}
}

func TestDropFrameStrictExhaustion(t *testing.T) {
	m := New(0)
	must(t, m.NewFrame(8))
	must(t, m.WriteU8(1))
	must(t, m.MoveFrame())
	if err := m.DropFrame(); err == nil {
		t.Fatal("expected error dropping a read frame with unread bits")
	}
	_, err := m.ReadU8()
	must(t, err)
	must(t, m.DropFrame())
}

func TestBudgetEnforced(t *testing.T) {
	m := New(16)
	must(t, m.NewFrame(16))
	if err := m.NewFrame(1); err == nil {
		t.Fatal("expected ExceededBudget")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
