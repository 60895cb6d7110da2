package hwio

import (
	"math/rand/v2"
	"testing"
)

func TestBitset(t *testing.T) {
	var b Bitset
	if b.Count() != 0 {
		t.Fatalf("zero bitset has %d bits set", b.Count())
	}

	b.SetAll()
	if b.Count() != NumBits {
		t.Fatalf("SetAll: Count() = %d, want %d", b.Count(), NumBits)
	}

	b.Reset()
	for i := range NumBits {
		addr := uint16(i)
		b.Set(addr)
		if !b.Test(addr) {
			t.Fatalf("bit %04X is not set", addr)
		}
		b.Clear(addr)
		if b.Test(addr) {
			t.Fatalf("bit %04X is set", addr)
		}
	}
}

func TestBitsetRange(t *testing.T) {
	tests := []struct {
		start, end uint16
	}{
		{0, 0},
		{0, 63},
		{0, 64},
		{63, 64},
		{10, 20},
		{0x7F0, 0x8FF},
		{0xFFC0, 0xFFFF},
		{0, 0xFFFF},
	}
	for _, tt := range tests {
		var b Bitset
		b.SetRange(tt.start, tt.end)
		want := int(tt.end) - int(tt.start) + 1
		if got := b.Count(); got != want {
			t.Errorf("SetRange(%04X, %04X): Count() = %d, want %d", tt.start, tt.end, got, want)
		}
		for i := range NumBits {
			addr := uint16(i)
			in := addr >= tt.start && addr <= tt.end
			if b.Test(addr) != in {
				t.Fatalf("SetRange(%04X, %04X): Test(%04X) = %t", tt.start, tt.end, addr, !in)
			}
		}

		b.ClearRange(tt.start, tt.end)
		if got := b.Count(); got != 0 {
			t.Errorf("ClearRange(%04X, %04X): Count() = %d, want 0", tt.start, tt.end, got)
		}
	}
}

func TestBitsetRandomRanges(t *testing.T) {
	var b Bitset
	var ref [NumBits]bool
	for range 200 {
		start := uint16(rand.IntN(NumBits))
		end := uint16(rand.IntN(NumBits))
		set := rand.IntN(2) == 0
		if set {
			b.SetRange(start, end)
		} else {
			b.ClearRange(start, end)
		}
		lo, hi := min(start, end), max(start, end)
		for i := int(lo); i <= int(hi); i++ {
			ref[i] = set
		}
	}
	for i := range NumBits {
		if b.Test(uint16(i)) != ref[i] {
			t.Fatalf("bit %04X = %t, want %t", i, b.Test(uint16(i)), ref[i])
		}
	}
}
