package emu

import (
	"testing"

	"nesdbg/ines"
)

// countLoop counts X from 1 to 5, storing it in $10, then spins.
//
//	$8000  LDX #$00
//	$8002  INX
//	$8003  STX $10
//	$8005  LDA $10
//	$8007  CMP #$05
//	$8009  BNE $8002
//	$800B  JMP $800B
var countLoop = []byte{
	0xA2, 0x00,
	0xE8,
	0x86, 0x10,
	0xA5, 0x10,
	0xC9, 0x05,
	0xD0, 0xF7,
	0x4C, 0x0B, 0x80,
}

// nromImage returns a 16KB NROM cartridge with prog at $8000, also mirrored
// at $C000. All vectors point to $8000.
func nromImage(tb testing.TB, prog []byte) *ines.Rom {
	tb.Helper()

	prg := make([]byte, 0x4000)
	copy(prg, prog)
	for _, vec := range []int{0x3FFA, 0x3FFC, 0x3FFE} {
		prg[vec] = 0x00
		prg[vec+1] = 0x80
	}
	rom, err := ines.New(0, ines.HorzMirroring, prg, make([]byte, 0x2000))
	if err != nil {
		tb.Fatal(err)
	}
	return rom
}

func newTestNES(tb testing.TB, cfg Config) *NES {
	tb.Helper()

	nes, err := New(nromImage(tb, countLoop), cfg)
	if err != nil {
		tb.Fatal(err)
	}
	return nes
}

func stepN(tb testing.TB, nes *NES, n int) {
	tb.Helper()

	for i := range n {
		if res := nes.Step(); res.Stopped() {
			tb.Fatalf("step %d: unexpected break %q", i, res.Break)
		}
	}
}
