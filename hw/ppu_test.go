package hw

import (
	"testing"

	"nesdbg/hw/hwio"
)

func newTestPPU(t *testing.T) (*PPU, *CPU) {
	t.Helper()
	ppu := NewPPU()
	ppu.InitBus()
	cpu := NewCPU(ppu)
	cpu.InitBus()
	ppu.Bus.MapMemorySlice(0x2000, 0x2FFF, ppu.Nametables[:], false)
	ppu.Reset()
	return ppu, cpu
}

func TestPPUScroll(t *testing.T) {
	ppu, cpu := newTestPPU(t)

	ppu.vramTmp = 0xffff

	// Write to PPUCTRL
	cpu.Write8(0x2000, 0)
	if got := ppu.vramTmp.nametable(); got != 0b00 {
		t.Errorf("t.nametable = 0b%08b, want 0b00", got)
	}

	// Read from PPUSTATUS
	_ = cpu.Read8(0x2002)
	if ppu.writeLatch {
		t.Errorf("writeLatch = %t, want false", ppu.writeLatch)
	}

	// First write to PPUSCROLL
	cpu.Write8(0x2005, 0b01111_101)
	if got := ppu.vramTmp.coarsex(); got != 0b01111 {
		t.Errorf("t.coarsex = 0b%08b, want 0b01111", got)
	}
	if ppu.finex != 0b101 {
		t.Errorf("finex = 0b%08b, want 0b101", ppu.finex)
	}
	if !ppu.writeLatch {
		t.Errorf("writeLatch = %t, want true", ppu.writeLatch)
	}

	// Second write to PPUSCROLL
	cpu.Write8(0x2005, 0b01_011_110)
	if got := ppu.vramTmp.coarsey(); got != 0b01011 {
		t.Errorf("t.coarsey = 0b%08b, want 0b01011", got)
	}
	if got := ppu.vramTmp.finey(); got != 0b110 {
		t.Errorf("t.finey = 0b%08b, want 0b110", got)
	}
	if ppu.writeLatch {
		t.Errorf("writeLatch = %t, want false", ppu.writeLatch)
	}

	// First write to PPUADDR
	cpu.Write8(0x2006, 0b00_111101)
	if got := ppu.vramTmp.high(); got != 0b111101 {
		t.Errorf("t.high = %08b, want 0b111101", got)
	}
	// Bit 14 (15th bit) of t gets set to zero
	if ppu.vramTmp.val() != 0b0111101_01101111 {
		t.Errorf("t.val = %015b, want 0b0111101_01101111", ppu.vramTmp.val())
	}

	// Second write to PPUADDR
	cpu.Write8(0x2006, 0b11110000)
	if got := ppu.vramTmp.low(); got != 0b11110000 {
		t.Errorf("t.low = %08b, want 0b11110000", got)
	}
	if ppu.vramTmp.val() != 0b0111101_11110000 {
		t.Errorf("t.val = %015b, want 0b0111101_11110000", ppu.vramTmp.val())
	}
	// After t is updated, contents of t copied into v
	if ppu.vramTmp.val() != ppu.vramAddr.val() {
		t.Errorf("v != t")
	}
}

// runDots runs the PPU for n dots.
func runDots(ppu *PPU, n int) {
	ppu.Run(ppu.masterClock + uint64(n)*ntscPPUDivider)
}

func TestPPUVBlankNMI(t *testing.T) {
	ppu, cpu := newTestPPU(t)
	var events []PPUEvent
	ppu.OnEvent = func(ev PPUEvent) {
		if ev == PPUVBlankStart {
			events = append(events, ev)
		}
	}

	ppu.PPUCTRL.Write8(0x2000, 0x80)

	// Up to, but not including, dot 1 of the first vblank line.
	runDots(ppu, vblankScanline*NumCycles+1)
	if hwio.Bit(ppu.PPUSTATUS.Value, vblank) || cpu.nmiFlag {
		t.Fatal("vblank started too early")
	}

	runDots(ppu, 1)
	if !hwio.Bit(ppu.PPUSTATUS.Value, vblank) {
		t.Fatal("vblank flag not set at 241,1")
	}
	if !cpu.nmiFlag {
		t.Fatal("NMI line not asserted")
	}
	if len(events) != 1 {
		t.Errorf("got %d vblank events, want 1", len(events))
	}

	// Peek has no side effect.
	if got := ppu.PPUSTATUS.Peek8(0x2002); got&0x80 == 0 {
		t.Errorf("peek PPUSTATUS = %02X, want vblank bit", got)
	}
	if got := ppu.PPUSTATUS.Read8(0x2002); got&0x80 == 0 {
		t.Errorf("read PPUSTATUS = %02X, want vblank bit", got)
	}
	if hwio.Bit(ppu.PPUSTATUS.Value, vblank) || cpu.nmiFlag {
		t.Error("reading PPUSTATUS should clear vblank and the NMI line")
	}
}

func TestPPUSuppressVBlank(t *testing.T) {
	ppu, cpu := newTestPPU(t)
	ppu.PPUCTRL.Write8(0x2000, 0x80)

	runDots(ppu, vblankScanline*NumCycles)
	if ppu.Scanline != vblankScanline || ppu.Cycle != 0 {
		t.Fatalf("at %d,%d, want %d,0", ppu.Scanline, ppu.Cycle, vblankScanline)
	}
	ppu.PPUSTATUS.Read8(0x2002)

	runDots(ppu, 10)
	if hwio.Bit(ppu.PPUSTATUS.Value, vblank) || cpu.nmiFlag {
		t.Error("reading PPUSTATUS just before vblank should suppress it")
	}
}

func frameDots(ppu *PPU) int {
	frame := ppu.Frame
	n := 0
	for ppu.Frame == frame {
		ppu.tick()
		n++
	}
	return n
}

func TestPPUOddFrameSkip(t *testing.T) {
	ppu, _ := newTestPPU(t)

	const fullFrame = NumScanlines * NumCycles

	// Rendering disabled: all frames have the same length.
	if n := frameDots(ppu); n != fullFrame {
		t.Fatalf("even frame: %d dots, want %d", n, fullFrame)
	}
	if n := frameDots(ppu); n != fullFrame {
		t.Fatalf("odd frame, rendering disabled: %d dots, want %d", n, fullFrame)
	}

	ppu.PPUMASK.Write8(0x2001, 0x08)
	if n := frameDots(ppu); n != fullFrame {
		t.Fatalf("even frame, rendering enabled: %d dots, want %d", n, fullFrame)
	}
	if n := frameDots(ppu); n != fullFrame-1 {
		t.Fatalf("odd frame, rendering enabled: %d dots, want %d", n, fullFrame-1)
	}
}

func TestPPUSpriteZeroHit(t *testing.T) {
	ppu, _ := newTestPPU(t)
	hits := 0
	ppu.OnEvent = func(ev PPUEvent) {
		if ev == PPUSpriteZeroHit {
			hits++
		}
	}

	ppu.OAM[0] = 30 // y
	ppu.OAM[3] = 40 // x
	ppu.PPUMASK.Write8(0x2001, 0x18)

	runDots(ppu, 31*NumCycles+41)
	if hwio.Bit(ppu.PPUSTATUS.Value, sprite0Hit) {
		t.Fatal("sprite 0 hit too early")
	}
	runDots(ppu, 1)
	if !hwio.Bit(ppu.PPUSTATUS.Value, sprite0Hit) {
		t.Fatal("sprite 0 hit not set")
	}

	// Cleared on the pre-render line, set again next frame.
	runDots(ppu, NumScanlines*NumCycles)
	if hits != 2 {
		t.Errorf("got %d sprite 0 hits, want 2", hits)
	}
}

func TestPPUDATA(t *testing.T) {
	ppu, _ := newTestPPU(t)

	setAddr := func(addr uint16) {
		ppu.PPUADDR.Write8(0x2006, uint8(addr>>8))
		ppu.PPUADDR.Write8(0x2006, uint8(addr))
	}

	setAddr(0x2108)
	ppu.PPUDATA.Write8(0x2007, 0xAB)
	ppu.PPUDATA.Write8(0x2007, 0xCD)
	if ppu.Nametables[0x108] != 0xAB || ppu.Nametables[0x109] != 0xCD {
		t.Fatalf("nametable = % X, want AB CD", ppu.Nametables[0x108:0x10A])
	}

	setAddr(0x2108)
	ppu.PPUDATA.Read8(0x2007) // stale buffer
	if got := ppu.PPUDATA.Peek8(0x2007); got != 0xAB {
		t.Errorf("peek = %02X, want AB", got)
	}
	if got := ppu.PPUDATA.Read8(0x2007); got != 0xAB {
		t.Errorf("2nd read = %02X, want AB", got)
	}
	if got := ppu.PPUDATA.Read8(0x2007); got != 0xCD {
		t.Errorf("3rd read = %02X, want CD", got)
	}

	// Vertical increment.
	ppu.PPUCTRL.Write8(0x2000, 0x04)
	setAddr(0x2000)
	ppu.PPUDATA.Write8(0x2007, 0x11)
	ppu.PPUDATA.Write8(0x2007, 0x22)
	if ppu.Nametables[0x000] != 0x11 || ppu.Nametables[0x020] != 0x22 {
		t.Errorf("vertical increment: got %02X %02X, want 11 22", ppu.Nametables[0x000], ppu.Nametables[0x020])
	}
}

func TestPPUPaletteMirrors(t *testing.T) {
	ppu, _ := newTestPPU(t)

	ppu.PPUADDR.Write8(0x2006, 0x3F)
	ppu.PPUADDR.Write8(0x2006, 0x10)
	ppu.PPUDATA.Write8(0x2007, 0x2A)

	ppu.PPUADDR.Write8(0x2006, 0x3F)
	ppu.PPUADDR.Write8(0x2006, 0x00)
	if got := ppu.PPUDATA.Read8(0x2007); got != 0x2A {
		t.Errorf("$3F00 = %02X, want 2A", got)
	}
	if got := ppu.Bus.Peek8(0x3F20); got != 0x2A {
		t.Errorf("$3F20 = %02X, want 2A", got)
	}
}
