package mappers

import (
	"github.com/go-faster/errors"

	"nesdbg/emu/log"
	"nesdbg/hw"
	"nesdbg/hw/hwio"
	"nesdbg/ines"
)

const (
	prgPageSize = 0x4000
	chrPageSize = 0x1000
)

type base struct {
	desc MapperDesc

	rom *ines.Rom
	cpu *hw.CPU
	ppu *hw.PPU

	// called on CPU writes to $8000-$FFFF
	writePRG func(addr uint16, val uint8)

	prgpages [2]int // 16KB PRG ROM pages mapped at $8000 and $C000

	chr      []byte // CHR ROM, or CHR RAM
	chrRAM   bool
	chrpages [2]int // 4KB CHR pages mapped at $0000 and $1000

	PRGRAM hwio.Mem

	ntm   ines.NTMirroring
	extNT []byte // extra cartridge VRAM for four-screen boards
}

func ispow2(n int) bool {
	return n&(n-1) == 0
}

func newbase(desc MapperDesc, rom *ines.Rom, cpu *hw.CPU, ppu *hw.PPU) (*base, error) {
	if len(rom.PRGROM) == 0 || !ispow2(len(rom.PRGROM)) {
		return nil, errors.Errorf("only support PRGROM with power of 2 size, got %d", len(rom.PRGROM))
	}
	b := &base{desc: desc, rom: rom, cpu: cpu, ppu: ppu}

	b.chr = rom.CHRROM
	if len(b.chr) == 0 {
		sz := max(rom.CHRRAMSize(), 0x2000)
		b.chr = make([]byte, sz)
		b.chrRAM = true
	}
	if !ispow2(len(b.chr)) {
		return nil, errors.Errorf("only support CHR with power of 2 size, got %d", len(b.chr))
	}
	return b, nil
}

func (b *base) load() error {
	return b.desc.Load(b)
}

func (b *base) Name() string                 { return b.desc.Name }
func (b *base) Mirroring() ines.NTMirroring { return b.ntm }

func (b *base) PRGAbsAddr(addr uint16) (uint32, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	page := b.prgpages[(addr>>14)&1]
	return uint32(page)*prgPageSize + uint32(addr&(prgPageSize-1)), true
}

// init performs the mappings common to all boards. wcb receives the CPU
// writes to the PRG ROM area.
func (b *base) init(wcb func(addr uint16, val uint8)) {
	b.writePRG = wcb
	if wcb == nil {
		b.writePRG = func(addr uint16, val uint8) {
			log.ModMapper.DebugZ("write to PRG ROM").
				String("mapper", b.desc.Name).
				Hex16("addr", addr).
				Hex8("val", val).
				End()
		}
	}

	if sz := b.rom.PRGRAMSize(); sz > 0 {
		b.PRGRAM = hwio.Mem{
			Name:  "PRGRAM",
			Data:  make([]byte, min(sz, 0x2000)),
			VSize: 0x2000,
		}
		b.mapPRGRAM()
	}

	b.selectPRGPage16KB(0, 0)
	b.selectPRGPage16KB(1, -1)
	b.selectCHRPage8KB(0)
	b.setNTMirroring(b.rom.Mirroring())
}

func (b *base) mapPRGRAM() {
	if b.PRGRAM.Data != nil {
		b.cpu.Bus.MapMem(0x6000, &b.PRGRAM)
	}
}

func (b *base) unmapPRGRAM() {
	b.cpu.Bus.Unmap(0x6000, 0x7FFF)
}

func (b *base) prgPageCount() int { return len(b.rom.PRGROM) / prgPageSize }
func (b *base) chrPageCount() int { return len(b.chr) / chrPageSize }

// wrap turns a bank number into a valid page index, negative numbers count
// from the last page.
func wrap(n, count int) int {
	n %= count
	if n < 0 {
		n += count
	}
	return n
}

// selectPRGPage16KB maps the 16KB PRG ROM page n at $8000 (slot 0) or $C000
// (slot 1).
func (b *base) selectPRGPage16KB(slot, n int) {
	n = wrap(n, b.prgPageCount())
	b.prgpages[slot] = n

	addr := uint16(0x8000 + slot*prgPageSize)
	b.cpu.Bus.MapMem(addr, &hwio.Mem{
		Name:    "PRGROM",
		Data:    b.rom.PRGROM[n*prgPageSize : (n+1)*prgPageSize],
		WriteCb: b.writePRG,
	})
}

// selectPRGPage32KB maps the 32KB PRG ROM bank n at $8000.
func (b *base) selectPRGPage32KB(n int) {
	b.selectPRGPage16KB(0, n*2)
	b.selectPRGPage16KB(1, n*2+1)
}

// selectCHRPage4KB maps the 4KB CHR page n at $0000 (slot 0) or $1000
// (slot 1) of the PPU bus.
func (b *base) selectCHRPage4KB(slot, n int) {
	n = wrap(n, b.chrPageCount())
	b.chrpages[slot] = n

	flags := hwio.MemFlag8ReadOnly | hwio.MemFlagNoROLog
	if b.chrRAM {
		flags = hwio.MemFlagReadWrite
	}
	b.ppu.Bus.MapMem(uint16(slot*chrPageSize), &hwio.Mem{
		Name:  "CHR",
		Data:  b.chr[n*chrPageSize : (n+1)*chrPageSize],
		Flags: flags,
	})
}

// selectCHRPage8KB maps the 8KB CHR bank n at $0000 of the PPU bus.
func (b *base) selectCHRPage8KB(n int) {
	b.selectCHRPage4KB(0, n*2)
	b.selectCHRPage4KB(1, n*2+1)
}

func (b *base) setNTMirroring(m ines.NTMirroring) {
	// Unmap all nametables
	b.ppu.Bus.Unmap(0x2000, 0x3EFF)

	A := b.ppu.Nametables[:0x400]
	B := b.ppu.Nametables[0x400:0x800]

	var nt1, nt2, nt3, nt4 []byte

	switch m {
	case ines.HorzMirroring:
		nt1, nt2 = A, A
		nt3, nt4 = B, B
	case ines.VertMirroring:
		nt1, nt2 = A, B
		nt3, nt4 = A, B
	case ines.OnlyAScreen:
		nt1, nt2 = A, A
		nt3, nt4 = A, A
	case ines.OnlyBScreen:
		nt1, nt2 = B, B
		nt3, nt4 = B, B
	case ines.FourScreen:
		if b.extNT == nil {
			b.extNT = make([]byte, 0x800)
		}
		nt1, nt2 = A, B
		nt3, nt4 = b.extNT[:0x400], b.extNT[0x400:]
	}
	b.ntm = m

	// Map nametables
	b.ppu.Bus.MapMemorySlice(0x2000, 0x23FF, nt1, false)
	b.ppu.Bus.MapMemorySlice(0x2400, 0x27FF, nt2, false)
	b.ppu.Bus.MapMemorySlice(0x2800, 0x2BFF, nt3, false)
	b.ppu.Bus.MapMemorySlice(0x2C00, 0x2FFF, nt4, false)

	// Mirrors
	b.ppu.Bus.MapMemorySlice(0x3000, 0x33FF, nt1, false)
	b.ppu.Bus.MapMemorySlice(0x3400, 0x37FF, nt2, false)
	b.ppu.Bus.MapMemorySlice(0x3800, 0x3BFF, nt3, false)
	b.ppu.Bus.MapMemorySlice(0x3C00, 0x3EFF, nt4, false)
}

// busConflict returns the value actually latched by a board without bus
// conflict protection: the CPU and the ROM drive the data bus together.
func (b *base) busConflict(addr uint16, val uint8) uint8 {
	return val & b.cpu.Bus.Peek8(addr)
}
