package hw

import (
	"nesdbg/emu/log"
	"nesdbg/hw/hwio"
)

const (
	NumScanlines = 262 // Number of scanlines per frame.
	NumCycles    = 341 // Number of PPU cycles per scanline.

	postRenderScanline = 240
	vblankScanline     = 241
	preRenderScanline  = 261

	ntscPPUDivider = 4
)

const (
	// PPUCTRL bits
	// $2000

	// Nametable selection mask
	// (0 = $2000; 1 = $2400; 2 = $2800; 3 = $2C00)
	ntselect = 0b11

	// VRAM address increment per CPU read/write of PPUDATA
	// (0: +1 i.e. horizontal; 1: +32 i.e. vertical)
	vramIncr = 2

	// Sprite size (0: 8x8 pixels; 1: 8x16 pixels)
	spriteSize = 5

	// Generate an NMI at the start of the
	// vertical blanking interval (0: off; 1: on)
	nmi = 7
)

const (
	// PPUMASK bits
	// $2001

	// Show background
	showBg = 3

	// Show sprites
	showSprites = 4
)

const (
	// PPUSTATUS bits
	// $2002

	// Returns stale PPU bus contents.
	openbusMask = 0b11111

	// Sprite overflow, cleared at dot 1 of the pre-render line.
	spriteOverflow = 5

	// Sprite 0 Hit. Set when a nonzero pixel of sprite 0 overlaps a nonzero
	// background pixel; cleared at dot 1 of the pre-render line.
	sprite0Hit = 6

	// Vertical blank has started (0: not in vblank; 1: in vblank).
	// Set at dot 1 of line 241 (the line *after* the post-render
	// line); cleared after reading $2002 and at dot 1 of the
	// pre-render line.
	vblank = 7
)

// PPUEvent is a PPU occurrence a debugger can break on. Values are stable.
type PPUEvent uint8

const (
	PPUScanlineStart PPUEvent = iota
	PPUVBlankStart
	PPUFrameStart
	PPUSpriteZeroHit

	NumPPUEvents = 4
)

var ppuEventNames = [NumPPUEvents]string{"scanline", "vblank", "frame", "sprite0"}

func (ev PPUEvent) String() string {
	if int(ev) < len(ppuEventNames) {
		return ppuEventNames[ev]
	}
	return "unknown"
}

// PPU emulates the 2C02 timing: scanlines, vblank, NMI, register side
// effects and VRAM accesses. It doesn't produce any pixel, sprite 0 hit is
// approximated from the sprite 0 position.
type PPU struct {
	Bus *hwio.Table // PPU bus
	CPU *CPU

	Cycle    int    // Current cycle/pixel in scanline
	Scanline int    // Current scanline being drawn
	Frame    uint64 // Frames since power-up

	masterClock   uint64
	oddFrame      bool
	preventVBlank bool
	sprite0Done   bool

	// OnEvent, if set, is called for every PPU event.
	OnEvent func(ev PPUEvent)

	// 2KB of internal VRAM. The cartridge decides how nametables $2000-$2FFF
	// map onto it.
	Nametables [0x800]byte

	// $3F00-$3F1F	$0020	Palette RAM indexes
	// $3F20-$3FFF	$00E0	Mirrors of $3F00-$3F1F
	Palettes hwio.Mem `hwio:"offset=0x3F00,size=0x20,vsize=0x100,wcb"`

	OAM [0x100]byte

	// CPU-exposed memory-mapped PPU registers
	// mapped from $2000 to $2007, mirrored up to $3fff
	PPUCTRL   hwio.Reg8 `hwio:"bank=1,offset=0x0,writeonly,wcb"`
	PPUMASK   hwio.Reg8 `hwio:"bank=1,offset=0x1,writeonly,wcb"`
	PPUSTATUS hwio.Reg8 `hwio:"bank=1,offset=0x2,readonly,rcb,pcb"`
	OAMADDR   hwio.Reg8 `hwio:"bank=1,offset=0x3,writeonly"`
	OAMDATA   hwio.Reg8 `hwio:"bank=1,offset=0x4,rcb,pcb,wcb"`
	PPUSCROLL hwio.Reg8 `hwio:"bank=1,offset=0x5,writeonly,wcb"`
	PPUADDR   hwio.Reg8 `hwio:"bank=1,offset=0x6,writeonly,wcb"`
	PPUDATA   hwio.Reg8 `hwio:"bank=1,offset=0x7,rcb,pcb,wcb"`

	// VRAM read/write
	vramAddr    loopy
	vramTmp     loopy
	finex       uint8
	writeLatch  bool
	ppuDataRbuf uint8
	openbus     uint8
}

func NewPPU() *PPU {
	return &PPU{
		Bus: hwio.NewTable("ppu"),
	}
}

func (p *PPU) InitBus() {
	hwio.MustInitRegs(p)
	p.Bus.MapBank(0x0000, p, 0)
}

func (p *PPU) Reset() {
	p.Scanline = 0
	p.Cycle = 0
	p.Frame = 0
	p.masterClock = 0
	p.oddFrame = false
	p.preventVBlank = false
	p.sprite0Done = false

	p.PPUCTRL.Value = 0
	p.PPUMASK.Value = 0
	p.PPUSTATUS.Value = 0
	p.writeLatch = false
	p.vramAddr = 0
	p.vramTmp = 0
	p.finex = 0
	p.ppuDataRbuf = 0
	p.openbus = 0
}

func (p *PPU) emit(ev PPUEvent) {
	if p.OnEvent != nil {
		p.OnEvent(ev)
	}
}

// Run runs the PPU until it catches up with the given master clock.
func (p *PPU) Run(until uint64) {
	for p.masterClock+ntscPPUDivider <= until {
		p.tick()
		p.masterClock += ntscPPUDivider
	}
}

func (p *PPU) renderingEnabled() bool {
	return hwio.Bit(p.PPUMASK.Value, showBg) || hwio.Bit(p.PPUMASK.Value, showSprites)
}

func (p *PPU) tick() {
	if p.Cycle == 0 {
		p.emit(PPUScanlineStart)
	}

	switch {
	case p.Scanline < postRenderScanline:
		p.checkSprite0()

	case p.Scanline == vblankScanline && p.Cycle == 1:
		if !p.preventVBlank {
			hwio.SetBit(&p.PPUSTATUS.Value, vblank)
			p.emit(PPUVBlankStart)
			if hwio.Bit(p.PPUCTRL.Value, nmi) {
				p.CPU.setNMIflag()
			}
		}
		p.preventVBlank = false

	case p.Scanline == preRenderScanline && p.Cycle == 1:
		const mask = 1<<vblank | 1<<sprite0Hit | 1<<spriteOverflow
		p.PPUSTATUS.Value &^= mask
		p.sprite0Done = false
		p.CPU.clearNMIflag()
	}

	p.Cycle++

	// The pre-render line is one dot shorter on odd frames, when rendering.
	if p.Scanline == preRenderScanline && p.Cycle == NumCycles-1 && p.oddFrame && p.renderingEnabled() {
		p.Cycle++
	}

	if p.Cycle >= NumCycles {
		p.Cycle = 0
		p.Scanline++
		switch p.Scanline {
		case postRenderScanline:
			p.CPU.frameEnd()
		case NumScanlines:
			p.Scanline = 0
			p.Frame++
			p.oddFrame = !p.oddFrame
			p.emit(PPUFrameStart)
		}
	}
}

// checkSprite0 sets the sprite 0 hit flag when the beam reaches the top-left
// pixel of sprite 0, provided both background and sprites are shown.
func (p *PPU) checkSprite0() {
	if p.sprite0Done {
		return
	}
	if !hwio.Bit(p.PPUMASK.Value, showBg) || !hwio.Bit(p.PPUMASK.Value, showSprites) {
		return
	}
	y, x := int(p.OAM[0])+1, int(p.OAM[3])
	if x == 255 {
		return
	}
	if p.Scanline == y && p.Cycle == x+1 {
		p.sprite0Done = true
		hwio.SetBit(&p.PPUSTATUS.Value, sprite0Hit)
		log.ModPPU.DebugZ("sprite 0 hit").
			Int("scanline", p.Scanline).
			Int("dot", p.Cycle).
			End()
		p.emit(PPUSpriteZeroHit)
	}
}

// WritePALETTES handles the palette mirrors: entries $3F10/$3F14/$3F18/$3F1C
// are mirrors of $3F00/$3F04/$3F08/$3F0C.
func (p *PPU) WritePALETTES(addr uint16, val uint8) {
	idx := addr & 0x1F
	p.Palettes.Data[idx] = val
	if idx&0x03 == 0 {
		p.Palettes.Data[idx^0x10] = val
	}
}

// PPUCTRL: $2000
func (p *PPU) WritePPUCTRL(old, val uint8) {
	log.ModPPU.DebugZ("Write to PPUCTRL").Hex8("val", val).End()
	p.openbus = val

	// By toggling the nmi bit (bit 7 of PPUCTRL) during vblank without reading
	// PPUSTATUS, a program can cause /nmi to be pulled low multiple times,
	// causing multiple NMIs to be generated.
	if !hwio.Bit(val, nmi) {
		p.CPU.clearNMIflag()
	} else if hwio.Bit(p.PPUSTATUS.Value, vblank) {
		p.CPU.setNMIflag()
	}

	// Transfer the nametable bits.
	p.vramTmp.setNametable(uint16(val) & ntselect)
}

// PPUMASK: $2001
func (p *PPU) WritePPUMASK(old, val uint8) {
	log.ModPPU.DebugZ("Write to PPUMASK").Hex8("val", val).End()
	p.openbus = val
}

func (p *PPU) status() uint8 {
	return p.PPUSTATUS.Value&^openbusMask | p.openbus&openbusMask
}

// PPUSTATUS: $2002
func (p *PPU) ReadPPUSTATUS(uint8) uint8 {
	ret := p.status()

	// Reading $2002 one dot before vblank suppresses it for this frame.
	if p.Scanline == vblankScanline && p.Cycle == 0 {
		p.preventVBlank = true
	}

	p.writeLatch = false
	hwio.ClearBit(&p.PPUSTATUS.Value, vblank)
	p.CPU.clearNMIflag()
	p.openbus = ret
	return ret
}

func (p *PPU) PeekPPUSTATUS(uint8) uint8 {
	return p.status()
}

// OAMDATA: $2004
func (p *PPU) ReadOAMDATA(uint8) uint8 {
	return p.OAM[p.OAMADDR.Value]
}

func (p *PPU) PeekOAMDATA(uint8) uint8 {
	return p.OAM[p.OAMADDR.Value]
}

func (p *PPU) WriteOAMDATA(_, val uint8) {
	p.OAM[p.OAMADDR.Value] = val
	p.OAMADDR.Value++
}

// PPUSCROLL: $2005
func (p *PPU) WritePPUSCROLL(old, val uint8) {
	log.ModPPU.DebugZ("Write to PPUSCROLL").Hex8("val", val).End()
	p.openbus = val

	if !p.writeLatch {
		p.finex = val & 0b111
		p.vramTmp.setCoarsex(uint16(val >> 3))
	} else {
		p.vramTmp.setFiney(uint16(val & 0b111))
		p.vramTmp.setCoarsey(uint16(val >> 3))
	}

	p.writeLatch = !p.writeLatch
}

// To read/write VRAM from CPU, PPUADDR is set to the address of the operation.
// It's a 16-bit register so 2 writes are necessary.
// PPUADDR: $2006
func (p *PPU) WritePPUADDR(old, val uint8) {
	p.openbus = val
	if !p.writeLatch {
		// Bit 14 of t is cleared.
		p.vramTmp.setHigh(uint16(val & 0b11_1111))
	} else {
		p.vramTmp.setLow(uint16(val))
		p.vramAddr = p.vramTmp
	}

	p.writeLatch = !p.writeLatch
}

// PPUDATA: $2007
func (p *PPU) ReadPPUDATA(uint8) uint8 {
	addr := p.vramAddr.addr()
	var val uint8
	if addr < 0x3F00 {
		// VRAM reads are delayed by one read.
		val = p.ppuDataRbuf
		p.ppuDataRbuf = p.Bus.Read8(addr)
	} else {
		// Palette reads are immediate, the buffer gets the nametable byte
		// 'under' the palette.
		val = p.Bus.Read8(addr)&0x3F | p.openbus&0xC0
		p.ppuDataRbuf = p.Bus.Read8(addr - 0x1000)
	}

	p.incVRAMaddr()
	p.openbus = val
	return val
}

func (p *PPU) PeekPPUDATA(uint8) uint8 {
	addr := p.vramAddr.addr()
	if addr < 0x3F00 {
		return p.ppuDataRbuf
	}
	return p.Bus.Peek8(addr)&0x3F | p.openbus&0xC0
}

// PPUDATA: $2007
func (p *PPU) WritePPUDATA(old, val uint8) {
	p.openbus = val
	addr := p.vramAddr.addr()
	p.Bus.Write8(addr, val)
	p.incVRAMaddr()

	log.ModPPU.DebugZ("VRAM write").
		Hex16("addr", addr).
		Hex8("val", val).
		End()
}

// After each access to PPUDATA, the VRAM address is incremented.
func (p *PPU) incVRAMaddr() {
	incr := uint16(1)
	if hwio.Bit(p.PPUCTRL.Value, vramIncr) {
		incr = 32
	}
	p.vramAddr = loopy((uint16(p.vramAddr) + incr) & 0x7FFF)
}

// loopy is the layout of the internal VRAM address registers v and t.
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
type loopy uint16

func (l loopy) coarsex() uint16   { return uint16(l) & 0x1F }
func (l loopy) coarsey() uint16   { return uint16(l) >> 5 & 0x1F }
func (l loopy) nametable() uint16 { return uint16(l) >> 10 & 0x03 }
func (l loopy) finey() uint16     { return uint16(l) >> 12 & 0x07 }
func (l loopy) high() uint16      { return uint16(l) >> 8 & 0x3F }
func (l loopy) low() uint16       { return uint16(l) & 0xFF }
func (l loopy) val() uint16       { return uint16(l) & 0x7FFF }

// addr is the 14-bit VRAM address.
func (l loopy) addr() uint16 { return uint16(l) & 0x3FFF }

func (l *loopy) set(v uint16, shift uint, mask uint16) {
	*l = loopy(uint16(*l)&^(mask<<shift) | (v&mask)<<shift)
}

func (l *loopy) setCoarsex(v uint16)   { l.set(v, 0, 0x1F) }
func (l *loopy) setCoarsey(v uint16)   { l.set(v, 5, 0x1F) }
func (l *loopy) setNametable(v uint16) { l.set(v, 10, 0x03) }
func (l *loopy) setFiney(v uint16)     { l.set(v, 12, 0x07) }
func (l *loopy) setLow(v uint16)       { l.set(v, 0, 0xFF) }

// setHigh sets bits 8-13 and clears bit 14.
func (l *loopy) setHigh(v uint16) { l.set(v, 8, 0x7F) }
