package debugger

import (
	"fmt"

	"nesdbg/hw"
)

const ramSize = 0x800

type peeker interface {
	Peek8(addr uint16) uint8
}

type listingLine struct {
	addr uint16
	size uint8
	code bool
	text string // code lines only, built on first use
}

// A DisasmCache is the disassembly listing of the CPU internal RAM. Only
// bytes that have been executed as opcodes are disassembled, others are
// listed as data. The listing is rebuilt when code is found at a new address,
// or when executed bytes are overwritten.
type DisasmCache struct {
	bus peeker

	opcodeMask [ramSize]bool // executed as opcode
	codeMask   [ramSize]bool // part of an executed instruction

	dirty     bool
	lines     []listingLine
	addr2sloc [ramSize]int
}

func newDisasmCache(bus peeker) *DisasmCache {
	return &DisasmCache{bus: bus, dirty: true}
}

// executed records an opcode fetch at addr.
func (dc *DisasmCache) executed(addr uint16) {
	if addr >= 0x2000 {
		return
	}
	addr &= ramSize - 1
	if dc.opcodeMask[addr] {
		return
	}
	dc.opcodeMask[addr] = true
	size := uint16(hw.OpcodeSize(dc.bus.Peek8(addr)))
	for i := range size {
		dc.codeMask[(addr+i)&(ramSize-1)] = true
	}
	dc.dirty = true
}

// written records a CPU write at addr.
func (dc *DisasmCache) written(addr uint16) {
	if addr >= 0x2000 {
		return
	}
	if dc.codeMask[addr&(ramSize-1)] {
		dc.dirty = true
	}
}

// Invalidate forces the listing to be rebuilt.
func (dc *DisasmCache) Invalidate() { dc.dirty = true }

// Reset forgets all executed addresses.
func (dc *DisasmCache) Reset() {
	clear(dc.opcodeMask[:])
	clear(dc.codeMask[:])
	dc.dirty = true
}

func (dc *DisasmCache) rebuild() {
	if !dc.dirty {
		return
	}
	dc.lines = dc.lines[:0]
	for addr := uint16(0); addr < ramSize; {
		line := listingLine{addr: addr, size: 1}
		if dc.opcodeMask[addr] {
			line.code = true
			line.size = uint8(min(uint16(hw.OpcodeSize(dc.bus.Peek8(addr))), ramSize-addr))
		}
		for i := range uint16(line.size) {
			dc.addr2sloc[addr+i] = len(dc.lines)
		}
		dc.lines = append(dc.lines, line)
		addr += uint16(line.size)
	}
	dc.dirty = false
}

// Sloc returns the number of lines of the listing.
func (dc *DisasmCache) Sloc() int {
	dc.rebuild()
	return len(dc.lines)
}

// Sloc2Addr returns the address of a listing line.
func (dc *DisasmCache) Sloc2Addr(sloc int) (uint16, bool) {
	dc.rebuild()
	if sloc < 0 || sloc >= len(dc.lines) {
		return 0, false
	}
	return dc.lines[sloc].addr, true
}

// Addr2Sloc returns the listing line containing addr. RAM mirrors are
// folded.
func (dc *DisasmCache) Addr2Sloc(addr uint16) (int, bool) {
	if addr >= 0x2000 {
		return 0, false
	}
	dc.rebuild()
	return dc.addr2sloc[addr&(ramSize-1)], true
}

// Line returns the text of a listing line.
func (dc *DisasmCache) Line(sloc int) string {
	dc.rebuild()
	if sloc < 0 || sloc >= len(dc.lines) {
		return ""
	}
	l := &dc.lines[sloc]
	if !l.code {
		v := dc.bus.Peek8(l.addr)
		return fmt.Sprintf("%04X  %02X        .DB $%02X", l.addr, v, v)
	}
	if l.text == "" {
		var buf [3]byte
		for i := range l.size {
			buf[i] = dc.bus.Peek8(l.addr + uint16(i))
		}
		l.text = hw.Disassemble(l.addr, buf[:l.size]).String()
	}
	return l.text
}

// IsCode reports whether addr has been executed as an opcode.
func (dc *DisasmCache) IsCode(addr uint16) bool {
	return addr < 0x2000 && dc.opcodeMask[addr&(ramSize-1)]
}
