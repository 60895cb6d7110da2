package hw

import (
	"fmt"
	"io"
)

// cpuState stores the CPU state for the execution trace.
type cpuState struct {
	A, X, Y uint8
	P       P
	SP      uint8
	PC      uint16

	Clock    int64
	PPUCycle uint32
	Scanline int
}

type disasmer interface {
	Disasm(pc uint16) DisasmOp
}

// tracer writes an execution trace in the format of the nestest logs.
type tracer struct {
	d disasmer
	w io.Writer
}

// write the execution trace for current cycle.
func (t *tracer) write(state cpuState) {
	const totalLen = 88
	buf := make([]byte, totalLen)

	dis := t.d.Disasm(state.PC)
	buf = append(buf[:0], dis.Bytes()...)
	off := min(totalLen, len(buf))
	buf = buf[:max(totalLen, len(buf))]

	for off < 48 {
		buf[off] = ' '
		off++
	}

	for _, reg := range [...]struct {
		name string
		val  uint8
	}{
		{"A:", state.A},
		{"X:", state.X},
		{"Y:", state.Y},
		{"P:", uint8(state.P)},
		{"SP:", state.SP},
	} {
		off += copy(buf[off:], reg.name)
		hexEncode(buf[off:], reg.val)
		off += 2
		buf[off] = ' '
		off++
	}

	scanline := state.Scanline
	if scanline == 261 {
		scanline = -1
	}

	buf = fmt.Appendf(buf[:off], "PPU:%3d,%3d CYC:%d\n", scanline, state.PPUCycle, state.Clock)
	t.w.Write(buf)
}
