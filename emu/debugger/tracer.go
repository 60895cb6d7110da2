package debugger

import (
	"fmt"

	"nesdbg/hw"
)

// DefaultTraceSize is the default capacity of the trace ring.
const DefaultTraceSize = 1024

// TraceEntry is the CPU state just before an instruction executes.
type TraceEntry struct {
	PC       uint16
	Bytes    [3]uint8
	Len      uint8 // instruction size, 1 to 3 bytes
	Cycle    int64
	Scanline int
	Dot      int
	A, X, Y  uint8
	P        hw.P
	SP       uint8
}

// Disasm returns the disassembled instruction.
func (e TraceEntry) Disasm() hw.DisasmOp {
	return hw.Disassemble(e.PC, e.Bytes[:e.Len])
}

func (e TraceEntry) String() string {
	return fmt.Sprintf("%-47s A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d",
		e.Disasm().String(), e.A, e.X, e.Y, uint8(e.P), e.SP, e.Scanline, e.Dot, e.Cycle)
}

// A TraceRing keeps the last executed instructions.
type TraceRing struct {
	entries []TraceEntry
	next    int // where the next entry goes
	n       int
}

// NewTraceRing returns a trace ring holding up to size entries.
func NewTraceRing(size int) *TraceRing {
	if size <= 0 {
		size = DefaultTraceSize
	}
	return &TraceRing{entries: make([]TraceEntry, size)}
}

// Record adds e to the ring, overwriting the oldest entry when full.
func (t *TraceRing) Record(e TraceEntry) {
	t.entries[t.next] = e
	t.next = (t.next + 1) % len(t.entries)
	if t.n < len(t.entries) {
		t.n++
	}
}

// Len returns the number of entries in the ring.
func (t *TraceRing) Len() int { return t.n }

// Cap returns the capacity of the ring.
func (t *TraceRing) Cap() int { return len(t.entries) }

// History returns the last n entries, oldest first. n <= 0 means all.
func (t *TraceRing) History(n int) []TraceEntry {
	if n <= 0 || n > t.n {
		n = t.n
	}
	out := make([]TraceEntry, n)
	start := t.next - n
	if start < 0 {
		start += len(t.entries)
	}
	for i := range out {
		out[i] = t.entries[(start+i)%len(t.entries)]
	}
	return out
}

// Reset empties the ring.
func (t *TraceRing) Reset() {
	t.next, t.n = 0, 0
}
