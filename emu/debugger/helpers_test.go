package debugger

import (
	"testing"

	"nesdbg/hw"
	"nesdbg/hw/hwdefs"
	"nesdbg/hw/hwio"
)

// testProgram runs at $8000:
//
//	8000  LDA #$42      2 cycles
//	8002  STA $10       3
//	8004  LDA $8000     4
//	8007  JSR $8010     6
//	800A  JMP $800A     3
//	8010  INX           2
//	8011  RTS           6
var testProgram = map[uint16][]byte{
	0x8000: {0xA9, 0x42, 0x85, 0x10, 0xAD, 0x00, 0x80, 0x20, 0x10, 0x80, 0x4C, 0x0A, 0x80},
	0x8010: {0xE8, 0x60},
	0xFFFC: {0x00, 0x80},
}

// newTestDebugger returns a debugger attached to a CPU with 64KB of flat
// RAM, loaded with prog and reset.
func newTestDebugger(tb testing.TB, prog map[uint16][]byte) (*Debugger, *hw.CPU, []byte) {
	tb.Helper()

	mem := make([]byte, 0x10000)
	for addr, buf := range prog {
		copy(mem[addr:], buf)
	}

	cpu := hw.NewCPU(nil)
	cpu.Bus = hwio.NewTable("dbgtest")
	cpu.Bus.MapMemorySlice(0x0000, 0xFFFF, mem, false)
	d := New(cpu, nil, Config{TraceSize: 16})
	cpu.Reset(hwdefs.HardReset)
	return d, cpu, mem
}

func mustAddSpec(tb testing.TB, d *Debugger, spec string) int {
	tb.Helper()
	idx, err := d.AddBreakpointSpec(spec)
	if err != nil {
		tb.Fatalf("AddBreakpointSpec(%q): %v", spec, err)
	}
	return idx
}

func stepN(tb testing.TB, cpu *hw.CPU, n int) {
	tb.Helper()
	for i := range n {
		if r := cpu.Step(); r.Stopped() {
			tb.Fatalf("step %d: stopped: %s", i, r.Break)
		}
	}
}

type flatMem []byte

func (m flatMem) Peek8(addr uint16) uint8 { return m[addr] }
