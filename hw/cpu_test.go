package hw

import (
	"bufio"
	"encoding/hex"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nesdbg/hw/hwdefs"
	"nesdbg/hw/hwio"
)

func TestPflag(t *testing.T) {
	p := P(0x40)
	p.setFlag(Interrupt, true)
	if p != 0x44 {
		t.Errorf("got P = %q, want %q", p.String(), P(0x44))
	}

	p.setFlags(Break)
	if p != 0x54 {
		t.Errorf("got P = %q, want %q", p.String(), P(0x54))
	}

	p.checkNZ(0xff)
	if !p.hasFlag(Negative) || p.hasFlag(Zero) {
		t.Errorf("checkNZ(0xff): P = %s", p)
	}
	p.checkNZ(0x7f)
	if p.hasFlag(Negative) || p.hasFlag(Zero) {
		t.Errorf("checkNZ(0x7f): P = %s", p)
	}
	p.checkNZ(0)
	if p.hasFlag(Negative) || !p.hasFlag(Zero) {
		t.Errorf("checkNZ(0): P = %s", p)
	}

	p.clearFlags(Break | Zero)
	if p != 0x44 {
		t.Errorf("got P = %q, want %q", p.String(), P(0x44))
	}
}

func TestPString(t *testing.T) {
	p := P(0b00110100)
	if got := p.String(); got != "nvUBdIzc" {
		t.Errorf("got P = %s, want %s", got, "nvUBdIzc")
	}
	p = P(0b00000100)
	if p.String() != "nvubdIzc" {
		t.Errorf("got P = %s, want %s", p.String(), "nvubdIzc")
	}
}

func TestFlagByName(t *testing.T) {
	for i, name := range []string{"c", "z", "i", "d", "b", "u", "v", "n"} {
		f, ok := FlagByName(name)
		if !ok || f != 1<<i {
			t.Errorf("FlagByName(%q) = %v, %t, want %v", name, f, ok, P(1<<i))
		}
	}
	if f, ok := FlagByName("N"); !ok || f != Negative {
		t.Errorf("FlagByName(N) = %v, %t", f, ok)
	}
	for _, name := range []string{"", "x", "nv"} {
		if _, ok := FlagByName(name); ok {
			t.Errorf("FlagByName(%q) should fail", name)
		}
	}
}

// loadCPUWith returns a CPU with 64KB of flat RAM loaded from dump, then
// reset. Each dump line is an address followed by bytes, '#' starts a
// comment.
func loadCPUWith(tb testing.TB, dump string) (*CPU, []byte) {
	tb.Helper()

	mem := make([]byte, 0x10000)
	scan := bufio.NewScanner(strings.NewReader(dump))
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		saddr, sbytes, ok := strings.Cut(line, ":")
		if !ok {
			tb.Fatalf("malformed dump line: %q", line)
		}
		addr, err := strconv.ParseUint(saddr, 16, 16)
		if err != nil {
			tb.Fatalf("malformed address in %q: %v", line, err)
		}
		buf, err := hex.DecodeString(strings.Join(strings.Fields(sbytes), ""))
		if err != nil {
			tb.Fatalf("malformed bytes in %q: %v", line, err)
		}
		copy(mem[addr:], buf)
	}

	cpu := NewCPU(nil)
	cpu.Bus = hwio.NewTable("cputest")
	cpu.Bus.MapMemorySlice(0x0000, 0xFFFF, mem, false)
	cpu.Reset(hwdefs.HardReset)
	return cpu, mem
}

// regs is the part of the CPU state compared by tests.
type regs struct {
	PC      uint16
	A, X, Y uint8
	SP      uint8
	P       P
	Cycles  int64
}

func cpuRegs(cpu *CPU) regs {
	return regs{PC: cpu.PC, A: cpu.A, X: cpu.X, Y: cpu.Y, SP: cpu.SP, P: cpu.P, Cycles: cpu.Cycles}
}

func stepN(tb testing.TB, cpu *CPU, n int) {
	tb.Helper()
	for i := range n {
		if r := cpu.Step(); r.Stopped() {
			tb.Fatalf("step %d: stopped: %s", i, r.Break)
		}
	}
}

func wantMem(tb testing.TB, mem []byte, addr uint16, want ...byte) {
	tb.Helper()
	got := mem[addr : int(addr)+len(want)]
	if diff := cmp.Diff(want, got); diff != "" {
		tb.Errorf("memory at $%04X mismatch (-want +got):\n%s", addr, diff)
	}
}

func TestCPx(t *testing.T) {
	tests := []struct {
		name string
		dump string
		want P
	}{
		{
			name: "40 - 41",
			dump: `0600: a2 40 e0 41`,
			want: Interrupt | Negative,
		},
		{
			name: "40 - 40",
			dump: `0600: a2 40 e0 40`,
			want: Interrupt | Zero | Carry,
		},
		{
			name: "40 - 39",
			dump: `0600: a2 40 e0 39`,
			want: Interrupt | Carry,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, _ := loadCPUWith(t, tt.dump+"\nFFFC: 00 06")
			stepN(t, cpu, 2)
			if cpu.P != tt.want {
				t.Errorf("P = %s, want %s", cpu.P, tt.want)
			}
			if cpu.X != 0x40 {
				t.Errorf("X = %02X, want 40", cpu.X)
			}
		})
	}
}

func TestLDA_STA(t *testing.T) {
	cpu, mem := loadCPUWith(t, `
0600: a9 01 8d 00 02 a9 05 8d 01 02 a9 08 8d 02 02
FFFC: 00 06`)
	stepN(t, cpu, 6)

	want := regs{PC: 0x060F, A: 0x08, SP: 0xFD, P: Interrupt, Cycles: 7 + 3*(2+4)}
	if diff := cmp.Diff(want, cpuRegs(cpu)); diff != "" {
		t.Errorf("registers mismatch (-want +got):\n%s", diff)
	}
	wantMem(t, mem, 0x0200, 0x01, 0x05, 0x08)
}

func TestROR(t *testing.T) {
	cpu, mem := loadCPUWith(t, `
0000: 55
0100: 66 00
FFFC: 00 01`)
	cpu.A = 0x80
	cpu.SetFlag(Carry, true)
	stepN(t, cpu, 1)

	if !cpu.Flag(Negative) || !cpu.Flag(Carry) || cpu.Flag(Zero) {
		t.Errorf("P = %s, want N and C set", cpu.P)
	}
	wantMem(t, mem, 0x0000, 0xAA)
}

func TestStack(t *testing.T) {
	cpu, mem := loadCPUWith(t, `
# instructions
0600: a2 00 a0 00 8a 99 00 02 48 e8 c8 c0 10 d0 f5 68
0610: 99 00 02 c8 c0 20 d0 f7
# reset vector
FFFC: 00 06
`)
	cpu.SP = 0xFF

	for i := 0; cpu.PC != 0x0618; i++ {
		if i > 1000 {
			t.Fatalf("program didn't end, PC = %04X", cpu.PC)
		}
		cpu.Step()
	}

	want := regs{PC: 0x0618, A: 0x00, X: 0x10, Y: 0x20, SP: 0xFF}
	got := cpuRegs(cpu)
	got.P, got.Cycles = 0, 0
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("registers mismatch (-want +got):\n%s", diff)
	}

	wantMem(t, mem, 0x01F0,
		0x0f, 0x0e, 0x0d, 0x0c, 0x0b, 0x0a, 0x09, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, 0x00)
	wantMem(t, mem, 0x0200,
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
		0x0f, 0x0e, 0x0d, 0x0c, 0x0b, 0x0a, 0x09, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, 0x00)
}

func TestAddressWrapping(t *testing.T) {
	t.Run("JMP indirect page bug", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, `
0200: 03
02FF: 00
0600: 6c ff 02
FFFC: 00 06`)
		r := cpu.Step()
		if cpu.PC != 0x0300 {
			t.Errorf("PC = %04X, want 0300", cpu.PC)
		}
		if r.Cycles != 5 {
			t.Errorf("cycles = %d, want 5", r.Cycles)
		}
	})
	t.Run("zero page X wraps", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, `
0001: 42
0600: b5 ff
FFFC: 00 06`)
		cpu.X = 2
		cpu.Step()
		if cpu.A != 0x42 {
			t.Errorf("A = %02X, want 42", cpu.A)
		}
		if cpu.EffectiveAddress() != 0x0001 {
			t.Errorf("effective address = %04X, want 0001", cpu.EffectiveAddress())
		}
	})
	t.Run("indirect Y pointer wraps", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, `
0000: 03
00FF: 00
0300: 99
0600: b1 ff
FFFC: 00 06`)
		cpu.Step()
		if cpu.A != 0x99 {
			t.Errorf("A = %02X, want 99", cpu.A)
		}
	})
}

func TestInstructionCycles(t *testing.T) {
	tests := []struct {
		name    string
		pc      uint16
		code    string
		x       uint8
		zero    bool
		crossed bool
		taken   bool
		want    int64
	}{
		{name: "LDA abs,X", pc: 0x0600, code: "bd f0 02", x: 0x0F, want: 4},
		{name: "LDA abs,X page cross", pc: 0x0600, code: "bd f0 02", x: 0x10, crossed: true, want: 5},
		{name: "STA abs,X", pc: 0x0600, code: "9d f0 02", x: 0x00, want: 5},
		{name: "INC abs,X", pc: 0x0600, code: "fe f0 02", x: 0x00, want: 7},
		{name: "BNE not taken", pc: 0x0600, code: "d0 02", zero: true, want: 2},
		{name: "BNE taken", pc: 0x0600, code: "d0 02", taken: true, want: 3},
		{name: "BNE taken page cross", pc: 0x06F0, code: "d0 20", taken: true, crossed: true, want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dump := strconv.FormatUint(uint64(tt.pc), 16) + ": " + tt.code + "\nFFFC: " +
				hex.EncodeToString([]byte{uint8(tt.pc), uint8(tt.pc >> 8)})
			cpu, mem := loadCPUWith(t, dump)
			cpu.X = tt.x
			cpu.SetFlag(Zero, tt.zero)

			r := cpu.Step()
			if r.Cycles != tt.want {
				t.Errorf("cycles = %d, want %d", r.Cycles, tt.want)
			}
			if n := InstructionCycles(mem[tt.pc], tt.crossed, tt.taken); int64(n) != tt.want {
				t.Errorf("InstructionCycles = %d, want %d", n, tt.want)
			}
		})
	}
}

// recordingDebugger records the debugger calls made by the CPU.
type recordingDebugger struct {
	nopDebugger
	cpu        *CPU
	traces     []uint16
	interrupts []string
	breakAt    uint16
	resets     int
}

func (d *recordingDebugger) Reset() { d.resets++ }

func (d *recordingDebugger) Trace(pc uint16) {
	d.traces = append(d.traces, pc)
	if pc == d.breakAt {
		d.cpu.RequestBreak("breakpoint")
	}
}

func (d *recordingDebugger) Interrupt(prevpc, curpc uint16, isNMI bool) {
	kind := "irq"
	if isNMI {
		kind = "nmi"
	}
	d.interrupts = append(d.interrupts, kind+" "+strconv.FormatUint(uint64(prevpc), 16)+">"+strconv.FormatUint(uint64(curpc), 16))
}

func TestNMI(t *testing.T) {
	cpu, mem := loadCPUWith(t, `
0600: 4c 00 06
0700: 40
FFFA: 00 07 00 06`)
	dbg := &recordingDebugger{cpu: cpu}
	cpu.SetDebugger(dbg)

	cpu.setNMIflag()
	stepN(t, cpu, 1) // the edge is detected during JMP

	r := cpu.Step()
	if r.Cycles != 7 {
		t.Errorf("NMI sequence took %d cycles, want 7", r.Cycles)
	}
	if cpu.PC != 0x0700 {
		t.Fatalf("PC = %04X, want 0700", cpu.PC)
	}
	if !cpu.Flag(Interrupt) {
		t.Error("I flag should be set")
	}
	if cpu.SP != 0xFA {
		t.Errorf("SP = %02X, want FA", cpu.SP)
	}
	// Pushed P has the reserved bit set, and B clear.
	wantMem(t, mem, 0x01FB, uint8(Interrupt|Reserved), 0x00, 0x06)
	if diff := cmp.Diff([]string{"nmi 600>700"}, dbg.interrupts); diff != "" {
		t.Errorf("interrupts mismatch (-want +got):\n%s", diff)
	}

	// The NMI line stays high: no new edge, no new NMI after RTI.
	stepN(t, cpu, 2)
	if cpu.PC != 0x0600 || len(dbg.interrupts) != 1 {
		t.Errorf("PC = %04X, %d interrupts, want 0600 and 1", cpu.PC, len(dbg.interrupts))
	}
}

func TestIRQ(t *testing.T) {
	cpu, _ := loadCPUWith(t, `
0600: ea 58 ea ea
0800: ea
FFFC: 00 06 00 08`)
	dbg := &recordingDebugger{cpu: cpu}
	cpu.SetDebugger(dbg)

	cpu.SetIRQSource(hwdefs.External)

	// Masked while I is set.
	stepN(t, cpu, 1)
	if cpu.PC != 0x0601 {
		t.Fatalf("PC = %04X, want 0601", cpu.PC)
	}

	// CLI takes effect after the next instruction.
	stepN(t, cpu, 2)
	if cpu.PC != 0x0603 {
		t.Fatalf("PC = %04X, want 0603", cpu.PC)
	}
	stepN(t, cpu, 1)
	if cpu.PC != 0x0800 {
		t.Fatalf("PC = %04X, want 0800", cpu.PC)
	}
	if diff := cmp.Diff([]string{"irq 603>800"}, dbg.interrupts); diff != "" {
		t.Errorf("interrupts mismatch (-want +got):\n%s", diff)
	}
}

func TestBRK(t *testing.T) {
	cpu, mem := loadCPUWith(t, `
0600: 00 ff
0800: ea
FFFC: 00 06 00 08`)
	r := cpu.Step()
	if r.Cycles != 7 {
		t.Errorf("BRK took %d cycles, want 7", r.Cycles)
	}
	if cpu.PC != 0x0800 {
		t.Fatalf("PC = %04X, want 0800", cpu.PC)
	}
	// Return address skips the padding byte, pushed P has B set.
	wantMem(t, mem, 0x01FB, uint8(Interrupt|Reserved|Break), 0x02, 0x06)
}

func TestResetSequence(t *testing.T) {
	// 10 instructions from the reset vector, through a subroutine.
	cpu, _ := loadCPUWith(t, `
8000: a2 ff 9a a9 10 20 10 80 18 69 05 4c 20 80
8010: e8 60
8020: ea
FFFC: 00 80`)
	if cpu.PC != 0x8000 || cpu.Cycles != 7 {
		t.Fatalf("after reset PC = %04X, cycles = %d, want 8000 and 7", cpu.PC, cpu.Cycles)
	}

	stepN(t, cpu, 10)
	want := regs{
		PC:     0x8021,
		A:      0x15,
		X:      0x00,
		SP:     0xFF,
		P:      Interrupt,
		Cycles: 7 + 2 + 2 + 2 + 6 + 2 + 6 + 2 + 2 + 3 + 2,
	}
	if diff := cmp.Diff(want, cpuRegs(cpu)); diff != "" {
		t.Errorf("registers mismatch (-want +got):\n%s", diff)
	}
}

func TestSoftReset(t *testing.T) {
	cpu, _ := loadCPUWith(t, `
0600: a9 42 ea
FFFC: 00 06`)
	dbg := &recordingDebugger{cpu: cpu}
	cpu.SetDebugger(dbg)
	stepN(t, cpu, 1)

	cpu.Reset(hwdefs.SoftReset)
	if cpu.A != 0x42 {
		t.Errorf("A = %02X, soft reset should keep it", cpu.A)
	}
	if cpu.SP != 0xFA {
		t.Errorf("SP = %02X, want FA", cpu.SP)
	}
	if cpu.PC != 0x0600 {
		t.Errorf("PC = %04X, want 0600", cpu.PC)
	}
	if dbg.resets != 1 {
		t.Errorf("debugger Reset called %d times, want 1", dbg.resets)
	}
}

func TestHalt(t *testing.T) {
	cpu, _ := loadCPUWith(t, `
0600: ea 02 ea
FFFC: 00 06`)
	stepN(t, cpu, 1)

	r := cpu.Step()
	if r.Break != BreakHalted {
		t.Fatalf("break = %q, want %q", r.Break, BreakHalted)
	}
	if !cpu.IsHalted() {
		t.Fatal("CPU should be halted")
	}

	// Stays halted until reset.
	if r := cpu.Step(); r.Break != BreakHalted || r.Cycles != 0 {
		t.Errorf("step on halted CPU = %+v", r)
	}
	if r := cpu.Run(1000); r.Break != BreakHalted || r.Cycles != 0 {
		t.Errorf("run on halted CPU = %+v", r)
	}

	cpu.Reset(hwdefs.HardReset)
	if cpu.IsHalted() {
		t.Error("reset should restart the CPU")
	}
}

func TestStepCycle(t *testing.T) {
	cpu, _ := loadCPUWith(t, `
0200: 77
0600: ad 00 02 ea
FFFC: 00 06`)

	phases := []Phase{PhaseOpcodeFetch, PhaseOperandFetch, PhaseOperandFetch, PhaseRead}
	for i, want := range phases {
		r := cpu.StepCycle()
		if r.Cycles != 1 {
			t.Fatalf("cycle %d: ran %d cycles, want 1", i, r.Cycles)
		}
		if cpu.Phase() != want {
			t.Errorf("cycle %d: phase = %s, want %s", i, cpu.Phase(), want)
		}
	}
	if !cpu.InstructionInFlight() {
		t.Fatal("an instruction should be in flight")
	}
	if cpu.EffectiveAddress() != 0x0200 {
		t.Errorf("effective address = %04X, want 0200", cpu.EffectiveAddress())
	}

	// Next cycle is the NOP opcode fetch.
	cpu.StepCycle()
	if !cpu.IsFetchingOpcode() {
		t.Errorf("phase = %s, want opcode fetch", cpu.Phase())
	}
	if cpu.A != 0x77 {
		t.Errorf("A = %02X, want 77", cpu.A)
	}

	// Step completes the NOP.
	r := cpu.Step()
	if r.Cycles != 1 {
		t.Errorf("step completing NOP ran %d cycles, want 1", r.Cycles)
	}
	if cpu.PC != 0x0604 || cpu.InstructionInFlight() {
		t.Errorf("PC = %04X, in flight = %t", cpu.PC, cpu.InstructionInFlight())
	}
}

func TestStepCycleWrite(t *testing.T) {
	cpu, mem := loadCPUWith(t, `
0600: 8d 00 02
FFFC: 00 06`)
	cpu.A = 0x33
	for range 3 {
		cpu.StepCycle()
	}
	if cpu.IsWritingMemory() {
		t.Fatal("write happens on the 4th cycle")
	}
	cpu.StepCycle()
	if !cpu.IsWritingMemory() {
		t.Fatalf("phase = %s, want write", cpu.Phase())
	}
	if mem[0x0200] != 0x33 {
		t.Errorf("mem[0200] = %02X, want 33", mem[0x0200])
	}
}

func TestBreakOnTrace(t *testing.T) {
	cpu, _ := loadCPUWith(t, `
0600: ea ea ea
FFFC: 00 06`)
	dbg := &recordingDebugger{cpu: cpu, breakAt: 0x0602}
	cpu.SetDebugger(dbg)

	r := cpu.Run(100)
	if r.Break != "breakpoint" {
		t.Fatalf("break = %q, want breakpoint", r.Break)
	}
	if cpu.PC != 0x0602 {
		t.Errorf("PC = %04X, want 0602", cpu.PC)
	}
	if r.Cycles != 4 {
		t.Errorf("ran %d cycles, want 4", r.Cycles)
	}
	if diff := cmp.Diff([]uint16{0x0600, 0x0601, 0x0602}, dbg.traces); diff != "" {
		t.Errorf("traces mismatch (-want +got):\n%s", diff)
	}

	// A cycle step also stops before the opcode fetch.
	r = cpu.StepCycle()
	if !r.Stopped() || r.Cycles != 0 {
		t.Errorf("StepCycle = %+v, want a break with no cycle", r)
	}
}

func TestOpenBus(t *testing.T) {
	cpu := NewCPU(nil)
	cpu.InitBus()
	if got := cpu.Bus.Peek8(0x5123); got != 0x51 {
		t.Errorf("open bus peek = %02X, want 51", got)
	}
	cpu.Bus.Write8(0x6000, 0xFF)
	if got := cpu.Bus.Read8(0x6000); got != 0x60 {
		t.Errorf("open bus read = %02X, want 60", got)
	}

	// RAM is mirrored up to $1FFF.
	cpu.Bus.Write8(0x0812, 0xAB)
	if got := cpu.Bus.Peek8(0x1812); got != 0xAB {
		t.Errorf("RAM mirror = %02X, want AB", got)
	}
}
