package debugger

import (
	"strings"

	"github.com/go-faster/errors"

	"nesdbg/hw"
)

// CPUReg identifies a CPU register, as the item of a CPU state breakpoint.
type CPUReg uint8

const (
	RegA CPUReg = iota
	RegX
	RegY
	RegSP
	RegP
	RegPC

	NumCPURegs = 6
)

var cpuRegNames = [NumCPURegs]string{"A", "X", "Y", "SP", "P", "PC"}

func (r CPUReg) String() string {
	if int(r) < len(cpuRegNames) {
		return cpuRegNames[r]
	}
	return "?"
}

// CPURegByName returns the register with the given name (case insensitive).
func CPURegByName(name string) (CPUReg, bool) {
	for i, n := range cpuRegNames {
		if strings.EqualFold(n, name) {
			return CPUReg(i), true
		}
	}
	return 0, false
}

func cpuRegValue(cpu *hw.CPU, r CPUReg) uint16 {
	switch r {
	case RegA:
		return uint16(cpu.A)
	case RegX:
		return uint16(cpu.X)
	case RegY:
		return uint16(cpu.Y)
	case RegSP:
		return uint16(cpu.SP)
	case RegP:
		return uint16(cpu.P)
	case RegPC:
		return cpu.PC
	}
	return 0
}

func setCPURegValue(cpu *hw.CPU, r CPUReg, val uint16) {
	switch r {
	case RegA:
		cpu.A = uint8(val)
	case RegX:
		cpu.X = uint8(val)
	case RegY:
		cpu.Y = uint8(val)
	case RegSP:
		cpu.SP = uint8(val)
	case RegP:
		cpu.P = hw.P(val)
	case RegPC:
		cpu.PC = val
	}
}

// A Bitfield is a named group of bits of a register.
type Bitfield struct {
	Name   string
	Shift  uint8
	Width  uint8
	Values []string // optional names of each value
}

// Get extracts the bitfield value from the register value v.
func (bf Bitfield) Get(v uint16) uint16 {
	return (v >> bf.Shift) & (1<<bf.Width - 1)
}

// Set returns v with the bitfield set to x.
func (bf Bitfield) Set(v, x uint16) uint16 {
	mask := uint16(1<<bf.Width-1) << bf.Shift
	return v&^mask | (x<<bf.Shift)&mask
}

// Format returns the bitfield value of v, by name if it has one.
func (bf Bitfield) Format(v uint16) string {
	x := bf.Get(v)
	if int(x) < len(bf.Values) {
		return bf.Values[x]
	}
	return hex16(x, bf.Width > 8)
}

// A RegisterInfo describes a hardware register.
type RegisterInfo struct {
	Name      string
	Addr      uint16 // bus address, 0 for CPU registers
	Width     uint8  // in bits
	Bitfields []Bitfield
}

// A RegisterGroup is a set of registers shown together.
type RegisterGroup struct {
	Name      string
	Registers []RegisterInfo
}

// Register looks a register up by name (case insensitive).
func (g *RegisterGroup) Register(name string) (int, bool) {
	for i, r := range g.Registers {
		if strings.EqualFold(r.Name, name) {
			return i, true
		}
	}
	return 0, false
}

func bit(name string, shift uint8) Bitfield {
	return Bitfield{Name: name, Shift: shift, Width: 1}
}

var dutyNames = []string{"12.5%", "25%", "50%", "75%"}

// CPURegisters describes the 6502 registers.
var CPURegisters = RegisterGroup{
	Name: "cpu",
	Registers: []RegisterInfo{
		RegA:  {Name: "A", Width: 8},
		RegX:  {Name: "X", Width: 8},
		RegY:  {Name: "Y", Width: 8},
		RegSP: {Name: "SP", Width: 8},
		RegP: {Name: "P", Width: 8, Bitfields: []Bitfield{
			bit("N", 7), bit("V", 6), bit("B", 4), bit("D", 3), bit("I", 2), bit("Z", 1), bit("C", 0),
		}},
		RegPC: {Name: "PC", Width: 16},
	},
}

func squareRegs(n string, base uint16) []RegisterInfo {
	return []RegisterInfo{
		{Name: "SQ" + n + "_VOL", Addr: base, Width: 8, Bitfields: []Bitfield{
			{Name: "Duty", Shift: 6, Width: 2, Values: dutyNames},
			bit("Halt", 5),
			bit("Constant", 4),
			{Name: "Volume", Shift: 0, Width: 4},
		}},
		{Name: "SQ" + n + "_SWEEP", Addr: base + 1, Width: 8, Bitfields: []Bitfield{
			bit("Enabled", 7),
			{Name: "Period", Shift: 4, Width: 3},
			bit("Negate", 3),
			{Name: "Shift", Shift: 0, Width: 3},
		}},
		{Name: "SQ" + n + "_LO", Addr: base + 2, Width: 8, Bitfields: []Bitfield{
			{Name: "TimerLow", Shift: 0, Width: 8},
		}},
		{Name: "SQ" + n + "_HI", Addr: base + 3, Width: 8, Bitfields: []Bitfield{
			{Name: "Length", Shift: 3, Width: 5},
			{Name: "TimerHigh", Shift: 0, Width: 3},
		}},
	}
}

// APURegisters describes the APU registers, at $4000-$4017.
var APURegisters = RegisterGroup{
	Name: "apu",
	Registers: append(append(squareRegs("1", 0x4000), squareRegs("2", 0x4004)...),
		RegisterInfo{Name: "TRI_LINEAR", Addr: 0x4008, Width: 8, Bitfields: []Bitfield{
			bit("Control", 7),
			{Name: "Reload", Shift: 0, Width: 7},
		}},
		RegisterInfo{Name: "TRI_LO", Addr: 0x400A, Width: 8, Bitfields: []Bitfield{
			{Name: "TimerLow", Shift: 0, Width: 8},
		}},
		RegisterInfo{Name: "TRI_HI", Addr: 0x400B, Width: 8, Bitfields: []Bitfield{
			{Name: "Length", Shift: 3, Width: 5},
			{Name: "TimerHigh", Shift: 0, Width: 3},
		}},
		RegisterInfo{Name: "NOISE_VOL", Addr: 0x400C, Width: 8, Bitfields: []Bitfield{
			bit("Halt", 5),
			bit("Constant", 4),
			{Name: "Volume", Shift: 0, Width: 4},
		}},
		RegisterInfo{Name: "NOISE_LO", Addr: 0x400E, Width: 8, Bitfields: []Bitfield{
			bit("Mode", 7),
			{Name: "Period", Shift: 0, Width: 4},
		}},
		RegisterInfo{Name: "NOISE_HI", Addr: 0x400F, Width: 8, Bitfields: []Bitfield{
			{Name: "Length", Shift: 3, Width: 5},
		}},
		RegisterInfo{Name: "DMC_FREQ", Addr: 0x4010, Width: 8, Bitfields: []Bitfield{
			bit("IRQ", 7),
			bit("Loop", 6),
			{Name: "Rate", Shift: 0, Width: 4},
		}},
		RegisterInfo{Name: "DMC_RAW", Addr: 0x4011, Width: 8, Bitfields: []Bitfield{
			{Name: "Load", Shift: 0, Width: 7},
		}},
		RegisterInfo{Name: "DMC_START", Addr: 0x4012, Width: 8, Bitfields: []Bitfield{
			{Name: "Addr", Shift: 0, Width: 8},
		}},
		RegisterInfo{Name: "DMC_LEN", Addr: 0x4013, Width: 8, Bitfields: []Bitfield{
			{Name: "Length", Shift: 0, Width: 8},
		}},
		RegisterInfo{Name: "SND_CHN", Addr: 0x4015, Width: 8, Bitfields: []Bitfield{
			bit("DMC", 4),
			bit("Noise", 3),
			bit("Triangle", 2),
			bit("Square2", 1),
			bit("Square1", 0),
		}},
		RegisterInfo{Name: "FRAME_COUNTER", Addr: 0x4017, Width: 8, Bitfields: []Bitfield{
			{Name: "Mode", Shift: 7, Width: 1, Values: []string{"4-step", "5-step"}},
			bit("IRQInhibit", 6),
		}},
	),
}

// apuShadow keeps the last value written to each APU register. Most of them
// are write-only: reading the bus doesn't tell what was written.
type apuShadow [0x18]uint8

func (s *apuShadow) record(addr uint16, val uint8) {
	if addr >= 0x4000 && addr <= 0x4017 && addr != 0x4014 && addr != 0x4016 {
		s[addr-0x4000] = val
	}
}

func (s *apuShadow) value(addr uint16) uint8 {
	if addr < 0x4000 || addr > 0x4017 {
		return 0
	}
	return s[addr-0x4000]
}

func hex16(v uint16, wide bool) string {
	const hextable = "0123456789ABCDEF"
	if wide {
		return string([]byte{'$', hextable[v>>12&0xF], hextable[v>>8&0xF], hextable[v>>4&0xF], hextable[v&0xF]})
	}
	return string([]byte{'$', hextable[v>>4&0xF], hextable[v&0xF]})
}

// RegisterValue returns the value of a register of the "cpu" or "apu" group.
// APU registers read as the last value written to them.
func (d *Debugger) RegisterValue(group, name string) (uint16, error) {
	switch group {
	case CPURegisters.Name:
		if idx, ok := CPURegisters.Register(name); ok {
			return cpuRegValue(d.cpu, CPUReg(idx)), nil
		}
	case APURegisters.Name:
		if idx, ok := APURegisters.Register(name); ok {
			return uint16(d.apuRegs.value(APURegisters.Registers[idx].Addr)), nil
		}
	default:
		return 0, errors.Wrapf(ErrNotFound, "register group %q", group)
	}
	return 0, errors.Wrapf(ErrNotFound, "register %s/%s", group, name)
}

// SetRegisterValue sets a register of the "cpu" or "apu" group. APU registers
// are written through the CPU bus.
func (d *Debugger) SetRegisterValue(group, name string, val uint16) error {
	switch group {
	case CPURegisters.Name:
		if idx, ok := CPURegisters.Register(name); ok {
			setCPURegValue(d.cpu, CPUReg(idx), val)
			return nil
		}
	case APURegisters.Name:
		if idx, ok := APURegisters.Register(name); ok {
			addr := APURegisters.Registers[idx].Addr
			d.cpu.Bus.Write8(addr, uint8(val))
			d.apuRegs.record(addr, uint8(val))
			return nil
		}
	default:
		return errors.Wrapf(ErrNotFound, "register group %q", group)
	}
	return errors.Wrapf(ErrNotFound, "register %s/%s", group, name)
}
