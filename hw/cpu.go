package hw

import (
	"io"
	"iter"

	"nesdbg/emu/log"
	"nesdbg/hw/apu"
	"nesdbg/hw/hwdefs"
	"nesdbg/hw/hwio"
)

// Locations reserved for vector pointers.
const (
	NMIVector   = uint16(0xFFFA) // Non-Maskable Interrupt
	ResetVector = uint16(0xFFFC) // Reset
	IRQVector   = uint16(0xFFFE) // Interrupt Request
)

// Break reasons reported in StepResult.
const (
	BreakHalted = "cpu halted"
)

type CPU struct {
	Bus *hwio.Table

	RAM hwio.Mem `hwio:"bank=0,offset=0x0,size=0x800,vsize=0x2000"`

	PPU *PPU // non-nil when there's a PPU.
	APU *apu.APU
	DMA DMA

	// Non-nil when execution tracing is enabled.
	tracer *tracer
	dbg    Debugger

	io ioPorts

	Cycles      int64 // CPU cycles
	masterClock int64

	// cpu registers
	A, X, Y, SP uint8
	PC          uint16
	P           P

	// interrupt handling
	nmiFlag, prevNmiFlag bool
	needNmi, prevNeedNmi bool
	runIRQ, prevRunIRQ   bool
	irqFlag              hwdefs.IRQSource

	// instruction in flight
	opcode uint8
	opPC   uint16
	ea     uint16
	phase  Phase

	halted   bool
	breakMsg string

	// cycle stepping
	next  func() (struct{}, bool)
	stop  func()
	yield func(struct{}) bool
}

// NewCPU creates a new CPU at power-up state.
func NewCPU(ppu *PPU) *CPU {
	cpu := &CPU{
		Bus: hwio.NewTable("cpu"),
		SP:  0xFD,
		PPU: ppu,
		dbg: nopDebugger{},
	}
	cpu.Bus.Unmapped = &cpu.io.openbus
	if ppu != nil {
		ppu.CPU = cpu
	}
	return cpu
}

func (c *CPU) InitBus() {
	hwio.MustInitRegs(c)
	// CPU internal RAM, mirrored.
	c.Bus.MapBank(0x0000, c, 0)

	if c.PPU != nil {
		// Map the 8 PPU registers (bank 1) from 0x2000 to 0x3FFF.
		for off := uint16(0x2000); off < 0x4000; off += 8 {
			c.Bus.MapBank(off, c.PPU, 1)
		}
	}

	// Map OAMDMA register.
	c.DMA.InitBus(c)
	c.Bus.MapBank(0x4014, &c.DMA, 0)

	c.io.initBus(c)
	c.Bus.MapBank(0x4016, &c.io, 0)

	if c.APU != nil {
		c.Bus.MapBank(0x4000, &c.APU.Square1, 0)
		c.Bus.MapBank(0x4004, &c.APU.Square2, 0)
		c.Bus.MapBank(0x4008, &c.APU.Triangle, 0)
		c.Bus.MapBank(0x400C, &c.APU.Noise, 0)
		c.Bus.MapBank(0x4010, &c.APU.DMC, 0)
		c.Bus.MapBank(0x4015, c.APU, 0)
	}
}

// Reset resets the CPU. A soft reset only affects SP and the interrupt flag,
// as the RESET line does on hardware. A reset during a cycle step first
// completes the instruction in flight.
func (c *CPU) Reset(soft bool) {
	c.endCycleStepping()

	if soft {
		c.SP -= 0x03
		c.P.setFlags(Interrupt)
	} else {
		c.A = 0x00
		c.X = 0x00
		c.Y = 0x00
		c.SP = 0xFD
		c.P = Interrupt
	}
	c.runIRQ, c.prevRunIRQ = false, false
	c.needNmi, c.prevNeedNmi = false, false
	c.irqFlag = 0
	c.halted = false
	c.breakMsg = ""

	c.DMA.reset()

	// Directly read from the bus to avoid side effects.
	c.PC = hwio.Peek16(c.Bus, ResetVector)
	c.opPC = c.PC
	c.ea = ResetVector

	c.Cycles = -1
	c.nmiFlag = false
	c.prevNmiFlag = false
	c.masterClock = ntscCPUDivider

	// After a reset/power up, the CPU takes burns 8 cycles
	// before going on with ROM execution.
	c.phase = PhaseIdle
	for i := 0; i < 8; i++ {
		c.cycleBegin(true)
		c.cycleEnd(true)
	}

	log.ModCPU.InfoZ("reset").
		Bool("soft", soft).
		Hex16("PC", c.PC).
		End()

	c.dbg.Reset()
}

// StepResult describes what happened during a call to Step, StepCycle or Run.
type StepResult struct {
	Cycles int64  // number of CPU cycles executed
	Break  string // non-empty if execution stopped because of a break request
}

// Stopped reports whether execution stopped on a break request.
func (r StepResult) Stopped() bool { return r.Break != "" }

// RequestBreak asks the CPU to stop at the next instruction boundary. When
// called from Debugger.Trace, the instruction at PC is not executed.
func (c *CPU) RequestBreak(msg string) {
	if c.breakMsg == "" {
		c.breakMsg = msg
	}
}

func (c *CPU) result(start int64) StepResult {
	r := StepResult{Cycles: c.Cycles - start, Break: c.breakMsg}
	c.breakMsg = ""
	return r
}

// Step executes one full instruction, or one interrupt sequence. If a
// previous call to StepCycle left an instruction in flight, Step only
// completes it.
func (c *CPU) Step() StepResult {
	start := c.Cycles
	if c.halted {
		return StepResult{Break: BreakHalted}
	}
	if c.next != nil {
		c.endCycleStepping()
		if c.Cycles != start || c.breakMsg != "" {
			return c.result(start)
		}
	}
	c.step()
	return c.result(start)
}

// StepCycle executes a single CPU cycle.
func (c *CPU) StepCycle() StepResult {
	start := c.Cycles
	if c.halted {
		return StepResult{Break: BreakHalted}
	}
	if c.next == nil {
		c.next, c.stop = iter.Pull(c.cycles)
	}
	if _, ok := c.next(); !ok {
		// A break was requested before any cycle could run.
		c.next, c.stop = nil, nil
	}
	return c.result(start)
}

// Run executes instructions until ncycles have been executed or a break has
// been requested.
func (c *CPU) Run(ncycles int64) StepResult {
	start := c.Cycles
	c.endCycleStepping()

	until := start + ncycles
	for c.Cycles < until && c.breakMsg == "" {
		if !c.step() {
			break
		}
	}

	if c.halted && c.breakMsg == "" {
		c.breakMsg = BreakHalted
	}
	return c.result(start)
}

// cycles is the sequence pulled by StepCycle. It yields at the end of each
// CPU cycle.
func (c *CPU) cycles(yield func(struct{}) bool) {
	c.yield = yield
	defer func() { c.yield = nil }()

	for {
		if !c.step() || c.yield == nil || c.breakMsg != "" {
			return
		}
	}
}

// endCycleStepping completes the instruction left in flight by StepCycle.
func (c *CPU) endCycleStepping() {
	if c.stop != nil {
		c.stop()
	}
	c.next, c.stop = nil, nil
}

// InstructionInFlight reports whether a cycle step stopped in the middle of
// an instruction.
func (c *CPU) InstructionInFlight() bool {
	return c.next != nil
}

// step executes the next instruction, or the pending interrupt. It returns
// false if nothing was executed.
func (c *CPU) step() bool {
	if c.halted {
		return false
	}

	if c.prevRunIRQ || c.prevNeedNmi {
		c.IRQ()
		return true
	}

	c.opPC = c.PC
	c.dbg.Trace(c.PC)
	if c.breakMsg != "" {
		return false
	}
	c.traceOp()

	c.opcode = c.read(c.PC, PhaseOpcodeFetch)
	c.PC++
	ops[c.opcode](c)

	if c.halted {
		log.ModCPU.WarnZ("CPU halted").
			Hex16("PC", c.opPC).
			Hex8("opcode", c.opcode).
			End()
		c.dbg.Break(BreakHalted)
		c.RequestBreak(BreakHalted)
	}
	return true
}

func (c *CPU) halt() {
	c.halted = true
}

func (c *CPU) IsHalted() bool {
	return c.halted
}

// EffectiveAddress returns the address resolved by the addressing mode of the
// instruction in flight, or of the last executed one.
func (c *CPU) EffectiveAddress() uint16 { return c.ea }

// Phase returns the kind of the current (or last) bus cycle.
func (c *CPU) Phase() Phase { return c.phase }

func (c *CPU) IsFetchingOpcode() bool { return c.phase == PhaseOpcodeFetch }
func (c *CPU) IsWritingMemory() bool  { return c.phase.IsWrite() }

// CurrentOpcode returns the opcode and address of the instruction in flight,
// or of the last executed one.
func (c *CPU) CurrentOpcode() (opcode uint8, pc uint16) {
	return c.opcode, c.opPC
}

// Flag reports whether the status flag f is set.
func (c *CPU) Flag(f P) bool { return c.P.hasFlag(f) }

// SetFlag sets or clears the status flag f.
func (c *CPU) SetFlag(f P, v bool) { c.P.setFlag(f, v) }

const (
	ntscStartClockCount = 6
	ntscEndClockCount   = 6
	ntscCPUDivider      = 12

	ppuOffset = 1
)

func (c *CPU) cycleBegin(forRead bool) {
	if forRead {
		c.masterClock += ntscStartClockCount - 1
	} else {
		c.masterClock += ntscStartClockCount + 1
	}
	c.Cycles++

	if c.PPU != nil {
		c.PPU.Run(uint64(c.masterClock - ppuOffset))
	}
	if c.APU != nil {
		c.APU.Tick()
	}
}

func (c *CPU) cycleEnd(forRead bool) {
	if forRead {
		c.masterClock += ntscEndClockCount + 1
	} else {
		c.masterClock += ntscEndClockCount - 1
	}

	if c.PPU != nil {
		c.PPU.Run(uint64(c.masterClock - ppuOffset))
	}

	c.handleInterrupts()

	if c.yield != nil && !c.yield(struct{}{}) {
		// The cycle stepper is being stopped, run the rest of the instruction
		// without yielding.
		c.yield = nil
	}
}

func (c *CPU) read(addr uint16, phase Phase) uint8 {
	c.DMA.processPending(addr)
	c.phase = phase
	c.cycleBegin(true)
	val := c.Bus.Read8(addr)
	c.dbg.WatchRead(addr, val)
	c.cycleEnd(true)
	return val
}

func (c *CPU) write(addr uint16, val uint8, phase Phase) {
	c.phase = phase
	c.cycleBegin(false)
	c.Bus.Write8(addr, val)
	c.dbg.WatchWrite(addr, val)
	c.cycleEnd(false)
}

func (c *CPU) Read8(addr uint16) uint8 {
	return c.read(addr, PhaseRead)
}

func (c *CPU) Write8(addr uint16, val uint8) {
	c.write(addr, val, PhaseWrite)
}

func (c *CPU) dummyRead(addr uint16) {
	c.read(addr, PhaseDummyRead)
}

func (c *CPU) dummyWrite(addr uint16, val uint8) {
	c.write(addr, val, PhaseDummyWrite)
}

func (c *CPU) Read16(addr uint16) uint16 {
	lo := c.Read8(addr)
	hi := c.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

/* stack operations */

func (c *CPU) push8(val uint8) {
	top := uint16(c.SP) + 0x0100
	c.Write8(top, val)
	c.SP -= 1
}

func (c *CPU) push16(val uint16) {
	c.push8(uint8(val >> 8))
	c.push8(uint8(val & 0xff))
}

func (c *CPU) pull8() uint8 {
	c.SP++
	top := uint16(c.SP) + 0x0100
	return c.Read8(top)
}

func (c *CPU) pull16() uint16 {
	lo := c.pull8()
	hi := c.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

/* interrupt handling */

// CurrentCycle returns the number of CPU cycles since power-up.
func (c *CPU) CurrentCycle() int64 { return c.Cycles }

// IRQSources returns the devices currently asserting the IRQ line.
func (c *CPU) IRQSources() hwdefs.IRQSource { return c.irqFlag }

func (c *CPU) SetIRQSource(src hwdefs.IRQSource)      { c.irqFlag |= src }
func (c *CPU) HasIRQSource(src hwdefs.IRQSource) bool { return (c.irqFlag & src) != 0 }
func (c *CPU) ClearIRQSource(src hwdefs.IRQSource)    { c.irqFlag &^= src }

func (c *CPU) setNMIflag()   { c.nmiFlag = true }
func (c *CPU) clearNMIflag() { c.nmiFlag = false }

// frameEnd is called by the PPU once the last visible scanline is done.
func (c *CPU) frameEnd() {
	if c.APU != nil {
		c.APU.EndFrame()
	}
	c.dbg.FrameEnd()
}

// StartDMCTransfer and StopDMCTransfer are called by the APU DMC channel.
func (c *CPU) StartDMCTransfer() { c.DMA.startDMCTransfer() }
func (c *CPU) StopDMCTransfer()  { c.DMA.stopDMCTransfer() }

func (c *CPU) handleInterrupts() {
	// The internal signal goes high during φ1 of the cycle that follows the one
	// where the edge is detected and stays high until the NMI has been handled.
	c.prevNeedNmi = c.needNmi

	// This edge detector polls the status of the NMI line during φ2 of each CPU
	// cycle (i.e. during the second half of each cycle) and raises an internal
	// signal if the input goes from being high during one cycle to being low
	// during the next.
	if !c.prevNmiFlag && c.nmiFlag {
		c.needNmi = true
	}
	c.prevNmiFlag = c.nmiFlag

	// It's really the status of the interrupt lines at the end of the
	// second-to-last cycle that matters. Keep the IRQ lines values from the
	// previous cycle. The before-to-last cycle's values will be used.
	c.prevRunIRQ = c.runIRQ
	c.runIRQ = c.irqFlag != 0 && !c.P.hasFlag(Interrupt)
}

// IRQ runs the 7 cycles interrupt sequence, for either a NMI or an IRQ.
func (c *CPU) IRQ() {
	c.opPC = c.PC
	c.dummyRead(c.PC)
	c.dummyRead(c.PC)

	prevpc := c.PC
	c.push16(c.PC)

	p := c.P | Reserved
	p &^= Break
	if c.needNmi {
		c.needNmi = false
		c.push8(uint8(p))

		c.P.setFlags(Interrupt)
		c.ea = NMIVector
		c.PC = c.Read16(NMIVector)
		c.dbg.Interrupt(prevpc, c.PC, true)
	} else {
		c.push8(uint8(p))

		c.P.setFlags(Interrupt)
		c.ea = IRQVector
		c.PC = c.Read16(IRQVector)
		c.dbg.Interrupt(prevpc, c.PC, false)
	}
}

/* tracing / debugging */

// SetTraceOutput enables the nestest-like execution trace, nil disables it.
func (c *CPU) SetTraceOutput(w io.Writer) {
	if w == nil {
		c.tracer = nil
		return
	}
	c.tracer = &tracer{w: w, d: c}
}

func (c *CPU) traceOp() {
	if c.tracer == nil {
		return
	}
	state := cpuState{
		A:     c.A,
		X:     c.X,
		Y:     c.Y,
		P:     c.P,
		SP:    c.SP,
		Clock: c.Cycles,
		PC:    c.PC,
	}
	if c.PPU != nil {
		state.PPUCycle = uint32(c.PPU.Cycle)
		state.Scanline = c.PPU.Scanline
	}
	c.tracer.write(state)
}

func (c *CPU) SetDebugger(dbg Debugger) {
	if dbg == nil {
		dbg = nopDebugger{}
	}
	c.dbg = dbg
}

// Disasm disassembles the instruction at pc, without side effects.
func (c *CPU) Disasm(pc uint16) DisasmOp {
	var buf [3]uint8
	buf[0] = c.Bus.Peek8(pc)
	n := Opcodes[buf[0]].Size
	for i := 1; i < int(n); i++ {
		buf[i] = c.Bus.Peek8(pc + uint16(i))
	}
	d := Disassemble(pc, buf[:n])
	c.annotate(&d)
	return d
}
