package emu

import (
	"github.com/go-faster/errors"

	"nesdbg/emu/debugger"
	"nesdbg/emu/log"
	"nesdbg/hw"
	"nesdbg/hw/apu"
	"nesdbg/hw/hwdefs"
	"nesdbg/hw/mappers"
	"nesdbg/ines"
)

// cycles run between two checks of the PPU frame counter.
const cyclesPerScanline = 114

// NES is an emulated console with a cartridge inserted and a debugger
// attached. Everything it owns is per-instance, several NES can run side by
// side. A NES is not safe for concurrent use.
type NES struct {
	PPU    *hw.PPU
	APU    *apu.APU
	Rom    *ines.Rom
	Mapper mappers.Mapper

	cpu *hw.CPU
	dbg *debugger.Debugger
}

// New powers up a NES with rom inserted, then applies the debugger settings
// of cfg.
func New(rom *ines.Rom, cfg Config) (*NES, error) {
	ppu := hw.NewPPU()
	ppu.InitBus()
	cpu := hw.NewCPU(ppu)
	a := apu.New(cpu)
	cpu.APU = a
	cpu.InitBus()

	mapper, err := mappers.Load(rom, cpu, ppu)
	if err != nil {
		return nil, errors.Wrap(err, "power up failed")
	}

	dbg := debugger.New(cpu, ppu, debugger.Config{TraceSize: cfg.General.TraceSize})
	dbg.SetAbsResolver(mapper)

	nes := &NES{
		PPU:    ppu,
		APU:    a,
		Rom:    rom,
		Mapper: mapper,
		cpu:    cpu,
		dbg:    dbg,
	}

	a.OnEvent = nes.onAPUEvent
	ppu.OnEvent = nes.onPPUEvent
	if cfg.TraceOut != nil {
		cpu.SetTraceOutput(cfg.TraceOut)
	}

	if err := cfg.Debugger.apply(dbg); err != nil {
		return nil, err
	}

	nes.Reset(hwdefs.HardReset)
	return nes, nil
}

func (nes *NES) onAPUEvent(ev apu.Event) {
	var item uint16
	if ev == apu.EventSequencerStep {
		item = uint16(nes.APU.State().Step)
	}
	nes.dbg.APUEvent(ev, item)
}

func (nes *NES) onPPUEvent(ev hw.PPUEvent) {
	nes.dbg.PPUEvent(ev, uint16(nes.PPU.Scanline))
}

// Reset performs a soft reset (reset button) or a hard reset (power cycle).
func (nes *NES) Reset(soft bool) {
	nes.PPU.Reset()
	nes.APU.Reset(soft)
	nes.cpu.Reset(soft)
}

func (nes *NES) Debugger() *debugger.Debugger { return nes.dbg }
func (nes *NES) CPU() *hw.CPU                  { return nes.cpu }

// Step executes one instruction.
func (nes *NES) Step() hw.StepResult { return nes.cpu.Step() }

// StepCycle executes one CPU cycle.
func (nes *NES) StepCycle() hw.StepResult { return nes.cpu.StepCycle() }

// RunFrame runs until the PPU starts a new frame, or a break.
func (nes *NES) RunFrame() hw.StepResult {
	var res hw.StepResult
	frame := nes.PPU.Frame
	for nes.PPU.Frame == frame {
		r := nes.cpu.Run(cyclesPerScanline)
		res.Cycles += r.Cycles
		if r.Stopped() {
			res.Break = r.Break
			break
		}
	}
	return res
}

// RunUntilBreak runs until a break, or until maxCycles have been executed.
// It never returns before a break if maxCycles is 0 or less.
func (nes *NES) RunUntilBreak(maxCycles int64) hw.StepResult {
	if maxCycles > 0 {
		return nes.cpu.Run(maxCycles)
	}
	var res hw.StepResult
	for !res.Stopped() {
		r := nes.cpu.Run(debugger.NTSCCyclesPerFrame)
		res.Cycles += r.Cycles
		res.Break = r.Break
	}
	return res
}

// Goto runs until the CPU is about to execute the instruction at pc, using a
// temporary breakpoint. The breakpoint is removed if maxCycles elapse first.
func (nes *NES) Goto(pc uint16, maxCycles int64) (hw.StepResult, error) {
	bps := nes.dbg.Breakpoints()
	bp := nes.dbg.ExecBreakpointAt(debugger.LiveAddr(pc))
	bp.Temporary = true

	idx, err := bps.FindExactMatch(bp, false)
	owned := err != nil
	if owned {
		if idx, err = bps.Add(bp); err != nil {
			return hw.StepResult{}, errors.Wrapf(err, "goto $%04X", pc)
		}
	}

	res := nes.RunUntilBreak(maxCycles)

	if owned {
		if cur, err := bps.Breakpoint(idx); err == nil && cur.Temporary {
			bps.Remove(idx)
		}
	}
	log.ModEmu.DebugZ("goto").
		Hex16("target", pc).
		Hex16("PC", nes.cpu.PC).
		Int64("cycles", res.Cycles).
		End()
	return res, nil
}

// Peek reads the CPU bus without side effects.
func (nes *NES) Peek(addr uint16) uint8 { return nes.cpu.Bus.Peek8(addr) }

// Poke writes to the CPU bus, as the CPU would.
func (nes *NES) Poke(addr uint16, val uint8) { nes.cpu.Bus.Write8(addr, val) }

func (nes *NES) APUState() apu.State { return nes.APU.State() }

func (nes *NES) RegisterValue(group, name string) (uint16, error) {
	return nes.dbg.RegisterValue(group, name)
}

func (nes *NES) SetRegisterValue(group, name string, val uint16) error {
	return nes.dbg.SetRegisterValue(group, name, val)
}
