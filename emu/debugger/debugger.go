package debugger

import (
	"strconv"

	"github.com/go-faster/errors"

	"nesdbg/emu/log"
	"nesdbg/hw"
	"nesdbg/hw/apu"
)

// Config holds the debugger settings.
type Config struct {
	TraceSize int          // capacity of the trace ring, 0 for the default
	Events    *EventTables // nil for DefaultEvents
}

// BreakInfo describes why execution stopped.
type BreakInfo struct {
	Reason string
	PC     uint16
	Cycle  int64

	HasHit bool
	Hit    Hit // breakpoint that stopped execution, if HasHit
}

// A Debugger monitors a CPU: it checks breakpoints, logs code and data
// accesses, profiles execution markers, keeps a trace of the last executed
// instructions and the call stack.
//
// A Debugger is not safe for concurrent use, it must only be used from the
// goroutine driving the emulation.
type Debugger struct {
	cpu *hw.CPU
	ppu *hw.PPU

	events *EventTables
	abs    AbsResolver
	syms   SymbolResolver

	bps     BreakpointTable
	markers MarkerSet
	cdl     CDL
	trace   *TraceRing
	disasm  *DisasmCache
	apuRegs apuShadow
	cstack  callStack

	prevPC     LiveAddr
	prevOpcode uint8
	lastCycle  int64 // CPU cycle at the previous Trace call

	// After a break on an instruction, the next Trace call for the same
	// instruction doesn't check breakpoints again, so that execution can
	// resume.
	resumePC    uint16
	resumeCycle int64
	resumeArmed bool

	// break requested outside of Trace, delivered on next Trace.
	pending    BreakInfo
	hasPending bool

	last BreakInfo
}

// New returns a debugger attached to cpu. ppu may be nil.
func New(cpu *hw.CPU, ppu *hw.PPU, cfg Config) *Debugger {
	if cfg.Events == nil {
		cfg.Events = DefaultEvents()
	}
	d := &Debugger{
		cpu:    cpu,
		ppu:    ppu,
		events: cfg.Events,
		abs:    flatResolver{},
		trace:  NewTraceRing(cfg.TraceSize),
		disasm: newDisasmCache(cpu.Bus),
	}
	d.lastCycle = cpu.Cycles
	cpu.SetDebugger(d)
	return d
}

// SetAbsResolver sets what maps live addresses to absolute addresses. It's
// usually the cartridge mapper.
func (d *Debugger) SetAbsResolver(r AbsResolver) {
	if r == nil {
		r = flatResolver{}
	}
	d.abs = r
}

func (d *Debugger) SetSymbols(syms SymbolResolver) { d.syms = syms }
func (d *Debugger) Symbols() SymbolResolver       { return d.syms }

func (d *Debugger) Events() *EventTables          { return d.events }
func (d *Debugger) Breakpoints() *BreakpointTable { return &d.bps }
func (d *Debugger) CDL() *CDL                     { return &d.cdl }
func (d *Debugger) TraceRing() *TraceRing         { return d.trace }
func (d *Debugger) Disasm() *DisasmCache          { return d.disasm }

// AbsAddr returns the absolute address currently mapped at addr.
func (d *Debugger) AbsAddr(addr LiveAddr) AbsAddr {
	return resolveAbs(d.abs, addr)
}

// LastBreak returns the reason of the last break.
func (d *Debugger) LastBreak() BreakInfo { return d.last }

// CallStack returns the current call stack, innermost frame first.
func (d *Debugger) CallStack() []FrameInfo {
	return d.cstack.build(LiveAddr(d.cpu.PC), d.syms)
}

// APURegister returns the last value written to an APU register.
func (d *Debugger) APURegister(addr uint16) uint8 {
	return d.apuRegs.value(addr)
}

/* breakpoints */

// AddBreakpoint adds bp, unless an identical breakpoint already exists, in
// which case its index is returned.
func (d *Debugger) AddBreakpoint(bp Breakpoint) (int, error) {
	if idx, err := d.bps.FindExactMatch(bp, false); err == nil {
		return idx, nil
	}
	idx, err := d.bps.Add(bp)
	if err != nil {
		return -1, err
	}
	log.ModDbg.InfoZ("breakpoint added").
		Int("index", idx).
		String("bp", FormatBreakpoint(bp, d.events)).
		End()
	return idx, nil
}

// AddBreakpointSpec parses and adds a breakpoint.
func (d *Debugger) AddBreakpointSpec(spec string) (int, error) {
	bp, err := ParseBreakpoint(spec, d.events, d.syms)
	if err != nil {
		return -1, err
	}
	return d.AddBreakpoint(bp)
}

// ExecBreakpointAt returns an execution breakpoint for addr. When addr maps to
// ROM, the breakpoint is bound to the ROM byte currently mapped there.
func (d *Debugger) ExecBreakpointAt(addr LiveAddr) Breakpoint {
	return Breakpoint{
		Type:     BreakOnCPUExecution,
		ItemKind: ItemAddress,
		Item1:    addr,
		Item1Abs: d.AbsAddr(addr),
		Item2:    addr,
		Enabled:  true,
	}
}

// ToggleBreakpointAt removes the execution breakpoint at addr if there's
// one, or adds it. It returns whether a breakpoint is now set at addr.
func (d *Debugger) ToggleBreakpointAt(addr LiveAddr) (bool, error) {
	bp := d.ExecBreakpointAt(addr)
	if idx, err := d.bps.FindExactMatch(bp, true); err == nil {
		return false, d.bps.Remove(idx)
	}
	_, err := d.bps.Add(bp)
	return err == nil, err
}

/* markers */

func (d *Debugger) Markers() *MarkerSet { return &d.markers }

// syncCycles accounts the cycles executed since the last Trace call.
func (d *Debugger) syncCycles() {
	now := d.cpu.Cycles
	if now > d.lastCycle {
		d.markers.advance(uint64(now - d.lastCycle))
	}
	d.lastCycle = now
}

// markerAbs returns the absolute address of a marker bound at addr. Markers
// only exist in PRG ROM.
func (d *Debugger) markerAbs(addr LiveAddr) (AbsAddr, error) {
	abs := d.AbsAddr(addr)
	if !abs.Valid() {
		return NoAbsAddr, errors.Wrapf(ErrNotFound, "marker at %s: not in PRG ROM", addr)
	}
	return abs, nil
}

// AddMarker starts a marker at addr.
func (d *Debugger) AddMarker(addr LiveAddr) (int, error) {
	abs, err := d.markerAbs(addr)
	if err != nil {
		return -1, err
	}
	d.syncCycles()
	return d.markers.AddMarker(abs)
}

// CompleteMarker completes the marker in progress, at addr.
func (d *Debugger) CompleteMarker(addr LiveAddr) (int, error) {
	idx, err := d.markers.FindInProgressMarker()
	if err != nil {
		return -1, ErrNoMarkerInProgress
	}
	abs, err := d.markerAbs(addr)
	if err != nil {
		return -1, err
	}
	d.syncCycles()
	return idx, d.markers.CompleteMarker(idx, abs)
}

/* hw.Debugger implementation */

func (d *Debugger) Reset() {
	d.cstack.reset()
	d.prevOpcode = 0
	d.prevPC = LiveAddr(d.cpu.PC)
	d.lastCycle = d.cpu.Cycles
	d.resumeArmed = false
	d.disasm.Invalidate()

	if hit, ok := d.cpuEvent(CPUReset, 0); ok {
		d.pending = d.breakInfo(hit)
		d.hasPending = true
	}
}

// Trace is called before the CPU fetches the opcode at pc.
func (d *Debugger) Trace(pc uint16) {
	cycle := d.cpu.Cycles
	if d.hasPending {
		d.hasPending = false
		d.stop(d.pending)
		return
	}

	live := LiveAddr(pc)
	abs := resolveAbs(d.abs, live)
	opcode := d.cpu.Bus.Peek8(pc)

	if d.resumeArmed && d.resumePC == pc && d.resumeCycle == cycle {
		d.resumeArmed = false
	} else {
		d.resumeArmed = false
		if hit, ok := d.checkInstruction(live, abs, opcode); ok {
			d.resumePC, d.resumeCycle, d.resumeArmed = pc, cycle, true
			d.stop(d.breakInfo(hit))
			return
		}
	}

	d.updateStack(live, FrameCall)
	d.prevPC = live
	d.prevOpcode = opcode

	d.syncCycles()
	d.markers.execute(abs, cycle)
	d.disasm.executed(pc)
	d.record(pc, opcode, cycle)
}

func (d *Debugger) record(pc uint16, opcode uint8, cycle int64) {
	e := TraceEntry{
		PC:    pc,
		Len:   hw.Opcodes[opcode].Size,
		Cycle: cycle,
		A:     d.cpu.A,
		X:     d.cpu.X,
		Y:     d.cpu.Y,
		P:     d.cpu.P,
		SP:    d.cpu.SP,
	}
	e.Bytes[0] = opcode
	for i := uint16(1); i < uint16(e.Len); i++ {
		e.Bytes[i] = d.cpu.Bus.Peek8(pc + i)
	}
	if d.ppu != nil {
		e.Scanline = d.ppu.Scanline
		e.Dot = d.ppu.Cycle
	}
	d.trace.Record(e)
}

// checkInstruction checks the breakpoints triggered by the execution of the
// instruction at live/abs.
func (d *Debugger) checkInstruction(live LiveAddr, abs AbsAddr, opcode uint8) (Hit, bool) {
	if d.bps.Len() == 0 {
		return Hit{}, false
	}

	first, found := d.bps.match(BreakOnCPUExecution, func(bp *Breakpoint) bool {
		return bp.matchAddr(live, abs) && bp.test(uint16(opcode))
	})
	keep := func(h Hit, ok bool) {
		if ok && !found {
			first, found = h, true
		}
	}

	keep(d.bps.match(BreakOnCPUState, func(bp *Breakpoint) bool {
		return bp.test(cpuRegValue(d.cpu, CPUReg(bp.Item1)))
	}))

	keep(d.cpuEvent(CPUExecuteExact, uint16(opcode)))
	if !hw.Opcodes[opcode].Documented {
		keep(d.cpuEvent(CPUUndocumented, uint16(opcode)))
		keep(d.cpuEvent(CPUUndocumentedExact, uint16(opcode)))
	}
	return first, found
}

func (d *Debugger) matchEvent(typ BreakpointType, ev uint8, item uint16) (Hit, bool) {
	return d.bps.match(typ, func(bp *Breakpoint) bool {
		return bp.Event == ev && bp.matchItem(item) && bp.test(item)
	})
}

func (d *Debugger) cpuEvent(ev CPUEvent, item uint16) (Hit, bool) {
	return d.matchEvent(BreakOnCPUEvent, uint8(ev), item)
}

// APUEvent checks the APU event breakpoints.
func (d *Debugger) APUEvent(ev apu.Event, item uint16) {
	if hit, ok := d.matchEvent(BreakOnAPUEvent, uint8(ev), item); ok {
		d.stop(d.breakInfo(hit))
	}
}

// PPUEvent checks the PPU event breakpoints.
func (d *Debugger) PPUEvent(ev hw.PPUEvent, item uint16) {
	if hit, ok := d.matchEvent(BreakOnPPUEvent, uint8(ev), item); ok {
		d.stop(d.breakInfo(hit))
	}
}

func (d *Debugger) breakInfo(hit Hit) BreakInfo {
	reason := "breakpoint " + strconv.Itoa(hit.Index) + ": " + FormatBreakpoint(hit.Breakpoint, d.events)
	return BreakInfo{
		Reason: reason,
		PC:     d.cpu.PC,
		Cycle:  d.cpu.Cycles,
		HasHit: true,
		Hit:    hit,
	}
}

func (d *Debugger) stop(bi BreakInfo) {
	bi.PC, bi.Cycle = d.cpu.PC, d.cpu.Cycles
	d.last = bi
	log.ModDbg.InfoZ("break").
		String("reason", bi.Reason).
		Hex16("PC", bi.PC).
		Int64("cycle", bi.Cycle).
		End()
	d.cpu.RequestBreak(bi.Reason)
}

func (d *Debugger) updateStack(dst LiveAddr, kind FrameKind) {
	switch d.prevOpcode {
	case 0x20: // JSR
		d.cstack.push(d.prevPC, dst, d.prevPC+3, kind)
	case 0x40, 0x60: // RTI RTS
		d.cstack.pop()
	}
}

func (d *Debugger) Interrupt(prevpc, curpc uint16, isNMI bool) {
	kind, ev := FrameIRQ, CPUIRQ
	if isNMI {
		kind, ev = FrameNMI, CPUNMI
	}
	d.updateStack(LiveAddr(prevpc), FrameCall)
	d.prevOpcode = 0xFF
	d.cstack.push(d.prevPC, LiveAddr(curpc), LiveAddr(prevpc), kind)

	if hit, ok := d.cpuEvent(ev, 0); ok {
		d.stop(d.breakInfo(hit))
	}
}

func (d *Debugger) WatchRead(addr uint16, val uint8) {
	phase := d.cpu.Phase()
	d.cdl.RecordAccess(addr, accessKindOf(phase))
	if d.bps.Len() == 0 || (phase != hw.PhaseRead && phase != hw.PhaseDummyRead) {
		return
	}
	d.watchMemory(BreakOnCPUMemoryRead, addr, val)
}

func (d *Debugger) WatchWrite(addr uint16, val uint8) {
	d.cdl.RecordAccess(addr, AccessWrite)
	d.apuRegs.record(addr, val)
	d.disasm.written(addr)
	if d.bps.Len() == 0 {
		return
	}
	d.watchMemory(BreakOnCPUMemoryWrite, addr, val)
}

func (d *Debugger) watchMemory(typ BreakpointType, addr uint16, val uint8) {
	live := LiveAddr(addr)
	abs := resolveAbs(d.abs, live)
	hit, ok := d.bps.match(typ, func(bp *Breakpoint) bool {
		return bp.matchAddr(live, abs) && bp.test(uint16(val))
	})
	if ok {
		d.stop(d.breakInfo(hit))
	}
}

func (d *Debugger) WatchDMA(addr uint16, val uint8) {
	d.cdl.RecordAccess(addr, AccessDMA)
}

// Break is called by the CPU core when it can't go on.
func (d *Debugger) Break(msg string) {
	d.last = BreakInfo{Reason: msg, PC: d.cpu.PC, Cycle: d.cpu.Cycles}
	log.ModDbg.WarnZ("cpu break").String("msg", msg).Hex16("PC", d.cpu.PC).End()
}

func (d *Debugger) FrameEnd() {
	d.markers.frame()
}
