package debugger

import (
	"nesdbg/hw"
	"nesdbg/hw/apu"
)

// CPUEvent identifies a CPU breakpoint event. Values are persisted with
// breakpoints, never renumber them.
type CPUEvent uint8

const (
	CPUExecuteExact CPUEvent = iota
	CPUUndocumented
	CPUUndocumentedExact
	CPUReset
	CPUIRQ
	CPUNMI

	NumCPUEvents = 6
)

// EventInfo describes a breakpoint event for the user.
type EventInfo struct {
	Name        string // short name, used by the breakpoint parser
	Description string
	ItemName    string // name of the item value, empty if the event takes none
}

// HasItem reports whether the event is qualified by an item value.
func (e EventInfo) HasItem() bool { return e.ItemName != "" }

// EventTables holds the event metadata of every emitter. Slices are indexed
// by event id.
type EventTables struct {
	CPU []EventInfo
	APU []EventInfo
	PPU []EventInfo
}

// DefaultEvents returns the event tables of the NES hardware.
func DefaultEvents() *EventTables {
	return &EventTables{
		CPU: []EventInfo{
			CPUExecuteExact:      {"execute", "Execution of a specific opcode", "opcode"},
			CPUUndocumented:      {"undocumented", "Execution of any undocumented opcode", ""},
			CPUUndocumentedExact: {"undocumented-exact", "Execution of a specific undocumented opcode", "opcode"},
			CPUReset:             {"reset", "CPU reset", ""},
			CPUIRQ:               {"irq", "IRQ sequence", ""},
			CPUNMI:               {"nmi", "NMI sequence", ""},
		},
		APU: []EventInfo{
			apu.EventIRQ:                  {"irq", "APU IRQ asserted", ""},
			apu.EventDMCDMA:               {"dmc-dma", "DMC sample fetch", ""},
			apu.EventLengthCounterClocked: {"length-counter", "Length counters clocked (half frame)", ""},
			apu.EventLinearCounterClocked: {"linear-counter", "Linear counter clocked (quarter frame)", ""},
			apu.EventSequencerStep:        {"sequencer-step", "Frame sequencer step", "step"},
		},
		PPU: []EventInfo{
			hw.PPUScanlineStart: {"scanline", "Start of scanline", "scanline"},
			hw.PPUVBlankStart:   {"vblank", "Start of vertical blank", ""},
			hw.PPUFrameStart:    {"frame", "Start of frame (pre-render line)", ""},
			hw.PPUSpriteZeroHit: {"sprite0", "Sprite 0 hit", ""},
		},
	}
}

func (t *EventTables) table(typ BreakpointType) []EventInfo {
	switch typ {
	case BreakOnCPUEvent:
		return t.CPU
	case BreakOnAPUEvent:
		return t.APU
	case BreakOnPPUEvent:
		return t.PPU
	}
	return nil
}

// Lookup returns the id of the named event of an emitter.
func (t *EventTables) Lookup(typ BreakpointType, name string) (uint8, bool) {
	for i, e := range t.table(typ) {
		if e.Name == name {
			return uint8(i), true
		}
	}
	return 0, false
}

// Info returns the metadata of an event.
func (t *EventTables) Info(typ BreakpointType, id uint8) (EventInfo, bool) {
	tbl := t.table(typ)
	if int(id) >= len(tbl) {
		return EventInfo{}, false
	}
	return tbl[id], true
}
