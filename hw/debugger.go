package hw

// A Debugger controls and monitors a CPU.
type Debugger interface {
	// Reset is called after the CPU has been reset.
	Reset()

	// Trace is called before each opcode is fetched. The debugger stops the
	// CPU by calling CPU.RequestBreak, in which case the opcode at pc is not
	// executed.
	Trace(pc uint16)

	// Interrupt is called once an interrupt sequence has been executed.
	// prevpc is the address of the instruction that was about to be
	// executed, curpc is the address of the interrupt handler.
	Interrupt(prevpc, curpc uint16, isNMI bool)

	// WatchRead/WatchWrite are called after each CPU bus access, CPU.Phase
	// tells what kind of cycle performed the access. WatchDMA is called for
	// bytes read by the OAM and DMC DMA units.
	WatchRead(addr uint16, val uint8)
	WatchWrite(addr uint16, val uint8)
	WatchDMA(addr uint16, val uint8)

	// Break can be called by the CPU core to force breaking into the debugger.
	Break(msg string)

	// FrameEnd signals the debugger the end of the current frame.
	FrameEnd()
}

// Phase is the kind of bus cycle the CPU is performing.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseOpcodeFetch
	PhaseOperandFetch
	PhaseRead
	PhaseDummyRead
	PhaseWrite
	PhaseDummyWrite
	PhaseDMA
)

var phaseNames = [...]string{
	PhaseIdle:         "idle",
	PhaseOpcodeFetch:  "fetch",
	PhaseOperandFetch: "operand",
	PhaseRead:         "read",
	PhaseDummyRead:    "dummy read",
	PhaseWrite:        "write",
	PhaseDummyWrite:   "dummy write",
	PhaseDMA:          "dma",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// IsWrite reports whether the phase drives the data bus.
func (p Phase) IsWrite() bool {
	return p == PhaseWrite || p == PhaseDummyWrite
}

type nopDebugger struct{}

func (nopDebugger) Reset()                                     {}
func (nopDebugger) Trace(pc uint16)                            {}
func (nopDebugger) Interrupt(prevpc, curpc uint16, isNMI bool) {}
func (nopDebugger) WatchRead(addr uint16, val uint8)           {}
func (nopDebugger) WatchWrite(addr uint16, val uint8)          {}
func (nopDebugger) WatchDMA(addr uint16, val uint8)            {}
func (nopDebugger) Break(msg string)                           {}
func (nopDebugger) FrameEnd()                                  {}
