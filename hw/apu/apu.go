package apu

import (
	"nesdbg/emu/log"
	"nesdbg/hw/hwdefs"
	"nesdbg/hw/hwio"
)

// APU is the 2A03 audio processing unit. Channels are run lazily: the APU
// only catches up with the CPU when a register is accessed, when an IRQ may
// fire, or when the mixer buffer is flushed.
//
// Each channel is a register bank of 4 registers at offset 0, to be mapped
// at $4000, $4004, $4008, $400C and $4010. The APU bank itself holds the
// status register, mapped at $4015, and the $4018-$401A test registers.
type APU struct {
	cpu   CPU
	mixer *Mixer

	Square1  SquareChannel
	Square2  SquareChannel
	Triangle TriangleChannel
	Noise    NoiseChannel
	DMC      DMC

	frameCounter frameCounter

	prevCycle   uint32
	curCycle    uint32
	totalCycles uint64
	needToRun   bool

	// OnEvent, if set, is called for every APU event.
	OnEvent func(ev Event)

	STATUS hwio.Reg8 `hwio:"offset=0x00,pcb,rcb,wcb"`
	DAC0   hwio.Reg8 `hwio:"offset=0x03,rcb,readonly"` // pulse 2 (hi) and pulse 1 (lo) DAC
	DAC1   hwio.Reg8 `hwio:"offset=0x04,rcb,readonly"` // noise (hi) and triangle (lo) DAC
	DAC2   hwio.Reg8 `hwio:"offset=0x05,rcb,readonly"` // DMC DAC
}

// New creates an APU at power-up state.
func New(cpu CPU) *APU {
	a := &APU{
		cpu:   cpu,
		mixer: NewMixer(),
	}
	a.Square1.init(a, Square1)
	a.Square2.init(a, Square2)
	a.Triangle.init(a)
	a.Noise.init(a)
	a.DMC.init(a, cpu)
	a.frameCounter.apu = a
	a.frameCounter.cpu = cpu

	hwio.MustInitRegs(a)
	a.Reset(hwdefs.HardReset)
	return a
}

func (a *APU) Mixer() *Mixer { return a.mixer }

// Samples returns the mixed samples produced so far, see Mixer.Samples.
func (a *APU) Samples() []int16 { return a.mixer.Samples() }

func (a *APU) emit(ev Event) {
	if a.OnEvent != nil {
		a.OnEvent(ev)
	}
}

func (a *APU) setIRQ(src hwdefs.IRQSource) {
	if a.cpu.HasIRQSource(src) {
		return
	}
	a.cpu.SetIRQSource(src)
	log.ModSound.DebugZ("irq").String("src", src.String()).End()
	a.emit(EventIRQ)
}

// WriteFrameCounter handles writes to $4017.
func (a *APU) WriteFrameCounter(val uint8) {
	a.frameCounter.write(val)
}

func (a *APU) status() uint8 {
	var status uint8

	if a.Square1.status() {
		status |= 0x01
	}
	if a.Square2.status() {
		status |= 0x02
	}
	if a.Triangle.status() {
		status |= 0x04
	}
	if a.Noise.status() {
		status |= 0x08
	}
	if a.DMC.status() {
		status |= 0x10
	}
	if a.cpu.HasIRQSource(hwdefs.FrameCounter) {
		status |= 0x40
	}
	if a.cpu.HasIRQSource(hwdefs.DMC) {
		status |= 0x80
	}
	return status
}

func (a *APU) PeekSTATUS(uint8) uint8 {
	return a.status()
}

func (a *APU) ReadSTATUS(uint8) uint8 {
	a.Run()
	status := a.status()

	// Reading $4015 clears the frame counter interrupt flag.
	a.cpu.ClearIRQSource(hwdefs.FrameCounter)
	return status
}

func (a *APU) WriteSTATUS(_, val uint8) {
	a.Run()

	// Writing $4015 clears the DMC interrupt flag. This must be done before
	// enabling the DMC, which can trigger an IRQ.
	a.cpu.ClearIRQSource(hwdefs.DMC)

	a.Square1.setEnabled(val&0x01 != 0)
	a.Square2.setEnabled(val&0x02 != 0)
	a.Triangle.setEnabled(val&0x04 != 0)
	a.Noise.setEnabled(val&0x08 != 0)
	a.DMC.setEnabled(val&0x10 != 0)

	log.ModSound.DebugZ("write status").Hex8("val", val).End()
}

func (a *APU) ReadDAC0(uint8) uint8 {
	a.Run()
	return a.Square1.output() | a.Square2.output()<<4
}

func (a *APU) ReadDAC1(uint8) uint8 {
	a.Run()
	return a.Triangle.output() | a.Noise.output()<<4
}

func (a *APU) ReadDAC2(uint8) uint8 {
	a.Run()
	return a.DMC.output()
}

func (a *APU) frameCounterTick(ftyp FrameType) {
	// Quarter and half frames clock envelopes and the linear counter.
	a.Square1.tickEnvelope()
	a.Square2.tickEnvelope()
	a.Triangle.tickLinearCounter()
	a.Noise.tickEnvelope()
	a.emit(EventLinearCounterClocked)

	if ftyp == HalfFrame {
		// Half frames also clock length counters and sweeps.
		a.Square1.tickLengthCounter()
		a.Square2.tickLengthCounter()
		a.Triangle.tickLengthCounter()
		a.Noise.tickLengthCounter()

		a.Square1.tickSweep()
		a.Square2.tickSweep()
		a.emit(EventLengthCounterClocked)
	}
}

func (a *APU) Reset(soft bool) {
	a.curCycle = 0
	a.prevCycle = 0
	a.needToRun = false

	a.Square1.reset(soft)
	a.Square2.reset(soft)
	a.Triangle.reset(soft)
	a.Noise.reset(soft)
	a.DMC.reset(soft)
	a.frameCounter.reset(soft)
	a.mixer.Reset()
}

// Tick is called once per CPU cycle.
func (a *APU) Tick() {
	a.curCycle++
	a.totalCycles++
	if a.curCycle == cycleLength-1 {
		a.EndFrame()
	} else if a.mustRun(a.curCycle) {
		a.Run()
	}
}

// EndFrame catches up with the CPU and flushes the channel outputs to the
// mixer. It is called at the end of each video frame and whenever the
// mixer's delta buffer is about to be full.
func (a *APU) EndFrame() {
	a.DMC.processClock()
	a.Run()
	a.Square1.endFrame()
	a.Square2.endFrame()
	a.Triangle.endFrame()
	a.Noise.endFrame()
	a.DMC.endFrame()

	a.mixer.endFrame(a.curCycle)

	a.curCycle = 0
	a.prevCycle = 0
}

// Run updates the frame counter and all channels up to the current cycle.
func (a *APU) Run() {
	ncycles := int32(a.curCycle - a.prevCycle)

	for ncycles > 0 {
		a.prevCycle += a.frameCounter.run(&ncycles)

		// Reload the length counters after the frame counter ran, so that a
		// length counter clocked on the same cycle as a reload gets reloaded.
		a.Square1.reloadLengthCounter()
		a.Square2.reloadLengthCounter()
		a.Noise.reloadLengthCounter()
		a.Triangle.reloadLengthCounter()

		a.Square1.run(a.prevCycle)
		a.Square2.run(a.prevCycle)
		a.Noise.run(a.prevCycle)
		a.Triangle.run(a.prevCycle)
		a.DMC.run(a.prevCycle)
	}
}

func (a *APU) mustRun(curCycle uint32) bool {
	// The DMC runs every cycle while active, for accurate CPU stalls.
	if a.DMC.mustRun() || a.needToRun {
		a.needToRun = false
		return true
	}

	ncycles := curCycle - a.prevCycle
	return a.frameCounter.mustRun(ncycles) || a.DMC.irqPending(ncycles)
}
