package apu

import "nesdbg/hw/hwdefs"

// State is a snapshot of the APU internals, as shown by a debugger APU
// inspector. Taking it has no side effect on emulation.
type State struct {
	Cycle    uint64 // APU (CPU) cycles since power-up
	FiveStep bool   // sequencer mode
	Step     uint32 // next sequencer step

	// Length counter of each channel. For the DMC it is the number of
	// sample bytes remaining.
	LengthCounters [hwdefs.NumAudioChannels]uint16
	LinearCounter  uint8
	DAC            [hwdefs.NumAudioChannels]uint8
	Enabled        [hwdefs.NumAudioChannels]bool

	FrameIRQ bool

	DMCIRQEnabled   bool
	DMCIRQAsserted  bool
	DMCLoop         bool
	DMCSampleAddr   uint16
	DMCSampleLen    uint16
	DMCCurrentAddr  uint16
	DMCSampleBuffer uint8
	DMCBufferFull   bool
}

func (a *APU) State() State {
	st := State{
		Cycle:    a.totalCycles,
		FiveStep: a.frameCounter.stepMode == 1,
		Step:     a.frameCounter.curStep,

		LinearCounter: a.Triangle.linearCounter,
		FrameIRQ:      a.cpu.HasIRQSource(hwdefs.FrameCounter),

		DMCIRQEnabled:   a.DMC.irqEnabled,
		DMCIRQAsserted:  a.cpu.HasIRQSource(hwdefs.DMC),
		DMCLoop:         a.DMC.loop,
		DMCSampleAddr:   a.DMC.sampleAddr,
		DMCSampleLen:    a.DMC.sampleLen,
		DMCCurrentAddr:  a.DMC.curaddr,
		DMCSampleBuffer: a.DMC.readbuf,
		DMCBufferFull:   !a.DMC.bufEmpty,
	}

	st.LengthCounters = [...]uint16{
		uint16(a.Square1.envelope.lenCounter.counter),
		uint16(a.Square2.envelope.lenCounter.counter),
		uint16(a.Triangle.lenCounter.counter),
		uint16(a.Noise.envelope.lenCounter.counter),
		a.DMC.remaining,
	}
	st.DAC = [...]uint8{
		a.Square1.output(),
		a.Square2.output(),
		a.Triangle.output(),
		a.Noise.output(),
		a.DMC.output(),
	}
	st.Enabled = [...]bool{
		a.Square1.envelope.lenCounter.enabled,
		a.Square2.envelope.lenCounter.enabled,
		a.Triangle.lenCounter.enabled,
		a.Noise.envelope.lenCounter.enabled,
		a.DMC.remaining > 0,
	}
	return st
}
