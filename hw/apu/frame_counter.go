package apu

import (
	"nesdbg/emu/log"
	"nesdbg/hw/hwdefs"
)

var stepCycles = [2][6]int32{
	{7457, 14913, 22371, 29828, 29829, 29830},
	{7457, 14913, 22371, 29829, 37281, 37282},
}

var frameType = [2][6]FrameType{
	{QuarterFrame, HalfFrame, QuarterFrame, NoFrame, HalfFrame, NoFrame},
	{QuarterFrame, HalfFrame, QuarterFrame, NoFrame, HalfFrame, NoFrame},
}

type frameCounter struct {
	apu *APU
	cpu CPU

	prevCycle  int32
	curStep    uint32
	stepMode   uint32 // 0: 4-step mode, 1: 5-step mode
	inhibitIRQ bool
	blockTick  uint8

	newval     int16 // pending $4017 value, -1 if none
	writeDelay int8
}

func (fc *frameCounter) reset(soft bool) {
	fc.prevCycle = 0

	// $4017 is unchanged by a soft reset.
	if !soft {
		fc.stepMode = 0
	}

	fc.curStep = 0

	// After reset or power-up, the APU acts as if $4017 were written with
	// $00 from 9 to 12 clocks before the first instruction begins.
	fc.newval = 0
	if fc.stepMode != 0 {
		fc.newval = 0x80
	}
	fc.writeDelay = 3
	fc.inhibitIRQ = false
	fc.blockTick = 0
}

func (fc *frameCounter) write(val uint8) {
	fc.apu.Run()
	fc.newval = int16(val)

	// The sequencer resets 3 CPU cycles after a write made during an APU
	// cycle, 4 cycles otherwise.
	if fc.cpu.CurrentCycle()&0x01 != 0 {
		fc.writeDelay = 4
	} else {
		fc.writeDelay = 3
	}

	fc.inhibitIRQ = val&0x40 != 0
	if fc.inhibitIRQ {
		fc.cpu.ClearIRQSource(hwdefs.FrameCounter)
	}

	log.ModSound.DebugZ("write frame counter").
		Hex8("val", val).
		Bool("inhibit", fc.inhibitIRQ).
		End()
}

// run runs the frame counter for at most ncycles, stopping at the next
// sequencer step. It returns the number of cycles actually run.
func (fc *frameCounter) run(ncycles *int32) uint32 {
	var ran int32

	if fc.prevCycle+*ncycles >= stepCycles[fc.stepMode][fc.curStep] {
		if !fc.inhibitIRQ && fc.stepMode == 0 && fc.curStep >= 3 {
			// IRQ is set on the last 3 cycles of 4-step mode.
			fc.apu.setIRQ(hwdefs.FrameCounter)
		}

		ftyp := frameType[fc.stepMode][fc.curStep]
		if ftyp != NoFrame && fc.blockTick == 0 {
			fc.apu.frameCounterTick(ftyp)

			// $4017 writes can't clock the frame counter for the next 2
			// cycles.
			fc.blockTick = 2
		}
		fc.apu.emit(EventSequencerStep)

		if stepCycles[fc.stepMode][fc.curStep] >= fc.prevCycle {
			ran = stepCycles[fc.stepMode][fc.curStep] - fc.prevCycle
		}

		*ncycles -= ran

		fc.curStep++
		if fc.curStep == 6 {
			fc.curStep = 0
			fc.prevCycle = 0
		} else {
			fc.prevCycle += ran
		}
	} else {
		ran = *ncycles
		*ncycles = 0
		fc.prevCycle += ran
	}

	if fc.newval >= 0 {
		fc.writeDelay--
		if fc.writeDelay == 0 {
			fc.stepMode = 0
			if fc.newval&0x80 != 0 {
				fc.stepMode = 1
			}

			fc.writeDelay = -1
			fc.curStep = 0
			fc.prevCycle = 0
			fc.newval = -1

			if fc.stepMode != 0 && fc.blockTick == 0 {
				// Entering 5-step mode immediately clocks both the quarter
				// and the half frame units.
				fc.apu.frameCounterTick(HalfFrame)
				fc.blockTick = 2
			}
		}
	}

	if fc.blockTick > 0 {
		fc.blockTick--
	}

	return uint32(ran)
}

// mustRun reports whether the frame counter has something to do within the
// given number of cycles: a pending write, a blocked tick, or a step.
func (fc *frameCounter) mustRun(ncycles uint32) bool {
	return fc.newval >= 0 ||
		fc.blockTick > 0 ||
		(fc.prevCycle+int32(ncycles) >= stepCycles[fc.stepMode][fc.curStep]-1)
}
