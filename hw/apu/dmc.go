package apu

import (
	"nesdbg/emu/log"
	"nesdbg/hw/hwdefs"
	"nesdbg/hw/hwio"
)

// DMC (Delta Modulation Channel) outputs samples composed of 1-bit deltas,
// its DAC can also be written directly. It contains the following: DMA
// reader, interrupt flag, sample buffer, Timer, output unit, 7-bit counter
// tied to 7-bit DAC.
//
//	+----------+    +---------+
//	|DMA Reader|    |  Timer  |
//	+----------+    +---------+
//	     |               |
//	     |               v
//	+----------+    +---------+     +---------+     +---------+
//	|  Buffer  |----| Output  |---->| Counter |---->|   DAC   |
//	+----------+    +---------+     +---------+     +---------+
type DMC struct {
	apu   *APU
	cpu   CPU
	timer timer

	sampleAddr uint16
	sampleLen  uint16
	outlvl     uint8
	irqEnabled bool
	loop       bool

	curaddr   uint16
	remaining uint16
	readbuf   uint8
	bufEmpty  bool

	shiftReg     uint8
	bitsLeft     uint8
	silence      bool
	needToRun    bool
	disableDelay uint8
	startDelay   uint8

	FLAGS      hwio.Reg8 `hwio:"offset=0x00,writeonly,wcb"`
	LOAD       hwio.Reg8 `hwio:"offset=0x01,writeonly,wcb"`
	SAMPLEADDR hwio.Reg8 `hwio:"offset=0x02,writeonly,wcb"`
	SAMPLELEN  hwio.Reg8 `hwio:"offset=0x03,writeonly,wcb"`
}

func (dc *DMC) init(apu *APU, cpu CPU) {
	dc.apu = apu
	dc.cpu = cpu
	dc.timer = timer{channel: DPCM, mixer: apu.mixer}
	hwio.MustInitRegs(dc)
}

var dmcPeriodLUT = [16]uint16{428, 380, 340, 320, 286, 254, 226, 214, 190, 160, 142, 128, 106, 84, 72, 54}

func (dc *DMC) initSample() {
	dc.curaddr = dc.sampleAddr
	dc.remaining = dc.sampleLen
	dc.needToRun = dc.needToRun || dc.remaining > 0
}

func (dc *DMC) reset(soft bool) {
	dc.timer.reset()

	if !soft {
		dc.sampleAddr = 0xC000
		dc.sampleLen = 1
	}

	dc.outlvl = 0
	dc.irqEnabled = false
	dc.loop = false

	dc.curaddr = 0
	dc.remaining = 0
	dc.readbuf = 0
	dc.bufEmpty = true

	dc.shiftReg = 0
	dc.bitsLeft = 8
	dc.silence = true
	dc.needToRun = false
	dc.startDelay = 0
	dc.disableDelay = 0

	dc.timer.period = dmcPeriodLUT[0] - 1

	// Prevents the DMC from ticking on the first cycle.
	dc.timer.timer = dc.timer.period
}

// $4010
func (dc *DMC) WriteFLAGS(_, val uint8) {
	dc.apu.Run()

	dc.irqEnabled = val&0x80 != 0
	dc.loop = val&0x40 != 0
	dc.timer.period = dmcPeriodLUT[val&0x0F] - 1

	if !dc.irqEnabled {
		dc.cpu.ClearIRQSource(hwdefs.DMC)
	}

	log.ModSound.DebugZ("write dmc flags").
		Bool("irq", dc.irqEnabled).
		Bool("loop", dc.loop).
		Uint16("period", dc.timer.period).
		End()
}

// $4011
func (dc *DMC) WriteLOAD(_, val uint8) {
	dc.apu.Run()

	prev := dc.outlvl
	dc.outlvl = val & 0x7F

	// Reduce popping sounds of large $4011 steps.
	if diff := int(dc.outlvl) - int(prev); diff > 50 || diff < -50 {
		dc.outlvl = uint8(int(dc.outlvl) - diff/2)
	}

	// A $4011 write applies to the output right away, not on the next timer
	// reload.
	dc.timer.addOutput(int8(dc.outlvl))
}

// $4012: sample address is $C000 + $40*val.
func (dc *DMC) WriteSAMPLEADDR(_, val uint8) {
	dc.apu.Run()
	dc.sampleAddr = 0xC000 | uint16(val)<<6
}

// $4013: sample length is $10*val + 1 bytes.
func (dc *DMC) WriteSAMPLELEN(_, val uint8) {
	dc.apu.Run()
	dc.sampleLen = uint16(val)<<4 | 0x1
}

func (dc *DMC) startDMCTransfer() {
	if dc.bufEmpty && dc.remaining > 0 {
		dc.apu.emit(EventDMCDMA)
		dc.cpu.StartDMCTransfer()
	}
}

// CurrentAddress is the address of the next sample byte to fetch.
func (dc *DMC) CurrentAddress() uint16 {
	return dc.curaddr
}

// SetReadBuffer is called by the DMA unit with the fetched sample byte.
func (dc *DMC) SetReadBuffer(val uint8) {
	if dc.remaining > 0 {
		dc.readbuf = val
		dc.bufEmpty = false

		// Address wraps around to $8000, not $0000.
		dc.curaddr++
		if dc.curaddr == 0 {
			dc.curaddr = 0x8000
		}

		dc.remaining--

		if dc.remaining == 0 {
			if dc.loop {
				// Looped samples never set the IRQ flag.
				dc.initSample()
			} else if dc.irqEnabled {
				dc.apu.setIRQ(hwdefs.DMC)
			}
		}
	}

	if dc.sampleLen == 1 && !dc.loop {
		if dc.bitsLeft == 1 && dc.timer.timer < 2 {
			// When the DMA ends on the APU cycle before the bit counter
			// resets, a DMA is triggered and aborted 1 cycle later, halting
			// the CPU for one cycle.
			dc.shiftReg = dc.readbuf
			dc.bufEmpty = false
			dc.initSample()
			dc.disableDelay = 3
		}
	}
}

func (dc *DMC) run(targetCycle uint32) {
	for dc.timer.run(targetCycle) {
		if !dc.silence {
			if dc.shiftReg&0x01 != 0 {
				if dc.outlvl <= 125 {
					dc.outlvl += 2
				}
			} else if dc.outlvl >= 2 {
				dc.outlvl -= 2
			}
			dc.shiftReg >>= 1
		}

		dc.bitsLeft--
		if dc.bitsLeft == 0 {
			dc.bitsLeft = 8
			if dc.bufEmpty {
				dc.silence = true
			} else {
				dc.silence = false
				dc.shiftReg = dc.readbuf
				dc.bufEmpty = true
				dc.needToRun = true
				dc.startDMCTransfer()
			}
		}

		dc.timer.addOutput(int8(dc.outlvl))
	}
}

// irqPending reports whether the sample will end, raising an IRQ, within
// the given number of cycles.
func (dc *DMC) irqPending(ncycles uint32) bool {
	if dc.irqEnabled && dc.remaining > 0 {
		need := (uint32(dc.bitsLeft) + uint32(dc.remaining-1)*8) * uint32(dc.timer.period)
		return ncycles >= need
	}
	return false
}

func (dc *DMC) status() bool {
	return dc.remaining > 0
}

func (dc *DMC) endFrame() {
	dc.timer.endFrame()
}

func (dc *DMC) setEnabled(enabled bool) {
	odd := dc.cpu.CurrentCycle()&0x01 != 0
	if !enabled {
		if dc.disableDelay == 0 {
			// Disabling takes effect with a 1 APU cycle delay. A DMA starting
			// in the meantime gets cancelled but still halts the CPU.
			dc.disableDelay = 2
			if odd {
				dc.disableDelay = 3
			}
		}
		dc.needToRun = true
	} else if dc.remaining == 0 {
		dc.initSample()

		dc.startDelay = 2
		if odd {
			dc.startDelay = 3
		}
		dc.needToRun = true
	}
}

func (dc *DMC) processClock() {
	if dc.disableDelay != 0 {
		dc.disableDelay--
		if dc.disableDelay == 0 {
			dc.remaining = 0
			// Abort any transfer that hasn't fully started.
			dc.cpu.StopDMCTransfer()
		}
	}

	if dc.startDelay != 0 {
		dc.startDelay--
		if dc.startDelay == 0 {
			dc.startDMCTransfer()
		}
	}

	dc.needToRun = dc.disableDelay != 0 || dc.startDelay != 0 || dc.remaining != 0
}

func (dc *DMC) mustRun() bool {
	if dc.needToRun {
		dc.processClock()
	}
	return dc.needToRun
}

func (dc *DMC) output() uint8 {
	return uint8(dc.timer.lastOutput)
}
