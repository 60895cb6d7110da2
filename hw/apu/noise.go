package apu

import (
	"nesdbg/emu/log"
	"nesdbg/hw/hwio"
)

// NoiseChannel generates pseudo-random 1-bit noise at 16 different frequencies.
//
//	      Timer --> Shift Register   Length Counter
//	                    |                |
//	                    v                v
//	Envelope -------> Gate ----------> Gate --> (to mixer)
type NoiseChannel struct {
	apu      *APU
	envelope envelope
	timer    timer

	shiftReg uint16
	mode     bool

	Volume hwio.Reg8 `hwio:"offset=0x00,writeonly,wcb"`
	Unused hwio.Reg8 `hwio:"offset=0x01,writeonly,wcb"`
	Period hwio.Reg8 `hwio:"offset=0x02,writeonly,wcb"`
	Length hwio.Reg8 `hwio:"offset=0x03,writeonly,wcb"`
}

func (nc *NoiseChannel) init(apu *APU) {
	nc.apu = apu
	nc.envelope.lenCounter = lengthCounter{apu: apu, channel: Noise}
	nc.timer = timer{channel: Noise, mixer: apu.mixer}
	hwio.MustInitRegs(nc)
}

var noisePeriodLUT = [16]uint16{4, 8, 16, 32, 64, 96, 128, 160, 202, 254, 380, 508, 762, 1016, 2034, 4068}

func (nc *NoiseChannel) WriteVOLUME(_, val uint8) {
	nc.apu.Run()
	nc.envelope.init(val)
}

func (nc *NoiseChannel) WriteUNUSED(_, _ uint8) {
	nc.apu.Run()
}

func (nc *NoiseChannel) WritePERIOD(_, val uint8) {
	nc.apu.Run()
	nc.timer.period = noisePeriodLUT[val&0x0F] - 1
	nc.mode = val&0x80 != 0

	log.ModSound.DebugZ("write noise period").
		Uint16("period", nc.timer.period).
		Bool("mode", nc.mode).
		End()
}

func (nc *NoiseChannel) WriteLENGTH(_, val uint8) {
	nc.apu.Run()
	nc.envelope.lenCounter.load(val >> 3)
	nc.envelope.restart()
}

func (nc *NoiseChannel) run(targetCycle uint32) {
	for nc.timer.run(targetCycle) {
		// Feedback is bit 0 XOR bit 6 in mode 1, bit 0 XOR bit 1 otherwise.
		modebit := 1
		if nc.mode {
			modebit = 6
		}

		feedback := (nc.shiftReg & 0x01) ^ ((nc.shiftReg >> modebit) & 0x01)
		nc.shiftReg >>= 1
		nc.shiftReg |= feedback << 14

		if nc.shiftReg&0x01 != 0 {
			nc.timer.addOutput(0)
		} else {
			nc.timer.addOutput(int8(nc.envelope.level()))
		}
	}
}

func (nc *NoiseChannel) reset(soft bool) {
	nc.envelope.reset(soft)
	nc.timer.reset()

	nc.timer.period = noisePeriodLUT[0] - 1
	nc.shiftReg = 1
	nc.mode = false
}

func (nc *NoiseChannel) tickEnvelope()        { nc.envelope.tick() }
func (nc *NoiseChannel) tickLengthCounter()   { nc.envelope.lenCounter.tick() }
func (nc *NoiseChannel) reloadLengthCounter() { nc.envelope.lenCounter.applyReload() }
func (nc *NoiseChannel) endFrame()            { nc.timer.endFrame() }
func (nc *NoiseChannel) setEnabled(en bool)   { nc.envelope.lenCounter.setEnabled(en) }
func (nc *NoiseChannel) status() bool         { return nc.envelope.lenCounter.status() }
func (nc *NoiseChannel) output() uint8        { return uint8(nc.timer.lastOutput) }
