package apu

import (
	"nesdbg/emu/log"
	"nesdbg/hw/hwio"
)

// TriangleChannel contains the following: Timer, 32-step sequencer, Length
// Counter, Linear Counter, 4-bit DAC.
//
//	+---------+    +---------+
//	|LinearCtr|    | Length  |
//	+---------+    +---------+
//	     |              |
//	     v              v
//	+---------+        |\             |\         +---------+    +---------+
//	|  Timer  |------->| >----------->| >------->|Sequencer|--->|   DAC   |
//	+---------+        |/             |/         +---------+    +---------+
type TriangleChannel struct {
	apu        *APU
	lenCounter lengthCounter
	timer      timer

	linearCounter       uint8
	linearCounterReload uint8
	linearReload        bool
	linearCtrl          bool

	pos uint8 // position in triangleSequence

	Linear hwio.Reg8 `hwio:"offset=0x00,writeonly,wcb"`
	Unused hwio.Reg8 `hwio:"offset=0x01,writeonly,wcb"`
	Timer  hwio.Reg8 `hwio:"offset=0x02,writeonly,wcb"`
	Length hwio.Reg8 `hwio:"offset=0x03,writeonly,wcb"`
}

func (tc *TriangleChannel) init(apu *APU) {
	tc.apu = apu
	tc.lenCounter = lengthCounter{apu: apu, channel: Triangle}
	tc.timer = timer{channel: Triangle, mixer: apu.mixer}
	hwio.MustInitRegs(tc)
}

var triangleSequence = [32]int8{
	15, 14, 13, 12, 11, 10, 9, 8,
	7, 6, 5, 4, 3, 2, 1, 0,
	0, 1, 2, 3, 4, 5, 6, 7,
	8, 9, 10, 11, 12, 13, 14, 15,
}

func (tc *TriangleChannel) run(targetCycle uint32) {
	for tc.timer.run(targetCycle) {
		// The sequencer is clocked only when both the linear counter and the
		// length counter are nonzero.
		if tc.lenCounter.status() && tc.linearCounter > 0 {
			tc.pos = (tc.pos + 1) & 0x1F

			// Ultrasonic periods are not output.
			if tc.timer.period >= 2 {
				tc.timer.addOutput(triangleSequence[tc.pos])
			}
		}
	}
}

func (tc *TriangleChannel) reset(soft bool) {
	tc.timer.reset()
	tc.lenCounter.reset(soft)

	tc.linearCounter = 0
	tc.linearCounterReload = 0
	tc.linearReload = false
	tc.linearCtrl = false
	tc.pos = 0
}

func (tc *TriangleChannel) WriteLINEAR(_, val uint8) {
	tc.apu.Run()
	tc.linearCtrl = val&0x80 != 0
	tc.linearCounterReload = val & 0x7F
	tc.lenCounter.init(tc.linearCtrl)

	log.ModSound.DebugZ("write triangle linear").
		Bool("ctrl", tc.linearCtrl).
		Uint8("reload", tc.linearCounterReload).
		End()
}

func (tc *TriangleChannel) WriteUNUSED(_, _ uint8) {
	tc.apu.Run()
}

func (tc *TriangleChannel) WriteTIMER(_, val uint8) {
	tc.apu.Run()
	tc.timer.period = (tc.timer.period & 0xFF00) | uint16(val)
}

func (tc *TriangleChannel) WriteLENGTH(_, val uint8) {
	tc.apu.Run()

	tc.lenCounter.load(val >> 3)
	tc.timer.period = (tc.timer.period & 0xFF) | (uint16(val&0x07) << 8)
	tc.linearReload = true

	log.ModSound.DebugZ("write triangle length").
		Uint16("period", tc.timer.period).
		Uint8("len", val>>3).
		End()
}

func (tc *TriangleChannel) tickLinearCounter() {
	if tc.linearReload {
		tc.linearCounter = tc.linearCounterReload
	} else if tc.linearCounter > 0 {
		tc.linearCounter--
	}

	if !tc.linearCtrl {
		tc.linearReload = false
	}
}

func (tc *TriangleChannel) tickLengthCounter()   { tc.lenCounter.tick() }
func (tc *TriangleChannel) reloadLengthCounter() { tc.lenCounter.applyReload() }
func (tc *TriangleChannel) endFrame()            { tc.timer.endFrame() }
func (tc *TriangleChannel) setEnabled(en bool)   { tc.lenCounter.setEnabled(en) }
func (tc *TriangleChannel) status() bool         { return tc.lenCounter.status() }
func (tc *TriangleChannel) output() uint8        { return uint8(tc.timer.lastOutput) }
