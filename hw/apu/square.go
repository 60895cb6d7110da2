package apu

import (
	"nesdbg/emu/log"
	"nesdbg/hw/hwio"
)

// SquareChannel is one of the 2 pulse channels, at $4000 and $4004. Each
// contains the following: Envelope Generator, Sweep Unit, Timer with
// divide-by-two on the output, 8-step sequencer, Length Counter.
//
//	               +---------+    +---------+
//	               |  Sweep  |--->|Timer / 2|
//	               +---------+    +---------+
//	                    |              |
//	                    |              v
//	                    |         +---------+    +---------+
//	                    |         |Sequencer|    | Length  |
//	                    |         +---------+    +---------+
//	                    |              |              |
//	                    v              v              v
//	+---------+        |\             |\             |\          +---------+
//	|Envelope |------->| >----------->| >----------->| >-------->|   DAC   |
//	+---------+        |/             |/             |/          +---------+
type SquareChannel struct {
	apu      *APU
	envelope envelope
	timer    timer

	isChannel1 bool

	duty    uint8
	dutyPos uint8

	sweepEnabled      bool
	sweepPeriod       uint8
	sweepNegate       bool
	sweepShift        uint8
	reloadSweep       bool
	sweepDivider      uint8
	sweepTargetPeriod uint32
	realPeriod        uint16

	Duty   hwio.Reg8 `hwio:"offset=0x00,writeonly,wcb"`
	Sweep  hwio.Reg8 `hwio:"offset=0x01,writeonly,wcb"`
	Timer  hwio.Reg8 `hwio:"offset=0x02,writeonly,wcb"`
	Length hwio.Reg8 `hwio:"offset=0x03,writeonly,wcb"`
}

func (sc *SquareChannel) init(apu *APU, channel Channel) {
	sc.apu = apu
	sc.isChannel1 = channel == Square1
	sc.envelope.lenCounter = lengthCounter{apu: apu, channel: channel}
	sc.timer = timer{channel: channel, mixer: apu.mixer}
	hwio.MustInitRegs(sc)
}

func (sc *SquareChannel) WriteDUTY(_, val uint8) {
	sc.apu.Run()

	sc.envelope.init(val)
	sc.duty = (val & 0xC0) >> 6

	log.ModSound.DebugZ("write pulse duty").
		String("chan", sc.timer.channel.String()).
		Uint8("duty", sc.duty).
		End()
}

func (sc *SquareChannel) WriteSWEEP(_, val uint8) {
	sc.apu.Run()
	sc.initSweep(val)

	log.ModSound.DebugZ("write pulse sweep").
		String("chan", sc.timer.channel.String()).
		Hex8("val", val).
		End()
}

func (sc *SquareChannel) WriteTIMER(_, val uint8) {
	sc.apu.Run()
	sc.setPeriod((sc.realPeriod & 0x0700) | uint16(val))
}

func (sc *SquareChannel) WriteLENGTH(_, val uint8) {
	sc.apu.Run()

	sc.envelope.lenCounter.load(val >> 3)
	sc.setPeriod((sc.realPeriod & 0xFF) | (uint16(val&0x07) << 8))

	// Sequencer and envelope restart.
	sc.dutyPos = 0
	sc.envelope.restart()

	log.ModSound.DebugZ("write pulse length").
		String("chan", sc.timer.channel.String()).
		Uint8("len", val>>3).
		Uint16("period", sc.realPeriod).
		End()
}

// A period < 8, either set explicitly or via a sweep update, silences the
// channel. So does a sweep target overflowing 11 bits.
func (sc *SquareChannel) isMuted() bool {
	return sc.realPeriod < 8 || (!sc.sweepNegate && sc.sweepTargetPeriod > 0x7FF)
}

func (sc *SquareChannel) initSweep(val uint8) {
	sc.sweepEnabled = val&0x80 != 0
	sc.sweepNegate = val&0x08 != 0

	// The divider's period is set to P + 1
	sc.sweepPeriod = ((val & 0x70) >> 4) + 1
	sc.sweepShift = val & 0x07

	sc.updateTargetPeriod()
	sc.reloadSweep = true
}

func (sc *SquareChannel) updateTargetPeriod() {
	shifted := sc.realPeriod >> sc.sweepShift
	if sc.sweepNegate {
		sc.sweepTargetPeriod = uint32(sc.realPeriod - shifted)
		if sc.isChannel1 {
			// Pulse 1 negates with one's complement.
			sc.sweepTargetPeriod--
		}
	} else {
		sc.sweepTargetPeriod = uint32(sc.realPeriod + shifted)
	}
}

func (sc *SquareChannel) setPeriod(period uint16) {
	sc.realPeriod = period
	sc.timer.period = (sc.realPeriod * 2) + 1
	sc.updateTargetPeriod()
}

var squareDuty = [4][8]uint8{
	{0, 0, 0, 0, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 1, 1},
	{0, 0, 0, 0, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 0, 0},
}

func (sc *SquareChannel) updateOutput() {
	if sc.isMuted() {
		sc.timer.addOutput(0)
		return
	}
	out := squareDuty[sc.duty][sc.dutyPos] * sc.envelope.level()
	sc.timer.addOutput(int8(out))
}

func (sc *SquareChannel) run(targetCycle uint32) {
	for sc.timer.run(targetCycle) {
		sc.dutyPos = (sc.dutyPos - 1) & 0x07
		sc.updateOutput()
	}
}

func (sc *SquareChannel) reset(soft bool) {
	sc.envelope.reset(soft)
	sc.timer.reset()

	sc.duty = 0
	sc.dutyPos = 0
	sc.realPeriod = 0

	sc.sweepEnabled = false
	sc.sweepPeriod = 0
	sc.sweepNegate = false
	sc.sweepShift = 0
	sc.reloadSweep = false
	sc.sweepDivider = 0
	sc.sweepTargetPeriod = 0
	sc.updateTargetPeriod()
}

func (sc *SquareChannel) tickSweep() {
	sc.sweepDivider--
	if sc.sweepDivider == 0 {
		if sc.sweepShift > 0 && sc.sweepEnabled && sc.realPeriod >= 8 && sc.sweepTargetPeriod <= 0x7FF {
			sc.setPeriod(uint16(sc.sweepTargetPeriod))
		}
		sc.sweepDivider = sc.sweepPeriod
	}

	if sc.reloadSweep {
		sc.sweepDivider = sc.sweepPeriod
		sc.reloadSweep = false
	}
}

func (sc *SquareChannel) tickEnvelope()        { sc.envelope.tick() }
func (sc *SquareChannel) tickLengthCounter()   { sc.envelope.lenCounter.tick() }
func (sc *SquareChannel) reloadLengthCounter() { sc.envelope.lenCounter.applyReload() }
func (sc *SquareChannel) endFrame()            { sc.timer.endFrame() }
func (sc *SquareChannel) setEnabled(en bool)   { sc.envelope.lenCounter.setEnabled(en) }
func (sc *SquareChannel) status() bool         { return sc.envelope.lenCounter.status() }
func (sc *SquareChannel) output() uint8        { return uint8(sc.timer.lastOutput) }
