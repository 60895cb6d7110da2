package apu

var lengthLUT = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

type lengthCounter struct {
	apu     *APU
	channel Channel

	enabled  bool
	halt     bool
	newHalt  bool
	counter  uint8
	reload   uint8
	prevSeen uint8
}

func (lc *lengthCounter) init(halt bool) {
	lc.apu.needToRun = true
	lc.newHalt = halt
}

// load schedules a counter reload with the given table index. The reload
// only takes effect after the frame counter had a chance to clock the
// counter on the same cycle.
func (lc *lengthCounter) load(idx uint8) {
	if lc.enabled {
		lc.reload = lengthLUT[idx&0x1F]
		lc.prevSeen = lc.counter
		lc.apu.needToRun = true
	}
}

func (lc *lengthCounter) reset(soft bool) {
	lc.enabled = false
	if soft && lc.channel == Triangle {
		// Triangle length counter is unaffected by a soft reset.
		return
	}
	lc.halt = false
	lc.newHalt = false
	lc.counter = 0
	lc.reload = 0
	lc.prevSeen = 0
}

func (lc *lengthCounter) status() bool {
	return lc.counter > 0
}

func (lc *lengthCounter) applyReload() {
	if lc.reload != 0 {
		if lc.counter == lc.prevSeen {
			lc.counter = lc.reload
		}
		lc.reload = 0
	}
	lc.halt = lc.newHalt
}

func (lc *lengthCounter) tick() {
	if lc.counter > 0 && !lc.halt {
		lc.counter--
	}
}

func (lc *lengthCounter) setEnabled(enabled bool) {
	if !enabled {
		lc.counter = 0
	}
	lc.enabled = enabled
}
