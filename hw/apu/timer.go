package apu

// timer is the channel divider. It also tracks the last output level of the
// channel and sends level changes to the mixer, timestamped with the cycle
// they happened at.
type timer struct {
	prevCycle  uint32
	timer      uint16
	period     uint16
	lastOutput int8

	channel Channel
	mixer   *Mixer
}

func (t *timer) reset() {
	t.timer = 0
	t.period = 0
	t.prevCycle = 0
	t.lastOutput = 0
}

func (t *timer) addOutput(output int8) {
	if output != t.lastOutput {
		t.mixer.addDelta(t.channel, t.prevCycle, int16(output)-int16(t.lastOutput))
		t.lastOutput = output
	}
}

// run runs the timer up to targetCycle, or until the divider reaches 0, in
// which case it returns true and the caller must clock its sequencer before
// calling run again.
func (t *timer) run(targetCycle uint32) bool {
	ncycles := uint16(targetCycle - t.prevCycle)

	if ncycles > t.timer {
		t.prevCycle += uint32(t.timer) + 1
		t.timer = t.period
		return true
	}

	t.timer -= ncycles
	t.prevCycle = targetCycle
	return false
}

func (t *timer) endFrame() {
	t.prevCycle = 0
}
