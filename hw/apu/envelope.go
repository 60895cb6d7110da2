package apu

type envelope struct {
	lenCounter lengthCounter

	constant bool
	volume   uint8

	start   bool
	divider int8
	counter uint8
}

// init decodes the envelope part of the $4000/$4004/$400C registers.
func (env *envelope) init(reg uint8) {
	env.lenCounter.init(reg&0x20 != 0)
	env.constant = reg&0x10 != 0
	env.volume = reg & 0x0F
}

func (env *envelope) restart() {
	env.start = true
}

// level is the volume the channel outputs when not otherwise muted.
func (env *envelope) level() uint8 {
	if !env.lenCounter.status() {
		return 0
	}
	if env.constant {
		return env.volume
	}
	return env.counter
}

func (env *envelope) reset(soft bool) {
	env.lenCounter.reset(soft)
	env.constant = false
	env.volume = 0
	env.start = false
	env.divider = 0
	env.counter = 0
}

func (env *envelope) tick() {
	if env.start {
		env.start = false
		env.counter = 15
		env.divider = int8(env.volume)
		return
	}

	env.divider--
	if env.divider < 0 {
		env.divider = int8(env.volume)
		if env.counter > 0 {
			env.counter--
		} else if env.lenCounter.halt {
			// The halt flag doubles as the envelope loop flag.
			env.counter = 15
		}
	}
}
