// Package hwdefs holds the definitions shared by the CPU and the devices
// wired to it.
package hwdefs

import "strings"

// IRQSource is a set of devices holding the CPU IRQ line low.
type IRQSource uint8

const (
	External IRQSource = 1 << iota // cartridge
	FrameCounter
	DMC

	NumIRQSources = 3
)

var irqSrcNames = [NumIRQSources]string{
	"ext",
	"fcnt",
	"dmc",
}

// String returns the names of the sources, separated by '|', or "none".
func (irq IRQSource) String() string {
	if irq == 0 {
		return "none"
	}
	var names []string
	for i := range NumIRQSources {
		if irq&(1<<i) != 0 {
			names = append(names, irqSrcNames[i])
		}
	}
	return strings.Join(names, "|")
}

// Reset kinds, passed as the 'soft' argument of Reset methods.
const (
	SoftReset = true
	HardReset = false
)

const NumAudioChannels = 5 // Square1, Square2, Triangle, Noise, DMC
