package apu

import "nesdbg/hw/hwdefs"

type Channel uint8

const (
	Square1 Channel = iota
	Square2
	Triangle
	Noise
	DPCM
)

var channelNames = [hwdefs.NumAudioChannels]string{"square1", "square2", "triangle", "noise", "dmc"}

func (c Channel) String() string {
	if int(c) < len(channelNames) {
		return channelNames[c]
	}
	return "unknown"
}

type FrameType uint8

const (
	NoFrame FrameType = iota
	QuarterFrame
	HalfFrame
)

// CPU is the view the APU has of the CPU: the IRQ line, the DMC DMA unit and
// the cycle counter (used for the odd/even cycle alignments).
type CPU interface {
	CurrentCycle() int64

	SetIRQSource(src hwdefs.IRQSource)
	HasIRQSource(src hwdefs.IRQSource) bool
	ClearIRQSource(src hwdefs.IRQSource)

	StartDMCTransfer()
	StopDMCTransfer()
}

// Event is an APU occurrence a debugger can break on. Values are stable.
type Event uint8

const (
	EventIRQ                  Event = iota // frame counter or DMC IRQ asserted
	EventDMCDMA                            // DMC sample fetch requested
	EventLengthCounterClocked              // half frame
	EventLinearCounterClocked              // quarter frame
	EventSequencerStep                     // frame sequencer reached a step

	NumEvents = 5
)

var eventNames = [NumEvents]string{"irq", "dmc-dma", "length-counter", "linear-counter", "sequencer-step"}

func (ev Event) String() string {
	if int(ev) < len(eventNames) {
		return eventNames[ev]
	}
	return "unknown"
}
