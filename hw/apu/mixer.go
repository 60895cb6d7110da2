package apu

import (
	"slices"

	"github.com/arl/blip"

	"nesdbg/hw/hwdefs"
)

const (
	SampleRate    = 48000
	ntscClockRate = 1789773

	// Channel deltas are accumulated for at most cycleLength CPU cycles before
	// being flushed into the band-limited buffer.
	cycleLength = 10000

	maxSamplesPerFlush = 1024

	// Number of mixed samples kept until the consumer clears them.
	maxBufferedSamples = SampleRate
)

// Mixer accumulates the output level changes of the 5 channels, mixes them
// with the non-linear NES DAC formula and synthesizes mono 16-bit samples at
// SampleRate.
type Mixer struct {
	buf     *blip.Buffer
	prevOut int16

	volumes    [hwdefs.NumAudioChannels]float64
	timestamps []uint32
	chanoutput [hwdefs.NumAudioChannels][cycleLength]int16
	curOutput  [hwdefs.NumAudioChannels]int16

	tmp     [maxSamplesPerFlush]int16
	samples []int16
}

func NewMixer() *Mixer {
	m := &Mixer{
		buf: blip.NewBuffer(maxSamplesPerFlush),
	}
	m.Reset()
	return m
}

func (m *Mixer) Reset() {
	m.prevOut = 0
	m.buf.Clear()
	m.buf.SetRates(ntscClockRate, SampleRate)
	m.timestamps = m.timestamps[:0]
	m.samples = m.samples[:0]

	for i := range hwdefs.NumAudioChannels {
		m.volumes[i] = 1.0
	}
	for i := range m.chanoutput {
		clear(m.chanoutput[i][:])
	}
	clear(m.curOutput[:])
}

// SetVolume sets the volume of a channel, in [0, 1].
func (m *Mixer) SetVolume(ch Channel, vol float64) {
	m.volumes[ch] = min(max(vol, 0), 1)
}

func (m *Mixer) addDelta(ch Channel, time uint32, delta int16) {
	if delta != 0 {
		m.timestamps = append(m.timestamps, time)
		m.chanoutput[ch][time] += delta
	}
}

func (m *Mixer) channelOutput(ch Channel) float64 {
	return float64(m.curOutput[ch]) * m.volumes[ch]
}

func (m *Mixer) outputVolume() int16 {
	squareOutput := m.channelOutput(Square1) + m.channelOutput(Square2)
	tndOutput := m.channelOutput(DPCM) +
		2.7516713261*m.channelOutput(Triangle) +
		1.8493587125*m.channelOutput(Noise)

	squareVolume := uint16((95.88 * 5000.0) / (8128.0/squareOutput + 100.0))
	tndVolume := uint16((159.79 * 5000.0) / (22638.0/tndOutput + 100.0))

	return int16(squareVolume + tndVolume)
}

// endFrame mixes the deltas accumulated during the last 'time' cycles and
// appends the synthesized samples to the sample buffer.
func (m *Mixer) endFrame(time uint32) {
	slices.Sort(m.timestamps)
	m.timestamps = slices.Compact(m.timestamps)

	for _, stamp := range m.timestamps {
		for ch := range hwdefs.NumAudioChannels {
			m.curOutput[ch] += m.chanoutput[ch][stamp]
			m.chanoutput[ch][stamp] = 0
		}

		out := m.outputVolume() * 4
		m.buf.AddDelta(uint64(stamp), int32(out-m.prevOut))
		m.prevOut = out
	}
	m.timestamps = m.timestamps[:0]

	m.buf.EndFrame(int(time))

	n := m.buf.ReadSamples(m.tmp[:], len(m.tmp), blip.Mono)
	m.samples = append(m.samples, m.tmp[:n]...)
	if extra := len(m.samples) - maxBufferedSamples; extra > 0 {
		m.samples = append(m.samples[:0], m.samples[extra:]...)
	}
}

// Samples returns the mono samples synthesized since the last call to
// ClearSamples. The returned slice must not be modified and is only valid
// until the APU runs again.
func (m *Mixer) Samples() []int16 {
	return m.samples
}

func (m *Mixer) ClearSamples() {
	m.samples = m.samples[:0]
}
