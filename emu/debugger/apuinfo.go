package debugger

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/go-faster/jx"

	"nesdbg/hw/apu"
	"nesdbg/hw/hwdefs"
)

func sequencerMode(st *apu.State) string {
	if st.FiveStep {
		return "5-step"
	}
	return "4-step"
}

// EncodeAPUState writes the APU inspector state as a JSON object.
func EncodeAPUState(e *jx.Encoder, st *apu.State) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("cycle", func(e *jx.Encoder) { e.UInt64(st.Cycle) })
		e.Field("sequencer_mode", func(e *jx.Encoder) { e.Str(sequencerMode(st)) })
		e.Field("sequencer_step", func(e *jx.Encoder) { e.Int(int(st.Step)) })
		e.Field("channels", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range hwdefs.NumAudioChannels {
					e.Obj(func(e *jx.Encoder) {
						e.Field("name", func(e *jx.Encoder) { e.Str(apu.Channel(i).String()) })
						e.Field("enabled", func(e *jx.Encoder) { e.Bool(st.Enabled[i]) })
						e.Field("length_counter", func(e *jx.Encoder) { e.Int(int(st.LengthCounters[i])) })
						e.Field("dac", func(e *jx.Encoder) { e.Int(int(st.DAC[i])) })
					})
				}
			})
		})
		e.Field("linear_counter", func(e *jx.Encoder) { e.Int(int(st.LinearCounter)) })
		e.Field("frame_irq", func(e *jx.Encoder) { e.Bool(st.FrameIRQ) })
		e.Field("dmc", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("irq_enabled", func(e *jx.Encoder) { e.Bool(st.DMCIRQEnabled) })
				e.Field("irq_asserted", func(e *jx.Encoder) { e.Bool(st.DMCIRQAsserted) })
				e.Field("loop", func(e *jx.Encoder) { e.Bool(st.DMCLoop) })
				e.Field("sample_addr", func(e *jx.Encoder) { e.Int(int(st.DMCSampleAddr)) })
				e.Field("sample_len", func(e *jx.Encoder) { e.Int(int(st.DMCSampleLen)) })
				e.Field("sample_pos", func(e *jx.Encoder) { e.Int(int(st.DMCCurrentAddr)) })
				e.Field("buffer", func(e *jx.Encoder) { e.Int(int(st.DMCSampleBuffer)) })
				e.Field("buffer_full", func(e *jx.Encoder) { e.Bool(st.DMCBufferFull) })
			})
		})
	})
}

// WriteAPUState writes the APU inspector state as text.
func WriteAPUState(w io.Writer, st *apu.State) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "cycle:\t%d\n", st.Cycle)
	fmt.Fprintf(tw, "sequencer:\t%s (step %d)\n", sequencerMode(st), st.Step)
	fmt.Fprintf(tw, "frame IRQ:\t%t\n", st.FrameIRQ)
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "channel\tenabled\tlength\tdac\n")
	for i := range hwdefs.NumAudioChannels {
		fmt.Fprintf(tw, "%s\t%t\t%d\t%d\n", apu.Channel(i), st.Enabled[i], st.LengthCounters[i], st.DAC[i])
	}
	fmt.Fprintf(tw, "linear counter:\t%d\n", st.LinearCounter)
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "dmc IRQ:\tenabled=%t asserted=%t\n", st.DMCIRQEnabled, st.DMCIRQAsserted)
	fmt.Fprintf(tw, "dmc sample:\taddr=$%04X len=$%04X pos=$%04X loop=%t\n",
		st.DMCSampleAddr, st.DMCSampleLen, st.DMCCurrentAddr, st.DMCLoop)
	fmt.Fprintf(tw, "dmc buffer:\t$%02X full=%t\n", st.DMCSampleBuffer, st.DMCBufferFull)
	return tw.Flush()
}
