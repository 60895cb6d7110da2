package debugger

import (
	"strings"
	"testing"

	"nesdbg/hw/apu"
)

func TestWriteAPUState(t *testing.T) {
	st := apu.State{
		Cycle:           1234,
		Step:            3,
		LengthCounters:  [5]uint16{10, 0, 20, 0, 0x31},
		DMCIRQEnabled:   true,
		DMCSampleAddr:   0xC000,
		DMCSampleLen:    0x0311,
		DMCCurrentAddr:  0xC010,
		DMCSampleBuffer: 0x5A,
		DMCBufferFull:   true,
	}
	var sb strings.Builder
	if err := WriteAPUState(&sb, &st); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{
		"1234",
		"4-step (step 3)",
		"enabled=true asserted=false",
		"addr=$C000 len=$0311 pos=$C010",
		"$5A full=true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output doesn't contain %q:\n%s", want, out)
		}
	}
}
