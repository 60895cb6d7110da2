package debugger

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestStateRoundTrip(t *testing.T) {
	d, _, _ := newTestDebugger(t, testProgram)
	for _, spec := range []string{
		"exec $8000 abs=$1C000",
		"read $0300-$03FF == $42 tmp",
		"write $2000 & $C0 == $40 off",
		"reg PC == $C123",
		"ppu scanline 241",
	} {
		mustAddSpec(t, d, spec)
	}
	d.Breakpoints().Remove(1)
	d.Markers().AddMarker(0x10)
	d.Markers().CompleteMarker(0, 0x20)
	d.Markers().AddMarker(0x30)

	st := d.State()
	buf, err := json.Marshal(st)
	if err != nil {
		t.Fatal(err)
	}

	var got State
	if err := json.Unmarshal(buf, &got); err != nil {
		t.Fatal(err)
	}
	opt := cmpopts.IgnoreFields(Marker{}, "Color")
	if diff := cmp.Diff(st, got, opt); diff != "" {
		t.Errorf("state round trip mismatch (-want +got):\n%s", diff)
	}

	d2, _, _ := newTestDebugger(t, testProgram)
	if err := d2.Restore(got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(st, d2.State()); diff != "" {
		t.Errorf("restored state mismatch (-want +got):\n%s", diff)
	}

	// Restore compacts indices.
	bps := d2.Breakpoints().Enumerate()
	if len(bps) != 4 || bps[1].Index != 1 || bps[1].Type != BreakOnCPUMemoryWrite {
		t.Errorf("restored breakpoints: %+v", bps)
	}
}

func TestStateDecode(t *testing.T) {
	const input = `{
		"version": 2,
		"breakpoints": [
			{"type": "exec", "item_kind": 1, "item1": 32768, "item2": 32768, "enabled": true, "extra": [1, 2]}
		],
		"markers": [
			{"state": "complete", "start_abs": 16, "end_abs": -1, "runs": 3}
		]
	}`
	var st State
	if err := st.UnmarshalJSON([]byte(input)); err != nil {
		t.Fatal(err)
	}
	want := State{
		Breakpoints: []Breakpoint{{
			Type:     BreakOnCPUExecution,
			ItemKind: ItemAddress,
			Item1:    0x8000,
			Item1Abs: NoAbsAddr,
			Item2:    0x8000,
			Enabled:  true,
		}},
		Markers: []Marker{{State: MarkerComplete, StartAbs: 16, EndAbs: NoAbsAddr, Runs: 3}},
	}
	if diff := cmp.Diff(want, st); diff != "" {
		t.Errorf("decoded state mismatch (-want +got):\n%s", diff)
	}
}

func TestStateDecodeErrors(t *testing.T) {
	for _, input := range []string{
		`{"breakpoints": [{"type": "jump"}]}`,
		`{"breakpoints": [{"item1": 65536}]}`,
		`{"breakpoints": [{"cond": 9}]}`,
		`{"breakpoints": [{"enabled": 1}]}`,
		`{"markers": [{"state": "paused"}]}`,
		`{"markers": [{"runs": -1}]}`,
		`{"markers": [`,
		`[]`,
	} {
		var st State
		if err := st.UnmarshalJSON([]byte(input)); err == nil {
			t.Errorf("UnmarshalJSON(%s) should fail", input)
		}
	}
}
