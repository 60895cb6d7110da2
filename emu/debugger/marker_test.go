package debugger

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMarkerLifecycle(t *testing.T) {
	var ms MarkerSet

	if _, err := ms.FindInProgressMarker(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("FindInProgressMarker on empty set = %v", err)
	}
	if err := ms.CompleteMarker(0, 0x10); !errors.Is(err, ErrNoMarkerInProgress) {
		t.Fatalf("CompleteMarker on unset marker = %v", err)
	}

	idx, err := ms.AddMarker(0x100)
	if err != nil || idx != 0 {
		t.Fatalf("AddMarker = %d, %v", idx, err)
	}
	ms.advance(100)
	ms.frame()
	ms.advance(20)

	if got, _ := ms.FindInProgressMarker(); got != 0 {
		t.Fatalf("FindInProgressMarker = %d, want 0", got)
	}
	if err := ms.CompleteMarker(0, 0x180); err != nil {
		t.Fatal(err)
	}
	ms.advance(1000)

	m, _ := ms.Marker(0)
	want := Marker{
		State:    MarkerComplete,
		StartAbs: 0x100,
		EndAbs:   0x180,
		Cycles:   120,
		Frames:   1,
		Color:    MarkerPalette[0],
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("marker mismatch (-want +got):\n%s", diff)
	}

	if err := ms.CompleteMarker(0, 0x200); !errors.Is(err, ErrNoMarkerInProgress) {
		t.Errorf("CompleteMarker twice = %v", err)
	}
	if _, err := ms.Marker(NumMarkers); !errors.Is(err, ErrBadIndex) {
		t.Errorf("Marker(%d) = %v", NumMarkers, err)
	}

	ms.ClearAllMarkers()
	if n := len(ms.Enumerate()); n != 0 {
		t.Errorf("%d markers after ClearAllMarkers", n)
	}
}

func TestMarkerSetFull(t *testing.T) {
	var ms MarkerSet
	for i := range NumMarkers {
		if _, err := ms.AddMarker(AbsAddr(i)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := ms.AddMarker(0x100); !errors.Is(err, ErrTableFull) {
		t.Errorf("AddMarker on full set = %v, want ErrTableFull", err)
	}
}

func TestMarkerProfiling(t *testing.T) {
	var ms MarkerSet
	ms.AddMarker(0x100)
	ms.CompleteMarker(0, 0x180)

	// Two runs of 50 and 30 cycles, with unrelated code in between.
	ms.execute(0x100, 1000)
	ms.execute(0x140, 1020)
	ms.execute(0x180, 1050)
	ms.execute(0x200, 1060)
	ms.execute(0x100, 2000)
	ms.execute(NoAbsAddr, 2010)
	ms.execute(0x180, 2030)
	// End without start isn't a run.
	ms.execute(0x180, 3000)

	m, _ := ms.Marker(0)
	want := Marker{
		Runs:        2,
		LastCycles:  30,
		MinCycles:   30,
		MaxCycles:   50,
		TotalCycles: 80,
	}
	opt := cmpopts.IgnoreFields(Marker{}, "State", "StartAbs", "EndAbs", "Cycles", "Frames", "Color")
	if diff := cmp.Diff(want, m, opt); diff != "" {
		t.Errorf("marker mismatch (-want +got):\n%s", diff)
	}
	if avg := m.AvgCycles(); avg != 40 {
		t.Errorf("AvgCycles = %d, want 40", avg)
	}
}

func TestMarkerSameStartEnd(t *testing.T) {
	// A marker on a single address measures one loop iteration.
	var ms MarkerSet
	ms.AddMarker(0x100)
	ms.CompleteMarker(0, 0x100)

	ms.execute(0x100, 0)
	ms.execute(0x100, 100)
	ms.execute(0x100, 250)

	m, _ := ms.Marker(0)
	if m.Runs != 2 || m.MinCycles != 100 || m.MaxCycles != 150 {
		t.Errorf("runs=%d min=%d max=%d, want 2, 100, 150", m.Runs, m.MinCycles, m.MaxCycles)
	}
}

func TestMarkerRestore(t *testing.T) {
	var ms MarkerSet
	markers := []Marker{
		{State: MarkerComplete, StartAbs: 0x10, EndAbs: 0x20},
		{State: MarkerStarted, StartAbs: 0x30, EndAbs: NoAbsAddr, Cycles: 7},
	}
	if err := ms.Restore(markers); err != nil {
		t.Fatal(err)
	}

	ms.advance(3)
	ms.execute(0x10, 100)
	ms.execute(0x20, 110)

	all := ms.Enumerate()
	if len(all) != 2 {
		t.Fatalf("%d markers, want 2", len(all))
	}
	if all[0].Runs != 1 || all[0].Color != MarkerPalette[0] {
		t.Errorf("marker 0: runs=%d color=%v", all[0].Runs, all[0].Color)
	}
	if all[1].Cycles != 10 {
		t.Errorf("marker 1: cycles=%d, want 10", all[1].Cycles)
	}

	if err := ms.Restore(make([]Marker, NumMarkers+1)); !errors.Is(err, ErrTableFull) {
		t.Errorf("Restore(too many) = %v", err)
	}
}

func TestMarkerVisualizer(t *testing.T) {
	render := func() []byte {
		var ms MarkerSet
		ms.AddMarker(0x100)
		ms.CompleteMarker(0, 0x180)

		ms.advance(4) // dots 0-11
		ms.execute(0x100, 4)
		ms.advance(10) // dots 12-41, in marker 0
		ms.execute(0x180, 14)
		ms.advance(2) // dots 42-47
		ms.frame()

		// The frame in progress isn't rendered.
		ms.execute(0x100, 20)
		ms.advance(100)

		buf := make([]byte, VisualizerImageSize)
		ms.RenderVisualizer(buf)
		return buf
	}

	buf := render()
	line := buf[visualizerFirstLine*VisualizerWidth:]
	for dot := range 48 {
		want := uint8(VisualizerNone)
		if dot >= 12 && dot < 42 {
			want = 1
		}
		if line[dot] != want {
			t.Errorf("scanline %d dot %d = %d, want %d", visualizerFirstLine, dot, line[dot], want)
		}
	}
	if n := countNonZero(buf); n != 30 {
		t.Errorf("%d marked dots, want 30", n)
	}

	if diff := cmp.Diff(buf, render()); diff != "" {
		t.Errorf("RenderVisualizer not deterministic (-first +second):\n%s", diff)
	}
}

func TestMarkerVisualizerStarted(t *testing.T) {
	var ms MarkerSet
	ms.AddMarker(0x100)
	ms.AddMarker(0x200)

	ms.advance(200) // 600 dots, over 2 scanlines
	ms.frame()

	buf := make([]byte, VisualizerImageSize)
	ms.RenderVisualizer(buf)

	// Both markers are started, the first one is shown.
	if n := countNonZero(buf); n != 600 {
		t.Errorf("%d marked dots, want 600", n)
	}
	next := buf[(visualizerFirstLine+1)*VisualizerWidth:]
	if next[258] != 1 || next[259] != VisualizerNone {
		t.Errorf("scanline %d dots 258-259 = %d %d, want 1 0", visualizerFirstLine+1, next[258], next[259])
	}

	// Cycles past the end of a frame are dropped.
	ms.advance(1 << 20)
	ms.frame()
	ms.RenderVisualizer(buf)
	if n := countNonZero(buf); n != VisualizerImageSize {
		t.Errorf("%d marked dots, want %d", n, VisualizerImageSize)
	}
}

func countNonZero(buf []byte) int {
	n := 0
	for _, b := range buf {
		if b != 0 {
			n++
		}
	}
	return n
}
