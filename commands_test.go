package main

import (
	"context"
	"strings"
	"testing"

	"nesdbg/emu"
	"nesdbg/emu/debugger"
	"nesdbg/ines"
)

func testNES(t *testing.T) *emu.NES {
	t.Helper()

	// $8000  LDA #$01
	// $8002  JSR $8006
	// $8005  BRK
	// $8006  RTS
	prg := make([]byte, 0x4000)
	copy(prg, []byte{0xA9, 0x01, 0x20, 0x06, 0x80, 0x00, 0x60})
	prg[0x3FFC], prg[0x3FFD] = 0x00, 0x80

	rom, err := ines.New(0, ines.VertMirroring, prg, make([]byte, 0x2000))
	if err != nil {
		t.Fatal(err)
	}
	nes, err := emu.New(rom, emu.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return nes
}

func TestWriteListing(t *testing.T) {
	nes := testNES(t)
	syms := debugger.NewSymbols()
	syms.AddLabel("sub", 0x8006)
	nes.Debugger().SetSymbols(syms)

	var sb strings.Builder
	writeListing(&sb, nes, 0x8000, 4)

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines:\n%s", len(lines), sb.String())
	}
	if !strings.HasPrefix(lines[0], "> 8000") || !strings.Contains(lines[0], "LDA #$01") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[3] != "sub:" {
		t.Errorf("line 3 = %q, want label", lines[3])
	}
	if !strings.HasPrefix(lines[4], "  8006") {
		t.Errorf("line 4 = %q", lines[4])
	}
}

func TestPrintBreak(t *testing.T) {
	nes := testNES(t)
	if _, err := nes.Debugger().AddBreakpointSpec("exec $8006"); err != nil {
		t.Fatal(err)
	}
	if res := nes.RunUntilBreak(100); !res.Stopped() {
		t.Fatal("breakpoint not hit")
	}

	var sb strings.Builder
	printBreak(&sb, nes, true)
	out := sb.String()
	for _, want := range []string{
		"at $8006",
		"breakpoint #0: exec $8006",
		"A:01",
		"IRQ:none",
		"call stack:",
		"> 8006",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output doesn't contain %q:\n%s", want, out)
		}
	}
}

func TestWriteMarkers(t *testing.T) {
	markers := []debugger.IndexedMarker{
		{Index: 0, Marker: debugger.Marker{
			State: debugger.MarkerComplete, StartAbs: 0x10, EndAbs: 0x20,
			Runs: 2, LastCycles: 100, MinCycles: 90, MaxCycles: 100, TotalCycles: 190,
		}},
		{Index: 1, Marker: debugger.Marker{
			State: debugger.MarkerStarted, StartAbs: 0x30, EndAbs: debugger.NoAbsAddr,
			Cycles: 1234, Frames: 1,
		}},
	}
	var sb strings.Builder
	if err := writeMarkers(&sb, markers); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{"@00010", "@00020", "complete", "95", "1234 cycles", "started"} {
		if !strings.Contains(out, want) {
			t.Errorf("output doesn't contain %q:\n%s", want, out)
		}
	}
}

func TestRunNES(t *testing.T) {
	nes := testNES(t)

	// Unbounded frame runs stop once the context is done.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if res, frames := runNES(ctx, nes, 0, 0); res.Stopped() || frames != 0 {
		t.Errorf("runNES(cancelled) = %+v, %d frames", res, frames)
	}

	if res, frames := runNES(context.Background(), nes, 0, 2); res.Stopped() || frames != 2 {
		t.Errorf("runNES(2 frames) = %+v, %d frames", res, frames)
	}

	if res, frames := runNES(context.Background(), nes, 50, 0); res.Cycles < 50 || frames != 0 {
		t.Errorf("runNES(50 cycles) = %+v, %d frames", res, frames)
	}
}

func TestVisualizerImage(t *testing.T) {
	nes := testNES(t)
	markers := nes.Debugger().Markers()
	if _, err := nes.Debugger().AddMarker(0x8000); err != nil {
		t.Fatal(err)
	}
	runNES(context.Background(), nes, 0, 2)

	img := visualizerImage(markers)
	if b := img.Bounds(); b.Dx() != debugger.VisualizerWidth || b.Dy() != debugger.VisualizerHeight {
		t.Fatalf("image bounds = %v", b)
	}
	if len(img.Palette) != debugger.NumMarkers+1 {
		t.Errorf("palette has %d colors", len(img.Palette))
	}
	if got := img.ColorIndexAt(0, 0); got != 1 {
		t.Errorf("pixel (0, 0) = %d, want marker 0", got)
	}
}
