package emu

import (
	"context"
	"flag"
	"io"
	"testing"

	"nesdbg/emu/log"
	"nesdbg/ines"
)

var romPath = flag.String("rom", "", "ROM file to load for BenchmarkCPUSpeed")

func TestEmulatorRun(t *testing.T) {
	e, err := Launch(nromImage(t, countLoop), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	res := e.Run(context.Background(), 3)
	if res.Stopped() {
		t.Fatalf("unexpected break %q", res.Break)
	}
	if e.Frames() != 3 {
		t.Errorf("Frames = %d, want 3", e.Frames())
	}
	if e.NES.CPU().PC != 0x800B {
		t.Errorf("PC = $%04X, want $800B", e.NES.CPU().PC)
	}
}

func TestEmulatorRunBreak(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debugger.Breakpoints = []string{"ppu vblank"}
	e, err := Launch(nromImage(t, countLoop), cfg)
	if err != nil {
		t.Fatal(err)
	}

	res := e.Run(context.Background(), 0)
	if !res.Stopped() {
		t.Fatal("Run should stop on the vblank breakpoint")
	}
	if e.Frames() != 0 {
		t.Errorf("Frames = %d, want 0", e.Frames())
	}
}

func TestEmulatorStop(t *testing.T) {
	e, err := Launch(nromImage(t, countLoop), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	e.Stop()
	e.Run(context.Background(), 0)
	if e.Frames() != 0 {
		t.Errorf("Frames = %d after Stop, want 0", e.Frames())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e.Run(ctx, 0)
	if e.Frames() != 0 {
		t.Errorf("Frames = %d with canceled context, want 0", e.Frames())
	}
}

func TestEmulatorReset(t *testing.T) {
	e, err := Launch(nromImage(t, countLoop), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	e.Run(context.Background(), 1)
	if e.NES.Peek(0x10) != 5 {
		t.Fatalf("Peek($10) = %d, want 5", e.NES.Peek(0x10))
	}

	e.Restart()
	e.Run(context.Background(), 2)
	// The restart happens after the first frame.
	if e.NES.CPU().PC != 0x800B || e.NES.CPU().X != 5 {
		t.Errorf("PC = $%04X X = %d after restart", e.NES.CPU().PC, e.NES.CPU().X)
	}
	if e.NES.PPU.Frame != 1 {
		t.Errorf("PPU frame = %d after restart, want 1", e.NES.PPU.Frame)
	}
}

func BenchmarkCPUSpeed(b *testing.B) {
	if *romPath == "" {
		b.Skip("missing -rom flag")
	}
	log.SetOutput(io.Discard)
	b.ReportAllocs()

	rom, err := ines.Open(*romPath)
	if err != nil {
		b.Fatal(err)
	}
	nes, err := New(rom, DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	const nframes = 300
	nloops := 0
	for b.Loop() {
		for range nframes {
			nes.RunFrame()
		}
		nloops++
	}
	b.ReportMetric(float64(nframes*nloops)/b.Elapsed().Seconds(), "frames/s")
}
