package emu

import (
	"context"
	"sync/atomic"
	"time"

	"nesdbg/emu/log"
	"nesdbg/hw"
	"nesdbg/ines"
)

// Emulator runs a NES frame after frame, without any output device.
type Emulator struct {
	NES *NES

	// These are accessed concurrently by the emulator loop and its
	// controllers (signal handlers, remote debugger).
	quit    atomic.Bool
	paused  atomic.Bool
	reset   atomic.Bool
	restart atomic.Bool

	frames uint64
}

// Launch powers up the NES. It doesn't start the emulation loop, call Run
// for that.
func Launch(rom *ines.Rom, cfg Config) (*Emulator, error) {
	nes, err := New(rom, cfg)
	if err != nil {
		return nil, err
	}
	return &Emulator{NES: nes}, nil
}

// Frames returns the number of frames run since Launch.
func (e *Emulator) Frames() uint64 { return e.frames }

// Run runs nframes frames, or until ctx is done, the emulator is stopped,
// the CPU halts or a break occurs. nframes <= 0 means no limit. The result
// of the last frame is returned.
func (e *Emulator) Run(ctx context.Context, nframes int) hw.StepResult {
	var res hw.StepResult
	for n := 0; nframes <= 0 || n < nframes; {
		if ctx.Err() != nil || e.shouldStop() {
			break
		}
		if e.isPaused() {
			// Don't burn cpu while paused.
			time.Sleep(100 * time.Millisecond)
			continue
		}

		res = e.NES.RunFrame()
		if res.Stopped() {
			log.ModEmu.InfoZ("emulation stopped").
				String("reason", res.Break).
				Hex16("PC", e.NES.CPU().PC).
				End()
			break
		}
		n++
		e.frames++
		e.handleReset()
	}
	log.ModEmu.InfoZ("Emulation loop exited").Int64("frames", int64(e.frames)).End()
	return res
}

// SetPause, Stop, Reset and Restart allows to control
// the emulator loop in a concurrent-safe way.

func (e *Emulator) SetPause(pause bool) { e.paused.CompareAndSwap(!pause, pause) }
func (e *Emulator) Reset()              { e.reset.Store(true) }
func (e *Emulator) Restart()            { e.restart.Store(true) }
func (e *Emulator) Stop()               { e.quit.Store(true) }

func (e *Emulator) isPaused() bool {
	return e.paused.Load()
}

func (e *Emulator) shouldStop() bool {
	return e.quit.Load() || e.NES.CPU().IsHalted()
}

func (e *Emulator) handleReset() {
	if e.reset.CompareAndSwap(true, false) {
		log.ModEmu.InfoZ("Performing soft reset").End()
		e.NES.Reset(true)
	} else if e.restart.CompareAndSwap(true, false) {
		log.ModEmu.InfoZ("Performing hard reset").End()
		e.NES.Reset(false)
	}
}
