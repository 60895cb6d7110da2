package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"text/tabwriter"

	"github.com/go-faster/errors"

	"nesdbg/emu"
	"nesdbg/emu/debugger"
	"nesdbg/emu/log"
	"nesdbg/hw"
	"nesdbg/ines"
)

// load powers up the rom, with the debugger settings of the configuration
// and those of the command line.
func (a *RomArgs) load(g *globals) (*emu.NES, error) {
	rom, err := ines.Open(a.RomPath)
	if err != nil {
		return nil, err
	}
	if a.Symbols != "" {
		g.cfg.Debugger.Symbols = a.Symbols
	}
	g.cfg.Debugger.Breakpoints = append(g.cfg.Debugger.Breakpoints, a.Break...)
	g.cfg.Debugger.Markers = append(g.cfg.Debugger.Markers, a.Marker...)
	return emu.New(rom, g.cfg)
}

func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func (r *Run) Run(g *globals) error {
	ctx, cancel := interruptible()
	defer cancel()

	nes, err := r.load(g)
	if err != nil {
		return err
	}

	res, frames := runNES(ctx, nes, r.Cycles, r.Frames)
	if r.Cycles <= 0 {
		fmt.Printf("%d frames\n", frames)
	}
	if res.Stopped() {
		printBreak(os.Stdout, nes, g.cfg.General.FollowPC)
	} else {
		fmt.Printf("no break, PC=$%04X cycle %d\n", nes.CPU().PC, nes.CPU().Cycles)
	}

	if r.SaveConfig {
		g.cfg.Debugger = nes.DebuggerConfig(g.cfg.Debugger.Symbols)
		return emu.SaveConfig(g.cfg, g.cfgPath)
	}
	return nil
}

func (t *Trace) Run(g *globals) error {
	defer t.Out.Close()

	ctx, cancel := interruptible()
	defer cancel()

	g.cfg.TraceOut = t.Out
	nes, err := t.load(g)
	if err != nil {
		return err
	}
	if res, _ := runNES(ctx, nes, t.Cycles, 0); res.Stopped() {
		printBreak(os.Stderr, nes, false)
	}
	return nil
}

// runNES runs nes for the given number of CPU cycles or, if cycles is 0, of
// frames (0 for no limit). Frame runs return early once ctx is done. It
// returns the number of frames run.
func runNES(ctx context.Context, nes *emu.NES, cycles int64, frames int) (hw.StepResult, uint64) {
	if cycles > 0 {
		return nes.RunUntilBreak(cycles), 0
	}
	e := &emu.Emulator{NES: nes}
	res := e.Run(ctx, frames)
	return res, e.Frames()
}

func (d *Disasm) Run(g *globals) error {
	defer d.Out.Close()

	rom, err := ines.Open(d.RomPath)
	if err != nil {
		return err
	}
	if d.Symbols != "" {
		g.cfg.Debugger.Symbols = d.Symbols
	}
	nes, err := emu.New(rom, g.cfg)
	if err != nil {
		return err
	}

	pc := nes.CPU().PC
	if d.Addr.set {
		pc = d.Addr.addr
	}
	writeListing(d.Out, nes, pc, d.Count)
	return nil
}

func (c *CDL) Run(g *globals) error {
	ctx, cancel := interruptible()
	defer cancel()

	nes, err := c.load(g)
	if err != nil {
		return err
	}
	e := &emu.Emulator{NES: nes}
	if res := e.Run(ctx, c.Frames); res.Stopped() {
		printBreak(os.Stderr, nes, false)
	}

	cdl := nes.Debugger().CDL()
	st := cdl.Stats()
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 1, ' ', 0)
	fmt.Fprintf(tw, "frames:\t%d\n", e.Frames())
	fmt.Fprintf(tw, "touched:\t%d\n", st.Touched)
	fmt.Fprintf(tw, "opcodes:\t%d\n", st.Fetch)
	fmt.Fprintf(tw, "operands:\t%d\n", st.Operand)
	fmt.Fprintf(tw, "read:\t%d\n", st.Read)
	fmt.Fprintf(tw, "written:\t%d\n", st.Write)
	fmt.Fprintf(tw, "dma:\t%d\n", st.DMA)
	if err := tw.Flush(); err != nil {
		return err
	}

	if c.Out == "" {
		return nil
	}
	img := image.NewPaletted(image.Rect(0, 0, 256, 256), palette(debugger.CDLPalette[:]))
	cdl.Render(img.Pix)
	return writePNG(c.Out, img)
}

func palette(rgbs [][3]uint8) color.Palette {
	pal := make(color.Palette, len(rgbs))
	for i, rgb := range rgbs {
		pal[i] = color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}
	}
	return pal
}

// visualizerImage renders the execution visualizer of the last frame.
func visualizerImage(markers *debugger.MarkerSet) *image.Paletted {
	rgbs := append([][3]uint8{{0, 0, 0}}, debugger.MarkerPalette[:]...)
	img := image.NewPaletted(image.Rect(0, 0, debugger.VisualizerWidth, debugger.VisualizerHeight), palette(rgbs))
	markers.RenderVisualizer(img.Pix)
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	log.ModEmu.InfoZ("image saved").String("path", path).End()
	return f.Close()
}

func (p *Profile) Run(g *globals) error {
	ctx, cancel := interruptible()
	defer cancel()

	nes, err := p.load(g)
	if err != nil {
		return err
	}
	markers := nes.Debugger().Markers()
	if len(markers.Enumerate()) == 0 {
		return errors.New("no marker, use --marker")
	}

	e := &emu.Emulator{NES: nes}
	if res := e.Run(ctx, p.Frames); res.Stopped() {
		printBreak(os.Stderr, nes, false)
	}
	if err := writeMarkers(os.Stdout, markers.Enumerate()); err != nil {
		return err
	}
	if p.Visual == "" {
		return nil
	}
	return writePNG(p.Visual, visualizerImage(markers))
}

func writeMarkers(w io.Writer, markers []debugger.IndexedMarker) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tstart\tend\tstate\truns\tlast\tmin\tmax\tavg\tframe %\t")
	for _, m := range markers {
		if m.State == debugger.MarkerStarted {
			fmt.Fprintf(tw, "%d\t%s\t\t%s\t%d cycles\t%d frames\t\t\t\t\t\n",
				m.Index, m.StartAbs, m.State, m.Cycles, m.Frames)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%.1f\t\n",
			m.Index, m.StartAbs, m.EndAbs, m.State, m.Runs,
			m.LastCycles, m.MinCycles, m.MaxCycles, m.AvgCycles(), m.FrameBudget())
	}
	return tw.Flush()
}

func (s *Serve) Run(g *globals) error {
	ctx, cancel := interruptible()
	defer cancel()

	nes, err := s.load(g)
	if err != nil {
		return err
	}
	addr := s.Addr
	if addr == "" {
		addr = g.cfg.Server.Addr
	}
	return debugger.NewServer(addr).Serve(ctx, nes)
}

func (r *RomInfos) Run(*globals) error {
	rom, err := ines.Open(r.RomPath)
	if err != nil {
		return err
	}
	rom.PrintInfos(os.Stdout)
	return nil
}

func (Version) Run(*globals) error {
	version := "(devel)"
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		version = bi.Main.Version
	}
	fmt.Println("nesdbg", version)
	return nil
}

// printBreak reports why execution stopped and the CPU state.
func printBreak(w io.Writer, nes *emu.NES, followPC bool) {
	dbg := nes.Debugger()
	bi := dbg.LastBreak()
	cpu := nes.CPU()

	fmt.Fprintf(w, "break: %s at $%04X, cycle %d\n", bi.Reason, bi.PC, bi.Cycle)
	if bi.HasHit {
		fmt.Fprintf(w, "  breakpoint #%d: %s (hit %d times)\n",
			bi.Hit.Index, debugger.FormatBreakpoint(bi.Hit.Breakpoint, dbg.Events()), bi.Hit.Breakpoint.HitCount)
	}
	fmt.Fprintf(w, "A:%02X X:%02X Y:%02X P:%02X SP:%02X PC:%04X IRQ:%s\n",
		cpu.A, cpu.X, cpu.Y, uint8(cpu.P), cpu.SP, cpu.PC, cpu.IRQSources())

	if frames := dbg.CallStack(); len(frames) > 0 {
		fmt.Fprintln(w, "call stack:")
		for _, f := range frames {
			fmt.Fprintf(w, "  %-24s %s\n", f.Entry, f.Addr)
		}
	}

	if followPC {
		fmt.Fprintln(w, "code:")
		writeListing(w, nes, cpu.PC, 8)
	}

	if hist := dbg.TraceRing().History(8); len(hist) > 0 {
		fmt.Fprintln(w, "trace:")
		for _, e := range hist {
			fmt.Fprintln(w, " ", e)
		}
	}
}

// writeListing disassembles n instructions starting at pc, with labels.
func writeListing(w io.Writer, nes *emu.NES, pc uint16, n int) {
	cpu := nes.CPU()
	syms := nes.Debugger().Symbols()
	for range n {
		if syms != nil {
			if name, ok := syms.Symbol(debugger.LiveAddr(pc)); ok {
				fmt.Fprintf(w, "%s:\n", name)
			}
		}
		cur := "  "
		if pc == cpu.PC {
			cur = "> "
		}
		fmt.Fprintf(w, "%s%s\n", cur, cpu.Disasm(pc))
		pc += uint16(hw.OpcodeSize(nes.Peek(pc)))
	}
}
