package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"nesdbg/emu/log"
)

type (
	CLI struct {
		Run      Run      `cmd:"" help:"Run ROM until a break, report the CPU state."`
		Trace    Trace    `cmd:"" help:"Write the CPU execution trace of a ROM."`
		Disasm   Disasm   `cmd:"" help:"Disassemble the PRG ROM mapped at power up."`
		CDL      CDL      `cmd:"" help:"Run ROM and report its code/data log." name:"cdl"`
		Profile  Profile  `cmd:"" help:"Run ROM and report the execution markers."`
		Serve    Serve    `cmd:"" help:"Serve the remote debugger protocol."`
		RomInfos RomInfos `cmd:"" help:"Show ROM infos." name:"rom-infos"`
		Version  Version  `cmd:"" help:"Show nesdbg version."`

		Log    logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
		Config string     `help:"Configuration file." type:"path" placeholder:"FILE"`
	}

	RomArgs struct {
		RomPath string   `arg:"" name:"/path/to/rom" help:"iNES ROM file." type:"existingfile"`
		Symbols string   `name:"symbols" help:"ld65 label file (-Ln)." type:"existingfile"`
		Break   []string `name:"break" short:"b" help:"${break_help}" placeholder:"SPEC"`
		Marker  []string `name:"marker" help:"Execution marker, as absolute PRG addresses." placeholder:"@START-@END"`
	}

	Run struct {
		RomArgs
		Frames     int   `name:"frames" help:"Maximum number of frames to run, 0 for no limit." default:"0"`
		Cycles     int64 `name:"cycles" help:"Maximum number of CPU cycles to run, instead of frames."`
		SaveConfig bool  `name:"save-config" help:"Save breakpoints and markers in the configuration."`
	}

	Trace struct {
		RomArgs
		Cycles int64    `name:"cycles" help:"Number of CPU cycles to trace, 0 to trace until a break or Ctrl-C." default:"100000"`
		Out    *outfile `name:"out" help:"Write CPU trace log." placeholder:"FILE|stdout|stderr" default:"stdout"`
	}

	Disasm struct {
		RomPath string   `arg:"" name:"/path/to/rom" type:"existingfile"`
		Symbols string   `name:"symbols" help:"ld65 label file (-Ln)." type:"existingfile"`
		Addr    hexAddr  `name:"addr" help:"Start address, PC after reset by default."`
		Count   int      `name:"count" short:"n" help:"Number of instructions." default:"32"`
		Out     *outfile `name:"out" placeholder:"FILE|stdout|stderr" default:"stdout"`
	}

	CDL struct {
		RomArgs
		Frames int    `name:"frames" help:"Number of frames to run." default:"60"`
		Out    string `name:"out" help:"Write the code/data map as a 256x256 PNG." type:"path" placeholder:"FILE.png"`
	}

	Profile struct {
		RomArgs
		Frames int    `name:"frames" help:"Number of frames to run." default:"600"`
		Visual string `name:"visual" help:"Write the execution visualizer of the last frame as a 341x262 PNG." type:"path" placeholder:"FILE.png"`
	}

	Serve struct {
		RomArgs
		Addr string `name:"addr" help:"Listen address, from the configuration by default."`
	}

	RomInfos struct {
		RomPath string `arg:"" name:"/path/to/rom" type:"existingfile"`
	}

	Version struct{}
)

var vars = kong.Vars{
	"log_help":   "Enable debug logging for specified modules.",
	"break_help": "Add a breakpoint, e.g. 'exec $8000', 'write $2000-$2007', 'reg A == $10', 'ppu vblank'.",
}

func parseArgs(args []string) (*kong.Context, *CLI) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("nesdbg"),
		kong.Description("NES emulator core with debugger instrumentation."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	return ctx, &cli
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all debug logs.
    - all                    Enable all debug logs.
`
	var strs []string
	for _, m := range log.ModuleNames() {
		strs = append(strs, "    - "+m)
	}
	fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm *logModMask) Decode(ctx *kong.DecodeContext) error {
	var s string
	if err := ctx.Scan.PopValueInto("log", &s); err != nil {
		return err
	}
	if names := strings.Split(s, ","); len(names) > 1 {
		for _, n := range names {
			if n == "all" || n == "no" {
				return fmt.Errorf("cannot combine '%s' with other log modules", n)
			}
		}
	}

	mask, err := log.ParseMask(s)
	if err != nil {
		return err
	}
	*lm = logModMask(mask)
	log.EnableDebugModules(mask)
	return nil
}

// hexAddr is a CPU address given as $C000, 0xC000 or C000.
type hexAddr struct {
	addr uint16
	set  bool
}

// Implements kong.MapperValue interface.
func (a *hexAddr) Decode(ctx *kong.DecodeContext) error {
	var s string
	if err := ctx.Scan.PopValueInto("addr", &s); err != nil {
		return err
	}
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "$"), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return fmt.Errorf("invalid address %q", s)
	}
	a.addr, a.set = uint16(v), true
	return nil
}

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode decodes FILE|stdout|stderr into an io.WriteCloser
// that writes to that file.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	if err := ctx.Scan.PopValueInto("file", &f.name); err != nil {
		return err
	}
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
