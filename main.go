package main

import (
	"os"

	"nesdbg/emu"
)

// globals are bound to every command.
type globals struct {
	cfg     emu.Config
	cfgPath string // empty for the default location
}

func main() {
	ctx, cli := parseArgs(os.Args[1:])

	g := &globals{
		cfg:     emu.LoadConfigOrDefault(cli.Config),
		cfgPath: cli.Config,
	}
	checkf(ctx.Run(g), "%s failed", ctx.Command())
}
