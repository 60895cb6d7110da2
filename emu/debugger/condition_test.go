package debugger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseBreakpoint(t *testing.T) {
	syms := NewSymbols()
	syms.AddLabel("reset_handler", 0xC000)
	syms.AddLabel(".nmi", 0xE000)

	tests := []struct {
		spec string
		want Breakpoint
	}{
		{
			spec: "exec $8000",
			want: Breakpoint{Type: BreakOnCPUExecution, ItemKind: ItemAddress, Item1: 0x8000, Item2: 0x8000},
		},
		{
			spec: "exec $8000 abs=$1C000",
			want: Breakpoint{Type: BreakOnCPUExecution, ItemKind: ItemAddress, Item1: 0x8000, Item1Abs: 0x1C000, Item2: 0x8000},
		},
		{
			spec: "read $0300-$03FF == $42",
			want: Breakpoint{
				Type: BreakOnCPUMemoryRead, ItemKind: ItemAddress, Item1: 0x0300, Item2: 0x03FF,
				Cond: CondEqual, DataKind: DataPure, Data: 0x42,
			},
		},
		{
			spec: "write $2000 & $80",
			want: Breakpoint{
				Type: BreakOnCPUMemoryWrite, ItemKind: ItemAddress, Item1: 0x2000, Item2: 0x2000,
				Cond: CondMasked, CondValue: 0x80, DataKind: DataPure, Data: 0x80,
			},
		},
		{
			spec: "write 0x2000 & $C0 == $40",
			want: Breakpoint{
				Type: BreakOnCPUMemoryWrite, ItemKind: ItemAddress, Item1: 0x2000, Item2: 0x2000,
				Cond: CondMasked, CondValue: 0xC0, DataKind: DataPure, Data: 0x40,
			},
		},
		{
			spec: "access reset_handler",
			want: Breakpoint{Type: BreakOnCPUMemoryAccess, ItemKind: ItemAddress, Item1: 0xC000, Item2: 0xC000},
		},
		{
			spec: "exec nmi",
			want: Breakpoint{Type: BreakOnCPUExecution, ItemKind: ItemAddress, Item1: 0xE000, Item2: 0xE000},
		},
		{
			spec: "reg a > $10",
			want: Breakpoint{
				Type: BreakOnCPUState, ItemKind: ItemRegister, Item1: LiveAddr(RegA), Item2: LiveAddr(RegA),
				Cond: CondGreater, DataKind: DataPure, Data: 0x10,
			},
		},
		{
			spec: "event nmi",
			want: Breakpoint{Type: BreakOnCPUEvent, Event: uint8(CPUNMI)},
		},
		{
			spec: "event execute $A9",
			want: Breakpoint{Type: BreakOnCPUEvent, Event: uint8(CPUExecuteExact), ItemKind: ItemAddress, Item1: 0xA9, Item2: 0xA9},
		},
		{
			spec: "apu irq",
			want: Breakpoint{Type: BreakOnAPUEvent},
		},
		{
			spec: "ppu scanline 241",
			want: Breakpoint{Type: BreakOnPPUEvent, ItemKind: ItemAddress, Item1: 241, Item2: 241},
		},
		{
			spec: "ppu scanline == 100",
			want: Breakpoint{Type: BreakOnPPUEvent, Cond: CondEqual, DataKind: DataPure, Data: 100},
		},
		{
			spec: "exec $8000 tmp off",
			want: Breakpoint{Type: BreakOnCPUExecution, ItemKind: ItemAddress, Item1: 0x8000, Item2: 0x8000, Temporary: true, Enabled: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseBreakpoint(tt.spec, DefaultEvents(), syms)
			if err != nil {
				t.Fatal(err)
			}
			want := tt.want
			if want.Item1Abs == 0 {
				want.Item1Abs = NoAbsAddr
			}
			if !want.Temporary {
				want.Enabled = true
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("ParseBreakpoint mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseBreakpointErrors(t *testing.T) {
	for _, spec := range []string{
		"",
		"tmp",
		"jump $8000",
		"exec",
		"exec $10000",
		"exec nowhere",
		"read $0400-$0300",
		"read $0300 ==",
		"read $0300 ~ $10",
		"read $0300 == $10 $20",
		"write $2000 & $80 != $00",
		"reg Q == 1",
		"reg A",
		"event",
		"event brk",
		"ppu hblank",
		"exec $8000 abs=zz",
	} {
		if bp, err := ParseBreakpoint(spec, DefaultEvents(), nil); err == nil {
			t.Errorf("ParseBreakpoint(%q) = %+v, want error", spec, bp)
		}
	}
}

func TestFormatBreakpointRoundTrip(t *testing.T) {
	events := DefaultEvents()
	for _, spec := range []string{
		"exec $8000",
		"exec $8000 abs=$1C000",
		"exec $C000-$C0FF tmp",
		"read $0300-$03FF == $42",
		"write $2000 & $80",
		"write $2000 & $C0 == $40",
		"access $4016 != $00 off",
		"reg A > $10",
		"reg PC == $C123",
		"reg X < $0100",
		"event nmi",
		"event execute $00A9",
		"apu sequencer-step $0003",
		"ppu scanline $00F1",
		"ppu vblank",
	} {
		bp, err := ParseBreakpoint(spec, events, nil)
		if err != nil {
			t.Fatalf("ParseBreakpoint(%q): %v", spec, err)
		}
		got := FormatBreakpoint(bp, events)
		if got != spec {
			t.Errorf("FormatBreakpoint(ParseBreakpoint(%q)) = %q", spec, got)
		}
		bp2, err := ParseBreakpoint(got, events, nil)
		if err != nil {
			t.Fatalf("ParseBreakpoint(%q): %v", got, err)
		}
		if diff := cmp.Diff(bp, bp2, cmpopts.IgnoreFields(Breakpoint{}, "Hit", "HitCount")); diff != "" {
			t.Errorf("round trip of %q mismatch (-want +got):\n%s", spec, diff)
		}
	}
}
