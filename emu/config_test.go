package emu

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nesdbg/emu/debugger"
)

func TestConfigSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.General.TraceSize = 64
	cfg.General.FollowPC = false
	cfg.Server.Addr = "127.0.0.1:7777"
	cfg.Debugger.Breakpoints = []string{"exec $8000", "write $2000 & $80"}
	cfg.Debugger.Markers = []string{"@00010-@00020", "@00100-"}

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatal(err)
	}
	got := LoadConfigOrDefault(path)
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigOrDefault(t *testing.T) {
	dir := t.TempDir()
	if diff := cmp.Diff(DefaultConfig(), LoadConfigOrDefault(filepath.Join(dir, "missing.toml"))); diff != "" {
		t.Errorf("missing config (-want +got):\n%s", diff)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[general\ntrace_size = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), LoadConfigOrDefault(bad)); diff != "" {
		t.Errorf("invalid config (-want +got):\n%s", diff)
	}

	partial := filepath.Join(dir, "partial.toml")
	if err := os.WriteFile(partial, []byte("[server]\naddr = \":9000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Server.Addr = ":9000"
	if diff := cmp.Diff(want, LoadConfigOrDefault(partial)); diff != "" {
		t.Errorf("partial config (-want +got):\n%s", diff)
	}
}

func TestDebuggerConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debugger = DebuggerConfig{
		Breakpoints: []string{
			"exec $8003",
			"read $0010 == $03 off",
			"reg X > $02",
			"ppu scanline $00F1",
		},
		Markers: []string{"@00002-@00009", "@0000B-"},
	}
	nes := newTestNES(t, cfg)

	if diff := cmp.Diff(cfg.Debugger, nes.DebuggerConfig("")); diff != "" {
		t.Errorf("debugger config mismatch (-want +got):\n%s", diff)
	}

	ms := nes.Debugger().Markers().Enumerate()
	if len(ms) != 2 || ms[0].State != debugger.MarkerComplete || ms[1].State != debugger.MarkerStarted {
		t.Errorf("markers = %+v", ms)
	}
}

func TestDebuggerConfigSkipsRAMMarkers(t *testing.T) {
	nes := newTestNES(t, DefaultConfig())
	dbg := nes.Debugger()

	if _, err := dbg.AddMarker(0x0300); !errors.Is(err, debugger.ErrNotFound) {
		t.Fatalf("AddMarker($0300) = %v, want ErrNotFound", err)
	}

	// Markers restored from elsewhere (e.g. JSON) may still lack an
	// absolute address, they can't be written back as text.
	err := dbg.Markers().Restore([]debugger.Marker{
		{State: debugger.MarkerComplete, StartAbs: 0x0002, EndAbs: 0x0009},
		{State: debugger.MarkerStarted, StartAbs: debugger.NoAbsAddr, EndAbs: debugger.NoAbsAddr},
		{State: debugger.MarkerComplete, StartAbs: 0x000B, EndAbs: debugger.NoAbsAddr},
	})
	if err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Debugger = nes.DebuggerConfig("")
	if diff := cmp.Diff([]string{"@00002-@00009"}, cfg.Debugger.Markers); diff != "" {
		t.Errorf("saved markers mismatch (-want +got):\n%s", diff)
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatal(err)
	}
	if _, err := New(nromImage(t, countLoop), LoadConfigOrDefault(path)); err != nil {
		t.Fatalf("saved config doesn't load back: %v", err)
	}
}

func TestDebuggerConfigErrors(t *testing.T) {
	for _, dcfg := range []DebuggerConfig{
		{Breakpoints: []string{"exec"}},
		{Breakpoints: []string{"jump $8000"}},
		{Markers: []string{"@00010"}},
		{Markers: []string{"00010-00020"}},
		{Markers: []string{"@0001G-"}},
		{Markers: []string{"@1-", "@2-", "@3-", "@4-", "@5-", "@6-", "@7-", "@8-", "@9-"}},
		{Symbols: filepath.Join(t.TempDir(), "missing.lbl")},
	} {
		cfg := DefaultConfig()
		cfg.Debugger = dcfg
		if _, err := New(nromImage(t, countLoop), cfg); err == nil {
			t.Errorf("New with %+v should fail", dcfg)
		}
	}
}

func TestParseMarker(t *testing.T) {
	m, err := parseMarker(" @1C000-@1C0FF ")
	if err != nil {
		t.Fatal(err)
	}
	want := debugger.Marker{State: debugger.MarkerComplete, StartAbs: 0x1C000, EndAbs: 0x1C0FF}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("parseMarker mismatch (-want +got):\n%s", diff)
	}
	if s, ok := formatMarker(m); !ok || s != "@1C000-@1C0FF" {
		t.Errorf("formatMarker = %q, %t", s, ok)
	}
}
