package emu

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"

	"nesdbg/emu/debugger"
	"nesdbg/emu/log"
)

type Config struct {
	General  GeneralConfig  `toml:"general"`
	Debugger DebuggerConfig `toml:"debugger"`
	Server   ServerConfig   `toml:"server"`

	TraceOut io.Writer `toml:"-"`
}

type GeneralConfig struct {
	TraceSize int  `toml:"trace_size"`
	FollowPC  bool `toml:"follow_pc"` // show the code around PC on break
}

// DebuggerConfig holds the debugger state persisted between sessions.
type DebuggerConfig struct {
	Symbols     string   `toml:"symbols,omitempty"`
	Breakpoints []string `toml:"breakpoints"`

	// Markers are "@START-@END" absolute addresses, "@START-" for a marker
	// still in progress.
	Markers []string `toml:"markers"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			TraceSize: debugger.DefaultTraceSize,
			FollowPC:  true,
		},
		Server: ServerConfig{Addr: "localhost:6502"},
	}
}

// ConfigDir returns the nesdbg config directory, creating it if needed.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "nesdbg")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create directory %s", dir)
	}
	return dir, nil
}

const cfgFilename = "config.toml"

// LoadConfigOrDefault loads the configuration from path, or from the nesdbg
// config directory if path is empty. The default configuration is returned
// if there's none.
func LoadConfigOrDefault(path string) Config {
	if path == "" {
		dir, err := ConfigDir()
		if err != nil {
			log.ModEmu.WarnZ("no config directory").Error("err", err).End()
			return DefaultConfig()
		}
		path = filepath.Join(dir, cfgFilename)
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.ModEmu.WarnZ("invalid config, using default").
				String("path", path).
				Error("err", err).
				End()
		}
		return DefaultConfig()
	}
	return cfg
}

// SaveConfig writes cfg to path, or into the nesdbg config directory if path
// is empty.
func SaveConfig(cfg Config, path string) error {
	if path == "" {
		dir, err := ConfigDir()
		if err != nil {
			return err
		}
		path = filepath.Join(dir, cfgFilename)
	}

	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}

// apply loads symbols then restores breakpoints and markers into dbg.
func (dcfg *DebuggerConfig) apply(dbg *debugger.Debugger) error {
	if dcfg.Symbols != "" {
		syms, err := debugger.OpenSymbols(dcfg.Symbols)
		if err != nil {
			return err
		}
		dbg.SetSymbols(syms)
	}

	var st debugger.State
	for _, spec := range dcfg.Breakpoints {
		bp, err := debugger.ParseBreakpoint(spec, dbg.Events(), dbg.Symbols())
		if err != nil {
			return errors.Wrapf(err, "config breakpoint %q", spec)
		}
		st.Breakpoints = append(st.Breakpoints, bp)
	}
	for _, spec := range dcfg.Markers {
		m, err := parseMarker(spec)
		if err != nil {
			return err
		}
		st.Markers = append(st.Markers, m)
	}
	return dbg.Restore(st)
}

// DebuggerConfig returns the current debugger state, for SaveConfig.
func (nes *NES) DebuggerConfig(symbols string) DebuggerConfig {
	dcfg := DebuggerConfig{Symbols: symbols}
	st := nes.dbg.State()
	for _, bp := range st.Breakpoints {
		dcfg.Breakpoints = append(dcfg.Breakpoints, debugger.FormatBreakpoint(bp, nes.dbg.Events()))
	}
	for _, m := range st.Markers {
		spec, ok := formatMarker(m)
		if !ok {
			log.ModEmu.WarnZ("marker not saved, not in PRG ROM").
				Stringer("start", m.StartAbs).
				Stringer("end", m.EndAbs).
				End()
			continue
		}
		dcfg.Markers = append(dcfg.Markers, spec)
	}
	return dcfg
}

// formatMarker returns the text form of m, if m can be parsed back.
func formatMarker(m debugger.Marker) (string, bool) {
	if !m.StartAbs.Valid() {
		return "", false
	}
	if m.State == debugger.MarkerStarted {
		return fmt.Sprintf("@%05X-", int32(m.StartAbs)), true
	}
	if !m.EndAbs.Valid() {
		return "", false
	}
	return fmt.Sprintf("@%05X-@%05X", int32(m.StartAbs), int32(m.EndAbs)), true
}

func parseAbs(s string) (debugger.AbsAddr, error) {
	hex, ok := strings.CutPrefix(s, "@")
	if !ok {
		return debugger.NoAbsAddr, errors.Errorf("absolute address %q must start with @", s)
	}
	v, err := strconv.ParseUint(hex, 16, 31)
	if err != nil {
		return debugger.NoAbsAddr, errors.Wrapf(err, "absolute address %q", s)
	}
	return debugger.AbsAddr(v), nil
}

func parseMarker(spec string) (debugger.Marker, error) {
	start, end, ok := strings.Cut(strings.TrimSpace(spec), "-")
	if !ok {
		return debugger.Marker{}, errors.Errorf("marker %q: missing '-'", spec)
	}
	m := debugger.Marker{State: debugger.MarkerStarted, EndAbs: debugger.NoAbsAddr}

	var err error
	if m.StartAbs, err = parseAbs(start); err != nil {
		return debugger.Marker{}, errors.Wrapf(err, "marker %q", spec)
	}
	if end != "" {
		if m.EndAbs, err = parseAbs(end); err != nil {
			return debugger.Marker{}, errors.Wrapf(err, "marker %q", spec)
		}
		m.State = debugger.MarkerComplete
	}
	return m, nil
}
