package debugger

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"nesdbg/emu/log"
	"nesdbg/hw"
)

// The remote debugger and the emulator exchange JSON messages over a
// websocket.
//
// The debugger sends requests, to which the emulator always replies:
//
//	{"id": 3, "cmd": "peek", "args": {"addr": 768, "len": 4}}
//	{"id": 3, "ok": true, "data": [0, 1, 2, 3]}
//	{"id": 4, "ok": false, "error": "unknown command \"foo\""}
//
// The emulator also sends events, not tied to any request:
//
//	{"event": "break", "data": {"status": "paused", "pc": 32768, ...}}

// Request is a debugger->emulator request.
type Request struct {
	ID   int64
	Cmd  string
	Args jx.Raw // may be nil
}

// DecodeRequest decodes a request. On error, the returned request holds the
// fields that could be decoded.
func DecodeRequest(buf []byte) (Request, error) {
	var req Request
	err := jx.DecodeBytes(buf).Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			req.ID, err = d.Int64()
		case "cmd":
			req.Cmd, err = d.Str()
		case "args":
			var raw jx.Raw
			raw, err = d.Raw()
			req.Args = append(jx.Raw(nil), raw...)
		default:
			err = d.Skip()
		}
		return err
	})
	if err != nil {
		return req, errors.Wrap(err, "decode request")
	}
	if req.Cmd == "" {
		return req, errors.New("missing cmd")
	}
	return req, nil
}

func encodeResponse(id int64, err error, data func(e *jx.Encoder)) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Int64(id) })
		e.Field("ok", func(e *jx.Encoder) { e.Bool(err == nil) })
		if err != nil {
			e.Field("error", func(e *jx.Encoder) { e.Str(err.Error()) })
			return
		}
		if data != nil {
			e.Field("data", data)
		}
	})
	return e.Bytes()
}

func encodeEvent(name string, data func(e *jx.Encoder)) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("event", func(e *jx.Encoder) { e.Str(name) })
		e.Field("data", data)
	})
	return e.Bytes()
}

// decodeArgs calls fn for each field of the request arguments.
func decodeArgs(args jx.Raw, fn func(d *jx.Decoder, key string) error) error {
	if len(args) == 0 {
		return nil
	}
	return jx.DecodeBytes(args).Obj(fn)
}

// session is the state of the remote debugging session, owned by the
// emulation loop.
type session struct {
	t       Target
	running bool
}

type handlerFunc func(s *session, args jx.Raw) (func(e *jx.Encoder), error)

var handlers map[string]handlerFunc

func init() {
	handlers = map[string]handlerFunc{
		"state":           (*session).handleState,
		"pause":           (*session).handlePause,
		"run":             (*session).handleRun,
		"step":            (*session).handleStep,
		"step-cycle":      (*session).handleStepCycle,
		"regs":            (*session).handleRegs,
		"set-reg":         (*session).handleSetReg,
		"peek":            (*session).handlePeek,
		"poke":            (*session).handlePoke,
		"break-add":       (*session).handleBreakAdd,
		"break-remove":    (*session).handleBreakRemove,
		"break-toggle":    (*session).handleBreakToggle,
		"break-list":      (*session).handleBreakList,
		"marker-add":      (*session).handleMarkerAdd,
		"marker-complete": (*session).handleMarkerComplete,
		"marker-clear":    (*session).handleMarkerClear,
		"marker-list":     (*session).handleMarkerList,
		"trace":           (*session).handleTrace,
		"disasm":          (*session).handleDisasm,
		"apu":             (*session).handleAPU,
		"cdl-stats":       (*session).handleCDLStats,
		"callstack":       (*session).handleCallStack,
	}
}

// exec executes a request and returns the encoded response.
func (s *session) exec(req Request) []byte {
	h, ok := handlers[req.Cmd]
	if !ok {
		log.ModDbg.WarnZ("unknown debugger command").String("cmd", req.Cmd).End()
		return encodeResponse(req.ID, errors.Errorf("unknown command %q", req.Cmd), nil)
	}
	data, err := h(s, req.Args)
	if err != nil {
		log.ModDbg.ErrorZ("debugger command failed").
			String("cmd", req.Cmd).
			Error("err", err).
			End()
	}
	return encodeResponse(req.ID, err, data)
}

func (s *session) status() string {
	if s.running {
		return "running"
	}
	return "paused"
}

func (s *session) encodeState(e *jx.Encoder) {
	cpu := s.t.CPU()
	last := s.t.Debugger().LastBreak()
	e.Obj(func(e *jx.Encoder) {
		e.Field("status", func(e *jx.Encoder) { e.Str(s.status()) })
		e.Field("pc", func(e *jx.Encoder) { e.Int(int(cpu.PC)) })
		e.Field("cycle", func(e *jx.Encoder) { e.Int64(cpu.Cycles) })
		e.Field("break", func(e *jx.Encoder) { e.Str(last.Reason) })
		e.Field("irq", func(e *jx.Encoder) { e.Str(cpu.IRQSources().String()) })
		if last.HasHit {
			e.Field("breakpoint", func(e *jx.Encoder) { e.Int(last.Hit.Index) })
		}
	})
}

func (s *session) handleState(jx.Raw) (func(e *jx.Encoder), error) {
	return s.encodeState, nil
}

func (s *session) handlePause(jx.Raw) (func(e *jx.Encoder), error) {
	s.running = false
	return s.encodeState, nil
}

func (s *session) handleRun(jx.Raw) (func(e *jx.Encoder), error) {
	s.running = true
	return s.encodeState, nil
}

func (s *session) handleStep(jx.Raw) (func(e *jx.Encoder), error) {
	s.running = false
	s.t.Step()
	return s.encodeState, nil
}

func (s *session) handleStepCycle(jx.Raw) (func(e *jx.Encoder), error) {
	s.running = false
	s.t.StepCycle()
	return s.encodeState, nil
}

func (s *session) handleRegs(jx.Raw) (func(e *jx.Encoder), error) {
	cpu := s.t.CPU()
	return func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			for i := range NumCPURegs {
				r := CPUReg(i)
				e.Field(r.String(), func(e *jx.Encoder) { e.Int(int(cpuRegValue(cpu, r))) })
			}
			e.Field("flags", func(e *jx.Encoder) { e.Str(cpu.P.String()) })
		})
	}, nil
}

func (s *session) handleSetReg(args jx.Raw) (func(e *jx.Encoder), error) {
	group, name, val := "cpu", "", -1
	err := decodeArgs(args, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "group":
			group, err = d.Str()
		case "name":
			name, err = d.Str()
		case "value":
			val, err = decodeInt(d, 0, 0xFFFF)
		default:
			err = d.Skip()
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if name == "" || val < 0 {
		return nil, errors.New("set-reg: name and value required")
	}
	if err := s.t.SetRegisterValue(group, name, uint16(val)); err != nil {
		return nil, err
	}
	return s.handleRegs(nil)
}

// decodeAddrArgs decodes the "addr" and "len"/"n"/"value" integer arguments
// shared by several commands.
func decodeAddrArgs(args jx.Raw, keys ...string) (map[string]int, error) {
	vals := make(map[string]int, len(keys))
	err := decodeArgs(args, func(d *jx.Decoder, key string) error {
		for _, k := range keys {
			if k == key {
				v, err := decodeInt(d, 0, 0xFFFF)
				if err != nil {
					return errors.Wrap(err, key)
				}
				vals[key] = v
				return nil
			}
		}
		return d.Skip()
	})
	return vals, err
}

func (s *session) handlePeek(args jx.Raw) (func(e *jx.Encoder), error) {
	a, err := decodeAddrArgs(args, "addr", "len")
	if err != nil {
		return nil, err
	}
	n, ok := a["len"]
	if !ok {
		n = 1
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = s.t.Peek(uint16(a["addr"] + i))
	}
	return func(e *jx.Encoder) {
		e.Arr(func(e *jx.Encoder) {
			for _, b := range buf {
				e.Int(int(b))
			}
		})
	}, nil
}

func (s *session) handlePoke(args jx.Raw) (func(e *jx.Encoder), error) {
	a, err := decodeAddrArgs(args, "addr", "value")
	if err != nil {
		return nil, err
	}
	addr, ok1 := a["addr"]
	val, ok2 := a["value"]
	if !ok1 || !ok2 || val > 0xFF {
		return nil, errors.New("poke: addr and 8-bit value required")
	}
	s.t.Poke(uint16(addr), uint8(val))
	return nil, nil
}

func (s *session) decodeIndex(args jx.Raw) (int, error) {
	idx := -1
	err := decodeArgs(args, func(d *jx.Decoder, key string) error {
		if key != "index" {
			return d.Skip()
		}
		var err error
		idx, err = d.Int()
		return err
	})
	return idx, err
}

func encodeIndex(idx int) func(e *jx.Encoder) {
	return func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("index", func(e *jx.Encoder) { e.Int(idx) })
		})
	}
}

func (s *session) handleBreakAdd(args jx.Raw) (func(e *jx.Encoder), error) {
	var spec string
	err := decodeArgs(args, func(d *jx.Decoder, key string) error {
		if key != "spec" {
			return d.Skip()
		}
		var err error
		spec, err = d.Str()
		return err
	})
	if err != nil {
		return nil, err
	}
	idx, err := s.t.Debugger().AddBreakpointSpec(spec)
	if err != nil {
		return nil, err
	}
	return encodeIndex(idx), nil
}

func (s *session) handleBreakRemove(args jx.Raw) (func(e *jx.Encoder), error) {
	idx, err := s.decodeIndex(args)
	if err != nil {
		return nil, err
	}
	return nil, s.t.Debugger().Breakpoints().Remove(idx)
}

func (s *session) handleBreakToggle(args jx.Raw) (func(e *jx.Encoder), error) {
	idx, err := s.decodeIndex(args)
	if err != nil {
		return nil, err
	}
	return nil, s.t.Debugger().Breakpoints().ToggleEnabled(idx)
}

func (s *session) handleBreakList(jx.Raw) (func(e *jx.Encoder), error) {
	dbg := s.t.Debugger()
	bps := dbg.Breakpoints().Enumerate()
	return func(e *jx.Encoder) {
		e.Arr(func(e *jx.Encoder) {
			for _, bp := range bps {
				e.Obj(func(e *jx.Encoder) {
					e.Field("index", func(e *jx.Encoder) { e.Int(bp.Index) })
					e.Field("spec", func(e *jx.Encoder) { e.Str(FormatBreakpoint(bp.Breakpoint, dbg.Events())) })
					e.Field("enabled", func(e *jx.Encoder) { e.Bool(bp.Enabled) })
					e.Field("hit", func(e *jx.Encoder) { e.Bool(bp.Hit) })
					e.Field("hit_count", func(e *jx.Encoder) { e.Int(bp.HitCount) })
				})
			}
		})
	}, nil
}

func (s *session) handleMarkerAdd(args jx.Raw) (func(e *jx.Encoder), error) {
	a, err := decodeAddrArgs(args, "addr")
	if err != nil {
		return nil, err
	}
	idx, err := s.t.Debugger().AddMarker(LiveAddr(a["addr"]))
	if err != nil {
		return nil, err
	}
	return encodeIndex(idx), nil
}

func (s *session) handleMarkerComplete(args jx.Raw) (func(e *jx.Encoder), error) {
	a, err := decodeAddrArgs(args, "addr")
	if err != nil {
		return nil, err
	}
	idx, err := s.t.Debugger().CompleteMarker(LiveAddr(a["addr"]))
	if err != nil {
		return nil, err
	}
	return encodeIndex(idx), nil
}

func (s *session) handleMarkerClear(jx.Raw) (func(e *jx.Encoder), error) {
	s.t.Debugger().Markers().ClearAllMarkers()
	return nil, nil
}

func (s *session) handleMarkerList(jx.Raw) (func(e *jx.Encoder), error) {
	markers := s.t.Debugger().Markers().Enumerate()
	return func(e *jx.Encoder) {
		e.Arr(func(e *jx.Encoder) {
			for _, m := range markers {
				e.Obj(func(e *jx.Encoder) {
					e.Field("index", func(e *jx.Encoder) { e.Int(m.Index) })
					e.Field("state", func(e *jx.Encoder) { e.Str(m.State.String()) })
					e.Field("start", func(e *jx.Encoder) { e.Str(m.StartAbs.String()) })
					e.Field("end", func(e *jx.Encoder) { e.Str(m.EndAbs.String()) })
					e.Field("cycles", func(e *jx.Encoder) { e.UInt64(m.Cycles) })
					e.Field("frames", func(e *jx.Encoder) { e.UInt64(m.Frames) })
					e.Field("runs", func(e *jx.Encoder) { e.UInt64(m.Runs) })
					e.Field("min", func(e *jx.Encoder) { e.UInt64(m.MinCycles) })
					e.Field("max", func(e *jx.Encoder) { e.UInt64(m.MaxCycles) })
					e.Field("avg", func(e *jx.Encoder) { e.UInt64(m.AvgCycles()) })
				})
			}
		})
	}, nil
}

func encodeLines(lines []string) func(e *jx.Encoder) {
	return func(e *jx.Encoder) {
		e.Arr(func(e *jx.Encoder) {
			for _, l := range lines {
				e.Str(l)
			}
		})
	}
}

func (s *session) handleTrace(args jx.Raw) (func(e *jx.Encoder), error) {
	a, err := decodeAddrArgs(args, "n")
	if err != nil {
		return nil, err
	}
	entries := s.t.Debugger().TraceRing().History(a["n"])
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return encodeLines(lines), nil
}

func (s *session) handleDisasm(args jx.Raw) (func(e *jx.Encoder), error) {
	cpu := s.t.CPU()
	a, err := decodeAddrArgs(args, "addr", "n")
	if err != nil {
		return nil, err
	}
	pc, ok := a["addr"]
	if !ok {
		pc = int(cpu.PC)
	}
	n, ok := a["n"]
	if !ok {
		n = 16
	}
	lines := make([]string, 0, n)
	for addr := uint16(pc); len(lines) < n; {
		op := cpu.Disasm(addr)
		lines = append(lines, op.String())
		addr += uint16(hw.OpcodeSize(cpu.Bus.Peek8(addr)))
	}
	return encodeLines(lines), nil
}

func (s *session) handleAPU(jx.Raw) (func(e *jx.Encoder), error) {
	st := s.t.APUState()
	return func(e *jx.Encoder) { EncodeAPUState(e, &st) }, nil
}

func (s *session) handleCDLStats(jx.Raw) (func(e *jx.Encoder), error) {
	st := s.t.Debugger().CDL().Stats()
	return func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("fetch", func(e *jx.Encoder) { e.Int(st.Fetch) })
			e.Field("operand", func(e *jx.Encoder) { e.Int(st.Operand) })
			e.Field("read", func(e *jx.Encoder) { e.Int(st.Read) })
			e.Field("write", func(e *jx.Encoder) { e.Int(st.Write) })
			e.Field("dma", func(e *jx.Encoder) { e.Int(st.DMA) })
			e.Field("touched", func(e *jx.Encoder) { e.Int(st.Touched) })
		})
	}, nil
}

func (s *session) handleCallStack(jx.Raw) (func(e *jx.Encoder), error) {
	frames := s.t.Debugger().CallStack()
	return func(e *jx.Encoder) {
		e.Arr(func(e *jx.Encoder) {
			for _, f := range frames {
				e.Obj(func(e *jx.Encoder) {
					e.Field("entry", func(e *jx.Encoder) { e.Str(f.Entry) })
					e.Field("addr", func(e *jx.Encoder) { e.Str(f.Addr) })
				})
			}
		})
	}, nil
}
