package debugger

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// State is the persistent part of the debugger: its breakpoints and
// markers, in index order.
type State struct {
	Breakpoints []Breakpoint
	Markers     []Marker
}

// State returns the current persistent state.
func (d *Debugger) State() State {
	var st State
	for _, bp := range d.bps.Enumerate() {
		st.Breakpoints = append(st.Breakpoints, bp.Breakpoint)
	}
	for _, m := range d.markers.Enumerate() {
		st.Markers = append(st.Markers, m.Marker)
	}
	return st
}

// Restore replaces breakpoints and markers with those of st.
func (d *Debugger) Restore(st State) error {
	if err := d.bps.Restore(st.Breakpoints); err != nil {
		return err
	}
	return d.markers.Restore(st.Markers)
}

// Encode writes st as a JSON object.
func (st *State) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("breakpoints", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range st.Breakpoints {
					encodeBreakpoint(e, &st.Breakpoints[i])
				}
			})
		})
		e.Field("markers", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range st.Markers {
					encodeMarker(e, &st.Markers[i])
				}
			})
		})
	})
}

// Decode reads st from a JSON object. Unknown fields are ignored.
func (st *State) Decode(d *jx.Decoder) error {
	*st = State{}
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "breakpoints":
			return d.Arr(func(d *jx.Decoder) error {
				var bp Breakpoint
				if err := decodeBreakpoint(d, &bp); err != nil {
					return errors.Wrapf(err, "breakpoint %d", len(st.Breakpoints))
				}
				st.Breakpoints = append(st.Breakpoints, bp)
				return nil
			})
		case "markers":
			return d.Arr(func(d *jx.Decoder) error {
				var m Marker
				if err := decodeMarker(d, &m); err != nil {
					return errors.Wrapf(err, "marker %d", len(st.Markers))
				}
				st.Markers = append(st.Markers, m)
				return nil
			})
		default:
			return d.Skip()
		}
	})
}

// MarshalJSON implements json.Marshaler.
func (st State) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	st.Encode(&e)
	return e.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (st *State) UnmarshalJSON(data []byte) error {
	return st.Decode(jx.DecodeBytes(data))
}

func encodeBreakpoint(e *jx.Encoder, bp *Breakpoint) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("type", func(e *jx.Encoder) { e.Str(bp.Type.String()) })
		e.Field("item_kind", func(e *jx.Encoder) { e.Int(int(bp.ItemKind)) })
		e.Field("event", func(e *jx.Encoder) { e.Int(int(bp.Event)) })
		e.Field("item1", func(e *jx.Encoder) { e.Int(int(bp.Item1)) })
		e.Field("item1_abs", func(e *jx.Encoder) { e.Int(int(bp.Item1Abs)) })
		e.Field("item2", func(e *jx.Encoder) { e.Int(int(bp.Item2)) })
		e.Field("cond", func(e *jx.Encoder) { e.Int(int(bp.Cond)) })
		e.Field("cond_value", func(e *jx.Encoder) { e.Int(int(bp.CondValue)) })
		e.Field("data_kind", func(e *jx.Encoder) { e.Int(int(bp.DataKind)) })
		e.Field("data", func(e *jx.Encoder) { e.Int(int(bp.Data)) })
		e.Field("enabled", func(e *jx.Encoder) { e.Bool(bp.Enabled) })
		e.Field("temporary", func(e *jx.Encoder) { e.Bool(bp.Temporary) })
	})
}

// decodeInt decodes an integer in [lo, hi].
func decodeInt(d *jx.Decoder, lo, hi int) (int, error) {
	v, err := d.Int()
	if err != nil {
		return 0, err
	}
	if v < lo || v > hi {
		return 0, errors.Errorf("value %d out of range [%d, %d]", v, lo, hi)
	}
	return v, nil
}

func decodeBreakpoint(d *jx.Decoder, bp *Breakpoint) error {
	*bp = Breakpoint{Item1Abs: NoAbsAddr}
	return d.Obj(func(d *jx.Decoder, key string) error {
		var (
			v   int
			err error
		)
		switch key {
		case "type":
			s, err := d.Str()
			if err != nil {
				return err
			}
			typ, ok := bpTypeByName(s)
			if !ok {
				return errors.Errorf("unknown breakpoint type %q", s)
			}
			bp.Type = typ
			return nil
		case "enabled":
			bp.Enabled, err = d.Bool()
			return err
		case "temporary":
			bp.Temporary, err = d.Bool()
			return err
		case "item_kind":
			v, err = decodeInt(d, 0, int(ItemRegister))
			bp.ItemKind = ItemKind(v)
		case "event":
			v, err = decodeInt(d, 0, 0xFF)
			bp.Event = uint8(v)
		case "item1":
			v, err = decodeInt(d, 0, 0xFFFF)
			bp.Item1 = LiveAddr(v)
		case "item1_abs":
			v, err = decodeInt(d, -1, 1<<30)
			bp.Item1Abs = AbsAddr(v)
		case "item2":
			v, err = decodeInt(d, 0, 0xFFFF)
			bp.Item2 = LiveAddr(v)
		case "cond":
			v, err = decodeInt(d, 0, int(CondMasked))
			bp.Cond = Condition(v)
		case "cond_value":
			v, err = decodeInt(d, 0, 0xFFFF)
			bp.CondValue = uint16(v)
		case "data_kind":
			v, err = decodeInt(d, 0, int(DataPure))
			bp.DataKind = DataKind(v)
		case "data":
			v, err = decodeInt(d, 0, 0xFFFF)
			bp.Data = uint16(v)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, key)
		}
		return nil
	})
}

func encodeMarker(e *jx.Encoder, m *Marker) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("state", func(e *jx.Encoder) { e.Str(m.State.String()) })
		e.Field("start_abs", func(e *jx.Encoder) { e.Int(int(m.StartAbs)) })
		e.Field("end_abs", func(e *jx.Encoder) { e.Int(int(m.EndAbs)) })
		e.Field("cycles", func(e *jx.Encoder) { e.UInt64(m.Cycles) })
		e.Field("frames", func(e *jx.Encoder) { e.UInt64(m.Frames) })
		e.Field("runs", func(e *jx.Encoder) { e.UInt64(m.Runs) })
		e.Field("last_cycles", func(e *jx.Encoder) { e.UInt64(m.LastCycles) })
		e.Field("min_cycles", func(e *jx.Encoder) { e.UInt64(m.MinCycles) })
		e.Field("max_cycles", func(e *jx.Encoder) { e.UInt64(m.MaxCycles) })
		e.Field("total_cycles", func(e *jx.Encoder) { e.UInt64(m.TotalCycles) })
	})
}

func markerStateByName(s string) (MarkerState, bool) {
	for st := MarkerUnset; st <= MarkerComplete; st++ {
		if st.String() == s {
			return st, true
		}
	}
	return 0, false
}

func decodeMarker(d *jx.Decoder, m *Marker) error {
	*m = Marker{StartAbs: NoAbsAddr, EndAbs: NoAbsAddr}
	return d.Obj(func(d *jx.Decoder, key string) error {
		var (
			u64 *uint64
			err error
		)
		switch key {
		case "state":
			s, err := d.Str()
			if err != nil {
				return err
			}
			st, ok := markerStateByName(s)
			if !ok {
				return errors.Errorf("unknown marker state %q", s)
			}
			m.State = st
			return nil
		case "start_abs", "end_abs":
			v, err := decodeInt(d, -1, 1<<30)
			if err != nil {
				return errors.Wrap(err, key)
			}
			if key == "start_abs" {
				m.StartAbs = AbsAddr(v)
			} else {
				m.EndAbs = AbsAddr(v)
			}
			return nil
		case "cycles":
			u64 = &m.Cycles
		case "frames":
			u64 = &m.Frames
		case "runs":
			u64 = &m.Runs
		case "last_cycles":
			u64 = &m.LastCycles
		case "min_cycles":
			u64 = &m.MinCycles
		case "max_cycles":
			u64 = &m.MaxCycles
		case "total_cycles":
			u64 = &m.TotalCycles
		default:
			return d.Skip()
		}
		if *u64, err = d.UInt64(); err != nil {
			return errors.Wrap(err, key)
		}
		return nil
	})
}
