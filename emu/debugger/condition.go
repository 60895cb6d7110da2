package debugger

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// ParseBreakpoint parses the textual description of a breakpoint:
//
//	exec $8000                  execution of $8000
//	exec $8000 abs=$1C000       execution of PRG ROM byte $1C000, mapped at $8000
//	read $0300-$03FF == $42     read of $42 in $0300-$03FF
//	write $2000 & $80           write to $2000 with bit 7 set
//	access reset_handler        any access to a labeled address
//	reg A > $10                 A greater than $10
//	event nmi                   CPU event
//	event execute $A9           CPU event with item value
//	apu irq                     APU event
//	ppu scanline 241            PPU event with item value
//
// A trailing "tmp" makes a temporary breakpoint, "off" a disabled one.
// Symbols are resolved by syms, which may be nil.
func ParseBreakpoint(s string, events *EventTables, syms SymbolResolver) (Breakpoint, error) {
	p := bpParser{events: events, syms: syms}
	bp, err := p.parse(strings.Fields(s))
	if err != nil {
		return Breakpoint{}, errors.Wrapf(err, "breakpoint %q", s)
	}
	return bp, nil
}

type bpParser struct {
	events *EventTables
	syms   SymbolResolver
}

func (p *bpParser) parse(toks []string) (Breakpoint, error) {
	bp := Breakpoint{Item1Abs: NoAbsAddr, Enabled: true}

flags:
	for len(toks) > 0 {
		last := toks[len(toks)-1]
		switch {
		case last == "tmp":
			bp.Temporary = true
		case last == "off":
			bp.Enabled = false
		case strings.HasPrefix(last, "abs="):
			abs, err := parseNumber(last[4:])
			if err != nil {
				return bp, err
			}
			bp.Item1Abs = AbsAddr(abs)
		default:
			break flags
		}
		toks = toks[:len(toks)-1]
	}
	if len(toks) == 0 {
		return bp, errors.New("empty")
	}

	typ, ok := bpTypeByName(toks[0])
	if !ok {
		return bp, errors.Errorf("unknown breakpoint type %q", toks[0])
	}
	bp.Type = typ
	toks = toks[1:]

	switch {
	case typ == BreakOnCPUExecution || typ.isMemory():
		if len(toks) == 0 {
			return bp, errors.New("missing address")
		}
		lo, hi, err := p.parseRange(toks[0])
		if err != nil {
			return bp, err
		}
		bp.ItemKind = ItemAddress
		bp.Item1, bp.Item2 = lo, hi
		toks = toks[1:]

	case typ == BreakOnCPUState:
		if len(toks) == 0 {
			return bp, errors.New("missing register")
		}
		reg, ok := CPURegByName(toks[0])
		if !ok {
			return bp, errors.Errorf("unknown register %q", toks[0])
		}
		bp.ItemKind = ItemRegister
		bp.Item1, bp.Item2 = LiveAddr(reg), LiveAddr(reg)
		toks = toks[1:]

	case typ.isEvent():
		if len(toks) == 0 {
			return bp, errors.New("missing event name")
		}
		id, ok := p.events.Lookup(typ, toks[0])
		if !ok {
			return bp, errors.Errorf("unknown %s event %q", typ, toks[0])
		}
		bp.Event = id
		toks = toks[1:]
		if info, _ := p.events.Info(typ, id); info.HasItem() && len(toks) > 0 && !isCondOp(toks[0]) {
			lo, hi, err := p.parseRange(toks[0])
			if err != nil {
				return bp, err
			}
			bp.ItemKind = ItemAddress
			bp.Item1, bp.Item2 = lo, hi
			toks = toks[1:]
		}
	}

	if err := p.parseCond(&bp, toks); err != nil {
		return bp, err
	}
	if typ == BreakOnCPUState && bp.DataKind == DataNone {
		return bp, errors.New("register breakpoint needs a condition")
	}
	return bp, nil
}

func isCondOp(s string) bool {
	switch s {
	case "==", "!=", ">", "<", "&":
		return true
	}
	return false
}

func (p *bpParser) parseCond(bp *Breakpoint, toks []string) error {
	if len(toks) == 0 {
		return nil
	}
	if len(toks) < 2 {
		return errors.Errorf("incomplete condition %q", strings.Join(toks, " "))
	}
	val, err := parseNumber(toks[1])
	if err != nil {
		return err
	}
	bp.DataKind = DataPure
	switch toks[0] {
	case "==":
		bp.Cond = CondEqual
	case "!=":
		bp.Cond = CondNotEqual
	case ">":
		bp.Cond = CondGreater
	case "<":
		bp.Cond = CondLess
	case "&":
		// "& mask" alone requires all mask bits set, "& mask == val"
		// compares the masked value.
		bp.Cond = CondMasked
		bp.CondValue = uint16(val)
		bp.Data = uint16(val)
		toks = toks[2:]
		if len(toks) == 0 {
			return nil
		}
		if len(toks) != 2 || toks[0] != "==" {
			return errors.Errorf("unexpected %q after mask", strings.Join(toks, " "))
		}
		val, err = parseNumber(toks[1])
		if err != nil {
			return err
		}
		bp.Data = uint16(val)
		return nil
	default:
		return errors.Errorf("unknown operator %q", toks[0])
	}
	if len(toks) > 2 {
		return errors.Errorf("unexpected %q", strings.Join(toks[2:], " "))
	}
	bp.Data = uint16(val)
	return nil
}

func (p *bpParser) parseRange(s string) (lo, hi LiveAddr, err error) {
	first, last, isRange := strings.Cut(s, "-")
	lo, err = p.parseAddr(first)
	if err != nil {
		return 0, 0, err
	}
	hi = lo
	if isRange {
		if hi, err = p.parseAddr(last); err != nil {
			return 0, 0, err
		}
		if hi < lo {
			return 0, 0, errors.Errorf("empty range %s", s)
		}
	}
	return lo, hi, nil
}

func (p *bpParser) parseAddr(s string) (LiveAddr, error) {
	v, err := parseNumber(s)
	if err == nil {
		if v > 0xFFFF {
			return 0, errors.Errorf("address %s out of range", s)
		}
		return LiveAddr(v), nil
	}
	if p.syms != nil {
		if addr, ok := p.syms.SymbolAddr(s); ok {
			return addr, nil
		}
	}
	return 0, err
}

// parseNumber parses $-prefixed or 0x-prefixed hexadecimal, or decimal.
func parseNumber(s string) (uint32, error) {
	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s, base = s[1:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, errors.Errorf("invalid number %q", s)
	}
	return uint32(v), nil
}

func bpTypeByName(name string) (BreakpointType, bool) {
	for i, n := range bpTypeNames {
		if n == name {
			return BreakpointType(i), true
		}
	}
	return 0, false
}

// FormatBreakpoint returns the textual description of bp, in the syntax
// accepted by ParseBreakpoint.
func FormatBreakpoint(bp Breakpoint, events *EventTables) string {
	var sb strings.Builder
	sb.WriteString(bp.Type.String())

	writeRange := func() {
		sb.WriteByte(' ')
		sb.WriteString(bp.Item1.String())
		if bp.Item2 > bp.Item1 {
			sb.WriteByte('-')
			sb.WriteString(bp.Item2.String())
		}
	}

	switch {
	case bp.Type == BreakOnCPUExecution || bp.Type.isMemory():
		writeRange()
	case bp.Type == BreakOnCPUState:
		sb.WriteByte(' ')
		sb.WriteString(CPUReg(bp.Item1).String())
	case bp.Type.isEvent():
		info, _ := events.Info(bp.Type, bp.Event)
		sb.WriteByte(' ')
		sb.WriteString(info.Name)
		if bp.ItemKind != ItemNone {
			writeRange()
		}
	}

	if bp.DataKind == DataPure {
		wide := bp.Data > 0xFF || bp.CondValue > 0xFF ||
			bp.Type == BreakOnCPUState && CPUReg(bp.Item1) == RegPC
		switch bp.Cond {
		case CondMasked:
			sb.WriteString(" & ")
			sb.WriteString(hex16(bp.CondValue, wide))
			if bp.Data != bp.CondValue {
				sb.WriteString(" == ")
				sb.WriteString(hex16(bp.Data, wide))
			}
		case CondNone:
		default:
			sb.WriteByte(' ')
			sb.WriteString(bp.Cond.String())
			sb.WriteByte(' ')
			sb.WriteString(hex16(bp.Data, wide))
		}
	}

	if bp.Item1Abs.Valid() {
		sb.WriteString(" abs=$")
		sb.WriteString(strings.ToUpper(strconv.FormatUint(uint64(bp.Item1Abs), 16)))
	}
	if bp.Temporary {
		sb.WriteString(" tmp")
	}
	if !bp.Enabled {
		sb.WriteString(" off")
	}
	return sb.String()
}
