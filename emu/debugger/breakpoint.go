package debugger

import (
	"github.com/go-faster/errors"
)

// NumBreakpoints is the capacity of a breakpoint table.
const NumBreakpoints = 32

var (
	ErrTableFull = errors.New("breakpoint table full")
	ErrNotFound  = errors.New("not found")
	ErrBadIndex  = errors.New("index out of range")
)

// BreakpointType is what a breakpoint watches.
type BreakpointType uint8

const (
	BreakOnCPUExecution BreakpointType = iota
	BreakOnCPUMemoryAccess
	BreakOnCPUMemoryRead
	BreakOnCPUMemoryWrite
	BreakOnCPUState
	BreakOnCPUEvent
	BreakOnAPUEvent
	BreakOnPPUEvent
)

var bpTypeNames = [...]string{
	BreakOnCPUExecution:    "exec",
	BreakOnCPUMemoryAccess: "access",
	BreakOnCPUMemoryRead:   "read",
	BreakOnCPUMemoryWrite:  "write",
	BreakOnCPUState:        "reg",
	BreakOnCPUEvent:        "event",
	BreakOnAPUEvent:        "apu",
	BreakOnPPUEvent:        "ppu",
}

func (t BreakpointType) String() string {
	if int(t) < len(bpTypeNames) {
		return bpTypeNames[t]
	}
	return "unknown"
}

func (t BreakpointType) isMemory() bool {
	return t == BreakOnCPUMemoryAccess || t == BreakOnCPUMemoryRead || t == BreakOnCPUMemoryWrite
}

func (t BreakpointType) isEvent() bool {
	return t == BreakOnCPUEvent || t == BreakOnAPUEvent || t == BreakOnPPUEvent
}

// ItemKind tells how Item1 and Item2 are interpreted.
type ItemKind uint8

const (
	ItemNone ItemKind = iota
	ItemAddress
	ItemRegister
)

// Condition compares an observed value against the breakpoint Data.
type Condition uint8

const (
	CondNone Condition = iota
	CondEqual
	CondNotEqual
	CondGreater
	CondLess
	CondMasked // (value & CondValue) == Data
)

var condNames = [...]string{
	CondNone:     "",
	CondEqual:    "==",
	CondNotEqual: "!=",
	CondGreater:  ">",
	CondLess:     "<",
	CondMasked:   "&",
}

func (c Condition) String() string {
	if int(c) < len(condNames) {
		return condNames[c]
	}
	return "?"
}

// DataKind tells whether Data holds a value to compare with.
type DataKind uint8

const (
	DataNone DataKind = iota
	DataPure
)

// Breakpoint describes a condition upon which emulation stops.
type Breakpoint struct {
	Type     BreakpointType
	ItemKind ItemKind
	Event    uint8 // event id, for event breakpoints

	// Item1 and Item2 hold an address range, a CPU register, or the item value
	// of an event. Item2 is the inclusive end of the range. Item1Abs is the
	// absolute address of Item1, when known.
	Item1    LiveAddr
	Item1Abs AbsAddr
	Item2    LiveAddr

	Cond      Condition
	CondValue uint16
	DataKind  DataKind
	Data      uint16

	Enabled   bool
	Temporary bool // removed once hit

	Hit      bool // latched on hit, until ClearHits
	HitCount int
}

// sameAs reports whether a and b describe the same breakpoint. State fields
// are ignored. Item2 is ignored if anyItem2 is set.
func (a *Breakpoint) sameAs(b *Breakpoint, anyItem2 bool) bool {
	return a.Type == b.Type &&
		a.ItemKind == b.ItemKind &&
		a.Event == b.Event &&
		a.Item1 == b.Item1 &&
		a.Item1Abs == b.Item1Abs &&
		(anyItem2 || a.Item2 == b.Item2) &&
		a.Cond == b.Cond &&
		a.CondValue == b.CondValue &&
		a.DataKind == b.DataKind &&
		a.Data == b.Data
}

// test returns whether value satisfies the breakpoint condition.
func (bp *Breakpoint) test(value uint16) bool {
	if bp.DataKind == DataNone {
		return true
	}
	switch bp.Cond {
	case CondEqual:
		return value == bp.Data
	case CondNotEqual:
		return value != bp.Data
	case CondGreater:
		return value > bp.Data
	case CondLess:
		return value < bp.Data
	case CondMasked:
		return value&bp.CondValue == bp.Data
	}
	return true
}

func (bp *Breakpoint) matchAddr(live LiveAddr, abs AbsAddr) bool {
	return inRange(bp.Item1, bp.Item2, bp.Item1Abs, live, abs)
}

func (bp *Breakpoint) matchItem(item uint16) bool {
	if bp.ItemKind == ItemNone {
		return true
	}
	hi := bp.Item2
	if hi < bp.Item1 {
		hi = bp.Item1
	}
	return item >= uint16(bp.Item1) && item <= uint16(hi)
}

// A BreakpointTable holds up to NumBreakpoints breakpoints. The index of a
// breakpoint doesn't change until it's removed.
type BreakpointTable struct {
	slots [NumBreakpoints]Breakpoint
	used  [NumBreakpoints]bool
	n     int
}

// Len returns the number of breakpoints in the table.
func (t *BreakpointTable) Len() int { return t.n }

// Add adds bp in the first free slot and returns its index.
func (t *BreakpointTable) Add(bp Breakpoint) (int, error) {
	for i := range t.used {
		if !t.used[i] {
			t.slots[i] = bp
			t.used[i] = true
			t.n++
			return i, nil
		}
	}
	return -1, ErrTableFull
}

// FindExactMatch returns the index of the breakpoint describing the same
// thing as bp. With anyItem2, the end of the address range isn't compared.
func (t *BreakpointTable) FindExactMatch(bp Breakpoint, anyItem2 bool) (int, error) {
	for i := range t.used {
		if t.used[i] && t.slots[i].sameAs(&bp, anyItem2) {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

func (t *BreakpointTable) check(idx int) error {
	if idx < 0 || idx >= NumBreakpoints || !t.used[idx] {
		return errors.Wrapf(ErrBadIndex, "breakpoint %d", idx)
	}
	return nil
}

// Remove removes the breakpoint at idx.
func (t *BreakpointTable) Remove(idx int) error {
	if err := t.check(idx); err != nil {
		return err
	}
	t.used[idx] = false
	t.slots[idx] = Breakpoint{}
	t.n--
	return nil
}

// ToggleEnabled flips the Enabled state of the breakpoint at idx.
func (t *BreakpointTable) ToggleEnabled(idx int) error {
	if err := t.check(idx); err != nil {
		return err
	}
	t.slots[idx].Enabled = !t.slots[idx].Enabled
	return nil
}

// Breakpoint returns a copy of the breakpoint at idx.
func (t *BreakpointTable) Breakpoint(idx int) (Breakpoint, error) {
	if err := t.check(idx); err != nil {
		return Breakpoint{}, err
	}
	return t.slots[idx], nil
}

// IndexedBreakpoint is a breakpoint and its index in the table.
type IndexedBreakpoint struct {
	Index int
	Breakpoint
}

// Enumerate returns the breakpoints in index order.
func (t *BreakpointTable) Enumerate() []IndexedBreakpoint {
	bps := make([]IndexedBreakpoint, 0, t.n)
	for i := range t.used {
		if t.used[i] {
			bps = append(bps, IndexedBreakpoint{Index: i, Breakpoint: t.slots[i]})
		}
	}
	return bps
}

// Restore replaces the content of the table with bps, in order. Hit state
// is cleared.
func (t *BreakpointTable) Restore(bps []Breakpoint) error {
	if len(bps) > NumBreakpoints {
		return errors.Wrapf(ErrTableFull, "restoring %d breakpoints", len(bps))
	}
	*t = BreakpointTable{}
	for _, bp := range bps {
		bp.Hit, bp.HitCount = false, 0
		t.Add(bp)
	}
	return nil
}

// ClearHits resets the hit state of all breakpoints.
func (t *BreakpointTable) ClearHits() {
	for i := range t.slots {
		t.slots[i].Hit = false
		t.slots[i].HitCount = 0
	}
}

// Hit describes a breakpoint that matched.
type Hit struct {
	Index      int
	Breakpoint Breakpoint
}

// match runs fn on all enabled breakpoints of type typ. Every matching
// breakpoint is latched, temporary ones are removed. The first hit, in index
// order, is returned.
func (t *BreakpointTable) match(typ BreakpointType, fn func(bp *Breakpoint) bool) (Hit, bool) {
	if t.n == 0 {
		return Hit{}, false
	}
	var (
		first Hit
		found bool
	)
	for i := range t.slots {
		bp := &t.slots[i]
		if !t.used[i] || !bp.Enabled || !typeMatches(bp.Type, typ) || !fn(bp) {
			continue
		}
		bp.Hit = true
		bp.HitCount++
		if !found {
			first = Hit{Index: i, Breakpoint: *bp}
			found = true
		}
		if bp.Temporary {
			t.Remove(i)
		}
	}
	return first, found
}

// typeMatches reports whether a breakpoint of type bpType watches an
// occurrence of type typ. Memory access breakpoints watch both reads and
// writes.
func typeMatches(bpType, typ BreakpointType) bool {
	if bpType == typ {
		return true
	}
	return bpType == BreakOnCPUMemoryAccess && (typ == BreakOnCPUMemoryRead || typ == BreakOnCPUMemoryWrite)
}
