package debugger

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func execAt(addr LiveAddr) Breakpoint {
	return Breakpoint{
		Type:     BreakOnCPUExecution,
		ItemKind: ItemAddress,
		Item1:    addr,
		Item1Abs: NoAbsAddr,
		Item2:    addr,
		Enabled:  true,
	}
}

func TestBreakpointTableFull(t *testing.T) {
	var tbl BreakpointTable
	for i := range NumBreakpoints {
		idx, err := tbl.Add(execAt(LiveAddr(0x8000 + i)))
		if err != nil {
			t.Fatalf("Add #%d: %v", i, err)
		}
		if idx != i {
			t.Fatalf("Add #%d: index = %d", i, idx)
		}
	}

	before := tbl.Enumerate()
	idx, err := tbl.Add(execAt(0x9000))
	if !errors.Is(err, ErrTableFull) || idx != -1 {
		t.Fatalf("Add on full table = %d, %v, want -1, ErrTableFull", idx, err)
	}
	if diff := cmp.Diff(before, tbl.Enumerate()); diff != "" {
		t.Errorf("failed Add modified the table (-before +after):\n%s", diff)
	}
	if tbl.Len() != NumBreakpoints {
		t.Errorf("Len = %d, want %d", tbl.Len(), NumBreakpoints)
	}
}

func TestBreakpointTableSlots(t *testing.T) {
	var tbl BreakpointTable
	for i := range 3 {
		tbl.Add(execAt(LiveAddr(0x8000 + i)))
	}
	if err := tbl.Remove(1); err != nil {
		t.Fatal(err)
	}

	// Indices of other breakpoints are stable, the free slot is reused.
	bp, err := tbl.Breakpoint(2)
	if err != nil || bp.Item1 != 0x8002 {
		t.Fatalf("Breakpoint(2) = %v, %v", bp.Item1, err)
	}
	idx, _ := tbl.Add(execAt(0xC000))
	if idx != 1 {
		t.Errorf("Add reused slot %d, want 1", idx)
	}

	for _, idx := range []int{-1, 5, NumBreakpoints} {
		if err := tbl.Remove(idx); !errors.Is(err, ErrBadIndex) {
			t.Errorf("Remove(%d) = %v, want ErrBadIndex", idx, err)
		}
		if err := tbl.ToggleEnabled(idx); !errors.Is(err, ErrBadIndex) {
			t.Errorf("ToggleEnabled(%d) = %v, want ErrBadIndex", idx, err)
		}
	}

	if err := tbl.ToggleEnabled(0); err != nil {
		t.Fatal(err)
	}
	if bp, _ := tbl.Breakpoint(0); bp.Enabled {
		t.Errorf("breakpoint 0 still enabled after toggle")
	}
}

func TestFindExactMatch(t *testing.T) {
	var tbl BreakpointTable
	rng := execAt(0x8000)
	rng.Type = BreakOnCPUMemoryRead
	rng.Item2 = 0x80FF
	tbl.Add(execAt(0x8000))
	tbl.Add(rng)

	if idx, err := tbl.FindExactMatch(execAt(0x8000), false); err != nil || idx != 0 {
		t.Errorf("FindExactMatch(exec $8000) = %d, %v", idx, err)
	}

	// State fields don't matter.
	hit := execAt(0x8000)
	hit.Hit, hit.HitCount, hit.Enabled = true, 3, false
	if idx, err := tbl.FindExactMatch(hit, false); err != nil || idx != 0 {
		t.Errorf("FindExactMatch(hit) = %d, %v", idx, err)
	}

	other := rng
	other.Item2 = 0x8010
	if _, err := tbl.FindExactMatch(other, false); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindExactMatch(other range) = %v, want ErrNotFound", err)
	}
	if idx, err := tbl.FindExactMatch(other, true); err != nil || idx != 1 {
		t.Errorf("FindExactMatch(anyItem2) = %d, %v", idx, err)
	}
}

func TestAddBreakpointNoDuplicates(t *testing.T) {
	d, _, _ := newTestDebugger(t, testProgram)

	a := mustAddSpec(t, d, "read $0300-$03FF == $42")
	b := mustAddSpec(t, d, "read $0300-$03FF == $42")
	if a != b {
		t.Errorf("same breakpoint added twice, at %d and %d", a, b)
	}
	if d.Breakpoints().Len() != 1 {
		t.Errorf("Len = %d, want 1", d.Breakpoints().Len())
	}
	mustAddSpec(t, d, "read $0300-$03FF == $43")
	if d.Breakpoints().Len() != 2 {
		t.Errorf("Len = %d, want 2", d.Breakpoints().Len())
	}
}

func TestBreakpointMatch(t *testing.T) {
	var tbl BreakpointTable
	tmp := execAt(0x8000)
	tmp.Temporary = true
	tbl.Add(execAt(0x8000))
	tbl.Add(tmp)
	off := execAt(0x8000)
	off.Enabled = false
	off.Data, off.DataKind, off.Cond = 1, DataPure, CondEqual
	tbl.Add(off)

	exec := func(live LiveAddr) (Hit, bool) {
		return tbl.match(BreakOnCPUExecution, func(bp *Breakpoint) bool {
			return bp.matchAddr(live, NoAbsAddr)
		})
	}

	if _, ok := exec(0x8001); ok {
		t.Fatalf("hit at $8001")
	}
	hit, ok := exec(0x8000)
	if !ok || hit.Index != 0 {
		t.Fatalf("exec $8000: hit = %+v, %t", hit, ok)
	}
	if tbl.Len() != 2 {
		t.Errorf("temporary breakpoint not removed, Len = %d", tbl.Len())
	}
	if bp, _ := tbl.Breakpoint(2); bp.Hit {
		t.Errorf("disabled breakpoint was hit")
	}

	exec(0x8000)
	bp, _ := tbl.Breakpoint(0)
	if !bp.Hit || bp.HitCount != 2 {
		t.Errorf("breakpoint 0: Hit=%t HitCount=%d, want true, 2", bp.Hit, bp.HitCount)
	}
	tbl.ClearHits()
	if bp, _ := tbl.Breakpoint(0); bp.Hit || bp.HitCount != 0 {
		t.Errorf("ClearHits: Hit=%t HitCount=%d", bp.Hit, bp.HitCount)
	}
}

func TestBreakpointTest(t *testing.T) {
	tests := []struct {
		cond      Condition
		condValue uint16
		data      uint16
		value     uint16
		want      bool
	}{
		{CondEqual, 0, 0x42, 0x42, true},
		{CondEqual, 0, 0x42, 0x43, false},
		{CondNotEqual, 0, 0x42, 0x43, true},
		{CondGreater, 0, 0x10, 0x11, true},
		{CondGreater, 0, 0x10, 0x10, false},
		{CondLess, 0, 0x10, 0x0F, true},
		{CondMasked, 0x80, 0x80, 0xC1, true},
		{CondMasked, 0x80, 0x80, 0x41, false},
		{CondMasked, 0x0F, 0x01, 0xF1, true},
	}
	for _, tt := range tests {
		bp := Breakpoint{DataKind: DataPure, Cond: tt.cond, CondValue: tt.condValue, Data: tt.data}
		if got := bp.test(tt.value); got != tt.want {
			t.Errorf("%s %#x (mask %#x) on %#x = %t, want %t", tt.cond, tt.data, tt.condValue, tt.value, got, tt.want)
		}
	}

	var bp Breakpoint
	if !bp.test(0x1234) {
		t.Errorf("breakpoint without data should always pass")
	}
}

func TestAccessBreakpointMatchesReadsAndWrites(t *testing.T) {
	for _, typ := range []BreakpointType{BreakOnCPUMemoryRead, BreakOnCPUMemoryWrite} {
		if !typeMatches(BreakOnCPUMemoryAccess, typ) {
			t.Errorf("access breakpoint doesn't watch %s", typ)
		}
	}
	if typeMatches(BreakOnCPUMemoryRead, BreakOnCPUMemoryWrite) {
		t.Errorf("read breakpoint watches writes")
	}
	if typeMatches(BreakOnCPUMemoryAccess, BreakOnCPUExecution) {
		t.Errorf("access breakpoint watches execution")
	}
}
