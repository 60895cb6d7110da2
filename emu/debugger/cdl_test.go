package debugger

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"nesdbg/hw"
)

func TestCDLRecordAccess(t *testing.T) {
	var cdl CDL
	cdl.RecordAccess(0x8000, accessKindOf(hw.PhaseOpcodeFetch))
	cdl.RecordAccess(0x8000, accessKindOf(hw.PhaseRead))
	cdl.RecordAccess(0x8001, accessKindOf(hw.PhaseOperandFetch))
	cdl.RecordAccess(0x0010, accessKindOf(hw.PhaseWrite))
	cdl.RecordAccess(0x0010, accessKindOf(hw.PhaseDummyRead))
	cdl.RecordAccess(0x0200, AccessDMA)

	tests := []struct {
		addr uint16
		want AccessKind
	}{
		{0x8000, AccessFetch | AccessRead},
		{0x8001, AccessOperand},
		{0x0010, AccessRead | AccessWrite},
		{0x0200, AccessDMA},
		{0x0201, 0},
	}
	for _, tt := range tests {
		if got := cdl.Mask(tt.addr); got != tt.want {
			t.Errorf("Mask($%04X) = %s, want %s", tt.addr, got, tt.want)
		}
	}

	want := CDLStats{Fetch: 1, Operand: 1, Read: 2, Write: 1, DMA: 1, Touched: 4}
	if diff := cmp.Diff(want, cdl.Stats()); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}

	buf := make([]byte, CDLImageSize)
	cdl.Render(buf)
	colors := map[uint16]uint8{
		0x8000: CDLColorCodeData,
		0x8001: CDLColorCode,
		0x0010: CDLColorReadWrite,
		0x0200: CDLColorDMA,
		0x0201: CDLColorNone,
	}
	for addr, want := range colors {
		if buf[addr] != want {
			t.Errorf("Render: pixel $%04X = %d, want %d", addr, buf[addr], want)
		}
	}

	cdl.Reset()
	if st := cdl.Stats(); st.Touched != 0 {
		t.Errorf("Touched = %d after Reset", st.Touched)
	}
}

func TestAccessKindString(t *testing.T) {
	tests := []struct {
		k    AccessKind
		want string
	}{
		{0, "none"},
		{AccessFetch, "fetch"},
		{AccessRead | AccessWrite, "read|write"},
		{AccessFetch | AccessOperand | AccessDMA, "fetch|operand|dma"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("AccessKind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
