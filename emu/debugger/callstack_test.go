package debugger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCallStack(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		var cstack callStack
		cstack.push(0xC7C2, 0xC7E7, 0xC7C5, FrameCall)
		cstack.push(0xC801, 0xCBAE, 0xC804, FrameCall)

		fi := cstack.build(0xF099, nil)
		want := []FrameInfo{
			{"CBAE", "$F099"},
			{"C7E7", "$C801"},
			{"[bottom of stack]", "$C7C2"},
		}
		if diff := cmp.Diff(want, fi); diff != "" {
			t.Fatalf("callstack differs (-want +got):\n%s", diff)
		}
	})

	t.Run("empty", func(t *testing.T) {
		var cstack callStack
		fi := cstack.build(0xF099, nil)
		want := []FrameInfo{
			{"[bottom of stack]", "$F099"},
		}
		if diff := cmp.Diff(want, fi); diff != "" {
			t.Fatalf("callstack differs (-want +got):\n%s", diff)
		}
	})

	t.Run("interrupt+symbols", func(t *testing.T) {
		syms := NewSymbols()
		syms.AddLabel(".nmi", 0xE000)

		var cstack callStack
		cstack.push(0xC000, 0xE000, 0xC000, FrameNMI)
		cstack.push(0xE010, 0xE100, 0xE013, FrameCall)
		cstack.pop()

		fi := cstack.build(0xE013, syms)
		want := []FrameInfo{
			{"[nmi] .nmi", "$E013"},
			{"[bottom of stack]", "$C000"},
		}
		if diff := cmp.Diff(want, fi); diff != "" {
			t.Fatalf("callstack differs (-want +got):\n%s", diff)
		}
	})

	t.Run("bounded", func(t *testing.T) {
		var cstack callStack
		for i := range maxFrames + 10 {
			cstack.push(LiveAddr(i), 0x8000, LiveAddr(i+3), FrameCall)
		}
		if cstack.len() != maxFrames {
			t.Fatalf("len = %d, want %d", cstack.len(), maxFrames)
		}
		if cstack[0].src != 10 {
			t.Errorf("oldest frame src = %d, want 10", cstack[0].src)
		}
	})
}
