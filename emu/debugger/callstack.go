package debugger

import (
	"slices"
	"strings"
)

// FrameKind tells how a stack frame has been entered.
type FrameKind uint8

const (
	FrameCall FrameKind = iota // JSR
	FrameNMI
	FrameIRQ
)

// maxFrames bounds the call stack depth. Programs that manipulate the stack
// directly, or never return from interrupt handlers, would otherwise make it
// grow forever.
const maxFrames = 256

type stackFrame struct {
	src    LiveAddr // address of the calling instruction
	target LiveAddr // entry point
	ret    LiveAddr // return address
	kind   FrameKind
}

type callStack []stackFrame

func (cs *callStack) push(src, dst, ret LiveAddr, kind FrameKind) {
	if cs.len() == maxFrames {
		*cs = slices.Delete(*cs, 0, 1)
	}
	*cs = append(*cs, stackFrame{
		src:    src,
		target: dst,
		ret:    ret,
		kind:   kind,
	})
}

func (cs *callStack) len() int {
	return len(*cs)
}

func (cs *callStack) pop() {
	if cs.len() == 0 {
		return
	}
	*cs = (*cs)[:cs.len()-1]
}

func (cs *callStack) reset() {
	*cs = (*cs)[:0]
}

// FrameInfo is the description of a call stack frame: the routine entry
// point and the address currently executed in it.
type FrameInfo struct {
	Entry string
	Addr  string
}

// build returns the call stack frames, innermost first. pc is the address
// being executed in the innermost frame.
func (cs *callStack) build(pc LiveAddr, syms SymbolResolver) []FrameInfo {
	nfos := make([]FrameInfo, 0, cs.len()+1)
	var curf *stackFrame
	for i, f := range *cs {
		if i > 0 {
			curf = &((*cs)[i-1])
		}
		nfos = slices.Insert(nfos, 0, FrameInfo{
			cs.entryPoint(curf, syms),
			f.src.String(),
		})
	}

	// Current frame
	curf = nil
	if cs.len() > 0 {
		curf = &((*cs)[cs.len()-1])
	}

	return slices.Insert(nfos, 0, FrameInfo{
		cs.entryPoint(curf, syms),
		pc.String(),
	})
}

func (callStack) entryPoint(f *stackFrame, syms SymbolResolver) string {
	if f == nil {
		return "[bottom of stack]"
	}

	str := f.target.String()
	if syms != nil {
		if name, ok := syms.Symbol(f.target); ok {
			str = name
		}
	}
	switch f.kind {
	case FrameNMI:
		return "[nmi] " + str
	case FrameIRQ:
		return "[irq] " + str
	default:
		return strings.TrimPrefix(str, "$")
	}
}
