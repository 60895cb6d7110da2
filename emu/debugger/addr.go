package debugger

import "fmt"

// LiveAddr is an address on the CPU bus, as seen by the code currently
// running. With bank switching, the same LiveAddr can map to different ROM
// bytes over time.
type LiveAddr uint16

func (a LiveAddr) String() string { return fmt.Sprintf("$%04X", uint16(a)) }

// AbsAddr is a bank-independent address: the offset of a byte in the
// cartridge PRG ROM. Without a cartridge mapper, the address space is flat
// and AbsAddr equals LiveAddr.
type AbsAddr int32

// NoAbsAddr is the AbsAddr of a byte outside PRG ROM (RAM, registers), or of
// a source line the symbol resolver couldn't place.
const NoAbsAddr AbsAddr = -1

func (a AbsAddr) Valid() bool { return a >= 0 }

func (a AbsAddr) String() string {
	if !a.Valid() {
		return "none"
	}
	return fmt.Sprintf("@%05X", int32(a))
}

// AbsResolver maps live CPU addresses to absolute addresses. Cartridge
// mappers implement it.
type AbsResolver interface {
	PRGAbsAddr(addr uint16) (uint32, bool)
}

type flatResolver struct{}

func (flatResolver) PRGAbsAddr(addr uint16) (uint32, bool) { return uint32(addr), true }

func resolveAbs(r AbsResolver, addr LiveAddr) AbsAddr {
	abs, ok := r.PRGAbsAddr(uint16(addr))
	if !ok {
		return NoAbsAddr
	}
	return AbsAddr(abs)
}

// addrMatch says how an address range [item1, item2] of a breakpoint is
// compared against an accessed address. An absolute address is only known
// when both sides could be resolved:
//
//	breakpoint Item1Abs | access abs  | comparison
//	--------------------+-------------+--------------------------------------
//	NoAbsAddr           | any         | live: item1 <= live <= item2
//	valid               | NoAbsAddr   | live: item1 <= live <= item2
//	valid               | valid       | abs: item1Abs <= abs <= item1Abs+(item2-item1)
//
// In the last case the live address is ignored: the breakpoint follows its
// ROM bytes wherever the mapper puts them.
type addrMatch uint8

const (
	matchLive addrMatch = iota
	matchAbs
)

func decideAddrMatch(bpAbs, accessAbs AbsAddr) addrMatch {
	if bpAbs.Valid() && accessAbs.Valid() {
		return matchAbs
	}
	return matchLive
}

func inRange(item1, item2 LiveAddr, item1Abs AbsAddr, live LiveAddr, abs AbsAddr) bool {
	if item2 < item1 {
		item2 = item1
	}
	switch decideAddrMatch(item1Abs, abs) {
	case matchAbs:
		return abs >= item1Abs && abs <= item1Abs+AbsAddr(item2-item1)
	default:
		return live >= item1 && live <= item2
	}
}
