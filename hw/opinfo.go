package hw

// AddrMode is a 6502 addressing mode.
type AddrMode uint8

const (
	ModeImp AddrMode = iota // implied
	ModeAcc                 // accumulator
	ModeImm                 // #$nn
	ModeZpg                 // $nn
	ModeZpx                 // $nn,X
	ModeZpy                 // $nn,Y
	ModeAbs                 // $nnnn
	ModeAbx                 // $nnnn,X
	ModeAby                 // $nnnn,Y
	ModeInd                 // ($nnnn)
	ModeIzx                 // ($nn,X)
	ModeIzy                 // ($nn),Y
	ModeRel                 // branch target
)

var modeNames = [...]string{
	ModeImp: "imp",
	ModeAcc: "acc",
	ModeImm: "imm",
	ModeZpg: "zpg",
	ModeZpx: "zpx",
	ModeZpy: "zpy",
	ModeAbs: "abs",
	ModeAbx: "abx",
	ModeAby: "aby",
	ModeInd: "ind",
	ModeIzx: "izx",
	ModeIzy: "izy",
	ModeRel: "rel",
}

func (m AddrMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "???"
}

// OpcodeInfo describes an opcode. The table of all opcodes, Opcodes, is
// generated and never modified.
type OpcodeInfo struct {
	Op     uint8
	Name   string
	Mode   AddrMode
	Size   uint8 // instruction size in bytes, opcode included
	Cycles uint8 // base cycle count

	// Documented is false for the unofficial opcodes.
	Documented bool

	// PageCross is set for read instructions taking an extra cycle when the
	// indexed address crosses a page.
	PageCross bool

	// ForceExtraCycle is set for the indexed store and read-modify-write
	// instructions, which always spend the cycle a page crossing would cost.
	ForceExtraCycle bool
}

// OpcodeSize returns the size in bytes of the instruction starting with op.
func OpcodeSize(op uint8) int {
	return int(Opcodes[op].Size)
}

// InstructionCycles returns the number of cycles an instruction takes, given
// whether its indexed address crosses a page and, for branches, whether the
// branch is taken and whether its target is on another page.
func InstructionCycles(op uint8, pageCrossed, taken bool) int {
	info := &Opcodes[op]
	n := int(info.Cycles)
	switch {
	case info.Mode == ModeRel:
		if taken {
			n++
			if pageCrossed {
				n++
			}
		}
	case info.PageCross && pageCrossed:
		n++
	}
	return n
}
