package hw

import (
	"fmt"
	"strings"
)

type DisasmOp struct {
	PC     uint16
	Buf    []byte // instruction bytes, opcode included
	Opcode string // mnemonic, prefixed with '*' for unofficial opcodes
	Oper   string // formatted operand
}

func (d DisasmOp) String() string {
	var sb strings.Builder
	sb.Grow(48)
	fmt.Fprintf(&sb, "%04X  ", d.PC)
	for i := range 3 {
		if i < len(d.Buf) {
			fmt.Fprintf(&sb, "%02X ", d.Buf[i])
		} else {
			sb.WriteString("   ")
		}
	}
	if !strings.HasPrefix(d.Opcode, "*") {
		sb.WriteByte(' ')
	}
	sb.WriteString(d.Opcode)
	if d.Oper != "" {
		sb.WriteByte(' ')
		sb.WriteString(d.Oper)
	}
	return sb.String()
}

// Text returns the mnemonic and operand only.
func (d DisasmOp) Text() string {
	if d.Oper == "" {
		return d.Opcode
	}
	return d.Opcode + " " + d.Oper
}

// Bytes returns the string representation of a DisasmOp, this is optimized
// version, suitable for the execution tracer.
func (d DisasmOp) Bytes() []byte {
	const totalLen = 48
	buf := make([]byte, totalLen)

	hexEncode(buf[0:], byte(d.PC>>8))
	hexEncode(buf[2:], byte(d.PC))
	buf[4] = ' '
	buf[5] = ' '

	off := 6
	for i := range d.Buf {
		hexEncode(buf[off:], d.Buf[i])
		buf[off+2] = ' '
		off += 3
	}

	for ; off < 16; off++ {
		buf[off] = ' '
	}
	if strings.HasPrefix(d.Opcode, "*") {
		off--
	}

	off += copy(buf[off:], d.Opcode)
	buf[off] = ' '
	off++

	buf = append(buf[:off], d.Oper...)
	off += len(d.Oper)
	if len(buf) > totalLen {
		buf = append(buf, ' ')
	} else {
		buf = buf[:totalLen]
		for i := off; i < totalLen; i++ {
			buf[i] = ' '
		}
	}

	return buf
}

func hexEncode(dst []byte, v byte) {
	const hextable = "0123456789ABCDEF"
	dst[0] = hextable[v>>4]
	dst[1] = hextable[v&0x0f]
}

func mnemonic(op uint8) string {
	info := &Opcodes[op]
	if info.Documented {
		return info.Name
	}
	return "*" + info.Name
}

// Disassemble decodes the instruction found in buf, located at pc. buf may
// be shorter than the instruction, missing bytes are then read as zeroes.
func Disassemble(pc uint16, buf []byte) DisasmOp {
	if len(buf) == 0 {
		return DisasmOp{PC: pc, Opcode: "???"}
	}
	info := &Opcodes[buf[0]]
	var ops [3]byte
	copy(ops[:], buf)
	if n := int(info.Size); len(buf) > n {
		buf = buf[:n]
	}

	d := DisasmOp{PC: pc, Buf: buf, Opcode: mnemonic(buf[0])}
	lo, w := ops[1], uint16(ops[2])<<8|uint16(ops[1])
	switch info.Mode {
	case ModeImp:
	case ModeAcc:
		d.Oper = "A"
	case ModeImm:
		d.Oper = fmt.Sprintf("#$%02X", lo)
	case ModeZpg:
		d.Oper = fmt.Sprintf("$%02X", lo)
	case ModeZpx:
		d.Oper = fmt.Sprintf("$%02X,X", lo)
	case ModeZpy:
		d.Oper = fmt.Sprintf("$%02X,Y", lo)
	case ModeAbs:
		d.Oper = fmt.Sprintf("$%04X", w)
	case ModeAbx:
		d.Oper = fmt.Sprintf("$%04X,X", w)
	case ModeAby:
		d.Oper = fmt.Sprintf("$%04X,Y", w)
	case ModeInd:
		d.Oper = fmt.Sprintf("($%04X)", w)
	case ModeIzx:
		d.Oper = fmt.Sprintf("($%02X,X)", lo)
	case ModeIzy:
		d.Oper = fmt.Sprintf("($%02X),Y", lo)
	case ModeRel:
		d.Oper = fmt.Sprintf("$%04X", pc+2+uint16(int8(lo)))
	}
	return d
}

// annotate adds to the operand of d the resolved addresses and the memory
// values the instruction will access, the way nestest logs do.
func (c *CPU) annotate(d *DisasmOp) {
	op := d.Buf[0]
	info := &Opcodes[op]
	var ops [3]byte
	copy(ops[:], d.Buf)
	lo, w := ops[1], uint16(ops[2])<<8|uint16(ops[1])
	peek := c.Bus.Peek8
	peek16zp := func(zp uint8) uint16 {
		return uint16(peek(uint16(zp+1)))<<8 | uint16(peek(uint16(zp)))
	}

	switch info.Mode {
	case ModeZpg:
		d.Oper += fmt.Sprintf(" = %02X", peek(uint16(lo)))
	case ModeZpx:
		addr := uint16(lo + c.X)
		d.Oper += fmt.Sprintf(" @ %02X = %02X", addr, peek(addr))
	case ModeZpy:
		addr := uint16(lo + c.Y)
		d.Oper += fmt.Sprintf(" @ %02X = %02X", addr, peek(addr))
	case ModeAbs:
		if info.Name != "JMP" && info.Name != "JSR" {
			d.Oper += fmt.Sprintf(" = %02X", peek(w))
		}
	case ModeAbx:
		addr := w + uint16(c.X)
		d.Oper += fmt.Sprintf(" @ %04X = %02X", addr, peek(addr))
	case ModeAby:
		addr := w + uint16(c.Y)
		d.Oper += fmt.Sprintf(" @ %04X = %02X", addr, peek(addr))
	case ModeInd:
		hi := peek(w&0xFF00 | uint16(uint8(w)+1))
		d.Oper += fmt.Sprintf(" = %04X", uint16(hi)<<8|uint16(peek(w)))
	case ModeIzx:
		zp := lo + c.X
		addr := peek16zp(zp)
		d.Oper += fmt.Sprintf(" @ %02X = %04X = %02X", zp, addr, peek(addr))
	case ModeIzy:
		base := peek16zp(lo)
		addr := base + uint16(c.Y)
		d.Oper += fmt.Sprintf(" = %04X @ %04X = %02X", base, addr, peek(addr))
	}
}
