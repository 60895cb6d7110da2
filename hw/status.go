package hw

// P is the 6502 processor status register.
type P uint8

const (
	Carry P = 1 << iota
	Zero
	Interrupt
	Decimal
	Break
	Reserved
	Overflow
	Negative
)

// flagNames maps a flag bit index to its single-letter name.
var flagNames = [8]byte{'C', 'Z', 'I', 'D', 'B', 'U', 'V', 'N'}

// FlagByName returns the status flag named by a single letter (case
// insensitive), as shown by P.String.
func FlagByName(name string) (P, bool) {
	if len(name) != 1 {
		return 0, false
	}
	c := name[0] &^ 0x20
	for i, n := range flagNames {
		if n == c {
			return 1 << i, true
		}
	}
	return 0, false
}

func (p P) String() string {
	const bits = "nvubdizcNVUBDIZC"

	s := make([]byte, 8)
	for i := 0; i < 8; i++ {
		ibit := (uint8(p) & (1 << (7 - i))) >> (7 - i)
		s[i] = bits[i+int(8*ibit)]
	}
	return string(s)
}

func (p *P) setFlags(flags P) {
	*p |= flags
}

func (p *P) clearFlags(flags P) {
	*p &^= flags
}

func (p P) hasFlag(flag P) bool {
	return p&flag == flag
}

func (p *P) setFlag(flag P, v bool) {
	if v {
		*p |= flag
	} else {
		*p &^= flag
	}
}

// checkNZ sets N and Z according to v.
func (p *P) checkNZ(v uint8) {
	p.setFlag(Negative, v&0x80 != 0)
	p.setFlag(Zero, v == 0)
}

func (p *P) checkCV(x, y uint8, sum uint16) {
	// forward carry or unsigned overflow.
	p.setFlag(Carry, sum > 0xFF)

	// signed overflow, can only happen if the sign of the sum differs
	// from that of both operands.
	v := (uint16(x) ^ sum) & (uint16(y) ^ sum) & 0x80
	p.setFlag(Overflow, v != 0)
}
