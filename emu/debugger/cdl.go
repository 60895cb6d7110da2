package debugger

import "nesdbg/hw"

// AccessKind is a kind of CPU bus access recorded by the code/data logger.
// It's a bit mask, an address accumulates all the kinds it's been accessed
// with.
type AccessKind uint8

const (
	AccessFetch   AccessKind = 1 << iota // opcode fetch
	AccessOperand                        // instruction operand fetch
	AccessRead
	AccessWrite
	AccessDMA

	numAccessKinds = 5
)

var accessKindNames = [numAccessKinds]string{"fetch", "operand", "read", "write", "dma"}

func (k AccessKind) String() string {
	s := ""
	for i, n := range accessKindNames {
		if k&(1<<i) != 0 {
			if s != "" {
				s += "|"
			}
			s += n
		}
	}
	if s == "" {
		return "none"
	}
	return s
}

func accessKindOf(phase hw.Phase) AccessKind {
	switch phase {
	case hw.PhaseOpcodeFetch:
		return AccessFetch
	case hw.PhaseOperandFetch:
		return AccessOperand
	case hw.PhaseRead, hw.PhaseDummyRead, hw.PhaseIdle:
		return AccessRead
	case hw.PhaseWrite, hw.PhaseDummyWrite:
		return AccessWrite
	case hw.PhaseDMA:
		return AccessDMA
	}
	return 0
}

// CDL is a code/data logger: it records how each byte of the CPU address
// space has been accessed. CPU resets don't clear it.
type CDL struct {
	masks [0x10000]AccessKind
}

// RecordAccess adds kind to the access mask of addr.
func (c *CDL) RecordAccess(addr uint16, kind AccessKind) {
	c.masks[addr] |= kind
}

// Mask returns the access mask of addr.
func (c *CDL) Mask(addr uint16) AccessKind {
	return c.masks[addr]
}

// Reset clears all access masks.
func (c *CDL) Reset() {
	clear(c.masks[:])
}

// CDLStats counts the addresses accessed with each kind, and at all.
type CDLStats struct {
	Fetch, Operand, Read, Write, DMA int
	Touched                          int
}

func (c *CDL) Stats() CDLStats {
	var st CDLStats
	for _, m := range c.masks {
		if m == 0 {
			continue
		}
		st.Touched++
		if m&AccessFetch != 0 {
			st.Fetch++
		}
		if m&AccessOperand != 0 {
			st.Operand++
		}
		if m&AccessRead != 0 {
			st.Read++
		}
		if m&AccessWrite != 0 {
			st.Write++
		}
		if m&AccessDMA != 0 {
			st.DMA++
		}
	}
	return st
}

// Palette indices used by Render.
const (
	CDLColorNone uint8 = iota
	CDLColorCode       // fetched as opcode or operand
	CDLColorRead
	CDLColorWrite
	CDLColorReadWrite
	CDLColorDMA
	CDLColorCodeData // executed and accessed as data

	NumCDLColors
)

// CDLPalette holds the RGB color of each Render palette index.
var CDLPalette = [NumCDLColors][3]uint8{
	CDLColorNone:      {0x00, 0x00, 0x00},
	CDLColorCode:      {0x20, 0xC0, 0x20},
	CDLColorRead:      {0x20, 0x60, 0xE0},
	CDLColorWrite:     {0xE0, 0x30, 0x30},
	CDLColorReadWrite: {0xD0, 0x40, 0xD0},
	CDLColorDMA:       {0xE0, 0xC0, 0x20},
	CDLColorCodeData:  {0xF0, 0xF0, 0xF0},
}

// CDLImageSize is the size of the buffer Render fills: one pixel per address
// of a 256x256 image, address $XXYY is at row $XX, column $YY.
const CDLImageSize = 256 * 256

// Render fills dst with the palette index of each address.
func (c *CDL) Render(dst []byte) {
	_ = dst[CDLImageSize-1]
	for i, m := range c.masks {
		dst[i] = cdlColor(m)
	}
}

func cdlColor(m AccessKind) uint8 {
	code := m&(AccessFetch|AccessOperand) != 0
	r, w := m&AccessRead != 0, m&AccessWrite != 0
	switch {
	case m == 0:
		return CDLColorNone
	case code && (r || w):
		return CDLColorCodeData
	case code:
		return CDLColorCode
	case r && w:
		return CDLColorReadWrite
	case w:
		return CDLColorWrite
	case r:
		return CDLColorRead
	}
	return CDLColorDMA
}
