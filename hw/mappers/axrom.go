package mappers

import (
	"nesdbg/emu/log"
	"nesdbg/ines"
)

var AxROM = MapperDesc{
	Name: "AxROM",
	Load: loadAxROM,
}

type axrom struct {
	*base

	prgbank      int
	busConflicts bool
}

func (m *axrom) WritePRGROM(addr uint16, val uint8) {
	if m.busConflicts {
		val = m.busConflict(addr, val)
	}

	// 7  bit  0
	// ---- ----
	// xxxM xPPP
	//    |  |||
	//    |  +++- Select 32 KB PRG ROM bank for CPU $8000-$FFFF
	//    +------ Select 1 KB VRAM page for all 4 nametables
	prev := m.prgbank
	m.prgbank = int(val & 0x7)
	if prev != m.prgbank {
		m.selectPRGPage32KB(m.prgbank)
	}

	ntm := ines.OnlyAScreen
	if val&0x10 == 0x10 {
		ntm = ines.OnlyBScreen
	}
	if prevntm := m.ntm; prevntm != ntm {
		m.setNTMirroring(ntm)
		log.ModMapper.DebugZ("select NT mirroring").
			String("mapper", m.desc.Name).
			Stringer("prev", prevntm).
			Stringer("new", ntm).
			End()
	}
}

func loadAxROM(b *base) error {
	axrom := &axrom{
		base:         b,
		busConflicts: b.rom.SubMapper() == 2,
	}
	b.init(axrom.WritePRGROM)
	b.selectPRGPage32KB(0)
	b.setNTMirroring(ines.OnlyAScreen)
	return nil
}
