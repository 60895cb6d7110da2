package mappers

var GxROM = MapperDesc{
	Name: "GxROM",
	Load: loadGxROM,
}

type gxrom struct {
	*base

	prgbank int
	chrbank int
}

func (m *gxrom) WritePRGROM(addr uint16, val uint8) {
	val = m.busConflict(addr, val)

	// 7  bit  0
	// ---- ----
	// xxPP xxCC
	//   ||   ||
	//   ||   ++- Select 8 KB CHR ROM bank for PPU $0000-$1FFF
	//   ++------ Select 32 KB PRG ROM bank for CPU $8000-$FFFF
	prgbank := int(val>>4) & 0x03
	if prgbank != m.prgbank {
		m.prgbank = prgbank
		m.selectPRGPage32KB(prgbank)
	}
	chrbank := int(val & 0x03)
	if chrbank != m.chrbank {
		m.chrbank = chrbank
		m.selectCHRPage8KB(chrbank)
	}
}

func loadGxROM(b *base) error {
	gxrom := &gxrom{base: b}
	b.init(gxrom.WritePRGROM)
	b.selectPRGPage32KB(0)
	return nil
}
