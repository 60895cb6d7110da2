// Package mappers implements the cartridge boards: how PRG ROM, PRG RAM,
// CHR ROM/RAM and the nametables appear on the CPU and PPU buses.
package mappers

import (
	"github.com/go-faster/errors"

	"nesdbg/emu/log"
	"nesdbg/hw"
	"nesdbg/ines"
)

// A Mapper is a loaded cartridge board.
type Mapper interface {
	Name() string

	// Mirroring returns the current nametable mirroring.
	Mirroring() ines.NTMirroring

	// PRGAbsAddr returns the offset in PRG ROM of the byte currently mapped
	// at the CPU address addr. It reports false if addr doesn't map PRG ROM.
	PRGAbsAddr(addr uint16) (uint32, bool)
}

type MapperDesc struct {
	Name string
	Load func(*base) error
}

var All = map[uint16]MapperDesc{
	0:  NROM,
	1:  MMC1,
	2:  UxROM,
	3:  CNROM,
	7:  AxROM,
	66: GxROM,
}

// Load maps the cartridge rom onto the CPU and PPU buses.
func Load(rom *ines.Rom, cpu *hw.CPU, ppu *hw.PPU) (Mapper, error) {
	desc, ok := All[rom.Mapper()]
	if !ok {
		return nil, errors.Errorf("unsupported mapper %d", rom.Mapper())
	}
	b, err := newbase(desc, rom, cpu, ppu)
	if err != nil {
		return nil, errors.Wrap(err, "mapper initialization failed")
	}
	if err := b.load(); err != nil {
		return nil, errors.Wrapf(err, "failed to load mapper %s", desc.Name)
	}

	log.ModMapper.InfoZ("cartridge loaded").
		String("mapper", desc.Name).
		Int("prgrom", len(rom.PRGROM)).
		Int("chr", len(b.chr)).
		Bool("chrram", b.chrRAM).
		Stringer("mirroring", b.ntm).
		End()
	return b, nil
}
