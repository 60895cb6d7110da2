package mappers

import (
	"nesdbg/emu/log"
	"nesdbg/ines"
)

var MMC1 = MapperDesc{
	Name: "MMC1",
	Load: loadMMC1,
}

type mmc1 struct {
	*base

	prevCycle int64

	serial  shiftReg // shift register
	counter uint8    // count of bits shifted

	// CTRL reg bits
	chrmode uint8
	prgmode uint8
	ntm     uint8

	// CHR regs
	chrbank0 int
	chrbank1 int

	// PRG reg bits
	disableWRAM bool
	prgbank     int
}

type shiftReg uint8

func (sr shiftReg) push(val uint8) shiftReg {
	sr >>= 1
	sr |= shiftReg((val << 4) & 0x10)
	return sr
}

func (m *mmc1) WritePRGROM(addr uint16, val uint8) {
	curCycle := m.cpu.CurrentCycle()
	// Writes on consecutive cycles (read-modify-write instructions) only
	// register the first one.
	resetbit := val&0x80 != 0
	if resetbit || curCycle-m.prevCycle >= 2 {
		if resetbit {
			// Reset the shift register and set PRG mode 3 (16KB, $C000
			// fixed). Other bits are left unchanged.
			m.serial = 0
			m.counter = 0
			m.prgmode = 0b11
			m.remap()
		} else {
			m.serial = m.serial.push(val)
			m.counter++
			if m.counter == 5 {
				m.writeREG(addr, uint8(m.serial))
				m.remap()
				m.serial = 0
				m.counter = 0
			}
		}
	}
	m.prevCycle = curCycle
}

func (m *mmc1) writeREG(addr uint16, val uint8) {
	switch (addr & 0x6000) >> 13 {
	case 0:
		m.writeCTRL(val)
	case 1:
		m.writeCHR0(val)
	case 2:
		m.writeCHR1(val)
	case 3:
		m.writePRG(val)
	}
}

var mmc1Mirroring = [4]ines.NTMirroring{
	ines.OnlyAScreen,
	ines.OnlyBScreen,
	ines.VertMirroring,
	ines.HorzMirroring,
}

func (m *mmc1) writeCTRL(val uint8) {
	m.chrmode = (val & 0x10) >> 4
	m.prgmode = (val & 0x0C) >> 2
	m.ntm = val & 0x03
	if ntm := mmc1Mirroring[m.ntm]; ntm != m.base.ntm {
		m.setNTMirroring(ntm)
	}

	log.ModMapper.DebugZ("write CTRL reg").String("mapper", m.desc.Name).
		Uint8("val", val).
		Uint8("prgmode", m.prgmode).
		Uint8("chrmode", m.chrmode).
		End()
}

func (m *mmc1) writeCHR0(val uint8) {
	log.ModMapper.DebugZ("write CHR0 reg").String("mapper", m.desc.Name).Uint8("val", val).End()
	m.chrbank0 = int(val & 0b11111)
}

func (m *mmc1) writeCHR1(val uint8) {
	log.ModMapper.DebugZ("write CHR1 reg").String("mapper", m.desc.Name).Uint8("val", val).End()
	m.chrbank1 = int(val & 0b11111)
}

func (m *mmc1) writePRG(val uint8) {
	log.ModMapper.DebugZ("write PRG reg").String("mapper", m.desc.Name).Uint8("val", val).End()

	// $E000-FFFF:  [...W PPPP]
	// W = WRAM Disable (0=enabled, 1=disabled)
	// P = PRG Reg
	disable := val&0b1_0000 != 0
	m.prgbank = int(val & 0b1111)
	if disable != m.disableWRAM {
		m.disableWRAM = disable
		if disable {
			m.unmapPRGRAM()
		} else {
			m.mapPRGRAM()
		}
	}
}

func (m *mmc1) remap() {
	switch m.prgmode {
	case 0, 1:
		// 32KB mode ignores the low bit of the bank number.
		m.selectPRGPage32KB(m.prgbank >> 1)
	case 2:
		m.selectPRGPage16KB(0, 0)
		m.selectPRGPage16KB(1, m.prgbank)
	case 3:
		m.selectPRGPage16KB(0, m.prgbank)
		m.selectPRGPage16KB(1, -1)
	}

	switch m.chrmode {
	case 0:
		m.selectCHRPage8KB(m.chrbank0 >> 1)
	case 1:
		m.selectCHRPage4KB(0, m.chrbank0)
		m.selectCHRPage4KB(1, m.chrbank1)
	}
}

func loadMMC1(b *base) error {
	mmc1 := &mmc1{base: b, prevCycle: -2}
	b.init(mmc1.WritePRGROM)

	// On powerup bits 2,3 of $8000 are set: $8000 is bank 0 and $C000 is
	// the last bank.
	mmc1.writeREG(0x8000, 0x0C)
	mmc1.writeREG(0xA000, 0)
	mmc1.writeREG(0xC000, 0)
	mmc1.writeREG(0xE000, 0)
	mmc1.remap()
	return nil
}
