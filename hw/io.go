package hw

import (
	"nesdbg/emu/log"
	"nesdbg/hw/hwio"
)

// ioPorts handles the $4016/$4017 ports. No input device is ever plugged, so
// reads only return the open bus bits.
type ioPorts struct {
	cpu     *CPU
	openbus openBus

	JOY1 hwio.Reg8 `hwio:"offset=0x00,rcb,wcb"`
	// Reading $4017 reads the second controller port, writing to it writes
	// the APU frame counter.
	JOY2 hwio.Reg8 `hwio:"offset=0x01,rcb,wcb"`

	strobe bool
}

func (p *ioPorts) initBus(cpu *CPU) {
	hwio.MustInitRegs(p)
	p.cpu = cpu
}

const joyOpenBus = 0x40

func (p *ioPorts) ReadJOY1(uint8) uint8 { return joyOpenBus }
func (p *ioPorts) ReadJOY2(uint8) uint8 { return joyOpenBus }

func (p *ioPorts) WriteJOY1(_, val uint8) {
	p.strobe = val&1 != 0
}

func (p *ioPorts) WriteJOY2(_, val uint8) {
	if p.cpu.APU != nil {
		p.cpu.APU.WriteFrameCounter(val)
	}
}

// openBus answers accesses to unmapped addresses. The 6502 data bus keeps the
// last value it carried, which for absolute addressing is the high byte of
// the address.
type openBus struct{}

func (openBus) Read8(addr uint16) uint8 { return uint8(addr >> 8) }
func (openBus) Peek8(addr uint16) uint8 { return uint8(addr >> 8) }

func (openBus) Write8(addr uint16, val uint8) {
	log.ModMem.DebugZ("write to open bus").
		Hex16("addr", addr).
		Hex8("val", val).
		End()
}
