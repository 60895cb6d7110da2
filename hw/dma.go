package hw

import (
	"nesdbg/emu/log"
	"nesdbg/hw/hwio"
)

// DMA handles DMA transfer of OAM (sprites attributes) to the PPU
// and DMC samples to the APU. Both halt the CPU, on its next read cycle.
type DMA struct {
	cpu *CPU

	needHalt bool
	// DMA transfer can only be started on even CPU cycles. We use a dummy
	// cycle, when necessary, to align the transfer with an even cycle.
	dummy bool

	dmcRunning bool
	abortDMC   bool

	OAMDMA     hwio.Reg8 `hwio:"offset=0x00,writeonly,wcb"`
	oamPage    uint8
	oamRunning bool // OAM DMA in progress
}

func (dma *DMA) InitBus(cpu *CPU) {
	hwio.MustInitRegs(dma)
	dma.cpu = cpu
	dma.reset()
}

func (dma *DMA) reset() {
	dma.oamPage = 0x00
	dma.dummy = true
	dma.needHalt = false
	dma.oamRunning = false
	dma.dmcRunning = false
	dma.abortDMC = false
}

// Running reports whether a DMA transfer is pending or in progress.
func (dma *DMA) Running() bool {
	return dma.oamRunning || dma.dmcRunning
}

func (dma *DMA) WriteOAMDMA(_, val uint8) {
	log.ModCPU.DebugZ("start OAM DMA transfer").Hex8("page", val).End()
	dma.oamPage = val
	dma.oamRunning = true
	dma.needHalt = true
}

func (dma *DMA) startDMCTransfer() {
	log.ModCPU.DebugZ("start DMC DMA transfer").End()
	dma.dmcRunning = true
	dma.dummy = true
	dma.needHalt = true
}

func (dma *DMA) stopDMCTransfer() {
	if !dma.dmcRunning {
		return
	}
	log.ModCPU.DebugZ("stop DMC DMA transfer").End()
	if dma.needHalt {
		// If interrupted before the halt cycle starts, cancel DMA
		// completely. This can happen when a write prevents the DMA from
		// starting after being queued.
		dma.dmcRunning = false
		dma.dummy = false
		dma.needHalt = false
	} else {
		// Abort DMA if possible (this only appears to be possible if done
		// within the first cycle of DMA).
		dma.abortDMC = true
	}
}

// haltRead is a CPU read cycle performed while the CPU is halted by the DMA.
// Reads of the joypad ports are skipped, controllers would see them.
func (dma *DMA) haltRead(addr uint16) {
	cpu := dma.cpu
	cpu.phase = PhaseDMA
	cpu.cycleBegin(true)
	if addr != 0x4016 && addr != 0x4017 {
		cpu.Bus.Read8(addr)
	}
	cpu.cycleEnd(true)
}

// processPending runs the pending DMA transfers, addr is the address the CPU
// was about to read when it got halted.
func (dma *DMA) processPending(addr uint16) {
	if !dma.needHalt {
		return
	}

	dma.needHalt = false
	cpu := dma.cpu

	// Halt cycle.
	dma.haltRead(addr)

	if dma.abortDMC {
		dma.dmcRunning = false
		dma.abortDMC = false

		if !dma.oamRunning {
			// If DMC DMA was cancelled and OAM DMA isn't about to start,
			// stop processing DMA entirely. Otherwise, OAM DMA needs to run,
			// so the DMA process has to continue.
			dma.dummy = false
			return
		}
	}

	nextCycle := func() {
		// Sprite DMA cycles count as halt/dummy cycles for the DMC DMA when
		// both run at the same time
		switch {
		case dma.abortDMC:
			dma.dmcRunning = false
			dma.abortDMC = false
			dma.dummy = false
			dma.needHalt = false
		case dma.needHalt:
			dma.needHalt = false
		case dma.dummy:
			dma.dummy = false
		}
	}

	oamCounter := 0
	spriteAddr := uint8(0)
	val := uint8(0)

	for dma.dmcRunning || dma.oamRunning {
		if (cpu.Cycles & 0x01) == 0 {
			// Read cycle.
			switch {
			case dma.dmcRunning && !dma.needHalt && !dma.dummy:
				// DMC DMA is ready to read a byte (both halt and dummy read
				// cycles were performed before this)
				nextCycle()
				dmc := &cpu.APU.DMC
				val = dma.read(dmc.CurrentAddress())
				dma.dmcRunning = false
				dma.abortDMC = false
				dmc.SetReadBuffer(val)
			case dma.oamRunning:
				// DMC DMA is not running, or not ready, run sprite DMA
				nextCycle()
				val = dma.read(uint16(dma.oamPage)<<8 | uint16(spriteAddr))
				spriteAddr++
				oamCounter++
			default:
				// DMC DMA is running, but not ready (need halt/dummy read) and
				// sprite DMA isn't running, perform a dummy read
				nextCycle()
				dma.haltRead(addr)
			}
		} else {
			// Write cycle.
			if dma.oamRunning && (oamCounter&0x01 != 0) {
				// Sprite DMA write cycle (only do this if a sprite dma read was
				// performed last cycle).
				nextCycle()
				cpu.phase = PhaseDMA
				cpu.cycleBegin(true)
				cpu.Bus.Write8(0x2004, val)
				cpu.cycleEnd(true)
				oamCounter++
				if oamCounter == 0x200 {
					dma.oamRunning = false
				}
			} else {
				// Align to read cycle before starting sprite DMA (or align to
				// perform DMC read)
				nextCycle()
				dma.haltRead(addr)
			}
		}
	}
}

// read performs a DMA read cycle.
func (dma *DMA) read(addr uint16) uint8 {
	cpu := dma.cpu
	cpu.phase = PhaseDMA
	cpu.cycleBegin(true)
	var val uint8
	if addr < 0x4000 || addr > 0x401F {
		val = cpu.Bus.Read8(addr)
	}
	cpu.dbg.WatchDMA(addr, val)
	cpu.cycleEnd(true)
	return val
}
