package hwio

import (
	"nesdbg/emu/log"
)

// log unmapped accesses (verbose on NES since many games read from open bus)
const logUnmapped = false

// BankIO8 is implemented by anything that can be mapped on an 8-bit bus.
type BankIO8 interface {
	// Read8 reads a byte, with all the side effects of a real bus access.
	Read8(addr uint16) uint8
	// Peek8 reads a byte without side effects (debugger, tracer).
	Peek8(addr uint16) uint8
	Write8(addr uint16, val uint8)
}

func Write16(b BankIO8, addr uint16, val uint16) {
	b.Write8(addr, uint8(val))
	b.Write8(addr+1, uint8(val>>8))
}

func Read16(b BankIO8, addr uint16) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func Peek16(b BankIO8, addr uint16) uint16 {
	lo := b.Peek8(addr)
	hi := b.Peek8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Table is a 64KB address space where devices are mapped.
type Table struct {
	Name string

	// Unmapped receives accesses to addresses no device is mapped at. If
	// nil, reads return 0 and writes are dropped.
	Unmapped BankIO8

	table8 radixTree
}

func NewTable(name string) *Table {
	t := new(Table)
	t.Name = name
	t.Reset()
	return t
}

func (t *Table) Reset() {
	t.table8 = radixTree{}
}

// MapBank maps a register bank, that is a structure containing multiple
// Mem, Reg8 or Device fields. Each field must have a "hwio" struct tag with
// at least an offset, MustInitRegs documents the full syntax. Fields are
// grouped by bank number so that a single structure can expose several banks.
func (t *Table) MapBank(addr uint16, bank any, bankNum int) {
	regs, err := bankGetRegs(bank, bankNum)
	if err != nil {
		panic(err)
	}

	for _, reg := range regs {
		switch r := reg.regPtr.(type) {
		case *Mem:
			t.MapMem(addr+reg.offset, r)
		case *Reg8:
			t.MapReg8(addr+reg.offset, r)
		case *Device:
			t.MapDevice(addr+reg.offset, r)
		default:
			panic("hwio: invalid reg type")
		}
	}
}

func (t *Table) UnmapBank(addr uint16, bank any, bankNum int) {
	regs, err := bankGetRegs(bank, bankNum)
	if err != nil {
		panic(err)
	}

	for _, reg := range regs {
		begin := addr + reg.offset
		switch r := reg.regPtr.(type) {
		case *Mem:
			t.Unmap(begin, begin+uint16(r.VSize-1))
		case *Reg8:
			t.Unmap(begin, begin)
		case *Device:
			t.Unmap(begin, begin+uint16(r.Size-1))
		}
	}
}

func (t *Table) mapBus8(addr uint16, size int, io BankIO8) {
	end := int(addr) + size - 1
	if size <= 0 || end > 0xFFFF {
		log.ModHwIo.FatalZ("invalid mapping").
			String("bus", t.Name).
			Hex16("addr", addr).
			Int("size", size).
			End()
	}
	t.table8.InsertRange(addr, uint16(end), io)
}

func (t *Table) MapReg8(addr uint16, io *Reg8) {
	t.mapBus8(addr, 1, io)
}

func (t *Table) MapDevice(addr uint16, io *Device) {
	t.mapBus8(addr, io.Size, io)
}

func (t *Table) MapMem(addr uint16, mem *Mem) {
	log.ModHwIo.DebugZ("mapping mem").
		Hex16("addr", addr).
		Hex16("size", uint16(mem.VSize)).
		String("area", mem.Name).
		String("bus", t.Name).
		End()

	if len(mem.Data)&(len(mem.Data)-1) != 0 {
		panic("hwio: memory buffer size is not pow2")
	}
	if mem.VSize == 0 {
		mem.VSize = len(mem.Data)
	}

	t.mapBus8(addr, mem.VSize, mem.BankIO8())
}

// MapMemorySlice maps the addresses [addr, end] to mem, mirrored if mem is
// smaller than the range.
func (t *Table) MapMemorySlice(addr, end uint16, mem []uint8, readonly bool) {
	log.ModHwIo.DebugZ("mapping slice").
		Hex16("addr", addr).
		Hex16("end", end).
		String("bus", t.Name).
		Bool("ro", readonly).
		End()

	var flags MemFlags
	if readonly {
		flags |= MemFlag8ReadOnly
	}
	t.MapMem(addr, &Mem{
		Data:  mem,
		Flags: flags,
		VSize: int(end) - int(addr) + 1,
	})
}

func (t *Table) Unmap(begin, end uint16) {
	t.table8.RemoveRange(begin, end)
}

// Search returns the device mapped at addr, or nil.
func (t *Table) Search(addr uint16) BankIO8 {
	return t.table8.Search(addr)
}

func (t *Table) Read8(addr uint16) uint8 {
	io := t.table8.Search(addr)
	if io == nil {
		if logUnmapped {
			log.ModHwIo.ErrorZ("unmapped Read8").
				String("name", t.Name).
				Hex16("addr", addr).
				End()
		}
		if t.Unmapped != nil {
			return t.Unmapped.Read8(addr)
		}
		return 0
	}
	return io.Read8(addr)
}

func (t *Table) Peek8(addr uint16) uint8 {
	io := t.table8.Search(addr)
	if io == nil {
		if t.Unmapped != nil {
			return t.Unmapped.Peek8(addr)
		}
		return 0
	}
	return io.Peek8(addr)
}

func (t *Table) Write8(addr uint16, val uint8) {
	io := t.table8.Search(addr)
	if io == nil {
		if logUnmapped {
			log.ModHwIo.ErrorZ("unmapped Write8").
				String("name", t.Name).
				Hex16("addr", addr).
				Hex8("val", val).
				End()
		}
		if t.Unmapped != nil {
			t.Unmapped.Write8(addr, val)
		}
		return
	}
	if mem, ok := io.(*mem); ok {
		// Keep the read-write path free of function calls.
		if !mem.Write8CheckRO(addr, val) {
			log.ModHwIo.ErrorZ("Write8 to read-only address").
				String("name", t.Name).
				Hex16("addr", addr).
				Hex8("val", val).
				End()
		}
		return
	}
	io.Write8(addr, val)
}

// FetchPointer returns the memory slice starting at addr, if a linear memory
// is mapped there.
func (t *Table) FetchPointer(addr uint16) []uint8 {
	if mem, ok := t.table8.Search(addr).(*mem); ok {
		return mem.FetchPointer(addr)
	}
	return nil
}
