package hwio

import (
	"unsafe"

	"nesdbg/emu/log"
)

// mem is the adaptor used for linear memory access. It is used by pointer so
// that Table can detect it behind the BankIO8 interface with a cheap type
// assertion.
type mem struct {
	ptr  unsafe.Pointer
	mask uint16
	wcb  func(uint16, uint8)
	ro   MemFlags
}

func newMem(buf []byte, wcb func(uint16, uint8), flags MemFlags) *mem {
	if len(buf)&(len(buf)-1) != 0 {
		panic("hwio: memory buffer size is not pow2")
	}
	return &mem{
		ptr:  unsafe.Pointer(&buf[0]),
		mask: uint16(len(buf) - 1),
		wcb:  wcb,
		ro:   flags,
	}
}

func (m *mem) FetchPointer(addr uint16) []uint8 {
	off := uintptr(addr & m.mask)
	n := int(m.mask) + 1 - int(off)
	return unsafe.Slice((*uint8)(unsafe.Add(m.ptr, off)), n)
}

func (m *mem) Read8(addr uint16) uint8 {
	return *(*uint8)(unsafe.Add(m.ptr, uintptr(addr&m.mask)))
}

func (m *mem) Peek8(addr uint16) uint8 {
	return *(*uint8)(unsafe.Add(m.ptr, uintptr(addr&m.mask)))
}

// Write8CheckRO writes val and reports whether the write was accepted. Writes
// to read-only memory configured with MemFlagNoROLog are silently dropped
// but reported as accepted.
func (m *mem) Write8CheckRO(addr uint16, val uint8) bool {
	if m.ro&MemFlag8ReadOnly == 0 {
		if m.wcb != nil {
			m.wcb(addr, val)
			return true
		}
		*(*uint8)(unsafe.Add(m.ptr, uintptr(addr&m.mask))) = val
		return true
	}
	return m.ro&MemFlagNoROLog != 0
}

func (m *mem) Write8(addr uint16, val uint8) {
	if !m.Write8CheckRO(addr, val) {
		log.ModHwIo.ErrorZ("Write8 to readonly memory").
			Hex8("val", val).
			Hex16("addr", addr).
			End()
	}
}

type MemFlags int

const (
	MemFlagReadWrite MemFlags = 0
	MemFlag8ReadOnly MemFlags = 1 << iota // read-only accesses
	MemFlagNoROLog                        // do not log writes to read-only memory
)

// Mem is a linear memory area that can be mapped into a Table.
//
// Mem does not implement BankIO8 itself: BankIO8 builds an adaptor specialized
// for the memory configuration, so that flags are not parsed at each access.
type Mem struct {
	Name    string              // name of the memory area (for debugging)
	Data    []byte              // actual memory buffer
	VSize   int                 // virtual size (can be bigger than len(Data), for mirroring)
	Flags   MemFlags            // access flags
	WriteCb func(uint16, uint8) // optional write callback, called instead of writing
}

func (m *Mem) BankIO8() BankIO8 {
	return newMem(m.Data, m.WriteCb, m.Flags)
}
