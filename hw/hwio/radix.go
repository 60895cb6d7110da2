package hwio

// radixTree is a two-level page table covering the 16-bit address space.
// Pages are allocated on first insertion.
type radixTree struct {
	pages [256]*[256]BankIO8
}

func (rt *radixTree) InsertRange(begin, end uint16, io BankIO8) {
	for addr := int(begin); addr <= int(end); addr++ {
		hi, lo := addr>>8, addr&0xFF
		if rt.pages[hi] == nil {
			rt.pages[hi] = new([256]BankIO8)
		}
		rt.pages[hi][lo] = io
	}
}

func (rt *radixTree) RemoveRange(begin, end uint16) {
	for addr := int(begin); addr <= int(end); addr++ {
		if page := rt.pages[addr>>8]; page != nil {
			page[addr&0xFF] = nil
		}
	}
}

func (rt *radixTree) Search(addr uint16) BankIO8 {
	page := rt.pages[addr>>8]
	if page == nil {
		return nil
	}
	return page[addr&0xFF]
}
