package hwio

import "math/bits"

const (
	NumBits  = 0x10000            // 64KB address space
	wordSize = 64                 // using 64-bit words
	numWords = NumBits / wordSize // 1024 words exactly
)

// Bitset holds one bit per address of the 64KB address space. The zero value
// is an empty set.
type Bitset struct {
	words [numWords]uint64
}

func (b *Bitset) Set(addr uint16) {
	b.words[addr/wordSize] |= 1 << (addr % wordSize)
}

func (b *Bitset) Clear(addr uint16) {
	b.words[addr/wordSize] &^= 1 << (addr % wordSize)
}

func (b *Bitset) Test(addr uint16) bool {
	return b.words[addr/wordSize]&(1<<(addr%wordSize)) != 0
}

// SetRange sets all bits in the closed interval [start, end].
func (b *Bitset) SetRange(start, end uint16) {
	b.applyRange(start, end, func(w *uint64, mask uint64) { *w |= mask })
}

// ClearRange clears all bits in the closed interval [start, end].
func (b *Bitset) ClearRange(start, end uint16) {
	b.applyRange(start, end, func(w *uint64, mask uint64) { *w &^= mask })
}

func (b *Bitset) applyRange(start, end uint16, op func(*uint64, uint64)) {
	if start > end {
		start, end = end, start
	}
	startWord, endWord := start/wordSize, end/wordSize
	startBit, endBit := start%wordSize, end%wordSize

	if startWord == endWord {
		op(&b.words[startWord], rangeMask(startBit, endBit))
		return
	}
	op(&b.words[startWord], rangeMask(startBit, wordSize-1))
	for i := startWord + 1; i < endWord; i++ {
		op(&b.words[i], ^uint64(0))
	}
	op(&b.words[endWord], rangeMask(0, endBit))
}

// rangeMask returns a mask with bits [lo, hi] set.
func rangeMask(lo, hi uint16) uint64 {
	if hi == wordSize-1 {
		return ^uint64(0) << lo
	}
	return ((uint64(1) << (hi - lo + 1)) - 1) << lo
}

// Count returns the number of set bits.
func (b *Bitset) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

func (b *Bitset) Reset() {
	clear(b.words[:])
}

func (b *Bitset) SetAll() {
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
}
