package hwio

type word interface {
	~uint8 | ~uint16 | ~uint32
}

// Bit reports whether bit n of v is set.
func Bit[T word](v T, n uint) bool {
	return v>>n&1 != 0
}

// Biti returns bit n of v, as 0 or 1.
func Biti[T word](v T, n uint) T {
	return v >> n & 1
}

func SetBit[T word](v *T, n uint) {
	*v |= 1 << n
}

func ClearBit[T word](v *T, n uint) {
	*v &^= 1 << n
}

// PutBit sets or clears bit n of v.
func PutBit[T word](v *T, n uint, set bool) {
	if set {
		SetBit(v, n)
	} else {
		ClearBit(v, n)
	}
}

// Bits extracts the bits [lo, lo+width) of v.
func Bits[T word](v T, lo, width uint) T {
	return (v >> lo) & (1<<width - 1)
}
