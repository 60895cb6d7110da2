package mappers

var NROM = MapperDesc{
	Name: "NROM",
	Load: loadNROM,
}

func loadNROM(b *base) error {
	// 16KB PRG ROM carts are mirrored at $C000.
	b.init(nil)
	return nil
}
