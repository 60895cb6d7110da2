package hw

//go:generate go run ./cpugen -out opcodes.go

func pagecross(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

/* operand fetching */

func (c *CPU) fetch8() uint8 {
	val := c.read(c.PC, PhaseOperandFetch)
	c.PC++
	return val
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

/* addressing modes */

func (c *CPU) imp() {
	c.dummyRead(c.PC)
}

func (c *CPU) acc() {
	c.dummyRead(c.PC)
}

func (c *CPU) imm() uint8 {
	c.ea = c.PC
	return c.fetch8()
}

func (c *CPU) zpg() uint16 {
	c.ea = uint16(c.fetch8())
	return c.ea
}

func (c *CPU) zpx() uint16 {
	zp := c.fetch8()
	c.dummyRead(uint16(zp))
	c.ea = uint16(zp + c.X)
	return c.ea
}

func (c *CPU) zpy() uint16 {
	zp := c.fetch8()
	c.dummyRead(uint16(zp))
	c.ea = uint16(zp + c.Y)
	return c.ea
}

func (c *CPU) abs() uint16 {
	c.ea = c.fetch16()
	return c.ea
}

// indexed performs the dummy read of indexed addressing modes, at the
// address the CPU computes before fixing the high byte. It happens only on
// page crossing for read instructions, always for the others.
func (c *CPU) indexed(base uint16, index uint8, dummyread bool) uint16 {
	addr := base + uint16(index)
	if dummyread || pagecross(base, addr) {
		c.dummyRead(base&0xFF00 | addr&0x00FF)
	}
	c.ea = addr
	return addr
}

func (c *CPU) abx(dummyread bool) uint16 {
	return c.indexed(c.fetch16(), c.X, dummyread)
}

func (c *CPU) aby(dummyread bool) uint16 {
	return c.indexed(c.fetch16(), c.Y, dummyread)
}

// zpPointer reads a 16-bit pointer from the zero page, wrapping within page 0.
func (c *CPU) zpPointer(zp uint8) uint16 {
	lo := c.Read8(uint16(zp))
	hi := c.Read8(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) izx() uint16 {
	zp := c.fetch8()
	c.dummyRead(uint16(zp))
	c.ea = c.zpPointer(zp + c.X)
	return c.ea
}

func (c *CPU) izy(dummyread bool) uint16 {
	base := c.zpPointer(c.fetch8())
	return c.indexed(base, c.Y, dummyread)
}

// ind is only used by JMP, it reproduces the page wrap bug of the 6502 where
// JMP ($xxFF) reads the high byte from $xx00.
func (c *CPU) ind() uint16 {
	ptr := c.fetch16()
	lo := c.Read8(ptr)
	hi := c.Read8(ptr&0xFF00 | uint16(uint8(ptr)+1))
	c.ea = uint16(hi)<<8 | uint16(lo)
	return c.ea
}

func (c *CPU) rel() uint16 {
	off := int8(c.fetch8())
	c.ea = c.PC + uint16(off)
	return c.ea
}

/* instruction helpers */

func (c *CPU) setreg(reg *uint8, val uint8) {
	*reg = val
	c.P.checkNZ(val)
}

func (c *CPU) branch(target uint16, taken bool) {
	if !taken {
		return
	}
	// A taken branch that doesn't cross a page delays an IRQ that was
	// detected on its operand fetch cycle.
	if c.runIRQ && !c.prevRunIRQ {
		c.runIRQ = false
	}
	c.dummyRead(c.PC)
	if pagecross(c.PC, target) {
		c.dummyRead(c.PC&0xFF00 | target&0x00FF)
	}
	c.PC = target
}

func (c *CPU) add(val uint8) {
	var carry uint16
	if c.P.hasFlag(Carry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(val) + carry
	c.P.checkCV(c.A, val, sum)
	c.setreg(&c.A, uint8(sum))
}

func (c *CPU) adc(val uint8) { c.add(val) }
func (c *CPU) sbc(val uint8) { c.add(val ^ 0xFF) }

func (c *CPU) ora(val uint8) { c.setreg(&c.A, c.A|val) }
func (c *CPU) and(val uint8) { c.setreg(&c.A, c.A&val) }
func (c *CPU) eor(val uint8) { c.setreg(&c.A, c.A^val) }

func (c *CPU) compare(reg, val uint8) {
	c.P.setFlag(Carry, reg >= val)
	c.P.checkNZ(reg - val)
}

func (c *CPU) bit(val uint8) {
	c.P.clearFlags(Zero | Overflow | Negative)
	c.P |= P(val) & (Overflow | Negative)
	c.P.setFlag(Zero, c.A&val == 0)
}

func (c *CPU) asl(val uint8) uint8 {
	c.P.setFlag(Carry, val&0x80 != 0)
	val <<= 1
	c.P.checkNZ(val)
	return val
}

func (c *CPU) lsr(val uint8) uint8 {
	c.P.setFlag(Carry, val&0x01 != 0)
	val >>= 1
	c.P.checkNZ(val)
	return val
}

func (c *CPU) rol(val uint8) uint8 {
	carry := c.P & Carry
	c.P.setFlag(Carry, val&0x80 != 0)
	val = val<<1 | uint8(carry)
	c.P.checkNZ(val)
	return val
}

func (c *CPU) ror(val uint8) uint8 {
	carry := c.P & Carry
	c.P.setFlag(Carry, val&0x01 != 0)
	val = val>>1 | uint8(carry)<<7
	c.P.checkNZ(val)
	return val
}

func (c *CPU) inc(val uint8) uint8 {
	val++
	c.P.checkNZ(val)
	return val
}

func (c *CPU) dec(val uint8) uint8 {
	val--
	c.P.checkNZ(val)
	return val
}

func (c *CPU) pla() {
	c.dummyRead(uint16(c.SP) + 0x0100)
	c.setreg(&c.A, c.pull8())
}

func (c *CPU) plp() {
	c.dummyRead(uint16(c.SP) + 0x0100)
	p := P(c.pull8())
	// B and U bits don't exist in the register.
	const mask = ^(Break | Reserved)
	c.P = c.P&^mask | p&mask
}

/* unofficial opcodes */

func (c *CPU) lax(val uint8) {
	c.setreg(&c.A, val)
	c.X = val
}

func (c *CPU) anc(val uint8) {
	c.and(val)
	c.P.setFlag(Carry, c.P.hasFlag(Negative))
}

func (c *CPU) alr(val uint8) {
	c.and(val)
	c.A = c.lsr(c.A)
}

func (c *CPU) arr(val uint8) {
	carry := c.P & Carry
	c.setreg(&c.A, (c.A&val)>>1|uint8(carry)<<7)
	c.P.setFlag(Carry, c.A&0x40 != 0)
	c.P.setFlag(Overflow, (c.A>>6^c.A>>5)&0x01 != 0)
}

// magic constant of the unstable ANE and LXA opcodes.
const unstableMagic = 0xEE

func (c *CPU) ane(val uint8) {
	c.setreg(&c.A, (c.A|unstableMagic)&c.X&val)
}

func (c *CPU) lxa(val uint8) {
	val &= c.A | unstableMagic
	c.setreg(&c.A, val)
	c.X = val
}

func (c *CPU) sbx(val uint8) {
	ax := c.A & c.X
	c.P.setFlag(Carry, ax >= val)
	c.setreg(&c.X, ax-val)
}

func (c *CPU) las(val uint8) {
	c.setreg(&c.A, c.SP&val)
	c.X = c.A
	c.SP = c.A
}

// sh implements the SHA/SHX/SHY/TAS stores. The stored value is ANDed with
// the high byte of the base address plus one and on page crossing the high
// byte of the target address is replaced by the stored value.
func (c *CPU) sh(base uint16, index, val uint8) {
	addr := base + uint16(index)
	c.dummyRead(base&0xFF00 | addr&0x00FF)

	hi := uint8(addr >> 8)
	if pagecross(base, addr) {
		hi &= val
	}
	addr = uint16(hi)<<8 | addr&0x00FF
	c.ea = addr
	c.Write8(addr, val&(uint8(base>>8)+1))
}

func (c *CPU) shaIzy() {
	base := c.zpPointer(c.fetch8())
	c.sh(base, c.Y, c.A&c.X)
}

/* hand-written opcodes */

func BRK(cpu *CPU) {
	// dummy read.
	cpu.dummyRead(cpu.PC)

	cpu.push16(cpu.PC + 1)

	p := cpu.P | Break | Reserved
	if cpu.needNmi {
		cpu.needNmi = false
		cpu.push8(uint8(p))
		cpu.P.setFlags(Interrupt)
		cpu.ea = NMIVector
		cpu.PC = cpu.Read16(NMIVector)
	} else {
		cpu.push8(uint8(p))
		cpu.P.setFlags(Interrupt)
		cpu.ea = IRQVector
		cpu.PC = cpu.Read16(IRQVector)
	}

	// Ensure we don't start an NMI right after running a BRK instruction (first
	// instruction in IRQ handler must run first - needed for nmi_and_brk test)
	cpu.prevNeedNmi = false
}

func JSR(cpu *CPU) {
	lo := cpu.fetch8()
	cpu.dummyRead(uint16(cpu.SP) + 0x0100)
	cpu.push16(cpu.PC)
	hi := cpu.fetch8()
	cpu.PC = uint16(hi)<<8 | uint16(lo)
	cpu.ea = cpu.PC
}

func RTI(cpu *CPU) {
	cpu.imp()
	cpu.plp()
	cpu.PC = cpu.pull16()
	cpu.ea = cpu.PC
}

func RTS(cpu *CPU) {
	cpu.imp()
	cpu.dummyRead(uint16(cpu.SP) + 0x0100)
	cpu.PC = cpu.pull16()
	cpu.dummyRead(cpu.PC)
	cpu.PC++
	cpu.ea = cpu.PC
}
