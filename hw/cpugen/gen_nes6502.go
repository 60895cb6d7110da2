package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"strings"
)

const pkgname = "hw"

type opdef struct {
	n string // name
	m string // addressing mode, if prepended with !, adressing mode is manually written in the opcode
	f string // opcode body, if empty, the opcode is manually written in cpu_ops.go
	d rwType
}

type rwType int

const (
	no rwType = 1 << iota
	rd        // read operand into 'val'
	rw        // read operand into 'val' and write 'val' back into operand after opcode
)

var defs = [256]opdef{
	0x00: {n: "BRK", d: no, m: "!imp"},
	0x01: {n: "ORA", d: rd, m: "izx", f: "cpu.ora(val)"},
	0x02: {n: "STP", d: no, m: "imp", f: "cpu.halt()"},
	0x03: {n: "SLO", d: rw, m: "izx", f: "val = cpu.asl(val)\ncpu.ora(val)"},
	0x04: {n: "NOP", d: rd, m: "zpg", f: "_ = val"},
	0x05: {n: "ORA", d: rd, m: "zpg", f: "cpu.ora(val)"},
	0x06: {n: "ASL", d: rw, m: "zpg", f: "val = cpu.asl(val)"},
	0x07: {n: "SLO", d: rw, m: "zpg", f: "val = cpu.asl(val)\ncpu.ora(val)"},
	0x08: {n: "PHP", d: no, m: "imp", f: "cpu.push8(uint8(cpu.P | Break | Reserved))"},
	0x09: {n: "ORA", d: rd, m: "imm", f: "cpu.ora(val)"},
	0x0A: {n: "ASL", d: rw, m: "acc", f: "val = cpu.asl(val)"},
	0x0B: {n: "ANC", d: rd, m: "imm", f: "cpu.anc(val)"},
	0x0C: {n: "NOP", d: rd, m: "abs", f: "_ = val"},
	0x0D: {n: "ORA", d: rd, m: "abs", f: "cpu.ora(val)"},
	0x0E: {n: "ASL", d: rw, m: "abs", f: "val = cpu.asl(val)"},
	0x0F: {n: "SLO", d: rw, m: "abs", f: "val = cpu.asl(val)\ncpu.ora(val)"},
	0x10: {n: "BPL", d: no, m: "rel", f: "cpu.branch(oper, !cpu.P.hasFlag(Negative))"},
	0x11: {n: "ORA", d: rd, m: "izy", f: "cpu.ora(val)"},
	0x12: {n: "STP", d: no, m: "imp", f: "cpu.halt()"},
	0x13: {n: "SLO", d: rw, m: "izyd", f: "val = cpu.asl(val)\ncpu.ora(val)"},
	0x14: {n: "NOP", d: rd, m: "zpx", f: "_ = val"},
	0x15: {n: "ORA", d: rd, m: "zpx", f: "cpu.ora(val)"},
	0x16: {n: "ASL", d: rw, m: "zpx", f: "val = cpu.asl(val)"},
	0x17: {n: "SLO", d: rw, m: "zpx", f: "val = cpu.asl(val)\ncpu.ora(val)"},
	0x18: {n: "CLC", d: no, m: "imp", f: "cpu.P.clearFlags(Carry)"},
	0x19: {n: "ORA", d: rd, m: "aby", f: "cpu.ora(val)"},
	0x1A: {n: "NOP", d: no, m: "imp", f: "// no operation"},
	0x1B: {n: "SLO", d: rw, m: "abyd", f: "val = cpu.asl(val)\ncpu.ora(val)"},
	0x1C: {n: "NOP", d: rd, m: "abx", f: "_ = val"},
	0x1D: {n: "ORA", d: rd, m: "abx", f: "cpu.ora(val)"},
	0x1E: {n: "ASL", d: rw, m: "abxd", f: "val = cpu.asl(val)"},
	0x1F: {n: "SLO", d: rw, m: "abxd", f: "val = cpu.asl(val)\ncpu.ora(val)"},
	0x20: {n: "JSR", d: no, m: "!abs"},
	0x21: {n: "AND", d: rd, m: "izx", f: "cpu.and(val)"},
	0x22: {n: "STP", d: no, m: "imp", f: "cpu.halt()"},
	0x23: {n: "RLA", d: rw, m: "izx", f: "val = cpu.rol(val)\ncpu.and(val)"},
	0x24: {n: "BIT", d: rd, m: "zpg", f: "cpu.bit(val)"},
	0x25: {n: "AND", d: rd, m: "zpg", f: "cpu.and(val)"},
	0x26: {n: "ROL", d: rw, m: "zpg", f: "val = cpu.rol(val)"},
	0x27: {n: "RLA", d: rw, m: "zpg", f: "val = cpu.rol(val)\ncpu.and(val)"},
	0x28: {n: "PLP", d: no, m: "imp", f: "cpu.plp()"},
	0x29: {n: "AND", d: rd, m: "imm", f: "cpu.and(val)"},
	0x2A: {n: "ROL", d: rw, m: "acc", f: "val = cpu.rol(val)"},
	0x2B: {n: "ANC", d: rd, m: "imm", f: "cpu.anc(val)"},
	0x2C: {n: "BIT", d: rd, m: "abs", f: "cpu.bit(val)"},
	0x2D: {n: "AND", d: rd, m: "abs", f: "cpu.and(val)"},
	0x2E: {n: "ROL", d: rw, m: "abs", f: "val = cpu.rol(val)"},
	0x2F: {n: "RLA", d: rw, m: "abs", f: "val = cpu.rol(val)\ncpu.and(val)"},
	0x30: {n: "BMI", d: no, m: "rel", f: "cpu.branch(oper, cpu.P.hasFlag(Negative))"},
	0x31: {n: "AND", d: rd, m: "izy", f: "cpu.and(val)"},
	0x32: {n: "STP", d: no, m: "imp", f: "cpu.halt()"},
	0x33: {n: "RLA", d: rw, m: "izyd", f: "val = cpu.rol(val)\ncpu.and(val)"},
	0x34: {n: "NOP", d: rd, m: "zpx", f: "_ = val"},
	0x35: {n: "AND", d: rd, m: "zpx", f: "cpu.and(val)"},
	0x36: {n: "ROL", d: rw, m: "zpx", f: "val = cpu.rol(val)"},
	0x37: {n: "RLA", d: rw, m: "zpx", f: "val = cpu.rol(val)\ncpu.and(val)"},
	0x38: {n: "SEC", d: no, m: "imp", f: "cpu.P.setFlags(Carry)"},
	0x39: {n: "AND", d: rd, m: "aby", f: "cpu.and(val)"},
	0x3A: {n: "NOP", d: no, m: "imp", f: "// no operation"},
	0x3B: {n: "RLA", d: rw, m: "abyd", f: "val = cpu.rol(val)\ncpu.and(val)"},
	0x3C: {n: "NOP", d: rd, m: "abx", f: "_ = val"},
	0x3D: {n: "AND", d: rd, m: "abx", f: "cpu.and(val)"},
	0x3E: {n: "ROL", d: rw, m: "abxd", f: "val = cpu.rol(val)"},
	0x3F: {n: "RLA", d: rw, m: "abxd", f: "val = cpu.rol(val)\ncpu.and(val)"},
	0x40: {n: "RTI", d: no, m: "!imp"},
	0x41: {n: "EOR", d: rd, m: "izx", f: "cpu.eor(val)"},
	0x42: {n: "STP", d: no, m: "imp", f: "cpu.halt()"},
	0x43: {n: "SRE", d: rw, m: "izx", f: "val = cpu.lsr(val)\ncpu.eor(val)"},
	0x44: {n: "NOP", d: rd, m: "zpg", f: "_ = val"},
	0x45: {n: "EOR", d: rd, m: "zpg", f: "cpu.eor(val)"},
	0x46: {n: "LSR", d: rw, m: "zpg", f: "val = cpu.lsr(val)"},
	0x47: {n: "SRE", d: rw, m: "zpg", f: "val = cpu.lsr(val)\ncpu.eor(val)"},
	0x48: {n: "PHA", d: no, m: "imp", f: "cpu.push8(cpu.A)"},
	0x49: {n: "EOR", d: rd, m: "imm", f: "cpu.eor(val)"},
	0x4A: {n: "LSR", d: rw, m: "acc", f: "val = cpu.lsr(val)"},
	0x4B: {n: "ALR", d: rd, m: "imm", f: "cpu.alr(val)"},
	0x4C: {n: "JMP", d: no, m: "abs", f: "cpu.PC = oper"},
	0x4D: {n: "EOR", d: rd, m: "abs", f: "cpu.eor(val)"},
	0x4E: {n: "LSR", d: rw, m: "abs", f: "val = cpu.lsr(val)"},
	0x4F: {n: "SRE", d: rw, m: "abs", f: "val = cpu.lsr(val)\ncpu.eor(val)"},
	0x50: {n: "BVC", d: no, m: "rel", f: "cpu.branch(oper, !cpu.P.hasFlag(Overflow))"},
	0x51: {n: "EOR", d: rd, m: "izy", f: "cpu.eor(val)"},
	0x52: {n: "STP", d: no, m: "imp", f: "cpu.halt()"},
	0x53: {n: "SRE", d: rw, m: "izyd", f: "val = cpu.lsr(val)\ncpu.eor(val)"},
	0x54: {n: "NOP", d: rd, m: "zpx", f: "_ = val"},
	0x55: {n: "EOR", d: rd, m: "zpx", f: "cpu.eor(val)"},
	0x56: {n: "LSR", d: rw, m: "zpx", f: "val = cpu.lsr(val)"},
	0x57: {n: "SRE", d: rw, m: "zpx", f: "val = cpu.lsr(val)\ncpu.eor(val)"},
	0x58: {n: "CLI", d: no, m: "imp", f: "cpu.P.clearFlags(Interrupt)"},
	0x59: {n: "EOR", d: rd, m: "aby", f: "cpu.eor(val)"},
	0x5A: {n: "NOP", d: no, m: "imp", f: "// no operation"},
	0x5B: {n: "SRE", d: rw, m: "abyd", f: "val = cpu.lsr(val)\ncpu.eor(val)"},
	0x5C: {n: "NOP", d: rd, m: "abx", f: "_ = val"},
	0x5D: {n: "EOR", d: rd, m: "abx", f: "cpu.eor(val)"},
	0x5E: {n: "LSR", d: rw, m: "abxd", f: "val = cpu.lsr(val)"},
	0x5F: {n: "SRE", d: rw, m: "abxd", f: "val = cpu.lsr(val)\ncpu.eor(val)"},
	0x60: {n: "RTS", d: no, m: "!imp"},
	0x61: {n: "ADC", d: rd, m: "izx", f: "cpu.adc(val)"},
	0x62: {n: "STP", d: no, m: "imp", f: "cpu.halt()"},
	0x63: {n: "RRA", d: rw, m: "izx", f: "val = cpu.ror(val)\ncpu.adc(val)"},
	0x64: {n: "NOP", d: rd, m: "zpg", f: "_ = val"},
	0x65: {n: "ADC", d: rd, m: "zpg", f: "cpu.adc(val)"},
	0x66: {n: "ROR", d: rw, m: "zpg", f: "val = cpu.ror(val)"},
	0x67: {n: "RRA", d: rw, m: "zpg", f: "val = cpu.ror(val)\ncpu.adc(val)"},
	0x68: {n: "PLA", d: no, m: "imp", f: "cpu.pla()"},
	0x69: {n: "ADC", d: rd, m: "imm", f: "cpu.adc(val)"},
	0x6A: {n: "ROR", d: rw, m: "acc", f: "val = cpu.ror(val)"},
	0x6B: {n: "ARR", d: rd, m: "imm", f: "cpu.arr(val)"},
	0x6C: {n: "JMP", d: no, m: "ind", f: "cpu.PC = oper"},
	0x6D: {n: "ADC", d: rd, m: "abs", f: "cpu.adc(val)"},
	0x6E: {n: "ROR", d: rw, m: "abs", f: "val = cpu.ror(val)"},
	0x6F: {n: "RRA", d: rw, m: "abs", f: "val = cpu.ror(val)\ncpu.adc(val)"},
	0x70: {n: "BVS", d: no, m: "rel", f: "cpu.branch(oper, cpu.P.hasFlag(Overflow))"},
	0x71: {n: "ADC", d: rd, m: "izy", f: "cpu.adc(val)"},
	0x72: {n: "STP", d: no, m: "imp", f: "cpu.halt()"},
	0x73: {n: "RRA", d: rw, m: "izyd", f: "val = cpu.ror(val)\ncpu.adc(val)"},
	0x74: {n: "NOP", d: rd, m: "zpx", f: "_ = val"},
	0x75: {n: "ADC", d: rd, m: "zpx", f: "cpu.adc(val)"},
	0x76: {n: "ROR", d: rw, m: "zpx", f: "val = cpu.ror(val)"},
	0x77: {n: "RRA", d: rw, m: "zpx", f: "val = cpu.ror(val)\ncpu.adc(val)"},
	0x78: {n: "SEI", d: no, m: "imp", f: "cpu.P.setFlags(Interrupt)"},
	0x79: {n: "ADC", d: rd, m: "aby", f: "cpu.adc(val)"},
	0x7A: {n: "NOP", d: no, m: "imp", f: "// no operation"},
	0x7B: {n: "RRA", d: rw, m: "abyd", f: "val = cpu.ror(val)\ncpu.adc(val)"},
	0x7C: {n: "NOP", d: rd, m: "abx", f: "_ = val"},
	0x7D: {n: "ADC", d: rd, m: "abx", f: "cpu.adc(val)"},
	0x7E: {n: "ROR", d: rw, m: "abxd", f: "val = cpu.ror(val)"},
	0x7F: {n: "RRA", d: rw, m: "abxd", f: "val = cpu.ror(val)\ncpu.adc(val)"},
	0x80: {n: "NOP", d: rd, m: "imm", f: "_ = val"},
	0x81: {n: "STA", d: no, m: "izx", f: "cpu.Write8(oper, cpu.A)"},
	0x82: {n: "NOP", d: rd, m: "imm", f: "_ = val"},
	0x83: {n: "SAX", d: no, m: "izx", f: "cpu.Write8(oper, cpu.A&cpu.X)"},
	0x84: {n: "STY", d: no, m: "zpg", f: "cpu.Write8(oper, cpu.Y)"},
	0x85: {n: "STA", d: no, m: "zpg", f: "cpu.Write8(oper, cpu.A)"},
	0x86: {n: "STX", d: no, m: "zpg", f: "cpu.Write8(oper, cpu.X)"},
	0x87: {n: "SAX", d: no, m: "zpg", f: "cpu.Write8(oper, cpu.A&cpu.X)"},
	0x88: {n: "DEY", d: no, m: "imp", f: "cpu.setreg(&cpu.Y, cpu.Y-1)"},
	0x89: {n: "NOP", d: rd, m: "imm", f: "_ = val"},
	0x8A: {n: "TXA", d: no, m: "imp", f: "cpu.setreg(&cpu.A, cpu.X)"},
	0x8B: {n: "ANE", d: rd, m: "imm", f: "cpu.ane(val)"},
	0x8C: {n: "STY", d: no, m: "abs", f: "cpu.Write8(oper, cpu.Y)"},
	0x8D: {n: "STA", d: no, m: "abs", f: "cpu.Write8(oper, cpu.A)"},
	0x8E: {n: "STX", d: no, m: "abs", f: "cpu.Write8(oper, cpu.X)"},
	0x8F: {n: "SAX", d: no, m: "abs", f: "cpu.Write8(oper, cpu.A&cpu.X)"},
	0x90: {n: "BCC", d: no, m: "rel", f: "cpu.branch(oper, !cpu.P.hasFlag(Carry))"},
	0x91: {n: "STA", d: no, m: "izyd", f: "cpu.Write8(oper, cpu.A)"},
	0x92: {n: "STP", d: no, m: "imp", f: "cpu.halt()"},
	0x93: {n: "SHA", d: no, m: "!izyd", f: "cpu.shaIzy()"},
	0x94: {n: "STY", d: no, m: "zpx", f: "cpu.Write8(oper, cpu.Y)"},
	0x95: {n: "STA", d: no, m: "zpx", f: "cpu.Write8(oper, cpu.A)"},
	0x96: {n: "STX", d: no, m: "zpy", f: "cpu.Write8(oper, cpu.X)"},
	0x97: {n: "SAX", d: no, m: "zpy", f: "cpu.Write8(oper, cpu.A&cpu.X)"},
	0x98: {n: "TYA", d: no, m: "imp", f: "cpu.setreg(&cpu.A, cpu.Y)"},
	0x99: {n: "STA", d: no, m: "abyd", f: "cpu.Write8(oper, cpu.A)"},
	0x9A: {n: "TXS", d: no, m: "imp", f: "cpu.SP = cpu.X"},
	0x9B: {n: "TAS", d: no, m: "!abyd", f: "cpu.SP = cpu.A & cpu.X\ncpu.sh(cpu.fetch16(), cpu.Y, cpu.SP)"},
	0x9C: {n: "SHY", d: no, m: "!abxd", f: "cpu.sh(cpu.fetch16(), cpu.X, cpu.Y)"},
	0x9D: {n: "STA", d: no, m: "abxd", f: "cpu.Write8(oper, cpu.A)"},
	0x9E: {n: "SHX", d: no, m: "!abyd", f: "cpu.sh(cpu.fetch16(), cpu.Y, cpu.X)"},
	0x9F: {n: "SHA", d: no, m: "!abyd", f: "cpu.sh(cpu.fetch16(), cpu.Y, cpu.A&cpu.X)"},
	0xA0: {n: "LDY", d: rd, m: "imm", f: "cpu.setreg(&cpu.Y, val)"},
	0xA1: {n: "LDA", d: rd, m: "izx", f: "cpu.setreg(&cpu.A, val)"},
	0xA2: {n: "LDX", d: rd, m: "imm", f: "cpu.setreg(&cpu.X, val)"},
	0xA3: {n: "LAX", d: rd, m: "izx", f: "cpu.lax(val)"},
	0xA4: {n: "LDY", d: rd, m: "zpg", f: "cpu.setreg(&cpu.Y, val)"},
	0xA5: {n: "LDA", d: rd, m: "zpg", f: "cpu.setreg(&cpu.A, val)"},
	0xA6: {n: "LDX", d: rd, m: "zpg", f: "cpu.setreg(&cpu.X, val)"},
	0xA7: {n: "LAX", d: rd, m: "zpg", f: "cpu.lax(val)"},
	0xA8: {n: "TAY", d: no, m: "imp", f: "cpu.setreg(&cpu.Y, cpu.A)"},
	0xA9: {n: "LDA", d: rd, m: "imm", f: "cpu.setreg(&cpu.A, val)"},
	0xAA: {n: "TAX", d: no, m: "imp", f: "cpu.setreg(&cpu.X, cpu.A)"},
	0xAB: {n: "LXA", d: rd, m: "imm", f: "cpu.lxa(val)"},
	0xAC: {n: "LDY", d: rd, m: "abs", f: "cpu.setreg(&cpu.Y, val)"},
	0xAD: {n: "LDA", d: rd, m: "abs", f: "cpu.setreg(&cpu.A, val)"},
	0xAE: {n: "LDX", d: rd, m: "abs", f: "cpu.setreg(&cpu.X, val)"},
	0xAF: {n: "LAX", d: rd, m: "abs", f: "cpu.lax(val)"},
	0xB0: {n: "BCS", d: no, m: "rel", f: "cpu.branch(oper, cpu.P.hasFlag(Carry))"},
	0xB1: {n: "LDA", d: rd, m: "izy", f: "cpu.setreg(&cpu.A, val)"},
	0xB2: {n: "STP", d: no, m: "imp", f: "cpu.halt()"},
	0xB3: {n: "LAX", d: rd, m: "izy", f: "cpu.lax(val)"},
	0xB4: {n: "LDY", d: rd, m: "zpx", f: "cpu.setreg(&cpu.Y, val)"},
	0xB5: {n: "LDA", d: rd, m: "zpx", f: "cpu.setreg(&cpu.A, val)"},
	0xB6: {n: "LDX", d: rd, m: "zpy", f: "cpu.setreg(&cpu.X, val)"},
	0xB7: {n: "LAX", d: rd, m: "zpy", f: "cpu.lax(val)"},
	0xB8: {n: "CLV", d: no, m: "imp", f: "cpu.P.clearFlags(Overflow)"},
	0xB9: {n: "LDA", d: rd, m: "aby", f: "cpu.setreg(&cpu.A, val)"},
	0xBA: {n: "TSX", d: no, m: "imp", f: "cpu.setreg(&cpu.X, cpu.SP)"},
	0xBB: {n: "LAS", d: rd, m: "aby", f: "cpu.las(val)"},
	0xBC: {n: "LDY", d: rd, m: "abx", f: "cpu.setreg(&cpu.Y, val)"},
	0xBD: {n: "LDA", d: rd, m: "abx", f: "cpu.setreg(&cpu.A, val)"},
	0xBE: {n: "LDX", d: rd, m: "aby", f: "cpu.setreg(&cpu.X, val)"},
	0xBF: {n: "LAX", d: rd, m: "aby", f: "cpu.lax(val)"},
	0xC0: {n: "CPY", d: rd, m: "imm", f: "cpu.compare(cpu.Y, val)"},
	0xC1: {n: "CMP", d: rd, m: "izx", f: "cpu.compare(cpu.A, val)"},
	0xC2: {n: "NOP", d: rd, m: "imm", f: "_ = val"},
	0xC3: {n: "DCP", d: rw, m: "izx", f: "val = cpu.dec(val)\ncpu.compare(cpu.A, val)"},
	0xC4: {n: "CPY", d: rd, m: "zpg", f: "cpu.compare(cpu.Y, val)"},
	0xC5: {n: "CMP", d: rd, m: "zpg", f: "cpu.compare(cpu.A, val)"},
	0xC6: {n: "DEC", d: rw, m: "zpg", f: "val = cpu.dec(val)"},
	0xC7: {n: "DCP", d: rw, m: "zpg", f: "val = cpu.dec(val)\ncpu.compare(cpu.A, val)"},
	0xC8: {n: "INY", d: no, m: "imp", f: "cpu.setreg(&cpu.Y, cpu.Y+1)"},
	0xC9: {n: "CMP", d: rd, m: "imm", f: "cpu.compare(cpu.A, val)"},
	0xCA: {n: "DEX", d: no, m: "imp", f: "cpu.setreg(&cpu.X, cpu.X-1)"},
	0xCB: {n: "SBX", d: rd, m: "imm", f: "cpu.sbx(val)"},
	0xCC: {n: "CPY", d: rd, m: "abs", f: "cpu.compare(cpu.Y, val)"},
	0xCD: {n: "CMP", d: rd, m: "abs", f: "cpu.compare(cpu.A, val)"},
	0xCE: {n: "DEC", d: rw, m: "abs", f: "val = cpu.dec(val)"},
	0xCF: {n: "DCP", d: rw, m: "abs", f: "val = cpu.dec(val)\ncpu.compare(cpu.A, val)"},
	0xD0: {n: "BNE", d: no, m: "rel", f: "cpu.branch(oper, !cpu.P.hasFlag(Zero))"},
	0xD1: {n: "CMP", d: rd, m: "izy", f: "cpu.compare(cpu.A, val)"},
	0xD2: {n: "STP", d: no, m: "imp", f: "cpu.halt()"},
	0xD3: {n: "DCP", d: rw, m: "izyd", f: "val = cpu.dec(val)\ncpu.compare(cpu.A, val)"},
	0xD4: {n: "NOP", d: rd, m: "zpx", f: "_ = val"},
	0xD5: {n: "CMP", d: rd, m: "zpx", f: "cpu.compare(cpu.A, val)"},
	0xD6: {n: "DEC", d: rw, m: "zpx", f: "val = cpu.dec(val)"},
	0xD7: {n: "DCP", d: rw, m: "zpx", f: "val = cpu.dec(val)\ncpu.compare(cpu.A, val)"},
	0xD8: {n: "CLD", d: no, m: "imp", f: "cpu.P.clearFlags(Decimal)"},
	0xD9: {n: "CMP", d: rd, m: "aby", f: "cpu.compare(cpu.A, val)"},
	0xDA: {n: "NOP", d: no, m: "imp", f: "// no operation"},
	0xDB: {n: "DCP", d: rw, m: "abyd", f: "val = cpu.dec(val)\ncpu.compare(cpu.A, val)"},
	0xDC: {n: "NOP", d: rd, m: "abx", f: "_ = val"},
	0xDD: {n: "CMP", d: rd, m: "abx", f: "cpu.compare(cpu.A, val)"},
	0xDE: {n: "DEC", d: rw, m: "abxd", f: "val = cpu.dec(val)"},
	0xDF: {n: "DCP", d: rw, m: "abxd", f: "val = cpu.dec(val)\ncpu.compare(cpu.A, val)"},
	0xE0: {n: "CPX", d: rd, m: "imm", f: "cpu.compare(cpu.X, val)"},
	0xE1: {n: "SBC", d: rd, m: "izx", f: "cpu.sbc(val)"},
	0xE2: {n: "NOP", d: rd, m: "imm", f: "_ = val"},
	0xE3: {n: "ISC", d: rw, m: "izx", f: "val = cpu.inc(val)\ncpu.sbc(val)"},
	0xE4: {n: "CPX", d: rd, m: "zpg", f: "cpu.compare(cpu.X, val)"},
	0xE5: {n: "SBC", d: rd, m: "zpg", f: "cpu.sbc(val)"},
	0xE6: {n: "INC", d: rw, m: "zpg", f: "val = cpu.inc(val)"},
	0xE7: {n: "ISC", d: rw, m: "zpg", f: "val = cpu.inc(val)\ncpu.sbc(val)"},
	0xE8: {n: "INX", d: no, m: "imp", f: "cpu.setreg(&cpu.X, cpu.X+1)"},
	0xE9: {n: "SBC", d: rd, m: "imm", f: "cpu.sbc(val)"},
	0xEA: {n: "NOP", d: no, m: "imp", f: "// no operation"},
	0xEB: {n: "SBC", d: rd, m: "imm", f: "cpu.sbc(val)"},
	0xEC: {n: "CPX", d: rd, m: "abs", f: "cpu.compare(cpu.X, val)"},
	0xED: {n: "SBC", d: rd, m: "abs", f: "cpu.sbc(val)"},
	0xEE: {n: "INC", d: rw, m: "abs", f: "val = cpu.inc(val)"},
	0xEF: {n: "ISC", d: rw, m: "abs", f: "val = cpu.inc(val)\ncpu.sbc(val)"},
	0xF0: {n: "BEQ", d: no, m: "rel", f: "cpu.branch(oper, cpu.P.hasFlag(Zero))"},
	0xF1: {n: "SBC", d: rd, m: "izy", f: "cpu.sbc(val)"},
	0xF2: {n: "STP", d: no, m: "imp", f: "cpu.halt()"},
	0xF3: {n: "ISC", d: rw, m: "izyd", f: "val = cpu.inc(val)\ncpu.sbc(val)"},
	0xF4: {n: "NOP", d: rd, m: "zpx", f: "_ = val"},
	0xF5: {n: "SBC", d: rd, m: "zpx", f: "cpu.sbc(val)"},
	0xF6: {n: "INC", d: rw, m: "zpx", f: "val = cpu.inc(val)"},
	0xF7: {n: "ISC", d: rw, m: "zpx", f: "val = cpu.inc(val)\ncpu.sbc(val)"},
	0xF8: {n: "SED", d: no, m: "imp", f: "cpu.P.setFlags(Decimal)"},
	0xF9: {n: "SBC", d: rd, m: "aby", f: "cpu.sbc(val)"},
	0xFA: {n: "NOP", d: no, m: "imp", f: "// no operation"},
	0xFB: {n: "ISC", d: rw, m: "abyd", f: "val = cpu.inc(val)\ncpu.sbc(val)"},
	0xFC: {n: "NOP", d: rd, m: "abx", f: "_ = val"},
	0xFD: {n: "SBC", d: rd, m: "abx", f: "cpu.sbc(val)"},
	0xFE: {n: "INC", d: rw, m: "abxd", f: "val = cpu.inc(val)"},
	0xFF: {n: "ISC", d: rw, m: "abxd", f: "val = cpu.inc(val)\ncpu.sbc(val)"},
}

type addrmode struct {
	human string // human readable name
	n     int    // number of bytes
	call  string // addressing mode code
	enum  string // AddrMode constant
}

var addrModes = map[string]addrmode{
	"imp":  {call: "cpu.imp()", n: 1, enum: "ModeImp", human: `implied addressing.`},
	"acc":  {call: "cpu.acc()", n: 1, enum: "ModeAcc", human: `adressing accumulator.`},
	"rel":  {call: "oper := cpu.rel()", n: 2, enum: "ModeRel", human: `relative addressing.`},
	"abs":  {call: "oper := cpu.abs()", n: 3, enum: "ModeAbs", human: `absolute addressing.`},
	"abx":  {call: "oper := cpu.abx(false)", n: 3, enum: "ModeAbx", human: `absolute indexed X.`},
	"abxd": {call: "oper := cpu.abx(true)", n: 3, enum: "ModeAbx", human: `absolute indexed X.`},
	"aby":  {call: "oper := cpu.aby(false)", n: 3, enum: "ModeAby", human: `absolute indexed Y.`},
	"abyd": {call: "oper := cpu.aby(true)", n: 3, enum: "ModeAby", human: `absolute indexed Y.`},
	"imm":  {call: "", n: 2, enum: "ModeImm", human: `immediate addressing.`},
	"ind":  {call: "oper := cpu.ind()", n: 3, enum: "ModeInd", human: `indirect addressing.`},
	"izx":  {call: "oper := cpu.izx()", n: 2, enum: "ModeIzx", human: `indexed addressing (abs, X).`},
	"izy":  {call: "oper := cpu.izy(false)", n: 2, enum: "ModeIzy", human: `indexed addressing (abs),Y.`},
	"izyd": {call: "oper := cpu.izy(true)", n: 2, enum: "ModeIzy", human: `indexed addressing (abs),Y.`},
	"zpg":  {call: "oper := cpu.zpg()", n: 2, enum: "ModeZpg", human: `zero page addressing.`},
	"zpx":  {call: "oper := cpu.zpx()", n: 2, enum: "ModeZpx", human: `indexed addressing: zeropage,X.`},
	"zpy":  {call: "oper := cpu.zpy()", n: 2, enum: "ModeZpy", human: `indexed addressing: zeropage,Y.`},
}

// Base cycle counts, page crossing and taken branches not included.
var cycles = [256]int{
	7, 6, 2, 8, 3, 3, 5, 5, 3, 2, 2, 2, 4, 4, 6, 6,
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	6, 6, 2, 8, 3, 3, 5, 5, 4, 2, 2, 2, 4, 4, 6, 6,
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	6, 6, 2, 8, 3, 3, 5, 5, 3, 2, 2, 2, 3, 4, 6, 6,
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	6, 6, 2, 8, 3, 3, 5, 5, 4, 2, 2, 2, 5, 4, 6, 6,
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	2, 6, 2, 6, 3, 3, 3, 3, 2, 2, 2, 2, 4, 4, 4, 4,
	2, 6, 2, 6, 4, 4, 4, 4, 2, 5, 2, 5, 5, 5, 5, 5,
	2, 6, 2, 6, 3, 3, 3, 3, 2, 2, 2, 2, 4, 4, 4, 4,
	2, 5, 2, 5, 4, 4, 4, 4, 2, 4, 2, 4, 4, 4, 4, 4,
	2, 6, 2, 8, 3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6,
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	2, 6, 2, 8, 3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6,
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
}

var unofficial = map[string]bool{
	"SLO": true, "RLA": true, "SRE": true, "RRA": true, "SAX": true, "LAX": true,
	"DCP": true, "ISC": true, "ANC": true, "ALR": true, "ARR": true, "ANE": true,
	"LXA": true, "SBX": true, "SHA": true, "SHX": true, "SHY": true, "TAS": true,
	"LAS": true, "STP": true,
}

func documented(code int) bool {
	def := defs[code]
	switch {
	case unofficial[def.n]:
		return false
	case def.n == "NOP" && code != 0xEA:
		return false
	case code == 0xEB: // SBC duplicate
		return false
	}
	return true
}

func header() {
	printf(`// Code generated by cpugen/gen_nes6502.go. DO NOT EDIT.`)
	printf(``)
	printf(`package %s`, pkgname)
}

func opcodes() {
	for code, def := range defs {
		if def.f == "" {
			continue
		}

		// header
		m := def.m
		genmode := true
		if m[0] == '!' {
			m = m[1:]
			genmode = false
		}
		mode := addrModes[m]
		printf(`// %s - %s`, def.n, mode.human)
		printf(`func opcode%02X(cpu *CPU) {`, code)
		if genmode && mode.call != "" {
			printf("%s", mode.call)
		}

		switch {
		case m == "acc":
			printf(`val := cpu.A`)
		case !genmode:
		case m == "imm":
			printf(`val := cpu.imm()`)
		case def.d == rd, def.d == rw:
			printf(`val := cpu.Read8(oper)`)
		}
		if def.d == rw && m != "acc" {
			printf(`cpu.dummyWrite(oper, val)`)
		}

		// body
		for _, line := range strings.Split(def.f, "\n") {
			printf("%s", line)
		}

		// footer
		switch {
		case m == "acc":
			printf(`cpu.A = val`)
		case def.d == rw:
			printf(`cpu.Write8(oper, val)`)
		}

		printf(`}`)
		printf(``)
	}
}

func opcodesTable() {
	bb := &strings.Builder{}
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			opcode := i*16 + j
			if defs[opcode].f == "" {
				fmt.Fprintf(bb, "%s,", defs[opcode].n)
			} else {
				fmt.Fprintf(bb, "opcode%02X, ", opcode)
			}
		}
		bb.WriteByte('\n')
	}
	printf(`// nes 6502 opcodes table`)
	printf(`var ops = [256]func(*CPU){`)
	printf("%s", bb.String())
	printf(`}`)
	printf(``)
}

func opcodeInfoTable() {
	printf(`// Opcodes describes the 256 opcodes of the NES 6502, indexed by opcode.`)
	printf(`var Opcodes = [256]OpcodeInfo{`)
	for code, def := range defs {
		m := strings.TrimPrefix(def.m, "!")
		mode := addrModes[m]

		fields := []string{
			fmt.Sprintf(`Op: 0x%02X`, code),
			fmt.Sprintf(`Name: %q`, def.n),
			fmt.Sprintf(`Mode: %s`, mode.enum),
			fmt.Sprintf(`Size: %d`, mode.n),
			fmt.Sprintf(`Cycles: %d`, cycles[code]),
		}
		if documented(code) {
			fields = append(fields, `Documented: true`)
		}
		switch m {
		case "abx", "aby", "izy":
			if def.d == rd {
				fields = append(fields, `PageCross: true`)
			}
		case "abxd", "abyd", "izyd":
			fields = append(fields, `ForceExtraCycle: true`)
		}
		printf(`{%s},`, strings.Join(fields, ", "))
	}
	printf(`}`)
}

func printf(format string, args ...any) {
	fmt.Fprintf(g, "%s\n", fmt.Sprintf(format, args...))
}

type Generator struct {
	io.Writer
}

var g Generator

func main() {
	log.SetFlags(0)
	outf := flag.String("out", "opcodes.go", "output file")
	flag.Parse()

	var w io.Writer = os.Stdout

	bb := &bytes.Buffer{}
	if *outf != "stdout" {
		w = bb
	}

	g = Generator{Writer: w}

	header()
	opcodes()
	opcodesTable()
	opcodeInfoTable()

	if *outf == "stdout" {
		return
	}
	buf, err := format.Source(bb.Bytes())
	if err != nil {
		if err := os.WriteFile(*outf, bb.Bytes(), 0644); err != nil {
			log.Fatalf("can't write to %s: %s", *outf, err)
		}
		log.Fatalf("'gofmt' failed\n%s", err)
	}

	if err := os.WriteFile(*outf, buf, 0644); err != nil {
		log.Fatalf("can't write to %s: %s", *outf, err)
	}
}
