package emu

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"nesdbg/emu/log"
	"nesdbg/ines"
	"nesdbg/tests"
)

func loadTestRom(tb testing.TB, path string) *NES {
	tb.Helper()
	if !testing.Verbose() {
		log.SetOutput(io.Discard)
	}

	rom, err := ines.Open(path)
	if err != nil {
		tb.Fatal(err)
	}
	nes, err := New(rom, DefaultConfig())
	if err != nil {
		tb.Fatal(err)
	}
	return nes
}

func TestNestest(t *testing.T) {
	nes := loadTestRom(t, filepath.Join(tests.RomsPath(t), "other", "nestest.nes"))

	// nestest.nes rom has an 'automation' mode. To enable it,
	// PC must be set to C000 (instead of C004 for graphic mode).
	nes.CPU().PC = 0xC000

	// Last instruction of the automated run.
	res, err := nes.Goto(0xC66E, 100000)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Stopped() {
		t.Fatalf("nestest didn't reach $C66E, PC=$%04X", nes.CPU().PC)
	}

	if official, unofficial := nes.Peek(0x02), nes.Peek(0x03); official != 0 || unofficial != 0 {
		t.Fatalf("nestest CPU tests failed with results $%02X $%02X (check nestest.txt)", official, unofficial)
	}

	// All PRG ROM bytes executed so far are logged as code.
	if st := nes.Debugger().CDL().Stats(); st.Fetch == 0 {
		t.Errorf("no code logged: %+v", st)
	}
}

func TestInstructionsV5(t *testing.T) {
	dir := filepath.Join(tests.RomsPath(t), "instr_test-v5", "rom_singles")
	files := []string{
		"01-basics.nes",
		"02-implied.nes",
		"04-zero_page.nes",
		"05-zp_xy.nes",
		"06-absolute.nes",
		"08-ind_x.nes",
		"09-ind_y.nes",
		"10-branches.nes",
		"11-stack.nes",
		"12-jmp_jsr.nes",
		"13-rts.nes",
		"14-rti.nes",
		"15-brk.nes",
		"16-special.nes",
	}

	for _, path := range files {
		t.Run(path, runTestRom(filepath.Join(dir, path)))
	}
}

func TestCPUDummyWrites(t *testing.T) {
	dir := filepath.Join(tests.RomsPath(t), "cpu_dummy_writes")
	t.Run("oam", runTestRom(filepath.Join(dir, "cpu_dummy_writes_oam.nes")))
}

// maximum number of frames a blargg test rom can run.
const testRomMaxFrames = 60 * 60

func runTestRom(path string) func(t *testing.T) {
	// All text output is written starting at $6004, with a zero-byte terminator
	// at the end. As more text is written, the terminator is moved forward, so
	// an emulator can print the current text at any time.

	// The test status is written to $6000. $80 means the test is running, $81
	// means the test needs the reset button pressed, but delayed by at least
	// 100 msec from now. $00-$7F means the test has completed and given that
	// result code.

	// To allow an emulator to know when one of these tests is running and the
	// data at $6000+ is valid, as opposed to some other NES program, $DE $B0
	// $G1 is written to $6001-$6003.
	return func(t *testing.T) {
		nes := loadTestRom(t, path)

		magic := []byte{0xde, 0xb0, 0x61}
		magicset := false
		result := uint8(0x80)

		for frame := 0; ; frame++ {
			if frame == testRomMaxFrames {
				t.Fatalf("test still running after %d frames", frame)
			}
			if res := nes.RunFrame(); res.Stopped() {
				t.Fatalf("unexpected break at $%04X: %s", nes.CPU().PC, res.Break)
			}

			data := []byte{nes.Peek(0x6001), nes.Peek(0x6002), nes.Peek(0x6003)}
			if !magicset {
				// Wait for the magic bytes to appear
				magicset = bytes.Equal(data, magic)
				continue
			}

			// Once magic bytes have been written, they must not be overwritten.
			if !bytes.Equal(data, magic) {
				t.Fatalf("corrupted memory")
			}
			result = nes.Peek(0x6000)
			if result <= 0x7F {
				break
			}
			if result == 0x81 {
				t.Fatal("test rom needs the reset button")
			}
		}
		if result != 0x00 {
			t.Fatalf("test failed:\ncode 0x%02x\ntext %s", result, memString(nes, 0x6004))
		}
	}
}

func memString(nes *NES, addr uint16) string {
	var sb bytes.Buffer
	for ; addr != 0; addr++ {
		c := nes.Peek(addr)
		if c == 0 {
			break
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func TestNametableMirroring(t *testing.T) {
	nes := newTestNES(t, DefaultConfig())
	if nes.Rom.Mirroring() != ines.HorzMirroring {
		t.Errorf("incorrect nt mirroring")
	}

	nes.PPU.Bus.Write8(0x2000, 'A')
	nes.PPU.Bus.Write8(0x2800, 'B')

	addrs := []uint16{
		0x2000, // A
		0x2400, // A
		0x2800, // B
		0x2C00, // B
		0x3000, // A
		0x3400, // A
		0x3800, // B
		0x3C00, // B
	}
	var nts []byte
	for _, a := range addrs {
		nts = append(nts, nes.PPU.Bus.Peek8(a))
	}

	if string(nts) != "AABBAABB" {
		t.Errorf("mirrors = %s", nts)
	}
}
