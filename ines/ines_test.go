package ines

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nesdbg/tests"
)

func TestNewReadFrom(t *testing.T) {
	prg := bytes.Repeat([]byte{0xEA}, 2*PRGBankSize)
	chr := bytes.Repeat([]byte{0x55}, CHRBankSize)

	rom, err := New(66, VertMirroring, prg, chr)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if _, err := rom.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != HeaderSize+len(prg)+len(chr) {
		t.Fatalf("image size = %d", buf.Len())
	}

	got := new(Rom)
	n, err := got.ReadFrom(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(HeaderSize+len(prg)+len(chr)) {
		t.Errorf("ReadFrom returned %d", n)
	}
	if got.Mapper() != 66 {
		t.Errorf("Mapper() = %d, want 66", got.Mapper())
	}
	if got.Mirroring() != VertMirroring {
		t.Errorf("Mirroring() = %s, want %s", got.Mirroring(), VertMirroring)
	}
	if !bytes.Equal(got.PRGROM, prg) || !bytes.Equal(got.CHRROM, chr) {
		t.Error("PRG/CHR content mismatch")
	}
	if got.CHRRAMSize() != 0 {
		t.Errorf("CHRRAMSize() = %d, want 0", got.CHRRAMSize())
	}
	if got.PRGRAMSize() != 0x2000 {
		t.Errorf("PRGRAMSize() = %d, want 8KB", got.PRGRAMSize())
	}
}

func rawHeader(b ...byte) []byte {
	hdr := make([]byte, HeaderSize)
	copy(hdr, Magic)
	copy(hdr[4:], b)
	return hdr
}

func TestHeader(t *testing.T) {
	type fields struct {
		Mapper     uint16
		SubMapper  uint8
		NES20      bool
		Mirroring  NTMirroring
		Trainer    bool
		Persistent bool
		PRGRAM     int
		CHRRAM     int
	}

	tests := []struct {
		name string
		raw  []byte
		want fields
	}{
		{
			name: "nrom horizontal",
			raw:  rawHeader(1, 1, 0x00, 0x00),
			want: fields{Mirroring: HorzMirroring, PRGRAM: 0x2000},
		},
		{
			name: "mmc1 battery chr-ram",
			raw:  rawHeader(8, 0, 0x12, 0x00),
			want: fields{Mapper: 1, Mirroring: HorzMirroring, Persistent: true, PRGRAM: 0x2000, CHRRAM: 0x2000},
		},
		{
			name: "high nibble",
			raw:  rawHeader(2, 1, 0x21, 0x40),
			want: fields{Mapper: 0x42, Mirroring: VertMirroring, PRGRAM: 0x2000},
		},
		{
			name: "four screen",
			raw:  rawHeader(2, 1, 0x09, 0x00),
			want: fields{Mirroring: FourScreen, PRGRAM: 0x2000},
		},
		{
			name: "nes 2.0",
			raw:  rawHeader(2, 0, 0x20, 0x08, 0x21, 0x00, 0x07, 0x07),
			want: fields{Mapper: 0x102, SubMapper: 2, NES20: true, PRGRAM: 64 << 7, CHRRAM: 64 << 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hdr header
			if err := hdr.decode(tt.raw); err != nil {
				t.Fatal(err)
			}
			got := fields{
				Mapper:     hdr.Mapper(),
				SubMapper:  hdr.SubMapper(),
				NES20:      hdr.IsNES20(),
				Mirroring:  hdr.Mirroring(),
				Trainer:    hdr.HasTrainer(),
				Persistent: hdr.HasPersistent(),
				PRGRAM:     hdr.PRGRAMSize(),
				CHRRAM:     hdr.CHRRAMSize(),
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("header mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadFromErrors(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want string
	}{
		{"short", []byte("NES"), "too small"},
		{"magic", append([]byte("SEN\x1a"), make([]byte, 12)...), "invalid magic"},
		{"prg", rawHeader(2, 0), "incomplete PRG"},
		{"chr", append(rawHeader(1, 1), make([]byte, PRGBankSize)...), "incomplete CHR"},
		{"trainer", rawHeader(1, 0, 0x04), "incomplete TRAINER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := new(Rom).ReadFrom(bytes.NewReader(tt.buf))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got error %v, want %q", err, tt.want)
			}
		})
	}
}

func TestPrintInfos(t *testing.T) {
	rom, err := New(0, HorzMirroring, make([]byte, PRGBankSize), nil)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	rom.PrintInfos(&sb)
	for _, want := range []string{"mapper:     0", "CHR RAM:    8KB", "PRG ROM:    16KB (1 banks)"} {
		if !strings.Contains(sb.String(), want) {
			t.Errorf("infos missing %q:\n%s", want, sb.String())
		}
	}
}

func TestRomOpen(t *testing.T) {
	dir := filepath.Join(tests.RomsPath(t), "instr_test-v5", "rom_singles")
	paths := []string{
		"01-basics.nes",
		"02-implied.nes",
		"10-branches.nes",
		"15-brk.nes",
		"16-special.nes",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rom, err := Open(filepath.Join(dir, path))
			if err != nil {
				t.Fatal(err)
			}
			if len(rom.PRGROM) == 0 || len(rom.PRGROM)%PRGBankSize != 0 {
				t.Errorf("PRG ROM size = %d", len(rom.PRGROM))
			}
		})
	}
}
