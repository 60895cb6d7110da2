// Package ines reads and writes ROM images in the iNES and NES 2.0 file
// formats, used for the distribution of NES binary programs.
package ines

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"

	"nesdbg/emu/log"
)

const (
	Magic = "NES\x1a"

	HeaderSize  = 16
	TrainerSize = 512
	PRGBankSize = 0x4000
	CHRBankSize = 0x2000
)

type Rom struct {
	header
	Trainer []byte // Trainer, 512 bytes if present, or empty.
	PRGROM  []byte // PRG ROM data, multiple of 16KB.
	CHRROM  []byte // CHR ROM data, multiple of 8KB. Empty when the board uses CHR RAM.
}

// Open loads a rom from file.
func Open(path string) (*Rom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rom := new(Rom)
	if _, err := rom.ReadFrom(f); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	log.ModINES.InfoZ("rom loaded").
		String("path", path).
		Uint16("mapper", rom.Mapper()).
		Int("prgrom", len(rom.PRGROM)).
		Int("chrrom", len(rom.CHRROM)).
		Stringer("mirroring", rom.Mirroring()).
		End()
	return rom, nil
}

// ReadFrom implements io.ReaderFrom.
func (rom *Rom) ReadFrom(r io.Reader) (int64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}

	var off int
	if err := rom.decode(buf); err != nil {
		return 0, errors.Wrap(err, "decode header")
	}
	off += HeaderSize

	if rom.HasTrainer() {
		if len(buf) < off+TrainerSize {
			return 0, errors.New("incomplete TRAINER section")
		}
		rom.Trainer = buf[off : off+TrainerSize]
		off += TrainerSize
	}

	if len(buf) < off+rom.prgsz {
		return 0, errors.Errorf("incomplete PRG section, want %d bytes, got %d", rom.prgsz, len(buf)-off)
	}
	rom.PRGROM = buf[off : off+rom.prgsz]
	off += rom.prgsz

	if len(buf) < off+rom.chrsz {
		return 0, errors.Errorf("incomplete CHR section, want %d bytes, got %d", rom.chrsz, len(buf)-off)
	}
	rom.CHRROM = buf[off : off+rom.chrsz]
	off += rom.chrsz

	if off != len(buf) {
		log.ModINES.WarnZ("trailing bytes after CHR section").Int("count", len(buf)-off).End()
	}
	return int64(len(buf)), nil
}

// WriteTo implements io.WriterTo, writing rom as an iNES image.
func (rom *Rom) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.Write(rom.raw[:])
	buf.Write(rom.Trainer)
	buf.Write(rom.PRGROM)
	buf.Write(rom.CHRROM)
	return buf.WriteTo(w)
}

// New builds an iNES 1.0 rom from its parts. prg must be a multiple of 16KB
// and chr a multiple of 8KB (chr may be empty for CHR RAM boards).
func New(mapper uint8, mirroring NTMirroring, prg, chr []byte) (*Rom, error) {
	if len(prg) == 0 || len(prg)%PRGBankSize != 0 || len(prg)/PRGBankSize > 0xFF {
		return nil, errors.Errorf("invalid PRG ROM size %d", len(prg))
	}
	if len(chr)%CHRBankSize != 0 || len(chr)/CHRBankSize > 0xFF {
		return nil, errors.Errorf("invalid CHR ROM size %d", len(chr))
	}

	rom := &Rom{PRGROM: prg, CHRROM: chr}
	copy(rom.raw[:], Magic)
	rom.raw[4] = uint8(len(prg) / PRGBankSize)
	rom.raw[5] = uint8(len(chr) / CHRBankSize)
	rom.raw[6] = mapper << 4
	rom.raw[7] = mapper & 0xF0
	switch mirroring {
	case VertMirroring:
		rom.raw[6] |= 0x01
	case FourScreen:
		rom.raw[6] |= 0x08
	case HorzMirroring:
	default:
		return nil, errors.Errorf("mirroring %s can't be set in header", mirroring)
	}
	rom.prgsz = len(prg)
	rom.chrsz = len(chr)
	return rom, nil
}

// PrintInfos writes a human readable description of rom to w.
func (rom *Rom) PrintInfos(w io.Writer) {
	format := "iNES"
	if rom.IsNES20() {
		format = "NES 2.0"
	}
	fmt.Fprintf(w, "format:     %s\n", format)
	fmt.Fprintf(w, "mapper:     %d (submapper %d)\n", rom.Mapper(), rom.SubMapper())
	fmt.Fprintf(w, "mirroring:  %s\n", rom.Mirroring())
	fmt.Fprintf(w, "PRG ROM:    %dKB (%d banks)\n", len(rom.PRGROM)/1024, len(rom.PRGROM)/PRGBankSize)
	if len(rom.CHRROM) != 0 {
		fmt.Fprintf(w, "CHR ROM:    %dKB (%d banks)\n", len(rom.CHRROM)/1024, len(rom.CHRROM)/CHRBankSize)
	} else {
		fmt.Fprintf(w, "CHR RAM:    %dKB\n", rom.CHRRAMSize()/1024)
	}
	fmt.Fprintf(w, "PRG RAM:    %dKB\n", rom.PRGRAMSize()/1024)
	fmt.Fprintf(w, "battery:    %t\n", rom.HasPersistent())
	fmt.Fprintf(w, "trainer:    %t\n", rom.HasTrainer())
}

type header struct {
	raw   [HeaderSize]byte
	prgsz int
	chrsz int
}

func (hdr *header) decode(p []byte) error {
	if len(p) < HeaderSize {
		return errors.Errorf("too small, needs %d bytes", HeaderSize)
	}
	if string(p[:4]) != Magic {
		return errors.New("invalid magic number")
	}
	copy(hdr.raw[:], p[:HeaderSize])

	prgbanks := int(hdr.raw[4])
	chrbanks := int(hdr.raw[5])
	if hdr.IsNES20() {
		prgmsb := int(hdr.raw[9] & 0x0F)
		chrmsb := int(hdr.raw[9] >> 4)
		if prgmsb == 0x0F || chrmsb == 0x0F {
			return errors.New("exponent-multiplier ROM sizes are not supported")
		}
		prgbanks |= prgmsb << 8
		chrbanks |= chrmsb << 8
	}
	hdr.prgsz = prgbanks * PRGBankSize
	hdr.chrsz = chrbanks * CHRBankSize
	return nil
}

// IsNES20 reports whether the header is in the NES 2.0 format.
func (hdr *header) IsNES20() bool {
	return hdr.raw[7]&0x0C == 0x08
}

// HasTrainer indicates the presence of a trainer section in the rom.
func (hdr *header) HasTrainer() bool {
	return hdr.raw[6]&0x04 != 0
}

// HasPersistent indicates the presence of battery-backed memory.
func (hdr *header) HasPersistent() bool {
	return hdr.raw[6]&0x02 != 0
}

// Mapper returns the mapper number.
func (hdr *header) Mapper() uint16 {
	m := uint16(hdr.raw[6]>>4) | uint16(hdr.raw[7]&0xF0)
	if hdr.IsNES20() {
		m |= uint16(hdr.raw[8]&0x0F) << 8
	}
	return m
}

// SubMapper returns the NES 2.0 submapper number, 0 for iNES roms.
func (hdr *header) SubMapper() uint8 {
	if !hdr.IsNES20() {
		return 0
	}
	return hdr.raw[8] >> 4
}

// Mirroring returns the nametable mirroring hardwired on the board.
func (hdr *header) Mirroring() NTMirroring {
	switch {
	case hdr.raw[6]&0x08 != 0:
		return FourScreen
	case hdr.raw[6]&0x01 != 0:
		return VertMirroring
	}
	return HorzMirroring
}

// PRGRAMSize returns the size in bytes of the PRG RAM at $6000.
func (hdr *header) PRGRAMSize() int {
	if hdr.IsNES20() {
		shift := hdr.raw[10] & 0x0F
		if shift == 0 {
			return 0
		}
		return 64 << shift
	}
	// iNES 1.0 value 0 infers 8KB for compatibility.
	if hdr.raw[8] == 0 {
		return 0x2000
	}
	return int(hdr.raw[8]) * 0x2000
}

// CHRRAMSize returns the size in bytes of the CHR RAM, 0 if the board has
// CHR ROM.
func (hdr *header) CHRRAMSize() int {
	if hdr.IsNES20() {
		shift := hdr.raw[11] & 0x0F
		if shift == 0 {
			return 0
		}
		return 64 << shift
	}
	if hdr.chrsz == 0 {
		return 0x2000
	}
	return 0
}

// NTMirroring is the way the 4 logical nametables map onto VRAM.
type NTMirroring uint8

const (
	HorzMirroring NTMirroring = iota
	VertMirroring
	OnlyAScreen
	OnlyBScreen
	FourScreen
)

var ntmNames = [...]string{
	HorzMirroring: "horizontal",
	VertMirroring: "vertical",
	OnlyAScreen:   "one-screen A",
	OnlyBScreen:   "one-screen B",
	FourScreen:    "four-screen",
}

func (m NTMirroring) String() string {
	if int(m) < len(ntmNames) {
		return ntmNames[m]
	}
	return fmt.Sprintf("NTMirroring(%d)", m)
}
