package debugger

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-faster/errors"

	"nesdbg/emu/log"
)

// A SymbolResolver maps source lines and labels to addresses.
type SymbolResolver interface {
	AddrFromLine(file string, line int) (LiveAddr, AbsAddr, error)
	Symbol(addr LiveAddr) (string, bool)
	SymbolAddr(name string) (LiveAddr, bool)
}

type lineKey struct {
	file string
	line int
}

type lineAddr struct {
	live LiveAddr
	abs  AbsAddr
}

// Symbols is a SymbolResolver built from a label file.
type Symbols struct {
	byName map[string]LiveAddr
	byAddr map[LiveAddr]string
	lines  map[lineKey]lineAddr
}

func NewSymbols() *Symbols {
	return &Symbols{
		byName: make(map[string]LiveAddr),
		byAddr: make(map[LiveAddr]string),
		lines:  make(map[lineKey]lineAddr),
	}
}

// AddLabel defines a label. An address keeps its first label.
func (s *Symbols) AddLabel(name string, addr LiveAddr) {
	s.byName[name] = addr
	if _, ok := s.byAddr[addr]; !ok {
		s.byAddr[addr] = name
	}
}

// AddLine maps a source line to an address.
func (s *Symbols) AddLine(file string, line int, live LiveAddr, abs AbsAddr) {
	s.lines[lineKey{file, line}] = lineAddr{live, abs}
}

func (s *Symbols) AddrFromLine(file string, line int) (LiveAddr, AbsAddr, error) {
	la, ok := s.lines[lineKey{file, line}]
	if !ok {
		return 0, NoAbsAddr, errors.Wrapf(ErrNotFound, "no code at %s:%d", file, line)
	}
	return la.live, la.abs, nil
}

func (s *Symbols) Symbol(addr LiveAddr) (string, bool) {
	name, ok := s.byAddr[addr]
	return name, ok
}

func (s *Symbols) SymbolAddr(name string) (LiveAddr, bool) {
	addr, ok := s.byName[name]
	if !ok {
		addr, ok = s.byName["."+name]
	}
	return addr, ok
}

// Len returns the number of labels.
func (s *Symbols) Len() int { return len(s.byName) }

// OpenSymbols loads a label file.
func OpenSymbols(path string) (*Symbols, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	syms, err := ReadSymbols(f)
	if err != nil {
		return nil, errors.Wrapf(err, "symbols file %s", path)
	}
	log.ModDbg.InfoZ("loaded symbols").
		String("path", path).
		Int("labels", syms.Len()).
		Int("lines", len(syms.lines)).
		End()
	return syms, nil
}

// ReadSymbols parses a VICE label file, as written by ca65/ld65 with -Ln:
//
//	al 00C000 .reset
//
// Source line records are also accepted, with the live and absolute address
// in hexadecimal (absolute address is "-" when unknown):
//
//	line src/main.s:12 C000 0000
//
// Empty lines and lines starting with '#' or ';' are ignored.
func ReadSymbols(r io.Reader) (*Symbols, error) {
	syms := NewSymbols()
	sc := bufio.NewScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		f := strings.Fields(sc.Text())
		if len(f) == 0 || strings.HasPrefix(f[0], "#") || strings.HasPrefix(f[0], ";") {
			continue
		}
		var err error
		switch f[0] {
		case "al":
			err = syms.parseLabel(f[1:])
		case "line":
			err = syms.parseLine(f[1:])
		default:
			log.ModDbg.DebugZ("skipping symbol record").String("kind", f[0]).End()
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineno)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return syms, nil
}

func parseHex(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "$"), 16, 32)
	if err != nil {
		return 0, errors.Errorf("invalid hex number %q", s)
	}
	return v, nil
}

func (s *Symbols) parseLabel(f []string) error {
	if len(f) != 2 {
		return errors.New("expected 'al ADDR NAME'")
	}
	addr, err := parseHex(f[0])
	if err != nil {
		return err
	}
	if addr > 0xFFFF {
		return errors.Errorf("label address %s out of range", f[0])
	}
	s.AddLabel(f[1], LiveAddr(addr))
	return nil
}

func (s *Symbols) parseLine(f []string) error {
	if len(f) != 3 {
		return errors.New("expected 'line FILE:LINE ADDR ABS'")
	}
	i := strings.LastIndexByte(f[0], ':')
	if i < 0 {
		return errors.Errorf("invalid source location %q", f[0])
	}
	line, err := strconv.Atoi(f[0][i+1:])
	if err != nil {
		return errors.Errorf("invalid line number in %q", f[0])
	}
	live, err := parseHex(f[1])
	if err != nil {
		return err
	}
	abs := NoAbsAddr
	if f[2] != "-" {
		v, err := parseHex(f[2])
		if err != nil {
			return err
		}
		abs = AbsAddr(v)
	}
	s.AddLine(f[0][:i], line, LiveAddr(live), abs)
	return nil
}
