package debugger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testLabels = `
# generated by ld65
al 00C000 .reset
al 00C000 .start
al 00E000 .nmi
al 000010 ptr
; source lines
line src/main.s:12 C000 1C000
line src/main.s:13 C002 1C002
line src/ram.s:3 0300 -
`

func TestReadSymbols(t *testing.T) {
	syms, err := ReadSymbols(strings.NewReader(testLabels))
	if err != nil {
		t.Fatal(err)
	}
	if syms.Len() != 4 {
		t.Errorf("Len = %d, want 4", syms.Len())
	}

	if name, ok := syms.Symbol(0xC000); !ok || name != ".reset" {
		t.Errorf("Symbol($C000) = %q, %t, want .reset", name, ok)
	}
	if _, ok := syms.Symbol(0xC001); ok {
		t.Errorf("Symbol($C001) should fail")
	}

	for name, want := range map[string]LiveAddr{".start": 0xC000, "nmi": 0xE000, "ptr": 0x10} {
		if addr, ok := syms.SymbolAddr(name); !ok || addr != want {
			t.Errorf("SymbolAddr(%q) = %s, %t, want %s", name, addr, ok, want)
		}
	}

	live, abs, err := syms.AddrFromLine("src/main.s", 13)
	if err != nil || live != 0xC002 || abs != 0x1C002 {
		t.Errorf("AddrFromLine(main.s:13) = %s, %s, %v", live, abs, err)
	}
	live, abs, err = syms.AddrFromLine("src/ram.s", 3)
	if err != nil || live != 0x300 || abs != NoAbsAddr {
		t.Errorf("AddrFromLine(ram.s:3) = %s, %s, %v", live, abs, err)
	}
	if _, abs, err := syms.AddrFromLine("src/main.s", 14); !errors.Is(err, ErrNotFound) || abs != NoAbsAddr {
		t.Errorf("AddrFromLine(main.s:14) = %s, %v, want ErrNotFound", abs, err)
	}
}

func TestReadSymbolsErrors(t *testing.T) {
	for _, input := range []string{
		"al C000",
		"al XYZ .foo",
		"al 10000 .foo",
		"line main.s C000 -",
		"line main.s:x C000 -",
		"line main.s:1 C000",
		"line main.s:1 C000 ZZ",
	} {
		if _, err := ReadSymbols(strings.NewReader(input)); err == nil {
			t.Errorf("ReadSymbols(%q) should fail", input)
		}
	}
}

func TestOpenSymbols(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.lbl")
	if err := os.WriteFile(path, []byte(testLabels), 0o644); err != nil {
		t.Fatal(err)
	}
	syms, err := OpenSymbols(path)
	if err != nil {
		t.Fatal(err)
	}
	if syms.Len() != 4 {
		t.Errorf("Len = %d, want 4", syms.Len())
	}

	if _, err := OpenSymbols(filepath.Join(t.TempDir(), "missing.lbl")); err == nil {
		t.Errorf("OpenSymbols(missing) should fail")
	}
}
