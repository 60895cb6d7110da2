package debugger

import "testing"

func TestDecideAddrMatch(t *testing.T) {
	tests := []struct {
		bpAbs, accessAbs AbsAddr
		want             addrMatch
	}{
		{NoAbsAddr, NoAbsAddr, matchLive},
		{NoAbsAddr, 0x1C000, matchLive},
		{0x1C000, NoAbsAddr, matchLive},
		{0x1C000, 0x1C000, matchAbs},
		{0, 0x4000, matchAbs},
	}
	for _, tt := range tests {
		if got := decideAddrMatch(tt.bpAbs, tt.accessAbs); got != tt.want {
			t.Errorf("decideAddrMatch(%s, %s) = %d, want %d", tt.bpAbs, tt.accessAbs, got, tt.want)
		}
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		name         string
		item1, item2 LiveAddr
		item1Abs     AbsAddr
		live         LiveAddr
		abs          AbsAddr
		want         bool
	}{
		{"live single", 0x8000, 0x8000, NoAbsAddr, 0x8000, 0x0000, true},
		{"live miss", 0x8000, 0x8000, NoAbsAddr, 0x8001, 0x0001, false},
		{"live range", 0x0300, 0x03FF, NoAbsAddr, 0x03FF, NoAbsAddr, true},
		{"live range end", 0x0300, 0x03FF, NoAbsAddr, 0x0400, NoAbsAddr, false},
		{"inverted range", 0x0300, 0x0100, NoAbsAddr, 0x0300, NoAbsAddr, true},

		// Same live address, other bank.
		{"abs other bank", 0x8000, 0x8000, 0x4000, 0x8000, 0x0000, false},
		{"abs same bank", 0x8000, 0x8000, 0x4000, 0x8000, 0x4000, true},
		// Same bank, mapped elsewhere.
		{"abs moved", 0x8000, 0x8000, 0x4000, 0xC000, 0x4000, true},
		{"abs range", 0x8000, 0x800F, 0x4000, 0xC00F, 0x400F, true},
		{"abs range end", 0x8000, 0x800F, 0x4000, 0x8010, 0x4010, false},
		// Access not in ROM: fall back to live.
		{"abs bp on RAM access", 0x0300, 0x0300, 0x4000, 0x0300, NoAbsAddr, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inRange(tt.item1, tt.item2, tt.item1Abs, tt.live, tt.abs)
			if got != tt.want {
				t.Errorf("inRange = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestAddrString(t *testing.T) {
	if s := LiveAddr(0x3F).String(); s != "$003F" {
		t.Errorf("LiveAddr.String() = %q", s)
	}
	if s := NoAbsAddr.String(); s != "none" {
		t.Errorf("NoAbsAddr.String() = %q", s)
	}
	if s := AbsAddr(0x1C000).String(); s != "@1C000" {
		t.Errorf("AbsAddr.String() = %q", s)
	}
}
