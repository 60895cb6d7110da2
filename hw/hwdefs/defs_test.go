package hwdefs

import "testing"

func TestIRQSourceString(t *testing.T) {
	tests := []struct {
		src  IRQSource
		want string
	}{
		{0, "none"},
		{External, "ext"},
		{FrameCounter | DMC, "fcnt|dmc"},
		{External | FrameCounter | DMC, "ext|fcnt|dmc"},
	}
	for _, tt := range tests {
		if got := tt.src.String(); got != tt.want {
			t.Errorf("IRQSource(%d).String() = %q, want %q", uint8(tt.src), got, tt.want)
		}
	}
}
