package litparse_test

import (
	"testing"

	"github.com/wiedymi/ass-rs/pkg/litparse"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lit  string
		want litparse.Color
		ok   bool
	}{
		{"&HFF&", litparse.Color{A: 0xFF}, true},
		{"&H0000FF&", litparse.Color{R: 0xFF, G: 0x00, B: 0x00}, true},
		{"&H800000FF&", litparse.Color{R: 0xFF, G: 0x00, B: 0x00, A: 0x80}, true},
		{"&H0000FF", litparse.Color{R: 0xFF, G: 0x00, B: 0x00}, true}, // no trailing &
		{"0000FF&", litparse.Color{}, false},                          // missing &H
		{"&HZZ&", litparse.Color{}, false},                            // non-hex
		{"&H123&", litparse.Color{}, false},                           // wrong digit count
	}

	for _, tc := range tests {
		t.Run(tc.lit, func(t *testing.T) {
			t.Parallel()

			got, ok := litparse.ParseColor(tc.lit)
			if ok != tc.ok {
				t.Fatalf("ParseColor(%q) ok = %v, want %v", tc.lit, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tc.lit, got, tc.want)
			}
		})
	}
}

func TestFormatColor_RoundTrip(t *testing.T) {
	t.Parallel()

	c := litparse.Color{R: 0x12, G: 0x34, B: 0x56, A: 0x78}
	lit := litparse.FormatColor(c)
	got, ok := litparse.ParseColor(lit)
	if !ok {
		t.Fatalf("ParseColor(%q) failed to parse its own output", lit)
	}
	if got != c {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, c)
	}
}
