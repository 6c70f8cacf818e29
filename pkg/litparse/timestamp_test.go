package litparse_test

import (
	"testing"

	"github.com/wiedymi/ass-rs/pkg/litparse"
)

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lit    string
		wantCs int
		wantOk bool
	}{
		{"0:00:00.00", 0, true},
		{"0:00:05.00", 500, true},
		{"1:23:45.67", ((1*60+23)*60+45)*100 + 67, true},
		{"25:00:00.00", 25 * 3600 * 100, true}, // beyond 24h accepted
		{"0:00:00", 0, false},                  // missing centiseconds
		{"0:60:00.00", 0, false},               // minutes out of range
		{"0:00:60.00", 0, false},               // seconds out of range
		{"0:00:00.5", 0, false},                // centiseconds not 2 digits
		{"a:00:00.00", 0, false},
		{":00:00.00", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.lit, func(t *testing.T) {
			t.Parallel()

			cs, ok := litparse.ParseTimestamp(tc.lit)
			if ok != tc.wantOk {
				t.Fatalf("ParseTimestamp(%q) ok = %v, want %v", tc.lit, ok, tc.wantOk)
			}
			if ok && cs != tc.wantCs {
				t.Errorf("ParseTimestamp(%q) = %d, want %d", tc.lit, cs, tc.wantCs)
			}
		})
	}
}

func TestFormatTimestamp_RoundTrip(t *testing.T) {
	t.Parallel()

	literals := []string{"0:00:00.00", "0:00:05.00", "1:23:45.67", "10:00:00.00"}
	for _, lit := range literals {
		cs, ok := litparse.ParseTimestamp(lit)
		if !ok {
			t.Fatalf("ParseTimestamp(%q) unexpectedly failed", lit)
		}
		if got := litparse.FormatTimestamp(cs); got != lit {
			t.Errorf("FormatTimestamp(%d) = %q, want %q", cs, got, lit)
		}
	}
}
