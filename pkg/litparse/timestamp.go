// Package litparse parses the small literal grammars embedded in ASS/SSA
// fields and override-tag arguments — time literals and color literals
// (spec.md §6.1) — shared by pkg/parser (event Start/End), pkg/overrides
// (tag arguments), and pkg/analysis (resolved style colors), none of which
// should depend on each other for this.
package litparse

import "fmt"

// ParseTimestamp parses an "H:MM:SS.CC" time literal into centiseconds.
// H is one or more digits; MM, SS, and CC are each exactly two digits.
// Returns ok=false for anything that doesn't match the grammar, including
// out-of-range minutes/seconds/centiseconds; hours beyond 24 are accepted
// per spec.md §6.1.
func ParseTimestamp(lit string) (cs int, ok bool) {
	h, rest, ok := splitDigits(lit, ':')
	if !ok {
		return 0, false
	}
	m, rest, ok := splitFixedDigits(rest, 2, ':')
	if !ok || m > 59 {
		return 0, false
	}
	s, rest, ok := splitFixedDigits(rest, 2, '.')
	if !ok || s > 59 {
		return 0, false
	}
	if len(rest) != 2 {
		return 0, false
	}
	c, ok := atoiFixed(rest, 2)
	if !ok || c > 99 {
		return 0, false
	}
	return ((h*60+m)*60+s)*100 + c, true
}

// FormatTimestamp renders centiseconds back into the canonical
// "H:MM:SS.CC" spelling (hours without leading zeros, everything else
// zero-padded to two digits), satisfying spec.md §8's time round-trip
// property for any value ParseTimestamp itself produced.
func FormatTimestamp(cs int) string {
	if cs < 0 {
		cs = 0
	}
	c := cs % 100
	totalSec := cs / 100
	s := totalSec % 60
	totalMin := totalSec / 60
	m := totalMin % 60
	h := totalMin / 60
	return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, c)
}

// splitDigits consumes leading decimal digits from s up to the next sep
// byte, returning their integer value and the remainder after sep.
func splitDigits(s string, sep byte) (val int, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != sep {
		return 0, "", false
	}
	v, ok := atoiFixed(s[:i], i)
	if !ok {
		return 0, "", false
	}
	return v, s[i+1:], true
}

// splitFixedDigits consumes exactly n digits from s followed by sep.
func splitFixedDigits(s string, n int, sep byte) (val int, rest string, ok bool) {
	if len(s) < n+1 || s[n] != sep {
		return 0, "", false
	}
	v, ok := atoiFixed(s[:n], n)
	if !ok {
		return 0, "", false
	}
	return v, s[n+1:], true
}

func atoiFixed(s string, n int) (int, bool) {
	if len(s) != n {
		return 0, false
	}
	v := 0
	for i := 0; i < n; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}
