package parser

import (
	"strconv"
	"strings"

	"github.com/wiedymi/ass-rs/pkg/assast"
)

// recordFieldsStart locates the absolute byte offset of the first field
// character after a record/format line's keyword colon, mirroring the
// tokenizer's own colon search (see pkg/tokenizer's classifyLine) so the
// span it returns lines up exactly with tok.Fields.
func recordFieldsStart(source []byte, tok assast.Token) int {
	raw := source[tok.StartOffset:tok.EndOffset]
	for i, b := range raw {
		if b == ':' {
			return tok.StartOffset + i + 1
		}
	}
	return tok.EndOffset
}

// splitFieldSpans splits the field text in [start, end) into exactly n
// positional spans: the first n-1 are comma-delimited and whitespace
// trimmed, the last receives the remainder of the range verbatim (spec.md
// §4.1's "last declared format field receives the remainder of the line
// verbatim" rule). ok is false if there are fewer than n-1 commas, meaning
// the record declares too few fields for its bound format.
func splitFieldSpans(source []byte, start, end, n int) (spans []assast.Span, vals []string, ok bool) {
	if n <= 0 {
		return nil, nil, false
	}
	spans = make([]assast.Span, n)
	vals = make([]string, n)

	pos := start
	for i := 0; i < n-1; i++ {
		comma := indexByteFrom(source, pos, end, ',')
		if comma < 0 {
			return nil, nil, false
		}
		s, e := trimSpanWhitespace(source, pos, comma)
		spans[i] = assast.Span{Start: s, End: e}
		vals[i] = string(source[s:e])
		pos = comma + 1
	}
	spans[n-1] = assast.Span{Start: pos, End: end}
	vals[n-1] = string(source[pos:end])
	return spans, vals, true
}

func indexByteFrom(source []byte, start, end int, c byte) int {
	for i := start; i < end; i++ {
		if source[i] == c {
			return i
		}
	}
	return -1
}

// trimSpanWhitespace trims leading/trailing spaces and tabs from [start,
// end), returning the tightened bounds.
func trimSpanWhitespace(source []byte, start, end int) (int, int) {
	for start < end && isSpaceOrTab(source[start]) {
		start++
	}
	for end > start && isSpaceOrTab(source[end-1]) {
		end--
	}
	return start, end
}

func isSpaceOrTab(b byte) bool {
	return b == ' ' || b == '\t'
}

// splitFormatFields splits a Format: line's declared field list on commas,
// trimming each name. Unlike record fields, every field here is a plain
// identifier; there is no verbatim-remainder rule.
func splitFormatFields(fields string) []string {
	parts := strings.Split(fields, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(p)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

func lowerASCII(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

func parseIntField(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
