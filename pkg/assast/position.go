package assast

import "sort"

// Span is a byte-offset range [Start, End) into a Script's source buffer.
// It is sufficient on its own to recover the original text of any node.
type Span struct {
	Start int
	End   int
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains reports whether offset falls within [Start, End).
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Overlaps reports whether s and other share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Shift returns s translated by delta bytes, used when splicing an
// incremental reparse result back into an existing Script (see pkg/incremental).
func (s Span) Shift(delta int) Span {
	return Span{Start: s.Start + delta, End: s.End + delta}
}

// Text returns the source bytes covered by s, given the full source buffer.
func (s Span) Text(source []byte) []byte {
	if s.Start < 0 || s.End > len(source) || s.Start > s.End {
		return nil
	}
	return source[s.Start:s.End]
}

// Position is a 1-based line/column pair.
type Position struct {
	Line   int
	Column int
}

// IsValid reports whether both Line and Column are positive.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// LineIndex maps byte offsets to 1-based line/column positions. It is built
// lazily and only consulted when a caller wants human-facing diagnostics;
// the byte-span invariant required by spec §3 never depends on it.
type LineIndex struct {
	// starts[i] is the byte offset of the first byte of line i+1.
	starts []int
}

// BuildLineIndex scans source once and records the start offset of every
// line, so later offset->line/column lookups are a binary search rather
// than a linear scan.
func BuildLineIndex(source []byte) *LineIndex {
	starts := make([]int, 1, 64)
	starts[0] = 0
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts}
}

// Position returns the 1-based line/column for a byte offset.
func (idx *LineIndex) Position(offset int) Position {
	if idx == nil || len(idx.starts) == 0 {
		return Position{}
	}
	// Find the last line start <= offset.
	i := sort.Search(len(idx.starts), func(i int) bool {
		return idx.starts[i] > offset
	})
	line := i // idx.starts is 0-indexed by line-1, so i == line-1+1 == line
	if line < 1 {
		line = 1
	}
	col := offset - idx.starts[line-1] + 1
	return Position{Line: line, Column: col}
}
