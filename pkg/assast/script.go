package assast

// Script is the root AST container produced by a parse. It owns the source
// buffer for its lifetime; every span in every child node is an offset
// into Source, never a copy of it (aside from the small field values on
// Style and Event records, which are also kept as strings).
type Script struct {
	// Source is the full, unmodified input buffer this Script was parsed
	// from. Nodes reference it by span; callers must not mutate it while
	// the Script is alive.
	Source []byte

	// Version is the resolved dialect (SsaV4, AssV4, or AssV4Plus).
	Version Version

	// Sections holds every section in source order, including duplicates
	// (merged per spec §4.2's DuplicateSection handling happens before
	// this slice is finalized — see pkg/parser).
	Sections []*Section

	// Issues is the append-only list of non-fatal problems recorded
	// during parsing, in the order they were encountered.
	Issues Issues

	lineIndex *LineIndex
}

// Text returns the source text covered by span. Span must have come from
// a node that belongs to this Script (or a copy of its source).
func (s *Script) Text(span Span) []byte {
	return span.Text(s.Source)
}

// Position converts a byte offset into a 1-based line/column, building the
// line index lazily on first use.
func (s *Script) Position(offset int) Position {
	if s.lineIndex == nil {
		s.lineIndex = BuildLineIndex(s.Source)
	}
	return s.lineIndex.Position(offset)
}

// ScriptInfo returns the first Script Info section, or nil if none exists.
func (s *Script) ScriptInfo() *ScriptInfoSection {
	for _, sec := range s.Sections {
		if sec.Kind == SectionScriptInfo {
			return sec.Info
		}
	}
	return nil
}

// Styles returns the first Styles section, or nil if none exists.
func (s *Script) Styles() *StylesSection {
	for _, sec := range s.Sections {
		if sec.Kind == SectionStyles {
			return sec.StylesSec
		}
	}
	return nil
}

// Events returns the first Events section, or nil if none exists.
func (s *Script) Events() *EventsSection {
	for _, sec := range s.Sections {
		if sec.Kind == SectionEvents {
			return sec.EventsSec
		}
	}
	return nil
}

// StyleByName looks up a style by name (case-sensitive, matching the ASS
// convention that style names are exact-match identifiers). Returns nil if
// not found or if there is no Styles section.
func (s *Script) StyleByName(name string) *Style {
	styles := s.Styles()
	if styles == nil {
		return nil
	}
	return styles.ByName(name)
}

// ValidateSpanCoverage checks spec §3's invariant: every byte of Source is
// covered by zero or one AST node span. It is a diagnostic helper (an
// insertion sort, so O(n^2) in the worst case), not something the parser
// runs on every call; tests and fuzz
// harnesses use it to catch regressions.
func ValidateSpanCoverage(spans []Span, sourceLen int) bool {
	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	insertionSortSpans(sorted)

	prevEnd := 0
	for _, sp := range sorted {
		if sp.Start < prevEnd {
			return false // overlap
		}
		if sp.End > sourceLen || sp.Start > sp.End {
			return false
		}
		prevEnd = sp.End
	}
	return true
}

func insertionSortSpans(spans []Span) {
	for i := 1; i < len(spans); i++ {
		j := i
		for j > 0 && spans[j-1].Start > spans[j].Start {
			spans[j-1], spans[j] = spans[j], spans[j-1]
			j--
		}
	}
}
