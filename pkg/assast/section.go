package assast

//go:generate stringer -type=SectionKind -trimprefix=Section

// SectionKind discriminates the Section tagged union.
type SectionKind uint8

const (
	SectionScriptInfo SectionKind = iota
	SectionStyles
	SectionEvents
	SectionFonts
	SectionGraphics
	SectionCustom
)

// Section is a tagged union over the five well-known section shapes plus
// a plugin-owned Custom variant. Exactly one of the typed payload fields
// is non-nil, selected by Kind — the Go rendering of the spec's
// discriminated-union Section type (see DESIGN NOTES in spec.md §9).
type Section struct {
	Kind SectionKind

	// Name is the section header exactly as declared (inside the
	// brackets), e.g. "Script Info", "V4++ Styles", "My Plugin Section".
	Name string

	// Span covers the header line through the last record/line belonging
	// to this section, inclusive.
	Span Span

	Info        *ScriptInfoSection
	StylesSec   *StylesSection
	EventsSec   *EventsSection
	EmbeddedSec *EmbeddedSection // Fonts or Graphics
	CustomSec   *CustomSection
}

// KeyValue is one "Key: Value" entry in [Script Info]. Duplicate keys are
// retained in declaration order; last-wins lookup is provided by
// ScriptInfoSection.Get.
type KeyValue struct {
	Key      string
	Value    string
	KeySpan  Span
	ValSpan  Span
	LineSpan Span
}

// ScriptInfoSection holds the ordered [Script Info] entries.
type ScriptInfoSection struct {
	Entries []KeyValue
}

// Get returns the value for key using last-wins semantics (later
// duplicate entries shadow earlier ones), matching spec §3.
func (si *ScriptInfoSection) Get(key string) (string, bool) {
	if si == nil {
		return "", false
	}
	found := false
	var value string
	for _, kv := range si.Entries {
		if kv.Key == key {
			value = kv.Value
			found = true
		}
	}
	return value, found
}

// StylesSection holds the declared field order and the parsed style
// records for a [V4 Styles] / [V4+ Styles] / [V4++ Styles] section.
type StylesSection struct {
	// Format is the field-name order declared by the section's Format
	// line, trimmed, in source order.
	Format []string

	FormatSpan Span

	Styles []*Style
}

// ByName returns the style with the given Name field, or nil.
func (ss *StylesSection) ByName(name string) *Style {
	if ss == nil {
		return nil
	}
	for _, st := range ss.Styles {
		if st.Fields["Name"] == name {
			return st
		}
	}
	return nil
}

// EventsSection holds the declared field order and parsed event records
// for [Events].
type EventsSection struct {
	Format []string

	FormatSpan Span

	Events []*Event
}

// EmbeddedSection holds [Fonts] or [Graphics] declarations: a name plus
// the UU-encoded lines belonging to it. Decoding is explicitly lazy (see
// pkg/uu) to avoid paying for binary materialization unless a caller asks.
type EmbeddedSection struct {
	Entries []*EmbeddedFile
}

// EmbeddedFile is one "filename:" declaration and its UU-encoded body
// lines within a [Fonts] or [Graphics] section.
type EmbeddedFile struct {
	Name string

	// Lines holds the span of each UU-encoded data line, in order, not
	// including the filename declaration line itself.
	Lines []Span

	// DeclaredLength is an expected decoded byte length (0 if absent).
	// The parser does not read one from the source and leaves it 0;
	// parser.DecodeEmbedded compares a nonzero value against the decoded
	// length and reports a DeclaredSizeMismatch issue when they differ.
	DeclaredLength int

	Span Span
}

// CustomSection holds raw, unparsed lines for a section the core doesn't
// recognize, whether or not a plugin claimed it (see pkg/plugin). Each
// line's span is preserved so a round-trip writer can reproduce it
// verbatim.
type CustomSection struct {
	Lines []Span

	// Payload is set when a registered plugin.SectionHandler claimed this
	// section; it is the handler's opaque parsed representation.
	Payload any
}
