package assast

// Style is one "Style:" record, field-bound by position to the enclosing
// section's declared Format line. Fields are materialized as strings at
// parse time (style records are small and bounded in count, unlike event
// text) but each field's source span is retained in FieldSpans for
// diagnostics and round-tripping.
type Style struct {
	// Span covers the whole "Style: ..." line.
	Span Span

	// Fields maps a recognized or format-declared field name to its raw
	// string value, trimmed of surrounding whitespace.
	Fields map[string]string

	// FieldSpans maps the same field names to their source span.
	FieldSpans map[string]Span

	// ExtraFields holds format fields not recognized for the script's
	// Version (see spec.md §9 Open Questions: UnknownStyleField handling).
	// Keyed the same way as Fields.
	ExtraFields map[string]string

	// HasMarginV, HasMarginT, HasMarginB, HasRelativeTo report which
	// version-specific optional fields this record actually carries,
	// since the same Style struct is used across all three dialects.
	HasMarginV     bool
	HasMarginT     bool
	HasMarginB     bool
	HasRelativeTo  bool
}

// Name returns the style's Name field, or "" if absent.
func (s *Style) Name() string {
	if s == nil {
		return ""
	}
	return s.Fields["Name"]
}

// StyleFormatV4 is the specification-default Style field order for the
// v4+ dialect (AssV4), used when a record line precedes any Format line.
var StyleFormatV4 = []string{
	"Name", "Fontname", "Fontsize", "PrimaryColour", "SecondaryColour",
	"OutlineColour", "BackColour", "Bold", "Italic", "Underline", "StrikeOut",
	"ScaleX", "ScaleY", "Spacing", "Angle", "BorderStyle", "Outline", "Shadow",
	"Alignment", "MarginL", "MarginR", "MarginV", "Encoding",
}

// StyleFormatV4Plus is the specification-default Style field order for the
// v4++ dialect (AssV4Plus): MarginV split into MarginT/MarginB, with a
// trailing RelativeTo field.
var StyleFormatV4Plus = []string{
	"Name", "Fontname", "Fontsize", "PrimaryColour", "SecondaryColour",
	"OutlineColour", "BackColour", "Bold", "Italic", "Underline", "StrikeOut",
	"ScaleX", "ScaleY", "Spacing", "Angle", "BorderStyle", "Outline", "Shadow",
	"Alignment", "MarginL", "MarginR", "MarginT", "MarginB", "Encoding",
	"RelativeTo",
}

// DefaultStyleFormat returns the specification-default field order for the
// given dialect.
func DefaultStyleFormat(v Version) []string {
	if v == AssV4Plus {
		return StyleFormatV4Plus
	}
	return StyleFormatV4
}
