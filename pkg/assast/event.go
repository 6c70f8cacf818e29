package assast

//go:generate stringer -type=EventType -trimprefix=Event

// EventType classifies an [Events] record.
type EventType uint8

const (
	EventDialogue EventType = iota
	EventComment
	EventPicture
	EventSound
	EventMovie
	EventCommand
)

// ParseEventType maps a record keyword ("Dialogue", "Comment", ...) to an
// EventType. Matching is case-insensitive. Returns (EventDialogue, false)
// for unrecognized keywords — callers decide whether that's fatal.
func ParseEventType(keyword string) (EventType, bool) {
	switch lowerASCII(keyword) {
	case "dialogue":
		return EventDialogue, true
	case "comment":
		return EventComment, true
	case "picture":
		return EventPicture, true
	case "sound":
		return EventSound, true
	case "movie":
		return EventMovie, true
	case "command":
		return EventCommand, true
	default:
		return EventDialogue, false
	}
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

// Event is one record in [Events]. Time fields are stored both as the
// original literal span (for round-tripping) and as a pre-parsed
// centisecond count. Text is kept as a bare span — its override/drawing
// structure is parsed on demand by pkg/overrides, per spec §4.3.
type Event struct {
	Span Span

	Type EventType

	Layer int

	StartSpan Span
	EndSpan   Span
	// StartCs and EndCs are the parsed centisecond values of Start/End.
	StartCs int
	EndCs   int

	Style string
	Name  string

	// MarginL/MarginR are always present. HasMarginV is set when the
	// Events Format declares MarginV; HasMarginTB when it declares MarginT
	// or MarginB. The parser binds these by the declared Format alone, not
	// by the script's version, so either, both or neither may be set.
	MarginL int
	MarginR int

	HasMarginV bool
	MarginV    int

	HasMarginTB bool
	MarginT     int
	MarginB     int

	Effect string

	// Text is the raw span of the event's text field, unparsed. Use
	// pkg/overrides.Parse(script.Source, event.Text, registry, maxDepth) to
	// obtain runs/tags.
	Text Span

	// ExtraFields holds format fields this script's Format line declared
	// that are neither v4+ nor v4++ fields (spec.md §9 Open Questions).
	ExtraFields map[string]string
}

// PlainDurationCs returns End-Start in centiseconds. A zero or negative value
// means the event's End is at or before its Start (flagged separately by the
// lint rule StartNotBeforeEnd).
func (e *Event) PlainDurationCs() int {
	return e.EndCs - e.StartCs
}

// IsComment reports whether this event is excluded from collision
// resolution per spec §9's Open Question: Comment events are parsed but
// never participate in the timing overlap graph.
func (e *Event) IsComment() bool {
	return e.Type == EventComment
}
