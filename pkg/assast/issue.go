package assast

//go:generate stringer -type=Severity -trimprefix=Severity

// Severity classifies how serious a ParseIssue is.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String renders the severity the way diagnostics tools expect.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// IssueKind identifies the specific parse-time condition that produced an
// issue. Kinds are stable strings (not an enum) so plugin section/tag
// handlers (pkg/plugin) can mint their own without a shared registry.
type IssueKind string

const (
	KindEncodingError          IssueKind = "EncodingError"
	KindMalformedStyle         IssueKind = "MalformedStyle"
	KindMalformedEvent         IssueKind = "MalformedEvent"
	KindUnknownStyleField      IssueKind = "UnknownStyleField"
	KindUnknownEventField      IssueKind = "UnknownEventField"
	KindUnknownSection         IssueKind = "UnknownSection"
	KindUnknownStyleReference  IssueKind = "UnknownStyleReference"
	KindDuplicateSection       IssueKind = "DuplicateSection"
	KindDuplicateFormat        IssueKind = "DuplicateFormat"
	KindMissingFormat          IssueKind = "MissingFormat"
	KindTrailingGarbage        IssueKind = "TrailingGarbage"
	KindVersionMismatch        IssueKind = "VersionMismatch"
	KindHandlerReplaced        IssueKind = "HandlerReplaced"
	KindMalformedOverride      IssueKind = "MalformedOverride"
	KindOverrideDepthExceeded  IssueKind = "OverrideDepthExceeded"
	KindUnknownDrawingCommand  IssueKind = "UnknownDrawingCommand"
	KindMalformedUU            IssueKind = "MalformedUU"
	KindDeclaredSizeMismatch   IssueKind = "DeclaredSizeMismatch"
	KindMalformedTimestamp     IssueKind = "MalformedTimestamp"
	KindMalformedColor         IssueKind = "MalformedColor"
)

// ParseIssue is a non-fatal condition recorded during parsing. It never
// aborts the parse; the offending fragment is either dropped (Error) or
// accepted as-is with a note (Warning/Info). Every issue carries a byte
// span so editors can underline the problem without reparsing.
type ParseIssue struct {
	Severity Severity
	Kind     IssueKind
	Span     Span
	Message  string
}

// Issues is an append-only collection of ParseIssue, preserving the order
// issues were recorded.
type Issues []ParseIssue

// Add appends an issue and returns the updated slice, mirroring the
// teacher's append-oriented diagnostic collection (no allocation surprises
// from a wrapper type, just a growable slice).
func (is Issues) Add(severity Severity, kind IssueKind, span Span, message string) Issues {
	return append(is, ParseIssue{Severity: severity, Kind: kind, Span: span, Message: message})
}

// Filter returns the subset of issues matching severity.
func (is Issues) Filter(severity Severity) Issues {
	var out Issues
	for _, issue := range is {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

// InSpan returns the subset of issues whose span lies entirely within bounds.
func (is Issues) InSpan(bounds Span) Issues {
	var out Issues
	for _, issue := range is {
		if issue.Span.Start >= bounds.Start && issue.Span.End <= bounds.End {
			out = append(out, issue)
		}
	}
	return out
}

// OutsideSpan returns the subset of issues whose span does not intersect bounds.
func (is Issues) OutsideSpan(bounds Span) Issues {
	var out Issues
	for _, issue := range is {
		if !issue.Span.Overlaps(bounds) {
			out = append(out, issue)
		}
	}
	return out
}

// Shift returns a copy of is with every span translated by delta.
func (is Issues) Shift(delta int) Issues {
	out := make(Issues, len(is))
	for i, issue := range is {
		issue.Span = issue.Span.Shift(delta)
		out[i] = issue
	}
	return out
}
