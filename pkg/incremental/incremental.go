// Package incremental implements spec.md §4.5: given a previously parsed
// Script, the new source buffer it becomes after a single text edit, and
// a description of that edit, produce an updated Script without
// re-tokenizing and re-parsing bytes outside the affected region.
//
// The correctness contract is equivalence with a full reparse of the new
// buffer: Reparse(script, newSource, edit) must describe the same
// sections, records, and field values as parser.Parse(newSource), modulo
// issue ordering within the dirty region. incremental_test.go checks this
// differentially against a handful of representative edits.
package incremental

import (
	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/config"
	"github.com/wiedymi/ass-rs/pkg/parser"
	"github.com/wiedymi/ass-rs/pkg/plugin"
)

// EditRange describes a single contiguous text edit applied to a source
// buffer: bytes [OldStart, OldEnd) in the old buffer became bytes
// [OldStart, NewEnd) in the new buffer.
type EditRange struct {
	OldStart int
	OldEnd   int
	NewEnd   int
}

// Delta is the net byte-length change the edit introduces, used to shift
// the spans of everything after it.
func (e EditRange) Delta() int {
	return (e.NewEnd - e.OldStart) - (e.OldEnd - e.OldStart)
}

// Reparse applies edit to script, producing an updated Script against
// newSource. It re-tokenizes and re-parses only the sections whose span
// intersects the edit, expanded to full section boundaries, and splices
// the result back in; everything outside the dirty region is reused with
// its spans shifted by edit.Delta(). Falls back to a full reparse when the
// edit cannot be safely localized (see mustFullReparse).
func Reparse(script *assast.Script, newSource []byte, edit EditRange, cfg config.ParserConfig, registry *plugin.Registry) (*assast.Script, error) {
	return ReparseWithOptions(script, newSource, edit, cfg, registry, Options{})
}

// ReparseWithOptions is Reparse with tracing control; see Options.
func ReparseWithOptions(script *assast.Script, newSource []byte, edit EditRange, cfg config.ParserConfig, registry *plugin.Registry, opts Options) (*assast.Script, error) {
	if registry == nil {
		registry = plugin.DefaultRegistry
	}
	logger := opts.logger()
	parserOpts := parser.Options{Logger: logger}

	if mustFullReparse(script, edit) {
		logger.Debug("full reparse fallback: edit touches a header line", "old_start", edit.OldStart, "old_end", edit.OldEnd)
		return parser.ParseWithOptions(newSource, cfg, registry, parserOpts)
	}

	lo, hi, ok := dirtySectionRange(script, edit)
	if !ok {
		logger.Debug("full reparse fallback: edit touches no known section")
		return parser.ParseWithOptions(newSource, cfg, registry, parserOpts)
	}

	delta := edit.Delta()

	oldDirtyStart := script.Sections[lo].Span.Start
	oldDirtyEnd := script.Sections[hi].Span.End

	newDirtyStart := oldDirtyStart
	newDirtyEnd := oldDirtyEnd + delta
	if newDirtyEnd > len(newSource) {
		newDirtyEnd = len(newSource)
	}
	if newDirtyEnd < newDirtyStart {
		newDirtyEnd = newDirtyStart
	}

	logger.Debug("dirty range recomputed", "section_lo", lo, "section_hi", hi, "new_start", newDirtyStart, "new_end", newDirtyEnd)

	// The dirty fragment is parsed in isolation, so it generally carries
	// no ScriptType line of its own; force the same dialect the full
	// script resolved to, per §4.5's "same version context" requirement.
	subCfg := cfg
	subCfg.DefaultVersion = script.Version

	subSource := newSource[newDirtyStart:newDirtyEnd]
	subScript, err := parser.ParseWithOptions(subSource, subCfg, registry, parserOpts)
	if err != nil {
		return nil, err
	}
	shiftScriptInPlace(subScript, newDirtyStart)

	merged := &assast.Script{
		Source:  newSource,
		Version: script.Version,
	}

	merged.Sections = append(merged.Sections, script.Sections[:lo]...)
	merged.Sections = append(merged.Sections, subScript.Sections...)
	for _, sec := range script.Sections[hi+1:] {
		merged.Sections = append(merged.Sections, shiftSection(sec, delta))
	}

	dirtyOldBounds := assast.Span{Start: oldDirtyStart, End: oldDirtyEnd}
	merged.Issues = spliceIssues(script.Issues, subScript.Issues, dirtyOldBounds, delta)

	return merged, nil
}

// mustFullReparse implements §4.5 step 6: an edit touching the ScriptType
// key or any section header line invalidates the dialect/section framing
// those boundaries depend on, so localized reparse can't be trusted.
func mustFullReparse(script *assast.Script, edit EditRange) bool {
	bounds := assast.Span{Start: edit.OldStart, End: edit.OldEnd}

	if info := script.ScriptInfo(); info != nil {
		for _, kv := range info.Entries {
			if isScriptType(kv.Key) && touches(kv.LineSpan, bounds) {
				return true
			}
		}
	}

	for _, sec := range script.Sections {
		if touches(headerLineSpan(script.Source, sec), bounds) {
			return true
		}
	}
	return false
}

func isScriptType(key string) bool {
	return len(key) == len("ScriptType") && equalFold(key, "ScriptType")
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// touches reports whether an edit range intersects a span, treating a
// zero-length edit (pure insertion) at a span's start as an intersection
// since inserted bytes land inside that span's first line.
func touches(span, edit assast.Span) bool {
	if edit.Start == edit.End {
		return edit.Start >= span.Start && edit.Start < span.End
	}
	return span.Start < edit.End && edit.Start < span.End
}

// headerLineSpan returns the span of a section's header line ("[Events]")
// within source.
func headerLineSpan(source []byte, sec *assast.Section) assast.Span {
	end := sec.Span.Start
	for end < len(source) && end < sec.Span.End && source[end] != '\n' {
		end++
	}
	return assast.Span{Start: sec.Span.Start, End: end}
}

// dirtySectionRange locates the contiguous run of sections (by index into
// script.Sections) whose span intersects the edit. Returns ok=false when
// no section intersects (e.g. an edit entirely inside whitespace the
// parser discarded before the first section header), in which case the
// caller should fall back to a full reparse.
func dirtySectionRange(script *assast.Script, edit EditRange) (lo, hi int, ok bool) {
	bounds := assast.Span{Start: edit.OldStart, End: edit.OldEnd}
	lo, hi = -1, -1
	for i, sec := range script.Sections {
		if touches(sec.Span, bounds) || sectionContainsEdit(sec.Span, bounds) {
			if lo == -1 {
				lo = i
			}
			hi = i
		}
	}
	if lo == -1 {
		return 0, 0, false
	}
	return lo, hi, true
}

func sectionContainsEdit(span, edit assast.Span) bool {
	return edit.Start >= span.Start && edit.End <= span.End
}
