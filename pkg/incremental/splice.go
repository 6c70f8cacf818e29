package incremental

import "github.com/wiedymi/ass-rs/pkg/assast"

// shiftScriptInPlace translates every span in a freshly-parsed sub-script
// by offset, turning its sub-buffer-relative coordinates into coordinates
// within the full new source buffer it was sliced out of.
func shiftScriptInPlace(script *assast.Script, offset int) {
	if offset == 0 {
		return
	}
	for _, sec := range script.Sections {
		shiftSectionInPlace(sec, offset)
	}
	script.Issues = script.Issues.Shift(offset)
}

// shiftSection returns a copy of sec with every span translated by delta,
// used for the sections that sit after the dirty region and are reused
// unchanged except for their position in the new buffer.
func shiftSection(sec *assast.Section, delta int) *assast.Section {
	if delta == 0 {
		return sec
	}
	out := *sec
	shiftSectionInPlace(&out, delta)
	return &out
}

func shiftSectionInPlace(sec *assast.Section, delta int) {
	sec.Span = sec.Span.Shift(delta)

	if sec.Info != nil {
		entries := make([]assast.KeyValue, len(sec.Info.Entries))
		for i, kv := range sec.Info.Entries {
			kv.KeySpan = kv.KeySpan.Shift(delta)
			kv.ValSpan = kv.ValSpan.Shift(delta)
			kv.LineSpan = kv.LineSpan.Shift(delta)
			entries[i] = kv
		}
		sec.Info = &assast.ScriptInfoSection{Entries: entries}
	}

	if sec.StylesSec != nil {
		styles := make([]*assast.Style, len(sec.StylesSec.Styles))
		for i, st := range sec.StylesSec.Styles {
			styles[i] = shiftStyle(st, delta)
		}
		sec.StylesSec = &assast.StylesSection{
			Format:     sec.StylesSec.Format,
			FormatSpan: sec.StylesSec.FormatSpan.Shift(delta),
			Styles:     styles,
		}
	}

	if sec.EventsSec != nil {
		events := make([]*assast.Event, len(sec.EventsSec.Events))
		for i, ev := range sec.EventsSec.Events {
			events[i] = shiftEvent(ev, delta)
		}
		sec.EventsSec = &assast.EventsSection{
			Format:     sec.EventsSec.Format,
			FormatSpan: sec.EventsSec.FormatSpan.Shift(delta),
			Events:     events,
		}
	}

	if sec.EmbeddedSec != nil {
		entries := make([]*assast.EmbeddedFile, len(sec.EmbeddedSec.Entries))
		for i, f := range sec.EmbeddedSec.Entries {
			lines := make([]assast.Span, len(f.Lines))
			for j, ln := range f.Lines {
				lines[j] = ln.Shift(delta)
			}
			entries[i] = &assast.EmbeddedFile{
				Name:           f.Name,
				Lines:          lines,
				DeclaredLength: f.DeclaredLength,
				Span:           f.Span.Shift(delta),
			}
		}
		sec.EmbeddedSec = &assast.EmbeddedSection{Entries: entries}
	}

	if sec.CustomSec != nil {
		lines := make([]assast.Span, len(sec.CustomSec.Lines))
		for i, ln := range sec.CustomSec.Lines {
			lines[i] = ln.Shift(delta)
		}
		sec.CustomSec = &assast.CustomSection{Lines: lines, Payload: sec.CustomSec.Payload}
	}
}

func shiftStyle(st *assast.Style, delta int) *assast.Style {
	fieldSpans := make(map[string]assast.Span, len(st.FieldSpans))
	for k, v := range st.FieldSpans {
		fieldSpans[k] = v.Shift(delta)
	}
	return &assast.Style{
		Span:          st.Span.Shift(delta),
		Fields:        st.Fields,
		FieldSpans:    fieldSpans,
		ExtraFields:   st.ExtraFields,
		HasMarginV:    st.HasMarginV,
		HasMarginT:    st.HasMarginT,
		HasMarginB:    st.HasMarginB,
		HasRelativeTo: st.HasRelativeTo,
	}
}

func shiftEvent(ev *assast.Event, delta int) *assast.Event {
	out := *ev
	out.Span = ev.Span.Shift(delta)
	out.StartSpan = ev.StartSpan.Shift(delta)
	out.EndSpan = ev.EndSpan.Shift(delta)
	out.Text = ev.Text.Shift(delta)
	return &out
}

// spliceIssues keeps issues outside the dirty region (shifting those that
// sit after it by delta) and replaces everything inside the dirty region
// with the sub-reparse's own issues, per §4.5 step 5. subIssues have
// already been shifted into new-buffer coordinates by the caller.
func spliceIssues(oldIssues, subIssues assast.Issues, dirtyOldBounds assast.Span, delta int) assast.Issues {
	kept := oldIssues.OutsideSpan(dirtyOldBounds)
	out := make(assast.Issues, 0, len(kept)+len(subIssues))
	for _, issue := range kept {
		if issue.Span.Start >= dirtyOldBounds.End {
			issue.Span = issue.Span.Shift(delta)
		}
		out = append(out, issue)
	}
	out = append(out, subIssues...)
	return out
}
