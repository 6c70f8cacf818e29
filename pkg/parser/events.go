package parser

import (
	"fmt"
	"strings"

	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/litparse"
)

// canonicalEventField maps a lowercased format field name to its canonical
// spelling; presence in the map is what makes a field "recognized" for
// spec.md §3's Event record. "text" is the one field whose value is
// allowed, by design, to contain commas (it always binds last).
var canonicalEventField = map[string]string{
	"layer":   "Layer",
	"start":   "Start",
	"end":     "End",
	"style":   "Style",
	"name":    "Name",
	"marginl": "MarginL",
	"marginr": "MarginR",
	"marginv": "MarginV",
	"margint": "MarginT",
	"marginb": "MarginB",
	"effect":  "Effect",
	"text":    "Text",
}

// eventDefaultFormat is spec.md §6.1's default Events format, used when a
// record line precedes any Format: line.
var eventDefaultFormat = []string{
	"Layer", "Start", "End", "Style", "Name", "MarginL", "MarginR", "MarginV", "Effect", "Text",
}

func (p *parser) handleEvents(g *group) {
	sec, fresh := p.getOrCreateSingleton(assast.SectionEvents, g.header)
	if !fresh {
		p.addIssue(assast.SeverityWarning, assast.KindDuplicateSection, assast.Span{Start: g.header.StartOffset, End: g.header.EndOffset},
			"duplicate [Events] section; records merged into the first occurrence")
	}
	defer extendSpan(sec, g.header, g.tokens)

	for _, tok := range g.tokens {
		switch tok.Kind {
		case assast.TokFormatLine:
			if sec.EventsSec.Format != nil {
				p.addIssue(assast.SeverityWarning, assast.KindDuplicateFormat, assast.Span{Start: tok.StartOffset, End: tok.EndOffset},
					"duplicate Format: line; later declaration replaces the earlier one")
			}
			sec.EventsSec.Format = splitFormatFields(tok.Fields)
			sec.EventsSec.FormatSpan = assast.Span{Start: tok.StartOffset, End: tok.EndOffset}
		case assast.TokRecordLine:
			eventType, recognized := assast.ParseEventType(tok.Keyword)
			if !recognized || strings.EqualFold(tok.Keyword, "style") {
				continue
			}
			p.handleEventRecord(sec.EventsSec, tok, eventType)
		default:
		}
	}
}

func (p *parser) handleEventRecord(events *assast.EventsSection, tok assast.Token, eventType assast.EventType) {
	format := events.Format
	if format == nil {
		format = eventDefaultFormat
		p.addIssue(assast.SeverityWarning, assast.KindMissingFormat, assast.Span{Start: tok.StartOffset, End: tok.EndOffset},
			"event record precedes any Format: line; using the specification-default field order")
	}

	fieldsStart := recordFieldsStart(p.source, tok)
	spans, vals, ok := splitFieldSpans(p.source, fieldsStart, tok.EndOffset, len(format))
	if !ok {
		p.addIssue(assast.SeverityError, assast.KindMalformedEvent, assast.Span{Start: tok.StartOffset, End: tok.EndOffset},
			fmt.Sprintf("event record has fewer fields than the declared format (%d)", len(format)))
		return
	}

	lineSpan := assast.Span{Start: tok.StartOffset, End: tok.EndOffset}
	ev := &assast.Event{Span: lineSpan, Type: eventType, ExtraFields: make(map[string]string)}

	valid := true
	textFieldIndex := -1
	for i, name := range format {
		lname := lowerASCII(name)
		canon, recognized := canonicalEventField[lname]
		if !recognized {
			ev.ExtraFields[name] = vals[i]
			p.addIssue(assast.SeverityWarning, assast.KindUnknownEventField, spans[i],
				fmt.Sprintf("unrecognized event field %q", name))
			continue
		}
		if canon == "Text" {
			textFieldIndex = i
		}
		if !p.bindEventField(ev, canon, vals[i], spans[i]) {
			valid = false
		}
	}

	if textFieldIndex < 0 {
		// No Text field declared at all: treat the record as having an
		// empty text span at its end rather than dropping it outright.
		ev.Text = assast.Span{Start: tok.EndOffset, End: tok.EndOffset}
	}

	if !valid {
		p.addIssue(assast.SeverityError, assast.KindMalformedEvent, lineSpan, "event record has an invalid field value")
		return
	}

	events.Events = append(events.Events, ev)
}

// bindEventField assigns vals[i] (already positionally resolved to the
// canonical field name) onto ev. Returns false if a required numeric or
// timestamp field fails to parse.
func (p *parser) bindEventField(ev *assast.Event, canon, val string, span assast.Span) bool {
	switch canon {
	case "Layer":
		n, ok := parseIntField(val)
		if !ok {
			p.addIssue(assast.SeverityError, assast.KindMalformedEvent, span, "invalid Layer value")
			return false
		}
		ev.Layer = n
	case "Start":
		ev.StartSpan = span
		cs, ok := litparse.ParseTimestamp(strings.TrimSpace(val))
		if !ok {
			p.addIssue(assast.SeverityError, assast.KindMalformedTimestamp, span, "invalid Start timestamp")
			return false
		}
		ev.StartCs = cs
	case "End":
		ev.EndSpan = span
		cs, ok := litparse.ParseTimestamp(strings.TrimSpace(val))
		if !ok {
			p.addIssue(assast.SeverityError, assast.KindMalformedTimestamp, span, "invalid End timestamp")
			return false
		}
		ev.EndCs = cs
	case "Style":
		ev.Style = val
	case "Name":
		ev.Name = val
	case "MarginL":
		n, ok := parseIntField(val)
		if !ok {
			p.addIssue(assast.SeverityError, assast.KindMalformedEvent, span, "invalid MarginL value")
			return false
		}
		ev.MarginL = n
	case "MarginR":
		n, ok := parseIntField(val)
		if !ok {
			p.addIssue(assast.SeverityError, assast.KindMalformedEvent, span, "invalid MarginR value")
			return false
		}
		ev.MarginR = n
	case "MarginV":
		n, ok := parseIntField(val)
		if !ok {
			p.addIssue(assast.SeverityError, assast.KindMalformedEvent, span, "invalid MarginV value")
			return false
		}
		ev.HasMarginV = true
		ev.MarginV = n
	case "MarginT":
		n, ok := parseIntField(val)
		if !ok {
			p.addIssue(assast.SeverityError, assast.KindMalformedEvent, span, "invalid MarginT value")
			return false
		}
		ev.HasMarginTB = true
		ev.MarginT = n
	case "MarginB":
		n, ok := parseIntField(val)
		if !ok {
			p.addIssue(assast.SeverityError, assast.KindMalformedEvent, span, "invalid MarginB value")
			return false
		}
		ev.HasMarginTB = true
		ev.MarginB = n
	case "Effect":
		ev.Effect = val
	case "Text":
		ev.Text = span
	}
	return true
}
