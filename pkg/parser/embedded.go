package parser

import "github.com/wiedymi/ass-rs/pkg/assast"

// handleEmbedded binds [Fonts]/[Graphics] bodies: each "filename:"
// declaration (tokenized as TokKeyValue, since it contains a colon) opens
// a new assast.EmbeddedFile; subsequent TokRawLine tokens (UU-encoded data
// lines, which contain no colon) are appended to it until a blank line or
// the next declaration, per spec.md §4.2.
func (p *parser) handleEmbedded(g *group, kind assast.SectionKind) {
	sec, fresh := p.getOrCreateSingleton(kind, g.header)
	if !fresh {
		p.addIssue(assast.SeverityWarning, assast.KindDuplicateSection, assast.Span{Start: g.header.StartOffset, End: g.header.EndOffset},
			"duplicate embedded-data section; entries merged into the first occurrence")
	}
	defer extendSpan(sec, g.header, g.tokens)

	var current *assast.EmbeddedFile
	for _, tok := range g.tokens {
		switch tok.Kind {
		case assast.TokKeyValue:
			current = &assast.EmbeddedFile{
				Name: tok.Value,
				Span: assast.Span{Start: tok.StartOffset, End: tok.EndOffset},
			}
			sec.EmbeddedSec.Entries = append(sec.EmbeddedSec.Entries, current)
		case assast.TokRawLine:
			if current == nil {
				p.addIssue(assast.SeverityWarning, assast.KindMalformedUU, assast.Span{Start: tok.StartOffset, End: tok.EndOffset},
					"UU-encoded data line with no preceding filename declaration")
				continue
			}
			lineSpan := assast.Span{Start: tok.StartOffset, End: tok.EndOffset}
			current.Lines = append(current.Lines, lineSpan)
			current.Span.End = tok.EndOffset
		case assast.TokBlankLine:
			current = nil
		default:
		}
	}
}
