package parser

import (
	"fmt"

	"github.com/wiedymi/ass-rs/pkg/assast"
)

// handleCustom dispatches an unrecognized section to the plugin registry
// (§4.4); if no handler claims it, the section's raw lines are preserved
// verbatim on a Section::Custom payload and an UnknownSection warning is
// recorded.
func (p *parser) handleCustom(g *group) {
	sec, exists := p.custom[g.header.Keyword]
	if !exists {
		sec = &assast.Section{
			Kind: assast.SectionCustom,
			Name: g.header.Keyword,
			Span: assast.Span{Start: g.header.StartOffset, End: g.header.EndOffset},
			CustomSec: &assast.CustomSection{},
		}
		p.custom[g.header.Keyword] = sec
		p.sections = append(p.sections, sec)
	} else {
		p.addIssue(assast.SeverityWarning, assast.KindDuplicateSection, assast.Span{Start: g.header.StartOffset, End: g.header.EndOffset},
			fmt.Sprintf("duplicate section [%s]; lines merged into the first occurrence", g.header.Keyword))
	}
	defer extendSpan(sec, g.header, g.tokens)

	lines := make([]assast.Span, 0, len(g.tokens))
	for _, tok := range g.tokens {
		lines = append(lines, assast.Span{Start: tok.StartOffset, End: tok.EndOffset})
	}
	sec.CustomSec.Lines = append(sec.CustomSec.Lines, lines...)

	if handler, ok := p.registry.SectionHandler(g.header.Keyword); ok {
		payload, issues := handler.Parse(lines, p.source)
		sec.CustomSec.Payload = payload
		p.issues = append(p.issues, issues...)
		return
	}

	p.addIssue(assast.SeverityWarning, assast.KindUnknownSection, assast.Span{Start: g.header.StartOffset, End: g.header.EndOffset},
		fmt.Sprintf("unrecognized section [%s]; preserved verbatim", g.header.Keyword))
}
