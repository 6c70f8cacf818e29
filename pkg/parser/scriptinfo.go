package parser

import (
	"github.com/wiedymi/ass-rs/pkg/assast"
)

// handleScriptInfo binds KeyValue tokens to assast.ScriptInfoSection
// entries. Comment and blank lines inside the section are dropped
// silently; they carry no diagnostic value on their own.
func (p *parser) handleScriptInfo(g *group) {
	sec, fresh := p.getOrCreateSingleton(assast.SectionScriptInfo, g.header)
	if !fresh {
		p.addIssue(assast.SeverityWarning, assast.KindDuplicateSection, assast.Span{Start: g.header.StartOffset, End: g.header.EndOffset},
			"duplicate [Script Info] section; entries merged into the first occurrence")
	}
	defer extendSpan(sec, g.header, g.tokens)

	for _, tok := range g.tokens {
		if tok.Kind != assast.TokKeyValue {
			continue
		}
		keySpan, valSpan := keyValueSpans(p.source, tok.StartOffset, tok.EndOffset)
		sec.Info.Entries = append(sec.Info.Entries, assast.KeyValue{
			Key:      tok.Key,
			Value:    tok.Value,
			KeySpan:  keySpan,
			ValSpan:  valSpan,
			LineSpan: assast.Span{Start: tok.StartOffset, End: tok.EndOffset},
		})
	}
}

// keyValueSpans recomputes the trimmed key and value spans of a "Key:
// Value" line directly from source, independent of the tokenizer's
// internal state, the same way the tokenizer itself derived Key/Value.
func keyValueSpans(source []byte, start, end int) (keySpan, valSpan assast.Span) {
	raw := source[start:end]

	i := 0
	for i < len(raw) && isSpaceOrTab(raw[i]) {
		i++
	}
	colon := -1
	for j := i; j < len(raw); j++ {
		if raw[j] == ':' {
			colon = j
			break
		}
	}
	if colon < 0 {
		return assast.Span{}, assast.Span{}
	}

	keyEnd := colon
	for keyEnd > i && isSpaceOrTab(raw[keyEnd-1]) {
		keyEnd--
	}
	keySpan = assast.Span{Start: start + i, End: start + keyEnd}

	vs, ve := trimSpanWhitespace(source, start+colon+1, end)
	valSpan = assast.Span{Start: vs, End: ve}
	return keySpan, valSpan
}
