package overrides

import (
	"strings"

	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/plugin"
)

// Parse walks source[span.Start:span.End] (an event's text field) and
// returns its literal/override/drawing runs per spec.md §4.3's grammar.
// registry resolves which tag names are "known" (forwarded to a plugin
// otherwise); maxOverrideDepth bounds `\t(...)` nesting, per
// config.ParserConfig.MaxOverrideDepth.
func Parse(source []byte, span assast.Span, registry *plugin.Registry, maxOverrideDepth int) ([]Run, assast.Issues) {
	if registry == nil {
		registry = plugin.DefaultRegistry
	}
	if maxOverrideDepth <= 0 {
		maxOverrideDepth = 8
	}

	p := &textParser{source: source, registry: registry, maxDepth: maxOverrideDepth}
	return p.parseText(span.Start, span.End)
}

type textParser struct {
	source       []byte
	registry     *plugin.Registry
	maxDepth     int
	drawingLevel int
	issues       assast.Issues
}

func (p *textParser) parseText(start, end int) ([]Run, assast.Issues) {
	var runs []Run
	literalStart := start
	pos := start

	flush := func(upTo int) {
		if upTo <= literalStart {
			return
		}
		if p.drawingLevel > 0 {
			cmds := p.parseDrawing(literalStart, upTo)
			runs = append(runs, Run{Kind: RunDrawing, Span: assast.Span{Start: literalStart, End: upTo}, Drawing: cmds})
		} else {
			runs = append(runs, Run{Kind: RunLiteral, Span: assast.Span{Start: literalStart, End: upTo}})
		}
	}

	for pos < end {
		switch p.source[pos] {
		case '{':
			flush(pos)
			closeIdx := indexByteFrom(p.source, pos+1, end, '}')
			if closeIdx < 0 {
				p.addIssue(assast.SeverityWarning, assast.KindMalformedOverride, assast.Span{Start: pos, End: pos + 1},
					"unmatched { treated as a literal character")
				literalStart = pos
				pos++
				continue
			}
			tags := p.parseTagList(pos+1, closeIdx, 0)
			runs = append(runs, Run{
				Kind:  RunBlock,
				Span:  assast.Span{Start: pos, End: closeIdx + 1},
				Block: &Block{Span: assast.Span{Start: pos + 1, End: closeIdx}, Tags: tags},
			})
			pos = closeIdx + 1
			literalStart = pos
		case '}':
			p.addIssue(assast.SeverityWarning, assast.KindMalformedOverride, assast.Span{Start: pos, End: pos + 1},
				"unmatched } treated as a literal character")
			pos++
		default:
			pos++
		}
	}
	flush(end)

	return runs, p.issues
}

// parseTagList parses a sequence of `\name(args)` tags in [start, end),
// which is either an override block's body or (when depth > 0) the nested
// sequence inside a `\t(...)` transform's final argument.
func (p *textParser) parseTagList(start, end, depth int) []Tag {
	var tags []Tag
	i := start

	for i < end {
		for i < end && isOverrideSpace(p.source[i]) {
			i++
		}
		if i >= end {
			break
		}
		if p.source[i] != '\\' {
			i++
			continue
		}
		i++
		tagStart := i
		name, nameEnd := scanTagName(p.source, i, end)
		i = nameEnd
		if name == "" {
			continue
		}

		var args []string
		var nested []Tag

		if i < end && p.source[i] == '(' {
			closeParen := findMatchingParen(p.source, i, end)
			if closeParen < 0 {
				p.addIssue(assast.SeverityWarning, assast.KindMalformedOverride, assast.Span{Start: i, End: end},
					"unterminated argument list for \\"+name)
				closeParen = end
			}
			segs := splitTopLevelCommas(p.source, i+1, closeParen)
			if name == "t" && len(segs) > 0 && containsBackslash(p.source, segs[len(segs)-1]) {
				last := segs[len(segs)-1]
				if depth+1 > p.maxDepth {
					p.addIssue(assast.SeverityWarning, assast.KindOverrideDepthExceeded, assast.Span{Start: last.Start, End: last.End},
						"nested \\t(...) override sequence exceeds the configured depth limit")
				} else {
					nested = p.parseTagList(last.Start, last.End, depth+1)
				}
				segs = segs[:len(segs)-1]
			}
			for _, s := range segs {
				args = append(args, trimOverrideSpace(p.source, s.Start, s.End))
			}
			i = closeParen + 1
		} else {
			atomStart := i
			for i < end && p.source[i] != '\\' && p.source[i] != '{' && p.source[i] != '}' {
				i++
			}
			if atom := trimOverrideSpace(p.source, atomStart, i); atom != "" {
				args = append(args, atom)
			}
		}

		if name == "p" {
			p.drawingLevel = drawingLevelFromArgs(args)
		}

		_, known := p.registry.TagHandler(name)
		tags = append(tags, Tag{
			Name:   name,
			Args:   args,
			Nested: nested,
			Known:  known || isBuiltinTag(name),
			Span:   assast.Span{Start: tagStart - 1, End: i},
		})
	}

	return tags
}

func (p *textParser) addIssue(sev assast.Severity, kind assast.IssueKind, span assast.Span, message string) {
	p.issues = p.issues.Add(sev, kind, span, message)
}

func drawingLevelFromArgs(args []string) int {
	if len(args) == 0 {
		return 0
	}
	n := 0
	for _, c := range strings.TrimSpace(args[0]) {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}

// scanTagName implements the grammar's `name := alpha (alpha | digit)*`,
// special-cased for the digit-prefixed color/alpha family (`1c`..`4c`,
// `1a`..`4a`) where the real ASS tag name itself begins with a digit.
func scanTagName(source []byte, pos, end int) (string, int) {
	if pos < end && isASCIIDigit(source[pos]) && pos+1 < end && isASCIIAlpha(source[pos+1]) {
		j := pos + 1
		for j < end && isASCIIAlpha(source[j]) {
			j++
		}
		candidate := lowerASCIIBytes(source[pos:j])
		if isBuiltinTag(candidate) {
			return candidate, j
		}
	}
	j := pos
	for j < end && isASCIIAlpha(source[j]) {
		j++
	}
	if j == pos {
		return "", pos
	}
	return lowerASCIIBytes(source[pos:j]), j
}

func findMatchingParen(source []byte, open, end int) int {
	depth := 0
	for i := open; i < end; i++ {
		switch source[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevelCommas splits [start, end) on commas that are not nested
// inside a further parenthesized group.
func splitTopLevelCommas(source []byte, start, end int) []assast.Span {
	var spans []assast.Span
	depth := 0
	segStart := start
	for i := start; i < end; i++ {
		switch source[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				spans = append(spans, assast.Span{Start: segStart, End: i})
				segStart = i + 1
			}
		}
	}
	spans = append(spans, assast.Span{Start: segStart, End: end})
	return spans
}

func containsBackslash(source []byte, span assast.Span) bool {
	for i := span.Start; i < span.End; i++ {
		if source[i] == '\\' {
			return true
		}
	}
	return false
}

func trimOverrideSpace(source []byte, start, end int) string {
	for start < end && isOverrideSpace(source[start]) {
		start++
	}
	for end > start && isOverrideSpace(source[end-1]) {
		end--
	}
	return string(source[start:end])
}

func isOverrideSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func lowerASCIIBytes(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

func indexByteFrom(source []byte, start, end int, c byte) int {
	for i := start; i < end; i++ {
		if source[i] == c {
			return i
		}
	}
	return -1
}
